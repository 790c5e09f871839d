package dao

import (
	"ogre-backend/internal/contracts/factory"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// Factory OGREDAOFactory
type Factory struct {
	factory.Base
}

// DeployFactory 部署 DAO 工厂
func DeployFactory(tx *ledger.Tx) (*Factory, error) {
	var f *Factory
	_, err := tx.Deploy(func(addr common.Address) (ledger.Contract, error) {
		f = &Factory{Base: factory.NewBase(addr)}
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ProduceDAO 部署新 DAO
func (f *Factory) ProduceDAO(tx *ledger.Tx, params Params) (*DAO, error) {
	defer tx.Enter(f.Address())()

	d, err := Deploy(tx, params)
	if err != nil {
		return nil, err
	}
	if err := f.Record(tx, d.Address(), tx.Sender()); err != nil {
		return nil, err
	}
	return d, nil
}
