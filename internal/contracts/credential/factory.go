package credential

import (
	"ogre-backend/internal/contracts/factory"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// Factory OGRE721 工厂
type Factory struct {
	factory.Base
}

// DeployFactory 部署凭证工厂
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

// ProduceNFT 部署新凭证合约
func (f *Factory) ProduceNFT(tx *ledger.Tx, name, symbol string, owner common.Address) (*Token, error) {
	defer tx.Enter(f.Address())()

	token, err := Deploy(tx, name, symbol, owner)
	if err != nil {
		return nil, err
	}
	if err := f.Record(tx, token.Address(), tx.Sender()); err != nil {
		return nil, err
	}
	return token, nil
}
