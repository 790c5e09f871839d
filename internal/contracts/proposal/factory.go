package proposal

import (
	"ogre-backend/internal/contracts/factory"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// Factory OGREProposalFactory
type Factory struct {
	factory.Base
}

// DeployFactory 部署提案工厂
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

// ProduceProposal 部署新提案，producer 为调用者
func (f *Factory) ProduceProposal(tx *ledger.Tx, title string, dao, owner common.Address) (*Proposal, error) {
	defer tx.Enter(f.Address())()

	p, err := Deploy(tx, title, dao, owner)
	if err != nil {
		return nil, err
	}
	if err := f.Record(tx, p.Address(), tx.Sender()); err != nil {
		return nil, err
	}
	return p, nil
}
