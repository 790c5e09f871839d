package hopper

import (
	"errors"
	"fmt"
	"math/big"

	"ogre-backend/internal/contracts/credential"
	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

var ErrOnlyDelayedAction = errors.New("only callable by an executed delayed action")

// StubHopper 独立部署的延时队列合约，任何账户均可入队和执行
type StubHopper struct {
	address common.Address
	hopper  *Hopper
}

// DeployStub 部署固定延时的独立队列
func DeployStub(tx *ledger.Tx, delay uint64) (*StubHopper, error) {
	var stub *StubHopper
	_, err := tx.Deploy(func(addr common.Address) (ledger.Contract, error) {
		stub = &StubHopper{address: addr, hopper: New(addr, delay)}
		return stub, nil
	})
	if err != nil {
		return nil, err
	}
	return stub, nil
}

func (s *StubHopper) Address() common.Address { return s.address }

// Hopper 底层队列（只读查询）
func (s *StubHopper) Hopper() *Hopper { return s.hopper }

// LoadAction 入队
func (s *StubHopper) LoadAction(tx *ledger.Tx, action Action) (common.Hash, uint64, error) {
	defer tx.Enter(s.address)()
	return s.hopper.LoadAction(tx, action)
}

// ExecuteAction 执行已就绪动作
func (s *StubHopper) ExecuteAction(tx *ledger.Tx, action Action, ready uint64) error {
	defer tx.Enter(s.address)()
	return s.hopper.ExecuteAction(tx, action, ready)
}

// OnERC721Received 接收凭证，转出需要经过一次延时动作
func (s *StubHopper) OnERC721Received(tx *ledger.Tx, _, _ common.Address, _ uint64) error {
	defer tx.Enter(s.address)()
	return nil
}

// SendERC721 转出持有的凭证
func (s *StubHopper) SendERC721(tx *ledger.Tx, to common.Address, tokenID uint64, nft common.Address) error {
	defer tx.Enter(s.address)()
	if tx.Sender() != s.address {
		return ErrOnlyDelayedAction
	}
	return credential.Send(tx, to, tokenID, nft)
}

// Invoke ABI 调用入口
func (s *StubHopper) Invoke(tx *ledger.Tx, selector [4]byte, args []byte) error {
	method, values, err := ogreabi.UnpackMethod(ogreabi.Governance, selector, args)
	if err != nil {
		return err
	}

	switch method.Name {
	case "loadAction":
		_, _, err := s.LoadAction(tx, actionFromArgs(values))
		return err
	case "executeAction":
		action := actionFromArgs(values)
		ready, ok := ogreabi.Uint64(values[4])
		if !ok {
			// 存储的就绪时间都在 uint64 范围内，超出的值不可能匹配
			key, err := action.Key()
			if err != nil {
				return err
			}
			return fmt.Errorf("%w: %s", ErrActionNotLoaded, key.Hex())
		}
		return s.ExecuteAction(tx, action, ready)
	case "sendERC721":
		to, tokenID, nft, err := credential.SendArgs(values)
		if err != nil {
			return err
		}
		return s.SendERC721(tx, to, tokenID, nft)
	default:
		return fmt.Errorf("%w: %s", ledger.ErrUnknownSelector, method.Name)
	}
}

func actionFromArgs(values []interface{}) Action {
	return Action{
		Target: values[0].(common.Address),
		Value:  values[1].(*big.Int),
		Sig:    values[2].(string),
		Data:   values[3].([]byte),
	}
}
