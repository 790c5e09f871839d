// Package factory 合约工厂公共部分：部署产物并发出 ContractProduced 事件。
package factory

import (
	"fmt"

	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// Base 工厂合约基础实现，嵌入到具体工厂中
type Base struct {
	address  common.Address
	produced []common.Address
}

// NewBase 创建工厂基础
func NewBase(addr common.Address) Base {
	return Base{address: addr}
}

func (b *Base) Address() common.Address { return b.address }

// Produced 已生产的合约地址
func (b *Base) Produced() []common.Address {
	out := make([]common.Address, len(b.produced))
	copy(out, b.produced)
	return out
}

// Record 记录产物并发出 ContractProduced(factory, contract, producer)
func (b *Base) Record(tx *ledger.Tx, contract, producer common.Address) error {
	ledger.AppendValue(tx, &b.produced, contract)

	log, err := ogreabi.PackEvent(ogreabi.Governance, "ContractProduced", b.address, b.address, contract, producer)
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}

// Invoke 工厂不接受外部 ABI 调用
func (b *Base) Invoke(tx *ledger.Tx, selector [4]byte, args []byte) error {
	return fmt.Errorf("%w: 0x%x", ledger.ErrUnknownSelector, selector)
}
