package dao

import (
	"fmt"
	"math/big"

	"ogre-backend/internal/contracts/access"
	"ogre-backend/internal/contracts/credential"
	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// 配置项修改需要 DAO_ADMIN 角色，或由 DAO 自身（已通过提案的动作）发起

// SetDAOName 修改名称
func (d *DAO) SetDAOName(tx *ledger.Tx, name string) error {
	defer tx.Enter(d.address)()
	if err := d.requireAdmin(tx); err != nil {
		return err
	}
	ledger.SetValue(tx, &d.name, name)
	return nil
}

// SetDAOMetadata 修改元数据
func (d *DAO) SetDAOMetadata(tx *ledger.Tx, metadata string) error {
	defer tx.Enter(d.address)()
	if err := d.requireAdmin(tx); err != nil {
		return err
	}
	ledger.SetValue(tx, &d.metadata, metadata)
	return nil
}

// SetQuorumThreshold 法定人数阈值（基点）
func (d *DAO) SetQuorumThreshold(tx *ledger.Tx, bps uint64) error {
	defer tx.Enter(d.address)()
	if err := d.requireAdmin(tx); err != nil {
		return err
	}
	if bps > MaxBasisPoints {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, bps)
	}
	ledger.SetValue(tx, &d.quorumThreshold, bps)
	return nil
}

// SetSupportThreshold 支持票阈值（基点）
func (d *DAO) SetSupportThreshold(tx *ledger.Tx, bps uint64) error {
	defer tx.Enter(d.address)()
	if err := d.requireAdmin(tx); err != nil {
		return err
	}
	if bps > MaxBasisPoints {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, bps)
	}
	ledger.SetValue(tx, &d.supportThreshold, bps)
	return nil
}

// SetMinVotePeriod 最短投票时长（秒）
func (d *DAO) SetMinVotePeriod(tx *ledger.Tx, seconds uint64) error {
	defer tx.Enter(d.address)()
	if err := d.requireAdmin(tx); err != nil {
		return err
	}
	ledger.SetValue(tx, &d.minVotePeriod, seconds)
	return nil
}

// SetProposalCost 起草费
func (d *DAO) SetProposalCost(tx *ledger.Tx, cost *big.Int) error {
	defer tx.Enter(d.address)()
	if err := d.requireAdmin(tx); err != nil {
		return err
	}
	if cost == nil || cost.Sign() < 0 {
		return fmt.Errorf("%w: invalid proposal cost", ledger.ErrInvalidValue)
	}
	if cost.Sign() > 0 && d.feeToken == nil {
		return ErrFeeTokenRequired
	}
	ledger.SetValue(tx, &d.proposalCost, new(big.Int).Set(cost))
	return nil
}

// GrantRole 授予角色
func (d *DAO) GrantRole(tx *ledger.Tx, role common.Hash, account common.Address) error {
	defer tx.Enter(d.address)()
	if tx.Sender() == d.address {
		return d.roles.Setup(tx, role, account)
	}
	return d.roles.GrantRole(tx, role, account)
}

// RevokeRole 撤销角色
func (d *DAO) RevokeRole(tx *ledger.Tx, role common.Hash, account common.Address) error {
	defer tx.Enter(d.address)()
	if tx.Sender() == d.address {
		return d.roles.Remove(tx, role, account)
	}
	return d.roles.RevokeRole(tx, role, account)
}

// RenounceRole 放弃自身角色
func (d *DAO) RenounceRole(tx *ledger.Tx, role common.Hash, account common.Address) error {
	defer tx.Enter(d.address)()
	return d.roles.RenounceRole(tx, role, account)
}

// OnERC721Received DAO 可以持有凭证，转出只能经过提案
func (d *DAO) OnERC721Received(tx *ledger.Tx, _, _ common.Address, _ uint64) error {
	defer tx.Enter(d.address)()
	return nil
}

// SendERC721 转出 DAO 持有的凭证
func (d *DAO) SendERC721(tx *ledger.Tx, to common.Address, tokenID uint64, nft common.Address) error {
	defer tx.Enter(d.address)()
	if tx.Sender() != d.address {
		return ErrOnlyProposal
	}
	return credential.Send(tx, to, tokenID, nft)
}

func (d *DAO) requireAdmin(tx *ledger.Tx) error {
	if tx.Sender() == d.address {
		return nil
	}
	if err := d.roles.Require(tx, access.RoleDAOAdmin); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return nil
}

// Invoke ABI 调用入口，使 DAO 可作为提案动作的目标
func (d *DAO) Invoke(tx *ledger.Tx, selector [4]byte, args []byte) error {
	method, values, err := ogreabi.UnpackMethod(ogreabi.Governance, selector, args)
	if err != nil {
		return err
	}

	switch method.Name {
	case "executeProposal":
		return d.ExecuteProposal(tx, values[0].(common.Address))
	case "setDAOName":
		return d.SetDAOName(tx, values[0].(string))
	case "setDAOMetadata":
		return d.SetDAOMetadata(tx, values[0].(string))
	case "setQuorumThreshold":
		bps, ok := ogreabi.Uint64(values[0])
		if !ok {
			return fmt.Errorf("%w: %v", ErrInvalidThreshold, values[0])
		}
		return d.SetQuorumThreshold(tx, bps)
	case "setSupportThreshold":
		bps, ok := ogreabi.Uint64(values[0])
		if !ok {
			return fmt.Errorf("%w: %v", ErrInvalidThreshold, values[0])
		}
		return d.SetSupportThreshold(tx, bps)
	case "setMinVotePeriod":
		period, ok := ogreabi.Uint64(values[0])
		if !ok {
			return fmt.Errorf("%w: %v", ErrInvalidVotePeriod, values[0])
		}
		return d.SetMinVotePeriod(tx, period)
	case "setProposalCost":
		return d.SetProposalCost(tx, values[0].(*big.Int))
	case "sendERC721":
		to, tokenID, nft, err := credential.SendArgs(values)
		if err != nil {
			return err
		}
		return d.SendERC721(tx, to, tokenID, nft)
	case "grantRole":
		return d.GrantRole(tx, common.Hash(values[0].([32]byte)), values[1].(common.Address))
	case "revokeRole":
		return d.RevokeRole(tx, common.Hash(values[0].([32]byte)), values[1].(common.Address))
	default:
		return fmt.Errorf("%w: %s", ledger.ErrUnknownSelector, method.Name)
	}
}
