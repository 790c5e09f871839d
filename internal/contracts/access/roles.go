// Package access 角色权限集合：每个角色指定其管理角色，管理角色自我管理。
package access

import (
	"errors"
	"fmt"

	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	RoleDAOAdmin  = crypto.Keccak256Hash([]byte("DAO_ADMIN"))
	RoleDAOInvite = crypto.Keccak256Hash([]byte("DAO_INVITE"))
)

var (
	ErrMissingRole     = errors.New("account is missing role")
	ErrRenounceForSelf = errors.New("can only renounce roles for self")
)

type grant struct {
	role    common.Hash
	account common.Address
}

// Roles 角色表，由持有它的合约在自身执行帧内调用
type Roles struct {
	emitter common.Address
	members map[grant]bool
	admins  map[common.Hash]common.Hash
}

// NewRoles 创建 DAO 使用的两级角色表：admin 自我管理并管理 invite
func NewRoles(emitter common.Address) *Roles {
	return &Roles{
		emitter: emitter,
		members: make(map[grant]bool),
		admins: map[common.Hash]common.Hash{
			RoleDAOAdmin:  RoleDAOAdmin,
			RoleDAOInvite: RoleDAOAdmin,
		},
	}
}

// HasRole 查询账户是否持有角色
func (r *Roles) HasRole(role common.Hash, account common.Address) bool {
	return r.members[grant{role, account}]
}

// GetRoleAdmin 角色的管理角色；未登记的角色默认由 admin 管理
func (r *Roles) GetRoleAdmin(role common.Hash) common.Hash {
	if admin, ok := r.admins[role]; ok {
		return admin
	}
	return RoleDAOAdmin
}

// Require 当前调用者必须持有角色
func (r *Roles) Require(tx *ledger.Tx, role common.Hash) error {
	if !r.HasRole(role, tx.Sender()) {
		return fmt.Errorf("%w: account %s role %s", ErrMissingRole, tx.Sender().Hex(), role.Hex())
	}
	return nil
}

// Setup 直接授权，不检查调用者权限，用于构造阶段或宿主合约自身发起
func (r *Roles) Setup(tx *ledger.Tx, role common.Hash, account common.Address) error {
	return r.grant(tx, role, account)
}

// Remove 直接撤销，不检查调用者权限，由宿主合约自身发起时使用
func (r *Roles) Remove(tx *ledger.Tx, role common.Hash, account common.Address) error {
	return r.revoke(tx, role, account)
}

// GrantRole 调用者须持有该角色的管理角色
func (r *Roles) GrantRole(tx *ledger.Tx, role common.Hash, account common.Address) error {
	if err := r.Require(tx, r.GetRoleAdmin(role)); err != nil {
		return err
	}
	return r.grant(tx, role, account)
}

// RevokeRole 调用者须持有该角色的管理角色
func (r *Roles) RevokeRole(tx *ledger.Tx, role common.Hash, account common.Address) error {
	if err := r.Require(tx, r.GetRoleAdmin(role)); err != nil {
		return err
	}
	return r.revoke(tx, role, account)
}

// RenounceRole 账户放弃自身角色
func (r *Roles) RenounceRole(tx *ledger.Tx, role common.Hash, account common.Address) error {
	if account != tx.Sender() {
		return ErrRenounceForSelf
	}
	return r.revoke(tx, role, account)
}

func (r *Roles) grant(tx *ledger.Tx, role common.Hash, account common.Address) error {
	if r.HasRole(role, account) {
		return nil
	}
	ledger.SetMapValue(tx, r.members, grant{role, account}, true)
	return r.emit(tx, "RoleGranted", role, account)
}

func (r *Roles) revoke(tx *ledger.Tx, role common.Hash, account common.Address) error {
	if !r.HasRole(role, account) {
		return nil
	}
	ledger.DeleteMapValue(tx, r.members, grant{role, account})
	return r.emit(tx, "RoleRevoked", role, account)
}

func (r *Roles) emit(tx *ledger.Tx, event string, role common.Hash, account common.Address) error {
	log, err := ogreabi.PackEvent(ogreabi.Governance, event, r.emitter, role, account, tx.Sender())
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}
