// Package credential implements the non-fungible membership credential
// (OGRE721) that governance bodies use for eligibility checks.
package credential

import (
	"errors"
	"fmt"

	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrMintToZero          = errors.New("ERC721: mint to the zero address")
	ErrTokenExists         = errors.New("ERC721: token already minted")
	ErrNonexistentToken    = errors.New("ERC721: owner query for nonexistent token")
	ErrNotOwnerNorApproved = errors.New("ERC721: transfer caller is not owner nor approved")
	ErrTransferFromWrong   = errors.New("ERC721: transfer from incorrect owner")
	ErrTransferToZero      = errors.New("ERC721: transfer to the zero address")
	ErrNotContractOwner    = errors.New("caller is not the contract owner")
	ErrNonReceiver         = errors.New("ERC721: transfer to non ERC721Receiver implementer")
)

// OwnershipReader 凭证所有权查询
type OwnershipReader interface {
	Address() common.Address
	OwnerOf(tokenID uint64) (common.Address, error)
}

// Token OGRE721 凭证合约
type Token struct {
	address   common.Address
	name      string
	symbol    string
	owner     common.Address
	owners    map[uint64]common.Address
	approvals map[uint64]common.Address
	balances  map[common.Address]uint64
}

// Deploy 部署凭证合约，owner 拥有铸造权
func Deploy(tx *ledger.Tx, name, symbol string, owner common.Address) (*Token, error) {
	var token *Token
	_, err := tx.Deploy(func(addr common.Address) (ledger.Contract, error) {
		token = &Token{
			address:   addr,
			name:      name,
			symbol:    symbol,
			owner:     owner,
			owners:    make(map[uint64]common.Address),
			approvals: make(map[uint64]common.Address),
			balances:  make(map[common.Address]uint64),
		}
		return token, nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (t *Token) Address() common.Address { return t.address }
func (t *Token) Name() string            { return t.name }
func (t *Token) Symbol() string          { return t.symbol }
func (t *Token) Owner() common.Address   { return t.owner }

// OwnerOf 查询 token 持有者
func (t *Token) OwnerOf(tokenID uint64) (common.Address, error) {
	owner, ok := t.owners[tokenID]
	if !ok {
		return common.Address{}, ErrNonexistentToken
	}
	return owner, nil
}

// BalanceOf 持有数量
func (t *Token) BalanceOf(holder common.Address) uint64 {
	return t.balances[holder]
}

// GetApproved 单 token 授权地址
func (t *Token) GetApproved(tokenID uint64) common.Address {
	return t.approvals[tokenID]
}

// Mint 铸造凭证，仅合约 owner 可调用
func (t *Token) Mint(tx *ledger.Tx, to common.Address, tokenID uint64) error {
	defer tx.Enter(t.address)()

	if tx.Sender() != t.owner {
		return ErrNotContractOwner
	}
	if to == (common.Address{}) {
		return ErrMintToZero
	}
	if _, exists := t.owners[tokenID]; exists {
		return fmt.Errorf("%w: %d", ErrTokenExists, tokenID)
	}

	ledger.SetMapValue(tx, t.owners, tokenID, to)
	ledger.SetMapValue(tx, t.balances, to, t.balances[to]+1)
	return t.emitTransfer(tx, common.Address{}, to, tokenID)
}

// Burn 销毁凭证，需为持有者或被授权者
func (t *Token) Burn(tx *ledger.Tx, tokenID uint64) error {
	defer tx.Enter(t.address)()

	owner, err := t.OwnerOf(tokenID)
	if err != nil {
		return err
	}
	if !t.isApprovedOrOwner(tx.Sender(), tokenID, owner) {
		return ErrNotOwnerNorApproved
	}

	ledger.DeleteMapValue(tx, t.approvals, tokenID)
	ledger.DeleteMapValue(tx, t.owners, tokenID)
	ledger.SetMapValue(tx, t.balances, owner, t.balances[owner]-1)
	return t.emitTransfer(tx, owner, common.Address{}, tokenID)
}

// Approve 授权单个 token
func (t *Token) Approve(tx *ledger.Tx, to common.Address, tokenID uint64) error {
	defer tx.Enter(t.address)()

	owner, err := t.OwnerOf(tokenID)
	if err != nil {
		return err
	}
	if tx.Sender() != owner {
		return ErrNotOwnerNorApproved
	}
	ledger.SetMapValue(tx, t.approvals, tokenID, to)
	return t.emitApproval(tx, owner, to, tokenID)
}

// TransferFrom 转移凭证
func (t *Token) TransferFrom(tx *ledger.Tx, from, to common.Address, tokenID uint64) error {
	defer tx.Enter(t.address)()
	return t.transfer(tx, from, to, tokenID)
}

// SafeTransferFrom 转移凭证；接收方是合约时必须实现 ledger.ERC721Receiver 并接受
func (t *Token) SafeTransferFrom(tx *ledger.Tx, from, to common.Address, tokenID uint64) error {
	defer tx.Enter(t.address)()
	if err := t.transfer(tx, from, to, tokenID); err != nil {
		return err
	}

	contract, ok := tx.Contract(to)
	if !ok {
		return nil
	}
	receiver, ok := contract.(ledger.ERC721Receiver)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNonReceiver, to.Hex())
	}
	return receiver.OnERC721Received(tx, tx.Sender(), from, tokenID)
}

func (t *Token) transfer(tx *ledger.Tx, from, to common.Address, tokenID uint64) error {
	owner, err := t.OwnerOf(tokenID)
	if err != nil {
		return err
	}
	if !t.isApprovedOrOwner(tx.Sender(), tokenID, owner) {
		return ErrNotOwnerNorApproved
	}
	if owner != from {
		return ErrTransferFromWrong
	}
	if to == (common.Address{}) {
		return ErrTransferToZero
	}

	// 转移时清除单 token 授权
	ledger.DeleteMapValue(tx, t.approvals, tokenID)
	if err := t.emitApproval(tx, from, common.Address{}, tokenID); err != nil {
		return err
	}
	ledger.SetMapValue(tx, t.balances, from, t.balances[from]-1)
	ledger.SetMapValue(tx, t.balances, to, t.balances[to]+1)
	ledger.SetMapValue(tx, t.owners, tokenID, to)
	return t.emitTransfer(tx, from, to, tokenID)
}

func (t *Token) isApprovedOrOwner(spender common.Address, tokenID uint64, owner common.Address) bool {
	return spender == owner || t.approvals[tokenID] == spender
}

func (t *Token) emitApproval(tx *ledger.Tx, owner, approved common.Address, tokenID uint64) error {
	log, err := ogreabi.PackEvent(ogreabi.ERC721, "Approval", t.address, owner, approved, ogreabi.BigUint(tokenID))
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}

func (t *Token) emitTransfer(tx *ledger.Tx, from, to common.Address, tokenID uint64) error {
	log, err := ogreabi.PackEvent(ogreabi.ERC721, "Transfer", t.address, from, to, ogreabi.BigUint(tokenID))
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}

// Invoke ABI 调用入口
func (t *Token) Invoke(tx *ledger.Tx, selector [4]byte, args []byte) error {
	method, values, err := ogreabi.UnpackMethod(ogreabi.ERC721, selector, args)
	if err != nil {
		return err
	}

	switch method.Name {
	case "transferFrom":
		tokenID, err := tokenIDArg(values[2])
		if err != nil {
			return err
		}
		return t.TransferFrom(tx, values[0].(common.Address), values[1].(common.Address), tokenID)
	case "safeTransferFrom":
		tokenID, err := tokenIDArg(values[2])
		if err != nil {
			return err
		}
		return t.SafeTransferFrom(tx, values[0].(common.Address), values[1].(common.Address), tokenID)
	case "approve":
		tokenID, err := tokenIDArg(values[1])
		if err != nil {
			return err
		}
		return t.Approve(tx, values[0].(common.Address), tokenID)
	default:
		return fmt.Errorf("%w: %s", ledger.ErrUnknownSelector, method.Name)
	}
}

// tokenIDArg 超出 uint64 的 tokenId 不可能被铸造过
func tokenIDArg(v interface{}) (uint64, error) {
	id, ok := ogreabi.Uint64(v)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNonexistentToken, v)
	}
	return id, nil
}
