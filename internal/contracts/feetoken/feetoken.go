// Package feetoken implements OGRE20, the fungible token a DAO charges for
// drafting proposals.
package feetoken

import (
	"errors"
	"fmt"
	"math/big"

	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInsufficientBalance   = errors.New("ERC20: transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.New("ERC20: insufficient allowance")
	ErrZeroAddress           = errors.New("ERC20: zero address")
	ErrNotContractOwner      = errors.New("caller is not the contract owner")
)

type allowanceKey struct {
	owner   common.Address
	spender common.Address
}

// Token OGRE20 代币合约
type Token struct {
	address     common.Address
	name        string
	symbol      string
	owner       common.Address
	totalSupply *big.Int
	balances    map[common.Address]*big.Int
	allowances  map[allowanceKey]*big.Int
}

// Deploy 部署代币合约
func Deploy(tx *ledger.Tx, name, symbol string, owner common.Address) (*Token, error) {
	var token *Token
	_, err := tx.Deploy(func(addr common.Address) (ledger.Contract, error) {
		token = &Token{
			address:     addr,
			name:        name,
			symbol:      symbol,
			owner:       owner,
			totalSupply: new(big.Int),
			balances:    make(map[common.Address]*big.Int),
			allowances:  make(map[allowanceKey]*big.Int),
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

// TotalSupply 总供应量
func (t *Token) TotalSupply() *big.Int {
	return new(big.Int).Set(t.totalSupply)
}

// BalanceOf 余额
func (t *Token) BalanceOf(holder common.Address) *big.Int {
	if b, ok := t.balances[holder]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// Allowance 授权额度
func (t *Token) Allowance(owner, spender common.Address) *big.Int {
	if a, ok := t.allowances[allowanceKey{owner, spender}]; ok {
		return new(big.Int).Set(a)
	}
	return new(big.Int)
}

// Mint 增发，仅合约 owner
func (t *Token) Mint(tx *ledger.Tx, to common.Address, amount *big.Int) error {
	defer tx.Enter(t.address)()

	if tx.Sender() != t.owner {
		return ErrNotContractOwner
	}
	if to == (common.Address{}) {
		return ErrZeroAddress
	}
	ledger.SetValue(tx, &t.totalSupply, new(big.Int).Add(t.totalSupply, amount))
	ledger.SetMapValue(tx, t.balances, to, new(big.Int).Add(t.BalanceOf(to), amount))
	return t.emit(tx, "Transfer", common.Address{}, to, amount)
}

// Approve 设置授权额度
func (t *Token) Approve(tx *ledger.Tx, spender common.Address, amount *big.Int) error {
	defer tx.Enter(t.address)()

	owner := tx.Sender()
	ledger.SetMapValue(tx, t.allowances, allowanceKey{owner, spender}, new(big.Int).Set(amount))
	return t.emit(tx, "Approval", owner, spender, amount)
}

// Transfer 从调用者转出
func (t *Token) Transfer(tx *ledger.Tx, to common.Address, amount *big.Int) error {
	defer tx.Enter(t.address)()
	return t.move(tx, tx.Sender(), to, amount)
}

// TransferFrom 使用授权额度转账
func (t *Token) TransferFrom(tx *ledger.Tx, from, to common.Address, amount *big.Int) error {
	defer tx.Enter(t.address)()

	spender := tx.Sender()
	if spender != from {
		allowed := t.Allowance(from, spender)
		if allowed.Cmp(amount) < 0 {
			return fmt.Errorf("%w: allowed %s, needs %s", ErrInsufficientAllowance, allowed, amount)
		}
		ledger.SetMapValue(tx, t.allowances, allowanceKey{from, spender}, new(big.Int).Sub(allowed, amount))
	}
	return t.move(tx, from, to, amount)
}

func (t *Token) move(tx *ledger.Tx, from, to common.Address, amount *big.Int) error {
	if to == (common.Address{}) {
		return ErrZeroAddress
	}
	balance := t.BalanceOf(from)
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientBalance, from.Hex(), balance, amount)
	}
	ledger.SetMapValue(tx, t.balances, from, new(big.Int).Sub(balance, amount))
	ledger.SetMapValue(tx, t.balances, to, new(big.Int).Add(t.BalanceOf(to), amount))
	return t.emit(tx, "Transfer", from, to, amount)
}

func (t *Token) emit(tx *ledger.Tx, event string, a, b common.Address, amount *big.Int) error {
	log, err := ogreabi.PackEvent(ogreabi.ERC20, event, t.address, a, b, amount)
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}

// Invoke ABI 调用入口
func (t *Token) Invoke(tx *ledger.Tx, selector [4]byte, args []byte) error {
	method, values, err := ogreabi.UnpackMethod(ogreabi.ERC20, selector, args)
	if err != nil {
		return err
	}

	switch method.Name {
	case "transfer":
		return t.Transfer(tx, values[0].(common.Address), values[1].(*big.Int))
	case "approve":
		return t.Approve(tx, values[0].(common.Address), values[1].(*big.Int))
	case "transferFrom":
		return t.TransferFrom(tx, values[0].(common.Address), values[1].(common.Address), values[2].(*big.Int))
	default:
		return fmt.Errorf("%w: %s", ledger.ErrUnknownSelector, method.Name)
	}
}
