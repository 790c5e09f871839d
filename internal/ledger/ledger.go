package ledger

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"ogre-backend/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

var (
	ErrInsufficientBalance = errors.New("insufficient native balance")
	ErrNoContract          = errors.New("no contract at target address")
	ErrUnknownSelector     = errors.New("unknown function selector")
	ErrInvalidValue        = errors.New("invalid native value")
	ErrContextCanceled     = errors.New("transaction context canceled")
)

// Contract 账本上可被调用的合约
type Contract interface {
	// Address 合约地址
	Address() common.Address
	// Invoke 处理 ABI 编码的调用，selector 为函数签名哈希前 4 字节
	Invoke(tx *Tx, selector [4]byte, args []byte) error
}

// ERC721Receiver 可以经 safeTransferFrom 接收凭证的合约。
// 未实现该接口的合约不能作为安全转移的接收方。
type ERC721Receiver interface {
	OnERC721Received(tx *Tx, operator, from common.Address, tokenID uint64) error
}

// Receipt 交易回执
type Receipt struct {
	ID          string         `json:"id"`
	LedgerID    string         `json:"ledger_id"`
	TxHash      common.Hash    `json:"tx_hash"`
	BlockNumber uint64         `json:"block_number"`
	Timestamp   uint64         `json:"timestamp"`
	From        common.Address `json:"from"`
	Logs        []*types.Log   `json:"logs"`
}

// Ledger 串行执行交易的进程内账本。
// 所有交易在同一把锁下按全序执行，失败的交易不留下任何状态变化。
// 每个实例有独立的 ID：进程重启后区块高度和合约地址会重复出现，
// 持久化的索引以 ID 区分不同的账本。
type Ledger struct {
	id        string
	mu        sync.Mutex
	clock     Clock
	contracts map[common.Address]Contract
	balances  map[common.Address]*big.Int
	nonces    map[common.Address]uint64
	block     uint64
}

// New 创建账本
func New(clock Clock) *Ledger {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Ledger{
		id:        uuid.NewString(),
		clock:     clock,
		contracts: make(map[common.Address]Contract),
		balances:  make(map[common.Address]*big.Int),
		nonces:    make(map[common.Address]uint64),
	}
}

// ID 账本实例标识
func (l *Ledger) ID() string {
	return l.id
}

// Now 账本当前时间
func (l *Ledger) Now() uint64 {
	return l.clock.Now()
}

// BlockNumber 已提交的区块高度
func (l *Ledger) BlockNumber() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.block
}

// Transact 以 from 身份执行一笔交易。fn 返回错误时全部状态回滚。
func (l *Ledger) Transact(ctx context.Context, from common.Address, fn func(tx *Tx) error) (*Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContextCanceled, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx := l.newTx(ctx, from)
	if err := fn(tx); err != nil {
		tx.revertTo(0)
		return nil, err
	}

	l.block++
	receipt := &Receipt{
		ID:          uuid.NewString(),
		LedgerID:    l.id,
		BlockNumber: l.block,
		Timestamp:   tx.now,
		From:        from,
		Logs:        tx.logs,
	}
	receipt.TxHash = txHash(from, l.block, receipt.ID)
	for _, log := range receipt.Logs {
		log.BlockNumber = receipt.BlockNumber
		log.TxHash = receipt.TxHash
	}

	logger.Debug("Transact: ", "block", receipt.BlockNumber, "from", from.Hex(), "logs", len(receipt.Logs))
	return receipt, nil
}

// View 在锁内执行只读访问，fn 产生的任何修改都会被丢弃
func (l *Ledger) View(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrContextCanceled, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx := l.newTx(ctx, common.Address{})
	defer tx.revertTo(0)
	return fn(tx)
}

// Fund 直接给地址增加原生余额（本地开发水龙头）
func (l *Ledger) Fund(addr common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrInvalidValue
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[addr] = new(big.Int).Add(l.balanceOf(addr), amount)
	return nil
}

// BalanceOf 原生余额
func (l *Ledger) BalanceOf(addr common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.balanceOf(addr))
}

func (l *Ledger) balanceOf(addr common.Address) *big.Int {
	if b, ok := l.balances[addr]; ok {
		return b
	}
	return new(big.Int)
}

func (l *Ledger) newTx(ctx context.Context, from common.Address) *Tx {
	return &Tx{
		ctx:    ctx,
		ledger: l,
		origin: from,
		frames: []frame{{sender: common.Address{}, self: from}},
		now:    l.clock.Now(),
	}
}

func txHash(from common.Address, block uint64, id string) common.Hash {
	var num [8]byte
	binary.BigEndian.PutUint64(num[:], block)
	return crypto.Keccak256Hash(from.Bytes(), num[:], []byte(id))
}

type frame struct {
	sender common.Address
	self   common.Address
}

// Tx 一笔执行中的交易
type Tx struct {
	ctx     context.Context
	ledger  *Ledger
	origin  common.Address
	frames  []frame
	now     uint64
	journal []func()
	logs    []*types.Log
}

// Context 交易上下文
func (tx *Tx) Context() context.Context {
	return tx.ctx
}

// Origin 交易发起账户
func (tx *Tx) Origin() common.Address {
	return tx.origin
}

// Sender 当前调用者（msg.sender）
func (tx *Tx) Sender() common.Address {
	return tx.frames[len(tx.frames)-1].sender
}

// Self 当前执行中的合约地址，顶层时为发起账户
func (tx *Tx) Self() common.Address {
	return tx.frames[len(tx.frames)-1].self
}

// Now 区块时间戳，在整笔交易内保持不变
func (tx *Tx) Now() uint64 {
	return tx.now
}

// Enter 进入合约 self 的执行帧，调用者变为当前 Self。返回离开函数。
//
//	defer tx.Enter(c.address)()
func (tx *Tx) Enter(self common.Address) func() {
	tx.frames = append(tx.frames, frame{sender: tx.Self(), self: self})
	depth := len(tx.frames)
	return func() {
		tx.frames = tx.frames[:depth-1]
	}
}

// Journal 记录撤销操作
func (tx *Tx) Journal(undo func()) {
	tx.journal = append(tx.journal, undo)
}

// Emit 追加事件日志
func (tx *Tx) Emit(log *types.Log) {
	n := len(tx.logs)
	log.Index = uint(n)
	tx.logs = append(tx.logs, log)
	tx.Journal(func() {
		tx.logs = tx.logs[:n]
	})
}

// Logs 当前已产生的日志
func (tx *Tx) Logs() []*types.Log {
	return tx.logs
}

func (tx *Tx) snapshot() int {
	return len(tx.journal)
}

func (tx *Tx) revertTo(id int) {
	for i := len(tx.journal) - 1; i >= id; i-- {
		tx.journal[i]()
	}
	tx.journal = tx.journal[:id]
}

// Contract 查找合约
func (tx *Tx) Contract(addr common.Address) (Contract, bool) {
	c, ok := tx.ledger.contracts[addr]
	return c, ok
}

// Deploy 由当前 Self 部署新合约，地址按 (deployer, nonce) 派生
func (tx *Tx) Deploy(build func(addr common.Address) (Contract, error)) (common.Address, error) {
	deployer := tx.Self()
	nonce := tx.ledger.nonces[deployer]
	addr := crypto.CreateAddress(deployer, nonce)
	SetMapValue(tx, tx.ledger.nonces, deployer, nonce+1)

	contract, err := build(addr)
	if err != nil {
		return common.Address{}, err
	}
	SetMapValue(tx, tx.ledger.contracts, addr, contract)
	return addr, nil
}

// BalanceOf 原生余额
func (tx *Tx) BalanceOf(addr common.Address) *big.Int {
	return new(big.Int).Set(tx.ledger.balanceOf(addr))
}

// Transfer 从当前 Self 转出原生币
func (tx *Tx) Transfer(to common.Address, value *big.Int) error {
	if value == nil || value.Sign() == 0 {
		return nil
	}
	if value.Sign() < 0 {
		return ErrInvalidValue
	}
	from := tx.Self()
	balance := tx.ledger.balanceOf(from)
	if balance.Cmp(value) < 0 {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientBalance, from.Hex(), balance, value)
	}
	SetMapValue(tx, tx.ledger.balances, from, new(big.Int).Sub(balance, value))
	SetMapValue(tx, tx.ledger.balances, to, new(big.Int).Add(tx.ledger.balanceOf(to), value))
	return nil
}

// Call 由当前 Self 发起外部调用：先转账 value，calldata 非空时调用目标合约。
// 调用失败时本次调用产生的修改全部撤销。
func (tx *Tx) Call(to common.Address, value *big.Int, calldata []byte) (err error) {
	snap := tx.snapshot()
	defer func() {
		if err != nil {
			tx.revertTo(snap)
		}
	}()

	if err := tx.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrContextCanceled, err)
	}
	if err := tx.Transfer(to, value); err != nil {
		return err
	}
	if len(calldata) == 0 {
		return nil
	}

	contract, ok := tx.Contract(to)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoContract, to.Hex())
	}
	if len(calldata) < 4 {
		return fmt.Errorf("%w: calldata too short", ErrUnknownSelector)
	}
	var selector [4]byte
	copy(selector[:], calldata[:4])
	return contract.Invoke(tx, selector, calldata[4:])
}
