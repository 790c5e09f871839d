// Package hopper 实现延时动作引擎：动作按内容派生的 key 入队，
// 延时结束后恰好执行一次。
package hopper

import (
	"errors"
	"fmt"
	"math/big"

	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrActionAlreadyLoaded   = errors.New("action already loaded")
	ErrActionNotLoaded       = errors.New("action not loaded")
	ErrActionNotReady        = errors.New("action not ready")
	ErrActionExecutionFailed = errors.New("action execution failed")
)

// Action 一个待执行的外部调用
type Action struct {
	Target common.Address `json:"target"`
	Value  *big.Int       `json:"value"`
	Sig    string         `json:"sig"`
	Data   []byte         `json:"data"`
}

// Key 动作的内容派生标识
func (a Action) Key() (common.Hash, error) {
	return ogreabi.Key(a.Target, a.Value, a.Sig, a.Data)
}

// Hopper 延时队列，嵌入在持有它的合约中，事件以宿主合约地址发出。
// 同一 key 在执行前重复入队会被拒绝，已入队动作的就绪时间不会被推后。
type Hopper struct {
	host  common.Address
	delay uint64
	ready map[common.Hash]uint64
}

// New 创建延时队列
func New(host common.Address, delay uint64) *Hopper {
	return &Hopper{
		host:  host,
		delay: delay,
		ready: make(map[common.Hash]uint64),
	}
}

// Delay 延时（秒）
func (h *Hopper) Delay() uint64 {
	return h.delay
}

// Ready 返回 key 的就绪时间
func (h *Hopper) Ready(key common.Hash) (uint64, bool) {
	ready, ok := h.ready[key]
	return ready, ok
}

// IsLoaded key 是否在队列中
func (h *Hopper) IsLoaded(key common.Hash) bool {
	_, ok := h.ready[key]
	return ok
}

// LoadAction 入队，ready = now + delay
func (h *Hopper) LoadAction(tx *ledger.Tx, action Action) (common.Hash, uint64, error) {
	key, err := action.Key()
	if err != nil {
		return common.Hash{}, 0, err
	}
	if h.IsLoaded(key) {
		return common.Hash{}, 0, fmt.Errorf("%w: %s", ErrActionAlreadyLoaded, key.Hex())
	}

	ready := tx.Now() + h.delay
	ledger.SetMapValue(tx, h.ready, key, ready)
	if err := h.emit(tx, "ActionLoaded", key, action, ready); err != nil {
		return common.Hash{}, 0, err
	}
	return key, ready, nil
}

// ExecuteAction 校验 (key, ready) 后以宿主合约身份执行调用并出队。
// 调用失败时返回 ErrActionExecutionFailed，外层交易回滚，动作保持入队。
func (h *Hopper) ExecuteAction(tx *ledger.Tx, action Action, claimedReady uint64) error {
	key, err := h.Consume(tx, action, claimedReady)
	if err != nil {
		return err
	}
	if err := Dispatch(tx, action); err != nil {
		return fmt.Errorf("%w: %v", ErrActionExecutionFailed, err)
	}
	return h.emit(tx, "ActionExecuted", key, action, claimedReady)
}

// Consume 校验动作已就绪并出队，不执行调用
func (h *Hopper) Consume(tx *ledger.Tx, action Action, claimedReady uint64) (common.Hash, error) {
	key, err := action.Key()
	if err != nil {
		return common.Hash{}, err
	}
	ready, ok := h.ready[key]
	if !ok || ready != claimedReady {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrActionNotLoaded, key.Hex())
	}
	if tx.Now() < ready {
		return common.Hash{}, fmt.Errorf("%w: ready at %d, now %d", ErrActionNotReady, ready, tx.Now())
	}
	ledger.DeleteMapValue(tx, h.ready, key)
	return key, nil
}

// Dispatch 以当前 Self 发起动作调用：转账 value，sig 非空时拼接函数选择器
func Dispatch(tx *ledger.Tx, action Action) error {
	return tx.Call(action.Target, action.Value, ogreabi.EncodeCall(action.Sig, action.Data))
}

func (h *Hopper) emit(tx *ledger.Tx, event string, key common.Hash, action Action, ready uint64) error {
	value := action.Value
	if value == nil {
		value = new(big.Int)
	}
	data := action.Data
	if data == nil {
		data = []byte{}
	}
	log, err := ogreabi.PackEvent(ogreabi.Governance, event, h.host,
		key, action.Target, value, action.Sig, data, ogreabi.BigUint(ready))
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}
