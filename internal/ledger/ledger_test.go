package ledger

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// counter 测试用合约：调用即计数，selector 0xdeadbeef 时失败
type counter struct {
	address common.Address
	count   int
	callers []common.Address
}

func (c *counter) Address() common.Address { return c.address }

func (c *counter) Invoke(tx *Tx, selector [4]byte, args []byte) error {
	defer tx.Enter(c.address)()
	SetValue(tx, &c.count, c.count+1)
	AppendValue(tx, &c.callers, tx.Sender())
	tx.Emit(&types.Log{Address: c.address})
	if selector == [4]byte{0xde, 0xad, 0xbe, 0xef} {
		return errBoom
	}
	return nil
}

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

func deployCounter(t *testing.T, l *Ledger) *counter {
	t.Helper()
	var c *counter
	_, err := l.Transact(context.Background(), alice, func(tx *Tx) error {
		_, err := tx.Deploy(func(addr common.Address) (Contract, error) {
			c = &counter{address: addr}
			return c, nil
		})
		return err
	})
	require.NoError(t, err)
	return c
}

func TestTransactCommitsAndReverts(t *testing.T) {
	l := New(NewManualClock(1000))
	c := deployCounter(t, l)

	receipt, err := l.Transact(context.Background(), alice, func(tx *Tx) error {
		return tx.Call(c.Address(), nil, []byte{1, 2, 3, 4})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.count)
	assert.Equal(t, []common.Address{alice}, c.callers)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, receipt.TxHash, receipt.Logs[0].TxHash)
	assert.Equal(t, receipt.BlockNumber, receipt.Logs[0].BlockNumber)
	assert.Equal(t, uint64(1000), receipt.Timestamp)
	assert.NotEmpty(t, receipt.ID)

	block := l.BlockNumber()
	_, err = l.Transact(context.Background(), alice, func(tx *Tx) error {
		if err := tx.Call(c.Address(), nil, []byte{1, 2, 3, 4}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, c.count, "outer failure reverts inner call")
	assert.Len(t, c.callers, 1)
	assert.Equal(t, block, l.BlockNumber())
}

func TestCallRevertsOnlyFailedSubcall(t *testing.T) {
	l := New(NewManualClock(1000))
	c := deployCounter(t, l)

	receipt, err := l.Transact(context.Background(), alice, func(tx *Tx) error {
		require.NoError(t, tx.Call(c.Address(), nil, []byte{1, 2, 3, 4}))
		err := tx.Call(c.Address(), nil, []byte{0xde, 0xad, 0xbe, 0xef})
		require.ErrorIs(t, err, errBoom)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.count)
	assert.Len(t, receipt.Logs, 1)
}

func TestNativeTransfers(t *testing.T) {
	l := New(nil)
	require.NoError(t, l.Fund(alice, big.NewInt(100)))
	assert.ErrorIs(t, l.Fund(alice, big.NewInt(-1)), ErrInvalidValue)

	_, err := l.Transact(context.Background(), alice, func(tx *Tx) error {
		return tx.Call(bob, big.NewInt(40), nil)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(60), l.BalanceOf(alice).Int64())
	assert.Equal(t, int64(40), l.BalanceOf(bob).Int64())

	_, err = l.Transact(context.Background(), alice, func(tx *Tx) error {
		return tx.Call(bob, big.NewInt(61), nil)
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, int64(60), l.BalanceOf(alice).Int64())
}

func TestCallErrors(t *testing.T) {
	l := New(nil)
	c := deployCounter(t, l)

	_, err := l.Transact(context.Background(), alice, func(tx *Tx) error {
		return tx.Call(bob, nil, []byte{1, 2, 3, 4})
	})
	assert.ErrorIs(t, err, ErrNoContract)

	_, err = l.Transact(context.Background(), alice, func(tx *Tx) error {
		return tx.Call(c.Address(), nil, []byte{1})
	})
	assert.ErrorIs(t, err, ErrUnknownSelector)
}

func TestFramesTrackSender(t *testing.T) {
	l := New(nil)
	_, err := l.Transact(context.Background(), alice, func(tx *Tx) error {
		assert.Equal(t, alice, tx.Self())
		assert.Equal(t, alice, tx.Origin())

		leave := tx.Enter(bob)
		assert.Equal(t, alice, tx.Sender())
		assert.Equal(t, bob, tx.Self())
		leave()

		assert.Equal(t, alice, tx.Self())
		return nil
	})
	require.NoError(t, err)
}

func TestDeployAddressesAreDeterministic(t *testing.T) {
	first := deployCounter(t, New(nil))
	second := deployCounter(t, New(nil))
	assert.Equal(t, first.Address(), second.Address())

	l := New(nil)
	a := deployCounter(t, l)
	b := deployCounter(t, l)
	assert.NotEqual(t, a.Address(), b.Address())
}

func TestCanceledContext(t *testing.T) {
	l := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Transact(ctx, alice, func(tx *Tx) error { return nil })
	assert.ErrorIs(t, err, ErrContextCanceled)
	assert.ErrorIs(t, l.View(ctx, func(tx *Tx) error { return nil }), ErrContextCanceled)
}

func TestViewDiscardsChanges(t *testing.T) {
	l := New(nil)
	c := deployCounter(t, l)

	err := l.View(context.Background(), func(tx *Tx) error {
		return tx.Call(c.Address(), nil, []byte{1, 2, 3, 4})
	})
	require.NoError(t, err)
	assert.Equal(t, 0, c.count)
}

func TestManualClock(t *testing.T) {
	clock := NewManualClock(10)
	clock.Advance(5)
	assert.Equal(t, uint64(15), clock.Now())
	clock.Set(100)
	assert.Equal(t, uint64(100), clock.Now())
}

func TestLedgersRestartWithDistinctIdentity(t *testing.T) {
	first, second := New(NewManualClock(1000)), New(NewManualClock(1000))
	require.NotEqual(t, first.ID(), second.ID())

	// 新账本从相同高度和 nonce 开始，只有 ID 和交易哈希不同
	c1, c2 := deployCounter(t, first), deployCounter(t, second)
	assert.Equal(t, c1.Address(), c2.Address())

	call := func(l *Ledger, c *counter) *Receipt {
		receipt, err := l.Transact(context.Background(), alice, func(tx *Tx) error {
			return tx.Call(c.Address(), nil, []byte{1, 2, 3, 4})
		})
		require.NoError(t, err)
		return receipt
	}
	r1, r2 := call(first, c1), call(second, c2)
	assert.Equal(t, r1.BlockNumber, r2.BlockNumber)
	assert.Equal(t, r1.Logs[0].Index, r2.Logs[0].Index)
	assert.NotEqual(t, r1.TxHash, r2.TxHash)
	assert.Equal(t, first.ID(), r1.LedgerID)
	assert.Equal(t, second.ID(), r2.LedgerID)
}
