package keeper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ogre-backend/internal/contracts/dao"
	"ogre-backend/internal/contracts/hopper"
	"ogre-backend/internal/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	daoAddr = common.HexToAddress("0x0000000000000000000000000000000000000d00")
	keeperA = common.HexToAddress("0x00000000000000000000000000000000000000ee")
)

func entry(n byte, ready uint64) Entry {
	return Entry{DAO: daoAddr, Proposal: common.BytesToAddress([]byte{n}), Ready: ready}
}

type fakeExecutor struct {
	results map[common.Address]error
	calls   []common.Address
}

func (f *fakeExecutor) ExecuteProposal(_ context.Context, caller, _, proposalAddr common.Address) (*types.TxResult, error) {
	if caller != keeperA {
		return nil, fmt.Errorf("unexpected caller %s", caller.Hex())
	}
	f.calls = append(f.calls, proposalAddr)
	if err := f.results[proposalAddr]; err != nil {
		return nil, err
	}
	return &types.TxResult{TxHash: "0x01"}, nil
}

func TestMemoryReadyQueueDue(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryReadyQueue()
	require.NoError(t, q.Push(ctx, entry(3, 300)))
	require.NoError(t, q.Push(ctx, entry(1, 100)))
	require.NoError(t, q.Push(ctx, entry(2, 200)))

	due, err := q.Due(ctx, 250, 0)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, entry(1, 100), due[0])
	assert.Equal(t, entry(2, 200), due[1])

	due, err = q.Due(ctx, 1000, 1)
	require.NoError(t, err)
	assert.Equal(t, []Entry{entry(1, 100)}, due)

	// 重复 push 覆盖就绪时间
	require.NoError(t, q.Push(ctx, entry(1, 500)))
	require.NoError(t, q.Remove(ctx, entry(2, 0)))
	due, err = q.Due(ctx, 400, 0)
	require.NoError(t, err)
	assert.Equal(t, []Entry{entry(3, 300)}, due)
}

func TestParseMember(t *testing.T) {
	e := entry(7, 42)
	parsed, err := parseMember(e.member(), 42)
	require.NoError(t, err)
	assert.Equal(t, e, parsed)

	_, err = parseMember("not-a-member", 1)
	assert.Error(t, err)
	_, err = parseMember(daoAddr.Hex()+":0x12", 1)
	assert.Error(t, err)
}

func TestTick(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryReadyQueue()
	executed, notReady, gone, broken, later := entry(1, 10), entry(2, 10), entry(3, 10), entry(4, 10), entry(5, 99)
	for _, e := range []Entry{executed, notReady, gone, broken, later} {
		require.NoError(t, q.Push(ctx, e))
	}

	exec := &fakeExecutor{results: map[common.Address]error{
		notReady.Proposal: fmt.Errorf("consume: %w", hopper.ErrActionNotReady),
		gone.Proposal:     dao.ErrProposalNotPassed,
		broken.Proposal:   errors.New("action reverted"),
	}}
	k := New(q, exec, func() uint64 { return 50 }, keeperA, 0, 0)

	n, err := k.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []common.Address{executed.Proposal, notReady.Proposal, gone.Proposal, broken.Proposal}, exec.calls)

	remaining, err := q.Due(ctx, 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, []Entry{notReady, broken, later}, remaining)
}

func TestTickStopsOnCancel(t *testing.T) {
	q := NewMemoryReadyQueue()
	require.NoError(t, q.Push(context.Background(), entry(1, 1)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &fakeExecutor{}
	k := New(q, exec, func() uint64 { return 10 }, keeperA, 0, 0)

	n, err := k.Tick(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Empty(t, exec.calls)
}
