package hopper

import (
	"context"
	"math/big"
	"testing"

	"ogre-backend/internal/contracts/credential"
	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delay = 10

var (
	userA = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	userB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

type fixture struct {
	clock *ledger.ManualClock
	l     *ledger.Ledger
	stub  *StubHopper
	nft   *credential.Token
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{clock: ledger.NewManualClock(1_700_000_000)}
	f.l = ledger.New(f.clock)
	_, err := f.send(userA, func(tx *ledger.Tx) error {
		var err error
		if f.nft, err = credential.Deploy(tx, "Test NFTs", "TEST", userA); err != nil {
			return err
		}
		f.stub, err = DeployStub(tx, delay)
		return err
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) send(from common.Address, fn func(tx *ledger.Tx) error) (*ledger.Receipt, error) {
	return f.l.Transact(context.Background(), from, fn)
}

func (f *fixture) load(t *testing.T, action Action) uint64 {
	t.Helper()
	var ready uint64
	receipt, err := f.send(userA, func(tx *ledger.Tx) error {
		var err error
		_, ready, err = f.stub.LoadAction(tx, action)
		return err
	})
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, ogreabi.Governance.Events["ActionLoaded"].ID, receipt.Logs[0].Topics[0])
	return ready
}

func (f *fixture) execute(action Action, ready uint64) (*ledger.Receipt, error) {
	return f.send(userA, func(tx *ledger.Tx) error {
		return f.stub.ExecuteAction(tx, action, ready)
	})
}

func transferData(t *testing.T, from, to common.Address, tokenID uint64) []byte {
	t.Helper()
	return transferDataBig(t, from, to, ogreabi.BigUint(tokenID))
}

func transferDataBig(t *testing.T, from, to common.Address, tokenID *big.Int) []byte {
	t.Helper()
	addressT, _ := abi.NewType("address", "", nil)
	uintT, _ := abi.NewType("uint256", "", nil)
	data, err := abi.Arguments{{Type: addressT}, {Type: addressT}, {Type: uintT}}.Pack(from, to, tokenID)
	require.NoError(t, err)
	return data
}

// holdToken 铸造 token 0 并安全转给 stub
func (f *fixture) holdToken(t *testing.T) {
	t.Helper()
	_, err := f.send(userA, func(tx *ledger.Tx) error {
		if err := f.nft.Mint(tx, userA, 0); err != nil {
			return err
		}
		return f.nft.SafeTransferFrom(tx, userA, f.stub.Address(), 0)
	})
	require.NoError(t, err)
}

func TestExecuteUnloadedAction(t *testing.T) {
	f := newFixture(t)
	_, err := f.execute(Action{Target: userA, Value: big.NewInt(1)}, 0)
	assert.ErrorIs(t, err, ErrActionNotLoaded)
}

func TestLoadAndExecuteValueTransfer(t *testing.T) {
	f := newFixture(t)
	action := Action{Target: userA, Value: big.NewInt(1), Data: []byte{}}

	ready := f.load(t, action)
	assert.Equal(t, f.clock.Now()+delay, ready)

	key, err := action.Key()
	require.NoError(t, err)
	assert.True(t, f.stub.Hopper().IsLoaded(key))

	_, err = f.execute(action, ready)
	assert.ErrorIs(t, err, ErrActionNotReady)

	f.clock.Advance(delay + 1)
	require.NoError(t, f.l.Fund(f.stub.Address(), big.NewInt(100)))

	_, err = f.execute(action, ready-1)
	assert.ErrorIs(t, err, ErrActionNotLoaded, "ready must match the loaded marker")

	receipt, err := f.execute(action, ready)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, ogreabi.Governance.Events["ActionExecuted"].ID, receipt.Logs[0].Topics[0])
	assert.Equal(t, int64(99), f.l.BalanceOf(f.stub.Address()).Int64())
	assert.False(t, f.stub.Hopper().IsLoaded(key))

	_, err = f.execute(action, ready)
	assert.ErrorIs(t, err, ErrActionNotLoaded)
}

func TestDuplicateLoadRejected(t *testing.T) {
	f := newFixture(t)
	action := Action{Target: userB, Value: new(big.Int)}
	ready := f.load(t, action)

	f.clock.Advance(3)
	_, err := f.send(userA, func(tx *ledger.Tx) error {
		_, _, err := f.stub.LoadAction(tx, action)
		return err
	})
	assert.ErrorIs(t, err, ErrActionAlreadyLoaded)

	key, err := action.Key()
	require.NoError(t, err)
	stored, ok := f.stub.Hopper().Ready(key)
	require.True(t, ok)
	assert.Equal(t, ready, stored)
}

func TestExecuteERC721Transfer(t *testing.T) {
	f := newFixture(t)
	_, err := f.send(userA, func(tx *ledger.Tx) error {
		if err := f.nft.Mint(tx, userA, 0); err != nil {
			return err
		}
		return f.nft.TransferFrom(tx, userA, f.stub.Address(), 0)
	})
	require.NoError(t, err)

	action := Action{
		Target: f.nft.Address(),
		Value:  new(big.Int),
		Sig:    "transferFrom(address,address,uint256)",
		Data:   transferData(t, f.stub.Address(), userB, 0),
	}
	ready := f.load(t, action)
	f.clock.Advance(3 * (delay + 1))

	receipt, err := f.execute(action, ready)
	require.NoError(t, err)
	last := receipt.Logs[len(receipt.Logs)-1]
	assert.Equal(t, ogreabi.Governance.Events["ActionExecuted"].ID, last.Topics[0])

	owner, err := f.nft.OwnerOf(0)
	require.NoError(t, err)
	assert.Equal(t, userB, owner)
}

func TestFailedActionStaysLoaded(t *testing.T) {
	f := newFixture(t)
	_, err := f.send(userA, func(tx *ledger.Tx) error {
		if err := f.nft.Mint(tx, userA, 0); err != nil {
			return err
		}
		if err := f.nft.Mint(tx, userA, 1); err != nil {
			return err
		}
		return f.nft.TransferFrom(tx, userA, f.stub.Address(), 1)
	})
	require.NoError(t, err)

	// token 0 不在 stub 名下，转移必然失败
	action := Action{
		Target: f.nft.Address(),
		Value:  new(big.Int),
		Sig:    "transferFrom(address,address,uint256)",
		Data:   transferData(t, f.stub.Address(), userB, 0),
	}
	ready := f.load(t, action)
	f.clock.Advance(3 * (delay + 1))

	_, err = f.execute(action, ready)
	assert.ErrorIs(t, err, ErrActionExecutionFailed)
	assert.ErrorContains(t, err, credential.ErrNotOwnerNorApproved.Error())

	key, err := action.Key()
	require.NoError(t, err)
	assert.True(t, f.stub.Hopper().IsLoaded(key))

	owner, err := f.nft.OwnerOf(1)
	require.NoError(t, err)
	assert.Equal(t, f.stub.Address(), owner)
}

func TestStubInvoke(t *testing.T) {
	f := newFixture(t)
	calldata, err := ogreabi.PackMethod(ogreabi.Governance, "loadAction", userB, big.NewInt(0), "", []byte{})
	require.NoError(t, err)

	_, err = f.send(userA, func(tx *ledger.Tx) error {
		return tx.Call(f.stub.Address(), nil, calldata)
	})
	require.NoError(t, err)

	key, err := Action{Target: userB, Value: big.NewInt(0), Data: []byte{}}.Key()
	require.NoError(t, err)
	assert.True(t, f.stub.Hopper().IsLoaded(key))
}

func TestExecuteRejectsOversizedReady(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.l.Fund(f.stub.Address(), big.NewInt(1)))
	action := Action{Target: userB, Value: big.NewInt(1), Data: []byte{}}
	ready := f.load(t, action)
	f.clock.Advance(delay + 1)

	// ready + 2^64 截断后与存储值相同
	forged := new(big.Int).Add(ogreabi.BigUint(ready), new(big.Int).Lsh(big.NewInt(1), 64))
	calldata, err := ogreabi.PackMethod(ogreabi.Governance, "executeAction", action.Target, action.Value, action.Sig, action.Data, forged)
	require.NoError(t, err)

	_, err = f.send(userA, func(tx *ledger.Tx) error { return tx.Call(f.stub.Address(), nil, calldata) })
	assert.ErrorIs(t, err, ErrActionNotLoaded)
	assert.Equal(t, int64(0), f.l.BalanceOf(userB).Int64())

	key, err := action.Key()
	require.NoError(t, err)
	assert.True(t, f.stub.Hopper().IsLoaded(key))

	calldata, err = ogreabi.PackMethod(ogreabi.Governance, "executeAction", action.Target, action.Value, action.Sig, action.Data, ogreabi.BigUint(ready))
	require.NoError(t, err)
	_, err = f.send(userA, func(tx *ledger.Tx) error { return tx.Call(f.stub.Address(), nil, calldata) })
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.l.BalanceOf(userB).Int64())
}

func TestOversizedTokenIDActionFails(t *testing.T) {
	f := newFixture(t)
	f.holdToken(t)

	action := Action{
		Target: f.nft.Address(),
		Value:  new(big.Int),
		Sig:    "transferFrom(address,address,uint256)",
		Data:   transferDataBig(t, f.stub.Address(), userB, new(big.Int).Lsh(big.NewInt(1), 64)),
	}
	ready := f.load(t, action)
	f.clock.Advance(delay + 1)

	_, err := f.execute(action, ready)
	assert.ErrorIs(t, err, ErrActionExecutionFailed)
	assert.ErrorContains(t, err, credential.ErrNonexistentToken.Error())

	owner, err := f.nft.OwnerOf(0)
	require.NoError(t, err)
	assert.Equal(t, f.stub.Address(), owner)
}

func TestStubSendsERC721(t *testing.T) {
	f := newFixture(t)
	f.holdToken(t)

	_, err := f.send(userA, func(tx *ledger.Tx) error {
		return f.stub.SendERC721(tx, userA, 0, f.nft.Address())
	})
	assert.ErrorIs(t, err, ErrOnlyDelayedAction)

	data, err := ogreabi.Governance.Methods["sendERC721"].Inputs.Pack(userB, big.NewInt(0), f.nft.Address())
	require.NoError(t, err)
	action := Action{
		Target: f.stub.Address(),
		Value:  new(big.Int),
		Sig:    "sendERC721(address,uint256,address)",
		Data:   data,
	}
	ready := f.load(t, action)
	f.clock.Advance(delay + 1)

	receipt, err := f.execute(action, ready)
	require.NoError(t, err)

	owner, err := f.nft.OwnerOf(0)
	require.NoError(t, err)
	assert.Equal(t, userB, owner)

	// Approval, Transfer, ERC721Sent, ActionExecuted
	require.Len(t, receipt.Logs, 4)
	assert.Equal(t, ogreabi.Governance.Events["ERC721Sent"].ID, receipt.Logs[2].Topics[0])
	assert.Equal(t, f.stub.Address(), receipt.Logs[2].Address)
}
