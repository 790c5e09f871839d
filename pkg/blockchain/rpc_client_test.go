package blockchain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"ogre-backend/internal/contracts/ogreabi"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChain struct {
	calls  []ethereum.CallMsg
	result []byte
	err    error
	closed bool
}

func (f *fakeChain) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls = append(f.calls, msg)
	return f.result, f.err
}

func (f *fakeChain) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return big.NewInt(77), f.err
}

func (f *fakeChain) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &types.Header{Time: 1_700_000_123}, nil
}

func (f *fakeChain) Close() { f.closed = true }

var (
	nft   = common.HexToAddress("0x0000000000000000000000000000000000000777")
	owner = common.HexToAddress("0x00000000000000000000000000000000000000aa")
)

func TestOwnerOf(t *testing.T) {
	chain := &fakeChain{result: common.LeftPadBytes(owner.Bytes(), 32)}
	c := newRPCClient(chain, 0)

	got, err := c.OwnerOf(context.Background(), nft, big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	require.Len(t, chain.calls, 1)
	assert.Equal(t, nft, *chain.calls[0].To)
	wantData, err := ogreabi.PackMethod(ogreabi.ERC721, "ownerOf", big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, wantData, chain.calls[0].Data)
}

func TestOwnerOfErrors(t *testing.T) {
	c := newRPCClient(&fakeChain{err: errors.New("execution reverted: ERC721: invalid token ID")}, 0)
	_, err := c.OwnerOf(context.Background(), nft, big.NewInt(1))
	assert.ErrorIs(t, err, ErrTokenNotFound)

	c = newRPCClient(&fakeChain{err: errors.New("connection refused")}, 0)
	_, err = c.OwnerOf(context.Background(), nft, big.NewInt(1))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenNotFound)

	c = newRPCClient(&fakeChain{result: []byte{1, 2}}, 0)
	_, err = c.OwnerOf(context.Background(), nft, big.NewInt(1))
	assert.ErrorContains(t, err, "unexpected ownerOf result")
}

func TestBlockTimestampAndBalance(t *testing.T) {
	chain := &fakeChain{}
	c := newRPCClient(chain, 0)

	ts, err := c.BlockTimestamp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1_700_000_123), ts)

	balance, err := c.NativeBalance(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(77), balance.Int64())

	c.Close()
	assert.True(t, chain.closed)
}

func TestMaskURL(t *testing.T) {
	assert.Equal(t, "https://eth-mainnet.g.alchemy.com/v2/abcd****wxyz",
		maskURL("https://eth-mainnet.g.alchemy.com/v2/abcdefghijklmnopqrstuvwxyz"))
	assert.Equal(t, "http://geth/rpc", maskURL("http://geth/rpc"))
}
