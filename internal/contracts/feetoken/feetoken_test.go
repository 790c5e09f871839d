package feetoken

import (
	"context"
	"math/big"
	"testing"

	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userA = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	userB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	userC = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func TestTransfers(t *testing.T) {
	l := ledger.New(nil)
	ctx := context.Background()

	var token *Token
	_, err := l.Transact(ctx, userA, func(tx *ledger.Tx) error {
		var err error
		if token, err = Deploy(tx, "OGRE Token", "OGRE", userA); err != nil {
			return err
		}
		return token.Mint(tx, userA, big.NewInt(1000))
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), token.TotalSupply().Int64())

	_, err = l.Transact(ctx, userA, func(tx *ledger.Tx) error {
		return token.Transfer(tx, userB, big.NewInt(300))
	})
	require.NoError(t, err)
	assert.Equal(t, int64(700), token.BalanceOf(userA).Int64())
	assert.Equal(t, int64(300), token.BalanceOf(userB).Int64())

	_, err = l.Transact(ctx, userB, func(tx *ledger.Tx) error {
		return token.Transfer(tx, userC, big.NewInt(301))
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	t.Run("allowance", func(t *testing.T) {
		_, err := l.Transact(ctx, userC, func(tx *ledger.Tx) error {
			return token.TransferFrom(tx, userA, userC, big.NewInt(10))
		})
		assert.ErrorIs(t, err, ErrInsufficientAllowance)

		_, err = l.Transact(ctx, userA, func(tx *ledger.Tx) error {
			return token.Approve(tx, userC, big.NewInt(50))
		})
		require.NoError(t, err)

		_, err = l.Transact(ctx, userC, func(tx *ledger.Tx) error {
			return token.TransferFrom(tx, userA, userC, big.NewInt(10))
		})
		require.NoError(t, err)
		assert.Equal(t, int64(40), token.Allowance(userA, userC).Int64())
		assert.Equal(t, int64(10), token.BalanceOf(userC).Int64())
	})

	t.Run("abi transfer", func(t *testing.T) {
		calldata, err := ogreabi.PackMethod(ogreabi.ERC20, "transfer", userC, big.NewInt(5))
		require.NoError(t, err)
		_, err = l.Transact(ctx, userB, func(tx *ledger.Tx) error {
			return tx.Call(token.Address(), nil, calldata)
		})
		require.NoError(t, err)
		assert.Equal(t, int64(295), token.BalanceOf(userB).Int64())
	})
}
