package credential

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

func setup(t *testing.T) (*ledger.Ledger, *Token) {
	t.Helper()
	l := ledger.New(ledger.NewManualClock(1_700_000_000))
	var token *Token
	_, err := l.Transact(context.Background(), userA, func(tx *ledger.Tx) error {
		var err error
		token, err = Deploy(tx, "Test NFTs", "TEST", userA)
		return err
	})
	require.NoError(t, err)
	return l, token
}

func send(l *ledger.Ledger, from common.Address, fn func(tx *ledger.Tx) error) (*ledger.Receipt, error) {
	return l.Transact(context.Background(), from, fn)
}

func TestMint(t *testing.T) {
	l, token := setup(t)

	receipt, err := send(l, userA, func(tx *ledger.Tx) error { return token.Mint(tx, userB, 0) })
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, ogreabi.ERC721.Events["Transfer"].ID, receipt.Logs[0].Topics[0])

	owner, err := token.OwnerOf(0)
	require.NoError(t, err)
	assert.Equal(t, userB, owner)
	assert.Equal(t, uint64(1), token.BalanceOf(userB))

	t.Run("only owner mints", func(t *testing.T) {
		_, err := send(l, userB, func(tx *ledger.Tx) error { return token.Mint(tx, userB, 1) })
		assert.ErrorIs(t, err, ErrNotContractOwner)
	})

	t.Run("existing token", func(t *testing.T) {
		_, err := send(l, userA, func(tx *ledger.Tx) error { return token.Mint(tx, userA, 0) })
		assert.ErrorIs(t, err, ErrTokenExists)
	})

	t.Run("zero address", func(t *testing.T) {
		_, err := send(l, userA, func(tx *ledger.Tx) error { return token.Mint(tx, common.Address{}, 5) })
		assert.ErrorIs(t, err, ErrMintToZero)
	})
}

func TestTransferFrom(t *testing.T) {
	l, token := setup(t)
	_, err := send(l, userA, func(tx *ledger.Tx) error { return token.Mint(tx, userA, 7) })
	require.NoError(t, err)

	_, err = send(l, userB, func(tx *ledger.Tx) error { return token.TransferFrom(tx, userA, userB, 7) })
	assert.ErrorIs(t, err, ErrNotOwnerNorApproved)

	_, err = send(l, userA, func(tx *ledger.Tx) error { return token.Approve(tx, userB, 7) })
	require.NoError(t, err)
	assert.Equal(t, userB, token.GetApproved(7))

	_, err = send(l, userB, func(tx *ledger.Tx) error { return token.SafeTransferFrom(tx, userA, userC, 7) })
	require.NoError(t, err)

	owner, err := token.OwnerOf(7)
	require.NoError(t, err)
	assert.Equal(t, userC, owner)
	assert.Equal(t, common.Address{}, token.GetApproved(7), "approval cleared on transfer")
	assert.Equal(t, uint64(0), token.BalanceOf(userA))

	_, err = send(l, userC, func(tx *ledger.Tx) error { return token.TransferFrom(tx, userA, userB, 7) })
	assert.ErrorIs(t, err, ErrTransferFromWrong)
}

func TestInvokeTransfer(t *testing.T) {
	l, token := setup(t)
	_, err := send(l, userA, func(tx *ledger.Tx) error { return token.Mint(tx, userA, 1) })
	require.NoError(t, err)

	calldata, err := ogreabi.PackMethod(ogreabi.ERC721, "transferFrom", userA, userB, ogreabi.BigUint(1))
	require.NoError(t, err)

	_, err = send(l, userA, func(tx *ledger.Tx) error { return tx.Call(token.Address(), nil, calldata) })
	require.NoError(t, err)

	owner, err := token.OwnerOf(1)
	require.NoError(t, err)
	assert.Equal(t, userB, owner)
}

func TestBurn(t *testing.T) {
	l, token := setup(t)
	_, err := send(l, userA, func(tx *ledger.Tx) error { return token.Mint(tx, userB, 3) })
	require.NoError(t, err)

	_, err = send(l, userA, func(tx *ledger.Tx) error { return token.Burn(tx, 3) })
	assert.ErrorIs(t, err, ErrNotOwnerNorApproved)

	_, err = send(l, userB, func(tx *ledger.Tx) error { return token.Burn(tx, 3) })
	require.NoError(t, err)

	_, err = token.OwnerOf(3)
	assert.ErrorIs(t, err, ErrNonexistentToken)
}

func TestFactoryProducesCredential(t *testing.T) {
	l := ledger.New(nil)
	var (
		f     *Factory
		token *Token
	)
	receipt, err := send(l, userA, func(tx *ledger.Tx) error {
		var err error
		if f, err = DeployFactory(tx); err != nil {
			return err
		}
		token, err = f.ProduceNFT(tx, "Name", "SYM", userA)
		return err
	})
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)

	produced := ogreabi.Governance.Events["ContractProduced"]
	assert.Equal(t, produced.ID, receipt.Logs[0].Topics[0])
	assert.Equal(t, common.BytesToHash(f.Address().Bytes()), receipt.Logs[0].Topics[1])
	assert.Equal(t, common.BytesToHash(userA.Bytes()), receipt.Logs[0].Topics[2])
	assert.Equal(t, []common.Address{token.Address()}, f.Produced())
	assert.Equal(t, userA, token.Owner())
}

// vault 实现 ERC721Receiver 的测试合约
type vault struct {
	address  common.Address
	received []uint64
	operator common.Address
}

func (v *vault) Address() common.Address { return v.address }

func (v *vault) Invoke(*ledger.Tx, [4]byte, []byte) error { return ledger.ErrUnknownSelector }

func (v *vault) OnERC721Received(tx *ledger.Tx, operator, _ common.Address, tokenID uint64) error {
	defer tx.Enter(v.address)()
	ledger.SetValue(tx, &v.operator, operator)
	ledger.AppendValue(tx, &v.received, tokenID)
	return nil
}

func deployVault(t *testing.T, l *ledger.Ledger) *vault {
	t.Helper()
	var v *vault
	_, err := send(l, userC, func(tx *ledger.Tx) error {
		_, err := tx.Deploy(func(addr common.Address) (ledger.Contract, error) {
			v = &vault{address: addr}
			return v, nil
		})
		return err
	})
	require.NoError(t, err)
	return v
}

func TestSafeTransferToContracts(t *testing.T) {
	l, token := setup(t)
	v := deployVault(t, l)
	var other *Token
	_, err := send(l, userA, func(tx *ledger.Tx) error {
		if err := token.Mint(tx, userA, 0); err != nil {
			return err
		}
		if err := token.Mint(tx, userA, 1); err != nil {
			return err
		}
		var err error
		other, err = Deploy(tx, "Other", "OTH", userA)
		return err
	})
	require.NoError(t, err)

	t.Run("contract without receiver hook", func(t *testing.T) {
		_, err := send(l, userA, func(tx *ledger.Tx) error { return token.SafeTransferFrom(tx, userA, other.Address(), 0) })
		assert.ErrorIs(t, err, ErrNonReceiver)

		owner, err := token.OwnerOf(0)
		require.NoError(t, err)
		assert.Equal(t, userA, owner, "failed safe transfer leaves ownership unchanged")
		assert.Equal(t, uint64(0), token.BalanceOf(other.Address()))
	})

	t.Run("receiver contract", func(t *testing.T) {
		_, err := send(l, userA, func(tx *ledger.Tx) error { return token.SafeTransferFrom(tx, userA, v.Address(), 0) })
		require.NoError(t, err)

		owner, err := token.OwnerOf(0)
		require.NoError(t, err)
		assert.Equal(t, v.Address(), owner)
		assert.Equal(t, []uint64{0}, v.received)
		assert.Equal(t, userA, v.operator)
	})

	t.Run("plain transfer skips the hook", func(t *testing.T) {
		_, err := send(l, userA, func(tx *ledger.Tx) error { return token.TransferFrom(tx, userA, other.Address(), 1) })
		require.NoError(t, err)
		assert.Equal(t, uint64(1), token.BalanceOf(other.Address()))
	})
}

func TestSendFromHolder(t *testing.T) {
	l, token := setup(t)
	v := deployVault(t, l)
	_, err := send(l, userA, func(tx *ledger.Tx) error {
		if err := token.Mint(tx, userA, 4); err != nil {
			return err
		}
		return token.SafeTransferFrom(tx, userA, v.Address(), 4)
	})
	require.NoError(t, err)

	receipt, err := send(l, userA, func(tx *ledger.Tx) error {
		defer tx.Enter(v.Address())()
		return Send(tx, userB, 4, token.Address())
	})
	require.NoError(t, err)

	owner, err := token.OwnerOf(4)
	require.NoError(t, err)
	assert.Equal(t, userB, owner)

	// Approval, Transfer, ERC721Sent
	require.Len(t, receipt.Logs, 3)
	sent := receipt.Logs[2]
	event := ogreabi.Governance.Events["ERC721Sent"]
	assert.Equal(t, event.ID, sent.Topics[0])
	assert.Equal(t, v.Address(), sent.Address)
	assert.Equal(t, common.BytesToHash(userB.Bytes()), sent.Topics[1])
	assert.Equal(t, common.BytesToHash(token.Address().Bytes()), sent.Topics[2])
	args := map[string]interface{}{}
	require.NoError(t, event.Inputs.UnpackIntoMap(args, sent.Data))
	assert.Equal(t, big.NewInt(4), args["tokenId"])

	_, err = send(l, userA, func(tx *ledger.Tx) error {
		defer tx.Enter(v.Address())()
		return Send(tx, userB, 4, token.Address())
	})
	assert.ErrorIs(t, err, ErrNotOwnerNorApproved, "vault no longer holds the token")
}

func TestInvokeRejectsOversizedTokenID(t *testing.T) {
	l, token := setup(t)
	_, err := send(l, userA, func(tx *ledger.Tx) error { return token.Mint(tx, userA, 0) })
	require.NoError(t, err)

	// 2^64 截断后就是 token 0
	wrapped := new(big.Int).Lsh(big.NewInt(1), 64)
	for _, method := range []string{"transferFrom", "safeTransferFrom"} {
		calldata, err := ogreabi.PackMethod(ogreabi.ERC721, method, userA, userB, wrapped)
		require.NoError(t, err)
		_, err = send(l, userA, func(tx *ledger.Tx) error { return tx.Call(token.Address(), nil, calldata) })
		assert.ErrorIs(t, err, ErrNonexistentToken, method)
	}

	calldata, err := ogreabi.PackMethod(ogreabi.ERC721, "approve", userB, wrapped)
	require.NoError(t, err)
	_, err = send(l, userA, func(tx *ledger.Tx) error { return tx.Call(token.Address(), nil, calldata) })
	assert.ErrorIs(t, err, ErrNonexistentToken)

	owner, err := token.OwnerOf(0)
	require.NoError(t, err)
	assert.Equal(t, userA, owner)
	assert.Equal(t, common.Address{}, token.GetApproved(0))
}
