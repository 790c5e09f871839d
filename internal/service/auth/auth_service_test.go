package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"ogre-backend/internal/types"
	"ogre-backend/pkg/crypto"
	"ogre-backend/pkg/utils"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryUsers struct {
	byID   map[int64]*types.User
	nextID int64
	logins int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: make(map[int64]*types.User)}
}

func (m *memoryUsers) CreateUser(_ context.Context, u *types.User) error {
	m.nextID++
	u.ID = m.nextID
	u.WalletAddress = strings.ToLower(u.WalletAddress)
	u.CreatedAt = time.Now()
	m.byID[u.ID] = u
	return nil
}

func (m *memoryUsers) GetUserByWallet(_ context.Context, wallet string) (*types.User, error) {
	for _, u := range m.byID {
		if u.WalletAddress == strings.ToLower(wallet) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryUsers) GetUserByID(_ context.Context, id int64) (*types.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryUsers) UpdateLastLogin(_ context.Context, id int64) error {
	m.logins++
	now := time.Now()
	m.byID[id].LastLogin = &now
	return nil
}

func (m *memoryUsers) DisableUser(_ context.Context, id int64) error {
	m.byID[id].Status = 0
	return nil
}

type signer struct {
	key     []byte
	address string
}

func newSigner(t *testing.T) signer {
	t.Helper()
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	return signer{key: ethcrypto.FromECDSA(key), address: ethcrypto.PubkeyToAddress(key.PublicKey).Hex()}
}

func (s signer) connectRequest(t *testing.T, message string) *types.WalletConnectRequest {
	t.Helper()
	sig, err := crypto.SignMessage(message, s.key)
	require.NoError(t, err)
	return &types.WalletConnectRequest{WalletAddress: s.address, Signature: sig, Message: message}
}

func newTestService() (*service, *memoryUsers) {
	users := newMemoryUsers()
	jwt := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewService(users, jwt).(*service), users
}

func TestWalletConnectCreatesThenReusesUser(t *testing.T) {
	svc, users := newTestService()
	s := newSigner(t)
	ctx := context.Background()

	first, err := svc.WalletConnect(ctx, s.connectRequest(t, "Sign in to OGRE"))
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(s.address), first.User.WalletAddress)
	assert.NotEmpty(t, first.AccessToken)
	assert.NotEmpty(t, first.RefreshToken)
	assert.Equal(t, 0, users.logins)

	second, err := svc.WalletConnect(ctx, s.connectRequest(t, "Sign in again"))
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, 1, users.logins)
	assert.Len(t, users.byID, 1)

	claims, err := svc.VerifyToken(ctx, second.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, claims.UserID)
}

func TestWalletConnectRejectsBadInput(t *testing.T) {
	svc, _ := newTestService()
	s, other := newSigner(t), newSigner(t)
	ctx := context.Background()

	req := s.connectRequest(t, "hello")
	req.WalletAddress = "0x1234"
	_, err := svc.WalletConnect(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	req = s.connectRequest(t, "hello")
	req.WalletAddress = other.address
	_, err = svc.WalletConnect(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	req = s.connectRequest(t, "hello")
	req.Signature = "0x1234"
	_, err = svc.WalletConnect(ctx, req)
	assert.ErrorIs(t, err, ErrSignatureRecovery)
}

func TestRefreshToken(t *testing.T) {
	svc, users := newTestService()
	s := newSigner(t)
	ctx := context.Background()

	resp, err := svc.WalletConnect(ctx, s.connectRequest(t, "hello"))
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, &types.RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken(ctx, &types.RefreshTokenRequest{RefreshToken: resp.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, users.DisableUser(ctx, resp.User.ID))
	_, err = svc.RefreshToken(ctx, &types.RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrUserDisabled)
	_, err = svc.VerifyToken(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestGetProfile(t *testing.T) {
	svc, _ := newTestService()
	s := newSigner(t)
	ctx := context.Background()

	resp, err := svc.WalletConnect(ctx, s.connectRequest(t, "hello"))
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.User.WalletAddress, profile.WalletAddress)

	_, err = svc.GetProfile(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
