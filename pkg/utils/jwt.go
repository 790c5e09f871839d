package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"ogre-backend/internal/types"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrWrongTokenType = errors.New("wrong token type")

// Claims 令牌声明
type Claims struct {
	UserID        int64  `json:"user_id"`
	WalletAddress string `json:"wallet_address"`
	Type          string `json:"type"`
	jwt.RegisteredClaims
}

// JWTManager 签发与校验访问/刷新令牌
type JWTManager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

func NewJWTManager(secret string, accessExpiry, refreshExpiry time.Duration) *JWTManager {
	return &JWTManager{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
		now:           time.Now,
	}
}

// GenerateTokens 生成令牌对，返回访问令牌过期时间
func (m *JWTManager) GenerateTokens(userID int64, walletAddress string) (string, string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.accessExpiry)

	accessToken, err := m.sign(userID, walletAddress, TokenTypeAccess, now, expiresAt)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := m.sign(userID, walletAddress, TokenTypeRefresh, now, now.Add(m.refreshExpiry))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return accessToken, refreshToken, expiresAt, nil
}

func (m *JWTManager) VerifyAccessToken(tokenString string) (*types.JWTClaims, error) {
	return m.verify(tokenString, TokenTypeAccess)
}

func (m *JWTManager) VerifyRefreshToken(tokenString string) (*types.JWTClaims, error) {
	return m.verify(tokenString, TokenTypeRefresh)
}

func (m *JWTManager) sign(userID int64, walletAddress, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		UserID:        userID,
		WalletAddress: walletAddress,
		Type:          tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    "ogre-backend",
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTManager) verify(tokenString, tokenType string) (*types.JWTClaims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.Type != tokenType {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrWrongTokenType, tokenType, claims.Type)
	}
	return &types.JWTClaims{
		UserID:        claims.UserID,
		WalletAddress: claims.WalletAddress,
		Type:          claims.Type,
	}, nil
}
