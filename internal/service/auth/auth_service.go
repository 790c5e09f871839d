package auth

import (
	"context"
	"errors"
	"fmt"

	"ogre-backend/internal/repository/user"
	"ogre-backend/internal/types"
	"ogre-backend/pkg/crypto"
	"ogre-backend/pkg/logger"
	"ogre-backend/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidAddress    = errors.New("invalid wallet address")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserDisabled      = errors.New("user account is disabled")
	ErrInvalidToken      = errors.New("invalid token")
	ErrSignatureRecovery = errors.New("failed to recover address from signature")
)

// Service 认证服务接口
type Service interface {
	WalletConnect(ctx context.Context, req *types.WalletConnectRequest) (*types.WalletConnectResponse, error)
	RefreshToken(ctx context.Context, req *types.RefreshTokenRequest) (*types.WalletConnectResponse, error)
	GetProfile(ctx context.Context, userID int64) (*types.UserProfile, error)
	VerifyToken(ctx context.Context, tokenString string) (*types.JWTClaims, error)
}

type service struct {
	userRepo   user.Repository
	jwtManager *utils.JWTManager
}

func NewService(userRepo user.Repository, jwtManager *utils.JWTManager) Service {
	return &service{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// WalletConnect 处理钱包连接认证
// 1. 验证钱包地址格式
// 2. 验证签名
// 3. 查找或创建用户
// 4. 生成JWT令牌
func (s *service) WalletConnect(ctx context.Context, req *types.WalletConnectRequest) (*types.WalletConnectResponse, error) {
	if !crypto.ValidateEthereumAddress(req.WalletAddress) {
		logger.Error("WalletConnect Error: ", ErrInvalidAddress)
		return nil, ErrInvalidAddress
	}
	normalizedAddress := crypto.NormalizeAddress(req.WalletAddress)

	if err := crypto.VerifySignature(req.Message, req.Signature, normalizedAddress); err != nil {
		if errors.Is(err, crypto.ErrSignatureMismatch) {
			logger.Error("WalletConnect Error: ", ErrInvalidSignature, "wallet_address", normalizedAddress)
			return nil, ErrInvalidSignature
		}
		logger.Error("WalletConnect Error: ", ErrSignatureRecovery, "error: ", err)
		return nil, ErrSignatureRecovery
	}

	currentUser, err := s.userRepo.GetUserByWallet(ctx, normalizedAddress)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		currentUser = &types.User{
			WalletAddress: normalizedAddress,
			Status:        1, // 1: 正常 0: 禁用
		}
		if err := s.userRepo.CreateUser(ctx, currentUser); err != nil {
			logger.Error("WalletConnect Error: ", errors.New("failed to create user"), "error: ", err)
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		logger.Info("WalletConnect: created new user", "wallet_address", normalizedAddress, "user_id", currentUser.ID)
	case err != nil:
		logger.Error("WalletConnect Error: ", errors.New("database error"), "error: ", err)
		return nil, fmt.Errorf("database error: %w", err)
	default:
		if currentUser.Status != 1 {
			logger.Error("WalletConnect Error: ", ErrUserDisabled, "user_id", currentUser.ID)
			return nil, ErrUserDisabled
		}
		if err := s.userRepo.UpdateLastLogin(ctx, currentUser.ID); err != nil {
			// 登录时间更新失败不阻止认证
			logger.Error("WalletConnect Error: ", errors.New("failed to update last login"), "error: ", err)
		}
	}

	accessToken, refreshToken, expiresAt, err := s.jwtManager.GenerateTokens(currentUser.ID, currentUser.WalletAddress)
	if err != nil {
		logger.Error("WalletConnect Error: ", errors.New("failed to generate jwt tokens"), "error: ", err)
		return nil, fmt.Errorf("failed to generate jwt tokens: %w", err)
	}

	logger.Info("WalletConnect Response:", "User: ", currentUser.WalletAddress)
	return &types.WalletConnectResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         *currentUser,
	}, nil
}

// RefreshToken 用刷新令牌换发新的令牌对
func (s *service) RefreshToken(ctx context.Context, req *types.RefreshTokenRequest) (*types.WalletConnectResponse, error) {
	claims, err := s.jwtManager.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		logger.Error("RefreshToken Error: ", errors.New("failed to verify refresh token"), "error: ", err)
		return nil, ErrInvalidToken
	}

	u, err := s.activeUser(ctx, claims.UserID)
	if err != nil {
		logger.Error("RefreshToken Error: ", err, "user_id", claims.UserID)
		return nil, err
	}

	accessToken, refreshToken, expiresAt, err := s.jwtManager.GenerateTokens(u.ID, u.WalletAddress)
	if err != nil {
		logger.Error("RefreshToken Error: ", errors.New("failed to generate jwt tokens"), "error: ", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	if err := s.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		logger.Error("RefreshToken Error: ", errors.New("failed to update last login"), "error: ", err)
	}

	logger.Info("RefreshToken Response:", "User: ", u.WalletAddress)
	return &types.WalletConnectResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         *u,
	}, nil
}

// GetProfile 获取用户资料
func (s *service) GetProfile(ctx context.Context, userID int64) (*types.UserProfile, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("GetProfile Error: ", ErrUserNotFound)
			return nil, ErrUserNotFound
		}
		logger.Error("GetProfile Error: ", errors.New("database error"), "error: ", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &types.UserProfile{
		WalletAddress: u.WalletAddress,
		CreatedAt:     u.CreatedAt,
		LastLogin:     u.LastLogin,
	}, nil
}

// VerifyToken 验证访问令牌，用户必须存在且未被禁用
func (s *service) VerifyToken(ctx context.Context, tokenString string) (*types.JWTClaims, error) {
	claims, err := s.jwtManager.VerifyAccessToken(tokenString)
	if err != nil {
		logger.Error("VerifyToken Error: ", errors.New("failed to verify access token"), "error: ", err)
		return nil, ErrInvalidToken
	}
	if _, err := s.activeUser(ctx, claims.UserID); err != nil {
		logger.Error("VerifyToken Error: ", err, "user_id", claims.UserID)
		return nil, err
	}
	return claims, nil
}

func (s *service) activeUser(ctx context.Context, userID int64) (*types.User, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if u.Status != 1 {
		return nil, ErrUserDisabled
	}
	return u, nil
}
