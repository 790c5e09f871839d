package user

import (
	"context"
	"strings"
	"time"

	"ogre-backend/internal/types"
	"ogre-backend/pkg/logger"

	"gorm.io/gorm"
)

type Repository interface {
	CreateUser(ctx context.Context, user *types.User) error
	GetUserByWallet(ctx context.Context, walletAddress string) (*types.User, error)
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
	DisableUser(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// CreateUser 创建新用户
func (r *repository) CreateUser(ctx context.Context, user *types.User) error {
	user.WalletAddress = strings.ToLower(user.WalletAddress)
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		logger.Error("CreateUser Error: ", err, "wallet_address: ", user.WalletAddress)
		return err
	}
	logger.Info("CreateUser: ", "user_id: ", user.ID, "wallet_address: ", user.WalletAddress)
	return nil
}

// GetUserByWallet 根据钱包地址获取用户，未找到时返回 gorm.ErrRecordNotFound
func (r *repository) GetUserByWallet(ctx context.Context, walletAddress string) (*types.User, error) {
	var user types.User
	err := r.db.WithContext(ctx).
		Where("wallet_address = ?", strings.ToLower(walletAddress)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID 根据ID获取用户
func (r *repository) GetUserByID(ctx context.Context, id int64) (*types.User, error) {
	var user types.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin 更新用户最后登录时间
func (r *repository) UpdateLastLogin(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", id).
		Update("last_login", &now).Error
}

// DisableUser 禁用用户（软删除）
func (r *repository) DisableUser(ctx context.Context, id int64) error {
	logger.Info("DisableUser: ", "user_id: ", id)
	return r.db.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", id).
		Update("status", 0).Error
}
