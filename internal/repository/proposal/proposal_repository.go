package proposal

import (
	"context"
	"errors"

	"ogre-backend/internal/types"
	"ogre-backend/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository 提案投影仓库
type Repository interface {
	Upsert(ctx context.Context, record *types.ProposalRecord) error
	GetByAddress(ctx context.Context, address string) (*types.ProposalRecord, error)
	ListByDAO(ctx context.Context, daoAddress, status string, page, pageSize int) ([]types.ProposalRecord, int64, error)
	ListAwaitingExecution(ctx context.Context, limit int) ([]types.ProposalRecord, error)
}

type repository struct {
	db       *gorm.DB
	ledgerID string
}

// NewRepository 创建限定在 ledgerID 账本上的提案投影仓库。重启后的新账本会复用
// 相同的合约地址，之前账本的投影保留但不再可见。
func NewRepository(db *gorm.DB, ledgerID string) Repository {
	return &repository{db: db, ledgerID: ledgerID}
}

// Upsert 按 (账本, 提案地址) 写入或覆盖投影
func (r *repository) Upsert(ctx context.Context, record *types.ProposalRecord) error {
	record.LedgerID = r.ledgerID
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ledger_id"}, {Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "owner", "status", "revotable", "start_time", "end_time",
			"yes_votes", "no_votes", "abstain", "actions", "ready_at", "updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		logger.Error("Upsert Error: ", err, "proposal", record.Address)
		return err
	}
	return nil
}

// GetByAddress 未找到时返回 nil, nil
func (r *repository) GetByAddress(ctx context.Context, address string) (*types.ProposalRecord, error) {
	var record types.ProposalRecord
	err := r.db.WithContext(ctx).Where("ledger_id = ? AND address = ?", r.ledgerID, address).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error("GetByAddress Error: ", err, "proposal", address)
		return nil, err
	}
	return &record, nil
}

// ListByDAO 分页查询 DAO 的提案，status 为空时不过滤
func (r *repository) ListByDAO(ctx context.Context, daoAddress, status string, page, pageSize int) ([]types.ProposalRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&types.ProposalRecord{}).
		Where("ledger_id = ? AND dao_address = ?", r.ledgerID, daoAddress)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("ListByDAO Error: ", err, "dao", daoAddress)
		return nil, 0, err
	}

	var records []types.ProposalRecord
	err := query.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		logger.Error("ListByDAO Error: ", err, "dao", daoAddress)
		return nil, 0, err
	}
	return records, total, nil
}

// ListAwaitingExecution 已通过、尚未执行的提案，按就绪时间排序
func (r *repository) ListAwaitingExecution(ctx context.Context, limit int) ([]types.ProposalRecord, error) {
	var records []types.ProposalRecord
	err := r.db.WithContext(ctx).
		Where("ledger_id = ? AND status = ? AND ready_at > 0", r.ledgerID, "Passed").
		Order("ready_at ASC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		logger.Error("ListAwaitingExecution Error: ", err)
		return nil, err
	}
	return records, nil
}
