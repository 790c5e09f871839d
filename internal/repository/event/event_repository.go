package event

import (
	"context"

	"ogre-backend/internal/types"
	"ogre-backend/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository 治理事件仓库
type Repository interface {
	BatchCreate(ctx context.Context, events []types.GovernanceEvent) error
	ListByContract(ctx context.Context, contractAddress, eventName string, limit int) ([]types.GovernanceEvent, error)
	ListByTxHash(ctx context.Context, txHash string) ([]types.GovernanceEvent, error)
	LatestBlock(ctx context.Context) (uint64, error)
}

type repository struct {
	db       *gorm.DB
	ledgerID string
}

// NewRepository 创建限定在 ledgerID 账本上的事件仓库。按合约和区块的查询只返回
// 本账本的事件，按交易哈希的查询跨账本（哈希全局唯一）。
func NewRepository(db *gorm.DB, ledgerID string) Repository {
	return &repository{db: db, ledgerID: ledgerID}
}

// BatchCreate 批量写入事件，(tx_hash, log_index) 冲突时跳过，重复索引同一回执是幂等的
func (r *repository) BatchCreate(ctx context.Context, events []types.GovernanceEvent) error {
	if len(events) == 0 {
		return nil
	}
	for i := range events {
		if events[i].LedgerID == "" {
			events[i].LedgerID = r.ledgerID
		}
	}
	if err := r.db.WithContext(ctx).Clauses(
		clause.OnConflict{DoNothing: true},
	).CreateInBatches(&events, 100).Error; err != nil {
		logger.Error("BatchCreate Error: ", err, "count", len(events))
		return err
	}
	return nil
}

// ListByContract 按合约地址和事件名查询，空条件不过滤，按账本顺序倒序
func (r *repository) ListByContract(ctx context.Context, contractAddress, eventName string, limit int) ([]types.GovernanceEvent, error) {
	query := r.db.WithContext(ctx).Model(&types.GovernanceEvent{}).Where("ledger_id = ?", r.ledgerID)
	if contractAddress != "" {
		query = query.Where("contract_address = ?", contractAddress)
	}
	if eventName != "" {
		query = query.Where("event_name = ?", eventName)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []types.GovernanceEvent
	if err := query.Order("block_number DESC, log_index DESC").Find(&events).Error; err != nil {
		logger.Error("ListByContract Error: ", err, "contract", contractAddress, "event", eventName)
		return nil, err
	}
	return events, nil
}

// ListByTxHash 一笔交易的全部事件
func (r *repository) ListByTxHash(ctx context.Context, txHash string) ([]types.GovernanceEvent, error) {
	var events []types.GovernanceEvent
	err := r.db.WithContext(ctx).
		Where("tx_hash = ?", txHash).
		Order("log_index ASC").
		Find(&events).Error
	if err != nil {
		logger.Error("ListByTxHash Error: ", err, "tx_hash", txHash)
		return nil, err
	}
	return events, nil
}

// LatestBlock 已索引的最高区块
func (r *repository) LatestBlock(ctx context.Context) (uint64, error) {
	var block *uint64
	err := r.db.WithContext(ctx).
		Model(&types.GovernanceEvent{}).
		Where("ledger_id = ?", r.ledgerID).
		Select("MAX(block_number)").
		Scan(&block).Error
	if err != nil {
		logger.Error("LatestBlock Error: ", err)
		return 0, err
	}
	if block == nil {
		return 0, nil
	}
	return *block, nil
}
