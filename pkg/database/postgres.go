package database

import (
	"errors"
	"fmt"
	"time"

	"ogre-backend/internal/config"
	"ogre-backend/internal/types"
	ogrelogger "ogre-backend/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// models 参与迁移的表，顺序即创建顺序
var models = []interface{}{
	&types.User{},
	&types.ProposalRecord{},
	&types.GovernanceEvent{},
}

// NewPostgresConnection 创建PostgreSQL数据库连接
func NewPostgresConnection(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		ogrelogger.Error("NewPostgresConnection Error: ", errors.New("failed to connect to database"), "error: ", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		ogrelogger.Error("NewPostgresConnection Error: ", errors.New("failed to get underlying sql.DB"), "error: ", err)
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ogrelogger.Info("NewPostgresConnection: ", "host: ", cfg.Host, "port: ", cfg.Port, "dbname: ", cfg.DBName)
	return db, nil
}

// AutoMigrate 自动迁移数据库表结构
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models...); err != nil {
		ogrelogger.Error("AutoMigrate Error: ", errors.New("failed to migrate database"), "error: ", err)
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	ogrelogger.Info("AutoMigrate: ", "database migration completed successfully")
	return nil
}

// CreateIndexes 创建模型标签之外的查询索引
func CreateIndexes(db *gorm.DB) error {
	indexes := map[string]string{
		"idx_proposal_records_dao_status": "CREATE INDEX IF NOT EXISTS idx_proposal_records_dao_status ON proposal_records(dao_address, status)",
		"idx_proposal_records_ready_at":   "CREATE INDEX IF NOT EXISTS idx_proposal_records_ready_at ON proposal_records(ready_at) WHERE ready_at > 0",
		"idx_governance_events_contract":  "CREATE INDEX IF NOT EXISTS idx_governance_events_contract ON governance_events(contract_address, event_name)",
	}
	for name, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			ogrelogger.Error("CreateIndexes Error: ", err, "index", name)
			return fmt.Errorf("failed to create index %s: %w", name, err)
		}
	}
	ogrelogger.Info("CreateIndexes: ", "database indexes created successfully")
	return nil
}

// ResetTables 删除并重建所有表，仅用于本地开发
func ResetTables(db *gorm.DB) error {
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			ogrelogger.Error("ResetTables Error: ", err)
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	return AutoMigrate(db)
}
