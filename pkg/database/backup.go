package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"ogre-backend/pkg/logger"

	"gorm.io/gorm"
)

const backupVersion = "1.0.0"

// backupTables 按依赖顺序排列的可备份表及其冲突键
var backupTables = []struct {
	name        string
	conflictKey string
}{
	{"users", "wallet_address"},
	{"proposal_records", "ledger_id, address"},
	{"governance_events", "tx_hash, log_index"},
}

// BackupManager 备份管理器
type BackupManager struct {
	db *gorm.DB
}

func NewBackupManager(db *gorm.DB) *BackupManager {
	return &BackupManager{db: db}
}

// BackupData 备份文件结构，Tables 以表名为键
type BackupData struct {
	Version   string                              `json:"version"`
	Timestamp time.Time                           `json:"timestamp"`
	Tables    map[string][]map[string]interface{} `json:"tables"`
}

// Counts 每张表的记录数
func (b *BackupData) Counts() map[string]int {
	counts := make(map[string]int, len(b.Tables))
	for name, rows := range b.Tables {
		counts[name] = len(rows)
	}
	return counts
}

// RestoreOptions 恢复选项
type RestoreOptions struct {
	ClearExisting bool
	OnConflict    ConflictAction
}

// ConflictAction 冲突处理策略
type ConflictAction string

const (
	ConflictSkip    ConflictAction = "skip"
	ConflictReplace ConflictAction = "replace"
	ConflictError   ConflictAction = "error"
)

// ParseConflictAction 解析命令行中的冲突策略
func ParseConflictAction(s string) (ConflictAction, error) {
	switch a := ConflictAction(s); a {
	case ConflictSkip, ConflictReplace, ConflictError:
		return a, nil
	default:
		return "", fmt.Errorf("unsupported conflict strategy %q", s)
	}
}

// CreateBackup 导出全部治理数据
func (bm *BackupManager) CreateBackup(ctx context.Context, backupPath string) error {
	logger.Info("CreateBackup: ", "path", backupPath)

	if err := os.MkdirAll(filepath.Dir(backupPath), 0755); err != nil {
		logger.Error("CreateBackup Error: ", err, "path", backupPath)
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	backup := BackupData{
		Version:   backupVersion,
		Timestamp: time.Now(),
		Tables:    make(map[string][]map[string]interface{}, len(backupTables)),
	}
	for _, table := range backupTables {
		records, err := bm.backupTable(ctx, table.name)
		if err != nil {
			return fmt.Errorf("failed to backup %s: %w", table.name, err)
		}
		backup.Tables[table.name] = records
	}

	file, err := os.Create(backupPath)
	if err != nil {
		logger.Error("CreateBackup Error: ", err, "path", backupPath)
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		logger.Error("CreateBackup Error: ", err)
		return fmt.Errorf("failed to encode backup data: %w", err)
	}

	logger.Info("CreateBackup: ", "path", backupPath, "version", backup.Version, "counts", backup.Counts())
	return nil
}

// RestoreBackup 在一个数据库事务中恢复备份
func (bm *BackupManager) RestoreBackup(ctx context.Context, backupPath string, options RestoreOptions) error {
	backup, err := readBackup(backupPath)
	if err != nil {
		return err
	}
	logger.Info("RestoreBackup: ", "path", backupPath, "version", backup.Version, "timestamp", backup.Timestamp)

	return bm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if options.ClearExisting {
			if err := bm.clearTables(ctx, tx); err != nil {
				return fmt.Errorf("failed to clear existing data: %w", err)
			}
		}
		for _, table := range backupTables {
			if err := bm.restoreTable(ctx, tx, table.name, table.conflictKey, backup.Tables[table.name], options.OnConflict); err != nil {
				return fmt.Errorf("failed to restore %s: %w", table.name, err)
			}
		}
		return nil
	})
}

// ValidateBackup 校验备份文件
func (bm *BackupManager) ValidateBackup(backupPath string) error {
	backup, err := readBackup(backupPath)
	if err != nil {
		return err
	}
	if backup.Version == "" {
		return errors.New("backup version is missing")
	}
	if backup.Timestamp.IsZero() {
		return errors.New("backup timestamp is missing")
	}

	known := make(map[string]bool, len(backupTables))
	for _, table := range backupTables {
		known[table.name] = true
	}
	for name := range backup.Tables {
		if !known[name] {
			return fmt.Errorf("unknown table in backup: %s", name)
		}
	}
	for _, user := range backup.Tables["users"] {
		if addr, _ := user["wallet_address"].(string); addr == "" {
			return errors.New("user record without wallet_address")
		}
	}
	for _, event := range backup.Tables["governance_events"] {
		if name, _ := event["event_name"].(string); name == "" {
			return errors.New("governance event without event_name")
		}
	}

	logger.Info("ValidateBackup: ", "version", backup.Version, "counts", backup.Counts())
	return nil
}

// GetBackupInfo 读取备份元信息与每张表的记录数
func (bm *BackupManager) GetBackupInfo(backupPath string) (*BackupData, map[string]int, error) {
	backup, err := readBackup(backupPath)
	if err != nil {
		return nil, nil, err
	}
	counts := backup.Counts()
	backup.Tables = nil
	return backup, counts, nil
}

func readBackup(backupPath string) (*BackupData, error) {
	file, err := os.Open(backupPath)
	if err != nil {
		logger.Error("readBackup Error: ", err, "path", backupPath)
		return nil, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	var backup BackupData
	if err := json.NewDecoder(file).Decode(&backup); err != nil {
		logger.Error("readBackup Error: ", err, "path", backupPath)
		return nil, fmt.Errorf("failed to decode backup data: %w", err)
	}
	return &backup, nil
}

func (bm *BackupManager) backupTable(ctx context.Context, tableName string) ([]map[string]interface{}, error) {
	rows, err := bm.db.WithContext(ctx).Table(tableName).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", tableName, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	var records []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row from table %s: %w", tableName, err)
		}

		record := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = values[i]
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate table %s: %w", tableName, err)
	}

	logger.Debug("backupTable: ", "table", tableName, "records", len(records))
	return records, nil
}

func (bm *BackupManager) restoreTable(ctx context.Context, tx *gorm.DB, tableName, conflictKey string, records []map[string]interface{}, onConflict ConflictAction) error {
	for _, record := range records {
		sql, values := insertStatement(tableName, conflictKey, record, onConflict)
		if err := tx.WithContext(ctx).Exec(sql, values...).Error; err != nil {
			if onConflict == ConflictError {
				return fmt.Errorf("failed to insert record into %s: %w", tableName, err)
			}
			logger.Warn("restoreTable: skipped record", "table", tableName, "error", err)
		}
	}
	logger.Info("restoreTable: ", "table", tableName, "records", len(records))
	return nil
}

// insertStatement 按列名排序生成 INSERT 语句，保证输出稳定
func insertStatement(tableName, conflictKey string, record map[string]interface{}, onConflict ConflictAction) (string, []interface{}) {
	columns := make([]string, 0, len(record))
	for col := range record {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	values := make([]interface{}, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		values[i] = record[col]
		placeholders[i] = "?"
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	switch onConflict {
	case ConflictSkip:
		sql += " ON CONFLICT DO NOTHING"
	case ConflictReplace:
		var updates []string
		for _, col := range columns {
			if col != "id" {
				updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
			}
		}
		if len(updates) > 0 {
			sql += fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s", conflictKey, strings.Join(updates, ", "))
		} else {
			sql += " ON CONFLICT DO NOTHING"
		}
	}
	return sql, values
}

// clearTables 逆序清空表
func (bm *BackupManager) clearTables(ctx context.Context, tx *gorm.DB) error {
	logger.Warn("clearTables: clearing existing governance data")
	for i := len(backupTables) - 1; i >= 0; i-- {
		table := backupTables[i].name
		if err := tx.WithContext(ctx).Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			if err := tx.WithContext(ctx).Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				logger.Error("clearTables Error: ", err, "table", table)
				return fmt.Errorf("failed to clear table %s: %w", table, err)
			}
		}
	}
	return nil
}
