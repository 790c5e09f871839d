package proposal

import (
	"context"
	"testing"

	"ogre-backend/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type statement struct {
	sql  string
	vars []interface{}
}

// dryRun 只生成 SQL 不连接数据库，记录每条语句
func dryRun(t *testing.T) (*gorm.DB, *[]statement) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=ogre dbname=ogre sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	require.NoError(t, err)

	var stmts []statement
	record := func(tx *gorm.DB) {
		stmts = append(stmts, statement{
			sql:  tx.Statement.SQL.String(),
			vars: append([]interface{}(nil), tx.Statement.Vars...),
		})
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", record))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:record_create", record))
	return db, &stmts
}

func TestUpsertKeysOnLedgerAndAddress(t *testing.T) {
	db, stmts := dryRun(t)
	repo := NewRepository(db, "ledger-2")

	record := &types.ProposalRecord{Address: "0x0000000000000000000000000000000000000a01", DAOAddress: "0xd0", Owner: "0xaa", Status: "Proposed"}
	require.NoError(t, repo.Upsert(context.Background(), record))
	assert.Equal(t, "ledger-2", record.LedgerID)

	require.Len(t, *stmts, 1)
	sql := (*stmts)[0].sql
	assert.Contains(t, sql, `ON CONFLICT ("ledger_id","address") DO UPDATE`)
	assert.Contains(t, (*stmts)[0].vars, "ledger-2")
}

func TestReadsScopedToLedger(t *testing.T) {
	db, stmts := dryRun(t)
	repo := NewRepository(db, "ledger-2")
	ctx := context.Background()

	_, err := repo.GetByAddress(ctx, "0x0000000000000000000000000000000000000a01")
	require.NoError(t, err)
	_, _, err = repo.ListByDAO(ctx, "0xd0", "Passed", 1, 20)
	require.NoError(t, err)
	_, err = repo.ListAwaitingExecution(ctx, 10)
	require.NoError(t, err)

	require.NotEmpty(t, *stmts)
	for _, stmt := range *stmts {
		assert.Contains(t, stmt.sql, "ledger_id = $1")
		require.NotEmpty(t, stmt.vars)
		assert.Equal(t, "ledger-2", stmt.vars[0])
	}
}
