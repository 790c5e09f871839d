package database

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBackup(t *testing.T, backup BackupData) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backup.json")
	data, err := json.Marshal(backup)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestInsertStatement(t *testing.T) {
	record := map[string]interface{}{"id": 1, "wallet_address": "0xabc", "status": 1}

	sql, values := insertStatement("users", "wallet_address", record, ConflictSkip)
	assert.Equal(t, "INSERT INTO users (id, status, wallet_address) VALUES (?, ?, ?) ON CONFLICT DO NOTHING", sql)
	assert.Equal(t, []interface{}{1, 1, "0xabc"}, values)

	sql, _ = insertStatement("users", "wallet_address", record, ConflictReplace)
	assert.Equal(t, "INSERT INTO users (id, status, wallet_address) VALUES (?, ?, ?) ON CONFLICT (wallet_address) DO UPDATE SET status = EXCLUDED.status, wallet_address = EXCLUDED.wallet_address", sql)

	sql, _ = insertStatement("users", "wallet_address", record, ConflictError)
	assert.Equal(t, "INSERT INTO users (id, status, wallet_address) VALUES (?, ?, ?)", sql)
}

func TestValidateBackup(t *testing.T) {
	bm := NewBackupManager(nil)

	good := writeBackup(t, BackupData{
		Version:   backupVersion,
		Timestamp: time.Now(),
		Tables: map[string][]map[string]interface{}{
			"users":             {{"wallet_address": "0xabc"}},
			"governance_events": {{"event_name": "VoteCast"}},
		},
	})
	require.NoError(t, bm.ValidateBackup(good))

	info, counts, err := bm.GetBackupInfo(good)
	require.NoError(t, err)
	assert.Equal(t, backupVersion, info.Version)
	assert.Nil(t, info.Tables)
	assert.Equal(t, 1, counts["users"])

	unknown := writeBackup(t, BackupData{
		Version:   backupVersion,
		Timestamp: time.Now(),
		Tables:    map[string][]map[string]interface{}{"sponsors": {}},
	})
	assert.ErrorContains(t, bm.ValidateBackup(unknown), "unknown table")

	missing := writeBackup(t, BackupData{Timestamp: time.Now()})
	assert.ErrorContains(t, bm.ValidateBackup(missing), "version")
}

func TestParseConflictAction(t *testing.T) {
	a, err := ParseConflictAction("replace")
	require.NoError(t, err)
	assert.Equal(t, ConflictReplace, a)

	_, err = ParseConflictAction("merge")
	assert.Error(t, err)
}
