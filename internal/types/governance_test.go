package types

import (
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func uniqueColumns(t *testing.T, model interface{}, index string) []string {
	t.Helper()
	sch, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	idx := sch.LookIndex(index)
	require.NotNil(t, idx, index)
	assert.Equal(t, "UNIQUE", idx.Class)
	return lo.Map(idx.Fields, func(f schema.IndexOption, _ int) string { return f.DBName })
}

func TestEventUniqueOnTxAndLogIndex(t *testing.T) {
	// 区块高度在重启后的新账本中会重复，不能作为唯一键
	assert.Equal(t, []string{"tx_hash", "log_index"}, uniqueColumns(t, &GovernanceEvent{}, "idx_event_position"))
}

func TestProposalUniquePerLedger(t *testing.T) {
	assert.Equal(t, []string{"ledger_id", "address"}, uniqueColumns(t, &ProposalRecord{}, "idx_proposal_ledger_address"))
}
