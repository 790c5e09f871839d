package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("OGRE_SERVER_PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, uint64(5000), cfg.DAO.QuorumThreshold)
	assert.Equal(t, uint64(300), cfg.DAO.MinVotePeriod)
	assert.Equal(t, 15*time.Second, cfg.Keeper.Interval)
	assert.Equal(t, "host=localhost port=5432 user=ogre password=ogre dbname=ogre_db sslmode=disable", cfg.Database.DSN())
}

func TestValidate(t *testing.T) {
	cfg := &Config{DAO: DAOConfig{QuorumThreshold: 10001}}
	assert.Error(t, cfg.Validate())

	cfg = &Config{DAO: DAOConfig{ProposalCost: "abc"}}
	assert.Error(t, cfg.Validate())

	cfg = &Config{DAO: DAOConfig{ProposalCost: "25"}, Keeper: KeeperConfig{Enabled: true, Interval: time.Second}}
	require.NoError(t, cfg.Validate())
	cost, err := cfg.DAO.ProposalCostWei()
	require.NoError(t, err)
	assert.Equal(t, int64(25), cost.Int64())
}

func TestGetRPCURL(t *testing.T) {
	cfg := &Config{RPC: RPCConfig{Enabled: true, Provider: "alchemy", Network: "eth-mainnet", AlchemyAPIKey: "key"}}
	url, err := cfg.GetRPCURL()
	require.NoError(t, err)
	assert.Equal(t, "https://eth-mainnet.g.alchemy.com/v2/key", url)

	cfg.RPC.Provider = "infura"
	cfg.RPC.InfuraAPIKey = "abc"
	url, err = cfg.GetRPCURL()
	require.NoError(t, err)
	assert.Equal(t, "https://mainnet.infura.io/v3/abc", url)

	cfg.RPC.Enabled = false
	_, err = cfg.GetRPCURL()
	assert.Error(t, err)
}
