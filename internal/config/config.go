package config

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"ogre-backend/pkg/logger"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	RPC      RPCConfig      `mapstructure:"rpc"`
	DAO      DAOConfig      `mapstructure:"dao"`
	Keeper   KeeperConfig   `mapstructure:"keeper"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// Faucet 开放本地水龙头接口，仅用于开发环境
	Faucet bool `mapstructure:"faucet"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	Development bool   `mapstructure:"development"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN postgres 连接串
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret        string        `mapstructure:"secret"`
	AccessExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshExpiry time.Duration `mapstructure:"refresh_expiry"`
}

// RPCConfig 远端链 RPC 配置，用于核验主网凭证
type RPCConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Provider      string        `mapstructure:"provider"`
	Network       string        `mapstructure:"network"`
	AlchemyAPIKey string        `mapstructure:"alchemy_api_key"`
	InfuraAPIKey  string        `mapstructure:"infura_api_key"`
	URL           string        `mapstructure:"url"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// DAOConfig 新建 DAO 的默认参数
type DAOConfig struct {
	Delay            uint64 `mapstructure:"delay"`
	QuorumThreshold  uint64 `mapstructure:"quorum_threshold"`
	SupportThreshold uint64 `mapstructure:"support_threshold"`
	MinVotePeriod    uint64 `mapstructure:"min_vote_period"`
	ProposalCost     string `mapstructure:"proposal_cost"`
	// Operator 部署合约与铸造凭证使用的账户
	Operator string `mapstructure:"operator"`
}

// ProposalCostWei 起草费（十进制字符串）
func (c DAOConfig) ProposalCostWei() (*big.Int, error) {
	if c.ProposalCost == "" {
		return new(big.Int), nil
	}
	cost, ok := new(big.Int).SetString(c.ProposalCost, 10)
	if !ok || cost.Sign() < 0 {
		return nil, fmt.Errorf("invalid dao.proposal_cost: %q", c.ProposalCost)
	}
	return cost, nil
}

// KeeperConfig 提案自动执行配置
type KeeperConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int64         `mapstructure:"batch_size"`
	Account   string        `mapstructure:"account"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.faucet", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("log.development", false)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "ogre")
	viper.SetDefault("database.password", "ogre")
	viper.SetDefault("database.dbname", "ogre_db")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("jwt.secret", "ogre-jwt-secret-v1")
	viper.SetDefault("jwt.access_expiry", time.Hour*24)
	viper.SetDefault("jwt.refresh_expiry", time.Hour*24*7)

	// RPC defaults
	viper.SetDefault("rpc.enabled", false)
	viper.SetDefault("rpc.provider", "alchemy")
	viper.SetDefault("rpc.network", "eth-mainnet")
	viper.SetDefault("rpc.timeout", time.Second*10)

	// DAO defaults
	viper.SetDefault("dao.delay", 86400)
	viper.SetDefault("dao.quorum_threshold", 5000)
	viper.SetDefault("dao.support_threshold", 5000)
	viper.SetDefault("dao.min_vote_period", 300)
	viper.SetDefault("dao.proposal_cost", "0")
	viper.SetDefault("dao.operator", "0x0000000000000000000000000000000000000001")

	// Keeper defaults
	viper.SetDefault("keeper.enabled", true)
	viper.SetDefault("keeper.interval", time.Second*15)
	viper.SetDefault("keeper.batch_size", 50)
	viper.SetDefault("keeper.account", "0x0000000000000000000000000000000000000002")

	// Read environment variables, e.g. OGRE_DATABASE_HOST
	viper.SetEnvPrefix("OGRE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Error("LoadConfig Error: ", errors.New("config file not found"), "error: ", err)
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Error("LoadConfig Error: ", errors.New("failed to unmarshal config"), "error: ", err)
		return nil, err
	}
	if err := config.Validate(); err != nil {
		logger.Error("LoadConfig Error: ", err)
		return nil, err
	}

	logger.Info("LoadConfig: ", "load config success")
	return &config, nil
}

// Validate 校验配置取值
func (c *Config) Validate() error {
	if c.DAO.QuorumThreshold > 10000 || c.DAO.SupportThreshold > 10000 {
		return errors.New("dao thresholds must be within 0-10000 basis points")
	}
	if _, err := c.DAO.ProposalCostWei(); err != nil {
		return err
	}
	if c.Keeper.Enabled && c.Keeper.Interval <= 0 {
		return errors.New("keeper.interval must be positive")
	}
	return nil
}

// GetRPCURL 按提供商拼接 RPC URL，显式 url 优先
func (c *Config) GetRPCURL() (string, error) {
	if !c.RPC.Enabled {
		return "", errors.New("RPC disabled")
	}
	if c.RPC.URL != "" {
		return c.RPC.URL, nil
	}

	switch c.RPC.Provider {
	case "alchemy":
		if c.RPC.AlchemyAPIKey == "" || c.RPC.AlchemyAPIKey == "YOUR_ALCHEMY_API_KEY" {
			logger.Error("GetRPCURL error: ", fmt.Errorf("alchemy API key not configured"))
			return "", errors.New("alchemy API key not configured")
		}
		return fmt.Sprintf("https://%s.g.alchemy.com/v2/%s", c.RPC.Network, c.RPC.AlchemyAPIKey), nil

	case "infura":
		if c.RPC.InfuraAPIKey == "" || c.RPC.InfuraAPIKey == "YOUR_INFURA_API_KEY" {
			logger.Error("GetRPCURL error: ", fmt.Errorf("infura API key not configured"))
			return "", errors.New("infura API key not configured")
		}
		network := strings.TrimPrefix(c.RPC.Network, "eth-")
		return fmt.Sprintf("https://%s.infura.io/v3/%s", network, c.RPC.InfuraAPIKey), nil

	default:
		logger.Error("GetRPCURL error: ", fmt.Errorf("unsupported RPC provider: %s", c.RPC.Provider))
		return "", fmt.Errorf("unsupported RPC provider: %s", c.RPC.Provider)
	}
}
