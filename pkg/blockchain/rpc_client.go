package blockchain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/pkg/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

var ErrTokenNotFound = errors.New("token does not exist on remote chain")

// RPCClient 远端链只读客户端，核验主网上的成员凭证
type RPCClient interface {
	OwnerOf(ctx context.Context, nft common.Address, tokenID *big.Int) (common.Address, error)
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)
	BlockTimestamp(ctx context.Context) (uint64, error)
	Close()
}

// chainReader ethclient.Client 中用到的部分
type chainReader interface {
	ethereum.ContractCaller
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	Close()
}

type rpcClient struct {
	client  chainReader
	timeout time.Duration
}

// NewRPCClient 连接 rpcURL 并校验链 ID
func NewRPCClient(ctx context.Context, rpcURL string, timeout time.Duration) (RPCClient, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		logger.Error("NewRPCClient Error: ", err, "rpc_url", maskURL(rpcURL))
		return nil, fmt.Errorf("failed to connect rpc: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	chainID, err := client.ChainID(pingCtx)
	if err != nil {
		client.Close()
		logger.Error("NewRPCClient Error: ", err, "rpc_url", maskURL(rpcURL))
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	logger.Info("Successfully connected to chain", "chain_id", chainID.String(), "rpc_url", maskURL(rpcURL))
	return newRPCClient(client, timeout), nil
}

func newRPCClient(client chainReader, timeout time.Duration) *rpcClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &rpcClient{client: client, timeout: timeout}
}

// maskURL 遮蔽URL中的API密钥用于日志记录
func maskURL(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) > 0 {
		lastPart := parts[len(parts)-1]
		if len(lastPart) > 8 {
			parts[len(parts)-1] = lastPart[:4] + "****" + lastPart[len(lastPart)-4:]
		}
	}
	return strings.Join(parts, "/")
}

// OwnerOf 调用 ERC721 ownerOf，调用回滚视为凭证不存在
func (c *rpcClient) OwnerOf(ctx context.Context, nft common.Address, tokenID *big.Int) (common.Address, error) {
	data, err := ogreabi.PackMethod(ogreabi.ERC721, "ownerOf", tokenID)
	if err != nil {
		return common.Address{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &nft, Data: data}, nil)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "revert") {
			return common.Address{}, fmt.Errorf("%w: %s #%s", ErrTokenNotFound, nft.Hex(), tokenID)
		}
		logger.Error("OwnerOf Error: ", err, "nft", nft.Hex(), "token_id", tokenID.String())
		return common.Address{}, fmt.Errorf("failed to call ownerOf: %w", err)
	}

	values, err := ogreabi.ERC721.Unpack("ownerOf", result)
	if err != nil || len(values) != 1 {
		logger.Error("OwnerOf Error: ", fmt.Errorf("unexpected result length: %d", len(result)), "nft", nft.Hex())
		return common.Address{}, fmt.Errorf("unexpected ownerOf result length: %d", len(result))
	}
	owner, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected ownerOf result type %T", values[0])
	}

	logger.Debug("OwnerOf: ", "nft", nft.Hex(), "token_id", tokenID.String(), "owner", owner.Hex())
	return owner, nil
}

// NativeBalance 原生币余额
func (c *rpcClient) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	balance, err := c.client.BalanceAt(ctx, account, nil)
	if err != nil {
		logger.Error("NativeBalance Error: ", err, "address", account.Hex())
		return nil, fmt.Errorf("failed to get native balance: %w", err)
	}
	return balance, nil
}

// BlockTimestamp 最新区块时间
func (c *rpcClient) BlockTimestamp(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		logger.Error("BlockTimestamp Error: ", err)
		return 0, fmt.Errorf("failed to get latest header: %w", err)
	}
	return header.Time, nil
}

// Close 关闭连接
func (c *rpcClient) Close() {
	c.client.Close()
	logger.Info("Closed RPC client")
}
