package governance

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"ogre-backend/internal/config"
	"ogre-backend/internal/contracts/credential"
	"ogre-backend/internal/contracts/dao"
	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/contracts/proposal"
	"ogre-backend/internal/ledger"
	eventRepo "ogre-backend/internal/repository/event"
	proposalRepo "ogre-backend/internal/repository/proposal"
	"ogre-backend/internal/service/keeper"
	"ogre-backend/internal/types"
	"ogre-backend/pkg/crypto"
	"ogre-backend/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/samber/lo"
)

var (
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidHexData   = errors.New("invalid hex data")
	ErrContractNotFound = errors.New("contract not found")
	ErrInvalidChoice    = errors.New("invalid vote choice")
	ErrUnknownRole      = errors.New("unknown role")
	ErrRemoteDisabled   = errors.New("remote credential lookup disabled")
)

// Indexer 回执索引
type Indexer interface {
	ProcessReceipt(ctx context.Context, receipt *ledger.Receipt) ([]types.ProposalRecord, error)
}

// RemoteCredentials 远端链凭证查询
type RemoteCredentials interface {
	OwnerOf(ctx context.Context, nft common.Address, tokenID *big.Int) (common.Address, error)
}

// Service 治理服务：每个操作都是账本上的一笔交易，成功后写入索引并维护执行队列
type Service struct {
	ledger   *ledger.Ledger
	cfg      config.DAOConfig
	operator common.Address

	credentialFactory common.Address
	proposalFactory   common.Address
	daoFactory        common.Address

	indexer Indexer
	queue   keeper.ReadyQueue
	remote  RemoteCredentials

	proposalStore proposalRepo.Repository
	eventStore    eventRepo.Repository
}

// NewService 以运营账户部署凭证、提案、DAO 三个工厂
func NewService(ctx context.Context, l *ledger.Ledger, cfg config.DAOConfig) (*Service, error) {
	if !crypto.ValidateEthereumAddress(cfg.Operator) {
		return nil, fmt.Errorf("%w: operator %q", ErrInvalidAddress, cfg.Operator)
	}
	s := &Service{
		ledger:   l,
		cfg:      cfg,
		operator: common.HexToAddress(cfg.Operator),
	}

	_, err := l.Transact(ctx, s.operator, func(tx *ledger.Tx) error {
		nft, err := credential.DeployFactory(tx)
		if err != nil {
			return err
		}
		props, err := proposal.DeployFactory(tx)
		if err != nil {
			return err
		}
		daos, err := dao.DeployFactory(tx)
		if err != nil {
			return err
		}
		s.credentialFactory, s.proposalFactory, s.daoFactory = nft.Address(), props.Address(), daos.Address()
		return nil
	})
	if err != nil {
		logger.Error("NewService Error: ", err)
		return nil, fmt.Errorf("failed to deploy factories: %w", err)
	}

	logger.Info("NewService: ", "credential_factory", s.credentialFactory.Hex(), "proposal_factory", s.proposalFactory.Hex(), "dao_factory", s.daoFactory.Hex())
	return s, nil
}

// SetIndexer 设置索引器（索引器反向依赖服务读取提案快照）
func (s *Service) SetIndexer(indexer Indexer) {
	s.indexer = indexer
}

// SetReadyQueue 设置执行队列
func (s *Service) SetReadyQueue(queue keeper.ReadyQueue) {
	s.queue = queue
}

// SetRemoteCredentials 设置远端凭证查询
func (s *Service) SetRemoteCredentials(remote RemoteCredentials) {
	s.remote = remote
}

// Now 账本时间
func (s *Service) Now() uint64 {
	return s.ledger.Now()
}

// Factories 工厂地址
func (s *Service) Factories() (credentialFactory, proposalFactory, daoFactory common.Address) {
	return s.credentialFactory, s.proposalFactory, s.daoFactory
}

// Fund 本地水龙头
func (s *Service) Fund(ctx context.Context, account common.Address, amount string) error {
	value, err := ParseAmount(amount)
	if err != nil {
		return err
	}
	if err := s.ledger.Fund(account, value); err != nil {
		return err
	}
	logger.Info("Fund: ", "account", account.Hex(), "amount", value.String())
	return nil
}

// Balance 原生余额
func (s *Service) Balance(account common.Address) *big.Int {
	return s.ledger.BalanceOf(account)
}

// submit 执行一笔交易并把回执交给索引器
func (s *Service) submit(ctx context.Context, op string, caller common.Address, fn func(tx *ledger.Tx) error) (*ledger.Receipt, *types.TxResult, error) {
	receipt, err := s.ledger.Transact(ctx, caller, fn)
	if err != nil {
		logger.Error(op+" Error: ", err, "caller", caller.Hex())
		return nil, nil, err
	}

	if s.indexer != nil {
		if _, err := s.indexer.ProcessReceipt(ctx, receipt); err != nil {
			// 账本已提交，索引失败不影响结果
			logger.Error(op+" Index Error: ", err, "tx_hash", receipt.TxHash.Hex())
		}
	}

	logger.Info(op+": ", "caller", caller.Hex(), "block", receipt.BlockNumber, "tx_hash", receipt.TxHash.Hex())
	return receipt, toResult(receipt), nil
}

func toResult(receipt *ledger.Receipt) *types.TxResult {
	return &types.TxResult{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber,
		Timestamp:   receipt.Timestamp,
		Events: lo.FilterMap(receipt.Logs, func(log *ethtypes.Log, _ int) (string, bool) {
			e, ok := ogreabi.LookupEvent(log)
			return e.Name, ok
		}),
	}
}

// contractAt 按地址取出指定类型的合约
func contractAt[T any](tx *ledger.Tx, addr common.Address) (T, error) {
	var zero T
	c, ok := tx.Contract(addr)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrContractNotFound, addr.Hex())
	}
	typed, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s has type %T", ErrContractNotFound, addr.Hex(), c)
	}
	return typed, nil
}

// ParseAddress 校验并解析 0x 地址
func ParseAddress(s string) (common.Address, error) {
	if !crypto.ValidateEthereumAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// ParseAmount 解析十进制非负整数，空串为 0
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return v, nil
}

// ParseHexData 解析 0x 十六进制字节串，空串为空字节
func ParseHexData(s string) ([]byte, error) {
	if s == "" || s == "0x" {
		return []byte{}, nil
	}
	data, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHexData, err)
	}
	return data, nil
}
