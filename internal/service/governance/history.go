package governance

import (
	"context"
	"errors"
	"strings"

	"ogre-backend/internal/contracts/proposal"
	eventRepo "ogre-backend/internal/repository/event"
	proposalRepo "ogre-backend/internal/repository/proposal"
	"ogre-backend/internal/types"
	"ogre-backend/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrHistoryDisabled     = errors.New("history store not configured")
	ErrInvalidStatusFilter = errors.New("invalid proposal status")
)

// SetHistory 设置索引数据仓库
func (s *Service) SetHistory(proposals proposalRepo.Repository, events eventRepo.Repository) {
	s.proposalStore = proposals
	s.eventStore = events
}

// ListProposals 分页查询 DAO 下的提案投影
func (s *Service) ListProposals(ctx context.Context, daoAddr common.Address, req *types.GetProposalListRequest) (*types.GetProposalListResponse, error) {
	if s.proposalStore == nil {
		return nil, ErrHistoryDisabled
	}
	if req.Status != "" {
		if _, ok := proposal.ParseStatus(req.Status); !ok {
			return nil, ErrInvalidStatusFilter
		}
	}

	records, total, err := s.proposalStore.ListByDAO(ctx, daoAddr.Hex(), req.Status, req.Page, req.PageSize)
	if err != nil {
		logger.Error("ListProposals Error: ", err, "dao", daoAddr.Hex())
		return nil, err
	}
	return &types.GetProposalListResponse{
		Proposals: records,
		Total:     total,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}, nil
}

// ListAwaitingExecution 已通过待执行的提案
func (s *Service) ListAwaitingExecution(ctx context.Context, limit int) ([]types.ProposalRecord, error) {
	if s.proposalStore == nil {
		return nil, ErrHistoryDisabled
	}
	return s.proposalStore.ListAwaitingExecution(ctx, limit)
}

// ListEvents 按合约和事件名查询已索引事件
func (s *Service) ListEvents(ctx context.Context, req *types.GetEventListRequest) ([]types.GovernanceEvent, error) {
	if s.eventStore == nil {
		return nil, ErrHistoryDisabled
	}
	contract := req.Contract
	if contract != "" {
		addr, err := ParseAddress(contract)
		if err != nil {
			return nil, err
		}
		contract = addr.Hex()
	}
	return s.eventStore.ListByContract(ctx, contract, strings.TrimSpace(req.EventName), req.Limit)
}

// ListTxEvents 一笔交易产生的事件
func (s *Service) ListTxEvents(ctx context.Context, txHash string) ([]types.GovernanceEvent, error) {
	if s.eventStore == nil {
		return nil, ErrHistoryDisabled
	}
	return s.eventStore.ListByTxHash(ctx, common.HexToHash(txHash).Hex())
}
