package governance

import (
	"context"

	"ogre-backend/internal/contracts/dao"
	"ogre-backend/internal/contracts/hopper"
	"ogre-backend/internal/contracts/proposal"
	"ogre-backend/internal/ledger"
	"ogre-backend/internal/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/samber/lo"
)

var choices = map[string]proposal.Choice{
	"no":      proposal.ChoiceNo,
	"yes":     proposal.ChoiceYes,
	"abstain": proposal.ChoiceAbstain,
}

// DraftProposal 成员起草提案，result.Contract 为新提案地址
func (s *Service) DraftProposal(ctx context.Context, caller, addr common.Address, title string) (*types.TxResult, error) {
	var created common.Address
	_, result, err := s.submit(ctx, "DraftProposal", caller, func(tx *ledger.Tx) error {
		d, err := contractAt[*dao.DAO](tx, addr)
		if err != nil {
			return err
		}
		p, err := d.DraftProposal(tx, title)
		if err != nil {
			return err
		}
		created = p.Address()
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Contract = created.Hex()
	return result, nil
}

// UpdateProposal 修改标题和可重投配置
func (s *Service) UpdateProposal(ctx context.Context, caller, addr common.Address, req *types.UpdateProposalRequest) (*types.TxResult, error) {
	_, result, err := s.submit(ctx, "UpdateProposal", caller, func(tx *ledger.Tx) error {
		p, err := contractAt[*proposal.Proposal](tx, addr)
		if err != nil {
			return err
		}
		if req.Title != nil {
			if err := p.SetProposalTitle(tx, *req.Title); err != nil {
				return err
			}
		}
		if req.Revotable != nil {
			if err := p.ConfigureProposal(tx, *req.Revotable); err != nil {
				return err
			}
		}
		return nil
	})
	return result, err
}

// AddAction 追加通过后执行的动作
func (s *Service) AddAction(ctx context.Context, caller, addr common.Address, info *types.ActionInfo) (*types.TxResult, error) {
	action, err := ParseAction(info)
	if err != nil {
		return nil, err
	}
	_, result, err := s.submit(ctx, "AddAction", caller, func(tx *ledger.Tx) error {
		p, err := contractAt[*proposal.Proposal](tx, addr)
		if err != nil {
			return err
		}
		return p.AddAction(tx, action)
	})
	return result, err
}

// SetVotingPeriod 设置投票窗口
func (s *Service) SetVotingPeriod(ctx context.Context, caller, addr common.Address, start, end uint64) (*types.TxResult, error) {
	_, result, err := s.submit(ctx, "SetVotingPeriod", caller, func(tx *ledger.Tx) error {
		p, err := contractAt[*proposal.Proposal](tx, addr)
		if err != nil {
			return err
		}
		return p.SetVotingPeriod(tx, start, end)
	})
	return result, err
}

// CastVote 以凭证投票
func (s *Service) CastVote(ctx context.Context, caller, addr common.Address, tokenID uint64, choice string) (*types.TxResult, error) {
	c, ok := choices[choice]
	if !ok {
		return nil, ErrInvalidChoice
	}
	_, result, err := s.submit(ctx, "CastVote", caller, func(tx *ledger.Tx) error {
		p, err := contractAt[*proposal.Proposal](tx, addr)
		if err != nil {
			return err
		}
		return p.CastVote(tx, tokenID, c)
	})
	return result, err
}

// CancelProposal 提案人取消
func (s *Service) CancelProposal(ctx context.Context, caller, addr common.Address) (*types.TxResult, error) {
	_, result, err := s.submit(ctx, "CancelProposal", caller, func(tx *ledger.Tx) error {
		p, err := contractAt[*proposal.Proposal](tx, addr)
		if err != nil {
			return err
		}
		return p.CancelProposal(tx)
	})
	return result, err
}

// GetProposal 提案实时状态（含动作列表）
func (s *Service) GetProposal(ctx context.Context, addr common.Address) (*types.ProposalInfo, error) {
	var info *types.ProposalInfo
	err := s.ledger.View(ctx, func(tx *ledger.Tx) error {
		p, err := contractAt[*proposal.Proposal](tx, addr)
		if err != nil {
			return err
		}
		tally := p.Tally()
		info = &types.ProposalInfo{
			Address:    p.Address().Hex(),
			DAOAddress: p.DAOAddress().Hex(),
			Title:      p.Title(),
			Owner:      p.Owner().Hex(),
			Status:     p.Status(tx.Now()).String(),
			Revotable:  p.Revotable(),
			StartTime:  p.StartTime(),
			EndTime:    p.EndTime(),
			YesVotes:   tally.Yes,
			NoVotes:    tally.No,
			Abstain:    tally.Abstain,
			Actions:    lo.Map(p.Actions(), func(a hopper.Action, _ int) types.ActionInfo { return actionInfo(a) }),
			ReadyAt:    readyAt(tx, p),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ProposalSnapshot 索引用的提案投影，地址不是提案时返回 nil, nil
func (s *Service) ProposalSnapshot(ctx context.Context, addr common.Address) (*types.ProposalRecord, error) {
	var record *types.ProposalRecord
	err := s.ledger.View(ctx, func(tx *ledger.Tx) error {
		c, ok := tx.Contract(addr)
		if !ok {
			return nil
		}
		p, ok := c.(*proposal.Proposal)
		if !ok {
			return nil
		}
		tally := p.Tally()
		record = &types.ProposalRecord{
			Address:    p.Address().Hex(),
			DAOAddress: p.DAOAddress().Hex(),
			Title:      p.Title(),
			Owner:      p.Owner().Hex(),
			Status:     p.Status(tx.Now()).String(),
			Revotable:  p.Revotable(),
			StartTime:  p.StartTime(),
			EndTime:    p.EndTime(),
			YesVotes:   tally.Yes,
			NoVotes:    tally.No,
			Abstain:    tally.Abstain,
			Actions:    p.GetActionCount(),
			ReadyAt:    readyAt(tx, p),
		}
		return nil
	})
	return record, err
}

func readyAt(tx *ledger.Tx, p *proposal.Proposal) uint64 {
	d, err := contractAt[*dao.DAO](tx, p.DAOAddress())
	if err != nil {
		return 0
	}
	ready, _ := d.ExecutionReady(p.Address())
	return ready
}

// ParseAction 请求转为延迟动作
func ParseAction(info *types.ActionInfo) (hopper.Action, error) {
	target, err := ParseAddress(info.Target)
	if err != nil {
		return hopper.Action{}, err
	}
	value, err := ParseAmount(info.Value)
	if err != nil {
		return hopper.Action{}, err
	}
	data, err := ParseHexData(info.Data)
	if err != nil {
		return hopper.Action{}, err
	}
	return hopper.Action{Target: target, Value: value, Sig: info.Signature, Data: data}, nil
}

func actionInfo(a hopper.Action) types.ActionInfo {
	info := types.ActionInfo{
		Target:    a.Target.Hex(),
		Value:     "0",
		Signature: a.Sig,
		Data:      hexutil.Encode(a.Data),
	}
	if a.Value != nil {
		info.Value = a.Value.String()
	}
	return info
}
