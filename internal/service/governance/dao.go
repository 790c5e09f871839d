package governance

import (
	"context"
	"fmt"
	"math/big"

	"ogre-backend/internal/contracts/access"
	"ogre-backend/internal/contracts/dao"
	"ogre-backend/internal/ledger"
	"ogre-backend/internal/service/keeper"
	"ogre-backend/internal/types"
	"ogre-backend/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
)

var roles = map[string]common.Hash{
	"DAO_ADMIN":  access.RoleDAOAdmin,
	"DAO_INVITE": access.RoleDAOInvite,
}

// DeployDAO 通过 DAO 工厂部署，调用者为管理员。配置中非零且与合约默认值不同的参数在同一笔交易内设置。
func (s *Service) DeployDAO(ctx context.Context, caller common.Address, req *types.DeployDAORequest) (*types.TxResult, error) {
	nft, err := ParseAddress(req.NFTAddress)
	if err != nil {
		return nil, err
	}
	var feeToken common.Address
	if req.FeeTokenAddress != "" {
		if feeToken, err = ParseAddress(req.FeeTokenAddress); err != nil {
			return nil, err
		}
	}
	cost, err := s.cfg.ProposalCostWei()
	if err != nil {
		return nil, err
	}
	if req.ProposalCost != "" {
		if cost, err = ParseAmount(req.ProposalCost); err != nil {
			return nil, err
		}
	}
	delay := s.cfg.Delay
	if req.Delay != nil {
		delay = *req.Delay
	}

	var created common.Address
	_, result, err := s.submit(ctx, "DeployDAO", caller, func(tx *ledger.Tx) error {
		factory, err := contractAt[*dao.Factory](tx, s.daoFactory)
		if err != nil {
			return err
		}
		d, err := factory.ProduceDAO(tx, dao.Params{
			Name:            req.Name,
			Metadata:        req.Metadata,
			NFT:             nft,
			ProposalFactory: s.proposalFactory,
			ProposalCost:    cost,
			Admin:           caller,
			Delay:           delay,
			FeeToken:        feeToken,
		})
		if err != nil {
			return err
		}
		created = d.Address()
		return s.applyDefaults(tx, d)
	})
	if err != nil {
		return nil, err
	}
	result.Contract = created.Hex()
	return result, nil
}

func (s *Service) applyDefaults(tx *ledger.Tx, d *dao.DAO) error {
	if s.cfg.QuorumThreshold != 0 && s.cfg.QuorumThreshold != d.QuorumThreshold() {
		if err := d.SetQuorumThreshold(tx, s.cfg.QuorumThreshold); err != nil {
			return err
		}
	}
	if s.cfg.SupportThreshold != 0 && s.cfg.SupportThreshold != d.SupportThreshold() {
		if err := d.SetSupportThreshold(tx, s.cfg.SupportThreshold); err != nil {
			return err
		}
	}
	if s.cfg.MinVotePeriod != 0 && s.cfg.MinVotePeriod != d.MinVotePeriod() {
		if err := d.SetMinVotePeriod(tx, s.cfg.MinVotePeriod); err != nil {
			return err
		}
	}
	return nil
}

// GetDAO DAO 当前参数
func (s *Service) GetDAO(ctx context.Context, addr common.Address) (*types.DAOInfo, error) {
	var info *types.DAOInfo
	err := s.ledger.View(ctx, func(tx *ledger.Tx) error {
		d, err := contractAt[*dao.DAO](tx, addr)
		if err != nil {
			return err
		}
		info = &types.DAOInfo{
			Address:          d.Address().Hex(),
			Name:             d.Name(),
			Metadata:         d.Metadata(),
			NFTAddress:       d.NFTAddress().Hex(),
			ProposalFactory:  d.ProposalFactoryAddress().Hex(),
			Delay:            d.Delay(),
			QuorumThreshold:  d.QuorumThreshold(),
			SupportThreshold: d.SupportThreshold(),
			MinVotePeriod:    d.MinVotePeriod(),
			ProposalCost:     d.ProposalCost().String(),
			MemberCount:      d.MemberCount(),
			ProposalCount:    d.ProposalCount(),
		}
		if fee := d.FeeTokenAddress(); fee != (common.Address{}) {
			info.FeeToken = fee.Hex()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// UpdateDAO 管理员修改参数，所有修改在同一笔交易内完成
func (s *Service) UpdateDAO(ctx context.Context, caller, addr common.Address, req *types.UpdateDAORequest) (*types.TxResult, error) {
	var cost *big.Int
	if req.ProposalCost != nil {
		var err error
		if cost, err = ParseAmount(*req.ProposalCost); err != nil {
			return nil, err
		}
	}

	_, result, err := s.submit(ctx, "UpdateDAO", caller, func(tx *ledger.Tx) error {
		d, err := contractAt[*dao.DAO](tx, addr)
		if err != nil {
			return err
		}
		if req.Name != nil {
			if err := d.SetDAOName(tx, *req.Name); err != nil {
				return err
			}
		}
		if req.Metadata != nil {
			if err := d.SetDAOMetadata(tx, *req.Metadata); err != nil {
				return err
			}
		}
		if req.QuorumThreshold != nil {
			if err := d.SetQuorumThreshold(tx, *req.QuorumThreshold); err != nil {
				return err
			}
		}
		if req.SupportThreshold != nil {
			if err := d.SetSupportThreshold(tx, *req.SupportThreshold); err != nil {
				return err
			}
		}
		if req.MinVotePeriod != nil {
			if err := d.SetMinVotePeriod(tx, *req.MinVotePeriod); err != nil {
				return err
			}
		}
		if cost != nil {
			if err := d.SetProposalCost(tx, cost); err != nil {
				return err
			}
		}
		return nil
	})
	return result, err
}

// GrantRole 授予角色
func (s *Service) GrantRole(ctx context.Context, caller, addr common.Address, req *types.RoleRequest) (*types.TxResult, error) {
	role, account, err := parseRoleRequest(req)
	if err != nil {
		return nil, err
	}
	_, result, err := s.submit(ctx, "GrantRole", caller, func(tx *ledger.Tx) error {
		d, err := contractAt[*dao.DAO](tx, addr)
		if err != nil {
			return err
		}
		return d.GrantRole(tx, role, account)
	})
	return result, err
}

// RevokeRole 撤销角色
func (s *Service) RevokeRole(ctx context.Context, caller, addr common.Address, req *types.RoleRequest) (*types.TxResult, error) {
	role, account, err := parseRoleRequest(req)
	if err != nil {
		return nil, err
	}
	_, result, err := s.submit(ctx, "RevokeRole", caller, func(tx *ledger.Tx) error {
		d, err := contractAt[*dao.DAO](tx, addr)
		if err != nil {
			return err
		}
		return d.RevokeRole(tx, role, account)
	})
	return result, err
}

// HasRole 角色查询
func (s *Service) HasRole(ctx context.Context, addr common.Address, roleName string, account common.Address) (bool, error) {
	role, ok := roles[roleName]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownRole, roleName)
	}
	var has bool
	err := s.ledger.View(ctx, func(tx *ledger.Tx) error {
		d, err := contractAt[*dao.DAO](tx, addr)
		if err != nil {
			return err
		}
		has = d.HasRole(role, account)
		return nil
	})
	return has, err
}

func parseRoleRequest(req *types.RoleRequest) (common.Hash, common.Address, error) {
	role, ok := roles[req.Role]
	if !ok {
		return common.Hash{}, common.Address{}, fmt.Errorf("%w: %s", ErrUnknownRole, req.Role)
	}
	account, err := ParseAddress(req.Account)
	if err != nil {
		return common.Hash{}, common.Address{}, err
	}
	return role, account, nil
}

// RegisterMember 凭证持有人把凭证注册为成员
func (s *Service) RegisterMember(ctx context.Context, caller, addr common.Address, tokenID uint64) (*types.TxResult, error) {
	_, result, err := s.submit(ctx, "RegisterMember", caller, func(tx *ledger.Tx) error {
		d, err := contractAt[*dao.DAO](tx, addr)
		if err != nil {
			return err
		}
		return d.RegisterMember(tx, tokenID)
	})
	return result, err
}

// MemberStatus 凭证的成员状态
func (s *Service) MemberStatus(ctx context.Context, addr common.Address, tokenID uint64) (*types.MemberStatusResponse, error) {
	var status dao.MemberStatus
	err := s.ledger.View(ctx, func(tx *ledger.Tx) error {
		d, err := contractAt[*dao.DAO](tx, addr)
		if err != nil {
			return err
		}
		status = d.GetMemberStatus(tokenID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &types.MemberStatusResponse{TokenID: tokenID, Status: status.String()}, nil
}

// EvaluateProposal 投票结束后评估，通过时提案进入执行队列
func (s *Service) EvaluateProposal(ctx context.Context, caller, addr, proposalAddr common.Address) (*dao.Evaluation, *types.TxResult, error) {
	var eval *dao.Evaluation
	_, result, err := s.submit(ctx, "EvaluateProposal", caller, func(tx *ledger.Tx) error {
		d, err := contractAt[*dao.DAO](tx, addr)
		if err != nil {
			return err
		}
		eval, err = d.EvaluateProposal(tx, proposalAddr)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	if s.queue != nil && eval.ReadyAt > 0 {
		entry := keeper.Entry{DAO: addr, Proposal: proposalAddr, Ready: eval.ReadyAt}
		if err := s.queue.Push(ctx, entry); err != nil {
			logger.Error("EvaluateProposal Queue Error: ", err, "proposal", proposalAddr.Hex())
		}
	}
	return eval, result, nil
}

// ExecuteProposal 执行已就绪的提案，任何账户都可调用
func (s *Service) ExecuteProposal(ctx context.Context, caller, addr, proposalAddr common.Address) (*types.TxResult, error) {
	_, result, err := s.submit(ctx, "ExecuteProposal", caller, func(tx *ledger.Tx) error {
		d, err := contractAt[*dao.DAO](tx, addr)
		if err != nil {
			return err
		}
		return d.ExecuteProposal(tx, proposalAddr)
	})
	if err != nil {
		return nil, err
	}

	if s.queue != nil {
		if err := s.queue.Remove(ctx, keeper.Entry{DAO: addr, Proposal: proposalAddr}); err != nil {
			logger.Error("ExecuteProposal Queue Error: ", err, "proposal", proposalAddr.Hex())
		}
	}
	return result, nil
}
