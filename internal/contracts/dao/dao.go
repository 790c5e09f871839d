// Package dao 实现治理协调合约 OGREDAO：成员注册、起草提案、按阈值评估提案，
// 并在时间锁结束后原子执行提案动作。
package dao

import (
	"errors"
	"fmt"
	"math/big"

	"ogre-backend/internal/contracts/access"
	"ogre-backend/internal/contracts/credential"
	"ogre-backend/internal/contracts/hopper"
	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/contracts/proposal"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// MemberStatus 成员状态，取值与链上枚举一致
type MemberStatus uint8

const (
	MemberUnregistered MemberStatus = iota
	MemberPending
	MemberRegistered
)

func (s MemberStatus) String() string {
	switch s {
	case MemberUnregistered:
		return "Unregistered"
	case MemberPending:
		return "Pending"
	case MemberRegistered:
		return "Registered"
	default:
		return fmt.Sprintf("MemberStatus(%d)", uint8(s))
	}
}

const (
	DefaultQuorumThreshold  = 5000
	DefaultSupportThreshold = 5000
	DefaultMinVotePeriod    = 300

	// ExecuteSig 执行标记动作的函数签名
	ExecuteSig = "executeProposal(address)"
)

var (
	ErrAlreadyRegistered   = errors.New("token is already registered")
	ErrNotTokenOwner       = errors.New("caller does not own token")
	ErrNotMember           = errors.New("caller holds no registered membership token")
	ErrNotProposal         = errors.New("address is not a proposal of this dao")
	ErrProposalNotPassed   = errors.New("proposal has not passed")
	ErrInvalidThreshold    = errors.New("threshold must be between 0 and 10000 basis points")
	ErrInvalidVotePeriod   = errors.New("vote period out of range")
	ErrInvalidCredential   = errors.New("nft address is not a credential contract")
	ErrInvalidFactory      = errors.New("proposal factory address is not a proposal factory")
	ErrFeeTokenRequired    = errors.New("proposal cost set without fee token")
	ErrInvalidFeeToken     = errors.New("fee token address is not a token contract")
	ErrUnauthorized        = errors.New("caller is not a dao admin")
	ErrOnlyProposal        = errors.New("only callable by an executed proposal")
	ErrProposalIndexBounds = errors.New("proposal index out of range")
)

// ProposalFactory 提案工厂
type ProposalFactory interface {
	ledger.Contract
	ProduceProposal(tx *ledger.Tx, title string, dao, owner common.Address) (*proposal.Proposal, error)
}

// FeeToken 起草费代币
type FeeToken interface {
	ledger.Contract
	TransferFrom(tx *ledger.Tx, from, to common.Address, amount *big.Int) error
}

// Params DAO 构造参数
type Params struct {
	Name            string
	Metadata        string
	NFT             common.Address
	ProposalFactory common.Address
	ProposalCost    *big.Int
	Admin           common.Address
	Delay           uint64
	// FeeToken 为零地址时不收取起草费
	FeeToken common.Address
}

// Evaluation 提案评估结果
type Evaluation struct {
	Proposal              common.Address `json:"proposal"`
	QuorumPassed          bool           `json:"quorum_passed"`
	SupportPassed         bool           `json:"support_passed"`
	TotalVotes            uint64         `json:"total_votes"`
	YesVotes              uint64         `json:"yes_votes"`
	QuorumVotesThreshold  uint64         `json:"quorum_votes_threshold"`
	SupportVotesThreshold uint64         `json:"support_votes_threshold"`
	Status                string         `json:"status"`
	ReadyAt               uint64         `json:"ready_at,omitempty"`
}

// DAO OGREDAO 合约
type DAO struct {
	address          common.Address
	name             string
	metadata         string
	credential       credential.OwnershipReader
	factory          ProposalFactory
	feeToken         FeeToken
	proposalCost     *big.Int
	quorumThreshold  uint64
	supportThreshold uint64
	minVotePeriod    uint64

	members      map[uint64]MemberStatus
	memberTokens []uint64

	proposals  []*proposal.Proposal
	proposalOf map[common.Address]*proposal.Proposal

	roles  *access.Roles
	hopper *hopper.Hopper
}

// Deploy 由当前 Self 部署 DAO，admin 获得 DAO_ADMIN 角色
func Deploy(tx *ledger.Tx, params Params) (*DAO, error) {
	nft, ok := lookup[credential.OwnershipReader](tx, params.NFT)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredential, params.NFT.Hex())
	}
	factory, ok := lookup[ProposalFactory](tx, params.ProposalFactory)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFactory, params.ProposalFactory.Hex())
	}
	cost := new(big.Int)
	if params.ProposalCost != nil {
		cost.Set(params.ProposalCost)
	}
	var fee FeeToken
	if params.FeeToken != (common.Address{}) {
		if fee, ok = lookup[FeeToken](tx, params.FeeToken); !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFeeToken, params.FeeToken.Hex())
		}
	} else if cost.Sign() > 0 {
		return nil, ErrFeeTokenRequired
	}

	var d *DAO
	_, err := tx.Deploy(func(addr common.Address) (ledger.Contract, error) {
		d = &DAO{
			address:          addr,
			name:             params.Name,
			metadata:         params.Metadata,
			credential:       nft,
			factory:          factory,
			feeToken:         fee,
			proposalCost:     cost,
			quorumThreshold:  DefaultQuorumThreshold,
			supportThreshold: DefaultSupportThreshold,
			minVotePeriod:    DefaultMinVotePeriod,
			members:          make(map[uint64]MemberStatus),
			proposalOf:       make(map[common.Address]*proposal.Proposal),
			roles:            access.NewRoles(addr),
			hopper:           hopper.New(addr, params.Delay),
		}
		return d, nil
	})
	if err != nil {
		return nil, err
	}

	defer tx.Enter(d.address)()
	if err := d.roles.Setup(tx, access.RoleDAOAdmin, params.Admin); err != nil {
		return nil, err
	}
	return d, nil
}

func lookup[T any](tx *ledger.Tx, addr common.Address) (T, bool) {
	var zero T
	contract, ok := tx.Contract(addr)
	if !ok {
		return zero, false
	}
	typed, ok := contract.(T)
	return typed, ok
}

func (d *DAO) Address() common.Address                { return d.address }
func (d *DAO) Name() string                           { return d.name }
func (d *DAO) Metadata() string                       { return d.metadata }
func (d *DAO) NFTAddress() common.Address             { return d.credential.Address() }
func (d *DAO) ProposalFactoryAddress() common.Address { return d.factory.Address() }
func (d *DAO) Delay() uint64                          { return d.hopper.Delay() }
func (d *DAO) QuorumThreshold() uint64                { return d.quorumThreshold }
func (d *DAO) SupportThreshold() uint64               { return d.supportThreshold }
func (d *DAO) MinVotePeriod() uint64                  { return d.minVotePeriod }
func (d *DAO) ProposalCost() *big.Int                 { return new(big.Int).Set(d.proposalCost) }
func (d *DAO) MemberCount() uint64                    { return uint64(len(d.memberTokens)) }
func (d *DAO) ProposalCount() uint64                  { return uint64(len(d.proposals)) }

// FeeTokenAddress 起草费代币地址，未设置时为零地址
func (d *DAO) FeeTokenAddress() common.Address {
	if d.feeToken == nil {
		return common.Address{}
	}
	return d.feeToken.Address()
}

// HasRole 角色查询
func (d *DAO) HasRole(role common.Hash, account common.Address) bool {
	return d.roles.HasRole(role, account)
}

// GetRoleAdmin 角色的管理角色
func (d *DAO) GetRoleAdmin(role common.Hash) common.Hash {
	return d.roles.GetRoleAdmin(role)
}

// IsTokenOwner account 是否持有 tokenID
func (d *DAO) IsTokenOwner(tokenID uint64, account common.Address) bool {
	owner, err := d.credential.OwnerOf(tokenID)
	return err == nil && owner == account
}

// GetMemberStatus 成员状态
func (d *DAO) GetMemberStatus(tokenID uint64) MemberStatus {
	return d.members[tokenID]
}

// IsRegistered tokenID 是否已注册
func (d *DAO) IsRegistered(tokenID uint64) bool {
	return d.members[tokenID] == MemberRegistered
}

// MemberTokens 已注册的 token，按注册顺序
func (d *DAO) MemberTokens() []uint64 {
	out := make([]uint64, len(d.memberTokens))
	copy(out, d.memberTokens)
	return out
}

// Proposals 第 i 个提案（从 1 开始）
func (d *DAO) Proposals(i uint64) (common.Address, error) {
	if i == 0 || i > uint64(len(d.proposals)) {
		return common.Address{}, fmt.Errorf("%w: %d", ErrProposalIndexBounds, i)
	}
	return d.proposals[i-1].Address(), nil
}

// IsProposal 是否为本 DAO 起草的提案
func (d *DAO) IsProposal(addr common.Address) bool {
	_, ok := d.proposalOf[addr]
	return ok
}

// Proposal 按地址获取提案
func (d *DAO) Proposal(addr common.Address) (*proposal.Proposal, bool) {
	p, ok := d.proposalOf[addr]
	return p, ok
}

// RegisterMember 调用者以持有的凭证注册为成员
func (d *DAO) RegisterMember(tx *ledger.Tx, tokenID uint64) error {
	defer tx.Enter(d.address)()

	if d.members[tokenID] != MemberUnregistered {
		return ErrAlreadyRegistered
	}
	member := tx.Sender()
	if !d.IsTokenOwner(tokenID, member) {
		return fmt.Errorf("%w: token %d", ErrNotTokenOwner, tokenID)
	}

	ledger.SetMapValue(tx, d.members, tokenID, MemberRegistered)
	ledger.AppendValue(tx, &d.memberTokens, tokenID)

	log, err := ogreabi.PackEvent(ogreabi.Governance, "MemberRegistered", d.address,
		d.address, d.credential.Address(), ogreabi.BigUint(tokenID), member)
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}

// DraftProposal 成员起草提案，proposalCost 非零时从调用者收取起草费
func (d *DAO) DraftProposal(tx *ledger.Tx, title string) (*proposal.Proposal, error) {
	defer tx.Enter(d.address)()

	creator := tx.Sender()
	if !d.holdsMembership(creator) {
		return nil, fmt.Errorf("%w: %s", ErrNotMember, creator.Hex())
	}
	if d.proposalCost.Sign() > 0 {
		if err := d.feeToken.TransferFrom(tx, creator, d.address, d.proposalCost); err != nil {
			return nil, fmt.Errorf("failed to charge proposal cost: %w", err)
		}
	}

	p, err := d.factory.ProduceProposal(tx, title, d.address, creator)
	if err != nil {
		return nil, fmt.Errorf("failed to produce proposal: %w", err)
	}
	ledger.AppendValue(tx, &d.proposals, p)
	ledger.SetMapValue(tx, d.proposalOf, p.Address(), p)

	log, err := ogreabi.PackEvent(ogreabi.Governance, "ProposalCreated", d.address, d.address, creator, p.Address())
	if err != nil {
		return nil, err
	}
	tx.Emit(log)
	return p, nil
}

func (d *DAO) holdsMembership(account common.Address) bool {
	for _, tokenID := range d.memberTokens {
		if d.IsTokenOwner(tokenID, account) {
			return true
		}
	}
	return false
}

// EvaluateProposal 投票结束后按阈值评估。通过时在时间锁中登记执行标记，
// 标记就绪时间即提案最早可执行时间。
func (d *DAO) EvaluateProposal(tx *ledger.Tx, addr common.Address) (*Evaluation, error) {
	defer tx.Enter(d.address)()

	p, ok := d.proposalOf[addr]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotProposal, addr.Hex())
	}

	tally := p.Tally()
	total := tally.Total()
	quorumVotes, supportVotes := Thresholds(d.MemberCount(), total, d.quorumThreshold, d.supportThreshold)
	eval := &Evaluation{
		Proposal:              addr,
		QuorumPassed:          total >= quorumVotes,
		SupportPassed:         tally.Yes >= supportVotes,
		TotalVotes:            total,
		YesVotes:              tally.Yes,
		QuorumVotesThreshold:  quorumVotes,
		SupportVotesThreshold: supportVotes,
	}
	passed := eval.QuorumPassed && eval.SupportPassed

	if err := p.Evaluate(tx, passed); err != nil {
		return nil, err
	}
	eval.Status = p.StoredStatus().String()

	log, err := ogreabi.PackEvent(ogreabi.Governance, "ProposalEvaluated", d.address, addr,
		eval.QuorumPassed, eval.SupportPassed,
		ogreabi.BigUint(total), ogreabi.BigUint(quorumVotes), ogreabi.BigUint(supportVotes))
	if err != nil {
		return nil, err
	}
	tx.Emit(log)

	if passed {
		_, ready, err := d.hopper.LoadAction(tx, executionMarker(addr))
		if err != nil {
			return nil, fmt.Errorf("failed to load execution marker: %w", err)
		}
		eval.ReadyAt = ready
	}
	return eval, nil
}

// ExecutionReady 已通过提案的最早执行时间
func (d *DAO) ExecutionReady(addr common.Address) (uint64, bool) {
	key, err := executionMarker(addr).Key()
	if err != nil {
		return 0, false
	}
	return d.hopper.Ready(key)
}

// ExecuteProposal 时间锁结束后按顺序以 DAO 身份执行全部动作。
// 任一动作失败则整体回滚，提案保持 Passed，可修复后重试。
func (d *DAO) ExecuteProposal(tx *ledger.Tx, addr common.Address) error {
	defer tx.Enter(d.address)()

	p, ok := d.proposalOf[addr]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotProposal, addr.Hex())
	}
	if p.StoredStatus() != proposal.StatusPassed {
		return fmt.Errorf("%w: %s is %s", ErrProposalNotPassed, addr.Hex(), p.StoredStatus())
	}

	marker := executionMarker(addr)
	ready, _ := d.ExecutionReady(addr)
	if _, err := d.hopper.Consume(tx, marker, ready); err != nil {
		return err
	}
	if err := d.executeReadiedActions(tx, p); err != nil {
		return err
	}
	if err := p.MarkExecuted(tx); err != nil {
		return err
	}

	log, err := ogreabi.PackEvent(ogreabi.Governance, "ProposalExecuted", d.address, addr)
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}

func (d *DAO) executeReadiedActions(tx *ledger.Tx, p *proposal.Proposal) error {
	for i, action := range p.Actions() {
		if err := hopper.Dispatch(tx, action); err != nil {
			return fmt.Errorf("%w: action %d: %v", hopper.ErrActionExecutionFailed, i, err)
		}
	}
	return nil
}

func executionMarker(addr common.Address) hopper.Action {
	return hopper.Action{
		Target: addr,
		Value:  new(big.Int),
		Sig:    ExecuteSig,
		Data:   ogreabi.EncodeAddress(addr),
	}
}
