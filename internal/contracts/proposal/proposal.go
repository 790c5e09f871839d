// Package proposal 提案状态机：持有动作列表、投票窗口和计票结果，
// 评估与执行由所属 DAO 驱动。
package proposal

import (
	"errors"
	"fmt"
	"math/big"

	"ogre-backend/internal/contracts/hopper"
	"ogre-backend/internal/contracts/ogreabi"
	"ogre-backend/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// Status 提案状态，取值与链上枚举一致
type Status uint8

const (
	StatusProposed Status = iota
	StatusCancelled
	StatusActive
	StatusPassed
	StatusExecuted
	StatusFailed
)

var statusNames = map[Status]string{
	StatusProposed:  "Proposed",
	StatusCancelled: "Cancelled",
	StatusActive:    "Active",
	StatusPassed:    "Passed",
	StatusExecuted:  "Executed",
	StatusFailed:    "Failed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// ParseStatus 按名称解析状态
func ParseStatus(name string) (Status, bool) {
	for s, n := range statusNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// Choice 投票选项
type Choice uint8

const (
	ChoiceNo Choice = iota
	ChoiceYes
	ChoiceAbstain
)

func (c Choice) Valid() bool {
	return c <= ChoiceAbstain
}

var (
	ErrNotOwner           = errors.New("caller is not the proposal owner")
	ErrNotCoordinator     = errors.New("caller is not the proposal dao")
	ErrUnknownCoordinator = errors.New("proposal dao is not a governance contract")
	ErrProposalLocked     = errors.New("proposal can no longer be modified")
	ErrInvalidStatus      = errors.New("invalid proposal status for operation")
	ErrStartNotInFuture   = errors.New("start time must be in the future")
	ErrEndBeforeStart     = errors.New("end time must be after start time")
	ErrVotePeriodTooShort = errors.New("voting period shorter than dao minimum")
	ErrVotingNotStarted   = errors.New("voting has not started")
	ErrVotingClosed       = errors.New("voting has ended")
	ErrVotingNotClosed    = errors.New("voting period has not ended")
	ErrVotingPeriodUnset  = errors.New("voting period not set")
	ErrNotTokenOwner      = errors.New("caller does not own token")
	ErrNotMember          = errors.New("token is not a registered member")
	ErrAlreadyVoted       = errors.New("token has already voted")
	ErrInvalidChoice      = errors.New("invalid vote choice")
)

// Coordinator 提案所属 DAO 需要提供的能力
type Coordinator interface {
	ledger.Contract
	// IsTokenOwner 地址是否持有凭证
	IsTokenOwner(tokenID uint64, account common.Address) bool
	// IsRegistered 凭证是否已注册为成员
	IsRegistered(tokenID uint64) bool
	// MinVotePeriod 最短投票时长（秒）
	MinVotePeriod() uint64
}

// Tally 计票结果
type Tally struct {
	Yes     uint64 `json:"yes"`
	No      uint64 `json:"no"`
	Abstain uint64 `json:"abstain"`
}

// Total 已投票数
func (t Tally) Total() uint64 {
	return t.Yes + t.No + t.Abstain
}

func (t *Tally) add(c Choice, delta int) {
	var p *uint64
	switch c {
	case ChoiceYes:
		p = &t.Yes
	case ChoiceNo:
		p = &t.No
	default:
		p = &t.Abstain
	}
	if delta > 0 {
		*p++
	} else {
		*p--
	}
}

// Proposal OGREProposal 合约
type Proposal struct {
	address   common.Address
	title     string
	dao       common.Address
	owner     common.Address
	status    Status
	revotable bool
	startTime uint64
	endTime   uint64
	actions   []hopper.Action
	votes     map[uint64]Choice
	tally     Tally
}

// Deploy 由当前 Self 部署提案，初始状态 Proposed
func Deploy(tx *ledger.Tx, title string, dao, owner common.Address) (*Proposal, error) {
	var p *Proposal
	_, err := tx.Deploy(func(addr common.Address) (ledger.Contract, error) {
		p = &Proposal{
			address: addr,
			title:   title,
			dao:     dao,
			owner:   owner,
			status:  StatusProposed,
			votes:   make(map[uint64]Choice),
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	defer tx.Enter(p.address)()
	if err := p.emitStatus(tx); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Proposal) Address() common.Address    { return p.address }
func (p *Proposal) Title() string              { return p.title }
func (p *Proposal) DAOAddress() common.Address { return p.dao }
func (p *Proposal) Owner() common.Address      { return p.owner }
func (p *Proposal) Revotable() bool            { return p.revotable }
func (p *Proposal) StartTime() uint64          { return p.startTime }
func (p *Proposal) EndTime() uint64            { return p.endTime }
func (p *Proposal) Tally() Tally               { return p.tally }

// StoredStatus 存储的状态，不含隐式的 Active
func (p *Proposal) StoredStatus() Status {
	return p.status
}

// Status 在 now 时刻的状态：Proposed 且处于 [start, end) 时为 Active
func (p *Proposal) Status(now uint64) Status {
	if p.status == StatusProposed && p.startTime != 0 && now >= p.startTime && now < p.endTime {
		return StatusActive
	}
	return p.status
}

// GetActionCount 动作数量
func (p *Proposal) GetActionCount() int {
	return len(p.actions)
}

// GetAction 第 i 个动作
func (p *Proposal) GetAction(i int) (hopper.Action, bool) {
	if i < 0 || i >= len(p.actions) {
		return hopper.Action{}, false
	}
	return p.actions[i], true
}

// Actions 动作列表副本，按添加顺序
func (p *Proposal) Actions() []hopper.Action {
	out := make([]hopper.Action, len(p.actions))
	copy(out, p.actions)
	return out
}

// VoteOf token 的投票
func (p *Proposal) VoteOf(tokenID uint64) (Choice, bool) {
	c, ok := p.votes[tokenID]
	return c, ok
}

// SetProposalTitle 修改标题
func (p *Proposal) SetProposalTitle(tx *ledger.Tx, title string) error {
	defer tx.Enter(p.address)()
	if err := p.requireEditable(tx); err != nil {
		return err
	}
	ledger.SetValue(tx, &p.title, title)
	return nil
}

// ConfigureProposal 设置是否允许改票
func (p *Proposal) ConfigureProposal(tx *ledger.Tx, revotable bool) error {
	defer tx.Enter(p.address)()
	if err := p.requireEditable(tx); err != nil {
		return err
	}
	ledger.SetValue(tx, &p.revotable, revotable)
	return nil
}

// AddAction 追加动作
func (p *Proposal) AddAction(tx *ledger.Tx, action hopper.Action) error {
	defer tx.Enter(p.address)()
	if err := p.requireEditable(tx); err != nil {
		return err
	}
	if action.Value == nil {
		action.Value = new(big.Int)
	}
	if action.Data == nil {
		action.Data = []byte{}
	}

	index := len(p.actions)
	ledger.AppendValue(tx, &p.actions, action)

	log, err := ogreabi.PackEvent(ogreabi.Governance, "ActionAdded", p.address,
		ogreabi.BigUint(uint64(index)), action.Target, action.Value, action.Sig, action.Data)
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}

// SetVotingPeriod 设置投票窗口 [start, end)
func (p *Proposal) SetVotingPeriod(tx *ledger.Tx, start, end uint64) error {
	defer tx.Enter(p.address)()
	if err := p.requireEditable(tx); err != nil {
		return err
	}
	if start <= tx.Now() {
		return fmt.Errorf("%w: start %d, now %d", ErrStartNotInFuture, start, tx.Now())
	}
	if end <= start {
		return ErrEndBeforeStart
	}
	coordinator, err := p.coordinator(tx)
	if err != nil {
		return err
	}
	if minPeriod := coordinator.MinVotePeriod(); end-start < minPeriod {
		return fmt.Errorf("%w: %d < %d", ErrVotePeriodTooShort, end-start, minPeriod)
	}

	ledger.SetValue(tx, &p.startTime, start)
	ledger.SetValue(tx, &p.endTime, end)

	log, err := ogreabi.PackEvent(ogreabi.Governance, "VotingPeriodSet", p.address, ogreabi.BigUint(start), ogreabi.BigUint(end))
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}

// CastVote 以凭证投票。不可改票时重复投票返回 ErrAlreadyVoted；
// 可改票时覆盖旧票并调整计票。
func (p *Proposal) CastVote(tx *ledger.Tx, tokenID uint64, choice Choice) error {
	defer tx.Enter(p.address)()

	if !choice.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}
	if p.status != StatusProposed {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, p.status)
	}
	if p.startTime == 0 {
		return ErrVotingPeriodUnset
	}
	now := tx.Now()
	if now < p.startTime {
		return ErrVotingNotStarted
	}
	if now >= p.endTime {
		return ErrVotingClosed
	}

	coordinator, err := p.coordinator(tx)
	if err != nil {
		return err
	}
	voter := tx.Sender()
	if !coordinator.IsTokenOwner(tokenID, voter) {
		return fmt.Errorf("%w: token %d", ErrNotTokenOwner, tokenID)
	}
	if !coordinator.IsRegistered(tokenID) {
		return fmt.Errorf("%w: token %d", ErrNotMember, tokenID)
	}

	tally := p.tally
	if prev, voted := p.votes[tokenID]; voted {
		if !p.revotable {
			return fmt.Errorf("%w: token %d", ErrAlreadyVoted, tokenID)
		}
		tally.add(prev, -1)
	}
	tally.add(choice, 1)

	ledger.SetMapValue(tx, p.votes, tokenID, choice)
	ledger.SetValue(tx, &p.tally, tally)

	log, err := ogreabi.PackEvent(ogreabi.Governance, "VoteCast", p.address, ogreabi.BigUint(tokenID), voter, uint8(choice))
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}

// CancelProposal 取消提案，评估前均可取消
func (p *Proposal) CancelProposal(tx *ledger.Tx) error {
	defer tx.Enter(p.address)()

	if tx.Sender() != p.owner {
		return ErrNotOwner
	}
	if p.status != StatusProposed {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, p.status)
	}
	return p.transition(tx, StatusCancelled)
}

// Evaluate 由 DAO 在投票结束后写入评估结果
func (p *Proposal) Evaluate(tx *ledger.Tx, passed bool) error {
	defer tx.Enter(p.address)()

	if err := p.requireCoordinator(tx); err != nil {
		return err
	}
	if p.status != StatusProposed {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, p.status)
	}
	if p.endTime == 0 {
		return ErrVotingPeriodUnset
	}
	if tx.Now() < p.endTime {
		return fmt.Errorf("%w: ends at %d, now %d", ErrVotingNotClosed, p.endTime, tx.Now())
	}

	next := StatusFailed
	if passed {
		next = StatusPassed
	}
	return p.transition(tx, next)
}

// MarkExecuted 由 DAO 在动作全部执行后调用
func (p *Proposal) MarkExecuted(tx *ledger.Tx) error {
	defer tx.Enter(p.address)()

	if err := p.requireCoordinator(tx); err != nil {
		return err
	}
	if p.status != StatusPassed {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, p.status)
	}
	return p.transition(tx, StatusExecuted)
}

// Invoke 提案不接受外部 ABI 调用
func (p *Proposal) Invoke(tx *ledger.Tx, selector [4]byte, args []byte) error {
	return fmt.Errorf("%w: 0x%x", ledger.ErrUnknownSelector, selector)
}

func (p *Proposal) requireEditable(tx *ledger.Tx) error {
	if tx.Sender() != p.owner {
		return ErrNotOwner
	}
	if p.status != StatusProposed {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, p.status)
	}
	if p.startTime != 0 && tx.Now() >= p.startTime {
		return ErrProposalLocked
	}
	return nil
}

func (p *Proposal) requireCoordinator(tx *ledger.Tx) error {
	if tx.Sender() != p.dao {
		return ErrNotCoordinator
	}
	return nil
}

func (p *Proposal) coordinator(tx *ledger.Tx) (Coordinator, error) {
	contract, ok := tx.Contract(p.dao)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCoordinator, p.dao.Hex())
	}
	coordinator, ok := contract.(Coordinator)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCoordinator, p.dao.Hex())
	}
	return coordinator, nil
}

func (p *Proposal) transition(tx *ledger.Tx, next Status) error {
	ledger.SetValue(tx, &p.status, next)
	return p.emitStatus(tx)
}

func (p *Proposal) emitStatus(tx *ledger.Tx) error {
	log, err := ogreabi.PackEvent(ogreabi.Governance, "StatusUpdated", p.address, p.status.String())
	if err != nil {
		return err
	}
	tx.Emit(log)
	return nil
}
