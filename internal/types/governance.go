package types

import (
	"time"
)

// GovernanceEvent 账本事件索引记录
type GovernanceEvent struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LedgerID        string    `json:"ledger_id" gorm:"size:36;not null;index"`
	TxHash          string    `json:"tx_hash" gorm:"size:66;not null;uniqueIndex:idx_event_position,priority:1"`
	BlockNumber     uint64    `json:"block_number" gorm:"not null"`
	LogIndex        uint      `json:"log_index" gorm:"not null;uniqueIndex:idx_event_position,priority:2"`
	BlockTimestamp  uint64    `json:"block_timestamp" gorm:"not null"`
	ContractAddress string    `json:"contract_address" gorm:"size:42;not null;index"`
	EventName       string    `json:"event_name" gorm:"size:64;not null;index"`
	Args            string    `json:"args" gorm:"type:jsonb"` // 解码后的事件参数
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (GovernanceEvent) TableName() string {
	return "governance_events"
}

// ProposalRecord 提案投影，地址只在同一账本实例内唯一
type ProposalRecord struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LedgerID   string    `json:"ledger_id" gorm:"size:36;not null;uniqueIndex:idx_proposal_ledger_address,priority:1"`
	Address    string    `json:"address" gorm:"size:42;not null;uniqueIndex:idx_proposal_ledger_address,priority:2"`
	DAOAddress string    `json:"dao_address" gorm:"size:42;not null;index"`
	Title      string    `json:"title" gorm:"size:500"`
	Owner      string    `json:"owner" gorm:"size:42;not null;index"`
	Status     string    `json:"status" gorm:"size:20;not null;index"`
	Revotable  bool      `json:"revotable"`
	StartTime  uint64    `json:"start_time"`
	EndTime    uint64    `json:"end_time"`
	YesVotes   uint64    `json:"yes_votes"`
	NoVotes    uint64    `json:"no_votes"`
	Abstain    uint64    `json:"abstain_votes"`
	Actions    int       `json:"action_count"`
	ReadyAt    uint64    `json:"ready_at"` // 执行就绪时间，未通过时为 0
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ProposalRecord) TableName() string {
	return "proposal_records"
}

// TxResult 交易回执摘要
type TxResult struct {
	TxHash      string   `json:"tx_hash"`
	BlockNumber uint64   `json:"block_number"`
	Timestamp   uint64   `json:"timestamp"`
	Events      []string `json:"events"`
	// Contract 本次交易部署或创建的合约地址
	Contract string `json:"contract,omitempty"`
}

// DeployDAORequest 部署 DAO 请求，调用者成为 DAO 管理员
type DeployDAORequest struct {
	Name            string  `json:"name" binding:"required,max=200"`
	Metadata        string  `json:"metadata"`
	NFTAddress      string  `json:"nft_address" binding:"required,len=42"`
	Delay           *uint64 `json:"delay"`
	ProposalCost    string  `json:"proposal_cost"`
	FeeTokenAddress string  `json:"fee_token_address"`
}

// DAOInfo DAO 概览
type DAOInfo struct {
	Address          string `json:"address"`
	Name             string `json:"name"`
	Metadata         string `json:"metadata"`
	NFTAddress       string `json:"nft_address"`
	ProposalFactory  string `json:"proposal_factory"`
	Delay            uint64 `json:"delay"`
	QuorumThreshold  uint64 `json:"quorum_threshold"`
	SupportThreshold uint64 `json:"support_threshold"`
	MinVotePeriod    uint64 `json:"min_vote_period"`
	ProposalCost     string `json:"proposal_cost"`
	FeeToken         string `json:"fee_token,omitempty"`
	MemberCount      uint64 `json:"member_count"`
	ProposalCount    uint64 `json:"proposal_count"`
}

// UpdateDAORequest 管理员修改 DAO 参数，只修改非空字段
type UpdateDAORequest struct {
	Name             *string `json:"name"`
	Metadata         *string `json:"metadata"`
	QuorumThreshold  *uint64 `json:"quorum_threshold" binding:"omitempty,max=10000"`
	SupportThreshold *uint64 `json:"support_threshold" binding:"omitempty,max=10000"`
	MinVotePeriod    *uint64 `json:"min_vote_period"`
	ProposalCost     *string `json:"proposal_cost"`
}

// RoleRequest 角色授予/撤销
type RoleRequest struct {
	Role    string `json:"role" binding:"required,oneof=DAO_ADMIN DAO_INVITE"`
	Account string `json:"account" binding:"required,len=42"`
}

type RegisterMemberRequest struct {
	TokenID uint64 `json:"token_id"`
}

// MemberStatusResponse 成员状态
type MemberStatusResponse struct {
	TokenID uint64 `json:"token_id"`
	Status  string `json:"status"`
}

type DraftProposalRequest struct {
	Title string `json:"title" binding:"required,max=500"`
}

// ActionInfo 提案动作
type ActionInfo struct {
	Target    string `json:"target" binding:"required,len=42"`
	Value     string `json:"value"`
	Signature string `json:"signature"`
	Data      string `json:"data"` // 0x 开头的十六进制
}

// ProposalInfo 提案实时状态
type ProposalInfo struct {
	Address    string       `json:"address"`
	DAOAddress string       `json:"dao_address"`
	Title      string       `json:"title"`
	Owner      string       `json:"owner"`
	Status     string       `json:"status"`
	Revotable  bool         `json:"revotable"`
	StartTime  uint64       `json:"start_time"`
	EndTime    uint64       `json:"end_time"`
	YesVotes   uint64       `json:"yes_votes"`
	NoVotes    uint64       `json:"no_votes"`
	Abstain    uint64       `json:"abstain_votes"`
	Actions    []ActionInfo `json:"actions"`
	ReadyAt    uint64       `json:"ready_at,omitempty"`
}

// UpdateProposalRequest 修改标题或可重投配置
type UpdateProposalRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=500"`
	Revotable *bool   `json:"revotable"`
}

type SetVotingPeriodRequest struct {
	StartTime uint64 `json:"start_time" binding:"required"`
	EndTime   uint64 `json:"end_time" binding:"required"`
}

// CastVoteRequest 投票请求
type CastVoteRequest struct {
	TokenID uint64 `json:"token_id"`
	Choice  string `json:"choice" binding:"required,oneof=no yes abstain"`
}

// GetProposalListRequest 提案列表查询
type GetProposalListRequest struct {
	Status   string `form:"status"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

type GetProposalListResponse struct {
	Proposals []ProposalRecord `json:"proposals"`
	Total     int64            `json:"total"`
	Page      int              `json:"page"`
	PageSize  int              `json:"page_size"`
}

// GetEventListRequest 事件列表查询
type GetEventListRequest struct {
	Contract  string `form:"contract"`
	EventName string `form:"event_name"`
	Limit     int    `form:"limit,default=100" binding:"min=1,max=1000"`
}

type DeployHopperRequest struct {
	Delay uint64 `json:"delay"`
}

// HopperActionRequest 延迟动作加载/执行
type HopperActionRequest struct {
	ActionInfo
	Ready uint64 `json:"ready"`
}

// HopperActionResponse 加载结果
type HopperActionResponse struct {
	TxResult
	Key   string `json:"key"`
	Ready uint64 `json:"ready"`
}

// CreateCredentialRequest 部署成员凭证合约，调用者为合约所有者
type CreateCredentialRequest struct {
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
}

type MintCredentialRequest struct {
	To      string `json:"to" binding:"required,len=42"`
	TokenID uint64 `json:"token_id"`
}

// CredentialOwnerResponse 远端凭证持有人
type CredentialOwnerResponse struct {
	NFTAddress string `json:"nft_address"`
	TokenID    uint64 `json:"token_id"`
	Owner      string `json:"owner"`
	Source     string `json:"source"` // local or remote
}

type CreateFeeTokenRequest struct {
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
}

// TokenAmountRequest 铸造/授权数量（十进制字符串）
type TokenAmountRequest struct {
	Account string `json:"account" binding:"required,len=42"`
	Amount  string `json:"amount" binding:"required"`
}

// EvaluateProposalResponse 评估结果
type EvaluateProposalResponse struct {
	TxResult
	QuorumPassed          bool   `json:"quorum_passed"`
	SupportPassed         bool   `json:"support_passed"`
	TotalVotes            uint64 `json:"total_votes"`
	YesVotes              uint64 `json:"yes_votes"`
	QuorumVotesThreshold  uint64 `json:"quorum_votes_threshold"`
	SupportVotesThreshold uint64 `json:"support_votes_threshold"`
	Status                string `json:"status"`
	ReadyAt               uint64 `json:"ready_at,omitempty"`
}

// HasRoleResponse 角色查询结果
type HasRoleResponse struct {
	Role    string `json:"role"`
	Account string `json:"account"`
	HasRole bool   `json:"has_role"`
}

type TransferCredentialRequest struct {
	To string `json:"to" binding:"required,len=42"`
}

// FundRequest 本地水龙头
type FundRequest struct {
	Account string `json:"account" binding:"required,len=42"`
	Amount  string `json:"amount" binding:"required"`
}

// BalanceResponse 余额（十进制字符串）
type BalanceResponse struct {
	Account string `json:"account"`
	Token   string `json:"token,omitempty"`
	Balance string `json:"balance"`
}

// FactoriesResponse 运营账户部署的工厂合约
type FactoriesResponse struct {
	CredentialFactory string `json:"credential_factory"`
	ProposalFactory   string `json:"proposal_factory"`
	DAOFactory        string `json:"dao_factory"`
	Now               uint64 `json:"now"`
}
