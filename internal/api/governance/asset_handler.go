package governance

import (
	"context"

	"ogre-backend/internal/service/governance"
	"ogre-backend/internal/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// GetFactories 工厂合约地址
// @Summary 工厂合约地址
// @Description 运营账户启动时部署的凭证、提案与 DAO 工厂，以及账本当前时间
// @Tags 系统
// @Produce json
// @Success 200 {object} types.APIResponse{data=types.FactoriesResponse}
// @Router /api/v1/factories [get]
func (h *Handler) GetFactories(c *gin.Context) {
	credentialFactory, proposalFactory, daoFactory := h.govService.Factories()
	respond(c, types.FactoriesResponse{
		CredentialFactory: credentialFactory.Hex(),
		ProposalFactory:   proposalFactory.Hex(),
		DAOFactory:        daoFactory.Hex(),
		Now:               h.govService.Now(),
	})
}

// GetBalance 原生余额
// @Summary 原生余额
// @Tags 系统
// @Produce json
// @Param account path string true "账户地址"
// @Success 200 {object} types.APIResponse{data=types.BalanceResponse}
// @Router /api/v1/accounts/{account}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	account, ok := addressParam(c, "account")
	if !ok {
		return
	}
	respond(c, types.BalanceResponse{
		Account: account.Hex(),
		Balance: h.govService.Balance(account).String(),
	})
}

// Fund 本地水龙头
// @Summary 本地水龙头
// @Description 仅在 server.faucet 开启时注册
// @Tags 系统
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body types.FundRequest true "账户与数量"
// @Success 200 {object} types.APIResponse{data=types.BalanceResponse}
// @Router /api/v1/faucet [post]
func (h *Handler) Fund(c *gin.Context) {
	if _, ok := caller(c); !ok {
		return
	}
	var req types.FundRequest
	if !bindJSON(c, "Fund", &req) {
		return
	}
	account, err := governance.ParseAddress(req.Account)
	if err != nil {
		fail(c, "Fund", err)
		return
	}
	if err := h.govService.Fund(c.Request.Context(), account, req.Amount); err != nil {
		fail(c, "Fund", err)
		return
	}
	respond(c, types.BalanceResponse{
		Account: account.Hex(),
		Balance: h.govService.Balance(account).String(),
	})
}

// DeployHopper 部署独立时间锁
// @Summary 部署 ActionHopper
// @Description 调用者成为管理员
// @Tags 时间锁
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body types.DeployHopperRequest true "延迟（秒）"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Router /api/v1/hoppers [post]
func (h *Handler) DeployHopper(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}
	var req types.DeployHopperRequest
	if !bindJSON(c, "DeployHopper", &req) {
		return
	}
	result, err := h.govService.DeployHopper(c.Request.Context(), from, req.Delay)
	if err != nil {
		fail(c, "DeployHopper", err)
		return
	}
	respond(c, result)
}

// LoadHopperAction 加载延迟动作
// @Summary 加载延迟动作
// @Description 仅管理员，就绪时间为当前时间加延迟
// @Tags 时间锁
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hopper path string true "时间锁地址"
// @Param request body types.ActionInfo true "动作"
// @Success 200 {object} types.APIResponse{data=types.HopperActionResponse}
// @Failure 409 {object} types.APIResponse
// @Router /api/v1/hoppers/{hopper}/actions [post]
func (h *Handler) LoadHopperAction(c *gin.Context) {
	from, addr, ok := h.callerAndAddress(c, "hopper")
	if !ok {
		return
	}
	var req types.ActionInfo
	if !bindJSON(c, "LoadHopperAction", &req) {
		return
	}
	resp, err := h.govService.LoadHopperAction(c.Request.Context(), from, addr, &req)
	if err != nil {
		fail(c, "LoadHopperAction", err)
		return
	}
	respond(c, resp)
}

// ExecuteHopperAction 执行延迟动作
// @Summary 执行延迟动作
// @Tags 时间锁
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hopper path string true "时间锁地址"
// @Param request body types.HopperActionRequest true "动作与就绪时间"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 409 {object} types.APIResponse
// @Router /api/v1/hoppers/{hopper}/actions/execute [post]
func (h *Handler) ExecuteHopperAction(c *gin.Context) {
	from, addr, ok := h.callerAndAddress(c, "hopper")
	if !ok {
		return
	}
	var req types.HopperActionRequest
	if !bindJSON(c, "ExecuteHopperAction", &req) {
		return
	}
	result, err := h.govService.ExecuteHopperAction(c.Request.Context(), from, addr, &req)
	if err != nil {
		fail(c, "ExecuteHopperAction", err)
		return
	}
	respond(c, result)
}

// CreateCredential 创建成员凭证合约
// @Summary 创建成员凭证合约
// @Tags 凭证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body types.CreateCredentialRequest true "名称与符号"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Router /api/v1/credentials [post]
func (h *Handler) CreateCredential(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}
	var req types.CreateCredentialRequest
	if !bindJSON(c, "CreateCredential", &req) {
		return
	}
	result, err := h.govService.CreateCredential(c.Request.Context(), from, &req)
	if err != nil {
		fail(c, "CreateCredential", err)
		return
	}
	respond(c, result)
}

// MintCredential 铸造凭证
// @Summary 铸造凭证
// @Description 仅合约所有者
// @Tags 凭证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param nft path string true "凭证合约地址"
// @Param request body types.MintCredentialRequest true "接收人与编号"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Router /api/v1/credentials/{nft}/tokens [post]
func (h *Handler) MintCredential(c *gin.Context) {
	from, nft, ok := h.callerAndAddress(c, "nft")
	if !ok {
		return
	}
	var req types.MintCredentialRequest
	if !bindJSON(c, "MintCredential", &req) {
		return
	}
	result, err := h.govService.MintCredential(c.Request.Context(), from, nft, &req)
	if err != nil {
		fail(c, "MintCredential", err)
		return
	}
	respond(c, result)
}

// TransferCredential 转让凭证
// @Summary 转让凭证
// @Tags 凭证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param nft path string true "凭证合约地址"
// @Param token_id path int true "凭证编号"
// @Param request body types.TransferCredentialRequest true "接收人"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Router /api/v1/credentials/{nft}/tokens/{token_id}/transfer [post]
func (h *Handler) TransferCredential(c *gin.Context) {
	from, nft, ok := h.callerAndAddress(c, "nft")
	if !ok {
		return
	}
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	var req types.TransferCredentialRequest
	if !bindJSON(c, "TransferCredential", &req) {
		return
	}
	to, err := governance.ParseAddress(req.To)
	if err != nil {
		fail(c, "TransferCredential", err)
		return
	}
	result, err := h.govService.TransferCredential(c.Request.Context(), from, nft, to, tokenID)
	if err != nil {
		fail(c, "TransferCredential", err)
		return
	}
	respond(c, result)
}

// GetCredentialOwner 凭证持有人
// @Summary 凭证持有人
// @Description 本地凭证合约直接读取账本，其它地址经 RPC 查询链上 ownerOf
// @Tags 凭证
// @Produce json
// @Param nft path string true "凭证合约地址"
// @Param token_id path int true "凭证编号"
// @Success 200 {object} types.APIResponse{data=types.CredentialOwnerResponse}
// @Failure 404 {object} types.APIResponse
// @Router /api/v1/credentials/{nft}/tokens/{token_id}/owner [get]
func (h *Handler) GetCredentialOwner(c *gin.Context) {
	nft, ok := addressParam(c, "nft")
	if !ok {
		return
	}
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	resp, err := h.govService.CredentialOwner(c.Request.Context(), nft, tokenID)
	if err != nil {
		fail(c, "GetCredentialOwner", err)
		return
	}
	respond(c, resp)
}

// CreateFeeToken 部署起草费代币
// @Summary 部署 OGRE20 代币
// @Tags 代币
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body types.CreateFeeTokenRequest true "名称与符号"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Router /api/v1/fee-tokens [post]
func (h *Handler) CreateFeeToken(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}
	var req types.CreateFeeTokenRequest
	if !bindJSON(c, "CreateFeeToken", &req) {
		return
	}
	result, err := h.govService.CreateFeeToken(c.Request.Context(), from, &req)
	if err != nil {
		fail(c, "CreateFeeToken", err)
		return
	}
	respond(c, result)
}

// MintFeeToken 铸造代币
// @Summary 铸造代币
// @Description 仅代币所有者
// @Tags 代币
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token path string true "代币地址"
// @Param request body types.TokenAmountRequest true "账户与数量"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Router /api/v1/fee-tokens/{token}/mint [post]
func (h *Handler) MintFeeToken(c *gin.Context) {
	h.tokenAmount(c, "MintFeeToken", h.govService.MintFeeToken)
}

// ApproveFeeToken 授权代币
// @Summary 授权代币
// @Description 授权 DAO 在起草提案时扣取费用
// @Tags 代币
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token path string true "代币地址"
// @Param request body types.TokenAmountRequest true "被授权账户与额度"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Router /api/v1/fee-tokens/{token}/approve [post]
func (h *Handler) ApproveFeeToken(c *gin.Context) {
	h.tokenAmount(c, "ApproveFeeToken", h.govService.ApproveFeeToken)
}

type tokenAmountFunc func(ctx context.Context, caller, token common.Address, req *types.TokenAmountRequest) (*types.TxResult, error)

func (h *Handler) tokenAmount(c *gin.Context, op string, call tokenAmountFunc) {
	from, token, ok := h.callerAndAddress(c, "token")
	if !ok {
		return
	}
	var req types.TokenAmountRequest
	if !bindJSON(c, op, &req) {
		return
	}
	result, err := call(c.Request.Context(), from, token, &req)
	if err != nil {
		fail(c, op, err)
		return
	}
	respond(c, result)
}

// GetFeeTokenBalance 代币余额
// @Summary 代币余额
// @Tags 代币
// @Produce json
// @Param token path string true "代币地址"
// @Param account path string true "账户地址"
// @Success 200 {object} types.APIResponse{data=types.BalanceResponse}
// @Router /api/v1/fee-tokens/{token}/balances/{account} [get]
func (h *Handler) GetFeeTokenBalance(c *gin.Context) {
	token, ok := addressParam(c, "token")
	if !ok {
		return
	}
	account, ok := addressParam(c, "account")
	if !ok {
		return
	}
	balance, err := h.govService.FeeTokenBalance(c.Request.Context(), token, account)
	if err != nil {
		fail(c, "GetFeeTokenBalance", err)
		return
	}
	respond(c, types.BalanceResponse{
		Account: account.Hex(),
		Token:   token.Hex(),
		Balance: balance.String(),
	})
}
