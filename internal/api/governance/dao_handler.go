package governance

import (
	"ogre-backend/internal/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// DeployDAO 部署 DAO
// @Summary 部署 DAO
// @Description 通过 DAO 工厂部署新的 DAO，调用者获得 DAO_ADMIN 角色
// @Tags DAO
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body types.DeployDAORequest true "部署参数"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 400 {object} types.APIResponse
// @Router /api/v1/daos [post]
func (h *Handler) DeployDAO(c *gin.Context) {
	from, ok := caller(c)
	if !ok {
		return
	}
	var req types.DeployDAORequest
	if !bindJSON(c, "DeployDAO", &req) {
		return
	}
	result, err := h.govService.DeployDAO(c.Request.Context(), from, &req)
	if err != nil {
		fail(c, "DeployDAO", err)
		return
	}
	respond(c, result)
}

// GetDAO 获取 DAO 参数
// @Summary 获取 DAO
// @Tags DAO
// @Produce json
// @Param dao path string true "DAO 地址"
// @Success 200 {object} types.APIResponse{data=types.DAOInfo}
// @Failure 404 {object} types.APIResponse
// @Router /api/v1/daos/{dao} [get]
func (h *Handler) GetDAO(c *gin.Context) {
	addr, ok := addressParam(c, "dao")
	if !ok {
		return
	}
	info, err := h.govService.GetDAO(c.Request.Context(), addr)
	if err != nil {
		fail(c, "GetDAO", err)
		return
	}
	respond(c, info)
}

// UpdateDAO 修改 DAO 参数
// @Summary 修改 DAO 参数
// @Description 仅 DAO_ADMIN 可调用，所有字段在同一笔交易内修改
// @Tags DAO
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dao path string true "DAO 地址"
// @Param request body types.UpdateDAORequest true "修改参数"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 403 {object} types.APIResponse
// @Router /api/v1/daos/{dao} [patch]
func (h *Handler) UpdateDAO(c *gin.Context) {
	from, daoAddr, ok := h.callerAndAddress(c, "dao")
	if !ok {
		return
	}
	var req types.UpdateDAORequest
	if !bindJSON(c, "UpdateDAO", &req) {
		return
	}
	result, err := h.govService.UpdateDAO(c.Request.Context(), from, daoAddr, &req)
	if err != nil {
		fail(c, "UpdateDAO", err)
		return
	}
	respond(c, result)
}

// GrantRole 授予角色
// @Summary 授予角色
// @Tags DAO
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dao path string true "DAO 地址"
// @Param request body types.RoleRequest true "角色"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 403 {object} types.APIResponse
// @Router /api/v1/daos/{dao}/roles/grant [post]
func (h *Handler) GrantRole(c *gin.Context) {
	h.changeRole(c, "GrantRole", true)
}

// RevokeRole 撤销角色
// @Summary 撤销角色
// @Tags DAO
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dao path string true "DAO 地址"
// @Param request body types.RoleRequest true "角色"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 403 {object} types.APIResponse
// @Router /api/v1/daos/{dao}/roles/revoke [post]
func (h *Handler) RevokeRole(c *gin.Context) {
	h.changeRole(c, "RevokeRole", false)
}

func (h *Handler) changeRole(c *gin.Context, op string, grant bool) {
	from, daoAddr, ok := h.callerAndAddress(c, "dao")
	if !ok {
		return
	}
	var req types.RoleRequest
	if !bindJSON(c, op, &req) {
		return
	}
	change := h.govService.RevokeRole
	if grant {
		change = h.govService.GrantRole
	}
	result, err := change(c.Request.Context(), from, daoAddr, &req)
	if err != nil {
		fail(c, op, err)
		return
	}
	respond(c, result)
}

// HasRole 角色查询
// @Summary 角色查询
// @Tags DAO
// @Produce json
// @Param dao path string true "DAO 地址"
// @Param role path string true "DAO_ADMIN 或 DAO_INVITE"
// @Param account path string true "账户地址"
// @Success 200 {object} types.APIResponse{data=types.HasRoleResponse}
// @Router /api/v1/daos/{dao}/roles/{role}/{account} [get]
func (h *Handler) HasRole(c *gin.Context) {
	daoAddr, ok := addressParam(c, "dao")
	if !ok {
		return
	}
	account, ok := addressParam(c, "account")
	if !ok {
		return
	}
	role := c.Param("role")
	has, err := h.govService.HasRole(c.Request.Context(), daoAddr, role, account)
	if err != nil {
		fail(c, "HasRole", err)
		return
	}
	respond(c, types.HasRoleResponse{Role: role, Account: account.Hex(), HasRole: has})
}

// RegisterMember 注册成员
// @Summary 注册成员
// @Description 凭证持有人把凭证注册到 DAO，每个凭证只能注册一次
// @Tags DAO
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dao path string true "DAO 地址"
// @Param request body types.RegisterMemberRequest true "凭证"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 409 {object} types.APIResponse
// @Router /api/v1/daos/{dao}/members [post]
func (h *Handler) RegisterMember(c *gin.Context) {
	from, daoAddr, ok := h.callerAndAddress(c, "dao")
	if !ok {
		return
	}
	var req types.RegisterMemberRequest
	if !bindJSON(c, "RegisterMember", &req) {
		return
	}
	result, err := h.govService.RegisterMember(c.Request.Context(), from, daoAddr, req.TokenID)
	if err != nil {
		fail(c, "RegisterMember", err)
		return
	}
	respond(c, result)
}

// GetMemberStatus 成员状态
// @Summary 成员状态
// @Tags DAO
// @Produce json
// @Param dao path string true "DAO 地址"
// @Param token_id path int true "凭证 ID"
// @Success 200 {object} types.APIResponse{data=types.MemberStatusResponse}
// @Router /api/v1/daos/{dao}/members/{token_id} [get]
func (h *Handler) GetMemberStatus(c *gin.Context) {
	daoAddr, ok := addressParam(c, "dao")
	if !ok {
		return
	}
	tokenID, ok := tokenIDParam(c)
	if !ok {
		return
	}
	status, err := h.govService.MemberStatus(c.Request.Context(), daoAddr, tokenID)
	if err != nil {
		fail(c, "GetMemberStatus", err)
		return
	}
	respond(c, status)
}

// EvaluateProposal 评估提案
// @Summary 评估提案
// @Description 投票结束后按法定人数与支持率评估，通过时进入时间锁
// @Tags DAO
// @Produce json
// @Security BearerAuth
// @Param dao path string true "DAO 地址"
// @Param proposal path string true "提案地址"
// @Success 200 {object} types.APIResponse{data=types.EvaluateProposalResponse}
// @Failure 409 {object} types.APIResponse
// @Router /api/v1/daos/{dao}/proposals/{proposal}/evaluate [post]
func (h *Handler) EvaluateProposal(c *gin.Context) {
	from, daoAddr, propAddr, ok := h.daoProposalParams(c)
	if !ok {
		return
	}
	eval, result, err := h.govService.EvaluateProposal(c.Request.Context(), from, daoAddr, propAddr)
	if err != nil {
		fail(c, "EvaluateProposal", err)
		return
	}
	respond(c, types.EvaluateProposalResponse{
		TxResult:              *result,
		QuorumPassed:          eval.QuorumPassed,
		SupportPassed:         eval.SupportPassed,
		TotalVotes:            eval.TotalVotes,
		YesVotes:              eval.YesVotes,
		QuorumVotesThreshold:  eval.QuorumVotesThreshold,
		SupportVotesThreshold: eval.SupportVotesThreshold,
		Status:                eval.Status,
		ReadyAt:               eval.ReadyAt,
	})
}

// ExecuteProposal 执行提案
// @Summary 执行提案
// @Description 时间锁结束后按顺序执行提案动作，任一动作失败则整体回滚
// @Tags DAO
// @Produce json
// @Security BearerAuth
// @Param dao path string true "DAO 地址"
// @Param proposal path string true "提案地址"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 409 {object} types.APIResponse
// @Failure 422 {object} types.APIResponse
// @Router /api/v1/daos/{dao}/proposals/{proposal}/execute [post]
func (h *Handler) ExecuteProposal(c *gin.Context) {
	from, daoAddr, propAddr, ok := h.daoProposalParams(c)
	if !ok {
		return
	}
	result, err := h.govService.ExecuteProposal(c.Request.Context(), from, daoAddr, propAddr)
	if err != nil {
		fail(c, "ExecuteProposal", err)
		return
	}
	respond(c, result)
}

func (h *Handler) callerAndAddress(c *gin.Context, param string) (common.Address, common.Address, bool) {
	from, ok := caller(c)
	if !ok {
		return common.Address{}, common.Address{}, false
	}
	addr, ok := addressParam(c, param)
	return from, addr, ok
}

func (h *Handler) daoProposalParams(c *gin.Context) (from, daoAddr, propAddr common.Address, ok bool) {
	if from, daoAddr, ok = h.callerAndAddress(c, "dao"); !ok {
		return
	}
	propAddr, ok = addressParam(c, "proposal")
	return
}
