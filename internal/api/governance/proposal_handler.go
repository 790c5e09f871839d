package governance

import (
	"errors"

	"ogre-backend/internal/types"
	"ogre-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DraftProposal 起草提案
// @Summary 起草提案
// @Description 持有已注册凭证的成员起草提案，DAO 设置了起草费时从调用者扣取
// @Tags 提案
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dao path string true "DAO 地址"
// @Param request body types.DraftProposalRequest true "提案标题"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 403 {object} types.APIResponse
// @Router /api/v1/daos/{dao}/proposals [post]
func (h *Handler) DraftProposal(c *gin.Context) {
	from, daoAddr, ok := h.callerAndAddress(c, "dao")
	if !ok {
		return
	}
	var req types.DraftProposalRequest
	if !bindJSON(c, "DraftProposal", &req) {
		return
	}
	result, err := h.govService.DraftProposal(c.Request.Context(), from, daoAddr, req.Title)
	if err != nil {
		fail(c, "DraftProposal", err)
		return
	}
	respond(c, result)
}

// ListProposals 提案列表
// @Summary 提案列表
// @Description 查询已索引的提案投影，可按状态过滤
// @Tags 提案
// @Produce json
// @Param dao path string true "DAO 地址"
// @Param status query string false "Proposed/Cancelled/Active/Passed/Executed/Failed"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} types.APIResponse{data=types.GetProposalListResponse}
// @Router /api/v1/daos/{dao}/proposals [get]
func (h *Handler) ListProposals(c *gin.Context) {
	daoAddr, ok := addressParam(c, "dao")
	if !ok {
		return
	}
	var req types.GetProposalListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", "Invalid query parameters", err)
		logger.Error("ListProposals Error: ", errors.New("invalid query parameters"), "error: ", err)
		return
	}
	resp, err := h.govService.ListProposals(c.Request.Context(), daoAddr, &req)
	if err != nil {
		fail(c, "ListProposals", err)
		return
	}
	respond(c, resp)
}

// ListAwaitingExecution 待执行提案
// @Summary 待执行提案
// @Description 已通过、等待时间锁结束或执行的提案，按就绪时间排序
// @Tags 提案
// @Produce json
// @Param limit query int false "数量上限"
// @Success 200 {object} types.APIResponse{data=[]types.ProposalRecord}
// @Router /api/v1/execution-queue [get]
func (h *Handler) ListAwaitingExecution(c *gin.Context) {
	limit := 100
	var query struct {
		Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "INVALID_REQUEST", "Invalid query parameters", err)
		return
	}
	if query.Limit > 0 {
		limit = query.Limit
	}
	records, err := h.govService.ListAwaitingExecution(c.Request.Context(), limit)
	if err != nil {
		fail(c, "ListAwaitingExecution", err)
		return
	}
	respond(c, records)
}

// GetProposal 提案详情
// @Summary 提案详情
// @Description 从账本读取提案实时状态与动作列表
// @Tags 提案
// @Produce json
// @Param proposal path string true "提案地址"
// @Success 200 {object} types.APIResponse{data=types.ProposalInfo}
// @Failure 404 {object} types.APIResponse
// @Router /api/v1/proposals/{proposal} [get]
func (h *Handler) GetProposal(c *gin.Context) {
	addr, ok := addressParam(c, "proposal")
	if !ok {
		return
	}
	info, err := h.govService.GetProposal(c.Request.Context(), addr)
	if err != nil {
		fail(c, "GetProposal", err)
		return
	}
	respond(c, info)
}

// UpdateProposal 修改提案
// @Summary 修改提案标题或可重投配置
// @Description 仅提案人在投票开始前可修改
// @Tags 提案
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param proposal path string true "提案地址"
// @Param request body types.UpdateProposalRequest true "修改内容"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 403 {object} types.APIResponse
// @Failure 409 {object} types.APIResponse
// @Router /api/v1/proposals/{proposal} [patch]
func (h *Handler) UpdateProposal(c *gin.Context) {
	from, addr, ok := h.callerAndAddress(c, "proposal")
	if !ok {
		return
	}
	var req types.UpdateProposalRequest
	if !bindJSON(c, "UpdateProposal", &req) {
		return
	}
	result, err := h.govService.UpdateProposal(c.Request.Context(), from, addr, &req)
	if err != nil {
		fail(c, "UpdateProposal", err)
		return
	}
	respond(c, result)
}

// AddAction 添加提案动作
// @Summary 添加提案动作
// @Description 追加通过后由 DAO 执行的调用，投票开始后不可修改
// @Tags 提案
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param proposal path string true "提案地址"
// @Param request body types.ActionInfo true "动作"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 400 {object} types.APIResponse
// @Router /api/v1/proposals/{proposal}/actions [post]
func (h *Handler) AddAction(c *gin.Context) {
	from, addr, ok := h.callerAndAddress(c, "proposal")
	if !ok {
		return
	}
	var req types.ActionInfo
	if !bindJSON(c, "AddAction", &req) {
		return
	}
	result, err := h.govService.AddAction(c.Request.Context(), from, addr, &req)
	if err != nil {
		fail(c, "AddAction", err)
		return
	}
	respond(c, result)
}

// SetVotingPeriod 设置投票窗口
// @Summary 设置投票窗口
// @Description 开始时间必须晚于当前时间，窗口不短于 DAO 最短投票期
// @Tags 提案
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param proposal path string true "提案地址"
// @Param request body types.SetVotingPeriodRequest true "投票窗口（unix 秒）"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 400 {object} types.APIResponse
// @Router /api/v1/proposals/{proposal}/voting-period [post]
func (h *Handler) SetVotingPeriod(c *gin.Context) {
	from, addr, ok := h.callerAndAddress(c, "proposal")
	if !ok {
		return
	}
	var req types.SetVotingPeriodRequest
	if !bindJSON(c, "SetVotingPeriod", &req) {
		return
	}
	result, err := h.govService.SetVotingPeriod(c.Request.Context(), from, addr, req.StartTime, req.EndTime)
	if err != nil {
		fail(c, "SetVotingPeriod", err)
		return
	}
	respond(c, result)
}

// CastVote 投票
// @Summary 投票
// @Description 以持有的已注册凭证投票，choice 为 no/yes/abstain
// @Tags 提案
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param proposal path string true "提案地址"
// @Param request body types.CastVoteRequest true "投票"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 409 {object} types.APIResponse
// @Router /api/v1/proposals/{proposal}/votes [post]
func (h *Handler) CastVote(c *gin.Context) {
	from, addr, ok := h.callerAndAddress(c, "proposal")
	if !ok {
		return
	}
	var req types.CastVoteRequest
	if !bindJSON(c, "CastVote", &req) {
		return
	}
	result, err := h.govService.CastVote(c.Request.Context(), from, addr, req.TokenID, req.Choice)
	if err != nil {
		fail(c, "CastVote", err)
		return
	}
	respond(c, result)
}

// CancelProposal 取消提案
// @Summary 取消提案
// @Tags 提案
// @Produce json
// @Security BearerAuth
// @Param proposal path string true "提案地址"
// @Success 200 {object} types.APIResponse{data=types.TxResult}
// @Failure 403 {object} types.APIResponse
// @Router /api/v1/proposals/{proposal}/cancel [post]
func (h *Handler) CancelProposal(c *gin.Context) {
	from, addr, ok := h.callerAndAddress(c, "proposal")
	if !ok {
		return
	}
	result, err := h.govService.CancelProposal(c.Request.Context(), from, addr)
	if err != nil {
		fail(c, "CancelProposal", err)
		return
	}
	respond(c, result)
}

// ListEvents 事件列表
// @Summary 已索引事件
// @Tags 事件
// @Produce json
// @Param contract query string false "合约地址"
// @Param event_name query string false "事件名"
// @Param limit query int false "数量上限"
// @Success 200 {object} types.APIResponse{data=[]types.GovernanceEvent}
// @Router /api/v1/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	var req types.GetEventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", "Invalid query parameters", err)
		return
	}
	events, err := h.govService.ListEvents(c.Request.Context(), &req)
	if err != nil {
		fail(c, "ListEvents", err)
		return
	}
	respond(c, events)
}

// ListTxEvents 交易事件
// @Summary 一笔交易的事件
// @Tags 事件
// @Produce json
// @Param tx_hash path string true "交易哈希"
// @Success 200 {object} types.APIResponse{data=[]types.GovernanceEvent}
// @Router /api/v1/events/tx/{tx_hash} [get]
func (h *Handler) ListTxEvents(c *gin.Context) {
	events, err := h.govService.ListTxEvents(c.Request.Context(), c.Param("tx_hash"))
	if err != nil {
		fail(c, "ListTxEvents", err)
		return
	}
	respond(c, events)
}
