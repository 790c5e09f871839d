package governance

import (
	"errors"
	"net/http"
	"strconv"

	"ogre-backend/internal/middleware"
	"ogre-backend/internal/service/auth"
	"ogre-backend/internal/service/governance"
	"ogre-backend/internal/types"
	"ogre-backend/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// Handler 治理接口处理器
type Handler struct {
	govService  *governance.Service
	authService auth.Service
	faucet      bool
}

// NewHandler 创建治理处理器，faucet 为 true 时开放本地水龙头
func NewHandler(govService *governance.Service, authService auth.Service, faucet bool) *Handler {
	return &Handler{
		govService:  govService,
		authService: authService,
		faucet:      faucet,
	}
}

// RegisterRoutes 注册治理路由。查询公开，写操作需要认证，调用者为登录钱包。
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	authed := middleware.AuthMiddleware(h.authService)

	router.GET("/factories", h.GetFactories)
	router.GET("/accounts/:account/balance", h.GetBalance)
	router.GET("/execution-queue", h.ListAwaitingExecution)
	if h.faucet {
		router.POST("/faucet", authed, h.Fund)
	}

	daoGroup := router.Group("/daos")
	{
		daoGroup.POST("", authed, h.DeployDAO)
		daoGroup.GET("/:dao", h.GetDAO)
		daoGroup.PATCH("/:dao", authed, h.UpdateDAO)
		daoGroup.POST("/:dao/roles/grant", authed, h.GrantRole)
		daoGroup.POST("/:dao/roles/revoke", authed, h.RevokeRole)
		daoGroup.GET("/:dao/roles/:role/:account", h.HasRole)
		daoGroup.POST("/:dao/members", authed, h.RegisterMember)
		daoGroup.GET("/:dao/members/:token_id", h.GetMemberStatus)
		daoGroup.POST("/:dao/proposals", authed, h.DraftProposal)
		daoGroup.GET("/:dao/proposals", h.ListProposals)
		daoGroup.POST("/:dao/proposals/:proposal/evaluate", authed, h.EvaluateProposal)
		daoGroup.POST("/:dao/proposals/:proposal/execute", authed, h.ExecuteProposal)
	}

	proposalGroup := router.Group("/proposals")
	{
		proposalGroup.GET("/:proposal", h.GetProposal)
		proposalGroup.PATCH("/:proposal", authed, h.UpdateProposal)
		proposalGroup.POST("/:proposal/actions", authed, h.AddAction)
		proposalGroup.POST("/:proposal/voting-period", authed, h.SetVotingPeriod)
		proposalGroup.POST("/:proposal/votes", authed, h.CastVote)
		proposalGroup.POST("/:proposal/cancel", authed, h.CancelProposal)
	}

	hopperGroup := router.Group("/hoppers")
	{
		hopperGroup.POST("", authed, h.DeployHopper)
		hopperGroup.POST("/:hopper/actions", authed, h.LoadHopperAction)
		hopperGroup.POST("/:hopper/actions/execute", authed, h.ExecuteHopperAction)
	}

	credentialGroup := router.Group("/credentials")
	{
		credentialGroup.POST("", authed, h.CreateCredential)
		credentialGroup.POST("/:nft/tokens", authed, h.MintCredential)
		credentialGroup.POST("/:nft/tokens/:token_id/transfer", authed, h.TransferCredential)
		credentialGroup.GET("/:nft/tokens/:token_id/owner", h.GetCredentialOwner)
	}

	feeTokenGroup := router.Group("/fee-tokens")
	{
		feeTokenGroup.POST("", authed, h.CreateFeeToken)
		feeTokenGroup.POST("/:token/mint", authed, h.MintFeeToken)
		feeTokenGroup.POST("/:token/approve", authed, h.ApproveFeeToken)
		feeTokenGroup.GET("/:token/balances/:account", h.GetFeeTokenBalance)
	}

	eventGroup := router.Group("/events")
	{
		eventGroup.GET("", h.ListEvents)
		eventGroup.GET("/tx/:tx_hash", h.ListTxEvents)
	}
}

// caller 当前登录钱包地址
func caller(c *gin.Context) (common.Address, bool) {
	_, wallet, ok := middleware.GetUserFromContext(c)
	if !ok || !common.IsHexAddress(wallet) {
		c.JSON(http.StatusUnauthorized, types.APIResponse{
			Success: false,
			Error: &types.APIError{
				Code:    "UNAUTHORIZED",
				Message: "User not authenticated",
			},
		})
		return common.Address{}, false
	}
	return common.HexToAddress(wallet), true
}

// addressParam 解析路径中的地址参数
func addressParam(c *gin.Context, name string) (common.Address, bool) {
	addr, err := governance.ParseAddress(c.Param(name))
	if err != nil {
		badRequest(c, "INVALID_ADDRESS", "Invalid "+name+" address", err)
		return common.Address{}, false
	}
	return addr, true
}

func tokenIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("token_id"), 10, 64)
	if err != nil {
		badRequest(c, "INVALID_TOKEN_ID", "Invalid token id", err)
		return 0, false
	}
	return id, true
}

// bindJSON 绑定请求体，失败时写出 400
func bindJSON(c *gin.Context, op string, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, "INVALID_REQUEST", "Invalid request parameters", err)
		logger.Error(op+" Error: ", errors.New("invalid request parameters"), "error: ", err)
		return false
	}
	return true
}

func badRequest(c *gin.Context, code, message string, err error) {
	c.JSON(http.StatusBadRequest, types.APIResponse{
		Success: false,
		Error: &types.APIError{
			Code:    code,
			Message: message,
			Details: err.Error(),
		},
	})
}

func respond(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, types.APIResponse{
		Success: true,
		Data:    data,
	})
}

// fail 按错误类型写出响应
func fail(c *gin.Context, op string, err error) {
	statusCode, errorCode := classify(err)
	if statusCode >= http.StatusInternalServerError {
		logger.Error(op+" Error: ", err, "errorCode: ", errorCode)
	} else {
		logger.Warn(op+" rejected", "errorCode", errorCode, "error", err.Error())
	}
	c.JSON(statusCode, types.APIResponse{
		Success: false,
		Error: &types.APIError{
			Code:    errorCode,
			Message: err.Error(),
		},
	})
}
