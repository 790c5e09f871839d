package governance

import (
	"errors"
	"net/http"

	"ogre-backend/internal/contracts/access"
	"ogre-backend/internal/contracts/credential"
	"ogre-backend/internal/contracts/dao"
	"ogre-backend/internal/contracts/feetoken"
	"ogre-backend/internal/contracts/hopper"
	"ogre-backend/internal/contracts/proposal"
	"ogre-backend/internal/ledger"
	"ogre-backend/internal/service/governance"
	"ogre-backend/pkg/blockchain"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// 按顺序匹配，包装错误在前
var errorMappings = []errorMapping{
	{hopper.ErrActionExecutionFailed, http.StatusUnprocessableEntity, "ACTION_EXECUTION_FAILED"},
	{hopper.ErrActionAlreadyLoaded, http.StatusConflict, "ACTION_ALREADY_LOADED"},
	{hopper.ErrActionNotLoaded, http.StatusNotFound, "ACTION_NOT_LOADED"},
	{hopper.ErrActionNotReady, http.StatusConflict, "ACTION_NOT_READY"},

	{governance.ErrInvalidAddress, http.StatusBadRequest, "INVALID_ADDRESS"},
	{governance.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
	{governance.ErrInvalidHexData, http.StatusBadRequest, "INVALID_HEX_DATA"},
	{governance.ErrInvalidChoice, http.StatusBadRequest, "INVALID_CHOICE"},
	{governance.ErrUnknownRole, http.StatusBadRequest, "UNKNOWN_ROLE"},
	{governance.ErrInvalidStatusFilter, http.StatusBadRequest, "INVALID_STATUS"},
	{governance.ErrContractNotFound, http.StatusNotFound, "CONTRACT_NOT_FOUND"},
	{governance.ErrRemoteDisabled, http.StatusServiceUnavailable, "REMOTE_DISABLED"},
	{governance.ErrHistoryDisabled, http.StatusServiceUnavailable, "HISTORY_DISABLED"},
	{blockchain.ErrTokenNotFound, http.StatusNotFound, "TOKEN_NOT_FOUND"},

	{dao.ErrAlreadyRegistered, http.StatusConflict, "ALREADY_REGISTERED"},
	{dao.ErrNotTokenOwner, http.StatusForbidden, "NOT_TOKEN_OWNER"},
	{proposal.ErrNotTokenOwner, http.StatusForbidden, "NOT_TOKEN_OWNER"},
	{dao.ErrNotMember, http.StatusForbidden, "NOT_MEMBER"},
	{proposal.ErrNotMember, http.StatusForbidden, "NOT_MEMBER"},
	{dao.ErrUnauthorized, http.StatusForbidden, "NOT_DAO_ADMIN"},
	{dao.ErrOnlyProposal, http.StatusForbidden, "ONLY_PROPOSAL"},
	{hopper.ErrOnlyDelayedAction, http.StatusForbidden, "ONLY_DELAYED_ACTION"},
	{access.ErrMissingRole, http.StatusForbidden, "MISSING_ROLE"},
	{dao.ErrNotProposal, http.StatusNotFound, "NOT_PROPOSAL"},
	{dao.ErrProposalNotPassed, http.StatusConflict, "PROPOSAL_NOT_PASSED"},
	{dao.ErrInvalidThreshold, http.StatusBadRequest, "INVALID_THRESHOLD"},
	{dao.ErrInvalidVotePeriod, http.StatusBadRequest, "INVALID_VOTING_PERIOD"},
	{dao.ErrFeeTokenRequired, http.StatusBadRequest, "FEE_TOKEN_REQUIRED"},
	{dao.ErrInvalidFeeToken, http.StatusBadRequest, "INVALID_FEE_TOKEN"},
	{dao.ErrInvalidCredential, http.StatusBadRequest, "INVALID_CREDENTIAL"},

	{proposal.ErrNotOwner, http.StatusForbidden, "NOT_PROPOSAL_OWNER"},
	{proposal.ErrProposalLocked, http.StatusConflict, "PROPOSAL_LOCKED"},
	{proposal.ErrInvalidStatus, http.StatusConflict, "INVALID_PROPOSAL_STATUS"},
	{proposal.ErrAlreadyVoted, http.StatusConflict, "ALREADY_VOTED"},
	{proposal.ErrStartNotInFuture, http.StatusBadRequest, "INVALID_VOTING_PERIOD"},
	{proposal.ErrEndBeforeStart, http.StatusBadRequest, "INVALID_VOTING_PERIOD"},
	{proposal.ErrVotePeriodTooShort, http.StatusBadRequest, "INVALID_VOTING_PERIOD"},
	{proposal.ErrVotingNotStarted, http.StatusConflict, "VOTING_NOT_OPEN"},
	{proposal.ErrVotingClosed, http.StatusConflict, "VOTING_NOT_OPEN"},
	{proposal.ErrVotingNotClosed, http.StatusConflict, "VOTING_NOT_CLOSED"},
	{proposal.ErrVotingPeriodUnset, http.StatusConflict, "VOTING_PERIOD_UNSET"},

	{credential.ErrTokenExists, http.StatusConflict, "TOKEN_EXISTS"},
	{credential.ErrNonexistentToken, http.StatusNotFound, "TOKEN_NOT_FOUND"},
	{credential.ErrNotOwnerNorApproved, http.StatusForbidden, "NOT_OWNER_NOR_APPROVED"},
	{credential.ErrNotContractOwner, http.StatusForbidden, "NOT_CONTRACT_OWNER"},
	{credential.ErrNonReceiver, http.StatusBadRequest, "NON_RECEIVER"},
	{feetoken.ErrNotContractOwner, http.StatusForbidden, "NOT_CONTRACT_OWNER"},
	{feetoken.ErrInsufficientBalance, http.StatusConflict, "INSUFFICIENT_BALANCE"},
	{feetoken.ErrInsufficientAllowance, http.StatusConflict, "INSUFFICIENT_ALLOWANCE"},
	{ledger.ErrInsufficientBalance, http.StatusConflict, "INSUFFICIENT_BALANCE"},
	{ledger.ErrContextCanceled, http.StatusServiceUnavailable, "REQUEST_CANCELED"},
}

// classify 领域错误映射为 HTTP 状态与稳定错误码
func classify(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
