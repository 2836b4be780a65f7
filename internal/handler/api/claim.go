package api

import (
	"net/http"
	"strings"

	"grab-service/internal/domain/offer"
	reqdto "grab-service/internal/handler/dto/request"
	resdto "grab-service/internal/handler/dto/response"
	"grab-service/internal/handler/httperr"
	"grab-service/internal/handler/middleware"
	"grab-service/internal/pkg/errs"
	"grab-service/internal/usecase/commands"
	"grab-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

// Stable rejection reasons returned in detail.reason.
const (
	ReasonAlreadyClaimed        = "already_claimed"
	ReasonQuotaExhausted        = "quota_exhausted"
	ReasonNotClaimable          = "not_claimable"
	ReasonInvalidCode           = "invalid_code"
	ReasonExpired               = "expired"
	ReasonNotAuthorized         = "not_authorized"
	ReasonIdempotencyInProgress = "idempotency_in_progress"
	ReasonIdempotencyMismatch   = "idempotency_mismatch"
)

type ClaimHandler struct {
	claims      commands.ClaimCommands
	redemptions commands.RedemptionCommands
	q           queries.ClaimQueries
}

func NewClaimHandler(claims commands.ClaimCommands, redemptions commands.RedemptionCommands, q queries.ClaimQueries) *ClaimHandler {
	return &ClaimHandler{claims: claims, redemptions: redemptions, q: q}
}

// @Summary Claim an offer
// @Description Take one unit of an offer. Repeating a request with the same Idempotency-Key returns the first result.
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.ClaimRequest true "Claim request"
// @Success 201 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /claims [post]
func (h *ClaimHandler) Claim(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var key *uuid.UUID
	if raw := c.GetHeader(headerIdempotencyKey); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
			return
		}
		key = &parsed
	}

	var req reqdto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.claims.Claim(c.Request.Context(), userID, req.OfferID, key)
	if err != nil {
		abortWithCommandError(c, err)
		return
	}

	res, err := resdto.FromClaimView(result.Claim)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render claim", nil)
		return
	}
	if result.IsReplayed {
		c.Header(headerReplayed, "true")
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Validate a claim
// @Description Redeem the outstanding claim holding the code. Requires the operator or admin role.
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateClaimRequest true "Validation request"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /claims/validate [post]
func (h *ClaimHandler) Validate(c *gin.Context) {
	validatorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok || !role.CanValidate() {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
		return
	}

	var req reqdto.ValidateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.redemptions.Validate(c.Request.Context(), req.Code, validatorID)
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	renderClaim(c, view)
}

// @Summary List my claims
// @Description Claims of the caller, newest first
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (1-100)"
// @Param after query string false "Cursor from next_cursor"
// @Success 200 {object} resdto.ClaimListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /claims [get]
func (h *ClaimHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var query reqdto.ListClaimsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}

	limit := 0
	if query.Limit != nil {
		limit = *query.Limit
	}

	views, next, err := h.q.ListMine(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list claims", nil)
		return
	}
	res, err := resdto.FromClaimViews(views, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render claims", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get my claim
// @Description A claim of the caller by its code
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param code path string true "Claim code"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /claims/{code} [get]
func (h *ClaimHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	view, err := h.q.GetByCode(c.Request.Context(), code, userID, role)
	if err != nil {
		// another user's claim is reported as missing
		if errs.Is(err, queries.ErrClaimNotFound) || errs.Is(err, queries.ErrClaimAccess) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Claim not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load claim", nil)
		return
	}
	renderClaim(c, view)
}

func renderClaim(c *gin.Context, view *queries.ClaimView) {
	res, err := resdto.FromClaimView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render claim", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// abortWithCommandError maps every command sentinel to one status and reason.
func abortWithCommandError(c *gin.Context, err error) {
	reject := func(status int, msg string, reason httperr.Reason) {
		httperr.AbortWithError(c, status, err, msg, reason)
	}

	switch {
	case errs.Is(err, commands.ErrOfferNotFound):
		reject(http.StatusUnprocessableEntity, "Offer cannot be claimed", httperr.Reason{Reason: ReasonNotClaimable, SubReason: "not_found"})
	case errs.Is(err, commands.ErrNotClaimable):
		reject(http.StatusUnprocessableEntity, "Offer cannot be claimed", httperr.Reason{Reason: ReasonNotClaimable, SubReason: notClaimableSubReason(err)})
	case errs.Is(err, commands.ErrAlreadyClaimed):
		reject(http.StatusUnprocessableEntity, "Offer already claimed", httperr.Reason{Reason: ReasonAlreadyClaimed})
	case errs.Is(err, commands.ErrQuotaExhausted):
		reject(http.StatusUnprocessableEntity, "Offer is sold out", httperr.Reason{Reason: ReasonQuotaExhausted})
	case errs.Is(err, commands.ErrInvalidCode):
		reject(http.StatusUnprocessableEntity, "Invalid code", httperr.Reason{Reason: ReasonInvalidCode})
	case errs.Is(err, commands.ErrExpired):
		reject(http.StatusUnprocessableEntity, "Claim has expired", httperr.Reason{Reason: ReasonExpired})
	case errs.Is(err, commands.ErrNotAuthorized):
		reject(http.StatusUnprocessableEntity, "Not authorized to validate this claim", httperr.Reason{Reason: ReasonNotAuthorized})
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		reject(http.StatusConflict, "Request is currently being processed", httperr.Reason{Reason: ReasonIdempotencyInProgress})
	case errs.Is(err, commands.ErrIdempotencyMismatch):
		reject(http.StatusConflict, "Idempotency key was used with a different request", httperr.Reason{Reason: ReasonIdempotencyMismatch})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func notClaimableSubReason(err error) string {
	switch {
	case errs.Is(err, offer.ErrInactive):
		return "inactive"
	case errs.Is(err, offer.ErrInformational):
		return "informational"
	case errs.Is(err, offer.ErrOutsideWindow):
		return "outside_window"
	default:
		return ""
	}
}
