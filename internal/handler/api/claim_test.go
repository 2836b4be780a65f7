//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"grab-service/internal/domain/offer"
	"grab-service/internal/domain/user"
	"grab-service/internal/handler/api"
	resdto "grab-service/internal/handler/dto/response"
	"grab-service/internal/pkg/errs"
	"grab-service/internal/usecase/commands"
	"grab-service/internal/usecase/queries"
	"grab-service/tests/common/builder"
	"grab-service/tests/common/httptest"
	"grab-service/tests/common/testutil"
	commandsmock "grab-service/tests/mock/commands"
	queriesmock "grab-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testRoleHeader = "X-Test-Role"

type ClaimHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockClaims      *commandsmock.MockClaimCommands
	mockRedemptions *commandsmock.MockRedemptionCommands
	mockQueries     *queriesmock.MockClaimQueries
	userID          uuid.UUID
}

func (s *ClaimHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClaims = commandsmock.NewMockClaimCommands(s.mockCtrl)
	s.mockRedemptions = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockClaimQueries(s.mockCtrl)
	s.userID = uuid.New()
	handler := api.NewClaimHandler(s.mockClaims, s.mockRedemptions, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		role := user.RoleMember
		if r := c.GetHeader(testRoleHeader); r != "" {
			role = user.Role(r)
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", role)
		c.Next()
	}

	s.router.POST("/claims", authMiddleware, handler.Claim)
	s.router.POST("/claims/validate", authMiddleware, handler.Validate)
	s.router.GET("/claims", authMiddleware, handler.List)
	s.router.GET("/claims/:code", authMiddleware, handler.Get)
}

func (s *ClaimHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClaimHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClaimHandlerTestSuite))
}

// ================================================================================
// TestClaim
// ================================================================================

func (s *ClaimHandlerTestSuite) TestClaim() {
	url := "/claims"
	view := builder.NewClaimBuilder().BuildView()
	reqBody := map[string]any{"offerId": view.OfferID.String()}

	s.Run("success: returns 201 Created with the claim", func() {
		s.mockClaims.EXPECT().Claim(gomock.Any(), s.userID, view.OfferID, (*uuid.UUID)(nil)).
			Return(&commands.ClaimResult{Claim: view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("1016000001", body.Code)
		s.Equal("issued", body.Status)
		s.Equal("Free coffee", body.OfferTitle)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: idempotency key is passed through and replays are flagged", func() {
		key := uuid.New()
		s.mockClaims.EXPECT().Claim(gomock.Any(), s.userID, view.OfferID, &key).
			Return(&commands.ClaimResult{Claim: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 Bad Request on malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": "not-a-uuid"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid idempotency key")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: offerId (required)", mutate: testutil.Field("offerId", nil)},
			{name: "offerId is not a UUID", mutate: testutil.Field("offerId", "abc")},
			{name: "offerId is the nil UUID", mutate: testutil.Field("offerId", uuid.Nil.String())},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: rejections map to stable reasons", func() {
		cases := []struct {
			name      string
			err       error
			status    int
			reason    string
			subReason string
		}{
			{name: "unknown offer", err: commands.ErrOfferNotFound, status: http.StatusUnprocessableEntity, reason: api.ReasonNotClaimable, subReason: "not_found"},
			{name: "inactive offer", err: errs.Mark(offer.ErrInactive, commands.ErrNotClaimable), status: http.StatusUnprocessableEntity, reason: api.ReasonNotClaimable, subReason: "inactive"},
			{name: "informational offer", err: errs.Mark(offer.ErrInformational, commands.ErrNotClaimable), status: http.StatusUnprocessableEntity, reason: api.ReasonNotClaimable, subReason: "informational"},
			{name: "outside window", err: errs.Mark(offer.ErrOutsideWindow, commands.ErrNotClaimable), status: http.StatusUnprocessableEntity, reason: api.ReasonNotClaimable, subReason: "outside_window"},
			{name: "already claimed", err: commands.ErrAlreadyClaimed, status: http.StatusUnprocessableEntity, reason: api.ReasonAlreadyClaimed},
			{name: "sold out", err: commands.ErrQuotaExhausted, status: http.StatusUnprocessableEntity, reason: api.ReasonQuotaExhausted},
			{name: "in progress", err: commands.ErrIdempotencyInProgress, status: http.StatusConflict, reason: api.ReasonIdempotencyInProgress},
			{name: "key reused", err: commands.ErrIdempotencyMismatch, status: http.StatusConflict, reason: api.ReasonIdempotencyMismatch},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockClaims.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertReason(s.T(), rec, tc.status, tc.reason, tc.subReason)
			})
		}
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockClaims.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), commands.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestValidate
// ================================================================================

func (s *ClaimHandlerTestSuite) TestValidate() {
	url := "/claims/validate"
	validatedAt := time.Date(2025, 10, 16, 9, 10, 0, 0, time.UTC)
	view := builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) {
		b.ValidatedAt = &validatedAt
	}).BuildView()
	operator := map[string]string{testRoleHeader: string(user.RoleOperator)}

	s.Run("success: operator redeems a code", func() {
		s.mockRedemptions.EXPECT().Validate(gomock.Any(), "1016000001", s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "1016000001"}, "bearer-token", operator)

		var body resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("validated", body.Status)
		s.Require().NotNil(body.ValidatedAt)
		s.True(validatedAt.Equal(*body.ValidatedAt))
	})

	s.Run("success: admin may validate", func() {
		s.mockRedemptions.EXPECT().Validate(gomock.Any(), gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "1016000001"}, "bearer-token",
			map[string]string{testRoleHeader: string(user.RoleAdmin)})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden for members", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "1016000001"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 400 Bad Request on missing or oversized code", func() {
		for name, body := range map[string]map[string]any{
			"missing code":   {},
			"empty code":     {"code": ""},
			"oversized code": {"code": strings.Repeat("A", 65)},
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "bearer-token", operator)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: rejections map to stable reasons", func() {
		cases := []struct {
			name   string
			err    error
			reason string
		}{
			{name: "unknown code", err: commands.ErrInvalidCode, reason: api.ReasonInvalidCode},
			{name: "expired", err: commands.ErrExpired, reason: api.ReasonExpired},
			{name: "wrong venue", err: commands.ErrNotAuthorized, reason: api.ReasonNotAuthorized},
			{name: "redeem-time quota", err: commands.ErrQuotaExhausted, reason: api.ReasonQuotaExhausted},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockRedemptions.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
					map[string]any{"code": "1016000001"}, "bearer-token", operator)
				httptest.AssertReason(s.T(), rec, http.StatusUnprocessableEntity, tc.reason, "")
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ClaimHandlerTestSuite) TestList() {
	first := builder.NewClaimBuilder().BuildView()
	second := builder.NewClaimBuilder().With(func(b *builder.ClaimBuilder) { b.Code = "1016000002" }).BuildView()

	s.Run("success: returns items and next cursor", func() {
		next := &queries.Cursor{After: "v1:abc"}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, (*queries.Cursor)(nil), 2).
			Return([]*queries.ClaimView{second, first}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims?limit=2", nil, "bearer-token")

		var body resdto.ClaimListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 2)
		s.Equal("1016000002", body.Items[0].Code)
		s.Require().NotNil(body.NextCursor)
		s.Equal("v1:abc", *body.NextCursor)
	})

	s.Run("success: cursor is forwarded and last page has no next cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, &queries.Cursor{After: "v1:abc"}, 0).
			Return([]*queries.ClaimView{first}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims?after=v1:abc", nil, "bearer-token")

		var body resdto.ClaimListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Nil(body.NextCursor)
	})

	s.Run("success: empty list renders as an empty array", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*queries.ClaimView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"items":[]`)
	})

	s.Run("success: upper bound limit is forwarded", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID, (*queries.Cursor)(nil), 100).
			Return([]*queries.ClaimView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims?limit=100", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on out-of-range limit", func() {
		for _, q := range []string{"limit=0", "limit=-1", "limit=101", "limit=abc"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims?"+q, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
			})
		}
	})

	s.Run("error: 400 Bad Request on invalid cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ClaimHandlerTestSuite) TestGet() {
	view := builder.NewClaimBuilder().BuildView()

	s.Run("success: code is normalized before lookup", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "T7K2M9", s.userID, user.RoleMember).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims/t7k2m9", nil, "bearer-token")

		var body resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 500 when the view cannot be rendered", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims/1016000001", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to render claim")
	})

	s.Run("error: 404 for unknown and foreign claims alike", func() {
		for _, err := range []error{queries.ErrClaimNotFound, queries.ErrClaimAccess} {
			s.mockQueries.EXPECT().GetByCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims/1016000001", nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Claim not found")
		}
	})
}
