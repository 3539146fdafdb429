package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAuthenticator_IssueAndResolve_RoundTrips(t *testing.T) {
	auth := NewAuthenticator(testSecret)
	userID := kernel.NewUUID()

	token, err := auth.IssueToken(userID, kernel.RoleDeliveryPartner)
	require.NoError(t, err)

	ctx, _ := testContext(t, http.MethodGet, "/api/delivery/profile", "")
	ctx.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	var captured Principal
	handler := auth.Middleware()(func(c echo.Context) error {
		principal, principalErr := CurrentPrincipal(c)
		require.NoError(t, principalErr)
		captured = principal
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(ctx))
	assert.True(t, userID.IsEqual(captured.UserID))
	assert.Equal(t, kernel.RoleDeliveryPartner, captured.Role)
}

func TestAuthMiddleware_MissingToken_Returns401(t *testing.T) {
	auth := NewAuthenticator(testSecret)

	ctx, rec := testContext(t, http.MethodGet, "/api/orders", "")

	handler := auth.Middleware()(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestAuthMiddleware_TokenSignedWithWrongSecret_Returns401(t *testing.T) {
	userID := kernel.NewUUID()
	token, err := NewAuthenticator("other-secret").IssueToken(userID, kernel.RoleCustomer)
	require.NoError(t, err)

	ctx, rec := testContext(t, http.MethodGet, "/api/orders", "")
	ctx.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	handler := NewAuthenticator(testSecret).Middleware()(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_WrongRole_Returns401(t *testing.T) {
	ctx, rec := testContext(t, http.MethodGet, "/api/admin/dashboard", "")
	ctx.Set(principalKey, Principal{UserID: kernel.NewUUID(), Role: kernel.RoleCustomer})

	handler := RequireRole(kernel.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_MatchingRole_RunsHandler(t *testing.T) {
	ctx, rec := testContext(t, http.MethodGet, "/api/admin/dashboard", "")
	ctx.Set(principalKey, Principal{UserID: kernel.NewUUID(), Role: kernel.RoleAdmin})

	handler := RequireRole(kernel.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRespondError_StatusMapping(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "not found maps to 404",
			err:      errs.NewObjectNotFoundError("order", kernel.NewUUID().String()),
			expected: http.StatusNotFound,
		},
		{
			name:     "already assigned maps to 409",
			err:      errs.NewObjectAlreadyAssignedError("order", kernel.NewUUID().String()),
			expected: http.StatusConflict,
		},
		{
			name:     "unauthorized maps to 401",
			err:      errs.NewUnauthorizedError("partner mismatch"),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "illegal transition maps to 422",
			err:      &order.InvalidTransitionError{From: order.StatusDelivered, To: order.StatusPreparing},
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "invalid value maps to 400",
			err:      errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("0 is less than 1")),
			expected: http.StatusBadRequest,
		},
		{
			name:     "required value maps to 400",
			err:      errs.NewValueIsRequiredError("items"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "out of range maps to 400",
			err:      errs.NewValueIsOutOfRangeError("limit", 500, 1, 100),
			expected: http.StatusBadRequest,
		},
		{
			name:     "unclassified maps to 500",
			err:      errors.New("connection reset"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, rec := testContext(t, http.MethodGet, "/", "")

			require.NoError(t, respondError(ctx, tc.err))
			assert.Equal(t, tc.expected, rec.Code)

			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			if tc.expected == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", env.Message)
			} else {
				assert.NotEmpty(t, env.Message)
			}
		})
	}
}

func TestServer_CreateOrder_MalformedRestaurantID_Returns400(t *testing.T) {
	server := &Server{}

	ctx, rec := testContext(t, http.MethodPost, "/api/orders",
		`{"restaurantId":"not-a-uuid","items":[],"paymentMethod":"upi"}`)
	ctx.Set(principalKey, Principal{UserID: kernel.NewUUID(), Role: kernel.RoleCustomer})

	require.NoError(t, server.CreateOrder(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AcceptOrder_MalformedOrderID_Returns400(t *testing.T) {
	server := &Server{}

	ctx, rec := testContext(t, http.MethodPost, "/api/delivery/accept-order/abc", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")
	ctx.Set(principalKey, Principal{UserID: kernel.NewUUID(), Role: kernel.RoleDeliveryPartner})

	require.NoError(t, server.AcceptOrder(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Health_ReturnsOK(t *testing.T) {
	server := &Server{}

	ctx, rec := testContext(t, http.MethodGet, "/health", "")

	require.NoError(t, server.Health(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}
