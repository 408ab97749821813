package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetix/session-booking/internal/utils"
)

func callWithRole(t *testing.T, mw echo.MiddlewareFunc, role interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	return rec
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole("OWNER")

	t.Run("matching role passes", func(t *testing.T) {
		rec := callWithRole(t, mw, "OWNER")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		rec := callWithRole(t, mw, "CUSTOMER")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		rec := callWithRole(t, mw, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("non-string role is forbidden", func(t *testing.T) {
		rec := callWithRole(t, mw, 42)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("any of several roles passes", func(t *testing.T) {
		both := RequireRole("OWNER", "CUSTOMER")
		assert.Equal(t, http.StatusOK, callWithRole(t, both, "CUSTOMER").Code)
		assert.Equal(t, http.StatusOK, callWithRole(t, both, "OWNER").Code)
	})
}

func TestJWTAuth(t *testing.T) {
	const secret = "test-secret"
	e := echo.New()
	next := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	}
	mw := JWTAuth(secret)

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, mw(next)(c))
		return rec
	}

	t.Run("valid token passes and exposes claims", func(t *testing.T) {
		tok, err := utils.NewAccessToken(secret, 7, "OWNER", 15)
		require.NoError(t, err)
		rec := do("Bearer " + tok.Token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"OWNER"`)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("").Code)
	})

	t.Run("wrong secret is unauthorized", func(t *testing.T) {
		tok, err := utils.NewAccessToken("other-secret", 7, "OWNER", 15)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+tok.Token).Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("Bearer not.a.jwt").Code)
	})
}
