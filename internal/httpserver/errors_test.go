package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// Dropping the table makes the repository fail with something other than a
// missing record; the caller must see nothing but the generic message.
func TestUnexpectedFailureIsOpaque(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.DB.Exec("DROP TABLE products").Error)

	rec := env.doJSON(http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())

	rec = env.doJSON(http.MethodGet, "/api/products/1", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/health/live", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
