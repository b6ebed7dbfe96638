package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.html")

	h := NewPageHandler("pk_test_12345")
	r.GET("/", h.Home)
	r.GET("/checkout", h.Checkout)
	r.GET("/success", h.Success)
	return r
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomeAndSuccessAlways200(t *testing.T) {
	r := newPageRouter(t)

	for _, path := range []string{"/", "/?foo=bar", "/success", "/success?item=99"} {
		w := get(t, r, path)
		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}

func TestCheckoutKnownItem(t *testing.T) {
	r := newPageRouter(t)

	w := get(t, r, "/checkout?item=2")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "The Making of Prince of Persia: Journals 1985-1993")
	assert.Contains(t, body, "2500")
	assert.Contains(t, body, "pk_test_12345")
	assert.NotContains(t, body, "No item selected")
}

func TestCheckoutUnknownItem(t *testing.T) {
	r := newPageRouter(t)

	for _, path := range []string{"/checkout", "/checkout?item=9", "/checkout?item="} {
		w := get(t, r, path)
		require.Equal(t, http.StatusOK, w.Code, "path %s", path)

		body := w.Body.String()
		assert.Contains(t, body, "No item selected", "path %s", path)
		assert.NotContains(t, body, "payment-form", "path %s", path)
	}
}
