package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/config"
)

func TestSettingsGetNeedsNoAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestStore(t)
	h := NewSettingsHandler(s, config.Config{})

	// The login page fetches branding before any token exists.
	r := gin.New()
	r.GET("/settings", h.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "Halaqat Staff Management", payload["systemName"])
	assert.Equal(t, "#0d7377", payload["primaryColor"])
}
