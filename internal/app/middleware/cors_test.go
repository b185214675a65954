package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performCORS(method, origin string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	r := gin.New()
	r.Use(CORS())
	r.POST("/api/notifications/dispatch", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	req, _ := http.NewRequest(method, "/api/notifications/dispatch", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAllowedOriginEchoed(t *testing.T) {
	tests := []string{
		"https://estatedesk.in",
		"https://www.estatedesk.in",
		"http://localhost:5173",
		"http://localhost:3000",
	}
	for _, origin := range tests {
		t.Run(origin, func(t *testing.T) {
			w := performCORS(http.MethodPost, origin)
			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestCORSUnlistedOriginGetsDefault(t *testing.T) {
	w := performCORS(http.MethodPost, "https://evil.example.com")

	assert.Equal(t, "https://estatedesk.in", w.Header().Get("Access-Control-Allow-Origin"))
	// The request itself is still served; the browser enforces the mismatch.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSNoOriginHeader(t *testing.T) {
	w := performCORS(http.MethodPost, "")

	assert.Equal(t, "https://estatedesk.in", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	w := performCORS(http.MethodOptions, "http://localhost:5173")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
