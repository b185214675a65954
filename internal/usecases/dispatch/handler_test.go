package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, raw RawEvent, debug bool) (Response, error) {
	args := m.Called(ctx, raw, debug)
	return args.Get(0).(Response), args.Error(1)
}

func setupTestRouter() (*gin.Engine, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "internal server error",
		})
	}))
	return r, w
}

func TestHandlerSuccess(t *testing.T) {
	mockUC := new(MockUseCase)
	mockUC.On("Execute", mock.Anything, mock.AnythingOfType("dispatch.RawEvent"), false).
		Return(Response{
			Success:    true,
			Message:    "Notification processed for 2 recipient(s)",
			Recipients: []string{"sales@estatedesk.in", "admin@estatedesk.in"},
		}, nil).Once()

	router, w := setupTestRouter()
	router.POST("/api/notifications/dispatch", NewHandler(mockUC).Handle)

	body := []byte(`{"type": "lead_created", "lead_id": "lead-1"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/notifications/dispatch", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Recipients, 2)
	mockUC.AssertExpectations(t)
}

func TestHandlerMalformedJSONReturns500Envelope(t *testing.T) {
	mockUC := new(MockUseCase)

	router, w := setupTestRouter()
	router.POST("/api/notifications/dispatch", NewHandler(mockUC).Handle)

	req, _ := http.NewRequest(http.MethodPost, "/api/notifications/dispatch", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), `"error"`)
	mockUC.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlerDebugQueryFlag(t *testing.T) {
	mockUC := new(MockUseCase)
	mockUC.On("Execute", mock.Anything, mock.AnythingOfType("dispatch.RawEvent"), true).
		Return(Response{Success: true, Recipients: []string{}}, nil).Once()

	router, w := setupTestRouter()
	router.POST("/api/notifications/dispatch", NewHandler(mockUC).Handle)

	req, _ := http.NewRequest(http.MethodPost, "/api/notifications/dispatch?debug=1", bytes.NewBufferString(`{"type":"lead_created"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUC.AssertExpectations(t)
}

func TestHandlerPanicRecoveredAs500Envelope(t *testing.T) {
	mockUC := new(MockUseCase)
	mockUC.On("Execute", mock.Anything, mock.Anything, false).
		Run(func(args mock.Arguments) { panic("boom") }).
		Return(Response{}, nil).Once()

	router, w := setupTestRouter()
	router.POST("/api/notifications/dispatch", NewHandler(mockUC).Handle)

	req, _ := http.NewRequest(http.MethodPost, "/api/notifications/dispatch", bytes.NewBufferString(`{"type":"lead_created"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "internal server error")
}
