package middleware

import (
	"Trendscope/internal/api/dto"
	"Trendscope/internal/pkg/consts"
	"Trendscope/internal/pkg/logger"
	"Trendscope/internal/pkg/response"
	"Trendscope/internal/pkg/security"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		response.Success(c, gin.H{
			"userId":  c.GetUint64(CtxUserID),
			"traceId": c.GetString(logger.TraceIDKey),
		})
	})
	r.GET("/x", handlers...)
	return r
}

func serve(t *testing.T, r *gin.Engine, header map[string]string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestAuthAndRoles(t *testing.T) {
	r := newEngine(AuthMiddleware(testSecret), CheckRoles(consts.RoleAdmin))

	_, resp := serve(t, r, nil)
	assert.Equal(t, response.Unauthorized, resp.Code)

	_, resp = serve(t, r, map[string]string{"Authorization": "Bearer not-a-jwt"})
	assert.Equal(t, response.Unauthorized, resp.Code)

	viewer, err := security.GenerateToken(testSecret, 2, []string{"VIEWER"}, time.Now())
	require.NoError(t, err)
	_, resp = serve(t, r, map[string]string{"Authorization": "Bearer " + viewer})
	assert.Equal(t, response.Forbidden, resp.Code)

	admin, err := security.GenerateToken(testSecret, 7, []string{consts.RoleAdmin}, time.Now())
	require.NoError(t, err)
	_, resp = serve(t, r, map[string]string{"Authorization": "Bearer " + admin})
	assert.Equal(t, response.Ok, resp.Code)
	assert.Equal(t, float64(7), resp.Data.(map[string]interface{})["userId"])

	other, err := security.GenerateToken("another-secret", 7, []string{consts.RoleAdmin}, time.Now())
	require.NoError(t, err)
	_, resp = serve(t, r, map[string]string{"Authorization": "Bearer " + other})
	assert.Equal(t, response.Unauthorized, resp.Code)
}

func TestCronSecret(t *testing.T) {
	hash, err := security.HashSecret("s3cret")
	require.NoError(t, err)
	r := newEngine(CronSecretMiddleware(hash))

	_, resp := serve(t, r, map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, response.Ok, resp.Code)

	_, resp = serve(t, r, map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, response.Unauthorized, resp.Code)

	_, resp = serve(t, r, map[string]string{"Authorization": "s3cret"})
	assert.Equal(t, response.Unauthorized, resp.Code)

	_, resp = serve(t, newEngine(CronSecretMiddleware("")), map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, response.Unauthorized, resp.Code)
}

func TestTrace(t *testing.T) {
	r := newEngine(TraceMiddleware())

	w, resp := serve(t, r, map[string]string{"X-Trace-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get("X-Trace-ID"))
	assert.Equal(t, "abc-123", resp.Data.(map[string]interface{})["traceId"])

	w, _ = serve(t, r, nil)
	assert.Len(t, w.Header().Get("X-Trace-ID"), 36)
}

func TestCORS(t *testing.T) {
	r := newEngine(CORSMiddleware([]string{"https://trend.example"}))

	w, _ := serve(t, r, map[string]string{"Origin": "https://trend.example"})
	assert.Equal(t, "https://trend.example", w.Header().Get("Access-Control-Allow-Origin"))

	w, _ = serve(t, r, map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
