package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(key string) *gin.Engine {
	r := gin.New()
	r.Use(APIKey(key))
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		query  string
		want   int
	}{
		{name: "gate disabled", key: "", want: http.StatusOK},
		{name: "missing key", key: "s3cret", want: http.StatusUnauthorized},
		{name: "wrong header", key: "s3cret", header: "nope", want: http.StatusUnauthorized},
		{name: "header", key: "s3cret", header: "s3cret", want: http.StatusOK},
		{name: "query", key: "s3cret", query: "s3cret", want: http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target := "/x"
			if tc.query != "" {
				target += "?api_key=" + tc.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tc.header != "" {
				req.Header.Set("X-API-Key", tc.header)
			}
			w := httptest.NewRecorder()
			newRouter(tc.key).ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
