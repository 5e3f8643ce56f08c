package ticket

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stubTicketer accepts only the token "good".
type stubTicketer struct {
	ticket dmn.Ticket
}

func (s *stubTicketer) Issue(dmn.Ticket, time.Duration) (string, error) {
	return "good", nil
}

func (s *stubTicketer) Parse(token string) (*dmn.Ticket, error) {
	if token != "good" {
		return nil, errors.New("bad ticket")
	}
	return &s.ticket, nil
}

func TestRequire(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubTicketer{ticket: dmn.Ticket{MazeID: uuid.New(), Width: 3, Height: 2, Seed: 5}}

	router := gin.New()
	router.GET("/", Require(stub), func(c *gin.Context) {
		got, ok := FromContext(c)
		assert.True(t, ok)
		assert.Equal(t, stub.ticket, got)
		c.Status(http.StatusNoContent)
	})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"no token", "Bearer", http.StatusUnauthorized},
		{"invalid token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusNoContent},
		{"lower case scheme", "bearer good", http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := FromContext(c)
	assert.False(t, ok)
}
