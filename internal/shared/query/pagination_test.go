package query

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePagination_Defaults(t *testing.T) {
	p, err := ParsePagination(newContext("/locations"), 100)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, 100, p.Limit)
}

func TestParsePagination_DefaultCappedByMax(t *testing.T) {
	p, err := ParsePagination(newContext("/locations"), 50)
	require.NoError(t, err)
	assert.Equal(t, 50, p.Limit)
}

func TestParsePagination_Explicit(t *testing.T) {
	p, err := ParsePagination(newContext("/incidents?skip=20&limit=500"), 1000)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Skip)
	assert.Equal(t, 500, p.Limit)
}

func TestParsePagination_Rejects(t *testing.T) {
	for _, target := range []string{
		"/locations?skip=-1",
		"/locations?skip=abc",
		"/locations?limit=0",
		"/locations?limit=-5",
		"/locations?limit=101",
		"/locations?limit=abc",
	} {
		_, err := ParsePagination(newContext(target), 100)
		assert.Error(t, err, target)
	}
}
