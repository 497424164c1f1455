package ginutil

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(target string, params gin.Params) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	c.Params = params
	return c
}

func TestQueryInt(t *testing.T) {
	c := testContext("/?page=3&per_page=abc", nil)

	assert.Equal(t, 3, QueryInt(c, "page", 1))
	assert.Equal(t, 10, QueryInt(c, "per_page", 10))
	assert.Equal(t, 7, QueryInt(c, "missing", 7))
}

func TestParamID(t *testing.T) {
	id, err := ParamID(testContext("/", gin.Params{{Key: "id", Value: "42"}}), "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, v := range []string{"0", "-1", "abc", ""} {
		_, err := ParamID(testContext("/", gin.Params{{Key: "id", Value: v}}), "id")
		assert.ErrorIs(t, err, ErrInvalidID, v)
	}
}
