package ginutil

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrInvalidID is returned for a path id that is not a positive integer
var ErrInvalidID = errors.New("invalid id")

// QueryInt extracts an integer from query parameters with default value
func QueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// ParamID extracts a positive int64 id from path parameters
func ParamID(c *gin.Context, key string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
