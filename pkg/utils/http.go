package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var ErrEmptyParameter = errors.New("empty parameter")

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// ParseIDParam reads a numeric path parameter such as /:id.
func ParseIDParam(c *gin.Context, param string) (uint, error) {
	return parseUint(c.Param(param))
}

// ParseQueryUintParam reads an optional numeric query parameter.
// ErrEmptyParameter signals the parameter was absent rather than malformed.
func ParseQueryUintParam(c *gin.Context, param string) (uint, error) {
	s := c.Query(param)
	if s == "" {
		return 0, ErrEmptyParameter
	}
	return parseUint(s)
}
