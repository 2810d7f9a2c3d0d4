package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryBool returns nil when the parameter is absent or unparsable, so a
// malformed flag imposes no constraint instead of failing the request.
func queryBool(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func queryFloat(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func queryInt(c echo.Context, name string) int {
	value, _ := strconv.Atoi(c.QueryParam(name))
	return value
}
