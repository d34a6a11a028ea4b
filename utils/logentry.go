package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tattoo-booking/types"
)

// CreateLogEntry captures the request/response pair for the async
// logger. Everything is deep-copied because fasthttp reuses its
// buffers after the handler returns.
func CreateLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string(append([]byte(nil), c.Method()...))
	url := string(append([]byte(nil), c.OriginalURL()...))
	requestBody := string(append([]byte(nil), c.Body()...))
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
