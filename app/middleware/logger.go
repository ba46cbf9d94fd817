package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"casemonitor/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/pretty"
)

const maxLoggedBody = 1000

// Logger writes one access log line per request. Only JSON request bodies are
// logged, so the login form never reaches the log.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		var bodyStr string
		if c.Request.Method == http.MethodPost && isJSON(c.ContentType()) {
			bodyStr = getRequestBody(c)
		}

		c.Next()

		if c.Writer.Status() == http.StatusNotFound {
			return
		}

		ctx := c.Request.Context()
		if bodyStr != "" {
			logger.InfoCtx(ctx, "[GIN] %3d | %13v | %15s | %s | %s | body: %s",
				c.Writer.Status(), time.Since(startTime), c.ClientIP(), c.Request.Method, c.Request.RequestURI, bodyStr)
			return
		}
		logger.InfoCtx(ctx, "[GIN] %3d | %13v | %15s | %s | %s",
			c.Writer.Status(), time.Since(startTime), c.ClientIP(), c.Request.Method, c.Request.RequestURI)
	}
}

func isJSON(contentType string) bool {
	return strings.HasSuffix(contentType, "/json") || strings.HasSuffix(contentType, "+json")
}

// getRequestBody reads the body and puts it back for the handler
func getRequestBody(c *gin.Context) string {
	var bodyBytes []byte
	if c.Request.Body != nil {
		bodyBytes, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}
	return CompressBody(string(bodyBytes))
}

// CompressBody strips JSON whitespace and truncates long bodies
func CompressBody(body string) string {
	if len(body) == 0 {
		return ""
	}

	compressed := pretty.Ugly([]byte(body))
	if len(compressed) > maxLoggedBody {
		return string(compressed[:maxLoggedBody]) + "..."
	}
	return string(compressed)
}
