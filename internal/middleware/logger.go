package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ridwanfathin/whatsapp-billing/internal/logger"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-Id"

// maxLoggedBody caps how much of a non-JSON body is logged
const maxLoggedBody = 1000

// sensitiveFields contains patterns for fields that should be redacted
var sensitiveFields = []string{
	"password",
	"token",
	"api_key",
	"apikey",
	"secret",
	"authorization",
	"credential",
	"cookie",
	"session",
}

// contactFields are customer contact details, logged with only the last four characters
var contactFields = []string{
	"phone",
	"whatsapp",
	"email",
	"destination",
	"link",
}

// sensitiveHeaderPatterns contains regex patterns for sensitive headers
var sensitiveHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)authorization`),
	regexp.MustCompile(`(?i)api[-_]?key`),
	regexp.MustCompile(`(?i)token`),
	regexp.MustCompile(`(?i)secret`),
	regexp.MustCompile(`(?i)cookie`),
	regexp.MustCompile(`(?i)session`),
}

// responseWriter is a custom response writer to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// LoggerConfig holds configuration for the logger middleware
type LoggerConfig struct {
	Logger *zap.Logger
	// SkipPaths are not logged at all, e.g. health checks
	SkipPaths []string
}

// RequestResponseLogger creates a middleware that logs all requests and responses
func RequestResponseLogger(config LoggerConfig) gin.HandlerFunc {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		startTime := time.Now()

		// Read and store request body
		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			// Restore the body for the next handler
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		responseBodyWriter := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBufferString(""),
		}
		c.Writer = responseBodyWriter

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status_code", c.Writer.Status()),
			zap.Duration("latency", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Any("headers", redactHeaders(c.Request.Header)),
		}
		if len(c.Request.URL.RawQuery) > 0 {
			fields = append(fields, zap.Any("query_params", redactValues(c.Request.URL.Query())))
		}
		if len(requestBody) > 0 {
			fields = append(fields, zap.Any("request_body", parseAndRedactBody(requestBody, c.ContentType())))
		}
		if body := responseBodyWriter.body.Bytes(); len(body) > 0 {
			fields = append(fields, zap.Any("response_body", parseAndRedactBody(body, c.Writer.Header().Get("Content-Type"))))
		}

		switch {
		case len(c.Errors) > 0:
			log.Error("request failed", append(fields, zap.String("error", c.Errors.String()))...)
		case c.Writer.Status() >= 500:
			log.Error("request completed", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("request completed", fields...)
		default:
			log.Info("request completed", fields...)
		}
	}
}

// redactHeaders redacts sensitive headers
func redactHeaders(headers map[string][]string) map[string]string {
	redacted := make(map[string]string)
	for key, values := range headers {
		if isSensitiveHeader(key) {
			redacted[key] = "[REDACTED]"
		} else {
			redacted[key] = strings.Join(values, ", ")
		}
	}
	return redacted
}

// isSensitiveHeader checks if a header name is sensitive
func isSensitiveHeader(headerName string) bool {
	for _, pattern := range sensitiveHeaderPatterns {
		if pattern.MatchString(headerName) {
			return true
		}
	}
	return false
}

// parseAndRedactBody parses a JSON or form body and redacts sensitive fields.
// HTML and binary bodies are summarized by size.
func parseAndRedactBody(body []byte, contentType string) interface{} {
	switch {
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		values, err := url.ParseQuery(string(body))
		if err == nil {
			return redactValues(values)
		}
	case strings.HasPrefix(contentType, "text/html"), strings.HasPrefix(contentType, "image/"):
		return map[string]interface{}{"bytes": len(body), "content_type": contentType}
	}

	var jsonBody interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		// If not JSON, return truncated string
		bodyStr := string(body)
		if len(bodyStr) > maxLoggedBody {
			bodyStr = bodyStr[:maxLoggedBody] + "... (truncated)"
		}
		return bodyStr
	}

	redactSensitiveFields(jsonBody)
	return jsonBody
}

// redactValues flattens form or query values and redacts sensitive keys
func redactValues(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for key, vals := range values {
		out[key] = redactValue(key, strings.Join(vals, ", "))
	}
	return out
}

// redactSensitiveFields recursively redacts sensitive fields in JSON data
func redactSensitiveFields(data interface{}) {
	switch v := data.(type) {
	case map[string]interface{}:
		// {"name": "whatsappNumber", "value": "..."} style field updates
		if name, ok := v["name"].(string); ok {
			if value, ok := v["value"].(string); ok {
				v["value"] = redactValue(name, value)
			}
		}
		for key, value := range v {
			if s, ok := value.(string); ok {
				v[key] = redactValue(key, s)
			} else {
				redactSensitiveFields(value)
			}
		}
	case []interface{}:
		for _, item := range v {
			redactSensitiveFields(item)
		}
	}
}

func redactValue(key, value string) string {
	lowerKey := strings.ToLower(key)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(lowerKey, sensitive) {
			return "[REDACTED]"
		}
	}
	for _, contact := range contactFields {
		if strings.Contains(lowerKey, contact) {
			return logger.MaskLast4(value)
		}
	}
	return value
}
