package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ryanguest/HEDAP/internal/describe"
	"github.com/ryanguest/HEDAP/pkg/constants"
	"github.com/ryanguest/HEDAP/pkg/utils"
	"go.uber.org/zap"
)

// CacheFactory builds the describe cache for one request
type CacheFactory func(c *gin.Context) *describe.Cache

// DescribeScope gives every request its own describe cache. The cache is
// dropped with the request, so nothing is shared between requests.
func DescribeScope(factory CacheFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyDescribe, factory(c))
		c.Next()
	}
}

// RequestLogger tags each request with an id and logs its outcome
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateID()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
