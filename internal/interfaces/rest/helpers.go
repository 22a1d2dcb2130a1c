package rest

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanguest/HEDAP/internal/describe"
	"github.com/ryanguest/HEDAP/pkg/constants"
	"github.com/ryanguest/HEDAP/pkg/errors"
)

// GetCacheFromContext returns the request's describe cache set by middleware.DescribeScope
func GetCacheFromContext(c *gin.Context) *describe.Cache {
	v, exists := c.Get(constants.ContextKeyDescribe)
	if !exists {
		return nil
	}
	cache, _ := v.(*describe.Cache)
	return cache
}

// RespondAppError sends a standardised JSON error response using pkg/errors
func RespondAppError(c *gin.Context, err error) {
	resp := errors.ToResponse(err)

	if resp.Status >= 500 {
		log.Printf("❌ ERROR [%d] %s %s: %s", resp.Status, c.Request.Method, c.Request.URL.Path, resp.Message)
	}

	c.JSON(resp.Status, gin.H{
		constants.ResponseError: resp.Message,
		constants.FieldMessage:  resp.Message,
		"code":                  resp.Code,
		"data":                  nil,
	})
}

// HandleGetEnvelope executes a read action against the request's cache and
// returns the result wrapped in a JSON key
// Response: { [key]: result }
func HandleGetEnvelope(c *gin.Context, key string, action func(cache *describe.Cache) (interface{}, error)) {
	cache := GetCacheFromContext(c)
	if cache == nil {
		RespondAppError(c, errors.NewInternalError("describe cache not configured for request", nil))
		return
	}
	result, err := action(cache)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: result})
}
