package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/ryanguest/HEDAP/internal/describe"
	"github.com/ryanguest/HEDAP/pkg/constants"
	"github.com/ryanguest/HEDAP/pkg/errors"
)

// DescribeHandler serves read-only describe metadata
type DescribeHandler struct{}

func NewDescribeHandler() *DescribeHandler {
	return &DescribeHandler{}
}

// RegisterRoutes mounts the describe endpoints under group
func (h *DescribeHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/objects", h.ListObjects)
	group.GET("/objects/:object", h.GetObject)
	group.GET("/objects/:object/fields", h.GetFields)
	group.GET("/objects/:object/fields/:field", h.GetField)
	group.GET("/objects/:object/fieldsets/:fieldSet", h.GetFieldSet)
	group.GET("/objects/:object/recordtypes", h.GetRecordTypes)
	group.GET("/can-copy", h.CanCopy)
}

// ListObjects handles GET /api/describe/objects
func (h *DescribeHandler) ListObjects(c *gin.Context) {
	HandleGetEnvelope(c, constants.ResponseObjects, func(cache *describe.Cache) (interface{}, error) {
		return cache.ObjectNames(c.Request.Context())
	})
}

// GetObject handles GET /api/describe/objects/:object
func (h *DescribeHandler) GetObject(c *gin.Context) {
	HandleGetEnvelope(c, constants.ResponseObject, func(cache *describe.Cache) (interface{}, error) {
		return cache.ResolveObject(c.Request.Context(), c.Param("object"))
	})
}

// GetFields handles GET /api/describe/objects/:object/fields
func (h *DescribeHandler) GetFields(c *gin.Context) {
	HandleGetEnvelope(c, constants.ResponseFields, func(cache *describe.Cache) (interface{}, error) {
		return cache.ResolveAllFields(c.Request.Context(), c.Param("object"))
	})
}

// GetField handles GET /api/describe/objects/:object/fields/:field
func (h *DescribeHandler) GetField(c *gin.Context) {
	HandleGetEnvelope(c, constants.ResponseField, func(cache *describe.Cache) (interface{}, error) {
		return cache.ResolveField(c.Request.Context(), c.Param("object"), c.Param("field"))
	})
}

// GetFieldSet handles GET /api/describe/objects/:object/fieldsets/:fieldSet
func (h *DescribeHandler) GetFieldSet(c *gin.Context) {
	object, name := c.Param("object"), c.Param("fieldSet")
	HandleGetEnvelope(c, constants.ResponseFieldSet, func(cache *describe.Cache) (interface{}, error) {
		paths, err := cache.ListFieldSetFields(c.Request.Context(), object, name)
		if err != nil {
			return nil, err
		}
		if paths == nil {
			return nil, errors.NewNotFoundError("Field set", object+"."+name)
		}
		return paths, nil
	})
}

// GetRecordTypes handles GET /api/describe/objects/:object/recordtypes
func (h *DescribeHandler) GetRecordTypes(c *gin.Context) {
	object := c.Param("object")
	HandleGetEnvelope(c, constants.ResponseRecordTypes, func(cache *describe.Cache) (interface{}, error) {
		byDeveloperName, err := cache.RecordTypesByDeveloperName(c.Request.Context(), object)
		if err != nil {
			return nil, err
		}
		byName, err := cache.RecordTypesByName(c.Request.Context(), object)
		if err != nil {
			return nil, err
		}
		return gin.H{
			constants.ResponseByDeveloperName: byDeveloperName,
			constants.ResponseByName:          byName,
		}, nil
	})
}

// CanCopy handles GET /api/describe/can-copy?source=Date&target=DateTime
func (h *DescribeHandler) CanCopy(c *gin.Context) {
	HandleGetEnvelope(c, constants.ResponseCanCopy, func(*describe.Cache) (interface{}, error) {
		source, ok := constants.ParseDisplayType(c.Query(constants.ParamSource))
		if !ok {
			return nil, errors.NewValidationError(constants.ParamSource, "unknown display type")
		}
		target, ok := constants.ParseDisplayType(c.Query(constants.ParamTarget))
		if !ok {
			return nil, errors.NewValidationError(constants.ParamTarget, "unknown display type")
		}
		return describe.CanCopy(source, target), nil
	})
}
