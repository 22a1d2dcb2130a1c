package describe

import (
	"context"
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/ryanguest/HEDAP/pkg/errors"
	"github.com/ryanguest/HEDAP/pkg/models"
	"go.uber.org/zap"
)

// globalDescribe loads the object registry once per cache
func (c *Cache) globalDescribe(ctx context.Context) (map[string]string, error) {
	return readThrough(c, "global",
		func() (map[string]string, bool) { return c.global, c.global != nil },
		func() (map[string]string, error) {
			c.logger.Debug("loading global describe")
			objects, err := c.registry.ListObjects(ctx)
			if err != nil {
				return nil, apperrors.NewInternalError("failed to list objects", err)
			}
			global := make(map[string]string, len(objects))
			for name, token := range objects {
				global[normalizeName(name)] = token
			}
			c.logger.Debug("global describe loaded", zap.Int("objects", len(global)))
			return global, nil
		},
		func(global map[string]string) { c.global = global },
	)
}

// objectToken maps a caller-supplied object name to the registry's type token
func (c *Cache) objectToken(ctx context.Context, objectName string) (string, error) {
	global, err := c.globalDescribe(ctx)
	if err != nil {
		return "", err
	}
	token, ok := global[normalizeName(objectName)]
	if !ok {
		return "", apperrors.NewUnknownObjectError(objectName)
	}
	return token, nil
}

// ResolveObject returns the describe of objectName, describing it on first use.
// Unknown objects fail with *errors.UnknownObjectError on every call.
func (c *Cache) ResolveObject(ctx context.Context, objectName string) (*models.ObjectMetadata, error) {
	key := normalizeName(objectName)
	return readThrough(c, "object:"+key,
		func() (*models.ObjectMetadata, bool) {
			obj, ok := c.objects[key]
			return obj, ok
		},
		func() (*models.ObjectMetadata, error) {
			token, err := c.objectToken(ctx, objectName)
			if err != nil {
				return nil, err
			}
			c.logger.Debug("describing object", zap.String("object", token))
			obj, err := c.registry.DescribeObject(ctx, token)
			if err != nil {
				return nil, fmt.Errorf("describe %s: %w", token, err)
			}
			if obj == nil {
				return nil, apperrors.NewUnknownObjectError(objectName)
			}
			return obj, nil
		},
		func(obj *models.ObjectMetadata) { c.objects[key] = obj },
	)
}

// ObjectExists reports whether objectName is in the global registry without describing it
func (c *Cache) ObjectExists(ctx context.Context, objectName string) (bool, error) {
	global, err := c.globalDescribe(ctx)
	if err != nil {
		return false, err
	}
	_, ok := global[normalizeName(objectName)]
	return ok, nil
}

// ObjectNames returns the registry's type tokens in sorted order
func (c *Cache) ObjectNames(ctx context.Context) ([]string, error) {
	global, err := c.globalDescribe(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(global))
	for _, token := range global {
		names = append(names, token)
	}
	slices.Sort(names)
	return names, nil
}

// ObjectLabel returns the object's display label
func (c *Cache) ObjectLabel(ctx context.Context, objectName string) (string, error) {
	obj, err := c.ResolveObject(ctx, objectName)
	if err != nil {
		return "", err
	}
	return obj.Label, nil
}

// KeyPrefix returns the three-character id prefix of the object's records
func (c *Cache) KeyPrefix(ctx context.Context, objectName string) (string, error) {
	obj, err := c.ResolveObject(ctx, objectName)
	if err != nil {
		return "", err
	}
	return obj.KeyPrefix, nil
}

// IsObjectID reports whether id carries objectName's key prefix
func (c *Cache) IsObjectID(ctx context.Context, objectName, id string) (bool, error) {
	prefix, err := c.KeyPrefix(ctx, objectName)
	if err != nil {
		return false, err
	}
	if prefix == "" {
		return false, nil
	}
	return strings.HasPrefix(id, prefix), nil
}
