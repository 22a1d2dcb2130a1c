package describe

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/ryanguest/HEDAP/pkg/constants"
	apperrors "github.com/ryanguest/HEDAP/pkg/errors"
	"github.com/ryanguest/HEDAP/pkg/models"
	"go.uber.org/zap"
)

// fieldHandles resolves the object first, then bulk-loads its field handles once
func (c *Cache) fieldHandles(ctx context.Context, objectName string) (map[string]models.FieldHandle, error) {
	obj, err := c.ResolveObject(ctx, objectName)
	if err != nil {
		return nil, err
	}

	key := normalizeName(objectName)
	return readThrough(c, "handles:"+key,
		func() (map[string]models.FieldHandle, bool) {
			handles, ok := c.handles[key]
			return handles, ok
		},
		func() (map[string]models.FieldHandle, error) {
			c.logger.Debug("loading field handles", zap.String("object", obj.Name))
			list, err := c.registry.ListFieldHandles(ctx, obj.Name)
			if err != nil {
				return nil, fmt.Errorf("list fields of %s: %w", obj.Name, err)
			}
			handles := make(map[string]models.FieldHandle, len(list))
			for _, h := range list {
				handles[c.fieldKey(h.FieldName)] = h
			}
			return handles, nil
		},
		func(handles map[string]models.FieldHandle) { c.handles[key] = handles },
	)
}

// FieldHandles returns the object's field handles keyed by un-namespaced, lower-cased field name
func (c *Cache) FieldHandles(ctx context.Context, objectName string) (map[string]models.FieldHandle, error) {
	handles, err := c.fieldHandles(ctx, objectName)
	if err != nil {
		return nil, err
	}
	return maps.Clone(handles), nil
}

func (c *Cache) describeField(ctx context.Context, objectName string, handles map[string]models.FieldHandle, fieldKey, fieldName string) (*models.FieldMetadata, error) {
	handle, ok := handles[fieldKey]
	if !ok {
		return nil, apperrors.NewUnknownFieldError(objectName, fieldName)
	}

	objKey := normalizeName(objectName)
	return readThrough(c, "field:"+objKey+"."+fieldKey,
		func() (*models.FieldMetadata, bool) {
			field, ok := c.fields[objKey][fieldKey]
			return field, ok
		},
		func() (*models.FieldMetadata, error) {
			field, err := c.registry.DescribeField(ctx, handle)
			if err != nil {
				return nil, fmt.Errorf("describe %s.%s: %w", handle.ObjectName, handle.FieldName, err)
			}
			if field == nil {
				return nil, apperrors.NewUnknownFieldError(objectName, fieldName)
			}
			return field, nil
		},
		func(field *models.FieldMetadata) {
			if c.fields[objKey] == nil {
				c.fields[objKey] = make(map[string]*models.FieldMetadata)
			}
			c.fields[objKey][fieldKey] = field
		},
	)
}

// ResolveField returns a field's describe. fieldName may carry the package
// namespace prefix; "hed__Foo__c" and "Foo__c" resolve to the same entry.
func (c *Cache) ResolveField(ctx context.Context, objectName, fieldName string) (*models.FieldMetadata, error) {
	handles, err := c.fieldHandles(ctx, objectName)
	if err != nil {
		return nil, err
	}
	return c.describeField(ctx, objectName, handles, c.fieldKey(fieldName), fieldName)
}

// ResolveAllFields describes every field of the object not yet described and
// returns the full map keyed by un-namespaced, lower-cased field name.
func (c *Cache) ResolveAllFields(ctx context.Context, objectName string) (map[string]*models.FieldMetadata, error) {
	handles, err := c.fieldHandles(ctx, objectName)
	if err != nil {
		return nil, err
	}

	objKey := normalizeName(objectName)
	c.mu.RLock()
	done := c.complete[objKey]
	c.mu.RUnlock()

	if !done {
		for _, key := range slices.Sorted(maps.Keys(handles)) {
			if _, err := c.describeField(ctx, objectName, handles, key, handles[key].FieldName); err != nil {
				return nil, err
			}
		}
		c.mu.Lock()
		c.complete[objKey] = true
		c.mu.Unlock()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	all := maps.Clone(c.fields[objKey])
	if all == nil {
		all = make(map[string]*models.FieldMetadata)
	}
	return all, nil
}

// LookupField is ResolveField as a Result
func (c *Cache) LookupField(ctx context.Context, objectName, fieldName string) Result[*models.FieldMetadata] {
	return ResultOf(c.ResolveField(ctx, objectName, fieldName))
}

// IsValidField reports whether the field exists; unknown objects and fields yield false
func (c *Cache) IsValidField(ctx context.Context, objectName, fieldName string) bool {
	return c.LookupField(ctx, objectName, fieldName).Ok()
}

// FieldLabel returns the field's display label
func (c *Cache) FieldLabel(ctx context.Context, objectName, fieldName string) (string, error) {
	field, err := c.ResolveField(ctx, objectName, fieldName)
	if err != nil {
		return "", err
	}
	return field.Label, nil
}

// FieldLabelSafe returns the field's label, or fieldName itself when it cannot be resolved
func (c *Cache) FieldLabelSafe(ctx context.Context, objectName, fieldName string) string {
	res := c.LookupField(ctx, objectName, fieldName)
	if !res.Ok() {
		return fieldName
	}
	return res.Value.Label
}

// FieldType returns the field's display type
func (c *Cache) FieldType(ctx context.Context, objectName, fieldName string) (constants.DisplayType, error) {
	field, err := c.ResolveField(ctx, objectName, fieldName)
	if err != nil {
		return "", err
	}
	return field.Type, nil
}
