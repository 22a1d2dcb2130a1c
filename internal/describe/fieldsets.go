package describe

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryanguest/HEDAP/pkg/constants"
	apperrors "github.com/ryanguest/HEDAP/pkg/errors"
)

// ListFieldSetFields returns the field paths of a field set in order, or nil
// when the object has no field set of that name. Members that traverse to a
// related object fail with *errors.UnsupportedFieldSetMemberError.
//
// The object is described afresh rather than read from the object cache.
func (c *Cache) ListFieldSetFields(ctx context.Context, objectName, fieldSetName string) ([]string, error) {
	token, err := c.objectToken(ctx, objectName)
	if err != nil {
		return nil, err
	}
	obj, err := c.registry.DescribeObject(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", token, err)
	}
	if obj == nil {
		return nil, apperrors.NewUnknownObjectError(objectName)
	}

	fieldSet := obj.FieldSet(fieldSetName)
	if fieldSet == nil {
		return nil, nil
	}

	paths := make([]string, 0, len(fieldSet.Members))
	for _, member := range fieldSet.Members {
		if strings.Contains(member.FieldPath, constants.RelationshipSeparator) {
			return nil, apperrors.NewUnsupportedFieldSetMemberError(objectName, fieldSetName, member.FieldPath)
		}
		paths = append(paths, member.FieldPath)
	}
	return paths, nil
}

// FieldSetFieldsCSV joins ListFieldSetFields with commas. A missing field set
// yields ""; an existing field set with no members is an
// *errors.EmptyFieldSetError.
func (c *Cache) FieldSetFieldsCSV(ctx context.Context, objectName, fieldSetName string) (string, error) {
	paths, err := c.ListFieldSetFields(ctx, objectName, fieldSetName)
	if err != nil {
		return "", err
	}
	if paths == nil {
		return "", nil
	}
	if len(paths) == 0 {
		return "", apperrors.NewEmptyFieldSetError(objectName, fieldSetName)
	}
	return strings.Join(paths, ","), nil
}
