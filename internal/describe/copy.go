package describe

import (
	"context"

	"github.com/ryanguest/HEDAP/pkg/constants"
)

// CanCopy reports whether a value of the source field type can be written to a
// field of the target type. Rules are checked in order:
//
//  1. identical types
//  2. Date to DateTime
//  3. Currency, Double, Integer and Percent to each other
//  4. String to TextArea
//
// Only the listed directions widen; TextArea to String and DateTime to Date do not.
func CanCopy(source, target constants.DisplayType) bool {
	switch {
	case source == target:
		return true
	case source == constants.DisplayTypeDate && target == constants.DisplayTypeDateTime:
		return true
	case source.IsNumeric() && target.IsNumeric():
		return true
	case source == constants.DisplayTypeString && target == constants.DisplayTypeTextArea:
		return true
	}
	return false
}

// CanCopyField applies CanCopy to the described types of two fields
func (c *Cache) CanCopyField(ctx context.Context, sourceObject, sourceField, targetObject, targetField string) (bool, error) {
	source, err := c.FieldType(ctx, sourceObject, sourceField)
	if err != nil {
		return false, err
	}
	target, err := c.FieldType(ctx, targetObject, targetField)
	if err != nil {
		return false, err
	}
	return CanCopy(source, target), nil
}
