package describe

import (
	"context"

	"github.com/ryanguest/HEDAP/pkg/constants"
)

func (c *Cache) AdminAccountRecordTypeID(ctx context.Context) (string, error) {
	return c.recordTypeID(ctx, c.settings.AccountObject, c.settings.AdministrativeRecordType, constants.FallbackAdministrative)
}

func (c *Cache) HouseholdAccountRecordTypeID(ctx context.Context) (string, error) {
	return c.recordTypeID(ctx, c.settings.AccountObject, c.settings.HouseholdRecordType, constants.FallbackHouseholdAccount)
}

func (c *Cache) BusinessAccountRecordTypeID(ctx context.Context) (string, error) {
	return c.recordTypeID(ctx, c.settings.AccountObject, c.settings.BusinessRecordType, constants.FallbackBusinessOrganization)
}

func (c *Cache) StudentConnectionRecordTypeID(ctx context.Context) (string, error) {
	return c.recordTypeID(ctx, c.settings.CourseConnectionObject, c.settings.StudentConnectionRecordType, constants.FallbackStudentConnection)
}

func (c *Cache) FacultyConnectionRecordTypeID(ctx context.Context) (string, error) {
	return c.recordTypeID(ctx, c.settings.CourseConnectionObject, c.settings.FacultyConnectionRecordType, constants.FallbackFacultyConnection)
}
