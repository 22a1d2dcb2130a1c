package describe_test

import (
	"context"
	"testing"

	"github.com/ryanguest/HEDAP/internal/describe"
	"github.com/ryanguest/HEDAP/internal/describe/describetest"
	"github.com/ryanguest/HEDAP/pkg/constants"
	"github.com/ryanguest/HEDAP/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTypesByDeveloperName_QueriesOnce(t *testing.T) {
	cache, _, query := newFixtureCache()
	ctx := context.Background()

	first, err := cache.RecordTypesByDeveloperName(ctx, constants.ObjectAccount)
	require.NoError(t, err)
	second, err := cache.RecordTypesByDeveloperName(ctx, "account")
	require.NoError(t, err)
	byName, err := cache.RecordTypesByName(ctx, constants.ObjectAccount)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, query.Calls(constants.ObjectAccount))

	assert.Equal(t, map[string]string{
		constants.RecordTypeAdministrative:   describetest.AdministrativeID,
		constants.RecordTypeHouseholdAccount: describetest.HouseholdID,
	}, first, "unavailable record types are filtered outside test runs")
	assert.Equal(t, map[string]string{
		"Administrative":    describetest.AdministrativeID,
		"Household Account": describetest.HouseholdID,
	}, byName)
}

func TestRecordTypesByDeveloperName_TestModeSkipsVisibility(t *testing.T) {
	cache, registry, query := newFixtureCache(describe.WithExecutionMode(describe.StaticMode(true)))
	ctx := context.Background()

	byDev, err := cache.RecordTypesByDeveloperName(ctx, constants.ObjectAccount)
	require.NoError(t, err)
	assert.Len(t, byDev, 3)
	assert.Equal(t, describetest.BusinessID, byDev[constants.RecordTypeBusinessOrganization])

	_, err = cache.RecordTypesByDeveloperName(ctx, constants.ObjectAccount)
	require.NoError(t, err)
	assert.Equal(t, 1, query.Calls(constants.ObjectAccount))
	assert.Equal(t, 0, registry.Calls(describetest.MethodDescribeObject), "test runs do not consult visibility")
}

func TestRecordTypes_QueryFailureIsEmpty(t *testing.T) {
	cache, _, query := newFixtureCache()
	ctx := context.Background()

	byDev, err := cache.RecordTypesByDeveloperName(ctx, constants.ObjectContact)
	require.NoError(t, err)
	assert.Empty(t, byDev)

	byName, err := cache.RecordTypesByName(ctx, constants.ObjectContact)
	require.NoError(t, err)
	assert.Empty(t, byName)

	assert.Equal(t, 1, query.Calls(constants.ObjectContact), "the empty result is cached too")
}

func TestRecordTypes_QueryUsesRegistryName(t *testing.T) {
	cache, _, query := newFixtureCache()
	ctx := context.Background()

	lower, err := cache.RecordTypesByDeveloperName(ctx, "account")
	require.NoError(t, err)
	canonical, err := cache.RecordTypesByDeveloperName(ctx, constants.ObjectAccount)
	require.NoError(t, err)

	assert.Equal(t, describetest.AdministrativeID, lower[constants.RecordTypeAdministrative])
	assert.Equal(t, lower, canonical)
	assert.Equal(t, 1, query.Calls(constants.ObjectAccount))
	assert.Equal(t, 0, query.Calls("account"))

	admin, err := cache.AdminAccountRecordTypeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, describetest.AdministrativeID, admin)
}

func TestRecordTypes_ObjectOutsideRegistryIsEmpty(t *testing.T) {
	cache, _, query := newFixtureCache()

	byDev, err := cache.RecordTypesByDeveloperName(context.Background(), "Opportunity")
	require.NoError(t, err)
	assert.Empty(t, byDev)
	assert.Equal(t, 1, query.Calls("Opportunity"))
}

func TestRecordTypes_UnknownVisibilityIsExcluded(t *testing.T) {
	registry, query := describetest.Fixture()
	query.AddRows(constants.ObjectAccount, models.RecordTypeRow{ID: "012000000000009AAA", Name: "Orphan", DeveloperName: "Orphan"})
	cache := describe.New(registry, query)

	byDev, err := cache.RecordTypesByDeveloperName(context.Background(), constants.ObjectAccount)
	require.NoError(t, err)
	assert.NotContains(t, byDev, "Orphan")
}

func TestRecordTypeIDs_KeepQueryOrder(t *testing.T) {
	cache, _, _ := newFixtureCache(describe.WithExecutionMode(describe.StaticMode(true)))

	ids, err := cache.RecordTypeIDs(context.Background(), constants.ObjectAccount)
	require.NoError(t, err)
	assert.Equal(t, []string{describetest.AdministrativeID, describetest.HouseholdID, describetest.BusinessID}, ids)
}

func TestAccountRecordTypeAccessors(t *testing.T) {
	ctx := context.Background()

	t.Run("by_developer_name", func(t *testing.T) {
		cache, _, query := newFixtureCache()

		admin, err := cache.AdminAccountRecordTypeID(ctx)
		require.NoError(t, err)
		assert.Equal(t, describetest.AdministrativeID, admin)

		hh, err := cache.HouseholdAccountRecordTypeID(ctx)
		require.NoError(t, err)
		assert.Equal(t, describetest.HouseholdID, hh)

		// Not available to the caller and no fallback outside test runs
		biz, err := cache.BusinessAccountRecordTypeID(ctx)
		require.NoError(t, err)
		assert.Empty(t, biz)

		assert.Equal(t, 1, query.Calls(constants.ObjectAccount))
	})

	t.Run("test_mode_positional_fallback", func(t *testing.T) {
		settings := describe.DefaultSettings()
		settings.AdministrativeRecordType = "Missing_Admin"
		settings.HouseholdRecordType = "Missing_HH"
		settings.BusinessRecordType = "Missing_Biz"
		cache, _, _ := newFixtureCache(
			describe.WithExecutionMode(describe.StaticMode(true)),
			describe.WithSettings(settings),
		)

		admin, err := cache.AdminAccountRecordTypeID(ctx)
		require.NoError(t, err)
		assert.Equal(t, describetest.AdministrativeID, admin)

		hh, err := cache.HouseholdAccountRecordTypeID(ctx)
		require.NoError(t, err)
		assert.Equal(t, describetest.HouseholdID, hh)

		biz, err := cache.BusinessAccountRecordTypeID(ctx)
		require.NoError(t, err)
		assert.Equal(t, describetest.BusinessID, biz)
	})

	t.Run("no_fallback_outside_test_mode", func(t *testing.T) {
		settings := describe.DefaultSettings()
		settings.AdministrativeRecordType = "Missing_Admin"
		cache, _, _ := newFixtureCache(describe.WithSettings(settings))

		admin, err := cache.AdminAccountRecordTypeID(ctx)
		require.NoError(t, err)
		assert.Empty(t, admin)
	})
}

func TestCourseConnectionRecordTypeAccessors(t *testing.T) {
	ctx := context.Background()
	cache, _, query := newFixtureCache()

	student, err := cache.StudentConnectionRecordTypeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, describetest.StudentID, student)

	faculty, err := cache.FacultyConnectionRecordTypeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, describetest.FacultyID, faculty)

	assert.Equal(t, 1, query.Calls(constants.ObjectCourseEnrollment))

	t.Run("fallback_out_of_range_is_blank", func(t *testing.T) {
		registry, query := describetest.Fixture()
		settings := describe.DefaultSettings()
		settings.CourseConnectionObject = constants.ObjectContact
		settings.FacultyConnectionRecordType = "Missing"
		cache := describe.New(registry, query,
			describe.WithExecutionMode(describe.StaticMode(true)),
			describe.WithSettings(settings),
		)

		faculty, err := cache.FacultyConnectionRecordTypeID(ctx)
		require.NoError(t, err)
		assert.Empty(t, faculty)
	})
}
