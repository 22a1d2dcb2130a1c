package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ryanguest/HEDAP/pkg/constants"
	"github.com/ryanguest/HEDAP/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileID = "00e000000000001AAA"

func TestListObjects(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMetadataRepository(db, profileID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT api_name FROM " + constants.TableObject)).
		WillReturnRows(sqlmock.NewRows([]string{"api_name"}).AddRow("Account").AddRow("hed__Course_Enrollment__c"))

	objects, err := repo.ListObjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"account":                   "Account",
		"hed__course_enrollment__c": "hed__Course_Enrollment__c",
	}, objects)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeObject(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMetadataRepository(db, profileID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM " + constants.TableObject + " WHERE api_name = ?")).
		WithArgs("Account").
		WillReturnRows(sqlmock.NewRows([]string{"api_name", "label", "plural_label", "key_prefix", "is_custom"}).
			AddRow("Account", "Account", "Accounts", "001", false))

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN " + constants.TableRecordTypeVisibility + " v")).
		WithArgs(profileID, "Account").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "developer_name", "is_available", "is_default", "is_master"}).
			AddRow("012A", "Administrative", "Administrative", int64(1), int64(1), int64(0)).
			AddRow("012B", "Business Organization", "Business_Organization", int64(0), int64(0), int64(0)))

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN " + constants.TableFieldSetMember + " m")).
		WithArgs("Account").
		WillReturnRows(sqlmock.NewRows([]string{"name", "label", "field_path", "label", "type", "is_required"}).
			AddRow("Empty", "Empty", nil, nil, nil, nil).
			AddRow("Summary", "Summary", "Name", "Account Name", "String", true).
			AddRow("Summary", "Summary", "Owner.Name", "Owner", "String", false))

	obj, err := repo.DescribeObject(context.Background(), "Account")
	require.NoError(t, err)
	require.NotNil(t, obj)

	assert.Equal(t, "Accounts", obj.PluralLabel)
	assert.Equal(t, "001", obj.KeyPrefix)
	assert.Equal(t, []models.RecordTypeInfo{
		{ID: "012A", Name: "Administrative", DeveloperName: "Administrative", Available: true, Default: true},
		{ID: "012B", Name: "Business Organization", DeveloperName: "Business_Organization"},
	}, obj.RecordTypeInfos)

	require.Len(t, obj.FieldSets, 2)
	assert.Empty(t, obj.FieldSets[0].Members)
	assert.NotNil(t, obj.FieldSets[0].Members)
	assert.Equal(t, []models.FieldSetMember{
		{FieldPath: "Name", Label: "Account Name", Type: constants.DisplayTypeString, Required: true},
		{FieldPath: "Owner.Name", Label: "Owner", Type: constants.DisplayTypeString},
	}, obj.FieldSet("summary").Members)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeObject_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMetadataRepository(db, profileID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM " + constants.TableObject + " WHERE api_name = ?")).
		WithArgs("Ghost").
		WillReturnRows(sqlmock.NewRows([]string{"api_name", "label", "plural_label", "key_prefix", "is_custom"}))

	obj, err := repo.DescribeObject(context.Background(), "Ghost")
	assert.NoError(t, err)
	assert.Nil(t, obj)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFieldHandlesAndDescribeField(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMetadataRepository(db, profileID)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, api_name FROM " + constants.TableField + " WHERE object_api_name = ?")).
		WithArgs("Contact").
		WillReturnRows(sqlmock.NewRows([]string{"id", "api_name"}).
			AddRow("fld-1", "LastName").
			AddRow("fld-2", "hed__Citizenship__c"))

	handles, err := repo.ListFieldHandles(ctx, "Contact")
	require.NoError(t, err)
	assert.Equal(t, []models.FieldHandle{
		{ObjectName: "Contact", FieldName: "LastName", Token: "fld-1"},
		{ObjectName: "Contact", FieldName: "hed__Citizenship__c", Token: "fld-2"},
	}, handles)

	mock.ExpectQuery(regexp.QuoteMeta("FROM " + constants.TableField + " WHERE id = ?")).
		WithArgs("fld-2").
		WillReturnRows(sqlmock.NewRows([]string{"object_api_name", "api_name", "label", "type", "reference_to", "options", "is_required", "is_custom"}).
			AddRow("Contact", "hed__Citizenship__c", "Citizenship", "Picklist", nil, `["Citizen","Resident"]`, false, true))

	field, err := repo.DescribeField(ctx, handles[1])
	require.NoError(t, err)
	assert.Equal(t, constants.DisplayTypePicklist, field.Type)
	assert.Equal(t, []string{"Citizen", "Resident"}, field.PicklistValues)
	assert.True(t, field.IsCustom)
	assert.Nil(t, field.ReferenceTo)

	mock.ExpectQuery(regexp.QuoteMeta("FROM " + constants.TableField + " WHERE id = ?")).
		WithArgs("fld-9").
		WillReturnError(errors.New("connection reset"))

	_, err = repo.DescribeField(ctx, models.FieldHandle{ObjectName: "Contact", FieldName: "Gone", Token: "fld-9"})
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
