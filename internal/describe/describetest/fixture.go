package describetest

import (
	"github.com/ryanguest/HEDAP/pkg/constants"
	"github.com/ryanguest/HEDAP/pkg/models"
)

// Record type ids used by the fixture
const (
	AdministrativeID = "012000000000001AAA"
	HouseholdID      = "012000000000002AAA"
	BusinessID       = "012000000000003AAA" // not available to the caller
	StudentID        = "012000000000004AAA"
	FacultyID        = "012000000000005AAA"
)

// Fixture returns a registry and query populated with Account, Contact and
// hed__Course_Enrollment__c.
func Fixture() (*Registry, *RecordTypeQuery) {
	registry := NewRegistry()

	registry.AddObject(models.ObjectMetadata{
		Name:      constants.ObjectAccount,
		Label:     "Account",
		KeyPrefix: "001",
		RecordTypeInfos: []models.RecordTypeInfo{
			{ID: AdministrativeID, Name: "Administrative", DeveloperName: constants.RecordTypeAdministrative, Available: true, Default: true},
			{ID: HouseholdID, Name: "Household Account", DeveloperName: constants.RecordTypeHouseholdAccount, Available: true},
			{ID: BusinessID, Name: "Business Organization", DeveloperName: constants.RecordTypeBusinessOrganization, Available: false},
		},
		FieldSets: []models.FieldSet{
			{Name: "Summary", Label: "Summary", Members: []models.FieldSetMember{
				{FieldPath: "Name", Label: "Account Name", Type: constants.DisplayTypeString, Required: true},
				{FieldPath: "hed__Primary_Contact__c", Label: "Primary Contact", Type: constants.DisplayTypeReference},
			}},
			{Name: "With_Owner", Label: "With Owner", Members: []models.FieldSetMember{
				{FieldPath: "Name", Label: "Account Name", Type: constants.DisplayTypeString},
				{FieldPath: "Owner.Name", Label: "Owner Name", Type: constants.DisplayTypeString},
			}},
			{Name: "Empty", Label: "Empty"},
		},
	},
		models.FieldMetadata{Name: "Id", Label: "Account ID", Type: constants.DisplayTypeID},
		models.FieldMetadata{Name: "Name", Label: "Account Name", Type: constants.DisplayTypeString, Required: true},
		models.FieldMetadata{Name: "Description", Label: "Description", Type: constants.DisplayTypeTextArea},
		models.FieldMetadata{Name: "AnnualRevenue", Label: "Annual Revenue", Type: constants.DisplayTypeCurrency},
		models.FieldMetadata{Name: "NumberOfEmployees", Label: "Employees", Type: constants.DisplayTypeInteger},
		models.FieldMetadata{Name: "hed__Primary_Contact__c", Label: "Primary Contact", Type: constants.DisplayTypeReference,
			ReferenceTo: []string{constants.ObjectContact}, IsCustom: true},
	)

	registry.AddObject(models.ObjectMetadata{
		Name:      constants.ObjectContact,
		Label:     "Contact",
		KeyPrefix: "003",
	},
		models.FieldMetadata{Name: "Id", Label: "Contact ID", Type: constants.DisplayTypeID},
		models.FieldMetadata{Name: "LastName", Label: "Last Name", Type: constants.DisplayTypeString, Required: true},
		models.FieldMetadata{Name: "Birthdate", Label: "Birthdate", Type: constants.DisplayTypeDate},
		models.FieldMetadata{Name: "hed__Citizenship__c", Label: "Citizenship", Type: constants.DisplayTypePicklist,
			PicklistValues: []string{"Citizen", "Resident", "Non-Resident"}, IsCustom: true},
	)

	registry.AddObject(models.ObjectMetadata{
		Name:      constants.ObjectCourseEnrollment,
		Label:     "Course Connection",
		KeyPrefix: "a0B",
		IsCustom:  true,
		RecordTypeInfos: []models.RecordTypeInfo{
			{ID: StudentID, Name: "Student", DeveloperName: constants.RecordTypeStudentConnection, Available: true, Default: true},
			{ID: FacultyID, Name: "Faculty", DeveloperName: constants.RecordTypeFacultyConnection, Available: true},
		},
	},
		models.FieldMetadata{Name: "Id", Label: "Record ID", Type: constants.DisplayTypeID},
		models.FieldMetadata{Name: "hed__Credits_Attempted__c", Label: "Credits Attempted", Type: constants.DisplayTypeDouble, IsCustom: true},
		models.FieldMetadata{Name: "hed__Start_Date__c", Label: "Start Date", Type: constants.DisplayTypeDateTime, IsCustom: true},
	)

	query := NewRecordTypeQuery().
		AddRows(constants.ObjectAccount,
			models.RecordTypeRow{ID: AdministrativeID, Name: "Administrative", DeveloperName: constants.RecordTypeAdministrative},
			models.RecordTypeRow{ID: HouseholdID, Name: "Household Account", DeveloperName: constants.RecordTypeHouseholdAccount},
			models.RecordTypeRow{ID: BusinessID, Name: "Business Organization", DeveloperName: constants.RecordTypeBusinessOrganization},
		).
		AddRows(constants.ObjectCourseEnrollment,
			models.RecordTypeRow{ID: StudentID, Name: "Student", DeveloperName: constants.RecordTypeStudentConnection},
			models.RecordTypeRow{ID: FacultyID, Name: "Faculty", DeveloperName: constants.RecordTypeFacultyConnection},
		)

	return registry, query
}
