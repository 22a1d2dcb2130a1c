package constants

// Default developer names of the record types the convenience accessors look up
const (
	RecordTypeAdministrative       = "Administrative"
	RecordTypeHouseholdAccount     = "HH_Account"
	RecordTypeBusinessOrganization = "Business_Organization"
	RecordTypeStudentConnection    = "Student"
	RecordTypeFacultyConnection    = "Faculty"
)

// Positions used by the test-mode fallback when a named record type is missing
const (
	FallbackAdministrative       = 0
	FallbackHouseholdAccount     = 1
	FallbackBusinessOrganization = 2
	FallbackStudentConnection    = 0
	FallbackFacultyConnection    = 1
)

// RelationshipSeparator splits a field path that traverses to a related object
const RelationshipSeparator = "."

// NamespaceSeparator joins a package namespace to a field or object name
const NamespaceSeparator = "__"

// DefaultNamespace is the managed package namespace stripped from field names
const DefaultNamespace = "hed"
