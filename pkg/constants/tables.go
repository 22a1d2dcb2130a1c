package constants

// SystemTablePrefix is the prefix for all system tables
const SystemTablePrefix = "_System_"

// Metadata tables read by the schema registry
const (
	TableObject               = SystemTablePrefix + "Object"
	TableField                = SystemTablePrefix + "Field"
	TableFieldSet             = SystemTablePrefix + "FieldSet"
	TableFieldSetMember       = SystemTablePrefix + "FieldSetMember"
	TableRecordType           = SystemTablePrefix + "RecordType"
	TableRecordTypeVisibility = SystemTablePrefix + "RecordTypeVisibility"
)

// Standard Object API Names
const (
	ObjectAccount          = "Account"
	ObjectContact          = "Contact"
	ObjectCourseEnrollment = "hed__Course_Enrollment__c"
)
