package constants

// HTTP and API constants
const (
	// HTTP Headers
	HeaderXRequestID = "X-Request-ID"
	HeaderXProfileID = "X-Profile-ID"

	// Response Keys
	ResponseError           = "error"
	ResponseObject          = "object"
	ResponseObjects         = "objects"
	ResponseField           = "field"
	ResponseFields          = "fields"
	ResponseFieldSet        = "field_set"
	ResponseRecordTypes     = "record_types"
	ResponseCanCopy         = "can_copy"
	ResponseByDeveloperName = "by_developer_name"
	ResponseByName          = "by_name"
	FieldMessage            = "message"
)

// Query parameter constants
const (
	ParamSource = "source"
	ParamTarget = "target"
)

// Context Keys
const (
	ContextKeyDescribe  = "describe"
	ContextKeyRequestID = "request_id"
)
