package constants

import "strings"

// DisplayType is the platform's type classification of a field
type DisplayType string

const (
	DisplayTypeID              DisplayType = "ID"
	DisplayTypeString          DisplayType = "String"
	DisplayTypeTextArea        DisplayType = "TextArea"
	DisplayTypeDate            DisplayType = "Date"
	DisplayTypeDateTime        DisplayType = "DateTime"
	DisplayTypeTime            DisplayType = "Time"
	DisplayTypeBoolean         DisplayType = "Boolean"
	DisplayTypeReference       DisplayType = "Reference"
	DisplayTypePicklist        DisplayType = "Picklist"
	DisplayTypeMultiPicklist   DisplayType = "MultiPicklist"
	DisplayTypeCombobox        DisplayType = "Combobox"
	DisplayTypeCurrency        DisplayType = "Currency"
	DisplayTypeDouble          DisplayType = "Double"
	DisplayTypeInteger         DisplayType = "Integer"
	DisplayTypeLong            DisplayType = "Long"
	DisplayTypePercent         DisplayType = "Percent"
	DisplayTypePhone           DisplayType = "Phone"
	DisplayTypeEmail           DisplayType = "Email"
	DisplayTypeURL             DisplayType = "Url"
	DisplayTypeEncryptedString DisplayType = "EncryptedString"
	DisplayTypeBase64          DisplayType = "Base64"
	DisplayTypeAddress         DisplayType = "Address"
	DisplayTypeLocation        DisplayType = "Location"
)

// GetAllDisplayTypes returns all valid display types as a slice of strings
func GetAllDisplayTypes() []string {
	return []string{
		string(DisplayTypeID),
		string(DisplayTypeString),
		string(DisplayTypeTextArea),
		string(DisplayTypeDate),
		string(DisplayTypeDateTime),
		string(DisplayTypeTime),
		string(DisplayTypeBoolean),
		string(DisplayTypeReference),
		string(DisplayTypePicklist),
		string(DisplayTypeMultiPicklist),
		string(DisplayTypeCombobox),
		string(DisplayTypeCurrency),
		string(DisplayTypeDouble),
		string(DisplayTypeInteger),
		string(DisplayTypeLong),
		string(DisplayTypePercent),
		string(DisplayTypePhone),
		string(DisplayTypeEmail),
		string(DisplayTypeURL),
		string(DisplayTypeEncryptedString),
		string(DisplayTypeBase64),
		string(DisplayTypeAddress),
		string(DisplayTypeLocation),
	}
}

// ParseDisplayType matches s case-insensitively against the known display types
func ParseDisplayType(s string) (DisplayType, bool) {
	for _, t := range GetAllDisplayTypes() {
		if strings.EqualFold(t, s) {
			return DisplayType(t), true
		}
	}
	return "", false
}

// IsNumeric reports whether t belongs to the mutually convertible numeric family
func (t DisplayType) IsNumeric() bool {
	switch t {
	case DisplayTypeCurrency, DisplayTypeDouble, DisplayTypeInteger, DisplayTypePercent:
		return true
	}
	return false
}
