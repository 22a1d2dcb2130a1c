package models

import (
	"strings"

	"github.com/ryanguest/HEDAP/pkg/constants"
)

// DisplayType is defined in pkg/constants
type DisplayType = constants.DisplayType

// FieldHandle is a lightweight reference to a field, used only to request its full describe
type FieldHandle struct {
	ObjectName string `json:"object_name"`
	FieldName  string `json:"field_name"`
	Token      string `json:"token"` // Opaque to the cache; interpreted by the registry
}

// FieldMetadata represents field-level metadata
type FieldMetadata struct {
	ObjectName     string      `json:"object_name"`
	Name           string      `json:"name"`
	Label          string      `json:"label"`
	Type           DisplayType `json:"type"`
	ReferenceTo    []string    `json:"reference_to,omitempty"`
	PicklistValues []string    `json:"picklist_values,omitempty"`
	Required       bool        `json:"required,omitempty"`
	IsCustom       bool        `json:"is_custom,omitempty"`
}

// FieldSetMember is one entry of a field set, in display order
type FieldSetMember struct {
	FieldPath string      `json:"field_path"`
	Label     string      `json:"label"`
	Type      DisplayType `json:"type"`
	Required  bool        `json:"required,omitempty"`
}

// FieldSet represents a named, ordered subset of an object's fields
type FieldSet struct {
	Name    string           `json:"name"`
	Label   string           `json:"label"`
	Members []FieldSetMember `json:"members"`
}

// RecordTypeInfo is the describe-side view of a record type, including
// whether it is available to the current caller
type RecordTypeInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DeveloperName string `json:"developer_name"`
	Available     bool   `json:"available"`
	Default       bool   `json:"default,omitempty"`
	Master        bool   `json:"master,omitempty"`
}

// RecordTypeRow is a row of the record type table as returned by a query
type RecordTypeRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DeveloperName string `json:"developer_name"`
}

// ObjectMetadata represents object-level metadata
type ObjectMetadata struct {
	Name            string           `json:"name"`
	Label           string           `json:"label"`
	PluralLabel     string           `json:"plural_label,omitempty"`
	KeyPrefix       string           `json:"key_prefix,omitempty"`
	IsCustom        bool             `json:"is_custom,omitempty"`
	RecordTypeInfos []RecordTypeInfo `json:"record_type_infos,omitempty"`
	FieldSets       []FieldSet       `json:"field_sets,omitempty"`
}

// FieldSet returns the field set with the given name (case-insensitive), or nil
func (o *ObjectMetadata) FieldSet(name string) *FieldSet {
	for i := range o.FieldSets {
		if strings.EqualFold(o.FieldSets[i].Name, name) {
			return &o.FieldSets[i]
		}
	}
	return nil
}

// RecordTypeInfosByID indexes the record type infos by identifier
func (o *ObjectMetadata) RecordTypeInfosByID() map[string]RecordTypeInfo {
	infos := make(map[string]RecordTypeInfo, len(o.RecordTypeInfos))
	for _, info := range o.RecordTypeInfos {
		infos[info.ID] = info
	}
	return infos
}
