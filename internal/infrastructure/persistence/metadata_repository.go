package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/ryanguest/HEDAP/pkg/constants"
	"github.com/ryanguest/HEDAP/pkg/models"
	"github.com/ryanguest/HEDAP/pkg/utils"
)

// MetadataRepository reads object, field, field set and record type
// visibility metadata from the system tables. Record type availability is
// evaluated for one profile, the caller's.
type MetadataRepository struct {
	db        *sql.DB
	profileID string
}

func NewMetadataRepository(db *sql.DB, profileID string) *MetadataRepository {
	return &MetadataRepository{db: db, profileID: profileID}
}

// =================================================================================
// SQL Columns
// =================================================================================

var objectColumns = []string{
	"api_name",
	"label",
	"plural_label",
	"key_prefix",
	"is_custom",
}

var fieldColumns = []string{
	"object_api_name",
	"api_name",
	"label",
	"`type`",
	"reference_to",
	"`options`",
	"is_required",
	"is_custom",
}

// Scannable is satisfied by *sql.Row and *sql.Rows
type Scannable interface {
	Scan(dest ...interface{}) error
}

// =================================================================================
// Object Queries
// =================================================================================

// ListObjects returns every object API name keyed by its lower-cased form
func (r *MetadataRepository) ListObjects(ctx context.Context) (map[string]string, error) {
	query := fmt.Sprintf("SELECT api_name FROM %s", constants.TableObject)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query objects: %w", err)
	}
	defer rows.Close()

	objects := make(map[string]string)
	for rows.Next() {
		var apiName string
		if err := rows.Scan(&apiName); err != nil {
			return nil, fmt.Errorf("failed to scan object name: %w", err)
		}
		objects[strings.ToLower(apiName)] = apiName
	}
	return objects, rows.Err()
}

// DescribeObject loads an object with its record type infos and field sets.
// Returns nil, nil if the object does not exist.
func (r *MetadataRepository) DescribeObject(ctx context.Context, apiName string) (*models.ObjectMetadata, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE api_name = ?", strings.Join(objectColumns, ", "), constants.TableObject)
	obj, err := r.scanObject(r.db.QueryRowContext(ctx, query, apiName))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan object: %w", err)
	}

	obj.RecordTypeInfos, err = r.getRecordTypeInfos(ctx, obj.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load record type infos: %w", err)
	}

	obj.FieldSets, err = r.getFieldSets(ctx, obj.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load field sets: %w", err)
	}

	return obj, nil
}

// getRecordTypeInfos lists every record type of the object with its
// visibility for the repository's profile. Missing visibility rows mean unavailable.
func (r *MetadataRepository) getRecordTypeInfos(ctx context.Context, objectAPIName string) ([]models.RecordTypeInfo, error) {
	query := fmt.Sprintf(`
		SELECT rt.id, rt.name, rt.developer_name,
		       COALESCE(v.is_available, 0), COALESCE(v.is_default, 0), COALESCE(v.is_master, 0)
		FROM %s rt
		LEFT JOIN %s v ON v.record_type_id = rt.id AND v.profile_id = ?
		WHERE rt.object_api_name = ?
		ORDER BY rt.created_date, rt.id
	`, constants.TableRecordType, constants.TableRecordTypeVisibility)
	rows, err := r.db.QueryContext(ctx, query, r.profileID, objectAPIName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := make([]models.RecordTypeInfo, 0)
	for rows.Next() {
		var info models.RecordTypeInfo
		var available, isDefault, master interface{}
		if err := rows.Scan(&info.ID, &info.Name, &info.DeveloperName, &available, &isDefault, &master); err != nil {
			log.Printf("⚠️ Failed to scan record type info: %v", err)
			continue
		}
		info.Available = utils.ToBool(available)
		info.Default = utils.ToBool(isDefault)
		info.Master = utils.ToBool(master)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// getFieldSets loads the object's field sets with members in sort order
func (r *MetadataRepository) getFieldSets(ctx context.Context, objectAPIName string) ([]models.FieldSet, error) {
	query := fmt.Sprintf(`
		SELECT fs.name, fs.label, m.field_path, m.label, m.type, m.is_required
		FROM %s fs
		LEFT JOIN %s m ON m.field_set_id = fs.id
		WHERE fs.object_api_name = ?
		ORDER BY fs.name, m.sort_order
	`, constants.TableFieldSet, constants.TableFieldSetMember)
	rows, err := r.db.QueryContext(ctx, query, objectAPIName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fieldSets := make([]models.FieldSet, 0)
	for rows.Next() {
		var name, label string
		var path, memberLabel, memberType sql.NullString
		var required sql.NullBool
		if err := rows.Scan(&name, &label, &path, &memberLabel, &memberType, &required); err != nil {
			return nil, fmt.Errorf("failed to scan field set: %w", err)
		}

		if n := len(fieldSets); n == 0 || fieldSets[n-1].Name != name {
			fieldSets = append(fieldSets, models.FieldSet{Name: name, Label: label, Members: []models.FieldSetMember{}})
		}
		// A field set without members yields one row of NULL member columns
		if !path.Valid {
			continue
		}
		current := &fieldSets[len(fieldSets)-1]
		current.Members = append(current.Members, models.FieldSetMember{
			FieldPath: path.String,
			Label:     memberLabel.String,
			Type:      models.DisplayType(memberType.String),
			Required:  required.Bool,
		})
	}
	return fieldSets, rows.Err()
}

// =================================================================================
// Field Queries
// =================================================================================

// ListFieldHandles returns one handle per field of the object; the token is the field row id
func (r *MetadataRepository) ListFieldHandles(ctx context.Context, objectAPIName string) ([]models.FieldHandle, error) {
	query := fmt.Sprintf("SELECT id, api_name FROM %s WHERE object_api_name = ?", constants.TableField)
	rows, err := r.db.QueryContext(ctx, query, objectAPIName)
	if err != nil {
		return nil, fmt.Errorf("failed to query fields: %w", err)
	}
	defer rows.Close()

	handles := make([]models.FieldHandle, 0)
	for rows.Next() {
		h := models.FieldHandle{ObjectName: objectAPIName}
		if err := rows.Scan(&h.Token, &h.FieldName); err != nil {
			log.Printf("⚠️ Failed to scan field handle: %v", err)
			continue
		}
		handles = append(handles, h)
	}
	return handles, rows.Err()
}

// DescribeField loads the field a handle points to. Returns nil, nil if it no longer exists.
func (r *MetadataRepository) DescribeField(ctx context.Context, handle models.FieldHandle) (*models.FieldMetadata, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", strings.Join(fieldColumns, ", "), constants.TableField)
	field, err := r.scanField(r.db.QueryRowContext(ctx, query, handle.Token))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan field: %w", err)
	}
	return field, nil
}

// =================================================================================
// Scanners
// =================================================================================

func (r *MetadataRepository) scanObject(row Scannable) (*models.ObjectMetadata, error) {
	var obj models.ObjectMetadata
	var pluralLabel, keyPrefix sql.NullString
	var isCustom sql.NullBool

	if err := row.Scan(&obj.Name, &obj.Label, &pluralLabel, &keyPrefix, &isCustom); err != nil {
		return nil, err
	}
	obj.PluralLabel = pluralLabel.String
	obj.KeyPrefix = keyPrefix.String
	obj.IsCustom = isCustom.Bool
	return &obj, nil
}

func (r *MetadataRepository) scanField(row Scannable) (*models.FieldMetadata, error) {
	var field models.FieldMetadata
	var referenceTo, options sql.NullString
	var required, isCustom sql.NullBool

	err := row.Scan(
		&field.ObjectName, &field.Name, &field.Label, &field.Type,
		&referenceTo, &options, &required, &isCustom,
	)
	if err != nil {
		return nil, err
	}

	field.Required = required.Bool
	field.IsCustom = isCustom.Bool

	// Unmarshal JSON fields
	if referenceTo.Valid {
		r.unmarshalJSON(referenceTo.String, &field.ReferenceTo)
	}
	if options.Valid {
		r.unmarshalJSON(options.String, &field.PicklistValues)
	}
	return &field, nil
}

func (r *MetadataRepository) unmarshalJSON(data string, v interface{}) {
	if data == "" {
		return
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		log.Printf("⚠️ Failed to unmarshal JSON column: %v", err)
	}
}
