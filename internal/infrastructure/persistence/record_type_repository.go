package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ryanguest/HEDAP/pkg/constants"
	"github.com/ryanguest/HEDAP/pkg/models"
)

// RecordTypeRepository queries the record type table
type RecordTypeRepository struct {
	db *sql.DB
}

func NewRecordTypeRepository(db *sql.DB) *RecordTypeRepository {
	return &RecordTypeRepository{db: db}
}

// ActiveRecordTypes returns the object's active record types in creation order
func (r *RecordTypeRepository) ActiveRecordTypes(ctx context.Context, objectAPIName string) ([]models.RecordTypeRow, error) {
	query := fmt.Sprintf(`
		SELECT id, name, developer_name
		FROM %s
		WHERE object_api_name = ? AND is_active = 1
		ORDER BY created_date, id
	`, constants.TableRecordType)
	rows, err := r.db.QueryContext(ctx, query, objectAPIName)
	if err != nil {
		return nil, fmt.Errorf("failed to query record types for %s: %w", objectAPIName, err)
	}
	defer rows.Close()

	types := make([]models.RecordTypeRow, 0)
	for rows.Next() {
		var rt models.RecordTypeRow
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.DeveloperName); err != nil {
			return nil, fmt.Errorf("failed to scan record type: %w", err)
		}
		types = append(types, rt)
	}
	return types, rows.Err()
}
