package describetest

import (
	"context"
	"sync"

	"github.com/ryanguest/HEDAP/pkg/models"
)

// RecordTypeQuery is an in-memory describe.RecordTypeQuery. Object names
// match byte for byte, like a utf8mb4_bin column. Objects with no rows
// configured fail the query, as objects without record type support do.
type RecordTypeQuery struct {
	mu    sync.Mutex
	rows  map[string][]models.RecordTypeRow
	calls map[string]int
}

func NewRecordTypeQuery() *RecordTypeQuery {
	return &RecordTypeQuery{
		rows:  make(map[string][]models.RecordTypeRow),
		calls: make(map[string]int),
	}
}

// AddRows registers active record type rows for objectName, in query order
func (q *RecordTypeQuery) AddRows(objectName string, rows ...models.RecordTypeRow) *RecordTypeQuery {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rows[objectName] = append(q.rows[objectName], rows...)
	return q
}

// Calls returns how many times objectName has been queried
func (q *RecordTypeQuery) Calls(objectName string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.calls[objectName]
}

func (q *RecordTypeQuery) ActiveRecordTypes(ctx context.Context, objectName string) ([]models.RecordTypeRow, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.calls[objectName]++

	rows, ok := q.rows[objectName]
	if !ok {
		return nil, &UnsupportedObjectError{Object: objectName}
	}
	return append([]models.RecordTypeRow(nil), rows...), nil
}

// UnsupportedObjectError mimics the platform rejecting a record type query
type UnsupportedObjectError struct {
	Object string
}

func (e *UnsupportedObjectError) Error() string {
	return "sObject type '" + e.Object + "' does not support record types"
}
