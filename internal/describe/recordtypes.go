package describe

import (
	"context"
	"maps"
	"slices"

	apperrors "github.com/ryanguest/HEDAP/pkg/errors"
	"github.com/ryanguest/HEDAP/pkg/models"
	"go.uber.org/zap"
)

// recordTypeSet is the resolved record types of one object. ids keeps the
// query's row order so positional lookups are deterministic.
type recordTypeSet struct {
	byDeveloperName map[string]string
	byName          map[string]string
	ids             []string
}

func (c *Cache) resolveRecordTypes(ctx context.Context, objectName string) (*recordTypeSet, error) {
	key := normalizeName(objectName)
	return readThrough(c, "recordtypes:"+key,
		func() (*recordTypeSet, bool) {
			set, ok := c.recordTypes[key]
			return set, ok
		},
		func() (*recordTypeSet, error) { return c.loadRecordTypes(ctx, objectName) },
		func(set *recordTypeSet) { c.recordTypes[key] = set },
	)
}

func (c *Cache) loadRecordTypes(ctx context.Context, objectName string) (*recordTypeSet, error) {
	// The record type table matches object names exactly, so query with the
	// registry's spelling. Names outside the registry go through as typed and
	// end up as an empty set.
	sobjectType, err := c.objectToken(ctx, objectName)
	if err != nil {
		if !apperrors.IsUnknownObject(err) {
			return nil, err
		}
		sobjectType = objectName
	}

	c.logger.Debug("querying record types", zap.String("object", sobjectType))
	rows, err := c.query.ActiveRecordTypes(ctx, sobjectType)
	if err != nil {
		// Objects without record type support fail the query
		c.logger.Debug("record type query failed, treating as none",
			zap.String("object", sobjectType), zap.Error(err))
		rows = nil
	}

	// Visibility data is unreliable in test runs, so every active row is kept
	testMode := c.mode.IsRunningTest()
	var infos map[string]models.RecordTypeInfo
	if !testMode && len(rows) > 0 {
		obj, err := c.ResolveObject(ctx, objectName)
		if err != nil {
			return nil, err
		}
		infos = obj.RecordTypeInfosByID()
	}

	set := &recordTypeSet{
		byDeveloperName: make(map[string]string, len(rows)),
		byName:          make(map[string]string, len(rows)),
		ids:             make([]string, 0, len(rows)),
	}
	for _, row := range rows {
		if !testMode && !infos[row.ID].Available {
			continue
		}
		set.byDeveloperName[row.DeveloperName] = row.ID
		set.byName[row.Name] = row.ID
		set.ids = append(set.ids, row.ID)
	}
	return set, nil
}

// RecordTypesByDeveloperName maps developer name to id for the object's
// active record types visible to the caller. The query runs once per object.
func (c *Cache) RecordTypesByDeveloperName(ctx context.Context, objectName string) (map[string]string, error) {
	set, err := c.resolveRecordTypes(ctx, objectName)
	if err != nil {
		return nil, err
	}
	return maps.Clone(set.byDeveloperName), nil
}

// RecordTypesByName maps display name to id, as RecordTypesByDeveloperName
func (c *Cache) RecordTypesByName(ctx context.Context, objectName string) (map[string]string, error) {
	set, err := c.resolveRecordTypes(ctx, objectName)
	if err != nil {
		return nil, err
	}
	return maps.Clone(set.byName), nil
}

// RecordTypeIDs returns the ids of the object's record types in query order
func (c *Cache) RecordTypeIDs(ctx context.Context, objectName string) ([]string, error) {
	set, err := c.resolveRecordTypes(ctx, objectName)
	if err != nil {
		return nil, err
	}
	return slices.Clone(set.ids), nil
}

// recordTypeID looks up developerName on objectName. In test runs a missing
// name falls back to the record type at position in query order, so tests get
// a usable id in orgs that lack the named record type. The fallback is a test
// accommodation only; outside test runs a missing name yields "".
func (c *Cache) recordTypeID(ctx context.Context, objectName, developerName string, position int) (string, error) {
	set, err := c.resolveRecordTypes(ctx, objectName)
	if err != nil {
		return "", err
	}
	id := set.byDeveloperName[developerName]
	if id == "" && c.mode.IsRunningTest() && position < len(set.ids) {
		id = set.ids[position]
	}
	return id, nil
}
