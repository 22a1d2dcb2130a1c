// Package describe caches object, field and record type metadata for the
// lifetime of one execution context.
//
// A Cache is built at the start of a unit of work (an HTTP request, a job, a
// test) and dropped at its end. Every level fills on first miss and is never
// evicted or recomputed afterwards:
//
//	global registry  object name -> type token      (one bulk load)
//	objects          object name -> ObjectMetadata  (one describe per object)
//	field handles    object -> field -> FieldHandle (one bulk load per object)
//	fields           object -> field -> FieldMetadata
//	record types     object -> developer name / name -> id
//
// Object names are case-insensitive. Field names are case-insensitive and are
// keyed without the package namespace prefix.
package describe

import (
	"context"
	"strings"
	"sync"

	"github.com/ryanguest/HEDAP/pkg/constants"
	"github.com/ryanguest/HEDAP/pkg/models"
	"github.com/ryanguest/HEDAP/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SchemaRegistry is the platform's schema introspection service
type SchemaRegistry interface {
	// ListObjects returns every object known to the platform, keyed by
	// lower-cased name, with the type token to pass to DescribeObject.
	ListObjects(ctx context.Context) (map[string]string, error)
	DescribeObject(ctx context.Context, token string) (*models.ObjectMetadata, error)
	ListFieldHandles(ctx context.Context, token string) ([]models.FieldHandle, error)
	DescribeField(ctx context.Context, handle models.FieldHandle) (*models.FieldMetadata, error)
}

// RecordTypeQuery reads active record types for an object from the record type table
type RecordTypeQuery interface {
	ActiveRecordTypes(ctx context.Context, objectName string) ([]models.RecordTypeRow, error)
}

// ExecutionMode reports whether the current execution is a test run
type ExecutionMode interface {
	IsRunningTest() bool
}

// Namespace strips a package namespace prefix from a field name
type Namespace interface {
	StripPrefix(name string) string
}

// StaticMode is an ExecutionMode fixed at construction
type StaticMode bool

func (m StaticMode) IsRunningTest() bool {
	return bool(m)
}

// Settings names the objects and record types used by the convenience accessors
type Settings struct {
	AccountObject          string
	CourseConnectionObject string

	AdministrativeRecordType    string
	HouseholdRecordType         string
	BusinessRecordType          string
	StudentConnectionRecordType string
	FacultyConnectionRecordType string
}

// DefaultSettings returns the standard account and course connection record type names
func DefaultSettings() Settings {
	return Settings{
		AccountObject:               constants.ObjectAccount,
		CourseConnectionObject:      constants.ObjectCourseEnrollment,
		AdministrativeRecordType:    constants.RecordTypeAdministrative,
		HouseholdRecordType:         constants.RecordTypeHouseholdAccount,
		BusinessRecordType:          constants.RecordTypeBusinessOrganization,
		StudentConnectionRecordType: constants.RecordTypeStudentConnection,
		FacultyConnectionRecordType: constants.RecordTypeFacultyConnection,
	}
}

// Option configures a Cache
type Option func(*Cache)

// WithExecutionMode sets the test-mode oracle (default: not a test run)
func WithExecutionMode(mode ExecutionMode) Option {
	return func(c *Cache) { c.mode = mode }
}

// WithNamespace sets the namespace stripper used for field keys
func WithNamespace(ns Namespace) Option {
	return func(c *Cache) { c.ns = ns }
}

// WithSettings overrides the convenience accessor names
func WithSettings(s Settings) Option {
	return func(c *Cache) { c.settings = s }
}

// WithLogger sets the logger for cache fills
func WithLogger(logger *zap.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// Cache is a read-through describe cache scoped to one execution context.
// It is safe for concurrent use; concurrent misses on the same key share one fill.
// A shared fill runs with the first caller's context, so if that caller is
// cancelled every waiter on the same key gets the cancellation error.
type Cache struct {
	registry SchemaRegistry
	query    RecordTypeQuery
	mode     ExecutionMode
	ns       Namespace
	settings Settings
	logger   *zap.Logger

	mu      sync.RWMutex
	flights singleflight.Group

	global      map[string]string // nil until loaded
	objects     map[string]*models.ObjectMetadata
	handles     map[string]map[string]models.FieldHandle
	fields      map[string]map[string]*models.FieldMetadata
	complete    map[string]bool // objects whose every field is described
	recordTypes map[string]*recordTypeSet
}

// New creates an empty Cache over the given collaborators
func New(registry SchemaRegistry, query RecordTypeQuery, opts ...Option) *Cache {
	c := &Cache{
		registry:    registry,
		query:       query,
		mode:        StaticMode(false),
		ns:          utils.NewNamespacePrefix(""),
		settings:    DefaultSettings(),
		logger:      zap.NewNop(),
		objects:     make(map[string]*models.ObjectMetadata),
		handles:     make(map[string]map[string]models.FieldHandle),
		fields:      make(map[string]map[string]*models.FieldMetadata),
		complete:    make(map[string]bool),
		recordTypes: make(map[string]*recordTypeSet),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsRunningTest exposes the execution mode the cache was built with
func (c *Cache) IsRunningTest() bool {
	return c.mode.IsRunningTest()
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *Cache) fieldKey(name string) string {
	return strings.ToLower(c.ns.StripPrefix(strings.TrimSpace(name)))
}

// readThrough returns the cached value when get finds one; otherwise it runs
// load once per flight key and stores the result with put. Failed loads are
// not cached.
func readThrough[V any](c *Cache, flightKey string, get func() (V, bool), load func() (V, error), put func(V)) (V, error) {
	c.mu.RLock()
	v, ok := get()
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := c.flights.Do(flightKey, func() (interface{}, error) {
		// Double check: another flight may have finished between the read and Do
		c.mu.RLock()
		v, ok := get()
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := load()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		put(v)
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}
