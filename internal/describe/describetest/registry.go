// Package describetest provides in-memory collaborators for describe.Cache
// that count the calls made to them.
package describetest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ryanguest/HEDAP/pkg/models"
	"github.com/ryanguest/HEDAP/pkg/utils"
)

// Registry method names accepted by Calls
const (
	MethodListObjects      = "ListObjects"
	MethodDescribeObject   = "DescribeObject"
	MethodListFieldHandles = "ListFieldHandles"
	MethodDescribeField    = "DescribeField"
)

type object struct {
	meta   models.ObjectMetadata
	fields []models.FieldMetadata
}

// Registry is an in-memory describe.SchemaRegistry
type Registry struct {
	mu      sync.Mutex
	objects map[string]*object
	tokens  map[string]models.FieldMetadata // field handle token -> field
	calls   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		objects: make(map[string]*object),
		tokens:  make(map[string]models.FieldMetadata),
		calls:   make(map[string]int),
	}
}

// AddObject registers an object and its fields
func (r *Registry) AddObject(meta models.ObjectMetadata, fields ...models.FieldMetadata) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range fields {
		fields[i].ObjectName = meta.Name
	}
	r.objects[strings.ToLower(meta.Name)] = &object{meta: meta, fields: fields}
	return r
}

// Calls returns how many times method has been called
func (r *Registry) Calls(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[method]
}

func (r *Registry) ListObjects(ctx context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[MethodListObjects]++

	names := make(map[string]string, len(r.objects))
	for key, obj := range r.objects {
		names[key] = obj.meta.Name
	}
	return names, nil
}

// DescribeObject returns a fresh copy on every call
func (r *Registry) DescribeObject(ctx context.Context, token string) (*models.ObjectMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[MethodDescribeObject]++

	obj, ok := r.objects[strings.ToLower(token)]
	if !ok {
		return nil, fmt.Errorf("no such object: %s", token)
	}
	meta := obj.meta
	return &meta, nil
}

func (r *Registry) ListFieldHandles(ctx context.Context, token string) ([]models.FieldHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[MethodListFieldHandles]++

	obj, ok := r.objects[strings.ToLower(token)]
	if !ok {
		return nil, fmt.Errorf("no such object: %s", token)
	}
	handles := make([]models.FieldHandle, 0, len(obj.fields))
	for _, f := range obj.fields {
		id := utils.GenerateID()
		r.tokens[id] = f
		handles = append(handles, models.FieldHandle{ObjectName: obj.meta.Name, FieldName: f.Name, Token: id})
	}
	return handles, nil
}

func (r *Registry) DescribeField(ctx context.Context, handle models.FieldHandle) (*models.FieldMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[MethodDescribeField]++

	f, ok := r.tokens[handle.Token]
	if !ok {
		return nil, fmt.Errorf("stale field handle %s.%s", handle.ObjectName, handle.FieldName)
	}
	return &f, nil
}
