/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore interface for testing
package mock

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/userstore/datastore"
	"github.com/suparena/userstore/errors"
	"github.com/suparena/userstore/registry"
	"github.com/suparena/userstore/storagemodels"
)

var _ datastore.DataStore[struct{}] = (*DataStore[struct{}])(nil)

// DataStore is a mock implementation of datastore.DataStore[T] for testing.
//
// Items are held as DynamoDB attribute maps so that partial updates behave the
// way they do against a real table: updating a missing key creates an item
// holding only the key and the updated attributes.
type DataStore[T any] struct {
	mu      sync.RWMutex
	keyAttr string
	items   map[string]map[string]types.AttributeValue
	calls   map[string]int

	getError    error
	putError    error
	updateError error
	deleteError error
	scanError   error
	pingError   error
}

// New creates a new mock DataStore keyed by the attribute registered for T
func New[T any]() *DataStore[T] {
	m := &DataStore[T]{
		items: make(map[string]map[string]types.AttributeValue),
		calls: make(map[string]int),
	}
	if schema, ok := registry.GetKeySchema[T](); ok {
		m.keyAttr = schema.PartitionKey
	}
	return m
}

// WithGetError makes GetOne operations return an error
func (m *DataStore[T]) WithGetError(err error) *DataStore[T] {
	m.getError = err
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithUpdateError makes Update operations return an error
func (m *DataStore[T]) WithUpdateError(err error) *DataStore[T] {
	m.updateError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// WithScanError makes Scan operations return an error
func (m *DataStore[T]) WithScanError(err error) *DataStore[T] {
	m.scanError = err
	return m
}

// WithPingError makes Ping return an error
func (m *DataStore[T]) WithPingError(err error) *DataStore[T] {
	m.pingError = err
	return m
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.record("GetOne")
	if m.getError != nil {
		return nil, m.getError
	}

	m.mu.RLock()
	item, exists := m.items[key]
	m.mu.RUnlock()
	if !exists {
		return nil, errors.NewNotFoundError(typeName[T](), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(item, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Put stores an entity, replacing any entity with the same key
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	m.record("Put")
	if m.putError != nil {
		return m.putError
	}

	item, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return err
	}
	key, ok := item[m.keyAttr].(*types.AttributeValueMemberS)
	if !ok || key.Value == "" {
		return errors.NewValidationError(m.keyAttr, "unable to extract key from entity")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key.Value] = item
	return nil
}

// Update sets attributes on the item stored under key, creating it unless
// storagemodels.WithRequireExisting is given
func (m *DataStore[T]) Update(ctx context.Context, key string, updates map[string]interface{}, opts ...storagemodels.UpdateOption) (map[string]interface{}, error) {
	m.record("Update")
	if m.updateError != nil {
		return nil, m.updateError
	}
	if _, ok := updates[m.keyAttr]; ok {
		return nil, errors.NewValidationError(m.keyAttr, "key attribute cannot be updated")
	}
	if len(updates) == 0 {
		return nil, errors.NewValidationError("", "no updates provided")
	}

	options := storagemodels.ApplyUpdateOptions(opts...)

	m.mu.Lock()
	defer m.mu.Unlock()

	item, exists := m.items[key]
	if !exists {
		if options.RequireExisting {
			return nil, errors.NewConditionFailedErrorForKey("update", "attribute_exists("+m.keyAttr+")", key, nil)
		}
		item = map[string]types.AttributeValue{
			m.keyAttr: &types.AttributeValueMemberS{Value: key},
		}
	}

	updated := make(map[string]types.AttributeValue, len(updates))
	for field, val := range updates {
		av, err := attributevalue.Marshal(val)
		if err != nil {
			return nil, err
		}
		item[field] = av
		updated[field] = av
	}
	m.items[key] = item

	attrs := make(map[string]interface{}, len(updated))
	if err := attributevalue.UnmarshalMap(updated, &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

// Delete removes an entity by key. Missing keys are not an error.
func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	m.record("Delete")
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Scan returns all entities ordered by key, honouring params.MaxItems
func (m *DataStore[T]) Scan(ctx context.Context, params *storagemodels.ScanParams) ([]T, error) {
	m.record("Scan")
	if m.scanError != nil {
		return nil, m.scanError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]T, 0, len(keys))
	for _, k := range keys {
		var entity T
		if err := attributevalue.UnmarshalMap(m.items[k], &entity); err != nil {
			return nil, err
		}
		results = append(results, entity)
		if params != nil && params.MaxItems > 0 && len(results) == params.MaxItems {
			break
		}
	}
	return results, nil
}

// Ping returns the configured ping error, if any
func (m *DataStore[T]) Ping(ctx context.Context) error {
	m.record("Ping")
	return m.pingError
}

// Helper methods for testing

// SetData replaces the stored entities (for testing)
func (m *DataStore[T]) SetData(data map[string]T) error {
	items := make(map[string]map[string]types.AttributeValue, len(data))
	for k, v := range data {
		item, err := attributevalue.MarshalMap(v)
		if err != nil {
			return err
		}
		items[k] = item
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
	return nil
}

// GetData returns a copy of the stored entities (for testing)
func (m *DataStore[T]) GetData() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.items))
	for k, item := range m.items {
		var entity T
		if err := attributevalue.UnmarshalMap(item, &entity); err == nil {
			result[k] = entity
		}
	}
	return result
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Calls returns how many times the named operation was invoked
func (m *DataStore[T]) Calls(op string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[op]
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]map[string]types.AttributeValue)
}

func (m *DataStore[T]) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[op]++
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().Name()
}
