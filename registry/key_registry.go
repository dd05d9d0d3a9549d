/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// KeySchema describes the primary key of the table a Go type is persisted in.
type KeySchema struct {
	// PartitionKey is the attribute name of the hash key (e.g. "emp_id").
	PartitionKey string
}

var (
	keySchemaRegistry = make(map[reflect.Type]KeySchema)
	mu                sync.RWMutex
)

// RegisterKeySchema associates a Go type T with the key schema of its table.
// Registering a type again replaces the previous schema.
func RegisterKeySchema[T any](schema KeySchema) {
	t := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()
	keySchemaRegistry[t] = schema
}

// GetKeySchema retrieves the key schema for type T, if any.
func GetKeySchema[T any]() (KeySchema, bool) {
	t := reflect.TypeFor[T]()

	mu.RLock()
	defer mu.RUnlock()
	s, ok := keySchemaRegistry[t]
	return s, ok
}

// UnregisterKeySchema removes the key schema for type T.
func UnregisterKeySchema[T any]() {
	t := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()
	delete(keySchemaRegistry, t)
}
