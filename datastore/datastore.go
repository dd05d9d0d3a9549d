/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/userstore/storagemodels"
)

type DataStore[T any] interface {
	// GetOne returns the item stored under key, or an errors.NotFoundError.
	GetOne(ctx context.Context, key string) (*T, error)

	// Put writes entity unconditionally, replacing any item with the same key.
	Put(ctx context.Context, entity T) error

	// Update sets the given attributes on the item stored under key and returns
	// the updated attributes as stored. The key attribute itself cannot be updated.
	Update(ctx context.Context, key string, updates map[string]interface{}, opts ...storagemodels.UpdateOption) (map[string]interface{}, error)

	// Delete removes the item stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Scan(ctx context.Context, params *storagemodels.ScanParams) ([]T, error)

	// Ping checks that the backing table is reachable.
	Ping(ctx context.Context) error
}
