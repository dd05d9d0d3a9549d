/*
Package datastore defines the core interface for the userstore persistence layer.

The main interface is DataStore[T], which provides keyed CRUD operations and a
full-table scan for any entity type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    Update(ctx context.Context, key string, updates map[string]interface{}, opts ...storagemodels.UpdateOption) (map[string]interface{}, error)
	    Delete(ctx context.Context, key string) error
	    Scan(ctx context.Context, params *storagemodels.ScanParams) ([]T, error)
	    Ping(ctx context.Context) error
	}

Implementations:
  - ddb: DynamoDB implementation, one entity type per table
  - mock: In-memory implementation for testing

Put is an upsert and Delete is idempotent in every implementation. Update
upserts unless storagemodels.WithRequireExisting is passed.
*/
package datastore
