/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore stores one entity type per table, keyed by the single
partition key attribute registered for the type in the registry package:

	registry.RegisterKeySchema[User](registry.KeySchema{PartitionKey: "emp_id"})

	store, err := ddb.NewDynamodbDataStore[User](ctx, ddb.ClientOptions{
	    Region:   "us-east-1",
	    Endpoint: "http://localhost:8000", // DynamoDB Local, optional
	}, "crud_op")

Operations map one-to-one onto DynamoDB calls:
  - GetOne: GetItem, missing items surface as errors.NotFoundError
  - Put: PutItem, unconditional
  - Update: UpdateItem with a SET expression and UPDATED_NEW return values,
    optionally conditioned on the item existing
  - Delete: DeleteItem, idempotent
  - Scan: paginated Scan, optionally capped at a maximum item count
  - Ping: DescribeTable

Retries are left to the SDK retryer configured through ClientOptions.MaxAttempts.
*/
package ddb
