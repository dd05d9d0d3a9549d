/*
Package userstore is an HTTP service exposing create, read, update, delete and
list operations over a DynamoDB table of employee records keyed by emp_id.

Each request maps onto exactly one table operation:

	POST   /users            PutItem (upsert)
	GET    /users/{emp_id}   GetItem
	PUT    /users/{emp_id}   UpdateItem (emp_name, doj)
	DELETE /users/{emp_id}   DeleteItem (idempotent)
	GET    /users            Scan

Layout:
  - models: the User record and its key schema
  - datastore: the DataStore[T] interface, with ddb (DynamoDB) and mock implementations
  - errors: semantic store errors
  - internal/...: configuration, logging, metrics, HTTP server, handlers and routing
  - cmd/usersvc: the service binary

The store client is created once at startup and injected into the server:

	store, _ := ddb.NewDynamodbDataStore[models.User](ctx, ddb.ClientOptions{Region: "us-east-1"}, "crud_op")
	srv, _ := server.New(cfg, &logger, store)
*/
package userstore
