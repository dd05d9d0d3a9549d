/*
Package registry associates Go types with the key schema of the table they are
stored in.

Datastores look up the schema for their entity type instead of taking the key
attribute as a constructor argument, so the model package stays the single
place that knows how an entity is keyed:

	func init() {
	    registry.RegisterKeySchema[User](registry.KeySchema{PartitionKey: "emp_id"})
	}

	schema, ok := registry.GetKeySchema[User]()

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
