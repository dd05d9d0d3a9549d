/*
Package storagemodels defines the parameter types shared by datastore implementations.

Key Types:

ScanParams:
Parameters for a full-table scan:

	params := &ScanParams{
	    PageSize:       aws.Int32(100),
	    MaxItems:       5000,
	    ConsistentRead: aws.Bool(true),
	}

UpdateOptions:
Configuration for partial updates, built from functional options:

	attrs, err := store.Update(ctx, "E1", updates, storagemodels.WithRequireExisting())

These types provide a consistent interface across different storage implementations.
*/
package storagemodels
