/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// ScanParams defines parameters for a full-table Scan.
type ScanParams struct {
	// PageSize is the number of items requested per Scan page.
	// Nil leaves the page size to the store (1 MB of data per page for DynamoDB).
	PageSize *int32
	// MaxItems caps the number of items returned across all pages. Zero means no cap.
	MaxItems int
	// ConsistentRead requests strongly consistent reads.
	ConsistentRead *bool
}

// UpdateOptions configures a partial update.
type UpdateOptions struct {
	// RequireExisting rejects the update when no item exists for the key,
	// instead of creating a new item holding only the updated attributes.
	RequireExisting bool
}

// UpdateOption is a functional option for configuring updates
type UpdateOption func(*UpdateOptions)

// DefaultUpdateOptions returns default update options (upsert semantics)
func DefaultUpdateOptions() UpdateOptions {
	return UpdateOptions{}
}

// WithRequireExisting makes the update fail with a condition error on a missing key
func WithRequireExisting() UpdateOption {
	return func(opts *UpdateOptions) {
		opts.RequireExisting = true
	}
}

// ApplyUpdateOptions folds opts over the defaults.
func ApplyUpdateOptions(opts ...UpdateOption) UpdateOptions {
	options := DefaultUpdateOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
