/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import "github.com/suparena/userstore/registry"

// KeyAttribute is the partition key of the users table.
const KeyAttribute = "emp_id"

// Attribute names of the mutable fields.
const (
	AttrEmpName = "emp_name"
	AttrDoj     = "doj"
)

// User is an employee record.
type User struct {

	// Employee identifier. Immutable once created.
	// Required: true
	EmpID string `json:"emp_id" dynamodbav:"emp_id"`

	// Employee name.
	// Required: true
	EmpName string `json:"emp_name" dynamodbav:"emp_name"`

	// Date of joining, stored as given.
	// Required: true
	Doj string `json:"doj" dynamodbav:"doj"`
}

// MutableAttributes returns the attributes an update may set, keyed by attribute name.
func (u User) MutableAttributes() map[string]interface{} {
	return map[string]interface{}{
		AttrEmpName: u.EmpName,
		AttrDoj:     u.Doj,
	}
}

func init() {
	registry.RegisterKeySchema[User](registry.KeySchema{PartitionKey: KeyAttribute})
}
