/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	storeerrors "github.com/suparena/userstore/errors"
	"github.com/suparena/userstore/storagemodels"
)

const keyPlaceholder = "#pk"

// Update sets the given attributes on the item stored under key and returns the
// new values of the updated attributes (UPDATED_NEW).
//
// Without storagemodels.WithRequireExisting, DynamoDB creates an item holding only
// the key and the updated attributes when none exists. With it, the write is
// conditioned on attribute_exists of the key and a missing item yields an
// errors.ConditionFailedError.
func (d *DynamodbDataStore[T]) Update(ctx context.Context, key string, updates map[string]interface{}, opts ...storagemodels.UpdateOption) (map[string]interface{}, error) {
	keyMap, err := d.buildKey(key)
	if err != nil {
		return nil, err
	}
	if _, ok := updates[d.keyAttr]; ok {
		return nil, storeerrors.NewValidationError(d.keyAttr, "key attribute cannot be updated")
	}

	options := storagemodels.ApplyUpdateOptions(opts...)

	updateExpr, exprAttrNames, exprAttrValues, err := buildUpdateExpression(updates)
	if err != nil {
		return nil, fmt.Errorf("failed to build update expression: %w", err)
	}

	input := &sdk.UpdateItemInput{
		TableName:                 &d.tableName,
		Key:                       keyMap,
		UpdateExpression:          &updateExpr,
		ExpressionAttributeNames:  exprAttrNames,
		ExpressionAttributeValues: exprAttrValues,
		ReturnValues:              types.ReturnValueUpdatedNew,
	}

	var condition string
	if options.RequireExisting {
		condition = fmt.Sprintf("attribute_exists(%s)", keyPlaceholder)
		exprAttrNames[keyPlaceholder] = d.keyAttr
		input.ConditionExpression = &condition
	}

	out, err := d.client.UpdateItem(ctx, input)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, storeerrors.NewConditionFailedErrorForKey("update", fmt.Sprintf("attribute_exists(%s)", d.keyAttr), key, err)
		}
		return nil, fmt.Errorf("UpdateItem failed: %w", err)
	}

	attrs := make(map[string]interface{}, len(out.Attributes))
	if err := attributevalue.UnmarshalMap(out.Attributes, &attrs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated attributes: %w", err)
	}
	return attrs, nil
}

// buildUpdateExpression transforms a map of field->value into:
//   - an "update expression" (e.g., "SET #f0 = :v0, #f1 = :v1")
//   - a corresponding map of expression attribute names
//   - a corresponding map of expression attribute values
//
// Fields are numbered in sorted order so the expression is deterministic.
func buildUpdateExpression(updates map[string]interface{}) (string,
	map[string]string,
	map[string]types.AttributeValue,
	error) {

	if len(updates) == 0 {
		return "", nil, nil, storeerrors.NewValidationError("", "no updates provided")
	}

	fields := make([]string, 0, len(updates))
	for field := range updates {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	setClauses := make([]string, 0, len(fields))
	exprAttrNames := make(map[string]string, len(fields)+1)
	exprAttrValues := make(map[string]types.AttributeValue, len(fields))

	for i, field := range fields {
		placeholderName := fmt.Sprintf("#f%d", i)
		placeholderValue := fmt.Sprintf(":v%d", i)

		av, err := attributevalue.Marshal(updates[field])
		if err != nil {
			return "", nil, nil, fmt.Errorf("unhandled update value type for field '%s': %w", field, err)
		}

		setClauses = append(setClauses, fmt.Sprintf("%s = %s", placeholderName, placeholderValue))
		exprAttrNames[placeholderName] = field
		exprAttrValues[placeholderValue] = av
	}

	return "SET " + strings.Join(setClauses, ", "), exprAttrNames, exprAttrValues, nil
}
