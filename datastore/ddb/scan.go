/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/userstore/storagemodels"
)

// Scan reads every item in the table, following LastEvaluatedKey across pages,
// and stops early once params.MaxItems items have been collected.
// The returned slice is never nil.
func (d *DynamodbDataStore[T]) Scan(ctx context.Context, params *storagemodels.ScanParams) ([]T, error) {
	if params == nil {
		params = &storagemodels.ScanParams{}
	}

	input := &sdk.ScanInput{
		TableName:      &d.tableName,
		Limit:          params.PageSize,
		ConsistentRead: params.ConsistentRead,
	}

	results := make([]T, 0)
	paginator := sdk.NewScanPaginator(d.client, input)
	for pageNumber := 1; paginator.HasMorePages(); pageNumber++ {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("Scan failed on page %d: %w", pageNumber, err)
		}

		var page []T
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scan page %d: %w", pageNumber, err)
		}
		results = append(results, page...)

		if params.MaxItems > 0 && len(results) >= params.MaxItems {
			return results[:params.MaxItems], nil
		}
	}

	return results, nil
}
