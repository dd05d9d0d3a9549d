//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storeerrors "github.com/suparena/userstore/errors"
	"github.com/suparena/userstore/storagemodels"
)

// getIntegrationStore connects to the table named by DDB_TEST_TABLE_NAME.
// AWS_ENDPOINT may point at DynamoDB Local.
func getIntegrationStore(t *testing.T) *DynamodbDataStore[testEmployee] {
	t.Helper()
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	tableName := os.Getenv("DDB_TEST_TABLE_NAME")
	if tableName == "" {
		t.Skip("DDB_TEST_TABLE_NAME not set, skipping integration test")
	}

	store, err := NewDynamodbDataStore[testEmployee](context.Background(), ClientOptions{
		Region:    os.Getenv("AWS_REGION"),
		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		Endpoint:  os.Getenv("AWS_ENDPOINT"),
	}, tableName, WithConsistentRead(true))
	require.NoError(t, err)
	return store
}

func TestIntegrationLifecycle(t *testing.T) {
	ctx := context.Background()
	store := getIntegrationStore(t)

	require.NoError(t, store.Ping(ctx))

	emp := testEmployee{EmpID: "it-E1", EmpName: "Alice", Doj: "2020-01-01"}
	require.NoError(t, store.Put(ctx, emp))
	t.Cleanup(func() { _ = store.Delete(context.Background(), emp.EmpID) })

	got, err := store.GetOne(ctx, emp.EmpID)
	require.NoError(t, err)
	assert.Equal(t, emp, *got)

	attrs, err := store.Update(ctx, emp.EmpID, map[string]interface{}{
		"emp_name": "Alicia",
		"doj":      "2020-01-02",
	}, storagemodels.WithRequireExisting())
	require.NoError(t, err)
	assert.Equal(t, "Alicia", attrs["emp_name"])
	assert.Equal(t, "2020-01-02", attrs["doj"])

	items, err := store.Scan(ctx, &storagemodels.ScanParams{})
	require.NoError(t, err)
	assert.Contains(t, items, testEmployee{EmpID: "it-E1", EmpName: "Alicia", Doj: "2020-01-02"})

	require.NoError(t, store.Delete(ctx, emp.EmpID))
	require.NoError(t, store.Delete(ctx, emp.EmpID))

	_, err = store.GetOne(ctx, emp.EmpID)
	assert.True(t, storeerrors.IsNotFound(err))

	_, err = store.Update(ctx, emp.EmpID, map[string]interface{}{"emp_name": "Ghost"}, storagemodels.WithRequireExisting())
	assert.True(t, storeerrors.IsConditionFailed(err))
}
