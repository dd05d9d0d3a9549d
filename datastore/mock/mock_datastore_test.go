/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"testing"

	"github.com/suparena/userstore/datastore/mock"
	"github.com/suparena/userstore/errors"
	"github.com/suparena/userstore/registry"
	"github.com/suparena/userstore/storagemodels"
)

type TestEntity struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
	Note string `dynamodbav:"note,omitempty"`
}

func init() {
	registry.RegisterKeySchema[TestEntity](registry.KeySchema{PartitionKey: "id"})
}

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()

		entity := TestEntity{ID: "123", Name: "Test"}
		if err := mockStore.Put(ctx, entity); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		retrieved, err := mockStore.GetOne(ctx, "123")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if retrieved.ID != "123" || retrieved.Name != "Test" {
			t.Fatalf("Retrieved entity mismatch: %+v", retrieved)
		}

		if err := mockStore.Delete(ctx, "123"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := mockStore.Delete(ctx, "123"); err != nil {
			t.Fatalf("Second delete should succeed, got: %v", err)
		}

		_, err = mockStore.GetOne(ctx, "123")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
	})

	t.Run("PutRequiresKey", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()

		err := mockStore.Put(ctx, TestEntity{Name: "NoKey"})
		if !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got: %v", err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()
		_ = mockStore.Put(ctx, TestEntity{ID: "1", Name: "One", Note: "keep"})

		attrs, err := mockStore.Update(ctx, "1", map[string]interface{}{"name": "Uno"})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if len(attrs) != 1 || attrs["name"] != "Uno" {
			t.Fatalf("Expected only updated attributes, got: %v", attrs)
		}

		got, _ := mockStore.GetOne(ctx, "1")
		if got.Name != "Uno" || got.Note != "keep" {
			t.Fatalf("Update should only touch the given attributes: %+v", got)
		}

		// upsert creates a partial item
		if _, err := mockStore.Update(ctx, "2", map[string]interface{}{"name": "Two"}); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		got, _ = mockStore.GetOne(ctx, "2")
		if got.ID != "2" || got.Name != "Two" {
			t.Fatalf("Upserted entity mismatch: %+v", got)
		}

		_, err = mockStore.Update(ctx, "3", map[string]interface{}{"name": "Three"}, storagemodels.WithRequireExisting())
		if !errors.IsConditionFailed(err) {
			t.Fatalf("Expected condition failed error, got: %v", err)
		}

		_, err = mockStore.Update(ctx, "1", map[string]interface{}{"id": "9"})
		if !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error for key update, got: %v", err)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()

		putErr := errors.NewValidationError("name", "required")
		mockStore.WithPutError(putErr)
		if err := mockStore.Put(ctx, TestEntity{ID: "123", Name: "Test"}); err != putErr {
			t.Fatalf("Expected put error, got: %v", err)
		}

		deleteErr := errors.NewConditionFailedError("delete", "version mismatch")
		mockStore.WithDeleteError(deleteErr)
		if err := mockStore.Delete(ctx, "123"); err != deleteErr {
			t.Fatalf("Expected delete error, got: %v", err)
		}

		scanErr := errors.NewValidationError("", "throttled")
		mockStore.WithScanError(scanErr)
		if _, err := mockStore.Scan(ctx, nil); err != scanErr {
			t.Fatalf("Expected scan error, got: %v", err)
		}
	})

	t.Run("Scan", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()

		for _, e := range []TestEntity{{ID: "3", Name: "Three"}, {ID: "1", Name: "One"}, {ID: "2", Name: "Two"}} {
			_ = mockStore.Put(ctx, e)
		}

		results, err := mockStore.Scan(ctx, &storagemodels.ScanParams{})
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if len(results) != 3 || results[0].ID != "1" || results[2].ID != "3" {
			t.Fatalf("Expected 3 results ordered by key, got %+v", results)
		}

		results, _ = mockStore.Scan(ctx, &storagemodels.ScanParams{MaxItems: 2})
		if len(results) != 2 {
			t.Fatalf("Expected 2 results with MaxItems, got %d", len(results))
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()

		testData := map[string]TestEntity{
			"1": {ID: "1", Name: "One"},
			"2": {ID: "2", Name: "Two"},
		}
		if err := mockStore.SetData(testData); err != nil {
			t.Fatalf("SetData failed: %v", err)
		}

		if mockStore.Count() != 2 {
			t.Fatalf("Expected count 2, got %d", mockStore.Count())
		}

		data := mockStore.GetData()
		if len(data) != 2 || data["2"].Name != "Two" {
			t.Fatalf("Unexpected data: %+v", data)
		}

		_, _ = mockStore.GetOne(ctx, "1")
		if mockStore.Calls("GetOne") != 1 || mockStore.Calls("Put") != 0 {
			t.Fatalf("Unexpected call counts: GetOne=%d Put=%d", mockStore.Calls("GetOne"), mockStore.Calls("Put"))
		}

		mockStore.Clear()
		if mockStore.Count() != 0 {
			t.Fatalf("Expected count 0 after clear, got %d", mockStore.Count())
		}
	})
}
