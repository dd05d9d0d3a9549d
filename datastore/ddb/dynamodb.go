/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	storeerrors "github.com/suparena/userstore/errors"
	"github.com/suparena/userstore/registry"
)

// Client is the subset of the DynamoDB API used by DynamodbDataStore.
type Client interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *sdk.UpdateItemInput, optFns ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
	DescribeTable(ctx context.Context, params *sdk.DescribeTableInput, optFns ...func(*sdk.Options)) (*sdk.DescribeTableOutput, error)
}

var _ Client = (*sdk.Client)(nil)

// ClientOptions holds the connection parameters for a DynamoDB client.
type ClientOptions struct {
	Region string
	// AccessKey and SecretKey select static credentials. When either is empty
	// the default AWS credential chain is used.
	AccessKey string
	SecretKey string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
	// MaxAttempts overrides the SDK retryer's attempt count when > 0.
	MaxAttempts int
}

// DynamodbDataStore implements datastore.DataStore[T] by using AWS DynamoDB as the underlying data store.
// Each item of type T is keyed by the single partition key registered for T.
type DynamodbDataStore[T any] struct {
	client         Client
	tableName      string
	keyAttr        string
	typeName       string
	consistentRead bool
}

// Option configures a DynamodbDataStore.
type Option func(*storeOptions)

type storeOptions struct {
	consistentRead bool
}

// WithConsistentRead makes GetOne use strongly consistent reads.
func WithConsistentRead(enabled bool) Option {
	return func(o *storeOptions) {
		o.consistentRead = enabled
	}
}

// NewDynamoDBClient initializes a DynamoDB client from opts.
func NewDynamoDBClient(ctx context.Context, opts ClientOptions) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}
	if opts.MaxAttempts > 0 {
		loadOpts = append(loadOpts, config.WithRetryMaxAttempts(opts.MaxAttempts))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

// NewDynamodbDataStore constructs a DynamodbDataStore for type T backed by a new client.
func NewDynamodbDataStore[T any](ctx context.Context, clientOpts ClientOptions, tableName string, opts ...Option) (*DynamodbDataStore[T], error) {
	client, err := NewDynamoDBClient(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewWithClient[T](client, tableName, opts...)
}

// NewWithClient constructs a DynamodbDataStore for type T on an existing client.
// T must have a key schema registered with the registry package.
func NewWithClient[T any](client Client, tableName string, opts ...Option) (*DynamodbDataStore[T], error) {
	if tableName == "" {
		return nil, storeerrors.NewValidationError("tableName", "must not be empty")
	}

	schema, ok := registry.GetKeySchema[T]()
	if !ok || schema.PartitionKey == "" {
		return nil, fmt.Errorf("%w: %s", storeerrors.ErrNoKeySchema, reflect.TypeFor[T]())
	}

	var o storeOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &DynamodbDataStore[T]{
		client:         client,
		tableName:      tableName,
		keyAttr:        schema.PartitionKey,
		typeName:       reflect.TypeFor[T]().Name(),
		consistentRead: o.consistentRead,
	}, nil
}

// TableName returns the name of the backing table.
func (d *DynamodbDataStore[T]) TableName() string {
	return d.tableName
}

// GetOne retrieves a single item from DynamoDB using a string key.
// It returns an errors.NotFoundError if no item is stored under key.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	keyMap, err := d.buildKey(key)
	if err != nil {
		return nil, err
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &d.tableName,
		Key:            keyMap,
		ConsistentRead: aws.Bool(d.consistentRead),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, storeerrors.NewNotFoundError(d.typeName, key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores entity unconditionally. An existing item with the same key is replaced.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	keyVal, ok := av[d.keyAttr].(*types.AttributeValueMemberS)
	if !ok || keyVal.Value == "" {
		return storeerrors.NewValidationError(d.keyAttr, "key attribute must be a non-empty string")
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes an item from DynamoDB using a string key.
// DynamoDB treats deleting a missing key as success, and so does Delete.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	keyMap, err := d.buildKey(key)
	if err != nil {
		return err
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

// Ping describes the backing table and reports an error unless it is ACTIVE.
func (d *DynamodbDataStore[T]) Ping(ctx context.Context) error {
	out, err := d.client.DescribeTable(ctx, &sdk.DescribeTableInput{
		TableName: &d.tableName,
	})
	if err != nil {
		return fmt.Errorf("DescribeTable failed: %w", err)
	}
	if out.Table == nil {
		return fmt.Errorf("table %q not described", d.tableName)
	}
	if status := out.Table.TableStatus; status != types.TableStatusActive {
		return fmt.Errorf("table %q is %s", d.tableName, status)
	}
	return nil
}

// buildKey builds the primary key map for a string key.
func (d *DynamodbDataStore[T]) buildKey(key string) (map[string]types.AttributeValue, error) {
	if key == "" {
		return nil, storeerrors.NewValidationError(d.keyAttr, "must not be empty")
	}
	return map[string]types.AttributeValue{
		d.keyAttr: &types.AttributeValueMemberS{Value: key},
	}, nil
}
