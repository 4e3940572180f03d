package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/alex-pricope/gift-selection-service/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoRecordStorage stores the whole selection list as a single item, so a
// save replaces the full record set just like the file backend does. DynamoDB
// caps an item at 400 KB, which bounds the store to a few thousand selections.
type DynamoRecordStorage struct {
	Client    *dynamodb.Client
	TableName string
	ItemKey   string
}

// maxRecordSetBytes leaves headroom under the 400 KB item limit for the key,
// attribute names and the other attributes.
const maxRecordSetBytes = 400*1024 - 1024

type recordSetItem struct {
	PK        string    `dynamodbav:"PK"`
	Records   string    `dynamodbav:"Records"`
	Count     int       `dynamodbav:"Count"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt"`
}

func (s *DynamoRecordStorage) Load(ctx context.Context) ([]*Selection, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": s.ItemKey})
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to marshal key %s: %v", s.ItemKey, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &s.TableName,
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		logging.Log.Errorf("STORAGE: GetItem for %s failed: %v", s.ItemKey, err)
		return nil, err
	}
	if out.Item == nil {
		return []*Selection{}, nil
	}

	var item recordSetItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return decodeRecords([]byte(item.Records))
}

func (s *DynamoRecordStorage) Save(ctx context.Context, selections []*Selection) error {
	b, err := encodeRecords(selections)
	if err != nil {
		return err
	}
	if len(b) > maxRecordSetBytes {
		logging.Log.Errorf("STORAGE: record set of %d selections is %d bytes, over the DynamoDB item limit", len(selections), len(b))
		return fmt.Errorf("%w: %d bytes", ErrRecordSetTooLarge, len(b))
	}

	item, err := attributevalue.MarshalMap(&recordSetItem{
		PK:        s.ItemKey,
		Records:   string(b),
		Count:     len(selections),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to marshal record set: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("STORAGE: failed to put record set: %v", err)
		return err
	}
	return nil
}
