package storage

import (
	"context"

	"github.com/Utiqano/football/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type SessionStorage interface {
	Get(ctx context.Context, token string) (*Session, error)
	Put(ctx context.Context, session *Session) error
	Delete(ctx context.Context, token string) error
}

type DynamoSessionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoSessionStorage) Get(ctx context.Context, token string) (*Session, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": token})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: GetItem failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrSessionNotFound
	}

	var session Session
	if err := attributevalue.UnmarshalMap(out.Item, &session); err != nil {
		logging.Log.Errorf("SESSION: failed to unmarshal session: %v", err)
		return nil, err
	}
	return &session, nil
}

func (s *DynamoSessionStorage) Put(ctx context.Context, session *Session) error {
	item, err := attributevalue.MarshalMap(session)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal session: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to store session: %v", err)
		return err
	}
	return nil
}

func (s *DynamoSessionStorage) Delete(ctx context.Context, token string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": token})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to delete session: %v", err)
		return err
	}
	return nil
}
