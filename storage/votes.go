package storage

import (
	"context"

	"github.com/Utiqano/football/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type MvpVoteStorage interface {
	Get(ctx context.Context, matchWeek, voterID string) (*MvpVote, error)
	GetByWeek(ctx context.Context, matchWeek string) ([]*MvpVote, error)
	Upsert(ctx context.Context, vote *MvpVote) error
}

type DynamoMvpVoteStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoMvpVoteStorage) Get(ctx context.Context, matchWeek, voterID string) (*MvpVote, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": matchWeek, "SK": voterID})
	if err != nil {
		logging.Log.Errorf("MVP: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("MVP: GetItem failed for week %s: %v", matchWeek, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var vote MvpVote
	if err := attributevalue.UnmarshalMap(out.Item, &vote); err != nil {
		logging.Log.Errorf("MVP: failed to unmarshal vote: %v", err)
		return nil, err
	}
	return &vote, nil
}

func (s *DynamoMvpVoteStorage) GetByWeek(ctx context.Context, matchWeek string) ([]*MvpVote, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :week"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":week": &types.AttributeValueMemberS{Value: matchWeek},
		},
	})
	if err != nil {
		logging.Log.Errorf("MVP: failed to query votes for week %s: %v", matchWeek, err)
		return nil, err
	}

	var votes []*MvpVote
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &votes); err != nil {
		logging.Log.Errorf("MVP: failed to unmarshal vote list: %v", err)
		return nil, err
	}
	return votes, nil
}

// Upsert writes the vote unconditionally: casting again for the same
// (week, voter) key is a change of vote, never an additional vote.
func (s *DynamoMvpVoteStorage) Upsert(ctx context.Context, vote *MvpVote) error {
	item, err := attributevalue.MarshalMap(vote)
	if err != nil {
		logging.Log.Errorf("MVP: failed to marshal vote: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("MVP: failed to upsert vote: %v", err)
		return err
	}
	return nil
}
