package storage

import (
	"context"

	"github.com/Utiqano/football/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ParticipationStorage interface {
	Get(ctx context.Context, weekDate, userID string) (*Participation, error)
	GetByWeek(ctx context.Context, weekDate string) ([]*Participation, error)
	Upsert(ctx context.Context, p *Participation) error
}

type DynamoParticipationStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoParticipationStorage) Get(ctx context.Context, weekDate, userID string) (*Participation, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": weekDate, "SK": userID})
	if err != nil {
		logging.Log.Errorf("ATTEND: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("ATTEND: GetItem failed for week %s: %v", weekDate, err)
		return nil, err
	}
	if out.Item == nil {
		// Unanswered, not an error.
		return nil, nil
	}

	var p Participation
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		logging.Log.Errorf("ATTEND: failed to unmarshal participation: %v", err)
		return nil, err
	}
	return &p, nil
}

func (s *DynamoParticipationStorage) GetByWeek(ctx context.Context, weekDate string) ([]*Participation, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :week"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":week": &types.AttributeValueMemberS{Value: weekDate},
		},
	})
	if err != nil {
		logging.Log.Errorf("ATTEND: failed to query week %s: %v", weekDate, err)
		return nil, err
	}

	var answers []*Participation
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &answers); err != nil {
		logging.Log.Errorf("ATTEND: failed to unmarshal participation list: %v", err)
		return nil, err
	}
	return answers, nil
}

// Upsert writes the answer unconditionally: submitting again overwrites
// the previous answer for the same (week, user) key.
func (s *DynamoParticipationStorage) Upsert(ctx context.Context, p *Participation) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		logging.Log.Errorf("ATTEND: failed to marshal participation: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("ATTEND: failed to upsert participation: %v", err)
		return err
	}
	return nil
}
