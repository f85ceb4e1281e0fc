package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gera_wallet/internal/domain/entities"
	"gera_wallet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPassesTableName = "passes"

type passItem struct {
	SerialNumber string `dynamodbav:"serial_number"`
	CardType     string `dynamodbav:"card_type"`
	CreatedAt    string `dynamodbav:"created_at"`
	Pass         string `dynamodbav:"pass"`
	Artifact     []byte `dynamodbav:"artifact"`
	ExpiresAt    int64  `dynamodbav:"expires_at,omitempty"`
}

// DynamoDBAPI is the subset of the DynamoDB client the repository uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// PassDynamoRepository persists passes in DynamoDB.
//
// Table requirements:
//   - PK: serial_number (string)
//   - optional TTL attribute: expires_at (set only when ttl > 0)

type PassDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	ttl       time.Duration
}

var _ interfaces.IPassRepository = (*PassDynamoRepository)(nil)

func NewPassDynamoRepository(ddb DynamoDBAPI, tableName string, ttl time.Duration) *PassDynamoRepository {
	if tableName == "" {
		tableName = defaultPassesTableName
	}
	return &PassDynamoRepository{ddb: ddb, tableName: tableName, ttl: ttl}
}

func (r *PassDynamoRepository) Create(ctx context.Context, p entities.StoredPass) (entities.StoredPass, error) {
	it, err := toPassItem(p, r.ttl)
	if err != nil {
		return entities.StoredPass{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.StoredPass{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "serial_number",
		},
	})
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return entities.StoredPass{}, interfaces.ErrPassAlreadyExists
	}
	if err != nil {
		return entities.StoredPass{}, err
	}
	return p, nil
}

func (r *PassDynamoRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (entities.StoredPass, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"serial_number": &types.AttributeValueMemberS{Value: serialNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StoredPass{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoredPass{}, nil
	}

	var it passItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoredPass{}, err
	}
	return fromPassItem(it)
}

func toPassItem(p entities.StoredPass, ttl time.Duration) (passItem, error) {
	passJSON, err := json.Marshal(p.Pass)
	if err != nil {
		return passItem{}, err
	}
	it := passItem{
		SerialNumber: p.SerialNumber,
		CardType:     string(p.CardType),
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
		Pass:         string(passJSON),
		Artifact:     p.Artifact,
	}
	if ttl > 0 {
		it.ExpiresAt = p.CreatedAt.Add(ttl).Unix()
	}
	return it, nil
}

func fromPassItem(it passItem) (entities.StoredPass, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var pass entities.Pass
	if it.Pass != "" {
		if err := json.Unmarshal([]byte(it.Pass), &pass); err != nil {
			return entities.StoredPass{}, err
		}
	}
	return entities.StoredPass{
		SerialNumber: it.SerialNumber,
		CardType:     entities.CardType(it.CardType),
		CreatedAt:    createdAt,
		Pass:         pass,
		Artifact:     it.Artifact,
	}, nil
}
