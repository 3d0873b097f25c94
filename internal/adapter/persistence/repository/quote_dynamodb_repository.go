package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"fleetflow_quotes/internal/domain/entities"
	"fleetflow_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "multi_state_quotes"
	maxUpdateAttempts      = 5
)

// ErrQuoteContention is returned when an update keeps colliding with
// concurrent writers and exhausts its retries.
var ErrQuoteContention = errors.New("quote update retries exhausted")

// quoteItem is the DynamoDB shape of a quote. The aggregate is deeply nested
// and only ever read whole, so it is stored as a JSON document with the
// fields needed for listing lifted to top-level attributes.
//
// Table requirements:
//   - PK: id (string)
//
// version is the optimistic-concurrency counter: every write bumps it and
// Update's conditional put rejects writers that read a stale version.
type quoteItem struct {
	ID           string `dynamodbav:"id"`
	Status       string `dynamodbav:"status"`
	LastModified string `dynamodbav:"last_modified"`
	Version      int64  `dynamodbav:"version"`
	Payload      string `dynamodbav:"payload"`
}

// QuoteDynamoRepository persists quotes in DynamoDB. It is an optional
// alternative to the in-memory store for deployments that need the quote
// book to survive restarts; both sit behind IQuoteRepository.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.MultiStateConsolidatedQuote) (entities.MultiStateConsolidatedQuote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}
	it.Version = 1
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.MultiStateConsolidatedQuote, error) {
	it, found, err := r.getItem(ctx, id)
	if err != nil || !found {
		return entities.MultiStateConsolidatedQuote{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) getItem(ctx context.Context, id string) (quoteItem, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return quoteItem{}, false, err
	}
	if len(out.Item) == 0 {
		return quoteItem{}, false, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return quoteItem{}, false, err
	}
	return it, true, nil
}

func (r *QuoteDynamoRepository) GetAll(ctx context.Context) ([]entities.MultiStateConsolidatedQuote, error) {
	quotes := []entities.MultiStateConsolidatedQuote{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			q, err := fromQuoteItem(it)
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].LastModified.After(quotes[j].LastModified)
	})
	return quotes, nil
}

// Update reads the quote, applies fn, and writes the result back with a
// conditional put on the version read. A concurrent writer bumps the version
// first, the condition fails, and the whole sequence is retried against the
// fresh record, so no writer's changes are lost.
func (r *QuoteDynamoRepository) Update(ctx context.Context, id string, fn func(q *entities.MultiStateConsolidatedQuote) error) (entities.MultiStateConsolidatedQuote, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		it, found, err := r.getItem(ctx, id)
		if err != nil || !found {
			return entities.MultiStateConsolidatedQuote{}, err
		}

		q, err := fromQuoteItem(it)
		if err != nil {
			return entities.MultiStateConsolidatedQuote{}, err
		}
		if err := fn(&q); err != nil {
			return entities.MultiStateConsolidatedQuote{}, err
		}

		next, err := toQuoteItem(q)
		if err != nil {
			return entities.MultiStateConsolidatedQuote{}, err
		}
		next.Version = it.Version + 1
		av, err := attributevalue.MarshalMap(next)
		if err != nil {
			return entities.MultiStateConsolidatedQuote{}, err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("version = :expected"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(it.Version, 10)},
			},
		})
		if err != nil {
			var conditionFailed *types.ConditionalCheckFailedException
			if errors.As(err, &conditionFailed) {
				continue
			}
			return entities.MultiStateConsolidatedQuote{}, err
		}
		return q, nil
	}
	return entities.MultiStateConsolidatedQuote{}, ErrQuoteContention
}

func toQuoteItem(q entities.MultiStateConsolidatedQuote) (quoteItem, error) {
	payload, err := json.Marshal(q)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:           q.ID,
		Status:       string(q.Status),
		LastModified: q.LastModified.UTC().Format(time.RFC3339Nano),
		Payload:      string(payload),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.MultiStateConsolidatedQuote, error) {
	var q entities.MultiStateConsolidatedQuote
	if err := json.Unmarshal([]byte(it.Payload), &q); err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}
	return q, nil
}
