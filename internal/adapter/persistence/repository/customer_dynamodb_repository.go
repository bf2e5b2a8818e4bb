package repository

import (
	"context"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	ID             string `dynamodbav:"id"`
	FullName       string `dynamodbav:"full_name"`
	Phone          string `dynamodbav:"phone"`
	CarName        string `dynamodbav:"car_name"`
	CarYear        string `dynamodbav:"car_year"`
	CarSegmentID   string `dynamodbav:"car_segment_id"`
	LicensePlate   string `dynamodbav:"license_plate,omitempty"`
	CustomerSource string `dynamodbav:"customer_source,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

// summaries loads the customer summaries for ids, keyed by id. Missing ids
// are absent from the result.
func (r *CustomerDynamoRepository) summaries(ctx context.Context, ids []string) (map[string]entities.CustomerSummary, error) {
	out := make(map[string]entities.CustomerSummary, len(ids))
	const batchSize = 100
	for start := 0; start < len(ids); start += batchSize {
		end := min(start+batchSize, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		req := map[string]types.KeysAndAttributes{r.tableName: {Keys: keys}}
		for len(req) > 0 {
			res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: req})
			if err != nil {
				return nil, err
			}
			var rows []customerItem
			if err := attributevalue.UnmarshalListOfMaps(res.Responses[r.tableName], &rows); err != nil {
				return nil, err
			}
			for _, it := range rows {
				out[it.ID] = fromCustomerItem(it).Summary()
			}
			req = res.UnprocessedKeys
		}
	}
	return out, nil
}

func (r *CustomerDynamoRepository) summary(ctx context.Context, id string) (entities.CustomerSummary, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.CustomerSummary{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomerSummary{}, nil
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomerSummary{}, err
	}
	return fromCustomerItem(it).Summary(), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:             c.ID,
		FullName:       c.FullName,
		Phone:          c.Phone,
		CarName:        c.CarName,
		CarYear:        c.CarYear,
		CarSegmentID:   c.CarSegmentID,
		LicensePlate:   c.LicensePlate,
		CustomerSource: c.CustomerSource,
		CreatedAt:      formatTime(c.CreatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:             it.ID,
		FullName:       it.FullName,
		Phone:          it.Phone,
		CarName:        it.CarName,
		CarYear:        it.CarYear,
		CarSegmentID:   it.CarSegmentID,
		LicensePlate:   it.LicensePlate,
		CustomerSource: it.CustomerSource,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
