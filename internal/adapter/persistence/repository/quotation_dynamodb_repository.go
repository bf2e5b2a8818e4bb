package repository

import (
	"context"
	"sort"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type quotationLineItem struct {
	CarPartID              string   `dynamodbav:"car_part_id"`
	CarPartName            string   `dynamodbav:"car_part_name"`
	SelectedServices       []string `dynamodbav:"selected_services"`
	SelectedRemovableParts []string `dynamodbav:"selected_removable_parts"`
	Price                  int64    `dynamodbav:"price"`
}

type quotationDataItem struct {
	Items       []quotationLineItem `dynamodbav:"items"`
	Customer    customerItem        `dynamodbav:"customer"`
	ServiceType string              `dynamodbav:"service_type"`
	CreatedAt   string              `dynamodbav:"created_at"`
}

type quotationItem struct {
	ID            string            `dynamodbav:"id"`
	CustomerID    string            `dynamodbav:"customer_id"`
	ServiceType   string            `dynamodbav:"service_type"`
	TotalAmount   int64             `dynamodbav:"total_amount"`
	QuotationData quotationDataItem `dynamodbav:"quotation_data"`
	Status        string            `dynamodbav:"status"`
	CreatedAt     string            `dynamodbav:"created_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB and joins
// them with the customers table on read.
//
// Table requirements:
//   - PK: id (string)

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	customers *CustomerDynamoRepository
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client, customers *CustomerDynamoRepository) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		customers: customers,
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuotationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuotationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuotationRecord{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuotationRecord{}, err
	}
	q := fromQuotationItem(it)

	summary, err := r.customers.summary(ctx, q.CustomerID)
	if err != nil {
		return entities.QuotationRecord{}, err
	}
	if summary.FullName == "" {
		summary = q.QuotationData.Customer.Summary()
	}
	return entities.QuotationRecord{Quotation: q, Customer: summary}, nil
}

// List returns every quotation joined with its customer, newest first.
func (r *QuotationDynamoRepository) List(ctx context.Context) ([]entities.QuotationRecord, error) {
	var rows []quotationItem
	if err := scanAll(ctx, r.ddb, r.tableName, &rows); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, it := range rows {
		if _, ok := seen[it.CustomerID]; ok || it.CustomerID == "" {
			continue
		}
		seen[it.CustomerID] = struct{}{}
		ids = append(ids, it.CustomerID)
	}
	summaries, err := r.customers.summaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]entities.QuotationRecord, 0, len(rows))
	for _, it := range rows {
		q := fromQuotationItem(it)
		summary, ok := summaries[q.CustomerID]
		if !ok {
			summary = q.QuotationData.Customer.Summary()
		}
		out = append(out, entities.QuotationRecord{Quotation: q, Customer: summary})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Delete removes a quotation by id. DeleteItem on a missing key succeeds.
func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuotationItem(q entities.Quotation) quotationItem {
	lines := make([]quotationLineItem, 0, len(q.QuotationData.Items))
	for _, it := range q.QuotationData.Items {
		lines = append(lines, quotationLineItem{
			CarPartID:              it.CarPartID,
			CarPartName:            it.CarPartName,
			SelectedServices:       it.SelectedServices,
			SelectedRemovableParts: it.SelectedRemovableParts,
			Price:                  it.Price,
		})
	}
	return quotationItem{
		ID:          q.ID,
		CustomerID:  q.CustomerID,
		ServiceType: string(q.ServiceType),
		TotalAmount: q.TotalAmount,
		QuotationData: quotationDataItem{
			Items:       lines,
			Customer:    toCustomerItem(q.QuotationData.Customer),
			ServiceType: string(q.QuotationData.ServiceType),
			CreatedAt:   formatTime(q.QuotationData.CreatedAt),
		},
		Status:    string(q.Status),
		CreatedAt: formatTime(q.CreatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	items := make([]entities.QuotationItem, 0, len(it.QuotationData.Items))
	for _, l := range it.QuotationData.Items {
		items = append(items, entities.QuotationItem{
			CarPartID:              l.CarPartID,
			CarPartName:            l.CarPartName,
			SelectedServices:       nonNil(l.SelectedServices),
			SelectedRemovableParts: nonNil(l.SelectedRemovableParts),
			Price:                  l.Price,
		})
	}
	return entities.Quotation{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		ServiceType: entities.ServiceType(it.ServiceType),
		TotalAmount: it.TotalAmount,
		QuotationData: entities.QuotationData{
			Items:       items,
			Customer:    fromCustomerItem(it.QuotationData.Customer),
			ServiceType: entities.ServiceType(it.QuotationData.ServiceType),
			CreatedAt:   parseTime(it.QuotationData.CreatedAt),
		},
		Status:    entities.QuotationStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
