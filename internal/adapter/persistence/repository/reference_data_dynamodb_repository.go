package repository

import (
	"context"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultCarSegmentsTableName    = "car_segments"
	defaultCarPartsTableName       = "car_parts"
	defaultServicesTableName       = "services"
	defaultRemovablePartsTableName = "removable_parts"
	defaultPricingTableName        = "pricing"
)

type carSegmentItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	DisplayName string `dynamodbav:"display_name"`
	CreatedAt   string `dynamodbav:"created_at,omitempty"`
}

type carPartItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	DisplayName string `dynamodbav:"display_name"`
	Category    string `dynamodbav:"category"`
	CreatedAt   string `dynamodbav:"created_at,omitempty"`
}

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	DisplayName string `dynamodbav:"display_name"`
	Type        string `dynamodbav:"type"`
	CreatedAt   string `dynamodbav:"created_at,omitempty"`
}

type removablePartItem struct {
	ID          string `dynamodbav:"id"`
	CarPartID   string `dynamodbav:"car_part_id"`
	Name        string `dynamodbav:"name"`
	DisplayName string `dynamodbav:"display_name"`
	CreatedAt   string `dynamodbav:"created_at,omitempty"`
}

type priceItem struct {
	ID           string `dynamodbav:"id"`
	CarSegmentID string `dynamodbav:"car_segment_id"`
	ItemType     string `dynamodbav:"item_type"`
	ItemID       string `dynamodbav:"item_id,omitempty"`
	Price        int64  `dynamodbav:"price"`
	CreatedAt    string `dynamodbav:"created_at,omitempty"`
}

// ReferenceDataDynamoRepository reads the reference tables from DynamoDB.
//
// Table requirements (all PK: id (string)):
//   - car_segments, car_parts, services, removable_parts, pricing
//
// Tables are small and read as full scans; ordering is applied in memory.

type ReferenceDataDynamoRepository struct {
	ddb                 *dynamodb.Client
	carSegmentsTable    string
	carPartsTable       string
	servicesTable       string
	removablePartsTable string
	pricingTable        string
}

var _ interfaces.IReferenceDataRepository = (*ReferenceDataDynamoRepository)(nil)

func NewReferenceDataDynamoRepository(ddb *dynamodb.Client) *ReferenceDataDynamoRepository {
	return &ReferenceDataDynamoRepository{
		ddb:                 ddb,
		carSegmentsTable:    getenvDefault("CAR_SEGMENTS_TABLE", defaultCarSegmentsTableName),
		carPartsTable:       getenvDefault("CAR_PARTS_TABLE", defaultCarPartsTableName),
		servicesTable:       getenvDefault("SERVICES_TABLE", defaultServicesTableName),
		removablePartsTable: getenvDefault("REMOVABLE_PARTS_TABLE", defaultRemovablePartsTableName),
		pricingTable:        getenvDefault("PRICING_TABLE", defaultPricingTableName),
	}
}

func (r *ReferenceDataDynamoRepository) ListCarSegments(ctx context.Context) ([]entities.CarSegment, error) {
	var rows []carSegmentItem
	if err := scanAll(ctx, r.ddb, r.carSegmentsTable, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.CarSegment, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.CarSegment{
			ID:          it.ID,
			Name:        it.Name,
			DisplayName: it.DisplayName,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	sortByDisplayName(out, func(s entities.CarSegment) string { return s.DisplayName })
	return out, nil
}

func (r *ReferenceDataDynamoRepository) ListCarParts(ctx context.Context) ([]entities.CarPart, error) {
	var rows []carPartItem
	if err := scanAll(ctx, r.ddb, r.carPartsTable, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.CarPart, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.CarPart{
			ID:          it.ID,
			Name:        it.Name,
			DisplayName: it.DisplayName,
			Category:    it.Category,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	sortByDisplayName(out, func(p entities.CarPart) string { return p.DisplayName })
	return out, nil
}

func (r *ReferenceDataDynamoRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	var rows []serviceItem
	if err := scanAll(ctx, r.ddb, r.servicesTable, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.Service{
			ID:          it.ID,
			Name:        it.Name,
			DisplayName: it.DisplayName,
			Type:        entities.ServiceKind(it.Type),
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	sortByDisplayName(out, func(s entities.Service) string { return s.DisplayName })
	return out, nil
}

func (r *ReferenceDataDynamoRepository) ListRemovableParts(ctx context.Context) ([]entities.RemovablePart, error) {
	var rows []removablePartItem
	if err := scanAll(ctx, r.ddb, r.removablePartsTable, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.RemovablePart, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.RemovablePart{
			ID:          it.ID,
			CarPartID:   it.CarPartID,
			Name:        it.Name,
			DisplayName: it.DisplayName,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	sortByDisplayName(out, func(p entities.RemovablePart) string { return p.DisplayName })
	return out, nil
}

func (r *ReferenceDataDynamoRepository) ListPricing(ctx context.Context) ([]entities.PriceEntry, error) {
	var rows []priceItem
	if err := scanAll(ctx, r.ddb, r.pricingTable, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.PriceEntry, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.PriceEntry{
			ID:           it.ID,
			CarSegmentID: it.CarSegmentID,
			ItemType:     entities.ItemType(it.ItemType),
			ItemID:       it.ItemID,
			Price:        it.Price,
			CreatedAt:    parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

// scanAll reads every page of a table into out, a pointer to a slice of items.
func scanAll[T any](ctx context.Context, ddb *dynamodb.Client, table string, out *[]T) error {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{TableName: aws.String(table)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		var rows []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &rows); err != nil {
			return err
		}
		*out = append(*out, rows...)
	}
	return nil
}
