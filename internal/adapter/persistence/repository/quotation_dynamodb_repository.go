package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type quotationRecord struct {
	ID            string `dynamodbav:"id"`
	Status        string `dynamodbav:"status"`
	CustomerInfo  string `dynamodbav:"customer_info,omitempty"`
	ShippingInfo  string `dynamodbav:"shipping_info,omitempty"`
	Items         string `dynamodbav:"items,omitempty"`
	Subtotal      string `dynamodbav:"subtotal_amount"`
	Discount      string `dynamodbav:"discount_amount"`
	Total         string `dynamodbav:"total_amount"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Customer/shipping snapshots and the item list are stored as raw JSON
// strings: the CRM writes them with varying shapes and the typed decoders at
// the usecase boundary are the single validation point.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	rec, err := toQuotationRecord(q)
	if err != nil {
		return entities.Quotation{}, err
	}
	av, err := attributevalue.MarshalMap(rec)
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

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var rec quotationRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationRecord(rec), nil
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}

	var rec quotationRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationRecord(rec), nil
}

func toQuotationRecord(q entities.Quotation) (quotationRecord, error) {
	items := ""
	if len(q.Items) > 0 {
		b, err := json.Marshal(q.Items)
		if err != nil {
			return quotationRecord{}, err
		}
		items = string(b)
	}
	return quotationRecord{
		ID:            q.ID,
		Status:        string(q.Status),
		CustomerInfo:  string(q.CustomerInfo),
		ShippingInfo:  string(q.ShippingInfo),
		Items:         items,
		Subtotal:      floatToString(q.Subtotal),
		Discount:      floatToString(q.Discount),
		Total:         floatToString(q.Total),
		PaymentMethod: q.PaymentMethod,
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuotationRecord(rec quotationRecord) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	subtotal, _ := strconv.ParseFloat(rec.Subtotal, 64)
	discount, _ := strconv.ParseFloat(rec.Discount, 64)
	total, _ := strconv.ParseFloat(rec.Total, 64)

	var items []entities.QuotationItem
	if rec.Items != "" {
		_ = json.Unmarshal([]byte(rec.Items), &items)
	}

	q := entities.Quotation{
		ID:            rec.ID,
		Status:        entities.QuotationStatus(rec.Status),
		Items:         items,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         total,
		PaymentMethod: rec.PaymentMethod,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if rec.CustomerInfo != "" {
		q.CustomerInfo = json.RawMessage(rec.CustomerInfo)
	}
	if rec.ShippingInfo != "" {
		q.ShippingInfo = json.RawMessage(rec.ShippingInfo)
	}
	return q
}
