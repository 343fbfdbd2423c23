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

const (
	defaultOrdersTableName = "orders"
	ordersQuotationIDIndex = "quotation_id-index"
)

type orderRecord struct {
	ID            string `dynamodbav:"id"`
	QuotationID   string `dynamodbav:"quotation_id"`
	CustomerID    string `dynamodbav:"customer_id"`
	Items         string `dynamodbav:"items,omitempty"`
	Subtotal      string `dynamodbav:"subtotal_amount"`
	Discount      string `dynamodbav:"discount_amount"`
	Total         string `dynamodbav:"total_amount"`
	ShippingFee   string `dynamodbav:"shipping_fee"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	Status        string `dynamodbav:"status"`
	OmieStatus    string `dynamodbav:"omie_status"`
	PreferenceID  string `dynamodbav:"preference_id,omitempty"`
	Address       string `dynamodbav:"shipping_address,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_id-index (PK: quotation_id)
//
// The conditional put plus the quotation index give the converter its
// at-most-one-order-per-quotation guarantee across crash-and-retry.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	rec, err := toOrderRecord(o)
	if err != nil {
		return entities.Order{}, err
	}
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) GetByQuotationID(ctx context.Context, quotationID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersQuotationIDIndex),
		KeyConditionExpression: aws.String("quotation_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quotationID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) UpdatePreferenceID(ctx context.Context, id, preferenceID string) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #preference_id = :preference_id, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":preference_id": &types.AttributeValueMemberS{Value: preferenceID},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#preference_id": "preference_id",
			"#updated_at":    "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func toOrderRecord(o entities.Order) (orderRecord, error) {
	items := ""
	if len(o.Items) > 0 {
		b, err := json.Marshal(o.Items)
		if err != nil {
			return orderRecord{}, err
		}
		items = string(b)
	}
	address, err := json.Marshal(o.Address)
	if err != nil {
		return orderRecord{}, err
	}
	return orderRecord{
		ID:            o.ID,
		QuotationID:   o.QuotationID,
		CustomerID:    o.CustomerID,
		Items:         items,
		Subtotal:      floatToString(o.Subtotal),
		Discount:      floatToString(o.Discount),
		Total:         floatToString(o.Total),
		ShippingFee:   floatToString(o.ShippingFee),
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		OmieStatus:    string(o.OmieStatus),
		PreferenceID:  o.PreferenceID,
		Address:       string(address),
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromOrderRecord(rec orderRecord) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	subtotal, _ := strconv.ParseFloat(rec.Subtotal, 64)
	discount, _ := strconv.ParseFloat(rec.Discount, 64)
	total, _ := strconv.ParseFloat(rec.Total, 64)
	shippingFee, _ := strconv.ParseFloat(rec.ShippingFee, 64)

	var items []entities.OrderItem
	if rec.Items != "" {
		_ = json.Unmarshal([]byte(rec.Items), &items)
	}
	var address entities.ShippingAddress
	if rec.Address != "" {
		_ = json.Unmarshal([]byte(rec.Address), &address)
	}

	return entities.Order{
		ID:            rec.ID,
		QuotationID:   rec.QuotationID,
		CustomerID:    rec.CustomerID,
		Items:         items,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         total,
		ShippingFee:   shippingFee,
		PaymentMethod: rec.PaymentMethod,
		Status:        entities.OrderStatus(rec.Status),
		OmieStatus:    entities.OmieStatus(rec.OmieStatus),
		PreferenceID:  rec.PreferenceID,
		Address:       address,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
