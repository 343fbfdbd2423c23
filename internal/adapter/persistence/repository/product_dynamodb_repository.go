package repository

import (
	"context"
	"strconv"

	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productRecord struct {
	ID       string  `dynamodbav:"id"`
	Name     string  `dynamodbav:"name"`
	OmieCode *string `dynamodbav:"omie_code,omitempty"`
	Price    string  `dynamodbav:"price"`
	ImageURL string  `dynamodbav:"image_url,omitempty"`
	Active   bool    `dynamodbav:"active"`
}

// ProductDynamoRepository reads catalog records from DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var rec productRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Product{}, err
	}
	price, _ := strconv.ParseFloat(rec.Price, 64)
	return entities.Product{
		ID:       rec.ID,
		Name:     rec.Name,
		OmieCode: rec.OmieCode,
		Price:    price,
		ImageURL: rec.ImageURL,
		Active:   rec.Active,
	}, nil
}
