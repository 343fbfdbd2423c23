package repository

import (
	"context"
	"strconv"

	"distrimed/internal/domain/entities"
	"distrimed/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultShippingBandsTableName = "shipping_bands"

type shippingBandRecord struct {
	Region     string `dynamodbav:"region"`
	PrefixFrom int    `dynamodbav:"prefix_from"`
	PrefixTo   int    `dynamodbav:"prefix_to"`
	BaseFee    string `dynamodbav:"base_fee"`
	BaseDays   int    `dynamodbav:"base_days"`
}

// ShippingBandDynamoRepository persists the admin-managed regional estimation
// bands.
//
// Table requirements:
//   - PK: region (string)
//
// The table is tiny (one row per macro-region) so List is a plain Scan.

type ShippingBandDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShippingBandRepository = (*ShippingBandDynamoRepository)(nil)

func NewShippingBandDynamoRepository(ddb *dynamodb.Client) *ShippingBandDynamoRepository {
	return &ShippingBandDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIPPING_BANDS_TABLE", defaultShippingBandsTableName),
	}
}

func (r *ShippingBandDynamoRepository) List(ctx context.Context) ([]entities.RegionalBand, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	bands := make([]entities.RegionalBand, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec shippingBandRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		fee, _ := strconv.ParseFloat(rec.BaseFee, 64)
		bands = append(bands, entities.RegionalBand{
			Region:     rec.Region,
			PrefixFrom: rec.PrefixFrom,
			PrefixTo:   rec.PrefixTo,
			BaseFee:    fee,
			BaseDays:   rec.BaseDays,
		})
	}
	return bands, nil
}

func (r *ShippingBandDynamoRepository) Put(ctx context.Context, b entities.RegionalBand) (entities.RegionalBand, error) {
	rec := shippingBandRecord{
		Region:     b.Region,
		PrefixFrom: b.PrefixFrom,
		PrefixTo:   b.PrefixTo,
		BaseFee:    floatToString(b.BaseFee),
		BaseDays:   b.BaseDays,
	}
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return entities.RegionalBand{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.RegionalBand{}, err
	}
	return b, nil
}
