package subscriptions

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/dynamodb/services"
	"philcali.me/shopping/internal/dynamodb/token"
)

func NewSubscriptionService(tableName string, client dynamodb.Client, marshaler token.TokenMarshaler) data.SubscriptionRepository {
	return &services.RepositoryDynamoDBService[data.SubscriptionDTO, data.SubscriptionInputDTO]{
		DynamoDB:       client,
		TableName:      tableName,
		TokenMarshaler: marshaler,
		Name:           "Subscription",
		Shim: func(pk, sk string) data.SubscriptionDTO {
			return data.SubscriptionDTO{PK: pk, SK: sk}
		},
		GetSK: func(sd data.SubscriptionDTO) string {
			return sd.SK
		},
		OnCreate: func(sid data.SubscriptionInputDTO, createTime time.Time, pk string, sk string) data.SubscriptionDTO {
			return data.SubscriptionDTO{
				PK:            pk,
				SK:            sk,
				Endpoint:      *sid.Endpoint,
				Protocol:      *sid.Protocol,
				SubscriberArn: *sid.SubscriberArn,
				CreateTime:    createTime,
				UpdateTime:    createTime,
			}
		},
		OnUpdate: func(sid data.SubscriptionInputDTO, ub expression.UpdateBuilder) expression.UpdateBuilder {
			if sid.SubscriberArn != nil {
				ub = ub.Set(expression.Name("subscriberArn"), expression.Value(sid.SubscriberArn))
			}
			return ub
		},
	}
}
