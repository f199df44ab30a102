package profiles

import (
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/dynamodb/services"
	"philcali.me/shopping/internal/dynamodb/token"
)

func NewProfileService(tableName string, client dynamodb.Client, marshaler token.TokenMarshaler) data.ProfileRepository {
	return &services.RepositoryDynamoDBService[data.ProfileDTO, data.ProfileInputDTO]{
		DynamoDB:       client,
		TableName:      tableName,
		TokenMarshaler: marshaler,
		Name:           "Profile",
		Shim: func(pk, sk string) data.ProfileDTO {
			return data.ProfileDTO{PK: pk, SK: sk}
		},
		GetSK: func(pd data.ProfileDTO) string {
			return pd.SK
		},
		OnCreate: func(pid data.ProfileInputDTO, createTime time.Time, pk string, sk string) data.ProfileDTO {
			email := strings.ToLower(strings.TrimSpace(*pid.Email))
			return data.ProfileDTO{
				PK:         pk,
				SK:         sk,
				FirstIndex: email + ":Profile",
				Name:       pid.Name,
				Email:      email,
				CreateTime: createTime,
				UpdateTime: createTime,
			}
		},
		OnUpdate: func(pid data.ProfileInputDTO, ub expression.UpdateBuilder) expression.UpdateBuilder {
			if pid.Name != nil {
				ub = ub.Set(expression.Name("name"), expression.Value(pid.Name))
			}
			if pid.Email != nil {
				email := strings.ToLower(strings.TrimSpace(*pid.Email))
				ub = ub.Set(expression.Name("email"), expression.Value(email))
				ub = ub.Set(expression.Name("GS1-PK"), expression.Value(email+":Profile"))
			}
			return ub
		},
	}
}
