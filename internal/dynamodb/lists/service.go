package lists

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/dynamodb/services"
	"philcali.me/shopping/internal/dynamodb/token"
)

func NewShoppingListService(tableName string, client dynamodb.Client, marshaler token.TokenMarshaler) data.ShoppingListRepository {
	return &services.RepositoryDynamoDBService[data.ShoppingListDTO, data.ShoppingListInputDTO]{
		DynamoDB:       client,
		TableName:      tableName,
		TokenMarshaler: marshaler,
		Name:           "ShoppingList",
		SortDescending: true,
		Shim: func(pk, sk string) data.ShoppingListDTO {
			return data.ShoppingListDTO{PK: pk, SK: sk}
		},
		GetSK: func(sld data.ShoppingListDTO) string {
			return sld.SK
		},
		OnCreate: func(slid data.ShoppingListInputDTO, createTime time.Time, pk string, sk string) data.ShoppingListDTO {
			list := data.ShoppingListDTO{
				PK:         pk,
				SK:         sk,
				Name:       *slid.Name,
				Color:      *slid.Color,
				Owner:      *slid.Owner,
				CreateTime: createTime,
				UpdateTime: createTime,
			}
			if slid.Description != nil {
				list.Description = *slid.Description
			}
			return list
		},
		OnUpdate: func(slid data.ShoppingListInputDTO, ub expression.UpdateBuilder) expression.UpdateBuilder {
			if slid.Name != nil {
				ub = ub.Set(expression.Name("name"), expression.Value(slid.Name))
			}
			if slid.Description != nil {
				ub = ub.Set(expression.Name("description"), expression.Value(slid.Description))
			}
			if slid.Color != nil {
				ub = ub.Set(expression.Name("color"), expression.Value(slid.Color))
			}
			return ub
		},
	}
}
