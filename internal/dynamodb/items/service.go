package items

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/dynamodb/services"
	"philcali.me/shopping/internal/dynamodb/token"
)

// List items are keyed by their parent list id, so the owner and every
// collaborator read and write the same partition.
func NewListItemService(tableName string, client dynamodb.Client, marshaler token.TokenMarshaler) data.ListItemRepository {
	return &services.RepositoryDynamoDBService[data.ListItemDTO, data.ListItemInputDTO]{
		DynamoDB:       client,
		TableName:      tableName,
		TokenMarshaler: marshaler,
		Name:           "ListItem",
		Shim: func(pk, sk string) data.ListItemDTO {
			return data.ListItemDTO{PK: pk, SK: sk}
		},
		GetSK: func(lid data.ListItemDTO) string {
			return lid.SK
		},
		OnCreate: func(liid data.ListItemInputDTO, createTime time.Time, pk string, sk string) data.ListItemDTO {
			item := data.ListItemDTO{
				PK:         pk,
				SK:         sk,
				Name:       *liid.Name,
				Category:   *liid.Category,
				Quantity:   *liid.Quantity,
				CreateTime: createTime,
				UpdateTime: createTime,
			}
			if liid.Completed != nil {
				item.Completed = *liid.Completed
				item.CompletedBy = liid.CompletedBy
				item.CompletedAt = liid.CompletedAt
			}
			return item
		},
		OnUpdate: func(liid data.ListItemInputDTO, ub expression.UpdateBuilder) expression.UpdateBuilder {
			if liid.Name != nil {
				ub = ub.Set(expression.Name("name"), expression.Value(liid.Name))
			}
			if liid.Category != nil {
				ub = ub.Set(expression.Name("category"), expression.Value(liid.Category))
			}
			if liid.Quantity != nil {
				ub = ub.Set(expression.Name("quantity"), expression.Value(liid.Quantity))
			}
			if liid.Completed != nil {
				ub = ub.Set(expression.Name("completed"), expression.Value(liid.Completed))
				// Completion stamps exist if and only if the item is completed.
				if *liid.Completed {
					ub = ub.Set(expression.Name("completedBy"), expression.Value(liid.CompletedBy))
					ub = ub.Set(expression.Name("completedAt"), expression.Value(liid.CompletedAt))
				} else {
					ub = ub.Remove(expression.Name("completedBy"))
					ub = ub.Remove(expression.Name("completedAt"))
				}
			}
			return ub
		},
	}
}
