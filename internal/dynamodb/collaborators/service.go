package collaborators

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/dynamodb/services"
	"philcali.me/shopping/internal/dynamodb/token"
)

func NewCollaboratorService(tableName string, client dynamodb.Client, marshaler token.TokenMarshaler) data.CollaboratorRepository {
	return &services.RepositoryDynamoDBService[data.CollaboratorDTO, data.CollaboratorInputDTO]{
		DynamoDB:       client,
		TableName:      tableName,
		TokenMarshaler: marshaler,
		Name:           "Collaborator",
		Shim: func(pk, sk string) data.CollaboratorDTO {
			return data.CollaboratorDTO{PK: pk, SK: sk}
		},
		GetSK: func(cd data.CollaboratorDTO) string {
			return cd.SK
		},
		OnCreate: func(cid data.CollaboratorInputDTO, createTime time.Time, pk string, sk string) data.CollaboratorDTO {
			return data.CollaboratorDTO{
				PK:         pk,
				SK:         sk,
				FirstIndex: sk + ":Collaborator",
				ListId:     *cid.ListId,
				Owner:      *cid.Owner,
				CreateTime: createTime,
				UpdateTime: createTime,
			}
		},
		OnUpdate: func(cid data.CollaboratorInputDTO, ub expression.UpdateBuilder) expression.UpdateBuilder {
			return ub
		},
	}
}
