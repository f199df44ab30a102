package invitations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/dynamodb/services"
	"philcali.me/shopping/internal/dynamodb/token"
	"philcali.me/shopping/internal/exceptions"
)

type InvitationDynamoDBService struct {
	*services.RepositoryDynamoDBService[data.InvitationDTO, data.InvitationInputDTO]
	Client dynamodb.Client
	Table  string
}

func NewInvitationService(tableName string, client dynamodb.Client, marshaler token.TokenMarshaler) data.InvitationRepository {
	return &InvitationDynamoDBService{
		Client: client,
		Table:  tableName,
		RepositoryDynamoDBService: &services.RepositoryDynamoDBService[data.InvitationDTO, data.InvitationInputDTO]{
			DynamoDB:       client,
			TableName:      tableName,
			TokenMarshaler: marshaler,
			Name:           "Invitation",
			Shim: func(pk, sk string) data.InvitationDTO {
				return data.InvitationDTO{PK: pk, SK: sk}
			},
			GetSK: func(id data.InvitationDTO) string {
				return id.SK
			},
			OnCreate: func(iid data.InvitationInputDTO, createTime time.Time, pk string, sk string) data.InvitationDTO {
				invite := data.InvitationDTO{
					PK:           pk,
					SK:           sk,
					FirstIndex:   sk + ":Invitation",
					ListId:       *iid.ListId,
					ListName:     *iid.ListName,
					Inviter:      *iid.Inviter,
					InviterEmail: *iid.InviterEmail,
					InviterName:  iid.InviterName,
					InviteeId:    iid.InviteeId,
					InviteeEmail: *iid.InviteeEmail,
					Status:       data.PENDING,
					CreateTime:   createTime,
					UpdateTime:   createTime,
				}
				if iid.ListDescription != nil {
					invite.ListDescription = *iid.ListDescription
				}
				if iid.Status != nil {
					invite.Status = *iid.Status
				}
				return invite
			},
			OnUpdate: func(iid data.InvitationInputDTO, ub expression.UpdateBuilder) expression.UpdateBuilder {
				if iid.InviteeId != nil {
					ub = ub.Set(expression.Name("inviteeId"), expression.Value(iid.InviteeId))
				}
				if iid.Status != nil {
					ub = ub.Set(expression.Name("status"), expression.Value(iid.Status))
				}
				return ub
			},
		},
	}
}

func _isInvitee(invite data.InvitationDTO, accountId string, email string) bool {
	if invite.InviteeId != nil && *invite.InviteeId == accountId {
		return true
	}
	return strings.EqualFold(invite.InviteeEmail, email) || strings.EqualFold(invite.SK, email)
}

func (is *InvitationDynamoDBService) resolve(listId string, invitationId string, accountId string, email string) (data.InvitationDTO, bool, error) {
	invite, err := is.Get(listId, invitationId)
	if err != nil {
		var nfe *exceptions.NotFoundError
		if errors.As(err, &nfe) {
			return invite, false, nil
		}
		return invite, false, err
	}
	if invite.Status != data.PENDING || !_isInvitee(invite, accountId, email) {
		return invite, false, nil
	}
	return invite, true, nil
}

func (is *InvitationDynamoDBService) invitationKey(listId string, invitationId string) (map[string]types.AttributeValue, error) {
	pk, err := attributevalue.Marshal(listId + ":Invitation")
	if err != nil {
		return nil, err
	}
	sk, err := attributevalue.Marshal(invitationId)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{"PK": pk, "SK": sk}, nil
}

// Accept resolves the invitation and creates the collaborator grant in a
// single transaction. Removing the record and writing the grant either
// both happen or neither does.
func (is *InvitationDynamoDBService) Accept(listId string, invitationId string, accountId string, email string) (bool, error) {
	invite, ok, err := is.resolve(listId, invitationId, accountId, email)
	if !ok || err != nil {
		return false, err
	}
	key, err := is.invitationKey(listId, invitationId)
	if err != nil {
		return false, err
	}
	now := time.Now()
	grant := data.CollaboratorDTO{
		PK:         listId + ":Collaborator",
		SK:         accountId,
		FirstIndex: accountId + ":Collaborator",
		ListId:     listId,
		Owner:      invite.Inviter,
		CreateTime: now,
		UpdateTime: now,
	}
	item, err := attributevalue.MarshalMap(grant)
	if err != nil {
		return false, err
	}
	expr, err := expression.NewBuilder().WithCondition(expression.Name("PK").AttributeExists().And(expression.Name("SK").AttributeExists())).Build()
	if err != nil {
		return false, err
	}
	_, err = is.Client.TransactWriteItems(context.TODO(), &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName:                aws.String(is.Table),
					Key:                      key,
					ConditionExpression:      expr.Condition(),
					ExpressionAttributeNames: expr.Names(),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(is.Table),
					Item:      item,
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Decline removes the pending record outright. The invitee simply stops
// seeing it; nothing else changes.
func (is *InvitationDynamoDBService) Decline(listId string, invitationId string, accountId string, email string) (bool, error) {
	_, ok, err := is.resolve(listId, invitationId, accountId, email)
	if !ok || err != nil {
		return false, err
	}
	key, err := is.invitationKey(listId, invitationId)
	if err != nil {
		return false, err
	}
	expr, err := expression.NewBuilder().WithCondition(expression.Name("PK").AttributeExists().And(expression.Name("SK").AttributeExists())).Build()
	if err != nil {
		return false, err
	}
	_, err = is.Client.DeleteItem(context.TODO(), &dynamodb.DeleteItemInput{
		TableName:                aws.String(is.Table),
		Key:                      key,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
