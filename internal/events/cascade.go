package events

import (
	"github.com/aws/aws-lambda-go/events"
	"philcali.me/shopping/internal/data"
)

func _purgePartition[T interface{}, I interface{}](repo data.Repository[T, I], hashId string, getSK func(T) string) error {
	var nextToken *string
	truncated := true
	for truncated {
		page, err := repo.List(hashId, data.QueryParams{
			Limit:     100,
			NextToken: nextToken,
		})
		if err != nil {
			return err
		}
		for _, item := range page.Items {
			if err := repo.Delete(hashId, getSK(item)); err != nil {
				return err
			}
		}
		nextToken = page.NextToken
		truncated = nextToken != nil
	}
	return nil
}

// CascadeListRemovalHandler sweeps out everything hanging off a deleted
// shopping list: its items, pending invitations, and collaborator grants.
type CascadeListRemovalHandler struct {
	Items         data.ListItemRepository
	Invitations   data.InvitationRepository
	Collaborators data.CollaboratorRepository
}

func (ch *CascadeListRemovalHandler) Filter(record events.DynamoDBEventRecord) bool {
	return record.EventName == "REMOVE" && _entityType(record) == "ShoppingList"
}

func (ch *CascadeListRemovalHandler) Apply(record events.DynamoDBEventRecord) error {
	listId := record.Change.Keys["SK"].String()
	if err := _purgePartition[data.ListItemDTO, data.ListItemInputDTO](ch.Items, listId, func(item data.ListItemDTO) string {
		return item.SK
	}); err != nil {
		return err
	}
	if err := _purgePartition[data.InvitationDTO, data.InvitationInputDTO](ch.Invitations, listId, func(invite data.InvitationDTO) string {
		return invite.SK
	}); err != nil {
		return err
	}
	return _purgePartition[data.CollaboratorDTO, data.CollaboratorInputDTO](ch.Collaborators, listId, func(grant data.CollaboratorDTO) string {
		return grant.SK
	})
}

func DefaultCascadeListRemovalHandler(items data.ListItemRepository, invitations data.InvitationRepository, collaborators data.CollaboratorRepository) *CascadeListRemovalHandler {
	return &CascadeListRemovalHandler{
		Items:         items,
		Invitations:   invitations,
		Collaborators: collaborators,
	}
}
