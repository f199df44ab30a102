package events

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/dynamodb/collaborators"
	"philcali.me/shopping/internal/dynamodb/invitations"
	"philcali.me/shopping/internal/dynamodb/items"
	"philcali.me/shopping/internal/dynamodb/token"
	"philcali.me/shopping/internal/test"
)

func TestCascadeListRemoval(t *testing.T) {
	localServer := test.StartLocalServer(test.LOCAL_DDB_PORT+3, t)
	client, err := localServer.CreateLocalClient()
	if err != nil {
		t.Fatalf("Failed to create DDB client: %s", err)
	}
	tableName, err := test.CreateTable(client)
	if err != nil {
		t.Fatalf("Failed to create DDB table: %s", err)
	}
	marshaler := token.NewGCM()
	itemData := items.NewListItemService(tableName, *client, marshaler)
	invitationData := invitations.NewInvitationService(tableName, *client, marshaler)
	collaboratorData := collaborators.NewCollaboratorService(tableName, *client, marshaler)
	handler := DefaultCascadeListRemovalHandler(itemData, invitationData, collaboratorData)

	listId := "list-9"
	other := data.OTHER
	if _, err := itemData.Create(listId, data.ListItemInputDTO{
		Name:      aws.String("Tent"),
		Category:  &other,
		Quantity:  aws.Int(1),
		Completed: aws.Bool(false),
	}); err != nil {
		t.Fatalf("Failed to seed an item: %v", err)
	}
	if _, err := invitationData.CreateWithItemId(listId, data.InvitationInputDTO{
		ListId:       aws.String(listId),
		ListName:     aws.String("Camping Trip"),
		Inviter:      aws.String("owner"),
		InviterEmail: aws.String("owner@email.com"),
		InviteeEmail: aws.String("latecomer@email.com"),
	}, "latecomer@email.com"); err != nil {
		t.Fatalf("Failed to seed an invitation: %v", err)
	}
	if _, err := collaboratorData.CreateWithItemId(listId, data.CollaboratorInputDTO{
		ListId: aws.String(listId),
		Owner:  aws.String("owner"),
	}, "friend"); err != nil {
		t.Fatalf("Failed to seed a grant: %v", err)
	}

	remove := events.DynamoDBEventRecord{
		EventName: "REMOVE",
		Change: events.DynamoDBStreamRecord{
			Keys: map[string]events.DynamoDBAttributeValue{
				"PK": events.NewStringAttribute("owner:ShoppingList"),
				"SK": events.NewStringAttribute(listId),
			},
		},
	}

	modify := events.DynamoDBEventRecord{
		EventName: "MODIFY",
		Change: events.DynamoDBStreamRecord{
			Keys: map[string]events.DynamoDBAttributeValue{
				"PK": events.NewStringAttribute("owner:ShoppingList"),
				"SK": events.NewStringAttribute(listId),
			},
		},
	}

	t.Run("Filter", func(t *testing.T) {
		if !handler.Filter(remove) {
			t.Fatalf("Expected the list removal to filter")
		}
		if handler.Filter(modify) {
			t.Fatalf("Expected a list update to be skipped")
		}
	})

	t.Run("Apply", func(t *testing.T) {
		if err := handler.Apply(remove); err != nil {
			t.Fatalf("Unexpected failure on apply: %v", err)
		}
		remaining, err := itemData.List(listId, data.QueryParams{Limit: 10})
		if err != nil || len(remaining.Items) != 0 {
			t.Fatalf("Expected the items swept, got %v: %v", remaining.Items, err)
		}
		invites, err := invitationData.List(listId, data.QueryParams{Limit: 10})
		if err != nil || len(invites.Items) != 0 {
			t.Fatalf("Expected the invitations swept, got %v: %v", invites.Items, err)
		}
		grants, err := collaboratorData.List(listId, data.QueryParams{Limit: 10})
		if err != nil || len(grants.Items) != 0 {
			t.Fatalf("Expected the grants swept, got %v: %v", grants.Items, err)
		}
	})
}
