package events

import (
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/dynamodb/invitations"
	"philcali.me/shopping/internal/dynamodb/token"
	"philcali.me/shopping/internal/notifications"
	"philcali.me/shopping/internal/test"
)

type RecordingNotifier struct {
	Published []notifications.PublishInput
}

func (rn *RecordingNotifier) Subscribe(input notifications.SubscribeInput) (*notifications.SubscribeOutput, error) {
	return &notifications.SubscribeOutput{SubscriberId: "local"}, nil
}

func (rn *RecordingNotifier) Unsubscribe(subscriberId string) error {
	return nil
}

func (rn *RecordingNotifier) Publish(input notifications.PublishInput) error {
	rn.Published = append(rn.Published, input)
	return nil
}

func NewInvitationService(t *testing.T) data.InvitationRepository {
	localServer := test.StartLocalServer(test.LOCAL_DDB_PORT+2, t)
	client, err := localServer.CreateLocalClient()
	if err != nil {
		t.Fatalf("Failed to create DDB client: %s", err)
	}
	tableName, err := test.CreateTable(client)
	if err != nil {
		t.Fatalf("Failed to create DDB table: %s", err)
	}
	marshaler := token.NewGCM()
	return invitations.NewInvitationService(tableName, *client, marshaler)
}

func TestNotifyInvitation(t *testing.T) {
	notifier := &RecordingNotifier{}
	handler := DefaultNotifyInvitationHandler(notifier)

	insert := events.DynamoDBEventRecord{
		EventName: "INSERT",
		Change: events.DynamoDBStreamRecord{
			Keys: map[string]events.DynamoDBAttributeValue{
				"PK": events.NewStringAttribute("list-1:Invitation"),
				"SK": events.NewStringAttribute("friend"),
			},
			NewImage: map[string]events.DynamoDBAttributeValue{
				"listName":     events.NewStringAttribute("Dinner Party"),
				"inviterName":  events.NewStringAttribute("Owner"),
				"inviterEmail": events.NewStringAttribute("owner@email.com"),
				"inviteeId":    events.NewStringAttribute("friend"),
				"inviteeEmail": events.NewStringAttribute("friend@email.com"),
			},
		},
	}

	otherEntity := events.DynamoDBEventRecord{
		EventName: "INSERT",
		Change: events.DynamoDBStreamRecord{
			Keys: map[string]events.DynamoDBAttributeValue{
				"PK": events.NewStringAttribute("list-1:ListItem"),
				"SK": events.NewStringAttribute("abc-123"),
			},
		},
	}

	remove := events.DynamoDBEventRecord{
		EventName: "REMOVE",
		Change: events.DynamoDBStreamRecord{
			Keys: map[string]events.DynamoDBAttributeValue{
				"PK": events.NewStringAttribute("list-1:Invitation"),
				"SK": events.NewStringAttribute("friend"),
			},
		},
	}

	t.Run("Filter", func(t *testing.T) {
		if !handler.Filter(insert) {
			t.Fatalf("Expected the invitation insert to filter")
		}
		if handler.Filter(otherEntity) || handler.Filter(remove) {
			t.Fatalf("Expected non-invitation records to be skipped")
		}
	})

	t.Run("Apply", func(t *testing.T) {
		if err := handler.Apply(insert); err != nil {
			t.Fatalf("Unexpected failure on apply: %v", err)
		}
		if len(notifier.Published) != 1 {
			t.Fatalf("Expected a single publish, got %d", len(notifier.Published))
		}
		published := notifier.Published[0]
		if !strings.Contains(published.Message, "Dinner Party") || !strings.Contains(published.Message, "Owner") {
			t.Fatalf("Message is missing context: %s", published.Message)
		}
		recipients := strings.Join(published.Recipients, ",")
		if !strings.Contains(recipients, "friend@email.com") || !strings.Contains(recipients, "friend") {
			t.Fatalf("Expected both invitee hashes addressed: %v", published.Recipients)
		}
	})
}

func TestClaimEmailInvitations(t *testing.T) {
	invitationData := NewInvitationService(t)
	handler := DefaultClaimEmailInvitationsHandler(invitationData, test.FIRST_INDEX)

	pending := data.PENDING
	_, err := invitationData.CreateWithItemId("list-7", data.InvitationInputDTO{
		ListId:       aws.String("list-7"),
		ListName:     aws.String("Camping Trip"),
		Inviter:      aws.String("owner"),
		InviterEmail: aws.String("owner@email.com"),
		InviteeEmail: aws.String("newbie@email.com"),
		Status:       &pending,
	}, "newbie@email.com")
	if err != nil {
		t.Fatalf("Failed to seed an invitation: %v", err)
	}

	profileInsert := events.DynamoDBEventRecord{
		EventName: "INSERT",
		Change: events.DynamoDBStreamRecord{
			Keys: map[string]events.DynamoDBAttributeValue{
				"PK": events.NewStringAttribute("Global:Profile"),
				"SK": events.NewStringAttribute("newbie-account"),
			},
			NewImage: map[string]events.DynamoDBAttributeValue{
				"email": events.NewStringAttribute("newbie@email.com"),
			},
		},
	}

	listInsert := events.DynamoDBEventRecord{
		EventName: "INSERT",
		Change: events.DynamoDBStreamRecord{
			Keys: map[string]events.DynamoDBAttributeValue{
				"PK": events.NewStringAttribute("owner:ShoppingList"),
				"SK": events.NewStringAttribute("list-7"),
			},
		},
	}

	t.Run("Filter", func(t *testing.T) {
		if !handler.Filter(profileInsert) {
			t.Fatalf("Expected the profile insert to filter")
		}
		if handler.Filter(listInsert) {
			t.Fatalf("Expected non-profile records to be skipped")
		}
	})

	t.Run("Apply", func(t *testing.T) {
		if err := handler.Apply(profileInsert); err != nil {
			t.Fatalf("Unexpected failure on apply: %v", err)
		}
		claimed, err := invitationData.Get("list-7", "newbie@email.com")
		if err != nil {
			t.Fatalf("Failed to read back the invitation: %v", err)
		}
		if claimed.InviteeId == nil || *claimed.InviteeId != "newbie-account" {
			t.Fatalf("Expected the invitation claimed by the new account: %v", claimed)
		}
	})
}
