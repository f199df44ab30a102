package events

import (
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/notifications"
)

func _entityType(record events.DynamoDBEventRecord) string {
	parts := strings.Split(record.Change.Keys["PK"].String(), ":")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

type NotifyInvitationHandler struct {
	Notifier notifications.NotificationService
}

func (nh *NotifyInvitationHandler) Filter(record events.DynamoDBEventRecord) bool {
	return record.EventName == "INSERT" && _entityType(record) == "Invitation"
}

func (nh *NotifyInvitationHandler) Apply(record events.DynamoDBEventRecord) error {
	image := record.Change.NewImage
	inviter := image["inviterEmail"].String()
	if name, ok := image["inviterName"]; ok && !name.IsNull() {
		inviter = name.String()
	}
	recipients := []string{image["inviteeEmail"].String()}
	if inviteeId, ok := image["inviteeId"]; ok && !inviteeId.IsNull() {
		recipients = append(recipients, inviteeId.String())
	}
	return nh.Notifier.Publish(notifications.PublishInput{
		Subject:    aws.String("You have a new shopping list invitation"),
		Message:    fmt.Sprintf("%s invited you to collaborate on \"%s\"", inviter, image["listName"].String()),
		Recipients: recipients,
	})
}

func DefaultNotifyInvitationHandler(notifier notifications.NotificationService) *NotifyInvitationHandler {
	return &NotifyInvitationHandler{
		Notifier: notifier,
	}
}

// ClaimEmailInvitationsHandler attaches a newly registered account to any
// invitation that was addressed to its email before signup.
type ClaimEmailInvitationsHandler struct {
	Invitations data.InvitationRepository
	IndexName   string
}

func (ch *ClaimEmailInvitationsHandler) Filter(record events.DynamoDBEventRecord) bool {
	return record.EventName == "INSERT" && _entityType(record) == "Profile"
}

func (ch *ClaimEmailInvitationsHandler) Apply(record events.DynamoDBEventRecord) error {
	accountId := record.Change.Keys["SK"].String()
	email := strings.ToLower(record.Change.NewImage["email"].String())
	var nextToken *string
	truncated := true
	for truncated {
		pending, err := ch.Invitations.ListByIndex(email, ch.IndexName, data.QueryParams{
			Limit:     100,
			NextToken: nextToken,
		})
		if err != nil {
			return err
		}
		for _, invite := range pending.Items {
			if invite.InviteeId != nil {
				continue
			}
			_, err := ch.Invitations.Update(invite.ListId, invite.SK, data.InvitationInputDTO{
				InviteeId: &accountId,
			})
			if err != nil {
				return err
			}
		}
		nextToken = pending.NextToken
		truncated = nextToken != nil
	}
	return nil
}

func DefaultClaimEmailInvitationsHandler(db data.InvitationRepository, indexName string) *ClaimEmailInvitationsHandler {
	return &ClaimEmailInvitationsHandler{
		Invitations: db,
		IndexName:   indexName,
	}
}
