package data

import (
	"strings"
	"time"
)

type InvitationStatus string

const (
	PENDING  InvitationStatus = "pending"
	ACCEPTED InvitationStatus = "accepted"
	DECLINED InvitationStatus = "declined"
)

// InviteeKey normalizes the identity an invitation is stored against:
// the registered account id when known, otherwise the lowercased email.
// The key doubles as the invitation's record id, so the storage layer
// itself rejects a second pending invitation for the same pair.
func InviteeKey(inviteeId *string, email string) string {
	if inviteeId != nil {
		return *inviteeId
	}
	return strings.ToLower(strings.TrimSpace(email))
}

type InvitationDTO struct {
	PK              string           `dynamodbav:"PK"`
	SK              string           `dynamodbav:"SK"`
	FirstIndex      string           `dynamodbav:"GS1-PK"`
	ListId          string           `dynamodbav:"listId"`
	ListName        string           `dynamodbav:"listName"`
	ListDescription string           `dynamodbav:"listDescription"`
	Inviter         string           `dynamodbav:"inviter"`
	InviterEmail    string           `dynamodbav:"inviterEmail"`
	InviterName     *string          `dynamodbav:"inviterName,omitempty"`
	InviteeId       *string          `dynamodbav:"inviteeId,omitempty"`
	InviteeEmail    string           `dynamodbav:"inviteeEmail"`
	Status          InvitationStatus `dynamodbav:"status"`
	CreateTime      time.Time        `dynamodbav:"createTime"`
	UpdateTime      time.Time        `dynamodbav:"updateTime"`
}

type InvitationInputDTO struct {
	ListId          *string           `dynamodbav:"listId"`
	ListName        *string           `dynamodbav:"listName"`
	ListDescription *string           `dynamodbav:"listDescription"`
	Inviter         *string           `dynamodbav:"inviter"`
	InviterEmail    *string           `dynamodbav:"inviterEmail"`
	InviterName     *string           `dynamodbav:"inviterName"`
	InviteeId       *string           `dynamodbav:"inviteeId"`
	InviteeEmail    *string           `dynamodbav:"inviteeEmail"`
	Status          *InvitationStatus `dynamodbav:"status"`
}

// Accept and Decline are the two atomic resolution procedures. Both
// return false without error when the invitation is no longer pending
// or the caller is not the invitee.
type InvitationRepository interface {
	Repository[InvitationDTO, InvitationInputDTO]
	Accept(listId string, invitationId string, accountId string, email string) (bool, error)
	Decline(listId string, invitationId string, accountId string, email string) (bool, error)
}
