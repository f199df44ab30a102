package invitations

import (
	"time"

	"philcali.me/shopping/internal/data"
)

type Invitation struct {
	Id              string                `json:"invitationId"`
	ListId          string                `json:"listId"`
	ListName        string                `json:"listName"`
	ListDescription string                `json:"listDescription"`
	Inviter         string                `json:"inviter"`
	InviterEmail    string                `json:"inviterEmail"`
	InviterName     *string               `json:"inviterName,omitempty"`
	InviteeId       *string               `json:"inviteeId,omitempty"`
	InviteeEmail    string                `json:"inviteeEmail"`
	Status          data.InvitationStatus `json:"status"`
	InvitedAt       time.Time             `json:"invitedAt"`
}

type InvitationInput struct {
	Email *string `json:"email"`
}

type InvitationResult struct {
	Resolved bool `json:"resolved"`
}

func NewInvitation(invite data.InvitationDTO) Invitation {
	return Invitation{
		Id:              invite.SK,
		ListId:          invite.ListId,
		ListName:        invite.ListName,
		ListDescription: invite.ListDescription,
		Inviter:         invite.Inviter,
		InviterEmail:    invite.InviterEmail,
		InviterName:     invite.InviterName,
		InviteeId:       invite.InviteeId,
		InviteeEmail:    invite.InviteeEmail,
		Status:          invite.Status,
		InvitedAt:       invite.CreateTime,
	}
}
