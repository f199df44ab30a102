package data

type Scope string

const (
	LIST_READ           Scope = "lists.readonly"
	LIST_WRITE          Scope = "lists"
	INVITATION_READ     Scope = "invitations.readonly"
	INVITATION_WRITE    Scope = "invitations"
	PROFILE_READ        Scope = "profile.readonly"
	PROFILE_WRITE       Scope = "profile"
	SUBSCRIPTIONS_READ  Scope = "subscriptions.readonly"
	SUBSCRIPTIONS_WRITE Scope = "subscriptions"
)
