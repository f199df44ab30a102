package notifications

type SubscribeInput struct {
	Endpoint *string
	Protocol *string
	// Recipients narrows delivery to messages published for these
	// identities (account id and email of the subscriber).
	Recipients []string
}

type SubscribeOutput struct {
	SubscriberId string
}

type PublishInput struct {
	Subject    *string
	Message    string
	Recipients []string
}

type NotificationService interface {
	Subscribe(input SubscribeInput) (*SubscribeOutput, error)
	Unsubscribe(subscriberId string) error
	Publish(input PublishInput) error
}
