package main

import (
	"context"
	"fmt"

	lambdaEvents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"philcali.me/shopping/internal/config"
	"philcali.me/shopping/internal/dynamodb/collaborators"
	"philcali.me/shopping/internal/dynamodb/invitations"
	"philcali.me/shopping/internal/dynamodb/items"
	"philcali.me/shopping/internal/dynamodb/token"
	"philcali.me/shopping/internal/events"
	"philcali.me/shopping/internal/sns/services"
)

func HandleRequest(ctx context.Context, event lambdaEvents.DynamoDBEvent) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}

	client := dynamodb.NewFromConfig(awsCfg)
	marshaler := token.NewGCM()
	itemData := items.NewListItemService(cfg.TableName, *client, marshaler)
	invitationData := invitations.NewInvitationService(cfg.TableName, *client, marshaler)
	collaboratorData := collaborators.NewCollaboratorService(cfg.TableName, *client, marshaler)
	notifier := &services.NotificationSNSService{
		Sns:      *sns.NewFromConfig(awsCfg),
		TopicArn: cfg.TopicArn,
	}

	handlers := []events.EventFilter{
		events.DefaultNotifyInvitationHandler(notifier),
		events.DefaultClaimEmailInvitationsHandler(invitationData, cfg.IndexName),
		events.DefaultCascadeListRemovalHandler(itemData, invitationData, collaboratorData),
	}

	for _, record := range event.Records {
		for _, handler := range handlers {
			if handler.Filter(record) {
				if err := handler.Apply(record); err != nil {
					fmt.Printf("ERROR: failed to handle %s: %v", err.Error(), record)
					break
				}
			}
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
