package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"philcali.me/shopping/internal/config"
	collaboratorData "philcali.me/shopping/internal/dynamodb/collaborators"
	invitationData "philcali.me/shopping/internal/dynamodb/invitations"
	itemData "philcali.me/shopping/internal/dynamodb/items"
	listData "philcali.me/shopping/internal/dynamodb/lists"
	profileData "philcali.me/shopping/internal/dynamodb/profiles"
	subscriberData "philcali.me/shopping/internal/dynamodb/subscriptions"
	"philcali.me/shopping/internal/dynamodb/token"
	"philcali.me/shopping/internal/routes"
	"philcali.me/shopping/internal/routes/invitations"
	"philcali.me/shopping/internal/routes/items"
	"philcali.me/shopping/internal/routes/lists"
	"philcali.me/shopping/internal/routes/profiles"
	"philcali.me/shopping/internal/routes/subscriptions"
	"philcali.me/shopping/internal/sns/services"
)

type App struct {
	Router routes.Router
}

func NewApp() App {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load environment: %s", err))
	}
	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		panic("Failed to load AWS config.")
	}
	client := dynamodb.NewFromConfig(awsCfg)
	snsClient := sns.NewFromConfig(awsCfg)
	marshaler := token.NewGCM()
	listRepo := listData.NewShoppingListService(cfg.TableName, *client, marshaler)
	grantRepo := collaboratorData.NewCollaboratorService(cfg.TableName, *client, marshaler)
	profileRepo := profileData.NewProfileService(cfg.TableName, *client, marshaler)
	router := routes.NewRouter(
		lists.NewRouteWithIndex(listRepo, grantRepo, cfg.IndexName),
		items.NewRoute(itemData.NewListItemService(cfg.TableName, *client, marshaler), listRepo, grantRepo),
		invitations.NewRouteWithIndex(
			invitationData.NewInvitationService(cfg.TableName, *client, marshaler),
			profileRepo,
			listRepo,
			grantRepo,
			cfg.IndexName,
		),
		profiles.NewRouteWithIndex(profileRepo, cfg.IndexName),
		subscriptions.NewRoute(
			subscriberData.NewSubscriptionService(cfg.TableName, *client, marshaler),
			&services.NotificationSNSService{
				Sns:      *snsClient,
				TopicArn: cfg.TopicArn,
			},
		),
	)
	return App{
		Router: *router,
	}
}

func (app *App) HandleRequest(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return app.Router.Invoke(request, ctx), nil
}

func main() {
	app := NewApp()
	lambda.Start(app.HandleRequest)
}
