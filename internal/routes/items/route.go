package items

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"philcali.me/shopping/internal/access"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/exceptions"
	"philcali.me/shopping/internal/routes"
	"philcali.me/shopping/internal/routes/util"
)

type ListItemService struct {
	data   data.ListItemRepository
	access *access.ListAccess
}

func NewRoute(data data.ListItemRepository, lists data.ShoppingListRepository, grants data.CollaboratorRepository) routes.Service {
	return &ListItemService{
		data: data,
		access: &access.ListAccess{
			Lists:  lists,
			Grants: grants,
		},
	}
}

func (li *ListItemService) GetRoutes() map[string]routes.Route {
	return map[string]routes.Route{
		"GET:/lists/:listId/items":            util.AuthorizedRoute(li.ListItems),
		"GET:/lists/:listId/items/:itemId":    util.AuthorizedRoute(li.GetItem),
		"POST:/lists/:listId/items":           util.AuthorizedRoute(li.CreateItem),
		"PUT:/lists/:listId/items/:itemId":    util.AuthorizedRoute(li.UpdateItem),
		"DELETE:/lists/:listId/items/:itemId": util.AuthorizedRoute(li.DeleteItem),
	}
}

func (li *ListItemService) authorize(ctx context.Context) (string, error) {
	listId := util.RequestParam(ctx, "listId")
	if _, _, err := li.access.Resolve(util.Username(ctx), listId); err != nil {
		return "", err
	}
	return listId, nil
}

func (li *ListItemService) ListItems(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	listId, err := li.authorize(ctx)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	results, err := li.data.List(listId, util.ParseQuery(event))
	return util.SerializeResponseOK(util.ConvertQueryResultsPartial(NewListItem), results, err)
}

func (li *ListItemService) GetItem(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	listId, err := li.authorize(ctx)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	item, err := li.data.Get(listId, util.RequestParam(ctx, "itemId"))
	return util.SerializeResponseOK(NewListItem, item, err)
}

func (li *ListItemService) CreateItem(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	listId, err := li.authorize(ctx)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	input := ListItemInput{}
	if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput(err.Error())
	}
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("An item requires a name")
	}
	if input.Category == nil {
		other := data.OTHER
		input.Category = &other
	}
	if !input.Category.Valid() {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("Unknown item category")
	}
	if input.Quantity == nil {
		one := Quantity(1)
		input.Quantity = &one
	}
	if input.Completed == nil {
		input.Completed = aws.Bool(false)
	}
	created, err := li.data.Create(listId, input.ToData(util.Username(ctx), time.Now()))
	return util.SerializeResponseOK(NewListItem, created, err)
}

func (li *ListItemService) UpdateItem(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	listId, err := li.authorize(ctx)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	input := ListItemInput{}
	if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput(err.Error())
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("An item requires a name")
	}
	if input.Category != nil && !input.Category.Valid() {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("Unknown item category")
	}
	item, err := li.data.Update(listId, util.RequestParam(ctx, "itemId"), input.ToData(util.Username(ctx), time.Now()))
	return util.SerializeResponseOK(NewListItem, item, err)
}

func (li *ListItemService) DeleteItem(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	listId, err := li.authorize(ctx)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	err = li.data.Delete(listId, util.RequestParam(ctx, "itemId"))
	return util.SerializeResponseNoContent(err)
}
