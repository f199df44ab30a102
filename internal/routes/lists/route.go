package lists

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"philcali.me/shopping/internal/access"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/exceptions"
	"philcali.me/shopping/internal/routes"
	"philcali.me/shopping/internal/routes/util"
)

type ShoppingListService struct {
	data      data.ShoppingListRepository
	grants    data.CollaboratorRepository
	access    *access.ListAccess
	indexName string
}

func NewRouteWithIndex(data data.ShoppingListRepository, grants data.CollaboratorRepository, indexName string) routes.Service {
	return &ShoppingListService{
		data:      data,
		grants:    grants,
		indexName: indexName,
		access: &access.ListAccess{
			Lists:  data,
			Grants: grants,
		},
	}
}

func NewRoute(data data.ShoppingListRepository, grants data.CollaboratorRepository) routes.Service {
	return NewRouteWithIndex(data, grants, os.Getenv("INDEX_NAME_1"))
}

func (sl *ShoppingListService) GetRoutes() map[string]routes.Route {
	return map[string]routes.Route{
		"GET:/lists":            util.AuthorizedRoute(sl.ListShoppingLists),
		"GET:/lists/:listId":    util.AuthorizedRoute(sl.GetShoppingList),
		"POST:/lists":           util.AuthorizedRoute(sl.CreateShoppingList),
		"PUT:/lists/:listId":    util.AuthorizedRoute(sl.UpdateShoppingList),
		"DELETE:/lists/:listId": util.AuthorizedRoute(sl.DeleteShoppingList),
	}
}

// ListShoppingLists merges the lists the caller owns with the lists
// shared with them through collaborator grants. Pagination applies to
// the owned set; the collaborated set rides along unpaginated since a
// user holds at most a handful of grants.
func (sl *ShoppingListService) ListShoppingLists(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	username := util.Username(ctx)
	owned, err := sl.data.List(username, util.ParseQuery(event))
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	grants, err := sl.grants.ListByIndex(username, sl.indexName, data.QueryParams{})
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	merged := owned
	for _, grant := range grants.Items {
		shared, err := sl.data.Get(grant.Owner, grant.ListId)
		if err != nil {
			var nfe *exceptions.NotFoundError
			if errors.As(err, &nfe) {
				// Stale grant; the cascade will sweep it up.
				continue
			}
			return events.APIGatewayV2HTTPResponse{}, err
		}
		merged.Items = append(merged.Items, shared)
	}
	return util.SerializeResponseOK(util.ConvertQueryResultsPartial(NewShoppingList), merged, nil)
}

func (sl *ShoppingListService) GetShoppingList(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	list, _, err := sl.access.Resolve(util.Username(ctx), util.RequestParam(ctx, "listId"))
	return util.SerializeResponseOK(NewShoppingList, list, err)
}

func (sl *ShoppingListService) CreateShoppingList(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	input := ShoppingListInput{}
	if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput(err.Error())
	}
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("A list requires a name")
	}
	if input.Color == nil || !input.Color.Valid() {
		blue := data.BLUE
		input.Color = &blue
	}
	created, err := sl.data.Create(util.Username(ctx), input.ToData(util.Username(ctx)))
	return util.SerializeResponseOK(NewShoppingList, created, err)
}

func (sl *ShoppingListService) UpdateShoppingList(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	input := ShoppingListInput{}
	if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput(err.Error())
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("A list requires a name")
	}
	if input.Color != nil && !input.Color.Valid() {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("Unknown list color")
	}
	username := util.Username(ctx)
	item, err := sl.data.Update(username, util.RequestParam(ctx, "listId"), input.ToData(username))
	return util.SerializeResponseOK(NewShoppingList, item, err)
}

func (sl *ShoppingListService) DeleteShoppingList(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	username := util.Username(ctx)
	listId := util.RequestParam(ctx, "listId")
	if _, err := sl.access.ResolveOwned(username, listId); err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	err := sl.data.Delete(username, listId)
	return util.SerializeResponseNoContent(err)
}
