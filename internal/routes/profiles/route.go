package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/exceptions"
	"philcali.me/shopping/internal/routes"
	"philcali.me/shopping/internal/routes/util"
)

type ProfileService struct {
	data      data.ProfileRepository
	indexName string
}

func NewRouteWithIndex(data data.ProfileRepository, indexName string) routes.Service {
	return &ProfileService{
		data:      data,
		indexName: indexName,
	}
}

func NewRoute(data data.ProfileRepository) routes.Service {
	return NewRouteWithIndex(data, os.Getenv("INDEX_NAME_1"))
}

func (s *ProfileService) GetRoutes() map[string]routes.Route {
	return map[string]routes.Route{
		"GET:/profile":  util.AuthorizedRoute(s.GetProfile),
		"POST:/profile": util.AuthorizedRoute(s.PutProfile),
		"GET:/profiles": util.AuthorizedRoute(s.LookupProfile),
	}
}

func (s *ProfileService) GetProfile(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	item, err := s.data.Get(data.GLOBAL_ACCOUNT, util.Username(ctx))
	return util.SerializeResponseOK(NewProfile, item, err)
}

// PutProfile registers or refreshes the caller's profile. The email
// always comes from the verified identity claims, never from the body.
func (s *ProfileService) PutProfile(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	input := ProfileInput{}
	if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput(err.Error())
	}
	claims := util.AuthorizationClaims(event)
	email, ok := claims["email"]
	if !ok || strings.TrimSpace(email) == "" {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("Identity is missing a verified email")
	}
	updateItem := data.ProfileInputDTO{
		Name:  input.Name,
		Email: &email,
	}
	username := util.Username(ctx)
	item, err := s.data.CreateWithItemId(data.GLOBAL_ACCOUNT, updateItem, username)
	if err == nil {
		return util.SerializeResponseOK(NewProfile, item, nil)
	}
	var ce *exceptions.ConflictError
	if errors.As(err, &ce) {
		item, err = s.data.Update(data.GLOBAL_ACCOUNT, username, updateItem)
		return util.SerializeResponseOK(NewProfile, item, err)
	}
	return events.APIGatewayV2HTTPResponse{}, exceptions.InternalServer(err.Error())
}

func (s *ProfileService) LookupProfile(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	email, ok := event.QueryStringParameters["email"]
	if !ok || strings.TrimSpace(email) == "" {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("Need an email parameter set")
	}
	return util.SerializeListByIndexAndHash[data.ProfileDTO, data.ProfileInputDTO](s.data, NewProfile, s.indexName, event, strings.ToLower(strings.TrimSpace(email)))
}
