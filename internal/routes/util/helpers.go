package util

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/exceptions"
	"philcali.me/shopping/internal/routes"
)

// AuthorizationClaims pulls the identity claims the authorizer stashed
// on the request. Values are stringified since the authorizer context
// crosses an interface{} boundary.
func AuthorizationClaims(event events.APIGatewayV2HTTPRequest) map[string]string {
	claims := make(map[string]string)
	if collection, ok := event.RequestContext.Authorizer.Lambda["claims"]; ok {
		if mapped, ok := collection.(map[string]interface{}); ok {
			for field, value := range mapped {
				claims[field] = fmt.Sprintf("%s", value)
			}
		}
	}
	return claims
}

func AuthorizedRoute(route routes.Route) routes.Route {
	return func(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
		claims := AuthorizationClaims(event)
		if username, ok := claims["username"]; ok {
			return route(event, context.WithValue(ctx, "Username", username))
		}
		return events.APIGatewayV2HTTPResponse{}, exceptions.InternalServer("Unexpected internal error")
	}
}

func Username(ctx context.Context) string {
	return ctx.Value("Username").(string)
}

func RequestParam(ctx context.Context, name string) string {
	if params, ok := ctx.Value("Params").(map[string]string); ok {
		return params[name]
	}
	return ""
}

func ParseQuery(event events.APIGatewayV2HTTPRequest) data.QueryParams {
	params := data.QueryParams{}
	if limit, ok := event.QueryStringParameters["limit"]; ok {
		if parsed, err := strconv.Atoi(limit); err == nil {
			params.Limit = parsed
		}
	}
	if nextToken, ok := event.QueryStringParameters["nextToken"]; ok {
		params.NextToken = &nextToken
	}
	return params
}

func SerializeResponse[T interface{}, R interface{}](delayed func(T) R, thing T, err error, statusCode int) (events.APIGatewayV2HTTPResponse, error) {
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	body, err := json.Marshal(delayed(thing))
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	headers := map[string]string{
		"Content-Type":   "application/json",
		"Content-Length": strconv.Itoa(len(body)),
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(body),
	}, nil
}

func SerializeResponseOK[T interface{}, R interface{}](delayed func(T) R, thing T, err error) (events.APIGatewayV2HTTPResponse, error) {
	return SerializeResponse(delayed, thing, err, 200)
}

func SerializeResponseNoContent(err error) (events.APIGatewayV2HTTPResponse, error) {
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: 204,
	}, nil
}

func SerializeList[D interface{}, I interface{}, R interface{}](repo data.Repository[D, I], thunk func(D) R, event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	results, err := repo.List(Username(ctx), ParseQuery(event))
	return SerializeResponseOK(ConvertQueryResultsPartial(thunk), results, err)
}

func SerializeListByIndexAndHash[D interface{}, I interface{}, R interface{}](repo data.Repository[D, I], thunk func(D) R, indexName string, event events.APIGatewayV2HTTPRequest, hashId string) (events.APIGatewayV2HTTPResponse, error) {
	results, err := repo.ListByIndex(hashId, indexName, ParseQuery(event))
	return SerializeResponseOK(ConvertQueryResultsPartial(thunk), results, err)
}

func ConvertQueryResults[D interface{}, R interface{}](items data.QueryResults[D], thunk func(D) R) data.QueryResults[R] {
	if items.Items != nil {
		newItems := make([]R, len(items.Items))
		for i, rd := range items.Items {
			newItems[i] = thunk(rd)
		}
		return data.QueryResults[R]{
			Items:     newItems,
			NextToken: items.NextToken,
		}
	}
	return data.QueryResults[R]{
		Items: make([]R, 0),
	}
}

func ConvertQueryResultsPartial[D interface{}, R interface{}](thunk func(D) R) func(data.QueryResults[D]) data.QueryResults[R] {
	return func(d data.QueryResults[D]) data.QueryResults[R] {
		return ConvertQueryResults(d, thunk)
	}
}
