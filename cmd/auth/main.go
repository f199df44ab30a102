package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"philcali.me/shopping/internal/config"
	"philcali.me/shopping/internal/data"
)

// JWTAuth exchanges the bearer token against the pool's userInfo
// endpoint and forwards the verified claims to the API routes.
func JWTAuth(ctx context.Context, apiToken string) (*events.APIGatewayV2CustomAuthorizerSimpleResponse, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/oauth2/userInfo", cfg.AuthPoolUrl), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Add("Authorization", apiToken)
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to invoke request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invalid %s with token: %s", req.URL.String(), apiToken)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}
	var claims map[string]interface{}
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse claims: %v", err)
	}
	if _, ok := claims["username"]; !ok {
		claims["username"] = claims["sub"]
	}
	return &events.APIGatewayV2CustomAuthorizerSimpleResponse{
		IsAuthorized: true,
		Context: map[string]interface{}{
			"claims": claims,
			"scopes": []string{
				string(data.LIST_WRITE),
				string(data.INVITATION_WRITE),
				string(data.PROFILE_WRITE),
				string(data.SUBSCRIPTIONS_WRITE),
			},
		},
	}, nil
}

func HandleRequest(ctx context.Context, event events.APIGatewayV2CustomAuthorizerV2Request) (events.APIGatewayV2CustomAuthorizerSimpleResponse, error) {
	response := events.APIGatewayV2CustomAuthorizerSimpleResponse{
		IsAuthorized: false,
	}
	apiToken, ok := event.Headers["authorization"]
	if ok {
		newResp, err := JWTAuth(ctx, apiToken)
		if newResp != nil {
			return *newResp, nil
		}
		if err != nil {
			fmt.Printf("Rejecting auth due to %v\n", err)
		}
	}
	return response, nil
}

func main() {
	lambda.Start(HandleRequest)
}
