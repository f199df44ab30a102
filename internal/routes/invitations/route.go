package invitations

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"philcali.me/shopping/internal/access"
	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/exceptions"
	"philcali.me/shopping/internal/routes"
	"philcali.me/shopping/internal/routes/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type InvitationService struct {
	data      data.InvitationRepository
	profiles  data.ProfileRepository
	grants    data.CollaboratorRepository
	access    *access.ListAccess
	indexName string
}

func NewRouteWithIndex(data data.InvitationRepository, profiles data.ProfileRepository, lists data.ShoppingListRepository, grants data.CollaboratorRepository, indexName string) routes.Service {
	return &InvitationService{
		data:      data,
		profiles:  profiles,
		grants:    grants,
		indexName: indexName,
		access: &access.ListAccess{
			Lists:  lists,
			Grants: grants,
		},
	}
}

func NewRoute(data data.InvitationRepository, profiles data.ProfileRepository, lists data.ShoppingListRepository, grants data.CollaboratorRepository) routes.Service {
	return NewRouteWithIndex(data, profiles, lists, grants, os.Getenv("INDEX_NAME_1"))
}

func (s *InvitationService) GetRoutes() map[string]routes.Route {
	return map[string]routes.Route{
		"GET:/invitations":                                      util.AuthorizedRoute(s.ListReceivedInvitations),
		"GET:/lists/:listId/invitations":                        util.AuthorizedRoute(s.ListPendingInvitations),
		"POST:/lists/:listId/invitations":                       util.AuthorizedRoute(s.CreateInvitation),
		"DELETE:/lists/:listId/invitations/:invitationId":       util.AuthorizedRoute(s.CancelInvitation),
		"POST:/lists/:listId/invitations/:invitationId/accept":  util.AuthorizedRoute(s.AcceptInvitation),
		"POST:/lists/:listId/invitations/:invitationId/decline": util.AuthorizedRoute(s.DeclineInvitation),
	}
}

func (s *InvitationService) callerEmail(event events.APIGatewayV2HTTPRequest) string {
	return strings.ToLower(strings.TrimSpace(util.AuthorizationClaims(event)["email"]))
}

// ListReceivedInvitations merges the invitations addressed to the
// caller's account id with those addressed to their email before they
// registered. Each record carries exactly one of the two hashes, so
// the union has no duplicates.
func (s *InvitationService) ListReceivedInvitations(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	username := util.Username(ctx)
	byId, err := s.data.ListByIndex(username, s.indexName, util.ParseQuery(event))
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	merged := byId
	if email := s.callerEmail(event); email != "" && email != username {
		byEmail, err := s.data.ListByIndex(email, s.indexName, data.QueryParams{})
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, err
		}
		merged.Items = append(merged.Items, byEmail.Items...)
	}
	sort.Slice(merged.Items, func(i, j int) bool {
		return merged.Items[i].CreateTime.After(merged.Items[j].CreateTime)
	})
	return util.SerializeResponseOK(util.ConvertQueryResultsPartial(NewInvitation), merged, nil)
}

func (s *InvitationService) ListPendingInvitations(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	listId := util.RequestParam(ctx, "listId")
	if _, err := s.access.ResolveOwned(util.Username(ctx), listId); err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	results, err := s.data.List(listId, util.ParseQuery(event))
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	sort.Slice(results.Items, func(i, j int) bool {
		return results.Items[i].CreateTime.After(results.Items[j].CreateTime)
	})
	return util.SerializeResponseOK(util.ConvertQueryResultsPartial(NewInvitation), results, nil)
}

func (s *InvitationService) CreateInvitation(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	username := util.Username(ctx)
	listId := util.RequestParam(ctx, "listId")
	list, err := s.access.ResolveOwned(username, listId)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	input := InvitationInput{}
	if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput(err.Error())
	}
	if input.Email == nil || !emailPattern.MatchString(strings.TrimSpace(*input.Email)) {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("A valid email is required")
	}
	email := strings.ToLower(strings.TrimSpace(*input.Email))
	if email == s.callerEmail(event) {
		return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("Cannot invite yourself")
	}

	// Opportunistic resolution: an unregistered email is still a valid
	// invitee, keyed by address until they sign up.
	var inviteeId *string
	resolved, err := s.profiles.ListByIndex(email, s.indexName, data.QueryParams{Limit: 1})
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	if len(resolved.Items) > 0 {
		inviteeId = aws.String(resolved.Items[0].SK)
		if *inviteeId == username {
			return events.APIGatewayV2HTTPResponse{}, exceptions.InvalidInput("Cannot invite yourself")
		}
		if _, err := s.grants.Get(listId, *inviteeId); err == nil {
			return events.APIGatewayV2HTTPResponse{}, exceptions.ConflictMessage("This user already has access to this list")
		}
		// An invitation sent before the invitee registered is still
		// keyed by the email, so the conditional put on the account id
		// would not collide with it.
		if _, err := s.data.Get(listId, email); err == nil {
			return events.APIGatewayV2HTTPResponse{}, exceptions.ConflictMessage("This user has already been invited to this list")
		}
	}

	var inviterName *string
	if profile, err := s.profiles.Get(data.GLOBAL_ACCOUNT, username); err == nil {
		inviterName = profile.Name
	}

	created, err := s.data.CreateWithItemId(listId, data.InvitationInputDTO{
		ListId:          &listId,
		ListName:        &list.Name,
		ListDescription: &list.Description,
		Inviter:         &username,
		InviterEmail:    aws.String(s.callerEmail(event)),
		InviterName:     inviterName,
		InviteeId:       inviteeId,
		InviteeEmail:    &email,
	}, data.InviteeKey(inviteeId, email))
	if err != nil {
		var ce *exceptions.ConflictError
		if errors.As(err, &ce) {
			return events.APIGatewayV2HTTPResponse{}, exceptions.ConflictMessage("This user has already been invited to this list")
		}
		return events.APIGatewayV2HTTPResponse{}, err
	}
	return util.SerializeResponseOK(NewInvitation, created, nil)
}

func (s *InvitationService) CancelInvitation(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	listId := util.RequestParam(ctx, "listId")
	if _, err := s.access.ResolveOwned(util.Username(ctx), listId); err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	err := s.data.Delete(listId, util.RequestParam(ctx, "invitationId"))
	return util.SerializeResponseNoContent(err)
}

func _result(resolved bool) InvitationResult {
	return InvitationResult{Resolved: resolved}
}

func (s *InvitationService) AcceptInvitation(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	accepted, err := s.data.Accept(
		util.RequestParam(ctx, "listId"),
		util.RequestParam(ctx, "invitationId"),
		util.Username(ctx),
		s.callerEmail(event),
	)
	return util.SerializeResponseOK(_result, accepted, err)
}

func (s *InvitationService) DeclineInvitation(event events.APIGatewayV2HTTPRequest, ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	declined, err := s.data.Decline(
		util.RequestParam(ctx, "listId"),
		util.RequestParam(ctx, "invitationId"),
		util.Username(ctx),
		s.callerEmail(event),
	)
	return util.SerializeResponseOK(_result, declined, err)
}
