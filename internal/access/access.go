package access

import (
	"errors"

	"philcali.me/shopping/internal/data"
	"philcali.me/shopping/internal/exceptions"
)

// ListAccess answers "may this account touch this list" by resolving
// either ownership or a collaborator grant. Lists live in their owner's
// partition, so a collaborator reaches the record through the grant's
// stored owner id.
type ListAccess struct {
	Lists  data.ShoppingListRepository
	Grants data.CollaboratorRepository
}

// Resolve returns the list and whether the caller owns it. A caller
// with neither ownership nor a grant gets the not-found error from the
// grant lookup, indistinguishable from a list that does not exist.
func (la *ListAccess) Resolve(accountId string, listId string) (data.ShoppingListDTO, bool, error) {
	list, err := la.Lists.Get(accountId, listId)
	if err == nil {
		return list, true, nil
	}
	var nfe *exceptions.NotFoundError
	if !errors.As(err, &nfe) {
		return list, false, err
	}
	grant, err := la.Grants.Get(listId, accountId)
	if err != nil {
		return data.ShoppingListDTO{}, false, exceptions.NotFound("shoppinglist", listId)
	}
	list, err = la.Lists.Get(grant.Owner, grant.ListId)
	return list, false, err
}

// ResolveOwned is Resolve restricted to the list owner; collaborators
// are rejected with a forbidden error.
func (la *ListAccess) ResolveOwned(accountId string, listId string) (data.ShoppingListDTO, error) {
	list, owner, err := la.Resolve(accountId, listId)
	if err != nil {
		return list, err
	}
	if !owner {
		return list, exceptions.Forbidden("Only the list owner may do that")
	}
	return list, nil
}
