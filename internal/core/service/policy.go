package service

import "github.com/inkwellhq/blog-api/internal/core/domain"

// OwnershipPolicy gates mutating operations: only the owner of a resource
// may change it. There is no admin override.
type OwnershipPolicy struct{}

// AuthorizeMutation allows the mutation iff the principal is the resource
// owner, and returns domain.ErrForbidden otherwise.
func (OwnershipPolicy) AuthorizeMutation(principal domain.Principal, ownerID string) error {
	if principal.UserID == "" || principal.UserID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}
