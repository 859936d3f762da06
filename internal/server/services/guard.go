package services

import "github.com/dmitrijs2005/notekeeper/internal/common"

// owned is any loaded resource that knows its owning user.
type owned interface {
	Owner() string
}

// authorizeOwner is the single ownership decision point, applied before every
// single-resource read, update, or delete. A missing resource yields
// common.ErrorNotFound, a foreign one common.ErrorUnauthorized; the two are
// mutually exclusive. Pure function, no side effects.
func authorizeOwner(resource owned, userID string) error {
	if resource == nil {
		return common.ErrorNotFound
	}
	if resource.Owner() != userID {
		return common.ErrorUnauthorized
	}
	return nil
}
