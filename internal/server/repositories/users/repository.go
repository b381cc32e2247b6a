// Package users holds the user directory: an ordered collection of
// registered accounts keyed by auto-incrementing id and unique username.
package users

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

type Repository interface {
	// Create assigns the next id, sets it on the returned copy, and appends
	// the user. A duplicate username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername performs a case-sensitive exact-match lookup and returns
	// common.ErrorNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
