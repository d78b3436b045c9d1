package commands

import (
	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/pkg/validate"
)

// ByIDQuery identifies a single-entity lookup. Constructed the same way as
// commands: an unset identifier never reaches a repository.
type ByIDQuery struct {
	ID uuid.UUID
}

func NewByIDQuery(id uuid.UUID) (ByIDQuery, error) {
	if err := validate.RequiredID("id", id); err != nil {
		return ByIDQuery{}, err
	}
	return ByIDQuery{ID: id}, nil
}

// ByUserQuery identifies a per-user collection lookup.
type ByUserQuery struct {
	UserID uuid.UUID
}

func NewByUserQuery(userID uuid.UUID) (ByUserQuery, error) {
	if err := validate.RequiredID("user_id", userID); err != nil {
		return ByUserQuery{}, err
	}
	return ByUserQuery{UserID: userID}, nil
}
