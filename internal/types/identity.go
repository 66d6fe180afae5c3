package types

import (
	"github.com/go-playground/validator/v10"
)

// Identity is the signed-in user as supplied by the authentication collaborator.
// The persistence policy only cares whether one is present and its ID.
type Identity struct {
	ID          string `json:"id" validate:"required"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarURL   string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the Identity using the validator.
func (i *Identity) Validate() error {
	validate := validator.New()
	return validate.Struct(i)
}

// SameIdentity reports whether a and b refer to the same user (or are both absent).
func SameIdentity(a, b *Identity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}
