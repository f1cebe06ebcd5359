package user

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/userapi/pkg/validator"
)

const (
	maxNameLength  = 256
	maxEmailLength = 320
)

// User is both the stored document and the API representation.
// ID and CreatedAt are omitted from JSON until the store has assigned them.
type User struct {
	ID        *bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string         `bson:"name" json:"name"`
	Email     string         `bson:"email" json:"email"`
	CreatedAt *time.Time     `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// CreateUserRequest is the POST /users payload.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate requires non-blank name and email within storage limits.
// Email format and uniqueness are not checked.
func (r CreateUserRequest) Validate() error {
	return validator.Apply(
		validator.Required("name", r.Name),
		validator.MaxLen("name", r.Name, maxNameLength),
		validator.Required("email", r.Email),
		validator.MaxLen("email", r.Email, maxEmailLength),
	)
}

// UpdateUserRequest is a partial patch: nil fields are left untouched.
type UpdateUserRequest struct {
	ID    string  `json:"-" path:"id"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// setDocument returns the $set payload for the fields present in the patch.
func (r UpdateUserRequest) setDocument() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Email != nil {
		set["email"] = *r.Email
	}
	return set
}
