package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Account is a registered user. Verified flips to true exactly once, when the
// owner follows the verification link; until then sign-in is refused.
type Account struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash []byte        `bson:"password_hash" json:"-"`
	PasswordSalt []byte        `bson:"password_salt" json:"-"`
	DateOfBirth  time.Time     `bson:"date_of_birth" json:"date_of_birth"`
	Verified     bool          `bson:"verified" json:"verified"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}
