package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// VerificationToken holds the hashed counterpart of the secret mailed out at
// signup. The raw secret is never persisted.
type VerificationToken struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID  bson.ObjectID `bson:"account_id" json:"account_id"`
	SecretHash []byte        `bson:"secret_hash" json:"-"`
	SecretSalt []byte        `bson:"secret_salt" json:"-"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	ExpiresAt  time.Time     `bson:"expires_at" json:"expires_at"`
}

func (t *VerificationToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
