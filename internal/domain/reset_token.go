package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ResetToken authorizes a single password change for a verified account.
// At most one is intended to be active per account; issuing a new one deletes
// all prior rows first.
type ResetToken struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID  bson.ObjectID `bson:"account_id" json:"account_id"`
	SecretHash []byte        `bson:"secret_hash" json:"-"`
	SecretSalt []byte        `bson:"secret_salt" json:"-"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	ExpiresAt  time.Time     `bson:"expires_at" json:"expires_at"`
}

func (t *ResetToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
