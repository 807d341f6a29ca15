package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/averoza/account-api/internal/domain"
)

type VerificationTokenRepository interface {
	Create(ctx context.Context, token *domain.VerificationToken) (*domain.VerificationToken, error)
	FindByAccount(ctx context.Context, accountID bson.ObjectID) (*domain.VerificationToken, error)
	DeleteByAccount(ctx context.Context, accountID bson.ObjectID) error
}
