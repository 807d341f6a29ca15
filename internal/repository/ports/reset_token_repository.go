package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/averoza/account-api/internal/domain"
)

type ResetTokenRepository interface {
	Create(ctx context.Context, token *domain.ResetToken) (*domain.ResetToken, error)
	FindByAccount(ctx context.Context, accountID bson.ObjectID) (*domain.ResetToken, error)
	DeleteByAccount(ctx context.Context, accountID bson.ObjectID) error
}
