package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/averoza/account-api/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*domain.Account, error)
	MarkVerified(ctx context.Context, id bson.ObjectID) error
	UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash, passwordSalt []byte) error
	Delete(ctx context.Context, id bson.ObjectID) error
}
