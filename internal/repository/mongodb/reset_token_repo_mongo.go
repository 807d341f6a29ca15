package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/averoza/account-api/internal/domain"
)

const resetTokenCollection = "reset_tokens"

type ResetTokenRepository struct {
	db *mongo.Database
}

func NewResetTokenRepo(db *mongo.Database) *ResetTokenRepository {
	return &ResetTokenRepository{db: db}
}

func (r *ResetTokenRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(resetTokenCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "account_id", Value: 1}},
	})
	return err
}

func (r *ResetTokenRepository) Create(ctx context.Context, token *domain.ResetToken) (*domain.ResetToken, error) {
	result, err := r.db.Collection(resetTokenCollection).InsertOne(ctx, token)
	if err != nil {
		return nil, err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		token.ID = id
	}
	return token, nil
}

// FindByAccount returns the most recently issued token. Issuance deletes
// prior rows first, so after a second request only the latest secret can
// still validate.
func (r *ResetTokenRepository) FindByAccount(ctx context.Context, accountID bson.ObjectID) (*domain.ResetToken, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var token domain.ResetToken
	err := r.db.Collection(resetTokenCollection).FindOne(ctx, bson.M{"account_id": accountID}, opts).Decode(&token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *ResetTokenRepository) DeleteByAccount(ctx context.Context, accountID bson.ObjectID) error {
	_, err := r.db.Collection(resetTokenCollection).DeleteMany(ctx, bson.M{"account_id": accountID})
	return err
}
