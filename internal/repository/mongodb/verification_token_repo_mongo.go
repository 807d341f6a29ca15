package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/averoza/account-api/internal/domain"
)

const verificationTokenCollection = "verification_tokens"

type VerificationTokenRepository struct {
	db *mongo.Database
}

func NewVerificationTokenRepo(db *mongo.Database) *VerificationTokenRepository {
	return &VerificationTokenRepository{db: db}
}

func (r *VerificationTokenRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(verificationTokenCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "account_id", Value: 1}},
	})
	return err
}

func (r *VerificationTokenRepository) Create(ctx context.Context, token *domain.VerificationToken) (*domain.VerificationToken, error) {
	result, err := r.db.Collection(verificationTokenCollection).InsertOne(ctx, token)
	if err != nil {
		return nil, err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		token.ID = id
	}
	return token, nil
}

// FindByAccount returns the most recently issued token for the account.
func (r *VerificationTokenRepository) FindByAccount(ctx context.Context, accountID bson.ObjectID) (*domain.VerificationToken, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var token domain.VerificationToken
	err := r.db.Collection(verificationTokenCollection).FindOne(ctx, bson.M{"account_id": accountID}, opts).Decode(&token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *VerificationTokenRepository) DeleteByAccount(ctx context.Context, accountID bson.ObjectID) error {
	_, err := r.db.Collection(verificationTokenCollection).DeleteMany(ctx, bson.M{"account_id": accountID})
	return err
}
