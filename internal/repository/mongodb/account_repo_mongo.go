package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/averoza/account-api/internal/domain"
)

const accountCollection = "accounts"

type AccountRepository struct {
	db *mongo.Database
}

func NewAccountRepo(db *mongo.Database) *AccountRepository {
	return &AccountRepository{db: db}
}

// EnsureIndexes creates the unique email index backing the
// one-account-per-email invariant.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(accountCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	result, err := r.db.Collection(accountCollection).InsertOne(ctx, account)
	if err != nil {
		return nil, err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		account.ID = id
	}
	return account, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.Collection(accountCollection).FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id bson.ObjectID) (*domain.Account, error) {
	var account domain.Account
	err := r.db.Collection(accountCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) MarkVerified(ctx context.Context, id bson.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"verified":   true,
		"updated_at": time.Now(),
	}}
	result, err := r.db.Collection(accountCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash, passwordSalt []byte) error {
	update := bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"password_salt": passwordSalt,
		"updated_at":    time.Now(),
	}}
	result, err := r.db.Collection(accountCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.db.Collection(accountCollection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
