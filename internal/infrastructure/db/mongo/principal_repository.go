package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

const (
	collectionUsers  = "users"
	duplicateKeyCode = 11000
)

type PrincipalRepository struct {
	col *mongo.Collection
}

func NewPrincipalRepository(db *mongo.Database) *PrincipalRepository {
	return &PrincipalRepository{col: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID           string  `bson:"_id"`
	Name         string  `bson:"name"`
	Email        string  `bson:"email"`
	PasswordHash string  `bson:"hashed_password"`
	Role         string  `bson:"role"`
	Avatar       *string `bson:"avatar"`
	CreatedAt    int64   `bson:"created_at"`
}

func (r *PrincipalRepository) Create(ctx context.Context, p *domain.Principal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		ID:           p.ID,
		Name:         p.Name,
		Email:        domain.NormalizeEmail(p.Email),
		PasswordHash: p.PasswordHash,
		Role:         string(p.Role),
		Avatar:       p.Avatar,
		CreatedAt:    p.CreatedAt.Unix(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return userInsertErr(err)
	}
	return nil
}

// userInsertErr tells an _id collision apart from a taken email.
func userInsertErr(err error) error {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == duplicateKeyCode && strings.Contains(e.Message, "index: _id_ ") {
				return domain.ErrDuplicateID
			}
		}
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrEmailTaken
	}
	return fmt.Errorf("insert user: %w", err)
}

func (r *PrincipalRepository) FindByID(ctx context.Context, id string) (*domain.Principal, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PrincipalRepository) FindByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	return r.findOne(ctx, bson.M{"email": domain.NormalizeEmail(email)})
}

// EnsureIndexes creates the unique email index.
func (r *PrincipalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *PrincipalRepository) findOne(ctx context.Context, filter bson.M) (*domain.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.Principal{
		ID:           mu.ID,
		Name:         mu.Name,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Role:         domain.Role(mu.Role),
		Avatar:       mu.Avatar,
		CreatedAt:    unixToTime(mu.CreatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
