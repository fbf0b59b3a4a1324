package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

const collectionCounters = "counters"

// envelope stores the record fields at the top level plus an insertion sequence.
type envelope[T any] struct {
	Seq int64 `bson:"_seq"`
	Rec T     `bson:",inline"`
}

// RecordStore keeps one resource in its own collection, keyed by _id.
type RecordStore[T any] struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewRecordStore[T any](db *mongo.Database, collection string) *RecordStore[T] {
	return &RecordStore[T]{
		col:      db.Collection(collection),
		counters: db.Collection(collectionCounters),
	}
}

func (s *RecordStore[T]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := s.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.col.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	for cur.Next(ctx) {
		var env envelope[T]
		if err := cur.Decode(&env); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.col.Name(), err)
		}
		out = append(out, env.Rec)
	}
	return out, cur.Err()
}

func (s *RecordStore[T]) Get(ctx context.Context, id string) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var env envelope[T]
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&env); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return env.Rec, domain.ErrNotFound
		}
		return env.Rec, fmt.Errorf("find %s: %w", s.col.Name(), err)
	}
	return env.Rec, nil
}

func (s *RecordStore[T]) Insert(ctx context.Context, _ string, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	seq, err := s.nextSeq(ctx)
	if err != nil {
		return err
	}
	if _, err := s.col.InsertOne(ctx, envelope[T]{Seq: seq, Rec: rec}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("insert %s: %w", s.col.Name(), err)
	}
	return nil
}

// Replace overwrites the record fields but keeps the stored sequence.
func (s *RecordStore[T]) Replace(ctx context.Context, id string, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := bson.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.col.Name(), err)
	}
	var fields bson.M
	if err := bson.Unmarshal(doc, &fields); err != nil {
		return fmt.Errorf("encode %s: %w", s.col.Name(), err)
	}
	delete(fields, "_id")

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update %s: %w", s.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *RecordStore[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the ordering index on _seq.
func (s *RecordStore[T]) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "_seq", Value: 1}}})
	return err
}

func (s *RecordStore[T]) nextSeq(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": s.col.Name()},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", s.col.Name(), err)
	}
	return counter.Seq, nil
}
