package receivables

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mg "receivables_api/internal/config/connections/mongo"
	"receivables_api/internal/models"
)

const Collection = "receber"

var (
	ErrInvalidID = errors.New("invalid id")
	ErrNotFound  = errors.New("conta a receber not found")
)

// ParseID translates the external 24-char hex identifier into the store's
// ObjectID. Malformed input maps to ErrInvalidID so callers can reject the
// request before any collection access.
func ParseID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

type Store struct {
	coll *mongo.Collection
}

func NewStore(m *mg.Mongo) *Store {
	return &Store{coll: m.Database.Collection(Collection)}
}

func (s *Store) Insert(ctx context.Context, rec models.Receivable) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, rec)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid, nil
}

// FindAll returns every document in the collection. A non-empty sortField
// orders the result ascending by that field, otherwise the store's natural
// order is kept.
func (s *Store) FindAll(ctx context.Context, sortField string) ([]models.Receivable, error) {
	opts := options.Find()
	if sortField != "" {
		opts.SetSort(bson.D{{Key: sortField, Value: 1}})
	}

	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	recs := make([]models.Receivable, 0)
	for cur.Next(ctx) {
		var r models.Receivable
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, cur.Err()
}

func (s *Store) FindOne(ctx context.Context, id primitive.ObjectID) (models.Receivable, error) {
	var rec models.Receivable
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rec, ErrNotFound
	}
	return rec, err
}

// UpdateOne replaces every client-writable field via $set. The _id and the
// cadastro timestamp are never part of the update document.
func (s *Store) UpdateOne(ctx context.Context, id primitive.ObjectID, rec models.Receivable) (int64, error) {
	update := bson.M{"$set": bson.M{
		"nome":       rec.Name,
		"cpf":        rec.TaxID,
		"telefone":   rec.Phone,
		"valor":      rec.Amount,
		"vencimento": rec.DueDate,
	}}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *Store) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
