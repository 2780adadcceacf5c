package contact

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ahmedkhaled2030/bedir-group/internal/models"
)

var ErrNotFound = errors.New("inquiry not found")

const hardLimit = 200

// ListFilter is the typed query for inquiry listings. Read is tri-state:
// nil lists everything.
type ListFilter struct {
	Read  *bool
	Page  int
	Limit int
}

func (f ListFilter) normalized() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Limit > hardLimit {
		f.Limit = hardLimit
	}
	return f
}

func (f ListFilter) skip() int {
	return (f.Page - 1) * f.Limit
}

// Repository defines persistence operations for contact inquiries.
// Inquiries are immutable after creation except for the read flag.
type Repository interface {
	Create(ctx context.Context, in *models.ContactInquiry) (*models.ContactInquiry, error)
	List(ctx context.Context, f ListFilter) ([]*models.ContactInquiry, error)
	MarkRead(ctx context.Context, id string) (*models.ContactInquiry, error)
	Delete(ctx context.Context, id string) error
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, in *models.ContactInquiry) (*models.ContactInquiry, error) {
	in.Read = false
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, in)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		in.ID = oid
	}
	return in, nil
}

func (r *MongoRepository) List(ctx context.Context, f ListFilter) ([]*models.ContactInquiry, error) {
	f = f.normalized()
	q := bson.M{}
	if f.Read != nil {
		q["read"] = *f.Read
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(f.skip())).
		SetLimit(int64(f.Limit))
	cur, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*models.ContactInquiry{}
	for cur.Next(ctx) {
		var in models.ContactInquiry
		if err := cur.Decode(&in); err != nil {
			return nil, err
		}
		out = append(out, &in)
	}
	return out, cur.Err()
}

// MarkRead sets the read flag and returns the updated inquiry. Marking an
// already-read inquiry is a no-op that still returns the document.
func (r *MongoRepository) MarkRead(ctx context.Context, id string) (*models.ContactInquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.ContactInquiry
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"read": true}}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
