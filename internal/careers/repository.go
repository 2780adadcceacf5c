package careers

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ahmedkhaled2030/bedir-group/internal/models"
)

var ErrNotFound = errors.New("career post not found")

const hardLimit = 200

// ListFilter is the typed query for job-posting listings.
type ListFilter struct {
	Status string // "" matches any status
	Search string // case-insensitive substring match
	// WideSearch extends the search to department and location (public
	// listings); the admin panel searches en/ar titles only.
	WideSearch bool
	Page       int
	Limit      int
}

func (f ListFilter) normalized() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > hardLimit {
		f.Limit = hardLimit
	}
	return f
}

func (f ListFilter) skip() int {
	return (f.Page - 1) * f.Limit
}

// Repository defines persistence operations for career posts
type Repository interface {
	Create(ctx context.Context, p *models.CareerPost) (*models.CareerPost, error)
	GetByID(ctx context.Context, id string) (*models.CareerPost, error)
	List(ctx context.Context, f ListFilter) ([]*models.CareerPost, error)
	Update(ctx context.Context, id string, p *models.CareerPost) (*models.CareerPost, error)
	Delete(ctx context.Context, id string) error
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (f ListFilter) query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		or := []bson.M{{"title.en": re}, {"title.ar": re}}
		if f.WideSearch {
			or = append(or, bson.M{"department.en": re}, bson.M{"location": re})
		}
		q["$or"] = or
	}
	return q
}

func (r *MongoRepository) Create(ctx context.Context, p *models.CareerPost) (*models.CareerPost, error) {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.CareerPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var p models.CareerPost
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) List(ctx context.Context, f ListFilter) ([]*models.CareerPost, error) {
	f = f.normalized()
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(f.skip())).
		SetLimit(int64(f.Limit))
	cur, err := r.col.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*models.CareerPost{}
	for cur.Next(ctx) {
		var p models.CareerPost
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoRepository) Update(ctx context.Context, id string, p *models.CareerPost) (*models.CareerPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	set := bson.M{
		"title":             p.Title,
		"department":        p.Department,
		"description":       p.Description,
		"requirements":      p.Requirements,
		"benefits":          p.Benefits,
		"location":          p.Location,
		"job_type":          p.JobType,
		"salary":            p.Salary,
		"application_email": p.ApplicationEmail,
		"status":            p.Status,
		"updated_at":        p.UpdatedAt,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.CareerPost
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
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
