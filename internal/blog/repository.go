package blog

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

var (
	ErrNotFound  = errors.New("post not found")
	ErrSlugTaken = errors.New("slug already in use")
)

// hardLimit caps any single listing, paginated or not.
const hardLimit = 200

// ListFilter is the typed query for post listings. The zero value lists
// everything, newest first, with the default page size.
type ListFilter struct {
	Status   string // "" matches any status
	Category string
	Search   string // case-insensitive substring match
	// WideSearch extends the search to the fr/de titles and tags. Public
	// listings use it; the admin panel searches en/ar titles only.
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

// Repository defines persistence operations for blog posts
type Repository interface {
	Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	List(ctx context.Context, f ListFilter) ([]*models.BlogPost, error)
	Update(ctx context.Context, id string, p *models.BlogPost) (*models.BlogPost, error)
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
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
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		or := []bson.M{{"title.en": re}, {"title.ar": re}}
		if f.WideSearch {
			or = append(or, bson.M{"title.fr": re}, bson.M{"title.de": re}, bson.M{"tags": re})
		}
		q["$or"] = or
	}
	return q
}

func (r *MongoRepository) Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var p models.BlogPost
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	filter := bson.M{"slug": slug, "status": models.BlogStatusPublished}
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) List(ctx context.Context, f ListFilter) ([]*models.BlogPost, error) {
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
	out := []*models.BlogPost{}
	for cur.Next(ctx) {
		var p models.BlogPost
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoRepository) Update(ctx context.Context, id string, p *models.BlogPost) (*models.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	set := bson.M{
		"title":       p.Title,
		"excerpt":     p.Excerpt,
		"content":     p.Content,
		"cover_image": p.CoverImage,
		"category":    p.Category,
		"tags":        p.Tags,
		"featured":    p.Featured,
		"status":      p.Status,
		"slug":        p.Slug,
		"updated_at":  p.UpdatedAt,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.BlogPost
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlugTaken
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

func (r *MongoRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}
	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
