package images

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ahmedkhaled2030/bedir-group/internal/models"
)

var ErrNotFound = errors.New("image not found")

// Repository stores uploaded images as write-once blobs.
type Repository interface {
	Save(ctx context.Context, img *models.Image) error
	GetByFilename(ctx context.Context, filename string) (*models.Image, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Save(ctx context.Context, img *models.Image) error {
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, img)
	return err
}

func (r *MongoRepository) GetByFilename(ctx context.Context, filename string) (*models.Image, error) {
	var img models.Image
	if err := r.col.FindOne(ctx, bson.M{"filename": filename}).Decode(&img); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	images map[string]*models.Image
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{images: map[string]*models.Image{}}
}

func (r *MemoryRepository) Save(_ context.Context, img *models.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}
	cp := *img
	r.images[img.Filename] = &cp
	return nil
}

func (r *MemoryRepository) GetByFilename(_ context.Context, filename string) (*models.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.images[filename]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *img
	return &cp, nil
}
