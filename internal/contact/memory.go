package contact

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahmedkhaled2030/bedir-group/internal/models"
)

// MemoryRepository is an in-memory Repository used by tests and local
// development without a running MongoDB.
type MemoryRepository struct {
	mu        sync.RWMutex
	inquiries map[string]*models.ContactInquiry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{inquiries: map[string]*models.ContactInquiry{}}
}

func (r *MemoryRepository) Create(_ context.Context, in *models.ContactInquiry) (*models.ContactInquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in.Read = false
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	if in.ID.IsZero() {
		in.ID = primitive.NewObjectID()
	}
	cp := *in
	r.inquiries[in.ID.Hex()] = &cp
	return in, nil
}

func (r *MemoryRepository) List(_ context.Context, f ListFilter) ([]*models.ContactInquiry, error) {
	f = f.normalized()
	r.mu.RLock()
	all := []*models.ContactInquiry{}
	for _, in := range r.inquiries {
		if f.Read != nil && in.Read != *f.Read {
			continue
		}
		cp := *in
		all = append(all, &cp)
	}
	r.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	start := f.skip()
	if start >= len(all) {
		return []*models.ContactInquiry{}, nil
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *MemoryRepository) MarkRead(_ context.Context, id string) (*models.ContactInquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in, ok := r.inquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	in.Read = true
	cp := *in
	return &cp, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.inquiries[id]; !ok {
		return ErrNotFound
	}
	delete(r.inquiries, id)
	return nil
}
