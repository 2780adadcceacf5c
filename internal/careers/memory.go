package careers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahmedkhaled2030/bedir-group/internal/models"
)

// MemoryRepository is an in-memory Repository used by tests and local
// development without a running MongoDB.
type MemoryRepository struct {
	mu    sync.RWMutex
	posts map[string]*models.CareerPost
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{posts: map[string]*models.CareerPost{}}
}

func (r *MemoryRepository) Create(_ context.Context, p *models.CareerPost) (*models.CareerPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	r.posts[p.ID.Hex()] = &cp
	return p, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.CareerPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f ListFilter) matches(p *models.CareerPost) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	haystacks := []string{p.Title.En, p.Title.Ar}
	if f.WideSearch {
		haystacks = append(haystacks, p.Department.En, p.Location)
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) List(_ context.Context, f ListFilter) ([]*models.CareerPost, error) {
	f = f.normalized()
	r.mu.RLock()
	all := []*models.CareerPost{}
	for _, p := range r.posts {
		if f.matches(p) {
			cp := *p
			all = append(all, &cp)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	start := f.skip()
	if start >= len(all) {
		return []*models.CareerPost{}, nil
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, p *models.CareerPost) (*models.CareerPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	existing.Title = p.Title
	existing.Department = p.Department
	existing.Description = p.Description
	existing.Requirements = p.Requirements
	existing.Benefits = p.Benefits
	existing.Location = p.Location
	existing.JobType = p.JobType
	existing.Salary = p.Salary
	existing.ApplicationEmail = p.ApplicationEmail
	existing.Status = p.Status
	existing.UpdatedAt = time.Now().UTC()
	cp := *existing
	return &cp, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return ErrNotFound
	}
	delete(r.posts, id)
	return nil
}
