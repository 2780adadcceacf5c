package blog

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
// development without a running MongoDB. It mirrors the Mongo repository's
// filtering, sorting and uniqueness behavior.
type MemoryRepository struct {
	mu    sync.RWMutex
	posts map[string]*models.BlogPost
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{posts: map[string]*models.BlogPost{}}
}

func (r *MemoryRepository) Create(_ context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.posts {
		if e.Slug == p.Slug {
			return nil, ErrSlugTaken
		}
	}
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

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemoryRepository) GetPublishedBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.Slug == slug && p.Status == models.BlogStatusPublished {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f ListFilter) matches(p *models.BlogPost) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	haystacks := []string{p.Title.En, p.Title.Ar}
	if f.WideSearch {
		haystacks = append(haystacks, p.Title.Fr, p.Title.De)
		haystacks = append(haystacks, p.Tags...)
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) List(_ context.Context, f ListFilter) ([]*models.BlogPost, error) {
	f = f.normalized()
	r.mu.RLock()
	all := []*models.BlogPost{}
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
		return []*models.BlogPost{}, nil
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, p *models.BlogPost) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	for eid, e := range r.posts {
		if eid != id && e.Slug == p.Slug {
			return nil, ErrSlugTaken
		}
	}
	existing.Title = p.Title
	existing.Excerpt = p.Excerpt
	existing.Content = p.Content
	existing.CoverImage = p.CoverImage
	existing.Category = p.Category
	existing.Tags = p.Tags
	existing.Featured = p.Featured
	existing.Status = p.Status
	existing.Slug = p.Slug
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

func (r *MemoryRepository) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, p := range r.posts {
		if p.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}
