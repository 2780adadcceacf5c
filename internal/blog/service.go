package blog

import (
	"context"

	"github.com/ahmedkhaled2030/bedir-group/internal/models"
	"github.com/ahmedkhaled2030/bedir-group/internal/slug"
)

// Service owns slug derivation and uniqueness on top of the repository.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// slugSource picks the title the slug is derived from: English first,
// Arabic as fallback, a fixed placeholder when both are empty.
func slugSource(title models.LocalizedText) string {
	if title.En != "" {
		return title.En
	}
	if title.Ar != "" {
		return title.Ar
	}
	return "untitled"
}

// Create derives a unique slug, stamps the author and inserts the post.
// On a candidate collision a random suffix is appended once; if a concurrent
// writer still wins the unique index, the insert surfaces ErrSlugTaken.
func (s *Service) Create(ctx context.Context, p *models.BlogPost, author *models.User) (*models.BlogPost, error) {
	cand := slug.Make(slugSource(p.Title))
	if cand == "" {
		cand = "untitled"
	}
	exists, err := s.repo.SlugExists(ctx, cand, "")
	if err != nil {
		return nil, err
	}
	if exists {
		cand = slug.WithSuffix(cand)
	}
	p.Slug = cand
	p.AuthorID = author.ID.Hex()
	p.AuthorName = author.Name
	return s.repo.Create(ctx, p)
}

// Update replaces the mutable fields of a post. The slug is recomputed only
// when the derived value changed, excluding the post itself from the
// uniqueness check.
func (s *Service) Update(ctx context.Context, id string, p *models.BlogPost) (*models.BlogPost, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	newSlug := slug.Make(slugSource(p.Title))
	if newSlug == "" {
		newSlug = "untitled"
	}
	if newSlug == existing.Slug {
		p.Slug = existing.Slug
	} else {
		taken, err := s.repo.SlugExists(ctx, newSlug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			newSlug = slug.WithSuffix(newSlug)
		}
		p.Slug = newSlug
	}
	return s.repo.Update(ctx, id, p)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetPublishedBySlug(ctx context.Context, sl string) (*models.BlogPost, error) {
	return s.repo.GetPublishedBySlug(ctx, sl)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]*models.BlogPost, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
