package blog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahmedkhaled2030/bedir-group/internal/models"
)

func testAuthor() *models.User {
	return &models.User{
		ID:   primitive.NewObjectID(),
		Name: "Site Admin",
		Role: models.RoleAdmin,
	}
}

func TestCreate_DerivesSlugAndAuthor(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	author := testAuthor()

	p, err := svc.Create(context.Background(), &models.BlogPost{
		Title:  models.LocalizedText{En: "Modern Kitchen Ideas!!"},
		Status: models.BlogStatusDraft,
	}, author)
	require.NoError(t, err)
	assert.Equal(t, "modern-kitchen-ideas", p.Slug)
	assert.Equal(t, author.ID.Hex(), p.AuthorID)
	assert.Equal(t, "Site Admin", p.AuthorName)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCreate_ArabicFallbackAndUntitled(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	p, err := svc.Create(ctx, &models.BlogPost{
		Title: models.LocalizedText{Ar: "تصميم داخلي"},
	}, testAuthor())
	require.NoError(t, err)
	assert.NotEmpty(t, p.Slug)

	p2, err := svc.Create(ctx, &models.BlogPost{}, testAuthor())
	require.NoError(t, err)
	assert.Equal(t, "untitled", p2.Slug)
}

func TestCreate_DuplicateTitleGetsUniqueSlugs(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()
	author := testAuthor()

	first, err := svc.Create(ctx, &models.BlogPost{
		Title: models.LocalizedText{En: "Modern Kitchen Ideas"},
	}, author)
	require.NoError(t, err)

	second, err := svc.Create(ctx, &models.BlogPost{
		Title: models.LocalizedText{En: "Modern Kitchen Ideas"},
	}, author)
	require.NoError(t, err)

	assert.NotEmpty(t, first.Slug)
	assert.NotEmpty(t, second.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "modern-kitchen-ideas-")
}

func TestUpdate_KeepsSlugWhenTitleUnchanged(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	p, err := svc.Create(ctx, &models.BlogPost{
		Title: models.LocalizedText{En: "Modern Kitchen Ideas"},
	}, testAuthor())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID.Hex(), &models.BlogPost{
		Title:    models.LocalizedText{En: "Modern Kitchen Ideas"},
		Category: "design",
		Status:   models.BlogStatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, p.Slug, updated.Slug)
	assert.Equal(t, "design", updated.Category)
	assert.Equal(t, p.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdate_RecomputesSlugOnTitleChange(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	p, err := svc.Create(ctx, &models.BlogPost{
		Title: models.LocalizedText{En: "Old Title"},
	}, testAuthor())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID.Hex(), &models.BlogPost{
		Title: models.LocalizedText{En: "Brand New Title"},
	})
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", updated.Slug)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &models.BlogPost{
		Title: models.LocalizedText{En: "X"},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Twice(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	p, err := svc.Create(ctx, &models.BlogPost{
		Title: models.LocalizedText{En: "Ephemeral"},
	}, testAuthor())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID.Hex()))
	assert.ErrorIs(t, svc.Delete(ctx, p.ID.Hex()), ErrNotFound)
}

func TestList_PublishedOnlyAndPagination(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()
	author := testAuthor()
	base := time.Now().UTC().Add(-time.Hour)

	// 45 published posts with strictly increasing creation times, plus drafts
	for i := 1; i <= 45; i++ {
		_, err := svc.Create(ctx, &models.BlogPost{
			Title:     models.LocalizedText{En: fmt.Sprintf("Post number %d", i)},
			Status:    models.BlogStatusPublished,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}, author)
		require.NoError(t, err)
	}
	for i := 1; i <= 5; i++ {
		_, err := svc.Create(ctx, &models.BlogPost{
			Title:  models.LocalizedText{En: fmt.Sprintf("Draft number %d", i)},
			Status: models.BlogStatusDraft,
		}, author)
		require.NoError(t, err)
	}

	page2, err := svc.List(ctx, ListFilter{
		Status: models.BlogStatusPublished,
		Page:   2,
		Limit:  20,
	})
	require.NoError(t, err)
	require.Len(t, page2, 20)
	// descending by creation time: page 2 holds ranks 21..40, i.e. posts 25..6
	assert.Equal(t, "Post number 25", page2[0].Title.En)
	assert.Equal(t, "Post number 6", page2[19].Title.En)
	for _, p := range page2 {
		assert.Equal(t, models.BlogStatusPublished, p.Status)
	}
}

func TestList_SearchAndCategory(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()
	author := testAuthor()

	_, err := svc.Create(ctx, &models.BlogPost{
		Title:    models.LocalizedText{En: "Modern Kitchen Ideas"},
		Category: "interior",
		Tags:     []string{"kitchen", "design"},
		Status:   models.BlogStatusPublished,
	}, author)
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.BlogPost{
		Title:    models.LocalizedText{En: "Garden Landscaping"},
		Category: "exterior",
		Status:   models.BlogStatusPublished,
	}, author)
	require.NoError(t, err)

	got, err := svc.List(ctx, ListFilter{Status: models.BlogStatusPublished, Search: "KITCHEN", WideSearch: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Modern Kitchen Ideas", got[0].Title.En)

	// tag match via wide search
	got, err = svc.List(ctx, ListFilter{Status: models.BlogStatusPublished, Search: "design", WideSearch: true})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.List(ctx, ListFilter{Status: models.BlogStatusPublished, Category: "exterior"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Garden Landscaping", got[0].Title.En)
}
