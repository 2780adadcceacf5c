package handlers

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ahmedkhaled2030/bedir-group/internal/blog"
	"github.com/ahmedkhaled2030/bedir-group/internal/config"
	"github.com/ahmedkhaled2030/bedir-group/internal/images"
	"github.com/ahmedkhaled2030/bedir-group/internal/models"
	"github.com/ahmedkhaled2030/bedir-group/pkg/middleware"
)

// BlogHandler serves the public blog listings plus the admin CRUD and image
// upload/serving endpoints.
type BlogHandler struct {
	cfg    *config.Config
	posts  *blog.Service
	images images.Repository
}

func NewBlogHandler(cfg *config.Config, posts *blog.Service, imgs images.Repository) *BlogHandler {
	return &BlogHandler{cfg: cfg, posts: posts, images: imgs}
}

// Register routes under /blog
func (h *BlogHandler) Register(rg *gin.RouterGroup, authn, admin gin.HandlerFunc) {
	b := rg.Group("/blog")
	b.GET("/posts", h.ListPublished)
	b.GET("/posts/:slug", h.GetBySlug)
	b.GET("/images/:filename", h.ServeImage)
	b.POST("/upload-image", authn, admin, h.UploadImage)

	adm := b.Group("/admin", authn, admin)
	adm.GET("/posts", h.ListAll)
	adm.GET("/posts/:id", h.GetByID)
	adm.POST("/posts", h.CreatePost)
	adm.PUT("/posts/:id", h.UpdatePost)
	adm.DELETE("/posts/:id", h.DeletePost)
}

type blogPostInput struct {
	Title      models.LocalizedText   `json:"title"`
	Excerpt    models.LocalizedText   `json:"excerpt"`
	Content    map[string]interface{} `json:"content"`
	CoverImage string                 `json:"cover_image"`
	Category   string                 `json:"category"`
	Tags       []string               `json:"tags"`
	Featured   bool                   `json:"featured"`
	Status     string                 `json:"status" binding:"omitempty,oneof=draft published"`
}

func (in blogPostInput) toPost() *models.BlogPost {
	status := in.Status
	if status == "" {
		status = models.BlogStatusDraft
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.BlogPost{
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		Category:   in.Category,
		Tags:       tags,
		Featured:   in.Featured,
		Status:     status,
	}
}

func (h *BlogHandler) ListPublished(c *gin.Context) {
	f := blog.ListFilter{
		Status:     models.BlogStatusPublished,
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		WideSearch: true,
		Page:       intQuery(c, "page", 1, 0),
		Limit:      intQuery(c, "limit", 20, 100),
	}
	posts, err := h.posts.List(c.Request.Context(), f)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	p, err := h.posts.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *BlogHandler) ListAll(c *gin.Context) {
	f := blog.ListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   1,
		Limit:  200,
	}
	posts, err := h.posts.List(c.Request.Context(), f)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetByID(c *gin.Context) {
	p, err := h.posts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var in blogPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.posts.Create(c.Request.Context(), in.toPost(), middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, blog.ErrSlugTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var in blogPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.posts.Update(c.Request.Context(), c.Param("id"), in.toPost())
	if err != nil {
		switch {
		case errors.Is(err, blog.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, blog.ErrSlugTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage validates and stores a cover image. The content-type and size
// checks run before anything is written.
func (h *BlogHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only image files allowed"})
		return
	}
	if fh.Size > h.cfg.Upload.MaxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 10MB)"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		internalError(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, h.cfg.Upload.MaxSize+1))
	if err != nil {
		internalError(c, err)
		return
	}
	if int64(len(data)) > h.cfg.Upload.MaxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 10MB)"})
		return
	}

	ext := strings.TrimPrefix(path.Ext(fh.Filename), ".")
	if ext == "" {
		ext = "jpg"
	}
	id := uuid.New()
	filename := hex.EncodeToString(id[:]) + "." + ext

	img := &models.Image{
		Filename:    filename,
		ContentType: ct,
		Data:        base64.StdEncoding.EncodeToString(data),
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.images.Save(c.Request.Context(), img); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": "/api/blog/images/" + filename})
}

// ServeImage streams a stored image with a long-lived cache header; the
// blobs are write-once so clients may cache them forever.
func (h *BlogHandler) ServeImage(c *gin.Context) {
	img, err := h.images.GetByFilename(c.Request.Context(), c.Param("filename"))
	if err != nil {
		if errors.Is(err, images.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		internalError(c, err)
		return
	}
	data, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		internalError(c, err)
		return
	}
	ct := img.ContentType
	if ct == "" {
		ct = "image/jpeg"
	}
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, ct, data)
}
