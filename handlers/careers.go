package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedkhaled2030/bedir-group/internal/careers"
	"github.com/ahmedkhaled2030/bedir-group/internal/models"
)

// CareersHandler mirrors the blog admin surface for job postings; no slugs,
// no images.
type CareersHandler struct {
	repo careers.Repository
}

func NewCareersHandler(repo careers.Repository) *CareersHandler {
	return &CareersHandler{repo: repo}
}

// Register routes under /careers
func (h *CareersHandler) Register(rg *gin.RouterGroup, authn, admin gin.HandlerFunc) {
	cr := rg.Group("/careers")
	cr.GET("/posts", h.ListActive)

	adm := cr.Group("/admin", authn, admin)
	adm.GET("/posts", h.ListAll)
	adm.GET("/posts/:id", h.GetByID)
	adm.POST("/posts", h.CreatePost)
	adm.PUT("/posts/:id", h.UpdatePost)
	adm.DELETE("/posts/:id", h.DeletePost)
}

type careerPostInput struct {
	Title            models.LocalizedText `json:"title"`
	Department       models.LocalizedText `json:"department"`
	Description      models.LocalizedText `json:"description"`
	Requirements     models.LocalizedList `json:"requirements"`
	Benefits         models.LocalizedList `json:"benefits"`
	Location         string               `json:"location"`
	JobType          string               `json:"job_type"`
	Salary           string               `json:"salary"`
	ApplicationEmail string               `json:"application_email" binding:"omitempty,email"`
	Status           string               `json:"status" binding:"omitempty,oneof=active closed"`
}

func (in careerPostInput) toPost() *models.CareerPost {
	status := in.Status
	if status == "" {
		status = models.CareerStatusActive
	}
	jobType := in.JobType
	if jobType == "" {
		jobType = "full-time"
	}
	return &models.CareerPost{
		Title:            in.Title,
		Department:       in.Department,
		Description:      in.Description,
		Requirements:     in.Requirements,
		Benefits:         in.Benefits,
		Location:         in.Location,
		JobType:          jobType,
		Salary:           in.Salary,
		ApplicationEmail: in.ApplicationEmail,
		Status:           status,
	}
}

func (h *CareersHandler) ListActive(c *gin.Context) {
	f := careers.ListFilter{
		Status:     models.CareerStatusActive,
		Search:     c.Query("search"),
		WideSearch: true,
		Page:       intQuery(c, "page", 1, 0),
		Limit:      intQuery(c, "limit", 20, 100),
	}
	posts, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *CareersHandler) ListAll(c *gin.Context) {
	f := careers.ListFilter{
		Search: c.Query("search"),
		Page:   1,
		Limit:  200,
	}
	posts, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *CareersHandler) GetByID(c *gin.Context) {
	p, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, careers.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "career not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CareersHandler) CreatePost(c *gin.Context) {
	var in careerPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.repo.Create(c.Request.Context(), in.toPost())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *CareersHandler) UpdatePost(c *gin.Context) {
	var in careerPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.repo.Update(c.Request.Context(), c.Param("id"), in.toPost())
	if err != nil {
		if errors.Is(err, careers.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "career not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CareersHandler) DeletePost(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, careers.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "career not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
