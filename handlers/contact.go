package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahmedkhaled2030/bedir-group/internal/contact"
	"github.com/ahmedkhaled2030/bedir-group/internal/models"
)

// ContactHandler accepts public consultation inquiries and exposes the
// admin inbox.
type ContactHandler struct {
	repo contact.Repository
}

func NewContactHandler(repo contact.Repository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

// Register routes under /contact
func (h *ContactHandler) Register(rg *gin.RouterGroup, authn, admin gin.HandlerFunc) {
	ct := rg.Group("/contact")
	ct.POST("/inquiries", h.CreateInquiry)

	adm := ct.Group("/admin", authn, admin)
	adm.GET("/inquiries", h.ListInquiries)
	adm.PATCH("/inquiries/:id", h.MarkRead)
	adm.DELETE("/inquiries/:id", h.DeleteInquiry)
}

type inquiryInput struct {
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	City        string `json:"city"`
	ServiceType string `json:"service_type"`
	ProjectType string `json:"project_type"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
}

func (h *ContactHandler) CreateInquiry(c *gin.Context) {
	var in inquiryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.repo.Create(c.Request.Context(), &models.ContactInquiry{
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		City:        in.City,
		ServiceType: in.ServiceType,
		ProjectType: in.ProjectType,
		Budget:      in.Budget,
		Message:     in.Message,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ContactHandler) ListInquiries(c *gin.Context) {
	f := contact.ListFilter{
		Page:  intQuery(c, "page", 1, 0),
		Limit: intQuery(c, "limit", 50, 200),
	}
	switch c.Query("read") {
	case "true":
		t := true
		f.Read = &t
	case "false":
		fa := false
		f.Read = &fa
	}
	list, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	in, err := h.repo.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

func (h *ContactHandler) DeleteInquiry(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
