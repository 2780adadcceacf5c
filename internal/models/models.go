package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. The first registered user is promoted to admin, everyone
// after that is a regular user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Blog post statuses. Only published posts are visible on public routes.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// Career post statuses.
const (
	CareerStatusActive = "active"
	CareerStatusClosed = "closed"
)

// User is an admin-panel account. The password hash never leaves the server.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// LocalizedText carries one value per supported site language.
type LocalizedText struct {
	En string `bson:"en" json:"en"`
	Ar string `bson:"ar" json:"ar"`
	Fr string `bson:"fr" json:"fr"`
	De string `bson:"de" json:"de"`
}

// LocalizedList carries one string list per supported site language.
type LocalizedList struct {
	En []string `bson:"en" json:"en"`
	Ar []string `bson:"ar" json:"ar"`
	Fr []string `bson:"fr" json:"fr"`
	De []string `bson:"de" json:"de"`
}

// BlogPost is a localized article. Content holds the rich-text editor
// document as-is (opaque JSON). Author fields are denormalized at creation
// time and never re-synced.
type BlogPost struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Title      LocalizedText          `bson:"title" json:"title"`
	Excerpt    LocalizedText          `bson:"excerpt" json:"excerpt"`
	Content    map[string]interface{} `bson:"content,omitempty" json:"content"`
	CoverImage string                 `bson:"cover_image" json:"cover_image"`
	Category   string                 `bson:"category" json:"category"`
	Tags       []string               `bson:"tags" json:"tags"`
	Featured   bool                   `bson:"featured" json:"featured"`
	Status     string                 `bson:"status" json:"status"`
	Slug       string                 `bson:"slug" json:"slug"`
	AuthorID   string                 `bson:"author_id" json:"author_id"`
	AuthorName string                 `bson:"author_name" json:"author_name"`
	CreatedAt  time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time              `bson:"updated_at" json:"updated_at"`
}

// CareerPost is a localized job posting. No slug; postings are addressed
// by id only.
type CareerPost struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            LocalizedText      `bson:"title" json:"title"`
	Department       LocalizedText      `bson:"department" json:"department"`
	Description      LocalizedText      `bson:"description" json:"description"`
	Requirements     LocalizedList      `bson:"requirements" json:"requirements"`
	Benefits         LocalizedList      `bson:"benefits" json:"benefits"`
	Location         string             `bson:"location" json:"location"`
	JobType          string             `bson:"job_type" json:"job_type"`
	Salary           string             `bson:"salary" json:"salary"`
	ApplicationEmail string             `bson:"application_email" json:"application_email"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// ContactInquiry is a consultation request from the public contact form.
// Immutable after creation except for the read flag.
type ContactInquiry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName    string             `bson:"full_name" json:"full_name"`
	PhoneNumber string             `bson:"phone_number" json:"phone_number"`
	Email       string             `bson:"email" json:"email"`
	City        string             `bson:"city" json:"city"`
	ServiceType string             `bson:"service_type" json:"service_type"`
	ProjectType string             `bson:"project_type" json:"project_type"`
	Budget      string             `bson:"budget" json:"budget"`
	Message     string             `bson:"message" json:"message"`
	Read        bool               `bson:"read" json:"read"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// Image is an uploaded file stored in the database itself (base64 payload)
// so the API can run on hosts without a writable filesystem. Write-once.
type Image struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Filename    string             `bson:"filename" json:"filename"`
	ContentType string             `bson:"content_type" json:"content_type"`
	Data        string             `bson:"data" json:"-"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
