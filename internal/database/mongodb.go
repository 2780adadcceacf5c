package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the service.
const (
	ColUsers     = "users"
	ColBlogPosts = "blog_posts"
	ColCareers   = "career_posts"
	ColInquiries = "contact_inquiries"
	ColImages    = "images"
)

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique and sort indexes the repositories rely on:
// users.email and blog_posts.slug must be unique, and both post collections
// are listed by (status, created_at desc).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	if _, err := db.Collection(ColUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("users.email index: %w", err)
	}

	if _, err := db.Collection(ColBlogPosts).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("blog_posts.slug index: %w", err)
	}

	for _, col := range []string{ColBlogPosts, ColCareers} {
		if _, err := db.Collection(col).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		}); err != nil {
			return fmt.Errorf("%s status/created_at index: %w", col, err)
		}
	}

	return nil
}
