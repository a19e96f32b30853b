package entity

import (
	"strings"
	"time"
)

// wordsPerMinute is the reading speed used for ReadingTime.
const wordsPerMinute = 200

// Article is a published or draft piece of writing.
// FavoritesCount and Favorited are maintained together with the favorites collection.
type Article struct {
	ID             string    `bson:"_id" json:"id"`
	Slug           string    `bson:"slug" json:"slug"`
	Title          string    `bson:"title" json:"title"`
	Description    string    `bson:"description" json:"description"`
	Body           string    `bson:"body" json:"body"`
	AuthorID       string    `bson:"author_id" json:"author_id"`
	AuthorUsername string    `bson:"author_username" json:"author_username"`
	Category       string    `bson:"category,omitempty" json:"category,omitempty"`
	Tags           []string  `bson:"tags" json:"tags"`
	IsPublished    bool      `bson:"is_published" json:"is_published"`
	Favorited      bool      `bson:"favorited" json:"favorited"`
	FavoritesCount int64     `bson:"favorites_count" json:"favorites_count"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// ReadingTime estimates the minutes needed to read the body, never less than one.
func (a *Article) ReadingTime() int {
	words := len(strings.Fields(a.Body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// ArticleDetail is an article together with its derived aggregates.
type ArticleDetail struct {
	Article  *Article
	Category *Category
	Counts   ReactionCounts
	Rating   RatingSummary
}
