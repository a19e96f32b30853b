package entity

import "time"

// Favorite links a user to an article they favorited.
type Favorite struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	ArticleID string    `bson:"article_id" json:"article_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Bookmark is a user's saved reference to an article.
type Bookmark struct {
	ID            string    `bson:"_id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	ArticleID     string    `bson:"article_id" json:"article_id"`
	ArticleSlug   string    `bson:"article_slug" json:"article_slug"`
	ArticleTitle  string    `bson:"article_title" json:"article_title"`
	ArticleAuthor string    `bson:"article_author" json:"article_author"`
	Description   string    `bson:"description" json:"description"`
	BookmarkedAt  time.Time `bson:"bookmarked_at" json:"bookmarked_at"`
}

// Rating is one user's score for an article.
type Rating struct {
	ID        string    `bson:"_id" json:"id"`
	ArticleID string    `bson:"article_id" json:"article_id"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Score     float64   `bson:"score" json:"score"`
	RatedOn   time.Time `bson:"rated_on" json:"rated_on"`
}

const (
	MinRatingScore = 0.0
	MaxRatingScore = 5.0
)

// RatingSummary is the aggregate of all ratings on an article.
type RatingSummary struct {
	Average float64 `bson:"average" json:"average_rating"`
	Count   int64   `bson:"count" json:"user_rates"`
}

// ArticleReport flags an article for moderation.
type ArticleReport struct {
	ID           string    `bson:"_id" json:"id"`
	ArticleID    string    `bson:"article_id" json:"article_id"`
	ArticleTitle string    `bson:"article_title" json:"article_title"`
	ReporterID   string    `bson:"reporter_id" json:"reporter_id"`
	Reason       string    `bson:"reason" json:"reason"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Notification is an email handed to the notification sender.
type Notification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
