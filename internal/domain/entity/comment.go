package entity

import "time"

// Comment is a remark on an article, optionally anchored to a highlighted section.
type Comment struct {
	ID             string    `bson:"_id" json:"id"`
	ArticleID      string    `bson:"article_id" json:"article_id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	Username       string    `bson:"username" json:"username"`
	Body           string    `bson:"body" json:"body"`
	ArticleSection *string   `bson:"article_section,omitempty" json:"article_section,omitempty"`
	StartPosition  *int      `bson:"start_position,omitempty" json:"start_position,omitempty"`
	EndPosition    *int      `bson:"end_position,omitempty" json:"end_position,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// CommentHistory keeps the body a comment had before an edit.
type CommentHistory struct {
	ID        string    `bson:"_id" json:"id"`
	CommentID string    `bson:"comment_id" json:"comment_id"`
	Body      string    `bson:"body" json:"body"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CommentDetail is a comment with its reaction totals.
type CommentDetail struct {
	Comment *Comment
	Counts  ReactionCounts
}
