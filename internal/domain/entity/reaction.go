package entity

import "time"

// TargetType is the discriminator of the content item a reaction points at.
type TargetType string

const (
	TargetTypeArticle TargetType = "article"
	TargetTypeComment TargetType = "comment"
)

// IsValid reports whether t is one of the known content types.
func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeArticle, TargetTypeComment:
		return true
	}
	return false
}

// Target identifies a single content item by type and id.
type Target struct {
	Type TargetType `bson:"target_type" json:"target_type"`
	ID   string     `bson:"target_id" json:"target_id"`
}

// ArticleTarget builds a Target for an article id.
func ArticleTarget(articleID string) Target {
	return Target{Type: TargetTypeArticle, ID: articleID}
}

// CommentTarget builds a Target for a comment id.
func CommentTarget(commentID string) Target {
	return Target{Type: TargetTypeComment, ID: commentID}
}

func (t Target) String() string {
	return string(t.Type) + ":" + t.ID
}

// Vote is the value of a reaction.
type Vote string

const (
	VoteLike    Vote = "like"
	VoteDislike Vote = "dislike"
)

// IsValid reports whether v is LIKE or DISLIKE.
func (v Vote) IsValid() bool {
	return v == VoteLike || v == VoteDislike
}

// Reaction is one user's like or dislike on one target.
// At most one exists per (target type, target id, user id).
type Reaction struct {
	ID        string `bson:"_id" json:"id"`
	Target    `bson:",inline"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Value     Vote      `bson:"value" json:"value"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ReactionAction describes what a submission did to the ledger.
type ReactionAction string

const (
	ReactionCreated  ReactionAction = "created"
	ReactionSwitched ReactionAction = "switched"
	ReactionRemoved  ReactionAction = "removed"
)

// ReactionCounts holds the like and dislike totals of a target.
type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// ReactionResult is returned by a reaction submission.
// Reaction is nil when the action is ReactionRemoved.
type ReactionResult struct {
	Action   ReactionAction
	Reaction *Reaction
	Counts   ReactionCounts
}
