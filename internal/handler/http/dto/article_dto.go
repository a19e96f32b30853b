package dto

import (
	"strconv"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// CreateArticleRequest defines the structure for creating a new article
type CreateArticleRequest struct {
	Title       string   `json:"title" binding:"required,notblank,max=255"`
	Description string   `json:"description" binding:"max=500"`
	Body        string   `json:"body" binding:"required,notblank"`
	Category    string   `json:"category"`
	TagList     []string `json:"tagList" binding:"omitempty,dive,max=50"`
}

func (r CreateArticleRequest) ToInput() usecasecontract.ArticleInput {
	return usecasecontract.ArticleInput{
		Title:       r.Title,
		Description: r.Description,
		Body:        r.Body,
		Category:    r.Category,
		Tags:        r.TagList,
	}
}

// UpdateArticleRequest is a partial update; omitted fields stay unchanged.
type UpdateArticleRequest struct {
	Title       *string  `json:"title" binding:"omitempty,notblank,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Body        *string  `json:"body" binding:"omitempty,notblank"`
	Category    *string  `json:"category"`
	TagList     []string `json:"tagList" binding:"omitempty,dive,max=50"`
}

func (r UpdateArticleRequest) ToUpdate() usecasecontract.ArticleUpdate {
	return usecasecontract.ArticleUpdate{
		Title:       r.Title,
		Description: r.Description,
		Body:        r.Body,
		Category:    r.Category,
		Tags:        r.TagList,
	}
}

type AuthorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, CreatedAt: c.CreatedAt}
}

// ArticleResponse defines the JSON shape of a single article
type ArticleResponse struct {
	ID             string            `json:"id"`
	Slug           string            `json:"slug"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Body           string            `json:"body"`
	Author         AuthorResponse    `json:"author"`
	Category       *CategoryResponse `json:"category"`
	TagList        []string          `json:"tagList"`
	Likes          int64             `json:"likes"`
	Dislikes       int64             `json:"dislikes"`
	Favorited      bool              `json:"favorited"`
	FavoritesCount int64             `json:"favorites_count"`
	AverageRating  float64           `json:"average_rating"`
	UserRates      int64             `json:"user_rates"`
	ReadingTime    string            `json:"reading_time"`
	IsPublished    bool              `json:"is_published"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func ToArticleResponse(d *entity.ArticleDetail) ArticleResponse {
	a := d.Article
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	readingTime := "1 minute"
	if m := a.ReadingTime(); m > 1 {
		readingTime = strconv.Itoa(m) + " minutes"
	}
	return ArticleResponse{
		ID:             a.ID,
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		Author:         AuthorResponse{ID: a.AuthorID, Username: a.AuthorUsername},
		Category:       ToCategoryResponse(d.Category),
		TagList:        tags,
		Likes:          d.Counts.Likes,
		Dislikes:       d.Counts.Dislikes,
		Favorited:      a.Favorited,
		FavoritesCount: a.FavoritesCount,
		AverageRating:  d.Rating.Average,
		UserRates:      d.Rating.Count,
		ReadingTime:    readingTime,
		IsPublished:    a.IsPublished,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type ArticleListResponse struct {
	Articles      []ArticleResponse `json:"articles"`
	ArticlesCount int               `json:"articlesCount"`
}

func ToArticleListResponse(details []*entity.ArticleDetail) ArticleListResponse {
	out := make([]ArticleResponse, 0, len(details))
	for _, d := range details {
		out = append(out, ToArticleResponse(d))
	}
	return ArticleListResponse{Articles: out, ArticlesCount: len(out)}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

type TagListResponse struct {
	Tags []string `json:"tags"`
}

func ToTagListResponse(tags []*entity.Tag) TagListResponse {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return TagListResponse{Tags: names}
}
