package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warnf(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Fatalf(string, ...interface{})   {}

type seqUUID struct {
	mu sync.Mutex
	n  int
}

func (g *seqUUID) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%08x-0000-4000-8000-%012d", g.n, g.n)
}

type passTransactor struct{ calls int }

func (p *passTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type staticConfig struct {
	baseURL, adminEmail, facebookAppID string
}

func (c staticConfig) GetAppBaseURL() string    { return c.baseURL }
func (c staticConfig) GetAdminEmail() string    { return c.adminEmail }
func (c staticConfig) GetFacebookAppID() string { return c.facebookAppID }

// reactions

type fakeReactionRepo struct {
	mu        sync.Mutex
	rows      map[string]*entity.Reaction
	writes    int
	findErr   error
	beforeAdd func(r *fakeReactionRepo, reaction *entity.Reaction) error
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{rows: map[string]*entity.Reaction{}}
}

func (r *fakeReactionRepo) FindReaction(_ context.Context, target entity.Target, userID string) (*entity.Reaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, row := range r.rows {
		if row.Target == target && row.UserID == userID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, contract.ErrNotFound
}

func (r *fakeReactionRepo) CreateReaction(_ context.Context, reaction *entity.Reaction) error {
	if r.beforeAdd != nil {
		hook := r.beforeAdd
		r.beforeAdd = nil
		if err := hook(r, reaction); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Target == reaction.Target && row.UserID == reaction.UserID {
			return contract.ErrDuplicate
		}
	}
	cp := *reaction
	r.rows[reaction.ID] = &cp
	r.writes++
	return nil
}

// insert stores a row directly, as a concurrent request would.
func (r *fakeReactionRepo) insert(reaction entity.Reaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[reaction.ID] = &reaction
}

func (r *fakeReactionRepo) UpdateReactionValue(_ context.Context, reactionID string, value entity.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[reactionID]
	if !ok {
		return contract.ErrNotFound
	}
	row.Value = value
	r.writes++
	return nil
}

func (r *fakeReactionRepo) DeleteReaction(_ context.Context, reactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[reactionID]; !ok {
		return contract.ErrNotFound
	}
	delete(r.rows, reactionID)
	r.writes++
	return nil
}

func (r *fakeReactionRepo) CountReactions(_ context.Context, target entity.Target, value entity.Vote) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if row.Target == target && row.Value == value {
			n++
		}
	}
	return n, nil
}

func (r *fakeReactionRepo) DeleteReactionsForTarget(_ context.Context, target entity.Target) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, row := range r.rows {
		if row.Target == target {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeReactionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// articles

type fakeArticleRepo struct {
	rows map[string]*entity.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{rows: map[string]*entity.Article{}}
}

func (r *fakeArticleRepo) CreateArticle(_ context.Context, article *entity.Article) error {
	for _, row := range r.rows {
		if row.Slug == article.Slug {
			return contract.ErrDuplicate
		}
	}
	cp := *article
	r.rows[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) GetArticleByID(_ context.Context, articleID string) (*entity.Article, error) {
	row, ok := r.rows[articleID]
	if !ok {
		return nil, contract.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *fakeArticleRepo) GetArticleBySlug(_ context.Context, slug string) (*entity.Article, error) {
	for _, row := range r.rows {
		if row.Slug == slug {
			cp := *row
			return &cp, nil
		}
	}
	return nil, contract.ErrNotFound
}

func (r *fakeArticleRepo) ListArticles(_ context.Context, filter contract.ArticleFilter) ([]*entity.Article, error) {
	out := []*entity.Article{}
	for _, row := range r.rows {
		if filter.Author != "" && row.AuthorUsername != filter.Author {
			continue
		}
		if filter.Title != "" && !strings.Contains(strings.ToLower(row.Title), strings.ToLower(filter.Title)) {
			continue
		}
		cp := *row
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeArticleRepo) UpdateArticle(_ context.Context, articleID string, updates map[string]interface{}) error {
	row, ok := r.rows[articleID]
	if !ok {
		return contract.ErrNotFound
	}
	for k, v := range updates {
		switch k {
		case "title":
			row.Title = v.(string)
		case "description":
			row.Description = v.(string)
		case "body":
			row.Body = v.(string)
		case "category":
			row.Category = v.(string)
		case "tags":
			row.Tags = v.([]string)
		case "is_published":
			row.IsPublished = v.(bool)
		case "updated_at":
			row.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (r *fakeArticleRepo) DeleteArticle(_ context.Context, articleID string) error {
	if _, ok := r.rows[articleID]; !ok {
		return contract.ErrNotFound
	}
	delete(r.rows, articleID)
	return nil
}

func (r *fakeArticleRepo) IncrementFavorites(_ context.Context, articleID string) error {
	row, ok := r.rows[articleID]
	if !ok {
		return contract.ErrNotFound
	}
	row.FavoritesCount++
	row.Favorited = true
	return nil
}

func (r *fakeArticleRepo) DecrementFavorites(_ context.Context, articleID string) error {
	row, ok := r.rows[articleID]
	if !ok {
		return contract.ErrNotFound
	}
	if row.FavoritesCount > 0 {
		row.FavoritesCount--
	}
	row.Favorited = row.FavoritesCount > 0
	return nil
}

// categories

type fakeCategoryRepo struct {
	rows map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) CreateCategory(_ context.Context, category *entity.Category) error {
	if _, ok := r.rows[category.Slug]; ok {
		return contract.ErrDuplicate
	}
	cp := *category
	r.rows[category.Slug] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetCategoryBySlug(_ context.Context, slug string) (*entity.Category, error) {
	row, ok := r.rows[slug]
	if !ok {
		return nil, contract.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *fakeCategoryRepo) ListCategories(_ context.Context) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, row := range r.rows {
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) UpdateCategory(_ context.Context, slug string, updates map[string]interface{}) error {
	row, ok := r.rows[slug]
	if !ok {
		return contract.ErrNotFound
	}
	if name, ok := updates["name"].(string); ok {
		row.Name = name
	}
	return nil
}

func (r *fakeCategoryRepo) DeleteCategory(_ context.Context, slug string) error {
	if _, ok := r.rows[slug]; !ok {
		return contract.ErrNotFound
	}
	delete(r.rows, slug)
	return nil
}

// tags

type fakeTagRepo struct {
	uuid *seqUUID
	rows map[string]*entity.Tag
}

func (r *fakeTagRepo) GetOrCreateTags(_ context.Context, names []string) ([]*entity.Tag, error) {
	out := make([]*entity.Tag, 0, len(names))
	for _, name := range names {
		tag, ok := r.rows[name]
		if !ok {
			tag = &entity.Tag{ID: r.uuid.NewUUID(), Name: name, CreatedAt: time.Now()}
			r.rows[name] = tag
		}
		out = append(out, tag)
	}
	return out, nil
}

func (r *fakeTagRepo) GetAllTags(_ context.Context) ([]*entity.Tag, error) {
	out := []*entity.Tag{}
	for _, tag := range r.rows {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// comments

type fakeCommentRepo struct {
	rows    map[string]*entity.Comment
	history []*entity.CommentHistory
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{rows: map[string]*entity.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	cp := *comment
	r.rows[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *fakeCommentRepo) ListByArticle(_ context.Context, articleID string) ([]*entity.Comment, error) {
	out := []*entity.Comment{}
	for _, row := range r.rows {
		if row.ArticleID == articleID {
			cp := *row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCommentRepo) UpdateBody(_ context.Context, id, body string) error {
	row, ok := r.rows[id]
	if !ok {
		return contract.ErrNotFound
	}
	row.Body = body
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return contract.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeCommentRepo) DeleteByArticle(_ context.Context, articleID string) ([]string, error) {
	ids := []string{}
	for id, row := range r.rows {
		if row.ArticleID == articleID {
			ids = append(ids, id)
			delete(r.rows, id)
		}
	}
	return ids, nil
}

func (r *fakeCommentRepo) AddHistory(_ context.Context, history *entity.CommentHistory) error {
	r.history = append(r.history, history)
	return nil
}

func (r *fakeCommentRepo) ListHistory(_ context.Context, commentID string) ([]*entity.CommentHistory, error) {
	out := []*entity.CommentHistory{}
	for _, h := range r.history {
		if h.CommentID == commentID {
			out = append(out, h)
		}
	}
	return out, nil
}

// favorites, bookmarks, ratings, reports

type fakeFavoriteRepo struct {
	rows map[string]*entity.Favorite
}

func favKey(userID, articleID string) string { return userID + "/" + articleID }

func (r *fakeFavoriteRepo) AddFavorite(_ context.Context, favorite *entity.Favorite) error {
	key := favKey(favorite.UserID, favorite.ArticleID)
	if _, ok := r.rows[key]; ok {
		return contract.ErrDuplicate
	}
	r.rows[key] = favorite
	return nil
}

func (r *fakeFavoriteRepo) RemoveFavorite(_ context.Context, userID, articleID string) error {
	key := favKey(userID, articleID)
	if _, ok := r.rows[key]; !ok {
		return contract.ErrNotFound
	}
	delete(r.rows, key)
	return nil
}

func (r *fakeFavoriteRepo) IsFavorited(_ context.Context, userID, articleID string) (bool, error) {
	_, ok := r.rows[favKey(userID, articleID)]
	return ok, nil
}

func (r *fakeFavoriteRepo) DeleteByArticle(_ context.Context, articleID string) error {
	for key, row := range r.rows {
		if row.ArticleID == articleID {
			delete(r.rows, key)
		}
	}
	return nil
}

type fakeBookmarkRepo struct {
	rows map[string]*entity.Bookmark
}

func (r *fakeBookmarkRepo) CreateBookmark(_ context.Context, bookmark *entity.Bookmark) error {
	key := favKey(bookmark.UserID, bookmark.ArticleID)
	if _, ok := r.rows[key]; ok {
		return contract.ErrDuplicate
	}
	r.rows[key] = bookmark
	return nil
}

func (r *fakeBookmarkRepo) DeleteBookmark(_ context.Context, userID, articleID string) error {
	key := favKey(userID, articleID)
	if _, ok := r.rows[key]; !ok {
		return contract.ErrNotFound
	}
	delete(r.rows, key)
	return nil
}

func (r *fakeBookmarkRepo) ListBookmarksByUser(_ context.Context, userID string) ([]*entity.Bookmark, error) {
	out := []*entity.Bookmark{}
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeRatingRepo struct {
	rows map[string]*entity.Rating
}

func (r *fakeRatingRepo) UpsertRating(_ context.Context, rating *entity.Rating) (*entity.Rating, error) {
	key := favKey(rating.AuthorID, rating.ArticleID)
	if existing, ok := r.rows[key]; ok {
		existing.Score = rating.Score
		existing.RatedOn = rating.RatedOn
		return existing, nil
	}
	r.rows[key] = rating
	return rating, nil
}

func (r *fakeRatingRepo) GetRatingSummary(_ context.Context, articleID string) (entity.RatingSummary, error) {
	var sum float64
	var n int64
	for _, row := range r.rows {
		if row.ArticleID == articleID {
			sum += row.Score
			n++
		}
	}
	if n == 0 {
		return entity.RatingSummary{}, nil
	}
	return entity.RatingSummary{Average: sum / float64(n), Count: n}, nil
}

type fakeReportRepo struct {
	rows map[string]*entity.ArticleReport
}

func (r *fakeReportRepo) CreateReport(_ context.Context, report *entity.ArticleReport) error {
	key := favKey(report.ReporterID, report.ArticleID)
	if _, ok := r.rows[key]; ok {
		return contract.ErrDuplicate
	}
	r.rows[key] = report
	return nil
}

// cache and notifications

type fakeCache struct {
	rows        map[string]*entity.Article
	hits        int
	invalidated []string
}

func (c *fakeCache) GetArticleBySlug(_ context.Context, slug string) (*entity.Article, bool, error) {
	row, ok := c.rows[slug]
	if !ok {
		return nil, false, nil
	}
	c.hits++
	cp := *row
	return &cp, true, nil
}

func (c *fakeCache) SetArticleBySlug(_ context.Context, slug string, article *entity.Article) error {
	cp := *article
	c.rows[slug] = &cp
	return nil
}

func (c *fakeCache) InvalidateArticleBySlug(_ context.Context, slug string) error {
	delete(c.rows, slug)
	c.invalidated = append(c.invalidated, slug)
	return nil
}

type fakeNotifier struct {
	sent []entity.Notification
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, notification entity.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notification)
	return nil
}

// testEnv wires every usecase over the in-memory fakes.
type testEnv struct {
	uuid       *seqUUID
	tx         *passTransactor
	articles   *fakeArticleRepo
	categories *fakeCategoryRepo
	tags       *fakeTagRepo
	comments   *fakeCommentRepo
	reactions  *fakeReactionRepo
	favorites  *fakeFavoriteRepo
	bookmarks  *fakeBookmarkRepo
	ratings    *fakeRatingRepo
	reports    *fakeReportRepo
	cache      *fakeCache
	notifier   *fakeNotifier
	reader     *ArticleReader

	reactionUC   *ReactionUsecase
	articleUC    *ArticleUseCaseImpl
	categoryUC   usecasecontract.ICategoryUseCase
	commentUC    usecasecontract.ICommentUseCase
	engagementUC *EngagementUsecase
	outreachUC   *OutreachUsecase
}

func newTestEnv() *testEnv {
	uuid := &seqUUID{}
	env := &testEnv{
		uuid:       uuid,
		tx:         &passTransactor{},
		articles:   newFakeArticleRepo(),
		categories: newFakeCategoryRepo(),
		tags:       &fakeTagRepo{uuid: uuid, rows: map[string]*entity.Tag{}},
		comments:   newFakeCommentRepo(),
		reactions:  newFakeReactionRepo(),
		favorites:  &fakeFavoriteRepo{rows: map[string]*entity.Favorite{}},
		bookmarks:  &fakeBookmarkRepo{rows: map[string]*entity.Bookmark{}},
		ratings:    &fakeRatingRepo{rows: map[string]*entity.Rating{}},
		reports:    &fakeReportRepo{rows: map[string]*entity.ArticleReport{}},
		cache:      &fakeCache{rows: map[string]*entity.Article{}},
		notifier:   &fakeNotifier{},
	}
	logger := nopLogger{}
	cfg := staticConfig{baseURL: "https://inkwell.test/", adminEmail: "admin@inkwell.test", facebookAppID: "fb-app"}

	env.reader = NewArticleReader(env.articles, env.categories, env.reactions, env.ratings, env.cache, logger)
	env.reactionUC = NewReactionUsecase(env.reactions, env.articles, env.comments, env.reader, env.tx, uuid, logger)
	env.articleUC = NewArticleUseCase(env.articles, env.categories, env.tags, env.comments, env.reactions, env.favorites, env.reader, env.tx, uuid, logger)
	env.categoryUC = NewCategoryUseCase(env.categories, uuid, logger)
	env.commentUC = NewCommentUseCase(env.comments, env.reactions, env.reactionUC, env.reader, env.tx, uuid, logger)
	env.engagementUC = NewEngagementUsecase(env.articles, env.favorites, env.bookmarks, env.ratings, env.reader, env.tx, uuid, logger)
	env.outreachUC = NewOutreachUsecase(env.reports, env.reader, env.notifier, cfg, uuid, logger)
	return env
}

// seedArticle stores an article written by authorID and returns it.
func (e *testEnv) seedArticle(authorID, title string) *entity.Article {
	id := e.uuid.NewUUID()
	article := &entity.Article{
		ID:             id,
		Slug:           strings.ToLower(strings.ReplaceAll(title, " ", "-")) + "-" + id[:8],
		Title:          title,
		Body:           "some body text",
		AuthorID:       authorID,
		AuthorUsername: "user-" + authorID,
		Tags:           []string{},
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	e.articles.rows[id] = article
	cp := *article
	return &cp
}

func (e *testEnv) seedComment(articleID, userID, body string) *entity.Comment {
	comment := &entity.Comment{
		ID:        e.uuid.NewUUID(),
		ArticleID: articleID,
		UserID:    userID,
		Username:  "user-" + userID,
		Body:      body,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	e.comments.rows[comment.ID] = comment
	cp := *comment
	return &cp
}

func identity(userID string) entity.Identity {
	return entity.Identity{UserID: userID, Username: "user-" + userID, Email: userID + "@inkwell.test", Role: entity.UserRoleUser}
}

func admin(userID string) entity.Identity {
	id := identity(userID)
	id.Role = entity.UserRoleAdmin
	return id
}
