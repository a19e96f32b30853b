package http

import (
	"time"

	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mikiasgoitom/Inkwell/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// Usecases groups the application services the router exposes.
type Usecases struct {
	Articles   usecasecontract.IArticleUseCase
	Categories usecasecontract.ICategoryUseCase
	Comments   usecasecontract.ICommentUseCase
	Reactions  usecasecontract.IReactionUseCase
	Engagement usecasecontract.IEngagementUseCase
	Outreach   usecasecontract.IOutreachUseCase
}

type Router struct {
	articleHandler    *ArticleHandler
	categoryHandler   *CategoryHandler
	commentHandler    *CommentHandler
	reactionHandler   *ReactionHandler
	engagementHandler *EngagementHandler
	outreachHandler   *OutreachHandler

	verifier    middleware.TokenVerifier
	logger      zerolog.Logger
	corsOrigins []string
	limiter     *limiter.Limiter
}

// NewRouter wires handlers to usecases. A nil limiter disables rate limiting.
func NewRouter(uc Usecases, verifier middleware.TokenVerifier, logger zerolog.Logger, corsOrigins []string, lmt *limiter.Limiter) *Router {
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	return &Router{
		articleHandler:    NewArticleHandler(uc.Articles),
		categoryHandler:   NewCategoryHandler(uc.Categories),
		commentHandler:    NewCommentHandler(uc.Comments),
		reactionHandler:   NewReactionHandler(uc.Reactions, uc.Comments),
		engagementHandler: NewEngagementHandler(uc.Engagement),
		outreachHandler:   NewOutreachHandler(uc.Outreach),
		verifier:          verifier,
		logger:            logger,
		corsOrigins:       corsOrigins,
		limiter:           lmt,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestLogger(r.logger), middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if r.limiter != nil {
		router.Use(middleware.RateLimiter(r.limiter))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes; a valid token personalises the response
	public := v1.Group("")
	public.Use(middleware.OptionalAuth(r.verifier))
	{
		public.GET("/categories", r.categoryHandler.ListCategories)
		public.GET("/categories/:slug", r.categoryHandler.GetCategory)

		public.GET("/articles", r.articleHandler.ListArticles)
		public.GET("/articles/:slug", r.articleHandler.GetArticle)
		public.GET("/articles/:slug/reactions", r.reactionHandler.ArticleReactions)
		public.GET("/articles/:slug/comments", r.commentHandler.ListComments)
		public.GET("/articles/:slug/comments/:id", r.commentHandler.GetComment)
		public.GET("/articles/:slug/comments/:id/history", r.commentHandler.GetCommentHistory)

		public.GET("/tags", r.articleHandler.ListTags)
		public.GET("/reactions/count", r.reactionHandler.CountReactions)
	}

	// Protected routes (authentication required)
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleWare(r.verifier))
	{
		protected.POST("/categories", r.categoryHandler.CreateCategory)
		protected.PUT("/categories/:slug", r.categoryHandler.UpdateCategory)
		protected.DELETE("/categories/:slug", r.categoryHandler.DeleteCategory)

		protected.POST("/articles", r.articleHandler.CreateArticle)
		protected.PUT("/articles/:slug", r.articleHandler.UpdateArticle)
		protected.DELETE("/articles/:slug", r.articleHandler.DeleteArticle)
		protected.PUT("/articles/:slug/publish", r.articleHandler.PublishArticle)

		// Reaction ledger
		protected.POST("/reactions", r.reactionHandler.SubmitReaction)
		protected.POST("/articles/:slug/like", r.reactionHandler.LikeArticle)
		protected.POST("/articles/:slug/dislike", r.reactionHandler.DislikeArticle)
		protected.POST("/articles/:slug/comments/:id/like", r.reactionHandler.LikeComment)
		protected.POST("/articles/:slug/comments/:id/dislike", r.reactionHandler.DislikeComment)

		protected.POST("/articles/:slug/favorite", r.engagementHandler.FavoriteArticle)
		protected.DELETE("/articles/:slug/favorite", r.engagementHandler.UnfavoriteArticle)
		protected.POST("/articles/:slug/bookmark", r.engagementHandler.BookmarkArticle)
		protected.DELETE("/articles/:slug/bookmark", r.engagementHandler.RemoveBookmark)
		protected.GET("/me/bookmarks", r.engagementHandler.ListBookmarks)
		protected.POST("/articles/:slug/rate", r.engagementHandler.RateArticle)

		protected.POST("/articles/:slug/comments", r.commentHandler.CreateComment)
		protected.PUT("/articles/:slug/comments/:id", r.commentHandler.UpdateComment)
		protected.DELETE("/articles/:slug/comments/:id", r.commentHandler.DeleteComment)

		protected.POST("/articles/:slug/share/:platform", r.outreachHandler.ShareArticle)
		protected.POST("/articles/:slug/report", r.outreachHandler.ReportArticle)
	}
}
