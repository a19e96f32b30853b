package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/Inkwell/internal/handler/http"
	"github.com/mikiasgoitom/Inkwell/internal/handler/http/middleware"
	redisclient "github.com/mikiasgoitom/Inkwell/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Inkwell/internal/infrastructure/database"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/messaging"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/store"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/supervisor"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Inkwell/internal/usecase"
)

func main() {
	configPath := pflag.String("config", "", "path to a YAML config file (overrides CONFIG_PATH)")
	pflag.Parse()

	// Load environment variables from .env file
	envErr := godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewZeroLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if envErr != nil {
		appLogger.Debugf("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Errorf("inkwell stopped: %v", err)
		os.Exit(1)
	}
	appLogger.Infof("inkwell stopped")
}

func run(ctx context.Context, cfg *config.Config, appLogger *logger.ZeroLogger) error {
	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	db := mongoClient.Database
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	// Dependency Injection: Repositories
	articleRepo := mongodb.NewArticleRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	tagRepo := mongodb.NewTagRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	reactionRepo := mongodb.NewReactionRepository(db)
	favoriteRepo := mongodb.NewFavoriteRepository(db)
	bookmarkRepo := mongodb.NewBookmarkRepository(db)
	ratingRepo := mongodb.NewRatingRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	tx := mongodb.NewTransactor(mongoClient.Client, cfg.Mongo.Transactions)
	if !cfg.Mongo.Transactions {
		appLogger.Warnf("MongoDB transactions disabled; unique indexes alone guard the reaction ledger")
	}

	// Optional Dependency Injection: Redis cache
	var articleCache contract.IArticleCache
	if cfg.Redis.URL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer redisclient.Close(rdb)
		articleCache = store.NewArticleCacheStore(rdb)
		appLogger.Infof("article cache enabled")
	}

	tree := supervisor.NewTree(appLogger.Zerolog().With().Str("component", "supervisor").Logger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	notifier, closeNotifier, err := buildNotifier(cfg, appLogger, tree)
	if err != nil {
		return err
	}
	defer closeNotifier()

	// Dependency Injection: Usecases
	ids := uuidgen.NewGenerator()
	reader := usecase.NewArticleReader(articleRepo, categoryRepo, reactionRepo, ratingRepo, articleCache, appLogger.With("articles"))
	reactionUC := usecase.NewReactionUsecase(reactionRepo, articleRepo, commentRepo, reader, tx, ids, appLogger.With("reactions"))
	usecases := handlerHttp.Usecases{
		Articles:   usecase.NewArticleUseCase(articleRepo, categoryRepo, tagRepo, commentRepo, reactionRepo, favoriteRepo, reader, tx, ids, appLogger.With("articles")),
		Categories: usecase.NewCategoryUseCase(categoryRepo, ids, appLogger.With("categories")),
		Comments:   usecase.NewCommentUseCase(commentRepo, reactionRepo, reactionUC, reader, tx, ids, appLogger.With("comments")),
		Reactions:  reactionUC,
		Engagement: usecase.NewEngagementUsecase(articleRepo, favoriteRepo, bookmarkRepo, ratingRepo, reader, tx, ids, appLogger.With("engagement")),
		Outreach:   usecase.NewOutreachUsecase(reportRepo, reader, notifier, cfg, ids, appLogger.With("outreach")),
	}

	verifier, err := jwt.NewVerifier(cfg.JWT.Secret)
	if err != nil {
		return err
	}

	// Register custom validators
	if err := validator.RegisterCustomValidators(); err != nil {
		return err
	}

	var lmt *limiter.Limiter
	if cfg.Server.RateLimitRPS > 0 {
		lmt = middleware.NewLimiter(cfg.Server.RateLimitRPS)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	handlerHttp.NewRouter(usecases, verifier, appLogger.Zerolog().With().Str("component", "http").Logger(), cfg.Server.CORSOrigins, lmt).
		SetupRoutes(engine)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	appLogger.Infof("Server running on port %s", cfg.Server.Port)
	return tree.Serve(ctx)
}

// buildNotifier returns the sender used by the usecases. With AMQP configured,
// notifications are queued and a supervised worker delivers them over SMTP.
func buildNotifier(cfg *config.Config, appLogger *logger.ZeroLogger, tree *supervisor.Tree) (contract.INotificationSender, func(), error) {
	if !cfg.EmailEnabled() {
		appLogger.Warnf("email credentials not set; share and report notifications will fail")
	}
	email := external_services.NewEmailService(cfg.Email.Host, cfg.Email.Port, cfg.Email.Username, cfg.Email.AppPassword, cfg.Email.From)
	smtp := external_services.NewBreakerSender(email, external_services.DefaultBreakerSettings(), appLogger.With("smtp"))

	if cfg.AMQP.URL == "" {
		return smtp, func() {}, nil
	}
	client, err := messaging.NewRabbitMQClient(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		return nil, nil, err
	}
	tree.AddWorkerService(messaging.NewNotificationWorker(client, client.Queue(), smtp, appLogger.With("notification-worker")))
	appLogger.Infof("notifications queued on %s", client.Queue())
	return messaging.NewQueueSender(client, client.Queue()), func() { _ = client.Close() }, nil
}
