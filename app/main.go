package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	mysqlRepo "github.com/Guyuepp/Go-Social-Blog/internal/repository/mysql"
	redisRepo "github.com/Guyuepp/Go-Social-Blog/internal/repository/redis"
	"github.com/Guyuepp/Go-Social-Blog/internal/rest"
	"github.com/Guyuepp/Go-Social-Blog/internal/rest/middleware"
	"github.com/Guyuepp/Go-Social-Blog/internal/usecase/comment"
	"github.com/Guyuepp/Go-Social-Blog/internal/usecase/feed"
	"github.com/Guyuepp/Go-Social-Blog/internal/usecase/follow"
	"github.com/Guyuepp/Go-Social-Blog/internal/usecase/interaction"
	"github.com/Guyuepp/Go-Social-Blog/internal/usecase/notification"
	"github.com/Guyuepp/Go-Social-Blog/internal/usecase/post"
	"github.com/Guyuepp/Go-Social-Blog/internal/usecase/ranking"
	"github.com/Guyuepp/Go-Social-Blog/internal/workers"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	defaultEventTopic  = "engagement-events"
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	postRepo := mysqlRepo.NewPostRepository(db)
	postViewRepo := mysqlRepo.NewPostViewRepository(db)
	interactionRepo := mysqlRepo.NewInteractionRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	followRepo := mysqlRepo.NewFollowRepository(db)
	notificationRepo := mysqlRepo.NewNotificationRepository(db)

	trendingCache := redisRepo.NewTrendingCache(client)
	realtime := redisRepo.NewRealtimePublisher(client)

	// Start workers
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pushWorker := workers.NewPushWorker(realtime)
	go pushWorker.Start(ctx)

	var events domain.EventPublisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		topic := os.Getenv("KAFKA_TOPIC")
		if topic == "" {
			topic = defaultEventTopic
		}
		eventWorker := workers.NewEventWorker(strings.Split(brokers, ","), topic)
		go eventWorker.Start(ctx)
		events = eventWorker
	} else {
		log.Println("KAFKA_BROKERS not set, engagement events disabled")
		events = workers.NewNopEventPublisher()
	}

	// Build service layer
	notificationSvc := notification.NewService(notificationRepo, userRepo, pushWorker)
	interactionSvc := interaction.NewService(interactionRepo, postRepo, notificationSvc, events)
	commentSvc := comment.NewService(commentRepo, postRepo, userRepo, notificationSvc, events)
	rankingSvc := ranking.NewService(postRepo, userRepo, trendingCache)
	feedSvc := feed.NewService(postRepo, followRepo, userRepo)
	followSvc := follow.NewService(followRepo, userRepo, notificationSvc, events)
	postSvc := post.NewService(postRepo, postViewRepo, events)

	postHandler := rest.NewPostHandler(rankingSvc, feedSvc, postSvc)
	interactionHandler := rest.NewInteractionHandler(interactionSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	notificationHandler := rest.NewNotificationHandler(notificationSvc)
	followHandler := rest.NewFollowHandler(followSvc)

	jwtSecret := os.Getenv("JWT_SECRET")
	authMiddleware := middleware.AuthMiddleware(jwtSecret)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtSecret)

	// Register routes
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	route.GET("/posts/trending", postHandler.FetchTrending)
	route.GET("/posts/search", postHandler.Search)
	route.GET("/posts/:id/similar", postHandler.FetchSimilar)
	route.GET("/posts/:id/comments", commentHandler.FetchByPost)
	route.GET("/posts/slug/:slug/comments", commentHandler.FetchByPostSlug)
	route.GET("/posts/:id/interactions", optionalAuth, interactionHandler.Status)
	route.POST("/posts/:id/views", optionalAuth, postHandler.RecordView)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/feed", postHandler.FetchFeed)

		authorized.POST("/posts/:id/like", interactionHandler.ToggleLike)
		authorized.POST("/posts/:id/bookmark", interactionHandler.ToggleBookmark)

		authorized.POST("/posts/:id/comments", commentHandler.CreateComment)
		authorized.PUT("/comments/:commentID", commentHandler.UpdateComment)
		authorized.DELETE("/comments/:commentID", commentHandler.DeleteComment)

		authorized.POST("/follows", followHandler.Follow)
		authorized.DELETE("/follows/:username", followHandler.Unfollow)
		authorized.GET("/follows/:username", followHandler.IsFollowing)

		authorized.GET("/notifications", notificationHandler.Fetch)
		authorized.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		authorized.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
		authorized.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for workers to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
