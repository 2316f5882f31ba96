package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/config"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/events"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/exercises"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/server"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/store"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/users"
)

// backend is what both feature services need from a store.
type backend interface {
	users.Store
	exercises.Store
	exercises.UserFinder
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()
	ctx := context.Background()

	// ── Store ────────────────────────────────────────────────
	var db backend
	switch cfg.StoreBackend {
	case "mongo":
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatalf("mongo connect: %v", err)
		}
		defer mongoClient.Disconnect(ctx)
		if err := mongoClient.Ping(ctx, nil); err != nil {
			log.Fatalf("mongo ping: %v", err)
		}
		mongoStore := store.NewMongoStore(mongoClient.Database(cfg.MongoDB))
		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			log.Fatalf("mongo indexes: %v", err)
		}
		db = mongoStore
		log.Printf("Connected to MongoDB database %q", cfg.MongoDB)

	case "postgres":
		pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pgPool.Close()
		pgStore := store.NewPostgresStore(pgPool)
		if err := pgStore.Migrate(ctx); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		db = pgStore
		log.Println("Connected to PostgreSQL")

	case "memory":
		db = store.NewMemoryStore()
		log.Println("Using in-memory store; data is lost on restart")

	default:
		log.Fatalf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	// ── Redis user cache ─────────────────────────────────────
	var userFinder exercises.UserFinder = db
	if cfg.RedisAddr != "" {
		rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()
		userFinder = store.NewUserCache(db, rdb, cfg.UserCacheTTL)
	}

	// ── Events ───────────────────────────────────────────────
	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// ── Handlers ─────────────────────────────────────────────
	userHandler := users.NewHandler(users.NewService(db))
	exerciseHandler := exercises.NewHandler(exercises.NewService(userFinder, db, publisher))

	router := server.NewRouter(server.Options{
		Users:       userHandler,
		Exercises:   exerciseHandler,
		CORSOrigins: cfg.CORSOrigins,
		ViewsDir:    cfg.ViewsDir,
		PublicDir:   cfg.PublicDir,
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Your app is listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
