package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	Postgres *gorm.DB
	Mongo    *mongo.Database
	Redis    *redis.Client
}

// InitDB connects Postgres (relational workflow state), MongoDB (uploaded
// artifacts) and Redis (password-reset codes), and runs migrations.
func InitDB() (*Database, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Kolkata",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	pgDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	log.Println("Running PostgreSQL migrations...")
	err = pgDB.AutoMigrate(
		&model.UserProfile{},
		&model.InternshipApplication{},
		&model.WeeklyLog{},
		&model.ProgressProof{},
		&model.InternshipCompletion{},
	)
	if err != nil {
		return nil, fmt.Errorf("postgres migration failed: %w", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connection failed: %w", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}
	mongoDatabase := mongoClient.Database(os.Getenv("MONGO_DB_NAME"))

	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("Connected to PostgreSQL, MongoDB and Redis")

	return &Database{
		Postgres: pgDB,
		Mongo:    mongoDatabase,
		Redis:    rdb,
	}, nil
}
