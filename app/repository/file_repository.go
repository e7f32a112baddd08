package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rakesh-s-omen/SmartIntern/app/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrFileNotFound is returned when no document matches the given id.
var ErrFileNotFound = errors.New("file not found")

// FileRepository stores uploaded artifacts in MongoDB (collection: files).
type FileRepository interface {
	// Save inserts the file and returns its hex ObjectID.
	Save(ctx context.Context, file *model.StoredFile) (string, error)
	FindByID(ctx context.Context, hexID string) (*model.StoredFile, error)
	Delete(ctx context.Context, hexID string) error
}

type fileRepository struct {
	mongo *mongo.Database
}

func NewFileRepository(mongoDB *mongo.Database) FileRepository {
	return &fileRepository{mongo: mongoDB}
}

func (r *fileRepository) collection() *mongo.Collection {
	return r.mongo.Collection("files")
}

func (r *fileRepository) Save(ctx context.Context, file *model.StoredFile) (string, error) {
	res, err := r.collection().InsertOne(ctx, file)
	if err != nil {
		return "", fmt.Errorf("mongo insert error: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("mongo insert returned non-ObjectID")
	}
	return oid.Hex(), nil
}

func (r *fileRepository) FindByID(ctx context.Context, hexID string) (*model.StoredFile, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrFileNotFound
	}
	var file model.StoredFile
	err = r.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&file)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) Delete(ctx context.Context, hexID string) error {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return ErrFileNotFound
	}
	_, err = r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
