package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/models"
)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}

type exerciseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

func (d exerciseDoc) model() models.Exercise {
	return models.Exercise{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Description: d.Description,
		Duration:    d.Duration,
		Date:        d.Date.UTC(),
	}
}

// MongoStore keeps users and exercises in two MongoDB collections.
type MongoStore struct {
	users     *mongo.Collection
	exercises *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		users:     db.Collection("users"),
		exercises: db.Collection("exercises"),
	}
}

// EnsureIndexes creates the unique username index and the log lookup index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo users index: %w", err)
	}
	_, err = s.exercises.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("mongo exercises index: %w", err)
	}
	return nil
}

func (s *MongoStore) CreateUser(ctx context.Context, username string) (*models.User, error) {
	res, err := s.users.InsertOne(ctx, userDoc{Username: username})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("mongo insert user: %w", err)
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return &models.User{ID: oid.Hex(), Username: username}, nil
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"username": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo list users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo list users: %w", err)
	}
	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, models.User{ID: d.ID.Hex(), Username: d.Username})
	}
	return users, nil
}

func (s *MongoStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc userDoc
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find user: %w", err)
	}
	return &models.User{ID: doc.ID.Hex(), Username: doc.Username}, nil
}

func (s *MongoStore) InsertExercise(ctx context.Context, e models.Exercise) (*models.Exercise, error) {
	doc := exerciseDoc{
		UserID:      e.UserID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date,
	}
	res, err := s.exercises.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("mongo insert exercise: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	out := doc.model()
	return &out, nil
}

// logFilter translates q into the bson predicate used by FindExercises.
func logFilter(q models.LogQuery) bson.M {
	filter := bson.M{"user_id": q.UserID}
	date := bson.M{}
	if q.From != nil {
		date["$gte"] = *q.From
	}
	if q.To != nil {
		date["$lte"] = *q.To
	}
	if len(date) > 0 {
		filter["date"] = date
	}
	return filter
}

func (s *MongoStore) FindExercises(ctx context.Context, q models.LogQuery) ([]models.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	cur, err := s.exercises.Find(ctx, logFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find exercises: %w", err)
	}
	defer cur.Close(ctx)

	var docs []exerciseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo find exercises: %w", err)
	}
	out := make([]models.Exercise, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}
