package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"auditorium/internal/db"
)

// MongoBookingRepository is the document-store variant. Listing order is
// insertion order, kept stable by sorting on created_at then code.
type MongoBookingRepository struct {
	coll *mongo.Collection
}

func NewMongoBookingRepository(client *mongo.Client, database string) *MongoBookingRepository {
	return &MongoBookingRepository{coll: client.Database(database).Collection("bookings")}
}

// ConnectMongo dials and pings the MongoDB deployment at uri.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

func (r *MongoBookingRepository) Add(ctx context.Context, booking *db.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepository) RemoveAt(ctx context.Context, index int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if index < 0 {
		return ErrInvalidIndex
	}

	opts := options.FindOne().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "id", Value: 1}}).
		SetSkip(int64(index))
	var target db.Booking
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&target)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrInvalidIndex
		}
		return fmt.Errorf("error locating booking at index %d: %w", index, err)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": target.ID})
	if err != nil {
		return fmt.Errorf("error deleting booking %s: %w", target.ID, err)
	}
	if res.DeletedCount == 0 {
		return ErrInvalidIndex
	}
	return nil
}

func (r *MongoBookingRepository) ListAll(ctx context.Context) ([]db.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []db.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting bookings: %w", err)
	}
	return int(n), nil
}
