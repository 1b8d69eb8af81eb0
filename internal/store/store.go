// Package store is the MongoDB persistence layer: user profiles,
// categories, challenges, participations, comments, and the local
// provider's credentials.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/altuslab/challenges-api/auth"
)

// Collection names. Kept as constants so pipelines and point queries
// always agree on the $lookup targets.
const (
	collUsers          = "users"
	collCategories     = "categories"
	collChallenges     = "challenges"
	collParticipations = "participations"
	collComments       = "comments"
	collCredentials    = "credentials"
)

// Store wraps a mongo database handle. One instance is shared by all
// handlers; the driver's client is safe for concurrent use.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger auth.Logger
}

// Connect dials MongoDB, pings it to fail fast on bad URIs, and returns
// the store. The caller bounds the dial with ctx.
func Connect(ctx context.Context, uri, database string, logger auth.Logger) (*Store, error) {
	if logger == nil {
		logger = auth.DefaultLogger()
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	logger.Info("connected to mongodb", "database", database)

	return &Store{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) users() *mongo.Collection          { return s.db.Collection(collUsers) }
func (s *Store) categories() *mongo.Collection     { return s.db.Collection(collCategories) }
func (s *Store) challenges() *mongo.Collection     { return s.db.Collection(collChallenges) }
func (s *Store) participations() *mongo.Collection { return s.db.Collection(collParticipations) }
func (s *Store) comments() *mongo.Collection       { return s.db.Collection(collComments) }
func (s *Store) credentials() *mongo.Collection    { return s.db.Collection(collCredentials) }
