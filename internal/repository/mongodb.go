// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const healthCheckTimeout = 2 * time.Second

// ClientOptions tunes the driver's connection pool and timeouts.
type ClientOptions struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	// Compressors in order of preference; empty disables wire compression.
	Compressors []string
}

// DefaultClientOptions returns the pool settings the service runs with.
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		Compressors:            []string{"zstd", "snappy", "zlib"},
	}
}

func (o ClientOptions) driverOptions(uri string) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetRegistry(NewRegistry()).
		SetMaxPoolSize(o.MaxPoolSize).
		SetMinPoolSize(o.MinPoolSize).
		SetMaxConnIdleTime(o.MaxConnIdleTime).
		SetConnectTimeout(o.ConnectTimeout).
		SetServerSelectionTimeout(o.ServerSelectionTimeout).
		SetSocketTimeout(o.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if len(o.Compressors) > 0 {
		opts.SetCompressors(o.Compressors)
	}
	return opts
}

// MongoDB holds the client and one handle per collection the service uses.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database

	Households    *mongo.Collection
	Ingredients   *mongo.Collection
	Recipes       *mongo.Collection
	MealPlans     *mongo.Collection
	Pantries      *mongo.Collection
	ShoppingLists *mongo.Collection

	Logs        *mongo.Collection
	Users       *mongo.Collection
	Roles       *mongo.Collection
	Permissions *mongo.Collection
	Tokens      *mongo.Collection
}

// NewMongoDB connects with DefaultClientOptions.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return Connect(context.Background(), uri, databaseName, DefaultClientOptions())
}

// Connect opens a client, verifies it with a ping and ensures the indexes
// the repositories depend on. The client is disconnected again on any failure.
func Connect(ctx context.Context, uri, databaseName string, o ClientOptions) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, o.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, o.driverOptions(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	db := bind(client, databaseName)
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	if err := db.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return db, nil
}

// collectionRecipes is also the $lookup source of meal plan loads.
const collectionRecipes = "recipes"

func bind(client *mongo.Client, databaseName string) *MongoDB {
	d := client.Database(databaseName)
	return &MongoDB{
		Client:        client,
		Database:      d,
		Households:    d.Collection("households"),
		Ingredients:   d.Collection("ingredients"),
		Recipes:       d.Collection(collectionRecipes),
		MealPlans:     d.Collection("meal_plans"),
		Pantries:      d.Collection("pantries"),
		ShoppingLists: d.Collection("shopping_lists"),
		Logs:          d.Collection("logs"),
		Users:         d.Collection("users"),
		Roles:         d.Collection("roles"),
		Permissions:   d.Collection("permissions"),
		Tokens:        d.Collection("tokens"),
	}
}

// index describes one index. Required indexes back a uniqueness rule the
// repositories rely on; the rest only speed up lookups.
type index struct {
	collection *mongo.Collection
	keys       bson.D
	unique     bool
	expireNow  bool
	required   bool
}

func asc(fields ...string) bson.D {
	keys := make(bson.D, len(fields))
	for i, f := range fields {
		keys[i] = bson.E{Key: f, Value: 1}
	}
	return keys
}

func (m *MongoDB) indexes() []index {
	newest := func(field string) bson.D {
		return bson.D{{Key: field, Value: 1}, {Key: "timestamp", Value: -1}}
	}
	return []index{
		{collection: m.Ingredients, keys: asc("name"), unique: true, required: true},
		{collection: m.Pantries, keys: asc("household_id"), unique: true, required: true},
		{collection: m.Users, keys: asc("email"), unique: true, required: true},
		{collection: m.Roles, keys: asc("name"), unique: true},
		{collection: m.Permissions, keys: asc("resource", "action"), unique: true},
		{collection: m.Tokens, keys: asc("token"), unique: true},
		{collection: m.Tokens, keys: asc("user_id", "type")},
		{collection: m.Tokens, keys: asc("expires_at"), expireNow: true},
		{collection: m.Households, keys: asc("members.user_id")},
		{collection: m.Recipes, keys: asc("household_id", "name")},
		{collection: m.MealPlans, keys: bson.D{{Key: "household_id", Value: 1}, {Key: "week_start_date", Value: -1}}},
		{collection: m.ShoppingLists, keys: bson.D{{Key: "household_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{collection: m.Logs, keys: asc("request_id")},
		{collection: m.Logs, keys: newest("user_id")},
		{collection: m.Logs, keys: newest("action_type")},
	}
}

func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	for _, idx := range m.indexes() {
		opts := options.Index()
		if idx.unique {
			opts.SetUnique(true)
		}
		if idx.expireNow {
			opts.SetExpireAfterSeconds(0)
		}
		_, err := idx.collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: idx.keys, Options: opts})
		switch {
		case err == nil:
		case idx.required:
			return fmt.Errorf("create index on %s: %w", idx.collection.Name(), err)
		default:
			log.Warn().Err(err).Str("collection", idx.collection.Name()).Msg("Failed to create index")
		}
	}
	return nil
}

// SetLogsTTL replaces the TTL index that expires log entries ttl after their
// timestamp. Sub-second values are rejected since they would expire entries
// as soon as they are written.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	if ttl < time.Second {
		return errors.New("logs ttl must be at least one second")
	}

	// absent on a fresh database
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	_, err := m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    asc("timestamp"),
		Options: options.Index().SetExpireAfterSeconds(int32(ttl / time.Second)),
	})
	if err != nil {
		return fmt.Errorf("create logs ttl index: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary with a short deadline.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
