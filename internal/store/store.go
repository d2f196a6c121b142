package store

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit caps Find results when the caller does not ask for a limit.
const DefaultLimit = 50

// Document is implemented by persisted types so the client can stamp both
// timestamp fields with the same wall-clock instant at insertion.
type Document interface {
	Stamp(now time.Time)
}

// Client is a lazily-connected handle to the document store. The connection
// is established once, on first use; concurrent first calls share a single
// setup attempt. After setup the underlying driver handles are safe for
// concurrent use.
type Client struct {
	uri    string
	dbName string
	logger *log.Logger

	once sync.Once
	mc   *mongo.Client
	db   *mongo.Database
	err  error
}

// New builds a Client. No connection is made until first use.
func New(uri, dbName string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{uri: uri, dbName: dbName, logger: logger}
}

func (c *Client) database(ctx context.Context) (*mongo.Database, error) {
	c.once.Do(func() {
		opts := options.Client().
			ApplyURI(c.uri).
			SetConnectTimeout(10 * time.Second).
			SetServerSelectionTimeout(5 * time.Second)

		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			c.err = fmt.Errorf("connect document store: %w", err)
			return
		}
		c.mc = client
		c.db = client.Database(c.dbName)
		c.logger.Printf("store: connected db=%s", c.dbName)
	})
	return c.db, c.err
}

// Ping verifies the store is reachable, connecting first if needed.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.database(ctx); err != nil {
		return err
	}
	return c.mc.Ping(ctx, nil)
}

// Collection exposes a collection handle for operations the generic surface
// does not cover, such as index bootstrap.
func (c *Client) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := c.database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Insert stamps the document's timestamps, persists it and returns the
// store-assigned identifier.
func (c *Client) Insert(ctx context.Context, collection string, doc Document) (primitive.ObjectID, error) {
	db, err := c.database(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	doc.Stamp(time.Now().UTC())

	res, err := db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		c.logger.Printf("store: insert collection=%s error=%v", collection, err)
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return id, nil
}

// Find decodes up to limit documents matching filter into results, which
// must be a pointer to a slice. A zero or negative limit falls back to
// DefaultLimit. No ordering is guaranteed beyond the store's natural
// retrieval order.
func (c *Client) Find(ctx context.Context, collection string, filter bson.M, limit int64, results any) error {
	db, err := c.database(ctx)
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if filter == nil {
		filter = bson.M{}
	}

	cur, err := db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		c.logger.Printf("store: find collection=%s error=%v", collection, err)
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cur.All(ctx, results); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

// Close disconnects from the store. Safe to call when the client never
// connected.
func (c *Client) Close(ctx context.Context) error {
	if c.mc == nil {
		return nil
	}
	return c.mc.Disconnect(ctx)
}
