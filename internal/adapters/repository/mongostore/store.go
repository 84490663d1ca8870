// Package mongostore implements repository.Store on a MongoDB collection.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/okian/contacts/internal/adapters/repository"
	"github.com/okian/contacts/internal/domain/model"
	"github.com/okian/contacts/pkg/metrics"
)

const storeName = "mongo"

// contactDoc is the stored shape of a contact. Order is an ObjectID minted at
// insert time; sorting on it yields insertion order.
type contactDoc struct {
	model.Contact `bson:",inline"`
	Order         primitive.ObjectID `bson:"order"`
	CreatedAt     time.Time          `bson:"created_at"`
}

// Store provides access to the contacts collection.
type Store struct {
	c      *mongo.Collection
	client *mongo.Client // set by Connect; nil when the caller owns the client
	now    func() time.Time
	closed atomic.Bool
}

// New wraps an existing collection. The caller keeps ownership of the client.
func New(c *mongo.Collection) *Store {
	return &Store{c: c, now: time.Now}
}

// Connect dials uri, pings the primary and returns a Store that owns the client.
func Connect(ctx context.Context, uri, database, collection string, timeout time.Duration) (*Store, error) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("mongostore.connect: %w", err)
	}
	if err := client.Ping(cctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongostore.ping: %w", err)
	}

	s := New(client.Database(database).Collection(collection))
	s.client = client
	if err := s.EnsureIndexes(cctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

// EnsureIndexes creates the index backing FindAll ordering.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order", Value: 1}},
		Options: options.Index().SetName("order_1"),
	})
	if err != nil {
		return fmt.Errorf("mongostore.ensure_indexes: %w", err)
	}
	return nil
}

// Create inserts c. A duplicate _id maps to repository.ErrAlreadyExists.
func (s *Store) Create(ctx context.Context, c model.Contact) (err error) {
	const op = "create"
	start := time.Now()
	defer func() { observe(op, start, err) }()

	if s.closed.Load() {
		return repository.ErrClosed
	}

	_, err = s.c.InsertOne(ctx, toDoc(c, s.now()))
	switch {
	case err == nil:
		return nil
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("mongostore.%s %q: %w", op, c.ID, repository.ErrAlreadyExists)
	default:
		return fmt.Errorf("mongostore.%s: %w", op, mapErr(err))
	}
}

// FindAll returns every contact ordered by insertion.
func (s *Store) FindAll(ctx context.Context) (out []model.Contact, err error) {
	const op = "find_all"
	start := time.Now()
	defer func() { observe(op, start, err) }()

	if s.closed.Load() {
		return nil, repository.ErrClosed
	}

	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongostore.%s: %w", op, mapErr(err))
	}
	defer func() { _ = cur.Close(ctx) }()

	var docs []contactDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore.%s: %w", op, mapErr(err))
	}
	return fromDocs(docs), nil
}

// Count returns the number of stored contacts.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s.closed.Load() {
		return 0, repository.ErrClosed
	}
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongostore.count: %w", mapErr(err))
	}
	return int(n), nil
}

// Close disconnects the client when the store owns it.
func (s *Store) Close(ctx context.Context) error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongostore.close: %w", err)
	}
	return nil
}

func toDoc(c model.Contact, now time.Time) contactDoc {
	return contactDoc{
		Contact:   c,
		Order:     primitive.NewObjectID(),
		CreatedAt: now.UTC(),
	}
}

func fromDocs(docs []contactDoc) []model.Contact {
	out := make([]model.Contact, len(docs))
	for i, d := range docs {
		out[i] = d.Contact
	}
	return out
}

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrClientDisconnected) {
		return repository.ErrClosed
	}
	return err
}

func observe(op string, start time.Time, err error) {
	metrics.RecordRepositoryOperation(storeName, op, float64(time.Since(start).Microseconds())/1000, err)
}

var _ repository.Store = (*Store)(nil)
