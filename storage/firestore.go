package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/careerpath/webapp/models"
)

// careerDocument keeps the catalog order in Firestore
type careerDocument struct {
	models.CareerListing
	Position int `firestore:"position"`
}

// FirestoreStore reads the catalog from a Firestore collection keyed by
// career id
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreStore creates a new Firestore-backed catalog
func NewFirestoreStore(ctx context.Context, projectID, collection string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreStore{client: client, collection: collection}, nil
}

// Close closes the Firestore client
func (f *FirestoreStore) Close() error {
	return f.client.Close()
}

// List returns every listing in catalog order
func (f *FirestoreStore) List(ctx context.Context) ([]models.CareerListing, error) {
	iter := f.client.Collection(f.collection).OrderBy("position", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var listings []models.CareerListing
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query careers: %w", err)
		}

		var career careerDocument
		if err := doc.DataTo(&career); err != nil {
			return nil, fmt.Errorf("failed to parse career %s: %w", doc.Ref.ID, err)
		}
		career.ID = doc.Ref.ID
		listings = append(listings, career.CareerListing)
	}
	return listings, nil
}

// Get returns the listing with id
func (f *FirestoreStore) Get(ctx context.Context, id string) (*models.CareerListing, error) {
	doc, err := f.client.Collection(f.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCareerNotFound
		}
		return nil, fmt.Errorf("failed to get career: %w", err)
	}

	var career careerDocument
	if err := doc.DataTo(&career); err != nil {
		return nil, fmt.Errorf("failed to parse career data: %w", err)
	}
	career.ID = doc.Ref.ID
	return &career.CareerListing, nil
}

// SeedIfEmpty writes listings when the collection has no documents yet.
// It reports how many documents were written.
func (f *FirestoreStore) SeedIfEmpty(ctx context.Context, listings []models.CareerListing) (int, error) {
	iter := f.client.Collection(f.collection).Limit(1).Documents(ctx)
	_, err := iter.Next()
	iter.Stop()
	if err == nil {
		return 0, nil
	}
	if err != iterator.Done {
		return 0, fmt.Errorf("failed to check catalog: %w", err)
	}

	for i, listing := range listings {
		doc := careerDocument{CareerListing: listing, Position: i}
		if _, err := f.client.Collection(f.collection).Doc(listing.ID).Set(ctx, doc); err != nil {
			return i, fmt.Errorf("failed to seed career %s: %w", listing.ID, err)
		}
	}
	return len(listings), nil
}
