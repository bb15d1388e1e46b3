package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sarnali3515/query-nest-server/models"
)

// NewMemoryStores returns stores backed by in-process slices. They mirror the
// Mongo semantics the handlers rely on (newest-first reads, field-merge
// upsert, zero-match counter adjustments) and back the handler tests.
func NewMemoryStores() *Stores {
	return &Stores{
		Queries:         &MemQueryStore{},
		Recommendations: &MemRecommendationStore{},
		Favorites:       &MemFavoriteStore{},
	}
}

// MemQueryStore is the in-memory QueryStore.
type MemQueryStore struct {
	mu   sync.Mutex
	docs []models.Query
}

func (s *MemQueryStore) Insert(_ context.Context, q models.Query) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q.ID.IsZero() {
		q.ID = primitive.NewObjectID()
	}
	s.docs = append(s.docs, q)
	return q.ID, nil
}

func (s *MemQueryStore) All(_ context.Context) ([]models.Query, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Query{}
	for i := len(s.docs) - 1; i >= 0; i-- {
		out = append(out, s.docs[i])
	}
	return out, nil
}

func (s *MemQueryStore) ByOwner(_ context.Context, email string) ([]models.Query, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Query{}
	for i := len(s.docs) - 1; i >= 0; i-- {
		if s.docs[i].UserEmail == email {
			out = append(out, s.docs[i])
		}
	}
	return out, nil
}

func (s *MemQueryStore) ByID(_ context.Context, id primitive.ObjectID) (*models.Query, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.docs {
		if q.ID == id {
			q := q
			return &q, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemQueryStore) Upsert(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (*UpsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, q := range s.docs {
		if q.ID == id {
			merged, err := mergeQuery(q, fields)
			if err != nil {
				return nil, err
			}
			s.docs[i] = merged
			return &UpsertResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	created, err := mergeQuery(models.Query{ID: id}, fields)
	if err != nil {
		return nil, err
	}
	s.docs = append(s.docs, created)
	return &UpsertResult{UpsertedID: id}, nil
}

// mergeQuery applies a $set-style partial update through a bson round-trip,
// so untouched fields keep their stored values.
func mergeQuery(q models.Query, fields map[string]interface{}) (models.Query, error) {
	raw, err := bson.Marshal(q)
	if err != nil {
		return q, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return q, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	raw, err = bson.Marshal(doc)
	if err != nil {
		return q, err
	}
	var merged models.Query
	if err := bson.Unmarshal(raw, &merged); err != nil {
		return q, err
	}
	merged.ID = q.ID
	return merged, nil
}

func (s *MemQueryStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, q := range s.docs {
		if q.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemQueryStore) AdjustRecommendationCount(_ context.Context, id primitive.ObjectID, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs[i].RecommendationCount += delta
			return 1, nil
		}
	}
	return 0, nil
}

// MemRecommendationStore is the in-memory RecommendationStore.
type MemRecommendationStore struct {
	mu   sync.Mutex
	docs []models.Recommendation
}

func (s *MemRecommendationStore) Insert(_ context.Context, r models.Recommendation) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	s.docs = append(s.docs, r)
	return r.ID, nil
}

func (s *MemRecommendationStore) All(_ context.Context) ([]models.Recommendation, error) {
	return s.filter(func(models.Recommendation) bool { return true }), nil
}

func (s *MemRecommendationStore) ByRecommender(_ context.Context, email string) ([]models.Recommendation, error) {
	return s.filter(func(r models.Recommendation) bool { return r.RecommenderEmail == email }), nil
}

func (s *MemRecommendationStore) ByQueryOwner(_ context.Context, email string) ([]models.Recommendation, error) {
	return s.filter(func(r models.Recommendation) bool { return r.UserEmail == email }), nil
}

func (s *MemRecommendationStore) filter(keep func(models.Recommendation) bool) []models.Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Recommendation{}
	for _, r := range s.docs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *MemRecommendationStore) ByID(_ context.Context, id primitive.ObjectID) (*models.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.docs {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemRecommendationStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.docs {
		if r.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// MemFavoriteStore is the in-memory FavoriteStore.
type MemFavoriteStore struct {
	mu   sync.Mutex
	docs []models.Favorite
}

func (s *MemFavoriteStore) Insert(_ context.Context, f models.Favorite) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	s.docs = append(s.docs, f)
	return f.ID, nil
}

func (s *MemFavoriteStore) All(_ context.Context) ([]models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Favorite{}
	for i := len(s.docs) - 1; i >= 0; i-- {
		out = append(out, s.docs[i])
	}
	return out, nil
}

func (s *MemFavoriteStore) ByOwner(_ context.Context, email string) ([]models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Favorite{}
	for i := len(s.docs) - 1; i >= 0; i-- {
		if s.docs[i].UserEmail == email {
			out = append(out, s.docs[i])
		}
	}
	return out, nil
}

func (s *MemFavoriteStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.docs {
		if f.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
