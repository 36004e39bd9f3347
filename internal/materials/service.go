package materials

import (
	"fmt"
	"log"
	"strings"

	"github.com/learnmate/backend/internal/models"
)

// Service combines the persistent material catalog with the in-memory
// search index. The index is rebuilt from the catalog at startup and kept
// in step on every Add.
type Service struct {
	store *Store
	index *Index
}

func NewService(store *Store) *Service {
	return &Service{store: store, index: NewIndex()}
}

// Load seeds the catalog if it is nearly empty, then builds the index.
func (s *Service) Load() error {
	if err := s.seedIfEmpty(); err != nil {
		return err
	}

	mats, err := s.store.All()
	if err != nil {
		return fmt.Errorf("load materials: %w", err)
	}
	s.index.Reload(mats)
	log.Printf("Material index ready with %d materials", s.index.Len())
	return nil
}

// Search finds the k most relevant materials for a query.
func (s *Service) Search(query string, filters map[string]string, k int) ([]models.SearchResult, error) {
	return s.index.Search(query, filters, k)
}

// Add persists a new material and makes it searchable immediately.
func (s *Service) Add(req models.AddMaterialRequest) (*models.Material, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" || strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("topic and content are required")
	}
	if req.Difficulty == "" {
		req.Difficulty = "beginner"
	}
	if req.ContentType == "" {
		req.ContentType = "article"
	}

	m := models.Material{
		Topic:       req.Topic,
		Difficulty:  req.Difficulty,
		ContentType: req.ContentType,
		Content:     req.Content,
		Tags:        req.Tags,
	}
	if req.Subtopic != "" {
		m.Subtopic = &req.Subtopic
	}

	saved, err := s.store.Insert(m)
	if err != nil {
		return nil, err
	}

	s.index.Add(*saved)
	return saved, nil
}

// Topics lists every distinct topic in the catalog.
func (s *Service) Topics() ([]string, error) {
	return s.store.Topics()
}
