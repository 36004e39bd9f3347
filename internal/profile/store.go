package profile

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/learnmate/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the user's profile, falling back to visual/beginner defaults
// when no row exists. A missing profile is not an error.
func (s *Store) Get(userID int64) (models.UserProfile, error) {
	var p models.UserProfile
	var interests string

	err := s.db.QueryRow(
		`SELECT user_id, learning_style, knowledge_level, interests, updated_at
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.LearningStyle, &p.KnowledgeLevel, &interests, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return defaultProfile(userID), nil
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	p.Interests = splitInterests(interests)
	return p, nil
}

// Update applies the non-nil fields of req on top of the stored profile
// and returns the result. Creates the row on first update.
func (s *Store) Update(userID int64, req models.UpdateProfileRequest) (models.UserProfile, error) {
	current, err := s.Get(userID)
	if err != nil {
		return models.UserProfile{}, err
	}

	if req.LearningStyle != nil {
		style := models.LearningStyle(*req.LearningStyle)
		if !models.ValidLearningStyles[style] {
			return models.UserProfile{}, fmt.Errorf("invalid learning style: %q", *req.LearningStyle)
		}
		current.LearningStyle = style
	}
	if req.KnowledgeLevel != nil {
		level := models.KnowledgeLevel(*req.KnowledgeLevel)
		if !models.ValidKnowledgeLevels[level] {
			return models.UserProfile{}, fmt.Errorf("invalid knowledge level: %q", *req.KnowledgeLevel)
		}
		current.KnowledgeLevel = level
	}
	if req.Interests != nil {
		current.Interests = *req.Interests
	}

	err = s.db.QueryRow(
		`INSERT INTO user_profiles (user_id, learning_style, knowledge_level, interests, updated_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (user_id) DO UPDATE
		 SET learning_style = EXCLUDED.learning_style,
		     knowledge_level = EXCLUDED.knowledge_level,
		     interests = EXCLUDED.interests,
		     updated_at = NOW()
		 RETURNING updated_at`,
		userID, current.LearningStyle, current.KnowledgeLevel, strings.Join(current.Interests, ","),
	).Scan(&current.UpdatedAt)

	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	current.UserID = userID
	return current, nil
}

func defaultProfile(userID int64) models.UserProfile {
	return models.UserProfile{
		UserID:         userID,
		LearningStyle:  models.StyleVisual,
		KnowledgeLevel: models.LevelBeginner,
		Interests:      []string{},
		UpdatedAt:      time.Now(),
	}
}

func splitInterests(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	interests := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			interests = append(interests, trimmed)
		}
	}
	return interests
}
