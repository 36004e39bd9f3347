package materials

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/learnmate/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(m models.Material) (*models.Material, error) {
	err := s.db.QueryRow(
		`INSERT INTO learning_materials (topic, subtopic, difficulty, content_type, content, tags)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		m.Topic, m.Subtopic, m.Difficulty, m.ContentType, m.Content, strings.Join(m.Tags, ","),
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert material: %w", err)
	}
	return &m, nil
}

func (s *Store) All() ([]models.Material, error) {
	rows, err := s.db.Query(
		`SELECT id, topic, subtopic, difficulty, content_type, content, tags, created_at
		 FROM learning_materials ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var mats []models.Material
	for rows.Next() {
		var m models.Material
		var tags sql.NullString
		if err := rows.Scan(&m.ID, &m.Topic, &m.Subtopic, &m.Difficulty,
			&m.ContentType, &m.Content, &tags, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		if tags.Valid && tags.String != "" {
			m.Tags = strings.Split(tags.String, ",")
		}
		mats = append(mats, m)
	}
	return mats, rows.Err()
}

func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM learning_materials`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count materials: %w", err)
	}
	return count, nil
}

func (s *Store) Topics() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT topic FROM learning_materials ORDER BY topic`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var topic string
		if err := rows.Scan(&topic); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}
