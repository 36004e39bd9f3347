package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/learnmate/backend/internal/config"
)

func Connect(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		username   VARCHAR(50) UNIQUE NOT NULL,
		email      VARCHAR(255) UNIQUE,
		password   VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		last_login TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);

	CREATE TABLE IF NOT EXISTS user_profiles (
		user_id         BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		learning_style  VARCHAR(20) NOT NULL DEFAULT 'visual',
		knowledge_level VARCHAR(20) NOT NULL DEFAULT 'beginner',
		interests       TEXT NOT NULL DEFAULT '',
		updated_at      TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS learning_progress (
		id                  BIGSERIAL PRIMARY KEY,
		user_id             BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		topic               VARCHAR(255) NOT NULL,
		subtopic            VARCHAR(255),
		proficiency_score   INT NOT NULL DEFAULT 0 CHECK (proficiency_score >= 0 AND proficiency_score <= 100),
		questions_attempted INT NOT NULL DEFAULT 0,
		questions_correct   INT NOT NULL DEFAULT 0,
		last_practiced      TIMESTAMP WITH TIME ZONE,
		created_at          TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, topic)
	);

	CREATE INDEX IF NOT EXISTS idx_progress_user ON learning_progress(user_id);

	CREATE TABLE IF NOT EXISTS learning_sessions (
		id           BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		topic        VARCHAR(255) NOT NULL,
		subtopic     VARCHAR(255),
		session_data JSONB,
		created_at   TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_user ON learning_sessions(user_id, created_at DESC);

	CREATE TABLE IF NOT EXISTS saved_explanations (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		topic       VARCHAR(255) NOT NULL,
		explanation TEXT NOT NULL,
		tags        TEXT,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_explanations_user ON saved_explanations(user_id, created_at DESC);

	CREATE TABLE IF NOT EXISTS quiz_results (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		topic          VARCHAR(255) NOT NULL,
		question       TEXT NOT NULL,
		user_answer    TEXT,
		correct_answer TEXT,
		is_correct     BOOLEAN NOT NULL DEFAULT FALSE,
		created_at     TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_quiz_results_topic ON quiz_results(user_id, topic);

	CREATE TABLE IF NOT EXISTS learning_materials (
		id           BIGSERIAL PRIMARY KEY,
		topic        VARCHAR(255) NOT NULL,
		subtopic     VARCHAR(255),
		difficulty   VARCHAR(20) NOT NULL DEFAULT 'beginner',
		content_type VARCHAR(50) NOT NULL DEFAULT 'article',
		content      TEXT NOT NULL,
		tags         TEXT,
		created_at   TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_materials_topic ON learning_materials(topic);
	CREATE INDEX IF NOT EXISTS idx_materials_difficulty ON learning_materials(difficulty);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}
