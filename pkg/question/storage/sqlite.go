package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"askboard-hq/askboard/pkg/question"
)

// SQLiteConfig contains configuration for the SQLite storage backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:        "data/askboard.db",
		BusyTimeout: 5 * time.Second,
	}
}

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewSQLiteStorage creates a new SQLite storage backend. It opens the
// database in WAL mode, initializes the schema, and verifies the schema
// version.
func NewSQLiteStorage(config *SQLiteConfig) (*SQLiteStorage, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}
	if config.Path == "" {
		return nil, question.NewStorageError("sqlite", "open", fmt.Errorf("db path cannot be empty"))
	}
	if config.BusyTimeout == 0 {
		config.BusyTimeout = 5 * time.Second
	}

	logger := slog.Default().With("component", "question.storage.sqlite")

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, question.NewStorageError("sqlite", "open", err)
	}

	// SQLite only supports a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStorage{
		db:     db,
		config: config,
		logger: logger,
		now:    time.Now,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("SQLite storage initialized",
		"path", config.Path,
		"busy_timeout", config.BusyTimeout.String(),
	)

	return s, nil
}

// initialize applies connection pragmas, sets up the database schema, and
// verifies its version. Pragmas are executed explicitly because the modernc
// driver does not accept them as DSN parameters; with a single pooled
// connection they stay in effect for the life of the store.
func (s *SQLiteStorage) initialize() error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return question.NewStorageError("sqlite", "enable_wal", err)
	}

	busyTimeoutMs := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", busyTimeoutMs)); err != nil {
		return question.NewStorageError("sqlite", "set_busy_timeout", err)
	}

	if _, err := s.db.Exec("PRAGMA synchronous=NORMAL;"); err != nil {
		return question.NewStorageError("sqlite", "set_synchronous", err)
	}

	if _, err := s.db.Exec(Schema); err != nil {
		return question.NewStorageError("sqlite", "create_schema", err)
	}

	if _, err := s.db.Exec(InsertSchemaVersion, SchemaVersion); err != nil {
		return question.NewStorageError("sqlite", "insert_schema_version", err)
	}

	var version int
	err := s.db.QueryRow(GetSchemaVersion).Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return question.NewStorageError("sqlite", "get_schema_version", err)
	}
	if version != SchemaVersion {
		return question.NewStorageError("sqlite", "schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}

	return nil
}

// Create persists a new question, assigning its id and creation time.
func (s *SQLiteStorage) Create(ctx context.Context, content string) (*question.Question, error) {
	if content == "" {
		return nil, question.ErrEmptyContent
	}

	createdAt := s.now().UTC()

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (content, is_resolved, created_at) VALUES (?, 0, ?)`,
		content, createdAt.UnixNano(),
	)
	if err != nil {
		return nil, question.NewStorageError("sqlite", "create", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, question.NewStorageError("sqlite", "create", err)
	}

	return &question.Question{
		ID:        id,
		Content:   content,
		CreatedAt: createdAt,
	}, nil
}

// List returns all questions ordered by creation time descending.
func (s *SQLiteStorage) List(ctx context.Context) ([]*question.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, is_resolved, created_at FROM questions ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, question.NewStorageError("sqlite", "list", err)
	}
	defer rows.Close()

	questions := []*question.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, question.NewStorageError("sqlite", "scan", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, question.NewStorageError("sqlite", "list", err)
	}

	return questions, nil
}

// SetResolved updates the resolved flag and returns the updated record.
func (s *SQLiteStorage) SetResolved(ctx context.Context, id int64, resolved bool) (*question.Question, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE questions SET is_resolved = ? WHERE id = ?`,
		boolToInt(resolved), id,
	)
	if err != nil {
		return nil, question.NewStorageError("sqlite", "set_resolved", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, question.NewStorageError("sqlite", "set_resolved", err)
	}
	if affected == 0 {
		return nil, question.ErrNotFound
	}

	return s.get(ctx, id)
}

// get fetches a single question by id.
func (s *SQLiteStorage) get(ctx context.Context, id int64) (*question.Question, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, content, is_resolved, created_at FROM questions WHERE id = ?`, id)

	var q question.Question
	var resolved int
	var createdAtNs int64
	err := row.Scan(&q.ID, &q.Content, &resolved, &createdAtNs)
	if err == sql.ErrNoRows {
		return nil, question.ErrNotFound
	}
	if err != nil {
		return nil, question.NewStorageError("sqlite", "get", err)
	}

	q.IsResolved = resolved != 0
	q.CreatedAt = time.Unix(0, createdAtNs).UTC()
	return &q, nil
}

// DeleteBefore removes every question created strictly before cutoff.
func (s *SQLiteStorage) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM questions WHERE created_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, question.NewStorageError("sqlite", "delete_before", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, question.NewStorageError("sqlite", "delete_before", err)
	}

	return count, nil
}

// DeleteAll removes every question regardless of age.
func (s *SQLiteStorage) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM questions`)
	if err != nil {
		return 0, question.NewStorageError("sqlite", "delete_all", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, question.NewStorageError("sqlite", "delete_all", err)
	}

	return count, nil
}

// Reset drops and recreates the schema. This is the defensive variant of the
// startup wipe: it discards the table along with its auto-increment counter.
func (s *SQLiteStorage) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, DropSchema); err != nil {
		return question.NewStorageError("sqlite", "drop_schema", err)
	}
	if err := s.initialize(); err != nil {
		return err
	}

	s.logger.Info("database schema reset")
	return nil
}

// Count returns the number of stored questions.
func (s *SQLiteStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	if err != nil {
		return 0, question.NewStorageError("sqlite", "count", err)
	}
	return count, nil
}

// Close releases resources held by the storage backend.
func (s *SQLiteStorage) Close() error {
	if err := s.db.Close(); err != nil {
		return question.NewStorageError("sqlite", "close", err)
	}
	s.logger.Info("SQLite storage closed")
	return nil
}

// scanQuestion scans a database row into a Question.
func scanQuestion(rows *sql.Rows) (*question.Question, error) {
	var q question.Question
	var resolved int
	var createdAtNs int64

	if err := rows.Scan(&q.ID, &q.Content, &resolved, &createdAtNs); err != nil {
		return nil, err
	}

	q.IsResolved = resolved != 0
	q.CreatedAt = time.Unix(0, createdAtNs).UTC()
	return &q, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
