package storage

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the question database schema.
//
// Creation instants are stored as Unix nanoseconds (UTC) so that range
// comparisons in retention scans are plain integer comparisons, independent
// of driver timestamp formatting.
const Schema = `
-- Question records table
CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    content TEXT NOT NULL,
    is_resolved INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

-- Index for retention scans and newest-first listing
CREATE INDEX IF NOT EXISTS idx_questions_created_at ON questions(created_at);

-- Schema version table
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);
`

// DropSchema removes the question tables entirely. Used by the defensive
// startup reset variant.
const DropSchema = `
DROP TABLE IF EXISTS questions;
DROP TABLE IF EXISTS schema_version;
`

// InsertSchemaVersion records the schema version after creation.
const InsertSchemaVersion = `INSERT OR IGNORE INTO schema_version (version) VALUES (?)`

// GetSchemaVersion reads the current schema version.
const GetSchemaVersion = `SELECT version FROM schema_version LIMIT 1`
