package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// SQLiteDB implements the DB interface on a local SQLite file.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) a SQLite database at path.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrency between the TUI and the API server.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates the schema. Money columns are TEXT holding decimal
// strings so payouts like 7.50 survive round-tripping exactly.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			game TEXT NOT NULL,
			server_seed_hash TEXT NOT NULL,
			client_seed TEXT NOT NULL,
			bankroll_start TEXT NOT NULL,
			bankroll_end TEXT NOT NULL,
			rounds INTEGER NOT NULL DEFAULT 0,
			engine_version TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			nonce INTEGER NOT NULL,
			bet TEXT NOT NULL,
			payout TEXT NOT NULL,
			metric REAL NOT NULL,
			result TEXT NOT NULL,
			details TEXT,
			FOREIGN KEY (session_id) REFERENCES sessions(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_session_id ON rounds(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_session_nonce ON rounds(session_id, nonce)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_game ON sessions(game, created_at DESC)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// CreateSession inserts a new session, assigning an ID when missing.
func (s *SQLiteDB) CreateSession(session *Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO sessions (
		id, game, server_seed_hash, client_seed, bankroll_start, bankroll_end,
		rounds, engine_version, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		session.ID, session.Game, session.ServerSeedHash, session.ClientSeed,
		session.BankrollStart.String(), session.BankrollEnd.String(),
		session.Rounds, session.EngineVersion, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// UpdateSession persists the closing bankroll and round count.
func (s *SQLiteDB) UpdateSession(session *Session) error {
	query := `UPDATE sessions SET bankroll_end = ?, rounds = ? WHERE id = ?`
	_, err := s.db.Exec(query, session.BankrollEnd.String(), session.Rounds, session.ID)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// GetSession fetches a session by ID.
func (s *SQLiteDB) GetSession(id string) (*Session, error) {
	query := `SELECT id, game, server_seed_hash, client_seed, bankroll_start,
		bankroll_end, rounds, engine_version, created_at
		FROM sessions WHERE id = ?`

	session, err := scanSession(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions returns a page of sessions, newest first, optionally
// filtered by game.
func (s *SQLiteDB) ListSessions(query SessionsQuery) (*SessionsList, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PerPage < 1 || query.PerPage > 100 {
		query.PerPage = 25
	}

	where := ""
	args := []any{}
	if query.Game != "" {
		where = " WHERE game = ?"
		args = append(args, query.Game)
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sessions"+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	listQuery := `SELECT id, game, server_seed_hash, client_seed, bankroll_start,
		bankroll_end, rounds, engine_version, created_at
		FROM sessions` + where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, query.PerPage, (query.Page-1)*query.PerPage)

	rows, err := s.db.Query(listQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &SessionsList{
		Sessions:   sessions,
		TotalCount: total,
		Page:       query.Page,
		PerPage:    query.PerPage,
		TotalPages: totalPages(total, query.PerPage),
	}, nil
}

// SaveRounds appends rounds to a session in one transaction.
func (s *SQLiteDB) SaveRounds(sessionID string, rounds []Round) error {
	if len(rounds) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO rounds
		(session_id, nonce, bet, payout, metric, result, details)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rounds {
		_, err := stmt.Exec(sessionID, r.Nonce, r.Bet.String(), r.Payout.String(),
			r.Metric, r.Result, r.Details)
		if err != nil {
			return fmt.Errorf("failed to insert round: %w", err)
		}
	}
	return tx.Commit()
}

// GetSessionRounds returns a page of a session's rounds in nonce order.
func (s *SQLiteDB) GetSessionRounds(sessionID string, page, perPage int) (*RoundsPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 500 {
		perPage = 100
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM rounds WHERE session_id = ?", sessionID).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count rounds: %w", err)
	}

	rows, err := s.db.Query(`SELECT id, session_id, nonce, bet, payout, metric, result, details
		FROM rounds WHERE session_id = ? ORDER BY nonce ASC, id ASC LIMIT ? OFFSET ?`,
		sessionID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	rounds := []Round{}
	for rows.Next() {
		var r Round
		var bet, payout string
		var details sql.NullString
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Nonce, &bet, &payout, &r.Metric, &r.Result, &details); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		if r.Bet, err = decimal.NewFromString(bet); err != nil {
			return nil, fmt.Errorf("bad bet value %q: %w", bet, err)
		}
		if r.Payout, err = decimal.NewFromString(payout); err != nil {
			return nil, fmt.Errorf("bad payout value %q: %w", payout, err)
		}
		r.Details = details.String
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &RoundsPage{
		Rounds:     rounds,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages(total, perPage),
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var sess Session
	var start, end string
	if err := row.Scan(&sess.ID, &sess.Game, &sess.ServerSeedHash, &sess.ClientSeed,
		&start, &end, &sess.Rounds, &sess.EngineVersion, &sess.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	if sess.BankrollStart, err = decimal.NewFromString(start); err != nil {
		return nil, fmt.Errorf("bad bankroll_start %q: %w", start, err)
	}
	if sess.BankrollEnd, err = decimal.NewFromString(end); err != nil {
		return nil, fmt.Errorf("bad bankroll_end %q: %w", end, err)
	}
	return &sess, nil
}

func totalPages(total, perPage int) int {
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return pages
}
