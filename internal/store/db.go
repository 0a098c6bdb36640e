package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// DB is the persistence interface for arcade sessions and their rounds.
type DB interface {
	Close() error
	Migrate() error

	CreateSession(session *Session) error
	UpdateSession(session *Session) error
	GetSession(id string) (*Session, error)
	ListSessions(query SessionsQuery) (*SessionsList, error)

	SaveRounds(sessionID string, rounds []Round) error
	GetSessionRounds(sessionID string, page, perPage int) (*RoundsPage, error)
}

// Session is one sitting at a game: seeds, money in and money out.
// Only the hash of the server seed is stored.
type Session struct {
	ID             string          `json:"id"`
	Game           string          `json:"game"`
	ServerSeedHash string          `json:"server_seed_hash"`
	ClientSeed     string          `json:"client_seed"`
	BankrollStart  decimal.Decimal `json:"bankroll_start"`
	BankrollEnd    decimal.Decimal `json:"bankroll_end"`
	Rounds         int             `json:"rounds"`
	EngineVersion  string          `json:"engine_version"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Round is a single settled round or spin within a session. Details holds
// game-specific JSON (cards dealt, pockets, bets on the felt).
type Round struct {
	ID        int64           `json:"id"`
	SessionID string          `json:"session_id"`
	Nonce     uint64          `json:"nonce"`
	Bet       decimal.Decimal `json:"bet"`
	Payout    decimal.Decimal `json:"payout"`
	Metric    float64         `json:"metric"`
	Result    string          `json:"result"`
	Details   string          `json:"details"`
}

// SessionsQuery filters and paginates session listings.
type SessionsQuery struct {
	Game    string `json:"game,omitempty"`
	Page    int    `json:"page"`
	PerPage int    `json:"perPage"`
}

// SessionsList is a page of sessions.
type SessionsList struct {
	Sessions   []Session `json:"sessions"`
	TotalCount int       `json:"totalCount"`
	Page       int       `json:"page"`
	PerPage    int       `json:"perPage"`
	TotalPages int       `json:"totalPages"`
}

// RoundsPage is a page of rounds for one session.
type RoundsPage struct {
	Rounds     []Round `json:"rounds"`
	TotalCount int     `json:"totalCount"`
	Page       int     `json:"page"`
	PerPage    int     `json:"perPage"`
	TotalPages int     `json:"totalPages"`
}
