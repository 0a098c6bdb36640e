package store

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return db
}

func testSession(game string) *Session {
	return &Session{
		Game:           game,
		ServerSeedHash: "abc123",
		ClientSeed:     "client",
		BankrollStart:  decimal.NewFromInt(500),
		BankrollEnd:    decimal.NewFromInt(500),
		EngineVersion:  "1.0.0",
	}
}

func TestCreateAndGetSession(t *testing.T) {
	db := testDB(t)

	s := testSession("blackjack")
	if err := db.CreateSession(s); err != nil {
		t.Fatal(err)
	}
	if s.ID == "" {
		t.Fatal("CreateSession should assign an id")
	}

	got, err := db.GetSession(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Game != "blackjack" || got.ServerSeedHash != "abc123" {
		t.Errorf("got session %+v", got)
	}
	if !got.BankrollStart.Equal(decimal.NewFromInt(500)) {
		t.Errorf("bankroll start = %s, want 500", got.BankrollStart)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestGetSessionNotFound(t *testing.T) {
	db := testDB(t)
	if _, err := db.GetSession("nope"); err == nil {
		t.Error("missing session should return an error")
	}
}

func TestUpdateSession(t *testing.T) {
	db := testDB(t)
	s := testSession("roulette")
	if err := db.CreateSession(s); err != nil {
		t.Fatal(err)
	}

	s.Rounds = 12
	s.BankrollEnd = decimal.NewFromInt(73)
	if err := db.UpdateSession(s); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetSession(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Rounds != 12 {
		t.Errorf("rounds = %d, want 12", got.Rounds)
	}
	if !got.BankrollEnd.Equal(decimal.NewFromInt(73)) {
		t.Errorf("bankroll end = %s, want 73", got.BankrollEnd)
	}
}

func TestListSessionsFilterAndPaging(t *testing.T) {
	db := testDB(t)
	for i := 0; i < 3; i++ {
		if err := db.CreateSession(testSession("blackjack")); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.CreateSession(testSession("roulette")); err != nil {
		t.Fatal(err)
	}

	all, err := db.ListSessions(SessionsQuery{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatal(err)
	}
	if all.TotalCount != 4 {
		t.Errorf("total = %d, want 4", all.TotalCount)
	}

	bj, err := db.ListSessions(SessionsQuery{Game: "blackjack", Page: 1, PerPage: 2})
	if err != nil {
		t.Fatal(err)
	}
	if bj.TotalCount != 3 {
		t.Errorf("blackjack total = %d, want 3", bj.TotalCount)
	}
	if len(bj.Sessions) != 2 {
		t.Errorf("page holds %d sessions, want 2", len(bj.Sessions))
	}
	if bj.TotalPages != 2 {
		t.Errorf("total pages = %d, want 2", bj.TotalPages)
	}
}

func TestSaveAndGetRounds(t *testing.T) {
	db := testDB(t)
	s := testSession("roulette")
	if err := db.CreateSession(s); err != nil {
		t.Fatal(err)
	}

	rounds := []Round{
		{Nonce: 0, Bet: decimal.NewFromInt(10), Payout: decimal.NewFromInt(20), Metric: 32, Result: "red", Details: `{"pocket":32}`},
		{Nonce: 1, Bet: decimal.NewFromInt(10), Payout: decimal.Zero, Metric: 0, Result: "green", Details: `{"pocket":0}`},
	}
	if err := db.SaveRounds(s.ID, rounds); err != nil {
		t.Fatal(err)
	}

	page, err := db.GetSessionRounds(s.ID, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalCount != 2 {
		t.Fatalf("total = %d, want 2", page.TotalCount)
	}
	first := page.Rounds[0]
	if first.Nonce != 0 || first.Result != "red" {
		t.Errorf("first round = %+v", first)
	}
	if !first.Payout.Equal(decimal.NewFromInt(20)) {
		t.Errorf("payout = %s, want 20", first.Payout)
	}
}

func TestSaveRoundsEmpty(t *testing.T) {
	db := testDB(t)
	if err := db.SaveRounds("whatever", nil); err != nil {
		t.Errorf("saving no rounds should be a no-op, got %v", err)
	}
}
