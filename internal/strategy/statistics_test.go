package strategy

import "testing"

func TestRecordWinLossAndPush(t *testing.T) {
	s := NewStatistics(100)

	s.Record(10, 20) // win
	s.Record(10, 20) // win
	s.Record(10, 10) // push
	s.Record(10, 0)  // loss

	if s.Bets != 4 {
		t.Errorf("Bets = %d, want 4", s.Bets)
	}
	if s.Wins != 2 || s.Losses != 1 || s.Pushes != 1 {
		t.Errorf("wins/losses/pushes = %d/%d/%d, want 2/1/1", s.Wins, s.Losses, s.Pushes)
	}
	if s.Wins+s.Losses+s.Pushes != s.Bets {
		t.Errorf("wins+losses+pushes = %d, want %d", s.Wins+s.Losses+s.Pushes, s.Bets)
	}
	if s.Balance != 110 {
		t.Errorf("Balance = %v, want 110", s.Balance)
	}
}

func TestRecordPushKeepsStreak(t *testing.T) {
	s := NewStatistics(100)

	s.Record(10, 20)
	s.Record(10, 20)
	s.Record(10, 10)

	if s.CurrentStreak != 2 {
		t.Errorf("push broke the streak: CurrentStreak = %d, want 2", s.CurrentStreak)
	}
	if s.Losses != 0 {
		t.Errorf("push counted as a loss: Losses = %d, want 0", s.Losses)
	}

	s.Record(10, 20)
	if s.WinStreak != 3 {
		t.Errorf("WinStreak = %d, want 3", s.WinStreak)
	}
}

func TestRecordLoseStreak(t *testing.T) {
	s := NewStatistics(100)

	s.Record(5, 0)
	s.Record(5, 0)
	s.Record(5, 5)
	s.Record(5, 0)

	if s.CurrentStreak != -3 {
		t.Errorf("CurrentStreak = %d, want -3", s.CurrentStreak)
	}
	if s.LoseStreak != 3 {
		t.Errorf("LoseStreak = %d, want 3", s.LoseStreak)
	}
}
