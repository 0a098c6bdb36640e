package strategy

// Statistics tracks session-level betting results for a script run.
// Script-facing numbers are floats because they cross into JavaScript.
type Statistics struct {
	Bets    int     `json:"bets"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Pushes  int     `json:"pushes"`
	Wagered float64 `json:"wagered"`
	Profit  float64 `json:"profit"`

	Balance  float64 `json:"balance"`
	StartBal float64 `json:"startBal"`

	// Positive = win streak, negative = lose streak.
	CurrentStreak int `json:"currentStreak"`
	WinStreak     int `json:"winStreak"`
	LoseStreak    int `json:"loseStreak"`

	HighestBet    float64 `json:"highestBet"`
	HighestProfit float64 `json:"highestProfit"`
	LowestProfit  float64 `json:"lowestProfit"`
	PreviousBet   float64 `json:"previousBet"`
}

// NewStatistics creates statistics with a starting balance.
func NewStatistics(startBalance float64) *Statistics {
	return &Statistics{
		Balance:  startBalance,
		StartBal: startBalance,
	}
}

// Record applies one settled bet. payout is the total credited back, stake
// included: a round counts as a win when it turned a profit. A push (payout
// equal to the stake, a blackjack tie for instance) counts as neither and
// leaves the streak untouched.
func (s *Statistics) Record(bet, payout float64) {
	s.Bets++
	s.Wagered += bet
	s.Balance += payout - bet
	s.Profit = s.Balance - s.StartBal
	s.PreviousBet = bet

	if bet > s.HighestBet {
		s.HighestBet = bet
	}

	switch {
	case payout > bet:
		s.Wins++
		if s.CurrentStreak < 0 {
			s.CurrentStreak = 0
		}
		s.CurrentStreak++
		if s.CurrentStreak > s.WinStreak {
			s.WinStreak = s.CurrentStreak
		}
	case payout < bet:
		s.Losses++
		if s.CurrentStreak > 0 {
			s.CurrentStreak = 0
		}
		s.CurrentStreak--
		if -s.CurrentStreak > s.LoseStreak {
			s.LoseStreak = -s.CurrentStreak
		}
	default:
		s.Pushes++
	}

	if s.Profit > s.HighestProfit {
		s.HighestProfit = s.Profit
	}
	if s.Profit < s.LowestProfit {
		s.LowestProfit = s.Profit
	}
}
