package session

// ScoreModel tracks lives, stars and the coins at stake for one attempt.
type ScoreModel struct {
	Lives      int
	Stars      int
	LevelCoins int

	maxLives int
	stake    int
	penalty  int
}

func newScoreModel(lives, stake, penalty int) ScoreModel {
	s := ScoreModel{maxLives: lives, stake: stake, penalty: penalty}
	s.Reset()
	return s
}

// Reset restores the initial lives, stars and stake.
func (s *ScoreModel) Reset() {
	s.Lives = s.maxLives
	s.Stars = s.maxLives
	s.LevelCoins = s.stake
}

// Mistake costs one life and the penalty, both floored at zero.
// Returns the lives left.
func (s *ScoreModel) Mistake() int {
	if s.Lives > 0 {
		s.Lives--
	}
	s.Stars = s.Lives
	s.LevelCoins -= s.penalty
	if s.LevelCoins < 0 {
		s.LevelCoins = 0
	}
	return s.Lives
}
