package storage

import (
	"fmt"
	"time"
)

// SessionRecord is one finished play attempt.
type SessionRecord struct {
	ID        string
	Level     int // 0-based campaign index
	LevelName string
	Outcome   string // "won", "lost" or "abandoned"
	Stars     int
	Coins     int // Coins left at stake when the attempt ended
	Reward    int // Coins credited to the wallet
	Duration  float64
	CreatedAt time.Time
}

// LevelBest aggregates the results of one level.
type LevelBest struct {
	Level     int
	Plays     int
	Wins      int
	BestStars int
}

// SaveSession records a finished attempt. Saving the same id twice is a
// no-op.
func (s *Store) SaveSession(rec SessionRecord) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO sessions
		 (id, level, level_name, outcome, stars, coins, reward, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Level, rec.LevelName, rec.Outcome, rec.Stars, rec.Coins, rec.Reward, rec.Duration,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// RecentSessions returns the most recent attempts, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level, level_name, outcome, stars, coins, reward, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Level, &r.LevelName, &r.Outcome, &r.Stars,
			&r.Coins, &r.Reward, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// LevelBests returns per-level aggregates keyed by level index.
func (s *Store) LevelBests() (map[int]LevelBest, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(CASE WHEN outcome = 'won' THEN stars ELSE 0 END), 0)
		 FROM sessions
		 GROUP BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	bests := make(map[int]LevelBest)
	for rows.Next() {
		var b LevelBest
		if err := rows.Scan(&b.Level, &b.Plays, &b.Wins, &b.BestStars); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		bests[b.Level] = b
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return bests, nil
}
