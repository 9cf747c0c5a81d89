package sort_suite

import (
	"database/sql"
	"fmt"
	"sort"
	"time"
)

// AlgorithmStats aggregates every recorded measurement of one algorithm.
type AlgorithmStats struct {
	Algorithm string
	Runs      uint
	Mean      time.Duration
	Best      time.Duration
	Worst     time.Duration
}

// QueryStats returns per-algorithm aggregates in PresentationOrder. Names the
// suite no longer knows about sort after the known ones.
func (l *Ledger) QueryStats() ([]AlgorithmStats, error) {
	db, err := l.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve raw DB: %w", err)
	}

	stats, err := queryStats(db)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return presentationRank(stats[i].Algorithm) < presentationRank(stats[j].Algorithm)
	})
	return stats, nil
}

func queryStats(db *sql.DB) ([]AlgorithmStats, error) {
	rows, err := db.Query(`SELECT algorithm, COUNT(*), COALESCE(AVG(elapsed_ns), 0),
		COALESCE(MIN(elapsed_ns), 0), COALESCE(MAX(elapsed_ns), 0)
		FROM measurements
		GROUP BY algorithm
		ORDER BY algorithm`)
	if err != nil {
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer rows.Close()

	var stats []AlgorithmStats
	for rows.Next() {
		var s AlgorithmStats
		var count int64
		var mean float64
		var best, worst int64
		if err := rows.Scan(&s.Algorithm, &count, &mean, &best, &worst); err != nil {
			return nil, err
		}
		s.Runs = uint(count)
		s.Mean = time.Duration(mean)
		s.Best = time.Duration(best)
		s.Worst = time.Duration(worst)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func presentationRank(name string) int {
	for i, a := range PresentationOrder {
		if a.String() == name {
			return i
		}
	}
	return len(PresentationOrder)
}
