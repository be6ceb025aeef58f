package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	tableName = "search_runs"

	// fixed width so that created_at sorts correctly as text
	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Run is one finished search as stored in the history table.
type Run struct {
	ID            string
	Algorithm     string
	Rows          int
	Cols          int
	Found         bool
	PathLength    int
	ExpandedCells int
	Duration      time.Duration
	CreatedAt     time.Time
}

// AlgorithmStats aggregates the stored runs of one algorithm.
type AlgorithmStats struct {
	Algorithm        string
	Runs             int
	Found            int
	AvgPathLength    float64
	AvgExpandedCells float64
}

// RunHistoryService records search outcomes in SQLite. It only ever stores run
// statistics, never grid layouts.
type RunHistoryService struct {
	db *sql.DB
}

func NewRunHistoryService(dbPath string) (*RunHistoryService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open run history %s: %w", dbPath, err)
	}
	// sqlite serialises writers anyway; one connection keeps SSH sessions from
	// tripping over "database is locked".
	db.SetMaxOpenConns(1)

	service := &RunHistoryService{db: db}
	if err := service.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	return service, nil
}

func (serviceImpl *RunHistoryService) Close() error {
	return serviceImpl.db.Close()
}

// createTable creates the search_runs table if it does not exist.
func (serviceImpl *RunHistoryService) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id TEXT PRIMARY KEY,
		algorithm TEXT NOT NULL,
		grid_rows INTEGER NOT NULL,
		grid_cols INTEGER NOT NULL,
		found INTEGER NOT NULL,
		path_length INTEGER NOT NULL,
		expanded_cells INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);`

	_, err := serviceImpl.db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("Run history table ensured.")
	return nil
}

// SaveRun stores run, filling in the ID and timestamp when they are empty, and
// returns the stored record.
func (serviceImpl *RunHistoryService) SaveRun(run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	const insertSQL = `
	INSERT INTO ` + tableName + ` (id, algorithm, grid_rows, grid_cols, found, path_length, expanded_cells, duration_ms, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	_, err := serviceImpl.db.Exec(insertSQL,
		run.ID,
		run.Algorithm,
		run.Rows,
		run.Cols,
		run.Found,
		run.PathLength,
		run.ExpandedCells,
		run.Duration.Milliseconds(),
		run.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return run, fmt.Errorf("failed to insert run for %s: %w", run.Algorithm, err)
	}

	return run, nil
}

// GetRecentRuns retrieves a page of runs, newest first.
func (serviceImpl *RunHistoryService) GetRecentRuns(limit, offset int) ([]Run, error) {
	const selectSQL = `
	SELECT id, algorithm, grid_rows, grid_cols, found, path_length, expanded_cells, duration_ms, created_at
	FROM ` + tableName + `
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?;`

	rows, err := serviceImpl.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run

	for rows.Next() {
		var run Run
		var durationMs int64
		var createdAt string
		err := rows.Scan(&run.ID, &run.Algorithm, &run.Rows, &run.Cols, &run.Found,
			&run.PathLength, &run.ExpandedCells, &durationMs, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		run.Duration = time.Duration(durationMs) * time.Millisecond
		parsed, err := time.Parse(timestampLayout, createdAt)
		if err == nil {
			run.CreatedAt = parsed
		} else {
			log.Warn("Run timestamp could not be parsed", "id", run.ID, "raw", createdAt, "error", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}

	return runs, nil
}

func (serviceImpl *RunHistoryService) GetTotalRunCount() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + tableName + `;`
	var count int
	err := serviceImpl.db.QueryRow(countSQL).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get total run count: %w", err)
	}
	return count, nil
}

// GetAlgorithmStats returns per-algorithm aggregates ordered by algorithm name.
// Path length is averaged over successful runs only.
func (serviceImpl *RunHistoryService) GetAlgorithmStats() ([]AlgorithmStats, error) {
	const statsSQL = `
	SELECT algorithm,
		COUNT(*),
		SUM(found),
		COALESCE(AVG(CASE WHEN found = 1 THEN path_length END), 0),
		AVG(expanded_cells)
	FROM ` + tableName + `
	GROUP BY algorithm
	ORDER BY algorithm;`

	rows, err := serviceImpl.db.Query(statsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query algorithm stats: %w", err)
	}
	defer rows.Close()

	var stats []AlgorithmStats
	for rows.Next() {
		var entry AlgorithmStats
		if err := rows.Scan(&entry.Algorithm, &entry.Runs, &entry.Found, &entry.AvgPathLength, &entry.AvgExpandedCells); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats = append(stats, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating stats rows: %w", err)
	}

	return stats, nil
}
