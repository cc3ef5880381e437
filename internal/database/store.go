// Package database provides SQLite-backed persistence for page
// snapshots and analysis results, so past analyses can be compared
// without re-crawling.
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/gso-insight/gsoscan/internal/model"
)

// FileName is the database file created inside the data directory.
const FileName = "gsoscan.db"

// Store provides SQLite-based storage for snapshots and analyses.
//
// Design decision: per-metric scores get their own columns while the
// full result is also kept as JSON. Column scores make history and
// comparison queries cheap; the JSON blob preserves reasoning, insights,
// and benchmarks without thirty extra columns.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the store at dbDir/gsoscan.db.
// With CreateIfNotExists unset, a missing database is an error instead.
func Open(dbDir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection strings: mode=rw prevents creating
	// new files, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	schema := `
	-- Page snapshots store the structured extraction of each crawl
	CREATE TABLE IF NOT EXISTS page_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		domain TEXT NOT NULL,
		url TEXT NOT NULL,
		title TEXT,
		description TEXT,
		status_code INTEGER,
		word_count INTEGER,
		heading_count INTEGER,
		paragraph_count INTEGER,
		link_count INTEGER,
		crawler_used TEXT,
		crawl_duration_ms INTEGER,
		snapshot_json TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_domain ON page_snapshots(domain);

	-- Analysis results keep per-metric scores in columns for cheap
	-- comparison queries plus the complete result as JSON
	CREATE TABLE IF NOT EXISTS analysis_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		domain TEXT NOT NULL,
		overall_score INTEGER NOT NULL,
		confidence_level INTEGER NOT NULL,
		industry TEXT,
		crawler_used TEXT,
		word_count INTEGER,
		title TEXT,
		ai_recommendation_rate INTEGER,
		competitive_ranking INTEGER,
		content_relevance INTEGER,
		brand_mention_quality INTEGER,
		search_compatibility INTEGER,
		website_authority INTEGER,
		consistency_score INTEGER,
		topic_coverage INTEGER,
		trust_signals INTEGER,
		expertise_rating INTEGER,
		result_json TEXT NOT NULL,
		analysis_date TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_results_domain ON analysis_results(domain);
	CREATE INDEX IF NOT EXISTS idx_results_created ON analysis_results(created_at);
	`
	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// SaveAnalysis stores one completed analysis. The snapshot is optional;
// fallback analyses have none.
func (s *Store) SaveAnalysis(ctx context.Context, snap *model.PageSnapshot, result *model.AnalysisResult) error {
	if result == nil {
		return fmt.Errorf("database: nil analysis result")
	}

	if snap != nil {
		if err := s.saveSnapshot(ctx, snap); err != nil {
			return err
		}
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize analysis result: %w", err)
	}

	query := `
	INSERT INTO analysis_results (
		domain, overall_score, confidence_level, industry, crawler_used,
		word_count, title,
		ai_recommendation_rate, competitive_ranking, content_relevance,
		brand_mention_quality, search_compatibility, website_authority,
		consistency_score, topic_coverage, trust_signals, expertise_rating,
		result_json, analysis_date
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		result.Domain,
		result.OverallScore,
		result.ConfidenceLevel,
		result.Industry,
		result.CrawlerUsed,
		result.WordCount,
		result.Title,
		result.Metrics[model.MetricAIRecommendationRate].Score,
		result.Metrics[model.MetricCompetitiveRanking].Score,
		result.Metrics[model.MetricContentRelevance].Score,
		result.Metrics[model.MetricBrandMentionQuality].Score,
		result.Metrics[model.MetricSearchCompatibility].Score,
		result.Metrics[model.MetricWebsiteAuthority].Score,
		result.Metrics[model.MetricConsistencyScore].Score,
		result.Metrics[model.MetricTopicCoverage].Score,
		result.Metrics[model.MetricTrustSignals].Score,
		result.Metrics[model.MetricExpertiseRating].Score,
		string(resultJSON),
		result.AnalysisDate.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis result: %w", err)
	}
	return nil
}

func (s *Store) saveSnapshot(ctx context.Context, snap *model.PageSnapshot) error {
	snapshotJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	query := `
	INSERT INTO page_snapshots (
		domain, url, title, description, status_code, word_count,
		heading_count, paragraph_count, link_count, crawler_used,
		crawl_duration_ms, snapshot_json
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		snap.Domain,
		snap.URL,
		snap.Title,
		snap.Description,
		snap.StatusCode,
		snap.WordCount,
		snap.HeadingCount(),
		snap.ParagraphCount,
		snap.LinkCount,
		snap.CrawlerUsed,
		snap.CrawlDuration.Milliseconds(),
		string(snapshotJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// LatestAnalysis returns the most recent stored analysis for a domain,
// or nil when the domain has never been analyzed.
func (s *Store) LatestAnalysis(ctx context.Context, domain string) (*model.AnalysisResult, error) {
	query := `
	SELECT result_json FROM analysis_results
	WHERE domain = ?
	ORDER BY id DESC
	LIMIT 1
	`
	var resultJSON string
	err := s.db.QueryRowContext(ctx, query, domain).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis: %w", err)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse stored analysis: %w", err)
	}
	return &result, nil
}

// History returns up to limit stored analyses for a domain, newest
// first.
func (s *Store) History(ctx context.Context, domain string, limit int) ([]*model.AnalysisResult, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
	SELECT result_json FROM analysis_results
	WHERE domain = ?
	ORDER BY id DESC
	LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, domain, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var results []*model.AnalysisResult
	for rows.Next() {
		var resultJSON string
		if err := rows.Scan(&resultJSON); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		var result model.AnalysisResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to parse stored analysis: %w", err)
		}
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return results, nil
}

// Domains returns every domain with at least one stored analysis,
// alphabetically.
func (s *Store) Domains(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT domain FROM analysis_results ORDER BY domain`)
	if err != nil {
		return nil, fmt.Errorf("failed to query domains: %w", err)
	}
	defer rows.Close()

	var domains []string
	for rows.Next() {
		var domain string
		if err := rows.Scan(&domain); err != nil {
			return nil, fmt.Errorf("failed to scan domain: %w", err)
		}
		domains = append(domains, domain)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate domains: %w", err)
	}
	return domains, nil
}
