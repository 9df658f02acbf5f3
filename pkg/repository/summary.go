package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"morning-brief/pkg/domain"
)

// historyLimit caps stored summaries to the most recent entries
const historyLimit = 50

// SummaryRepository handles summary history database operations
type SummaryRepository struct {
	db *sqlx.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *sqlx.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// summarySQL represents a summary for SQL operations
type summarySQL struct {
	ID            string     `db:"id"`
	Date          string     `db:"date"`
	Content       string     `db:"content"`
	Sources       sourcesSQL `db:"sources"`
	CreatedAt     time.Time  `db:"created_at"`
	PromptTokens  *int       `db:"prompt_tokens"`
	OutputTokens  *int       `db:"output_tokens"`
	TotalTokens   *int       `db:"total_tokens"`
	EstimatedCost float64    `db:"estimated_cost"`
}

// sourcesSQL is a JSON array of summary sources for SQL operations
type sourcesSQL []domain.SummarySource

// Value implements driver.Valuer for database storage
func (s sourcesSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (s *sourcesSQL) Scan(value interface{}) error {
	if value == nil {
		*s = sourcesSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for sources: %T", value)
	}

	return json.Unmarshal(data, s)
}

func toSummarySQL(summary *domain.Summary) *summarySQL {
	row := &summarySQL{
		ID:            summary.ID,
		Date:          summary.Date,
		Content:       summary.Content,
		Sources:       sourcesSQL(summary.Sources),
		CreatedAt:     summary.Timestamp,
		EstimatedCost: summary.EstimatedCost,
	}
	if summary.Usage != nil {
		row.PromptTokens = &summary.Usage.PromptTokens
		row.OutputTokens = &summary.Usage.OutputTokens
		row.TotalTokens = &summary.Usage.TotalTokens
	}
	return row
}

func (r *SummaryRepository) toDomainSummary(row *summarySQL) *domain.Summary {
	summary := &domain.Summary{
		ID:            row.ID,
		Date:          row.Date,
		Content:       row.Content,
		Sources:       []domain.SummarySource(row.Sources),
		Timestamp:     row.CreatedAt,
		EstimatedCost: row.EstimatedCost,
	}
	if row.PromptTokens != nil || row.OutputTokens != nil || row.TotalTokens != nil {
		usage := &domain.TokenUsage{}
		if row.PromptTokens != nil {
			usage.PromptTokens = *row.PromptTokens
		}
		if row.OutputTokens != nil {
			usage.OutputTokens = *row.OutputTokens
		}
		if row.TotalTokens != nil {
			usage.TotalTokens = *row.TotalTokens
		}
		summary.Usage = usage
	}
	return summary
}

// Add inserts a new summary and trims history beyond the cap. The newest
// entries win, ordering follows the creation timestamp.
func (r *SummaryRepository) Add(ctx context.Context, summary *domain.Summary) error {
	row := toSummarySQL(summary)
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO summaries (id, date, content, sources, created_at,
			                       prompt_tokens, output_tokens, total_tokens, estimated_cost)
			VALUES (:id, :date, :content, :sources, :created_at,
			        :prompt_tokens, :output_tokens, :total_tokens, :estimated_cost)
		`
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert summary: %w", err)}
		}

		trim := `
			DELETE FROM summaries WHERE id NOT IN (
				SELECT id FROM summaries ORDER BY created_at DESC, id LIMIT ?
			)
		`
		if _, err := r.db.ExecContext(ctx, trim, historyLimit); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("trim summaries: %w", err)}
		}
		return nil
	})
}

// List returns stored summaries, newest first
func (r *SummaryRepository) List(ctx context.Context) ([]domain.Summary, error) {
	var rows []summarySQL
	query := "SELECT * FROM summaries ORDER BY created_at DESC, id"
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}

	summaries := make([]domain.Summary, len(rows))
	for i := range rows {
		summaries[i] = *r.toDomainSummary(&rows[i])
	}
	return summaries, nil
}

// Get returns a single summary by id, nil when not found
func (r *SummaryRepository) Get(ctx context.Context, id string) (*domain.Summary, error) {
	var row summarySQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM summaries WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	return r.toDomainSummary(&row), nil
}

// Latest returns the most recent summary, nil when history is empty
func (r *SummaryRepository) Latest(ctx context.Context) (*domain.Summary, error) {
	var row summarySQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM summaries ORDER BY created_at DESC, id LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest summary: %w", err)
	}
	return r.toDomainSummary(&row), nil
}

// DeleteAll clears the whole history
func (r *SummaryRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM summaries"); err != nil {
		return fmt.Errorf("delete summaries: %w", err)
	}
	return nil
}
