package repository

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
)

// Column types produced by inference. Existing columns keep whatever type
// information_schema reports, uppercased.
const (
	ColumnText    = "TEXT"
	ColumnJSONB   = "JSONB"
	ColumnBoolean = "BOOLEAN"
	ColumnInteger = "INTEGER"
	ColumnDouble  = "DOUBLE PRECISION"
)

var columnNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidColumnName reports whether name is safe to splice into DDL.
func ValidColumnName(name string) bool {
	return columnNamePattern.MatchString(name)
}

// HotelColumnsRepository provisions hotels columns on demand while seeding.
// The column set is cached after the first lookup.
type HotelColumnsRepository struct {
	db DBTX

	mu      sync.Mutex
	columns map[string]string
}

func NewHotelColumnsRepository(db DBTX) *HotelColumnsRepository {
	return &HotelColumnsRepository{db: db}
}

// Columns returns column name -> uppercased data type.
func (r *HotelColumnsRepository) Columns(ctx context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(r.columns))
	for k, v := range r.columns {
		out[k] = v
	}
	return out, nil
}

func (r *HotelColumnsRepository) loadLocked(ctx context.Context) error {
	if r.columns != nil {
		return nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = 'hotels'`)
	if err != nil {
		return fmt.Errorf("loading hotel columns: %w", err)
	}

	type column struct {
		Name string `db:"column_name"`
		Type string `db:"data_type"`
	}
	cols, err := pgx.CollectRows(rows, pgx.RowToStructByName[column])
	if err != nil {
		return fmt.Errorf("loading hotel columns: %w", err)
	}

	r.columns = make(map[string]string, len(cols))
	for _, c := range cols {
		r.columns[c.Name] = strings.ToUpper(c.Type)
	}
	return nil
}

// EnsureColumn returns the type of column name, adding it with a type
// inferred from sample when it does not exist yet.
func (r *HotelColumnsRepository) EnsureColumn(ctx context.Context, name string, sample any) (string, error) {
	if !ValidColumnName(name) {
		return "", fmt.Errorf("invalid column name %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return "", err
	}
	if t, ok := r.columns[name]; ok {
		return t, nil
	}

	colType := InferColumnType(sample)
	if _, err := r.db.Exec(ctx, fmt.Sprintf(`ALTER TABLE hotels ADD COLUMN IF NOT EXISTS %s %s`, name, colType)); err != nil {
		return "", fmt.Errorf("adding column %s: %w", name, err)
	}

	r.columns[name] = colType
	return colType, nil
}

// Insert writes one hotel document, casting each value to its column type.
// Rows whose id already exists are skipped and reported as not inserted.
// Every key must already exist as a column, see EnsureColumn.
func (r *HotelColumnsRepository) Insert(ctx context.Context, doc map[string]any) (bool, error) {
	cols, err := r.Columns(ctx)
	if err != nil {
		return false, err
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	names := make([]string, 0, len(keys))
	params := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))

	for i, k := range keys {
		colType, ok := cols[k]
		if !ok || !ValidColumnName(k) {
			return false, fmt.Errorf("unknown hotel column %q", k)
		}

		v, err := NormalizeColumnValue(doc[k], colType)
		if err != nil {
			return false, fmt.Errorf("column %s: %w", k, err)
		}

		names = append(names, k)
		params = append(params, fmt.Sprintf("$%d%s", i+1, castFor(colType)))
		args = append(args, v)
	}

	stmt := fmt.Sprintf(`INSERT INTO hotels (%s) VALUES (%s) ON CONFLICT (id) DO NOTHING`,
		strings.Join(names, ", "), strings.Join(params, ", "))

	tag, err := r.db.Exec(ctx, stmt, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// InferColumnType picks a column type for a decoded JSON value.
func InferColumnType(v any) string {
	switch t := v.(type) {
	case nil:
		return ColumnText
	case map[string]any, []any:
		return ColumnJSONB
	case bool:
		return ColumnBoolean
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) && math.Abs(t) <= math.MaxInt32 {
			return ColumnInteger
		}
		return ColumnDouble
	case int, int32, int64:
		return ColumnInteger
	default:
		return ColumnText
	}
}

func castFor(colType string) string {
	switch colType {
	case "JSONB", "JSON":
		return "::jsonb"
	case "BOOLEAN":
		return "::boolean"
	case "INTEGER", "BIGINT", "SMALLINT":
		return "::integer"
	case "DOUBLE PRECISION", "REAL", "NUMERIC":
		return "::double precision"
	case "UUID":
		return "::uuid"
	default:
		return ""
	}
}

// NormalizeColumnValue converts a decoded JSON value into the parameter sent
// for colType. JSON columns receive encoded text; nil stays nil.
func NormalizeColumnValue(v any, colType string) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch colType {
	case "JSONB", "JSON":
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(raw), nil

	case "BOOLEAN":
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return fmt.Sprint(v), nil

	case "INTEGER", "BIGINT", "SMALLINT":
		if f, ok := v.(float64); ok {
			if f != math.Trunc(f) {
				return nil, fmt.Errorf("%v is not an integer", f)
			}
			return int64(f), nil
		}
		return fmt.Sprint(v), nil

	case "DOUBLE PRECISION", "REAL", "NUMERIC":
		if f, ok := v.(float64); ok {
			return f, nil
		}
		return fmt.Sprint(v), nil

	default:
		switch t := v.(type) {
		case string:
			return t, nil
		case map[string]any, []any:
			raw, err := json.Marshal(t)
			if err != nil {
				return nil, err
			}
			return string(raw), nil
		default:
			return fmt.Sprint(t), nil
		}
	}
}
