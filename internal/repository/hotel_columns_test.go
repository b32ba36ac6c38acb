package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferColumnType(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, ColumnText},
		{map[string]any{"a": 1.0}, ColumnJSONB},
		{[]any{1.0}, ColumnJSONB},
		{true, ColumnBoolean},
		{12.0, ColumnInteger},
		{4.7, ColumnDouble},
		{"hello", ColumnText},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InferColumnType(tt.value), "%v", tt.value)
	}
}

func TestNormalizeColumnValue(t *testing.T) {
	v, err := NormalizeColumnValue(map[string]any{"city": "Miami"}, "JSONB")
	require.NoError(t, err)
	assert.Equal(t, `{"city":"Miami"}`, v)

	v, err = NormalizeColumnValue(5.0, "INTEGER")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	_, err = NormalizeColumnValue(5.5, "INTEGER")
	assert.Error(t, err)

	v, err = NormalizeColumnValue(nil, "TEXT")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NormalizeColumnValue(3.0, "TEXT")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestValidColumnName(t *testing.T) {
	assert.True(t, ValidColumnName("review_count"))
	assert.True(t, ValidColumnName("_x1"))
	assert.False(t, ValidColumnName("1abc"))
	assert.False(t, ValidColumnName("name; DROP TABLE hotels"))
	assert.False(t, ValidColumnName(""))
}

func expectColumns(mock pgxmock.PgxPoolIface, cols map[string]string) {
	rows := pgxmock.NewRows([]string{"column_name", "data_type"})
	for name, typ := range cols {
		rows.AddRow(name, typ)
	}
	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).WillReturnRows(rows)
}

func TestHotelColumns_EnsureColumn(t *testing.T) {
	mock := newMock(t)
	repo := NewHotelColumnsRepository(mock)

	expectColumns(mock, map[string]string{"id": "text", "rooms": "jsonb"})
	mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE hotels ADD COLUMN IF NOT EXISTS stars INTEGER")).
		WillReturnResult(pgxmock.NewResult("ALTER", 0))

	typ, err := repo.EnsureColumn(context.Background(), "rooms", []any{})
	require.NoError(t, err)
	assert.Equal(t, "JSONB", typ)

	typ, err = repo.EnsureColumn(context.Background(), "stars", 5.0)
	require.NoError(t, err)
	assert.Equal(t, ColumnInteger, typ)

	// cached, no second ALTER
	typ, err = repo.EnsureColumn(context.Background(), "stars", "five")
	require.NoError(t, err)
	assert.Equal(t, ColumnInteger, typ)

	_, err = repo.EnsureColumn(context.Background(), "bad-name", 1.0)
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelColumns_Insert(t *testing.T) {
	mock := newMock(t)
	repo := NewHotelColumnsRepository(mock)

	expectColumns(mock, map[string]string{"id": "text", "is_featured": "boolean", "location": "jsonb", "rating": "double precision"})
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO hotels (id, is_featured, location, rating) VALUES ($1, $2::boolean, $3::jsonb, $4::double precision) ON CONFLICT (id) DO NOTHING")).
		WithArgs("hotel-1", true, `{"city":"Miami"}`, 4.7).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.Insert(context.Background(), map[string]any{
		"id":          "hotel-1",
		"is_featured": true,
		"location":    map[string]any{"city": "Miami"},
		"rating":      4.7,
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	_, err = repo.Insert(context.Background(), map[string]any{"unknown": 1.0})
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
