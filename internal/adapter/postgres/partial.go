package postgres

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// Field is one sparse assignment of a partial update. Name is translated to
// a column through the columns map.
type Field = domain.Field

// SetClause is a parameterized SET fragment and its ordered arguments.
type SetClause struct {
	SQL  string
	Args []any
}

// Next returns the placeholder index for the first parameter appended after
// the clause arguments (a WHERE key, an owner id).
func (c SetClause) Next() int {
	return len(c.Args) + 1
}

// PartialUpdate builds `"col1"=$1, "col2"=$2, ...` for the given fields in
// order. Columns missing from the map fall back to the field name.
// An empty field list fails with domain.ErrInvalidInput.
func PartialUpdate(fields []Field, columns map[string]string) (SetClause, error) {
	if len(fields) == 0 {
		return SetClause{}, fmt.Errorf("%w: no data provided for update", domain.ErrInvalidInput)
	}

	parts := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		col, ok := columns[f.Name]
		if !ok {
			col = f.Name
		}
		parts[i] = fmt.Sprintf("%s=$%d", pgx.Identifier{col}.Sanitize(), i+1)
		args[i] = f.Value
	}

	return SetClause{SQL: strings.Join(parts, ", "), Args: args}, nil
}
