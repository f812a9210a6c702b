package domain

// Field is one sparse assignment of a partial update. Name is the caller's
// field name; the storage layer translates it to a column.
type Field struct {
	Name  string
	Value any
}
