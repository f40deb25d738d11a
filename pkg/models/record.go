package models

// Record is one tokenized export line, index-aligned with the active
// schema. It is produced fresh per line and never mutated afterwards.
type Record []string

// Get returns the value at position i, or "" when the position is not
// part of the layout or the record is shorter than the schema expects.
func (r Record) Get(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}
