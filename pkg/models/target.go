package models

import "strings"

// TargetRecord is one line of the fixed import dialect: an optional
// sequence number followed by date, debit, credit, booking code, payee
// and memo. Only the 2017 layout carries the sequence number column.
type TargetRecord struct {
	Number    string
	HasNumber bool
	Date      string
	Debit     string
	Credit    string
	Code      string
	Payee     string
	Memo      string
}

// Render formats the record as a quoted, comma-joined line. An empty
// field renders as a single space inside the quotes so downstream
// tooling still sees a non-empty token.
func (r *TargetRecord) Render() string {
	fields := []string{r.Date, r.Debit, r.Credit, r.Code, r.Payee, r.Memo}
	if r.HasNumber {
		fields = append([]string{r.Number}, fields...)
	}
	quoted := make([]string, len(fields))
	for i, f := range fields {
		if f == "" {
			f = " "
		}
		quoted[i] = `"` + f + `"`
	}
	return strings.Join(quoted, ",")
}
