package transform

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mvanbeek/rabomut/pkg/models"
	"github.com/mvanbeek/rabomut/pkg/schema"
)

// Transformer maps tokenized records of one export version onto target
// records. It holds no per-record state; Transform is a pure function
// of the record and the schema.
type Transformer struct {
	schema *schema.Schema
	logger *log.Logger
}

func New(s *schema.Schema, logger *log.Logger) *Transformer {
	return &Transformer{
		schema: s,
		logger: logger,
	}
}

// Transform builds the target record for one tokenized line. It never
// fails: positions beyond the record's length read as empty strings, so
// short or misaligned records still yield a well-formed line.
func (t *Transformer) Transform(rec models.Record) *models.TargetRecord {
	s := t.schema

	out := &models.TargetRecord{
		HasNumber: s.SeqNo >= 0,
		Number:    rec.Get(s.SeqNo),
		Date:      rec.Get(s.Date),
		Code:      rec.Get(s.Code),
	}

	amount := decimalComma(rec.Get(s.Amount))
	if s.DebitCredit >= 0 {
		// Older layouts signal the side with a separate letter; the
		// amount lands in exactly one of the two columns.
		switch code := rec.Get(s.DebitCredit); {
		case strings.EqualFold(code, "D"):
			out.Debit = amount
		case strings.EqualFold(code, "C"):
			out.Credit = amount
		default:
			t.logger.Debug("unknown debit/credit code", "code", code)
		}
	} else {
		// The 2017 layout signs the amount itself; it is emitted
		// verbatim into the single amount column in use.
		out.Debit = amount
	}

	name := strings.TrimSpace(rec.Get(s.CounterName))
	out.Payee = name
	if name == "" {
		out.Payee = firstDescription(rec, s)
	}

	out.Memo = t.memo(rec, name)
	return out
}

// decimalComma rewrites every decimal point to the comma convention of
// the target format. This is a literal substitution, not a numeric
// reparse: malformed amounts round-trip visually.
func decimalComma(amount string) string {
	return strings.ReplaceAll(amount, ".", ",")
}

func firstDescription(rec models.Record, s *schema.Schema) string {
	for _, i := range s.Descriptions {
		if v := strings.TrimSpace(rec.Get(i)); v != "" {
			return v
		}
	}
	return ""
}

// memo synthesizes the narrative column: an optional [account] prefix,
// an optional payment reference, the description segments and the
// trailing identifier group. The first description segment duplicates
// the counterparty name in these exports, so it is suppressed whenever
// a name is present.
func (t *Transformer) memo(rec models.Record, name string) string {
	s := t.schema

	var b strings.Builder
	if acct := strings.TrimSpace(rec.Get(s.CounterAccount)); acct != "" {
		b.WriteString("[" + acct + "] ")
	}
	if s.PaymentRef >= 0 {
		if ref := strings.TrimSpace(rec.Get(s.PaymentRef)); ref != "" {
			b.WriteString(ref + " ")
		}
	}

	segs := s.Descriptions
	if name != "" && len(segs) > 0 {
		segs = segs[1:]
	}
	var desc strings.Builder
	for _, i := range segs {
		desc.WriteString(strings.TrimSpace(rec.Get(i)))
	}

	var ids []string
	for _, i := range s.Identifiers {
		if v := strings.TrimSpace(rec.Get(i)); v != "" {
			ids = append(ids, v)
		}
	}

	parts := make([]string, 0, 2)
	if desc.Len() > 0 {
		parts = append(parts, desc.String())
	}
	if len(ids) > 0 {
		parts = append(parts, strings.Join(ids, " "))
	}
	b.WriteString(strings.Join(parts, " "))
	return strings.TrimSpace(b.String())
}
