package parser

import (
	"fmt"

	"github.com/mvanbeek/rabomut/pkg/schema"
)

// Validate checks a tokenized record against the schema and returns one
// problem per violated position. Validation is advisory: the caller
// reports the problems and transforms the record regardless, so a
// malformed export still produces best-effort output.
func (p *Parser) Validate(tokens []string, s *schema.Schema) []string {
	var problems []string
	for i, f := range s.Fields {
		if i >= len(tokens) {
			problems = append(problems, fmt.Sprintf("field %d (%s): missing", i+1, f.Name))
			continue
		}
		v := tokens[i]
		if f.MaxLen > 0 && len(v) > f.MaxLen {
			problems = append(problems, fmt.Sprintf("field %d (%s): %d characters, at most %d allowed", i+1, f.Name, len(v), f.MaxLen))
		}
		if !f.Matches(v) {
			problems = append(problems, fmt.Sprintf("field %d (%s): %q, want %s", i+1, f.Name, v, f.Want))
		}
	}
	if len(tokens) > len(s.Fields) {
		problems = append(problems, fmt.Sprintf("record has %d fields, %s expects %d", len(tokens), s.Version, len(s.Fields)))
	}
	return problems
}
