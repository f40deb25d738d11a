package parser

import "strings"

// Fields extracts the quoted field values from one export line, in
// source order, with the quotes stripped. Anything outside a quote pair
// (separators, stray whitespace) is discarded. Doubled or escaped
// quotes are not part of the dialect; a quote inside a field truncates
// it at that point.
func (p *Parser) Fields(line string) []string {
	var fields []string
	for {
		start := strings.IndexByte(line, '"')
		if start < 0 {
			break
		}
		rest := line[start+1:]
		end := strings.IndexByte(rest, '"')
		if end < 0 {
			// Unterminated trailing field, drop it.
			if strings.TrimSpace(rest) != "" {
				p.logger.Debug("dropping unterminated quoted field", "rest", rest)
			}
			break
		}
		fields = append(fields, rest[:end])
		line = rest[end+1:]
	}
	return fields
}
