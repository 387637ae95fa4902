// Package legacy converts the legacy relational export into canonical
// entities. The export is statement-dump text with positionally encoded
// tuples; some tables embed a JSON settings blob as one field, so tuple
// boundaries are found by an explicit character scanner rather than regex.
package legacy

import "strings"

// RawTuple is the ordered string fields of one legacy row. Fields keep their
// source form (quotes and null sentinels intact) and are consumed immediately
// by the mapper, which coerces them.
type RawTuple []string

// Scanner yields tuples from dump text lazily. It is finite and restartable:
// Reset rewinds to the start of the text and clears the malformed count.
//
// Two strategies cover the export's inconsistent row formats:
//
//   - NewTupleScanner walks generic (...) tuples, for flat rows.
//   - NewAnchoredScanner finds a literal marker that closes an embedded JSON
//     blob, captures the blob as field 0 and a fixed count of trailing fields.
type Scanner struct {
	src        string
	anchor     string
	fieldCount int
	pos        int
	malformed  int
}

// NewTupleScanner scans src for generic parenthesized tuples.
func NewTupleScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// NewAnchoredScanner scans src for rows embedding a JSON object. anchor is the
// literal text that terminates the blob (e.g. `}'`); fieldCount is the exact
// number of fields following the anchor before the row closes.
func NewAnchoredScanner(src, anchor string, fieldCount int) *Scanner {
	return &Scanner{src: src, anchor: anchor, fieldCount: fieldCount}
}

// Reset rewinds the scanner for another pass over the same text.
func (s *Scanner) Reset() {
	s.pos = 0
	s.malformed = 0
}

// Malformed reports how many candidate tuples were skipped so far.
func (s *Scanner) Malformed() int { return s.malformed }

// Next returns the next tuple, or ok=false when the text is exhausted.
// Malformed candidates (unbalanced quotes, wrong field count) are skipped
// and counted, never fatal.
func (s *Scanner) Next() (RawTuple, bool) {
	if s.anchor != "" {
		return s.nextAnchored()
	}
	return s.nextTuple()
}

// nextTuple scans for the next (...) tuple. A tuple begins when bracket depth
// goes 0 -> 1 on '(' and ends when it returns to 0; commas split fields only
// outside quotes at depth exactly 1, so commas inside embedded JSON (which
// pushes depth further) or quoted strings never split.
func (s *Scanner) nextTuple() (RawTuple, bool) {
	for s.pos < len(s.src) {
		open := strings.IndexByte(s.src[s.pos:], '(')
		if open < 0 {
			s.pos = len(s.src)
			return nil, false
		}
		start := s.pos + open

		tuple, end, ok := scanBalanced(s.src, start)
		if !ok {
			// Unbalanced quotes or parens: skip past the opener and rescan.
			s.malformed++
			s.pos = start + 1
			continue
		}
		s.pos = end
		return tuple, true
	}
	return nil, false
}

// scanBalanced parses one tuple starting at the '(' at src[start]. It returns
// the fields, the index just past the closing paren, and whether the tuple
// closed cleanly.
func scanBalanced(src string, start int) (RawTuple, int, bool) {
	var (
		fields  []string
		field   strings.Builder
		depth   int
		inQuote bool
		i       = start
	)
	for ; i < len(src); i++ {
		c := src[i]

		if inQuote {
			// Quote state toggles only on an unescaped delimiter. The export
			// escapes quotes by doubling and by backslash; both are handled.
			if c == '\\' && i+1 < len(src) {
				field.WriteByte(c)
				i++
				field.WriteByte(src[i])
				continue
			}
			if c == '\'' {
				if i+1 < len(src) && src[i+1] == '\'' {
					field.WriteByte(c)
					i++
					field.WriteByte(src[i])
					continue
				}
				inQuote = false
			}
			field.WriteByte(c)
			continue
		}

		switch c {
		case '\'':
			inQuote = true
			field.WriteByte(c)
		case '(', '{', '[':
			depth++
			if depth > 1 || c != '(' {
				field.WriteByte(c)
			}
		case ')', '}', ']':
			depth--
			if depth == 0 && c == ')' {
				fields = append(fields, strings.TrimSpace(field.String()))
				return fields, i + 1, true
			}
			if depth < 0 {
				return nil, i + 1, false
			}
			field.WriteByte(c)
		case ',':
			if depth == 1 {
				fields = append(fields, strings.TrimSpace(field.String()))
				field.Reset()
			} else {
				field.WriteByte(c)
			}
		default:
			if depth >= 1 {
				field.WriteByte(c)
			}
		}
	}
	// Ran off the end inside a tuple or a quote.
	return nil, i, false
}

// nextAnchored finds the next anchor occurrence, walks backward over the
// balanced-brace blob the anchor closes, then parses exactly fieldCount
// fields up to the closing paren.
func (s *Scanner) nextAnchored() (RawTuple, bool) {
	for s.pos < len(s.src) {
		at := strings.Index(s.src[s.pos:], s.anchor)
		if at < 0 {
			s.pos = len(s.src)
			return nil, false
		}
		at += s.pos
		after := at + len(s.anchor)

		blob, ok := blobBefore(s.src, at+1) // include the closing '}'
		if !ok {
			s.malformed++
			s.pos = after
			continue
		}

		fields, end, ok := trailingFields(s.src, after, s.fieldCount)
		if !ok {
			s.malformed++
			s.pos = after
			continue
		}

		s.pos = end
		tuple := make(RawTuple, 0, 1+len(fields))
		tuple = append(tuple, blob)
		tuple = append(tuple, fields...)
		return tuple, true
	}
	return nil, false
}

// blobBefore walks backward from the '}' at src[end-1] to the matching '{'
// and returns the blob text. Braces inside double-quoted JSON string values
// do not count toward the balance.
func blobBefore(src string, end int) (string, bool) {
	if end <= 0 || src[end-1] != '}' {
		return "", false
	}
	depth := 0
	inString := false
	for i := end - 1; i >= 0; i-- {
		c := src[i]
		if c == '"' && (i == 0 || src[i-1] != '\\') {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch c {
		case '}':
			depth++
		case '{':
			depth--
			if depth == 0 {
				return src[i:end], true
			}
		}
	}
	return "", false
}

// trailingFields parses exactly want comma-separated fields starting after the
// anchor, terminated by the row's closing paren. Any other shape is malformed.
func trailingFields(src string, from, want int) (RawTuple, int, bool) {
	var (
		fields  []string
		field   strings.Builder
		inQuote bool
		depth   int
	)
	i := from
	// The anchor is followed by the separator before the first trailing field.
	for i < len(src) && (src[i] == ',' || src[i] == ' ') {
		i++
	}
	for ; i < len(src); i++ {
		c := src[i]
		if inQuote {
			if c == '\\' && i+1 < len(src) {
				field.WriteByte(c)
				i++
				field.WriteByte(src[i])
				continue
			}
			if c == '\'' {
				if i+1 < len(src) && src[i+1] == '\'' {
					// Doubled quote: consume both bytes, stay in-quote.
					field.WriteByte(c)
					i++
					field.WriteByte(src[i])
					continue
				}
				inQuote = false
			}
			field.WriteByte(c)
			continue
		}
		switch c {
		case '\'':
			inQuote = true
			field.WriteByte(c)
		case '{', '[', '(':
			depth++
			field.WriteByte(c)
		case '}', ']':
			depth--
			field.WriteByte(c)
		case ',':
			if depth == 0 {
				fields = append(fields, strings.TrimSpace(field.String()))
				field.Reset()
			} else {
				field.WriteByte(c)
			}
		case ')':
			if depth == 0 {
				fields = append(fields, strings.TrimSpace(field.String()))
				if len(fields) != want {
					return nil, i + 1, false
				}
				return fields, i + 1, true
			}
			depth--
			field.WriteByte(c)
		default:
			field.WriteByte(c)
		}
	}
	return nil, i, false
}
