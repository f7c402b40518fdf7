package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// TagList is an ordered collection of note tags persisted as a PostgreSQL
// text[] column. It implements [driver.Valuer] and [sql.Scanner] so it can
// travel through database/sql without a driver-specific array type.
type TagList []string

// Value encodes the list as a PostgreSQL array literal, e.g. {"go","db"}.
// A nil or empty list encodes as the empty array so the column never holds
// SQL NULL for notes created through this application.
func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "{}", nil
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, tag := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(escapeArrayElement(tag))
		b.WriteByte('"')
	}
	b.WriteByte('}')

	return b.String(), nil
}

// Scan reconstitutes the list from the textual array representation
// returned by the driver. NULL scans as an empty list.
func (t *TagList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}
}

func (t *TagList) parse(literal string) error {
	literal = strings.TrimSpace(literal)
	if len(literal) < 2 || literal[0] != '{' || literal[len(literal)-1] != '}' {
		return fmt.Errorf("malformed array literal: %q", literal)
	}

	inner := literal[1 : len(literal)-1]
	if inner == "" {
		*t = TagList{}
		return nil
	}

	var (
		tags    TagList
		current strings.Builder
		quoted  bool
		escaped bool
	)

	flush := func() {
		tags = append(tags, current.String())
		current.Reset()
	}

	for _, r := range inner {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	*t = tags
	return nil
}

// escapeArrayElement escapes backslashes and double quotes per the
// PostgreSQL array literal quoting rules.
func escapeArrayElement(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
