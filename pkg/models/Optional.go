package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// String returns a pointer to s. Handy for building optional fields.
func String(s string) *string {
	return &s
}

/*
StringOr returns the value of an optional field, or fallback when the
field is absent or empty.
*/
func StringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}

	return *s
}

// HasValue reports whether an optional field carries a non-empty value.
func HasValue(s *string) bool {
	return s != nil && *s != ""
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s
	return &v
}

/*
Text is an optional display value that the content store may send either
as a string or as a number (certificate years are a common example).
*/
type Text struct {
	Value string
	Valid bool
}

func NewText(s string) Text {
	return Text{Value: s, Valid: true}
}

func (t *Text) UnmarshalJSON(b []byte) error {
	var (
		err error
		s   string
		n   json.Number
	)

	raw := strings.TrimSpace(string(b))

	if raw == "null" || raw == "" {
		*t = Text{}
		return nil
	}

	if err = json.Unmarshal(b, &s); err == nil {
		*t = NewText(s)
		return nil
	}

	if err = json.Unmarshal(b, &n); err == nil {
		*t = NewText(n.String())
		return nil
	}

	if bv, perr := strconv.ParseBool(raw); perr == nil {
		*t = NewText(strconv.FormatBool(bv))
		return nil
	}

	return fmt.Errorf("error decoding text value %s: %w", raw, err)
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(t.Value)
}

func (t *Text) UnmarshalYAML(unmarshal func(any) error) error {
	var (
		err error
		v   any
	)

	if err = unmarshal(&v); err != nil {
		return err
	}

	if v == nil {
		*t = Text{}
		return nil
	}

	*t = NewText(fmt.Sprint(v))
	return nil
}

func (t Text) Or(fallback string) string {
	if !t.Valid || t.Value == "" {
		return fallback
	}

	return t.Value
}
