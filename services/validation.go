package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/repository"
)

// startsUpper reports whether the first character of s is an uppercase letter.
func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

func charCount(s string) int {
	return utf8.RuneCountInString(s)
}

// validSourceCode accepts 8-character call numbers and 7-character ones in the "Y " series.
func validSourceCode(code string) bool {
	n := charCount(code)
	return n == 8 || (n == 7 && strings.HasPrefix(code, "Y "))
}

func dateProblems(date string) []string {
	if date == "" {
		return []string{MsgReportDateRequired}
	}
	var problems []string
	if charCount(date) != 10 {
		problems = append(problems, MsgReportDateFormat)
	}
	if !strings.HasPrefix(date, "177") && !strings.HasPrefix(date, "178") {
		problems = append(problems, MsgReportDateRange)
	}
	return problems
}

// RefID is an optional record id as submitted by a client. It decodes from a
// JSON number, a string or null; empty means no reference.
type RefID string

func (r *RefID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RefID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("reference id must be a number or a string: %w", err)
	}
	*r = RefID(n.String())
	return nil
}

func (r RefID) trimmed() RefID {
	return RefID(strings.TrimSpace(string(r)))
}

// reference is one optional foreign key.
type reference struct {
	label string
	raw   RefID
	model interface{}
}

// resolveRefs parses each reference and checks that the row exists. Empty
// text means no reference. Problems are returned in argument order.
func resolveRefs(tx *gorm.DB, refs ...reference) ([]*uint, []string, error) {
	ids := make([]*uint, len(refs))
	var problems []string
	for i, ref := range refs {
		if ref.raw == "" {
			continue
		}
		n, err := strconv.ParseUint(string(ref.raw), 10, 64)
		if err != nil || n == 0 {
			problems = append(problems, fmt.Sprintf("The %s reference %q is not a valid id.", ref.label, ref.raw))
			continue
		}
		id := uint(n)
		ok, err := repository.Exists(tx, ref.model, id)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			problems = append(problems, fmt.Sprintf("No %s with id %d exists.", ref.label, id))
			continue
		}
		ids[i] = &id
	}
	return ids, problems, nil
}

func sameRef(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
