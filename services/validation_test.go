package services

import (
	"encoding/json"
	"strings"
	"testing"
)

// The call number rule groups as len==8 || (len==7 && "Y " prefix). Reading it
// as (len==8 || len==7) && "Y " prefix would reject 8-character codes outside
// the Y series; "AB123456" tells the two apart.
func TestSourceCodeGrouping(t *testing.T) {
	alternative := func(code string) bool {
		n := charCount(code)
		return (n == 8 || n == 7) && strings.HasPrefix(code, "Y ")
	}

	cases := []struct {
		code        string
		want        bool
		alternative bool
	}{
		{"Y 11601A", true, true},
		{"Y 15665", true, true},
		{"AB12345", false, false},
		{"AB123456", true, false},
		{"Y 1566", false, false},
	}
	for _, tc := range cases {
		if got := validSourceCode(tc.code); got != tc.want {
			t.Errorf("validSourceCode(%q) = %v, want %v", tc.code, got, tc.want)
		}
		if got := alternative(tc.code); got != tc.alternative {
			t.Errorf("alternative(%q) = %v, want %v", tc.code, got, tc.alternative)
		}
	}
}

func TestStartsUpper(t *testing.T) {
	for s, want := range map[string]bool{
		"Montre": true,
		"Élise":  true,
		"montre": false,
		"1784":   false,
		"":       false,
	} {
		if got := startsUpper(s); got != want {
			t.Errorf("startsUpper(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestClassifyWrapsUntypedErrors(t *testing.T) {
	if classify("x", nil) != nil {
		t.Fatal("nil error was wrapped")
	}
	verr := invalid(MsgNoChanges)
	if classify("x", verr) != verr {
		t.Fatal("validation error was wrapped")
	}
	err := classify("person add", errBoom{})
	serr, ok := err.(*StorageError)
	if !ok || serr.Op != "person add" {
		t.Fatalf("classify = %#v", err)
	}
	if serr.Error() != "person add: boom" {
		t.Fatalf("message = %q", serr.Error())
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func TestRefIDDecodesNumbersAndStrings(t *testing.T) {
	var in ProcesVerbalInput
	body := `{"date":"1784-04-06","theatre_id":3,"source_id":"12","official_id":null,"victim_id":" 7 "}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	in = in.normalized()
	if in.TheatreID != "3" || in.SourceID != "12" || in.OfficialID != "" || in.VictimID != "7" || in.ObjectID != "" {
		t.Fatalf("decoded = %+v", in)
	}

	if err := json.Unmarshal([]byte(`{"theatre_id":true}`), &in); err == nil {
		t.Fatal("boolean reference accepted")
	}
}
