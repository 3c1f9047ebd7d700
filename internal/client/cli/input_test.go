package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := GetTextWithDefault(rdr("\n"), "Name", "Alice", &out)
	if err != nil || got != "Alice" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	got, err = GetTextWithDefault(rdr("Bob\n"), "Name", "Alice", &out)
	if err != nil || got != "Bob" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetYesNo(t *testing.T) {
	var out bytes.Buffer

	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"\n", true, true},
		{"\n", false, false},
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"whatever\n", true, false},
	}
	for _, tt := range tests {
		got, err := GetYesNo(rdr(tt.input), "Public?", tt.def, &out)
		if err != nil || got != tt.want {
			t.Fatalf("input %q def %v: got %v, err=%v", tt.input, tt.def, got, err)
		}
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	if _, err := GetPassword(&out); err == nil {
		t.Fatal("expected error")
	}
}
