package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  Chess Club  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Activity name", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Chess Club" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Activity name") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("prof"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Enter username", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "prof" {
		t.Fatalf("got %q", got)
	}
}

func TestGetSimpleText_EOFEmpty(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	if _, err := GetSimpleText(r, "Enter username", &out); err == nil {
		t.Fatalf("expected error on empty EOF")
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pw) != "secret" {
		t.Fatalf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password:") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}
