package badgerlog

import (
	"bytes"
	"flag"
	"log"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(log.New(&buf, "", 0), "prefs", WarningLevel)

	l.Errorf("disk %s\n", "full")
	l.Warningf("slow %d", 2)
	l.Infof("hidden")
	l.Debugf("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expects := []string{
		"prefs: badger: error: disk full",
		"prefs: badger: warning: slow 2",
	}

	if len(lines) != len(expects) {
		t.Fatalf("expected %d lines, got %q", len(expects), lines)
	}

	for i, line := range lines {
		if line != expects[i] {
			t.Errorf("line %d expected %q, got %q", i, expects[i], line)
		}
	}
}

func TestNoLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(log.New(&buf, "", 0), "", NoLogging)

	l.Errorf("nothing")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"none":    NoLogging,
		"off":     NoLogging,
		"error":   ErrorLevel,
		"warning": WarningLevel,
		"WARN":    WarningLevel,
		"info":    InfoLevel,
		" debug ": DebugLevel,
	}

	for name, expect := range tests {
		level, err := ParseLevel(name)
		if err != nil {
			t.Errorf("level %q: unexpected error: %v", name, err)
			continue
		}
		if level != expect {
			t.Errorf("level %q expected %s, got %s", name, expect, level)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevelFlag(t *testing.T) {
	level := WarningLevel

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&level, "log", "log level")

	if err := fs.Parse([]string{"-log", "debug"}); err != nil {
		t.Fatal("failed to parse:", err)
	}
	if level != DebugLevel {
		t.Errorf("expected debug, got %s", level)
	}

	if err := level.EnvDecode("bogus"); err == nil {
		t.Error("expected error decoding a bogus level")
	}
	if level != DebugLevel {
		t.Errorf("failed decode changed the level to %s", level)
	}
}
