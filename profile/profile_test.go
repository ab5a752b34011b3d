package profile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStartWritesFiles(t *testing.T) {
	dir := t.TempDir()
	p, err := New(filepath.Join(dir, "out"), nil)
	if err != nil {
		t.Fatal(err)
	}

	stop, err := p.Start("run")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Active() {
		t.Error("not active after Start")
	}
	if _, err := p.Start("again"); !errors.Is(err, ErrBusy) {
		t.Errorf("second Start err = %v, want ErrBusy", err)
	}
	if err := stop(); err != nil {
		t.Fatal(err)
	}
	if err := stop(); err != nil {
		t.Errorf("second stop: %v", err)
	}
	if p.Active() {
		t.Error("still active after stop")
	}

	entries, err := os.ReadDir(p.Dir())
	if err != nil {
		t.Fatal(err)
	}
	var cpu, trace bool
	for _, e := range entries {
		cpu = cpu || strings.HasSuffix(e.Name(), ".cpu.prof")
		trace = trace || strings.HasSuffix(e.Name(), ".trace")
	}
	if !cpu || !trace {
		t.Errorf("files = %v", entries)
	}
}

func TestCaptureCooldown(t *testing.T) {
	p, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }
	p.lastStart = now.Add(-time.Second)

	if err := p.Capture("fps"); !errors.Is(err, ErrBusy) {
		t.Errorf("Capture within cooldown err = %v, want ErrBusy", err)
	}
}
