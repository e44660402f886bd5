package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFindLatest(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.yaml")
	newer := filepath.Join(dir, "new.YML")
	other := filepath.Join(dir, "newest.txt")

	now := time.Now()
	for i, p := range []string{old, newer, other} {
		if err := os.WriteFile(p, []byte("queues: []"), 0644); err != nil {
			t.Fatal(err)
		}
		ts := now.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(p, ts, ts); err != nil {
			t.Fatal(err)
		}
	}

	got, err := FindLatest(dir, ".yaml", ".yml")
	if err != nil {
		t.Fatalf("FindLatest failed: %v", err)
	}
	if got != newer {
		t.Errorf("Expected %s, got %s", newer, got)
	}

	if got, _ := FindLatest(dir); got != other {
		t.Errorf("Without extensions every file matches, got %s", got)
	}

	if _, err := FindLatest(dir, ".json"); err == nil {
		t.Error("Expected error when nothing matches")
	}
	if _, err := FindLatest(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestWorkerCount(t *testing.T) {
	n := WorkerCount()
	if n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
	t.Logf("workers: %d", n)
}
