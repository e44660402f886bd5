package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ivlev/motionkit/internal/curve"
	"github.com/ivlev/motionkit/internal/director"
	"github.com/ivlev/motionkit/internal/source"
)

const sample = `
workers: 2
output: out/scenario.yaml
transitions:
  snappy: {duration: 0.2, ease: [0.2, 0, 0, 1]}
presets:
  blink:
    initial: {opacity: 0}
    animate: {opacity: [0, 1, 0, 1]}
queues:
  - name: hero
    curve: fibonacci
    base_duration: 0.4
    dynamic: true
    children: [title, subtitle]
    elements:
      - mode: [fadeUp, scaleZoomIn]
        transition: smooth
        duration: 0.8
      - mode: blink
        trigger: false
        view: {once: false, amount: 0.25}
  - name: footer
    base_duration: 0
    fixed_delay: 0
    visible: false
    children: [links]
    elements:
      - mode: fadeIn
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Workers != 2 || cfg.Output != "out/scenario.yaml" || len(cfg.Queues) != 2 {
		t.Fatalf("Unexpected config: %+v", cfg)
	}

	hero := cfg.Queues[0]
	opts := hero.Options()
	if opts.Curve != curve.Fibonacci || opts.BaseDuration == nil || *opts.BaseDuration != 0.4 || !opts.Dynamic || opts.FixedDelay != nil {
		t.Errorf("Unexpected hero options: %+v", opts)
	}
	if diff := cmp.Diff(director.Modes{"fadeUp", "scaleZoomIn"}, hero.Elements[0].Mode); diff != "" {
		t.Errorf("Mode list mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(director.Modes{"blink"}, hero.Elements[1].Mode); diff != "" {
		t.Errorf("Single mode mismatch (-want +got):\n%s", diff)
	}
	el := hero.Elements[1]
	if el.Trigger == nil || *el.Trigger || el.View == nil || el.View.Amount != 0.25 {
		t.Errorf("Unexpected element: %+v", el)
	}
	if !hero.IsVisible() {
		t.Error("Queues are visible by default")
	}

	footer := cfg.Queues[1]
	if footer.FixedDelay == nil || *footer.FixedDelay != 0 {
		t.Errorf("Expected explicit zero fixed delay, got %v", footer.FixedDelay)
	}
	if footer.IsVisible() {
		t.Error("Footer should be hidden")
	}
	if base := footer.Options().BaseDuration; base == nil || *base != 0 {
		t.Errorf("Expected explicit zero base duration, got %v", base)
	}
	if footer.Options().Curve != curve.Linear {
		t.Errorf("Missing curve should be linear, got %q", footer.Options().Curve)
	}
}

func TestLibraryOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	if err != nil {
		t.Fatal(err)
	}
	lib := cfg.Library()

	tr := lib.Transition("snappy")
	if tr.Duration != 0.2 || !tr.Ease.IsBezier() {
		t.Errorf("Unexpected snappy transition: %+v", tr)
	}
	if _, ok := lib.Lookup("blink"); !ok {
		t.Error("Expected blink preset")
	}
	if _, ok := lib.Lookup("fadeUp"); !ok {
		t.Error("Built-in presets must stay available")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"no queues", "workers: 1\n", ErrNoQueues},
		{"unknown curve", "queues:\n  - name: a\n    curve: wobble\n    elements: []\n", curve.ErrUnknownKind},
		{"missing name", "queues:\n  - curve: linear\n    elements: []\n", nil},
		{"duplicate", "queues:\n  - name: a\n    elements: []\n  - name: a\n    elements: []\n", nil},
		{"visibility ratio", "queues:\n  - name: a\n    visibility: [0.5, 1.5]\n    elements: []\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			t.Logf("error: %v", err)
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestInView(t *testing.T) {
	scroll := []float64{0.2, 0.9, 0.1}
	tests := []struct {
		name string
		q    QueueConfig
		view director.ViewConfig
		want bool
	}{
		{"no ratios", QueueConfig{}, director.DefaultView(), true},
		{"no ratios hidden", QueueConfig{Visible: boolPtr(false)}, director.DefaultView(), false},
		{"once latches", QueueConfig{Visibility: scroll}, director.DefaultView(), true},
		{"scrolled away", QueueConfig{Visibility: scroll}, director.ViewConfig{Amount: 0.5}, false},
		{"never enough", QueueConfig{Visibility: scroll}, director.ViewConfig{Once: true, Amount: 0.95}, false},
		{"ratios win over visible", QueueConfig{Visible: boolPtr(false), Visibility: []float64{1}}, director.DefaultView(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.InView(tt.view); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }

func TestQueueSource(t *testing.T) {
	q := QueueConfig{Children: []string{"a", "b"}}
	s, err := q.Source()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, source.Names(s)); diff != "" {
		t.Errorf("Children mismatch (-want +got):\n%s", diff)
	}

	q = QueueConfig{Images: filepath.Join(t.TempDir(), "missing")}
	if _, err := q.Source(); err == nil {
		t.Error("Expected error for missing image directory")
	}
}
