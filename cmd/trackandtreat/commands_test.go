package main

import (
	"strings"
	"testing"

	"github.com/Mny978/track-and-treat/internal/config"
	"github.com/Mny978/track-and-treat/internal/storage"
	"github.com/Mny978/track-and-treat/internal/store"
	"github.com/Mny978/track-and-treat/internal/tracking"
)

// memoryApp swaps openApp for one backed by an in-memory database so commands
// run without touching the user's data directory.
func memoryApp(t *testing.T) *app {
	t.Helper()

	kv, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory storage: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	a := &app{
		cfg:       config.Config{},
		kv:        kv,
		store:     store.New(kv),
		reminders: store.NewReminderStore(kv),
		feedback:  store.NewFeedbackStore(kv),
	}

	old := openApp
	openApp = func() (*app, error) { return a, nil }
	t.Cleanup(func() { openApp = old })

	return a
}

func execute(args ...string) error {
	defer rootCmd.SetArgs(nil)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRemindAdd_InvalidTime(t *testing.T) {
	err := execute("remind", "add", "25:99", "meal")
	if err == nil {
		t.Fatal("expected error for invalid time")
	}
	if !strings.Contains(err.Error(), "HH:MM") {
		t.Errorf("error = %q, want it to mention HH:MM", err.Error())
	}
}

func TestRemindAdd_InvalidType(t *testing.T) {
	err := execute("remind", "add", "08:00", "snack")
	if err == nil {
		t.Fatal("expected error for invalid reminder type")
	}
	if !strings.Contains(err.Error(), "meal or water") {
		t.Errorf("error = %q, want it to mention 'meal or water'", err.Error())
	}
}

func TestRemindAdd_PersistsSorted(t *testing.T) {
	a := memoryApp(t)

	for _, args := range [][]string{
		{"remind", "add", "13:00", "meal"},
		{"remind", "add", "08:00", "water"},
	} {
		if err := execute(args...); err != nil {
			t.Fatalf("unexpected error for %v: %v", args, err)
		}
	}

	reminders := a.reminders.List()
	if len(reminders) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(reminders))
	}
	if reminders[0].Time != "08:00" || reminders[1].Time != "13:00" {
		t.Errorf("reminders not sorted by time: %s, %s", reminders[0].Time, reminders[1].Time)
	}

	// Stored under the fixed key.
	if _, err := a.kv.Get(store.RemindersKey); err != nil {
		t.Errorf("reminders not persisted: %v", err)
	}
}

func TestProfileSet_RejectsNonPositiveWeight(t *testing.T) {
	memoryApp(t)

	err := execute("profile", "set", "--weight", "-5")
	if err == nil {
		t.Fatal("expected error for negative weight")
	}
	if !strings.Contains(err.Error(), "positive") {
		t.Errorf("error = %q, want it to mention 'positive'", err.Error())
	}
}

func TestProfileSet_RecomputesAssessment(t *testing.T) {
	a := memoryApp(t)

	err := execute("profile", "set",
		"--age", "30", "--weight", "70", "--height", "175", "--gender", "Male")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := a.store.Profile().Assessment
	if got.BMI == nil || got.TDEE == nil {
		t.Fatal("expected a computed assessment after profile set")
	}
	if *got.BMI != 22.9 {
		t.Errorf("BMI = %v, want 22.9", *got.BMI)
	}
}

func TestLang_RejectsUnknown(t *testing.T) {
	err := execute("lang", "fr")
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if !strings.Contains(err.Error(), "unsupported language") {
		t.Errorf("error = %q, want it to mention 'unsupported language'", err.Error())
	}
}

func TestFeedbackAdd_InvalidType(t *testing.T) {
	memoryApp(t)

	err := execute("feedback", "add", "--type", "rant", "too many vegetables")
	if err == nil {
		t.Fatal("expected error for invalid feedback type")
	}
}

func TestResolveMealID(t *testing.T) {
	tracker := tracking.New()
	entry := tracker.LogMeal("dal and rice", 400)

	got := resolveMealID(tracker, entry.ID[:8])
	if got != entry.ID {
		t.Errorf("resolveMealID = %q, want %q", got, entry.ID)
	}

	// Unknown prefix resolves to itself so the delete becomes a no-op.
	if got := resolveMealID(tracker, "zzzz"); got != "zzzz" {
		t.Errorf("resolveMealID for unknown prefix = %q, want it unchanged", got)
	}
}

func TestNoColorFlag(t *testing.T) {
	old := noColor
	defer func() { noColor = old }()

	noColor = true
	result := colorize(colorGreen, "test message")
	if strings.Contains(result, "\033[") {
		t.Errorf("colorize with noColor=true should not contain ANSI codes, got %q", result)
	}
	if result != "test message" {
		t.Errorf("result = %q, want %q", result, "test message")
	}

	noColor = false
	result = colorize(colorGreen, "test message")
	if !strings.Contains(result, "\033[") {
		t.Errorf("colorize with noColor=false should contain ANSI codes, got %q", result)
	}
}

func TestRenderMarkdown_NoColorPassthrough(t *testing.T) {
	old := noColor
	defer func() { noColor = old }()

	noColor = true
	md := "# Heading\n\nbody"
	if got := renderMarkdown(md); got != md {
		t.Errorf("renderMarkdown with noColor=true should pass through, got %q", got)
	}
}
