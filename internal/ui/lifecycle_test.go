package ui

import (
	"bytes"
	"testing"
	"time"

	"treepick/internal/tree"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

// TestPickerLifecycleSelect runs the picker headlessly: expand, move, select
// and quit through the real program loop.
func TestPickerLifecycleSelect(t *testing.T) {
	m := New(sampleRoots(), Config{QuitOnSelect: true})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	tm.Send(tea.KeyMsg{Type: tea.KeySpace})
	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	picker, ok := fm.(*Picker)
	if !ok {
		t.Fatalf("expected *Picker, got %T", fm)
	}
	chosen, ok := picker.Chosen()
	if !ok {
		t.Fatal("expected a selection")
	}
	if chosen.Value != "a" {
		t.Fatalf("expected a selected, got %v", chosen.Value)
	}
	if tree.SlicesDiffer(chosen.Path, []any{"root", "a"}) {
		t.Fatalf("unexpected path %v", chosen.Path)
	}
}

// TestPickerLifecycleQuit verifies the quit key ends the program without a
// selection.
func TestPickerLifecycleQuit(t *testing.T) {
	m := New(sampleRoots(), Config{Searchable: true})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	if _, ok := fm.(*Picker).Chosen(); ok {
		t.Fatal("quit should not select anything")
	}

	out := tm.FinalOutput(t, teatest.WithFinalTimeout(5*time.Second))
	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(out)
	if !bytes.Contains(buf.Bytes(), []byte("Root")) {
		t.Errorf("expected the tree in the rendered output, got %q", buf.String())
	}
}
