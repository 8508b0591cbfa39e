package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecoclean/internal/core"
	"github.com/vovakirdan/ecoclean/internal/quiz"
	"github.com/vovakirdan/ecoclean/internal/scoring"
	"github.com/vovakirdan/ecoclean/internal/storage"
)

func sendQuiz(t *testing.T, m QuizModel, msg tea.Msg) QuizModel {
	t.Helper()
	next, _ := m.Update(msg)
	qm, ok := next.(QuizModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return qm
}

func TestQuizModelAnswersAndAdvances(t *testing.T) {
	m := NewQuizModel(nil, core.DefaultConfig())

	m = sendQuiz(t, m, runeKey("3"))
	if v, ok := m.answers.Get(1); !ok || v != quiz.ValueWorst {
		t.Errorf("answer to question 1 = %d, %v, want %d", v, ok, quiz.ValueWorst)
	}
	if m.current != 1 {
		t.Errorf("current = %d, want 1 after answering", m.current)
	}

	// Down then Enter picks the middle option
	m = sendQuiz(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendQuiz(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if v, _ := m.answers.Get(2); v != quiz.ValueSome {
		t.Errorf("answer to question 2 = %d, want %d", v, quiz.ValueSome)
	}

	// Going back highlights the recorded answer
	m = sendQuiz(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.current != 1 || m.cursor != 1 {
		t.Errorf("after Left current/cursor = %d/%d, want 1/1", m.current, m.cursor)
	}
	m = sendQuiz(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.current != 0 || m.cursor != 2 {
		t.Errorf("after Left current/cursor = %d/%d, want 0/2", m.current, m.cursor)
	}
}

func TestQuizModelNextNeedsAnswer(t *testing.T) {
	m := NewQuizModel(nil, core.DefaultConfig())

	m = sendQuiz(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.current != 0 {
		t.Error("Right should not skip an unanswered question")
	}
}

func TestQuizModelCompletes(t *testing.T) {
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := NewQuizModel(store, core.DefaultConfig())
	for i := 0; i < quiz.Count(); i++ {
		if m.Finished() {
			t.Fatalf("finished after %d answers", i)
		}
		m = sendQuiz(t, m, runeKey("2"))
	}

	res, done := m.Result()
	if !done {
		t.Fatal("quiz should be finished after answering every question")
	}
	if res.TotalScore != quiz.Count() || res.TotalQuestions != quiz.Count() {
		t.Errorf("Result() = %+v", res)
	}

	// Every answer is 1 of 2: 50% is grade B
	if r := m.Report(); r.Grade != scoring.GradeB || r.Percentage != 50 {
		t.Errorf("Report() grade/percentage = %s/%v, want B/50", r.Grade, r.Percentage)
	}

	records, err := store.RecentQuizResults(10)
	if err != nil {
		t.Fatalf("RecentQuizResults() failed: %v", err)
	}
	if len(records) != 1 || records[0].RunID != m.runID {
		t.Errorf("stored records = %+v, want the completed quiz", records)
	}

	if !strings.Contains(m.View(), "Good Digital Habits") {
		t.Error("results view should show the grade title")
	}

	m = sendQuiz(t, m, runeKey("r"))
	if m.Finished() || m.answers.AnsweredCount() != 0 {
		t.Error("retake should clear the answers")
	}
}

func TestQuizModelBack(t *testing.T) {
	m := NewQuizModel(nil, core.DefaultConfig())
	m = sendQuiz(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc should return to the menu")
	}
}
