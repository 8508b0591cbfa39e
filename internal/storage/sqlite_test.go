package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/ecoclean/internal/quiz"
	"github.com/vovakirdan/ecoclean/internal/scoring"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if store.InMemory() {
		t.Error("file store reports InMemory")
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenMemory(t *testing.T) {
	for _, path := range []string{"", MemoryPath} {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", path, err)
		}
		if !store.InMemory() {
			t.Errorf("Open(%q) should be in memory", path)
		}

		// Schema must survive across statements on the single connection
		if _, err := store.SaveGameScore(GameScore{Score: 1, Outcome: "win"}); err != nil {
			t.Errorf("SaveGameScore() on memory store failed: %v", err)
		}
		store.Close()
	}
}

func TestStoreMemoryIsSessionScoped(t *testing.T) {
	a := openMemory(t)
	if _, err := a.SaveGameScore(GameScore{Score: 10, Outcome: "win"}); err != nil {
		t.Fatalf("SaveGameScore() failed: %v", err)
	}

	b := openMemory(t)
	scores, err := b.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("new memory store sees %d scores, want 0", len(scores))
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openMemory(t)

	rounds := []GameScore{
		{Score: 15, Outcome: "win", Pollution: 35, Cleared: 4},
		{Score: -20, Outcome: "lose", Pollution: 82, Cleared: 4},
		{Score: 40, Outcome: "win", Pollution: 30, Cleared: 4},
	}
	seen := make(map[string]bool)
	for _, r := range rounds {
		runID, err := store.SaveGameScore(r)
		if err != nil {
			t.Fatalf("SaveGameScore() failed: %v", err)
		}
		if runID == "" || seen[runID] {
			t.Errorf("SaveGameScore() returned run id %q, want a fresh one", runID)
		}
		seen[runID] = true
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{40, 15, -20}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[2].Outcome != "lose" || scores[2].Pollution != 82 || scores[2].Cleared != 4 {
		t.Errorf("lowest round = %+v", scores[2])
	}
}

func TestStoreKeepsGivenRunID(t *testing.T) {
	store := openMemory(t)

	runID, err := store.SaveGameScore(GameScore{RunID: "fixed-run", Score: 5, Outcome: "win"})
	if err != nil {
		t.Fatalf("SaveGameScore() failed: %v", err)
	}
	if runID != "fixed-run" {
		t.Errorf("run id = %q, want fixed-run", runID)
	}

	if _, err := store.SaveGameScore(GameScore{RunID: "fixed-run", Score: 6, Outcome: "win"}); err == nil {
		t.Error("saving a duplicate run id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openMemory(t)

	for i := 1; i <= 20; i++ {
		if _, err := store.SaveGameScore(GameScore{Score: i * 10, Outcome: "win"}); err != nil {
			t.Fatalf("SaveGameScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 {
		t.Errorf("Expected top score 200, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("TopScores(0) returned %d rows, want 10", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openMemory(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty store, got %d", high)
	}

	for _, s := range []int{10, 30, -5} {
		store.SaveGameScore(GameScore{Score: s, Outcome: "win"})
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score 30, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openMemory(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.Wins != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", stats)
	}

	store.SaveGameScore(GameScore{Score: 40, Outcome: "win"})
	store.SaveGameScore(GameScore{Score: -20, Outcome: "lose"})
	store.SaveGameScore(GameScore{Score: 10, Outcome: "win"})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 || stats.Wins != 2 || stats.HighScore != 40 {
		t.Errorf("Stats() = %+v, want 3 rounds, 2 wins, high 40", stats)
	}
	if stats.AvgScore != 10 {
		t.Errorf("AvgScore = %v, want 10", stats.AvgScore)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openMemory(t)

	store.SaveGameScore(GameScore{Score: 100, Outcome: "win"})
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreQuizResults(t *testing.T) {
	store := openMemory(t)

	first := quiz.NewAnswerSet()
	first.Set(1, 2)
	first.Set(2, 1)
	second := quiz.NewAnswerSet()
	second.Set(9, 0)

	for _, answers := range []quiz.AnswerSet{first, second} {
		res := quiz.NewResult(answers)
		report := scoring.ComputeReport(answers, res.TotalQuestions)
		if _, err := store.SaveQuizResult(res, report); err != nil {
			t.Fatalf("SaveQuizResult() failed: %v", err)
		}
	}

	records, err := store.RecentQuizResults(10)
	if err != nil {
		t.Fatalf("RecentQuizResults() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	// Newest first
	latest := records[0]
	if latest.Result.TotalScore != 0 || len(latest.Result.Answers) != 1 {
		t.Errorf("latest result = %+v, want the second answer set", latest.Result)
	}
	if latest.Grade != scoring.GradeA || latest.CO2AnnualKg != 20 {
		t.Errorf("latest record grade/co2 = %s/%d, want A/20", latest.Grade, latest.CO2AnnualKg)
	}

	older := records[1]
	if v, ok := older.Result.Answers.Get(1); !ok || v != 2 {
		t.Errorf("older answers[1] = %d, %v, want 2", v, ok)
	}
	if older.Result.TotalScore != 3 || older.Result.TotalQuestions != quiz.Count() {
		t.Errorf("older result = %+v", older.Result)
	}
	if older.RunID == latest.RunID {
		t.Error("quiz results share a run id")
	}
}
