package scoring

import (
	"testing"

	"github.com/vovakirdan/ecoclean/internal/quiz"
)

// answersWithSum spreads sum over questions 1..n using values 2, then a 1.
func answersWithSum(n, sum int) quiz.AnswerSet {
	a := quiz.NewAnswerSet()
	for id := 1; id <= n && sum > 0; id++ {
		v := min(sum, 2)
		a[id] = v
		sum -= v
	}
	return a
}

func TestComputeReportEmpty(t *testing.T) {
	r := ComputeReport(quiz.NewAnswerSet(), 12)

	if r.Percentage != 0 {
		t.Errorf("Percentage = %f, want 0", r.Percentage)
	}
	if r.Grade != GradeA || r.Level != quiz.LevelLow {
		t.Errorf("Grade/Level = %s/%s, want A/low", r.Grade, r.Level)
	}
	if r.CO2AnnualKg != 20 {
		t.Errorf("CO2AnnualKg = %d, want 20", r.CO2AnnualKg)
	}
	if r.DrivingKmPerYear != 90 || r.WaterLitersPerYear != 300 {
		t.Errorf("Driving/Water = %d/%d, want 90/300", r.DrivingKmPerYear, r.WaterLitersPerYear)
	}
}

func TestComputeReportWorst(t *testing.T) {
	a := quiz.NewAnswerSet()
	for _, q := range quiz.Questions() {
		a[q.ID] = quiz.ValueWorst
	}

	r := ComputeReport(a, quiz.Count())

	if r.Percentage != 100 {
		t.Errorf("Percentage = %f, want 100", r.Percentage)
	}
	if r.Grade != GradeC || r.Level != quiz.LevelHigh {
		t.Errorf("Grade/Level = %s/%s, want C/high", r.Grade, r.Level)
	}
	if r.CO2AnnualKg != 200 {
		t.Errorf("CO2AnnualKg = %d, want 200", r.CO2AnnualKg)
	}
	if r.DrivingKmPerYear != 900 {
		t.Errorf("DrivingKmPerYear = %d, want 900", r.DrivingKmPerYear)
	}
	if r.WaterLitersPerYear != 3000 {
		t.Errorf("WaterLitersPerYear = %d, want 3000", r.WaterLitersPerYear)
	}
	if r.Title != "Room for Improvement" {
		t.Errorf("Title = %q", r.Title)
	}
}

func TestGradeBoundaries(t *testing.T) {
	// 20 questions: max score 40, so sums map to exact percentages
	tests := []struct {
		name  string
		sum   int
		grade Grade
		level quiz.Level
	}{
		{"just below 35%", 13, GradeA, quiz.LevelLow},
		{"exactly 35%", 14, GradeB, quiz.LevelMedium},
		{"just below 65%", 25, GradeB, quiz.LevelMedium},
		{"exactly 65%", 26, GradeC, quiz.LevelHigh},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := ComputeReport(answersWithSum(20, tc.sum), 20)
			if r.Grade != tc.grade || r.Level != tc.level {
				t.Errorf("sum %d (%.1f%%): got %s/%s, want %s/%s",
					tc.sum, r.Percentage, r.Grade, r.Level, tc.grade, tc.level)
			}
		})
	}
}

func TestPercentageRange(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for sum := 0; sum <= 2*n; sum++ {
			pct := Percentage(answersWithSum(n, sum), n)
			if pct < 0 || pct > 100 {
				t.Errorf("Percentage(n=%d, sum=%d) = %f, out of [0, 100]", n, sum, pct)
			}
		}
	}
}

func TestCO2Monotonic(t *testing.T) {
	prev := CO2AnnualKg(0)
	for i := 1; i <= 1000; i++ {
		pct := float64(i) / 10
		co2 := CO2AnnualKg(pct)
		if co2 < prev {
			t.Fatalf("CO2AnnualKg(%f) = %d, decreased from %d", pct, co2, prev)
		}
		if co2 < 20 || co2 > 200 {
			t.Fatalf("CO2AnnualKg(%f) = %d, out of [20, 200]", pct, co2)
		}
		prev = co2
	}
}

func TestUnansweredDoNotCount(t *testing.T) {
	r := ComputeReport(quiz.AnswerSet{1: 2, 2: 2}, 12)

	// 4 of 24
	if r.Grade != GradeA {
		t.Errorf("Grade = %s, want A", r.Grade)
	}
	if r.CO2AnnualKg != 50 {
		t.Errorf("CO2AnnualKg = %d, want 50", r.CO2AnnualKg)
	}
}

func TestComputeReportPanicsOnZeroQuestions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ComputeReport with zero questions should panic")
		}
	}()
	ComputeReport(quiz.NewAnswerSet(), 0)
}

func TestComputeReportDeterministic(t *testing.T) {
	a := quiz.AnswerSet{1: 2, 3: 1, 9: 1, 12: 2}
	first := ComputeReport(a, 12)
	second := ComputeReport(a, 12)

	if first.Grade != second.Grade || first.CO2AnnualKg != second.CO2AnnualKg || len(first.Advice) != len(second.Advice) {
		t.Error("ComputeReport should be deterministic")
	}
}
