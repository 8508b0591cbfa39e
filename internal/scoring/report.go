// Package scoring turns quiz answers into a pollution report: a letter
// grade, a qualitative level, environmental estimates and advice.
// Everything here is pure and safe to call from any goroutine.
package scoring

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ecoclean/internal/quiz"
)

// Grade is the letter summary of a quiz score. A is best.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// Grade thresholds on the score percentage. Lower bounds are inclusive.
const (
	mediumThreshold = 35.0
	highThreshold   = 65.0
)

// Conversion factors for the environmental estimates.
const (
	co2BaseKg      = 20.0
	co2RangeKg     = 180.0
	kmPerKgCO2     = 4.5
	litersPerKgCO2 = 15.0
)

// PollutionReport is the derived view over an answer set.
type PollutionReport struct {
	Grade              Grade        `json:"grade"`
	Level              quiz.Level   `json:"level"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Percentage         float64      `json:"percentage"`
	CO2AnnualKg        int          `json:"co2AnnualKg"`
	DrivingKmPerYear   int          `json:"drivingKmPerYear"`
	WaterLitersPerYear int          `json:"waterLitersPerYear"`
	Advice             []AdviceItem `json:"advice"`
}

type gradeBand struct {
	grade       Grade
	level       quiz.Level
	title       string
	description string
}

var (
	bandA = gradeBand{GradeA, quiz.LevelLow, "Excellent Digital Habits!", "You have low digital pollution impact"}
	bandB = gradeBand{GradeB, quiz.LevelMedium, "Good Digital Habits", "You have moderate digital pollution impact"}
	bandC = gradeBand{GradeC, quiz.LevelHigh, "Room for Improvement", "You have high digital pollution impact"}
)

// ComputeReport scores the answers against a quiz of totalQuestions questions.
// Unanswered questions contribute nothing. It panics if totalQuestions < 1.
func ComputeReport(answers quiz.AnswerSet, totalQuestions int) PollutionReport {
	pct := Percentage(answers, totalQuestions)
	band := bandFor(pct)

	co2 := CO2AnnualKg(pct)
	return PollutionReport{
		Grade:              band.grade,
		Level:              band.level,
		Title:              band.title,
		Description:        band.description,
		Percentage:         pct,
		CO2AnnualKg:        co2,
		DrivingKmPerYear:   int(math.Round(float64(co2) * kmPerKgCO2)),
		WaterLitersPerYear: int(math.Round(float64(co2) * litersPerKgCO2)),
		Advice:             GenerateAdvice(answers),
	}
}

// Percentage returns 100 * sum / (2 * totalQuestions).
func Percentage(answers quiz.AnswerSet, totalQuestions int) float64 {
	if totalQuestions < 1 {
		panic(fmt.Sprintf("scoring: totalQuestions must be >= 1, got %d", totalQuestions))
	}
	maxScore := totalQuestions * quiz.ValueWorst
	return 100 * float64(answers.TotalScore()) / float64(maxScore)
}

// CO2AnnualKg maps a score percentage to an annual estimate in [20, 200] kg.
func CO2AnnualKg(percentage float64) int {
	return int(math.Round(co2BaseKg + percentage/100*co2RangeKg))
}

// GradeFor returns the grade and level for a score percentage.
func GradeFor(percentage float64) (Grade, quiz.Level) {
	b := bandFor(percentage)
	return b.grade, b.level
}

func bandFor(pct float64) gradeBand {
	switch {
	case pct < mediumThreshold:
		return bandA
	case pct < highThreshold:
		return bandB
	default:
		return bandC
	}
}
