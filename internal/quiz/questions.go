// Package quiz holds the digital-habits questionnaire: the static question
// catalog and the answers a user records against it.
package quiz

import "fmt"

// Option values are ordinal severity weights.
const (
	ValueBest  = 0
	ValueSome  = 1
	ValueWorst = 2
)

// Option is one selectable answer to a question.
type Option struct {
	Text  string
	Value int
}

// Question is a single quiz question with its ordered options.
type Question struct {
	ID      int
	Prompt  string
	Options []Option
}

// catalog is the questionnaire in display order. Ids are 1..N.
var catalog = []Question{
	{
		ID:     1,
		Prompt: "Do you regularly clean your email inbox?",
		Options: []Option{
			{Text: "Yes, I clean it weekly", Value: 0},
			{Text: "Sometimes, maybe monthly", Value: 1},
			{Text: "Rarely or never", Value: 2},
		},
	},
	{
		ID:     2,
		Prompt: "How often do you watch videos in 4K?",
		Options: []Option{
			{Text: "Never or rarely", Value: 0},
			{Text: "Sometimes", Value: 1},
			{Text: "Daily or frequently", Value: 2},
		},
	},
	{
		ID:     3,
		Prompt: "Do you use cloud storage for photos and videos?",
		Options: []Option{
			{Text: "No, I store locally", Value: 0},
			{Text: "Yes, but I organize regularly", Value: 1},
			{Text: "Yes, I upload everything automatically", Value: 2},
		},
	},
	{
		ID:     4,
		Prompt: "Do you delete old files from your devices?",
		Options: []Option{
			{Text: "Yes, regularly", Value: 0},
			{Text: "Sometimes", Value: 1},
			{Text: "Rarely or never", Value: 2},
		},
	},
	{
		ID:     5,
		Prompt: "How many unread emails do you have?",
		Options: []Option{
			{Text: "Less than 50", Value: 0},
			{Text: "50-500", Value: 1},
			{Text: "More than 500", Value: 2},
		},
	},
	{
		ID:     6,
		Prompt: "Do you use AI tools like ChatGPT or Copilot daily?",
		Options: []Option{
			{Text: "No, rarely use them", Value: 0},
			{Text: "Sometimes, for specific tasks", Value: 1},
			{Text: "Yes, multiple times daily", Value: 2},
		},
	},
	{
		ID:     7,
		Prompt: "Do you archive documents you no longer need?",
		Options: []Option{
			{Text: "Yes, I archive or delete them", Value: 0},
			{Text: "Sometimes", Value: 1},
			{Text: "No, I keep everything", Value: 2},
		},
	},
	{
		ID:     8,
		Prompt: "Do you backup your data weekly?",
		Options: []Option{
			{Text: "Yes, automatically", Value: 0},
			{Text: "Yes, manually", Value: 1},
			{Text: "No, rarely backup", Value: 2},
		},
	},
	{
		ID:     9,
		Prompt: "How often do you empty your recycle bin?",
		Options: []Option{
			{Text: "Weekly or more often", Value: 0},
			{Text: "Monthly", Value: 1},
			{Text: "Rarely or never", Value: 2},
		},
	},
	{
		ID:     10,
		Prompt: "Do you optimize your smartphone storage?",
		Options: []Option{
			{Text: "Yes, regularly clean and optimize", Value: 0},
			{Text: "Sometimes when storage is full", Value: 1},
			{Text: "No, I don't manage storage", Value: 2},
		},
	},
	{
		ID:     11,
		Prompt: "How many streaming services do you actively use?",
		Options: []Option{
			{Text: "1-2 services", Value: 0},
			{Text: "3-5 services", Value: 1},
			{Text: "More than 5 services", Value: 2},
		},
	},
	{
		ID:     12,
		Prompt: "Do you download content for offline viewing?",
		Options: []Option{
			{Text: "Yes, to reduce streaming", Value: 0},
			{Text: "Sometimes", Value: 1},
			{Text: "No, I always stream", Value: 2},
		},
	},
}

func init() {
	if err := ValidateCatalog(catalog); err != nil {
		panic(err)
	}
}

// Questions returns a copy of the question catalog in display order.
func Questions() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

// Count returns the number of questions in the catalog.
func Count() int {
	return len(catalog)
}

// Lookup returns the question with the given id.
func Lookup(id int) (Question, bool) {
	if id < 1 || id > len(catalog) {
		return Question{}, false
	}
	return catalog[id-1], true
}

// optionsPerQuestion is one option per severity value.
const optionsPerQuestion = 3

// ValidateCatalog checks that ids run 1..N in order, each question has
// exactly three options and every option carries a valid severity value.
func ValidateCatalog(qs []Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("quiz: catalog is empty")
	}
	for i, q := range qs {
		if q.ID != i+1 {
			return fmt.Errorf("quiz: question at index %d has id %d, want %d", i, q.ID, i+1)
		}
		if len(q.Options) != optionsPerQuestion {
			return fmt.Errorf("quiz: question %d has %d options, want %d", q.ID, len(q.Options), optionsPerQuestion)
		}
		for _, o := range q.Options {
			if !ValidValue(o.Value) {
				return fmt.Errorf("quiz: question %d option %q has value %d", q.ID, o.Text, o.Value)
			}
		}
	}
	return nil
}

// ValidValue reports whether v is an allowed option value.
func ValidValue(v int) bool {
	return v >= ValueBest && v <= ValueWorst
}
