package scoring

import "github.com/vovakirdan/ecoclean/internal/quiz"

// AdviceItem is one personalized recommendation.
type AdviceItem struct {
	Icon     string `json:"icon"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	ColorTag string `json:"colorTag"`
}

// AdviceRule emits Item when the answer to QuestionID is at least Threshold.
type AdviceRule struct {
	QuestionID int
	Threshold  int
	Item       AdviceItem
}

// minSpecificAdvice is the count below which the fallback item is appended.
const minSpecificAdvice = 3

// adviceRules are evaluated in declaration order. Renderers rely on that
// order, so new rules go at the end.
var adviceRules = []AdviceRule{
	{
		QuestionID: 1,
		Threshold:  quiz.ValueSome,
		Item: AdviceItem{
			Icon:     "envelope",
			Title:    "Email Management",
			Text:     "Set up a weekly email cleanup routine. Unsubscribe from newsletters you don't read.",
			ColorTag: "red",
		},
	},
	{
		QuestionID: 2,
		Threshold:  quiz.ValueSome,
		Item: AdviceItem{
			Icon:     "video",
			Title:    "Video Streaming",
			Text:     "Lower streaming quality when possible. Download content for offline viewing.",
			ColorTag: "blue",
		},
	},
	{
		QuestionID: 3,
		Threshold:  quiz.ValueSome,
		Item: AdviceItem{
			Icon:     "cloud",
			Title:    "Cloud Storage",
			Text:     "Organize your cloud storage regularly. Delete unnecessary files and photos.",
			ColorTag: "purple",
		},
	},
	{
		QuestionID: 4,
		Threshold:  quiz.ValueSome,
		Item: AdviceItem{
			Icon:     "folder",
			Title:    "File Management",
			Text:     "Schedule monthly file cleanup sessions. Archive old documents properly.",
			ColorTag: "green",
		},
	},
	{
		QuestionID: 9,
		Threshold:  quiz.ValueSome,
		Item: AdviceItem{
			Icon:     "trash",
			Title:    "Digital Waste",
			Text:     "Empty your recycle bin weekly. Permanently delete unnecessary files.",
			ColorTag: "gray",
		},
	},
}

var fallbackAdvice = AdviceItem{
	Icon:     "leaf",
	Title:    "Keep It Up!",
	Text:     "You're doing great! Share these habits with friends and family.",
	ColorTag: "green",
}

// Rules returns a copy of the advice rule table in evaluation order.
func Rules() []AdviceRule {
	out := make([]AdviceRule, len(adviceRules))
	copy(out, adviceRules)
	return out
}

// GenerateAdvice evaluates the rule table against the answers.
// Unanswered questions never trigger a rule. When fewer than three rules
// fire, a single positive item is appended.
func GenerateAdvice(answers quiz.AnswerSet) []AdviceItem {
	return evaluate(adviceRules, answers)
}

func evaluate(rules []AdviceRule, answers quiz.AnswerSet) []AdviceItem {
	advice := make([]AdviceItem, 0, len(rules)+1)
	for _, r := range rules {
		v, ok := answers.Get(r.QuestionID)
		if ok && v >= r.Threshold {
			advice = append(advice, r.Item)
		}
	}

	if len(advice) < minSpecificAdvice {
		advice = append(advice, fallbackAdvice)
	}
	return advice
}
