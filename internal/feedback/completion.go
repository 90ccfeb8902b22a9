package feedback

import "fmt"

// completionPools holds two message templates per score band, in band
// order: <50, 50-70, 70-85, >=85.
type completionTemplate func(score float64, total, correct int) string

var completionPools = [4][]completionTemplate{
	{
		func(score float64, total, correct int) string {
			return fmt.Sprintf("You got %d out of %d correct. Don't be discouraged! Every question you attempt helps you learn. Review the explanations and try again - you'll improve! 💪", correct, total)
		},
		func(score float64, total, correct int) string {
			return fmt.Sprintf("Score: %.0f%% (%d/%d). Learning takes time and practice. Focus on understanding the concepts, and your scores will improve. Keep going! 🌟", score, correct, total)
		},
	},
	{
		func(score float64, total, correct int) string {
			return fmt.Sprintf("Good effort! You scored %.0f%% (%d/%d). You're making progress! Review the questions you missed and keep practicing. 📚", score, correct, total)
		},
		func(score float64, total, correct int) string {
			return fmt.Sprintf("You got %d out of %d questions right! You're building your understanding. Focus on the areas where you struggled. 💫", correct, total)
		},
	},
	{
		func(score float64, total, correct int) string {
			return fmt.Sprintf("Great job! You scored %.0f%% (%d/%d)! Your hard work is showing results. Keep it up! ⭐", score, correct, total)
		},
		func(score float64, total, correct int) string {
			return fmt.Sprintf("Well done! %d out of %d correct! You're demonstrating strong understanding. Continue with this momentum! 🎓", correct, total)
		},
	},
	{
		func(score float64, total, correct int) string {
			return fmt.Sprintf("Excellent work! You scored %.0f%% (%d/%d)! You've mastered this material. Ready for the next challenge? 🌟👏", score, correct, total)
		},
		func(score float64, total, correct int) string {
			return fmt.Sprintf("Outstanding performance! %d out of %d correct! Your dedication is truly paying off. Keep soaring! 🚀⭐", correct, total)
		},
	},
}

// CompletionMessage builds an encouraging quiz-completion message,
// choosing randomly between the score band's two templates.
func (g *Generator) CompletionMessage(scorePercentage float64, totalQuestions, correctAnswers int) string {
	pool := completionPools[completionBand(scorePercentage)]
	tmpl := pool[g.rng.IntN(len(pool))]
	return tmpl(scorePercentage, totalQuestions, correctAnswers)
}

func completionBand(score float64) int {
	switch {
	case score < 50:
		return 0
	case score < 70:
		return 1
	case score < 85:
		return 2
	default:
		return 3
	}
}

// TopicFeedback renders a one-line status for a topic at a given
// accuracy percentage.
func TopicFeedback(topic string, accuracy float64) string {
	switch {
	case accuracy >= 80:
		return fmt.Sprintf("✅ %s: Excellent mastery (%.0f%%)", topic, accuracy)
	case accuracy >= 60:
		return fmt.Sprintf("⚠️ %s: Good progress, room for improvement (%.0f%%)", topic, accuracy)
	default:
		return fmt.Sprintf("📚 %s: Needs more review (%.0f%%)", topic, accuracy)
	}
}

var studyTipTemplates = []string{
	"💡 Study Tip: Create flashcards for %s to improve retention.",
	"💡 Study Tip: Spend extra time reviewing %s before your next quiz.",
	"💡 Study Tip: Try teaching %s to someone else to deepen understanding.",
	"💡 Study Tip: Break down %s into smaller topics and master each one.",
}

const noWeakAreasTip = "Keep up the excellent work! Continue reviewing all topics regularly."

// StudyTip suggests one study action for the first weak topic, or a
// fixed keep-it-up line when there are none.
func (g *Generator) StudyTip(weakTopics []string) string {
	if len(weakTopics) == 0 {
		return noWeakAreasTip
	}
	return fmt.Sprintf(g.pick(studyTipTemplates), weakTopics[0])
}
