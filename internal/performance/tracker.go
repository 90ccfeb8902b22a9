package performance

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// Thresholds shared by the classifiers. A topic at or above the mastery
// threshold is a strength; below the struggling threshold it is a
// learning gap. The space between is ordinary weakness.
const (
	MasteryThreshold    = 70.0
	StrugglingThreshold = 50.0
)

// Placeholder entries keep the strength/weakness lists structurally
// non-empty so callers can always rely on at least one entry.
const (
	placeholderStrength = "Keep practicing - improvement is coming!"
	placeholderWeakness = "No significant weak areas - excellent work!"
)

// Analysis is the value computed fresh for each submitted attempt.
// The tracker never stores it; persisting is the caller's decision.
type Analysis struct {
	OverallScore          float64
	AccuracyByTopic       map[string]float64
	DifficultyProgression string
	Strengths             []string
	AreasForImprovement   []string
	RecommendedActions    []string
	NextDifficulty        Difficulty
	EncouragementMessage  string
}

// Tracker records quiz attempts and derives adaptive recommendations.
// The attempt log and random source are injected so hosts can choose
// durability and tests can pin template selection.
type Tracker struct {
	log AttemptLog
	rng *rand.Rand
}

// NewTracker creates a tracker over the given attempt log. A nil rng
// gets a fresh PCG-seeded source.
func NewTracker(log AttemptLog, rng *rand.Rand) *Tracker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Tracker{log: log, rng: rng}
}

// Record validates and appends an attempt without analyzing it.
func (t *Tracker) Record(ctx context.Context, attempt Attempt) error {
	if err := attempt.Validate(); err != nil {
		return err
	}
	return t.log.Record(ctx, attempt)
}

// Analyze records the attempt and computes the full performance analysis
// over the session's cumulative history.
func (t *Tracker) Analyze(ctx context.Context, attempt Attempt) (*Analysis, error) {
	if err := t.Record(ctx, attempt); err != nil {
		return nil, err
	}

	attempts, err := t.log.Session(ctx, attempt.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load session history: %w", err)
	}

	accuracy := TopicAccuracy(attempts)
	weaknesses := identifyWeaknesses(accuracy)
	next := NextDifficulty(attempt.ScorePercentage, attempt.Difficulty)

	return &Analysis{
		OverallScore:          attempt.ScorePercentage,
		AccuracyByTopic:       accuracy,
		DifficultyProgression: ProgressionLabel(attempts),
		Strengths:             identifyStrengths(accuracy),
		AreasForImprovement:   weaknesses,
		RecommendedActions:    t.recommend(attempt.ScorePercentage, weaknesses, next),
		NextDifficulty:        next,
		EncouragementMessage:  t.encourage(attempt.ScorePercentage),
	}, nil
}

// identifyStrengths lists topics at or above the mastery threshold,
// falling back to a single placeholder when none qualify.
func identifyStrengths(accuracy map[string]float64) []string {
	var strengths []string
	for _, topic := range sortedTopics(accuracy) {
		if accuracy[topic] >= MasteryThreshold {
			strengths = append(strengths, topicSummary(topic, accuracy[topic]))
		}
	}
	if len(strengths) == 0 {
		strengths = append(strengths, placeholderStrength)
	}
	return strengths
}

// identifyWeaknesses lists topics below the mastery threshold, falling
// back to a single placeholder when none qualify.
func identifyWeaknesses(accuracy map[string]float64) []string {
	var weaknesses []string
	for _, topic := range sortedTopics(accuracy) {
		if accuracy[topic] < MasteryThreshold {
			weaknesses = append(weaknesses, topicSummary(topic, accuracy[topic]))
		}
	}
	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, placeholderWeakness)
	}
	return weaknesses
}

func topicSummary(topic string, accuracy float64) string {
	return fmt.Sprintf("%s (%.0f%% accuracy)", topic, accuracy)
}

// sortedTopics gives map iteration a stable order so repeated analyses
// of the same history produce identical lists.
func sortedTopics(accuracy map[string]float64) []string {
	topics := make([]string, 0, len(accuracy))
	for topic := range accuracy {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// maxRecommendations caps the recommended action list.
const maxRecommendations = 5

// recommend selects the score band's action templates and, when real weak
// topics exist, appends one line naming up to the first three of them.
func (t *Tracker) recommend(score float64, weaknesses []string, next Difficulty) []string {
	var recs []string
	switch {
	case score < 50:
		recs = []string{
			"Focus on foundational concepts before moving forward",
			"Review study notes and key terms for weak topics",
			"Practice with easier questions to build confidence",
			"Consider creating flashcards for key concepts",
		}
	case score < 70:
		recs = []string{
			"Review incorrect answers and their explanations carefully",
			"Focus extra study time on weak areas",
			"Try answering similar questions to reinforce understanding",
			"Use flashcards for active recall practice",
		}
	case score < 85:
		recs = []string{
			"Excellent progress! Continue with current study approach",
			"Challenge yourself with harder questions on strong topics",
			"Help solidify understanding by teaching concepts to others",
			"Explore advanced applications of the material",
		}
	default:
		recs = []string{
			"Outstanding performance! You've mastered this material",
			fmt.Sprintf("Ready for %s level challenges", next),
			"Consider exploring advanced topics and real-world applications",
			"Practice teaching these concepts to reinforce mastery",
		}
	}

	if topics := weakTopicNames(weaknesses, 3); len(topics) > 0 {
		recs = append(recs, fmt.Sprintf("Prioritize reviewing: %s", strings.Join(topics, ", ")))
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// weakTopicNames extracts bare topic names from weakness summaries,
// skipping the placeholder entry, keeping at most max names.
func weakTopicNames(weaknesses []string, max int) []string {
	var names []string
	for _, w := range weaknesses {
		if w == placeholderWeakness {
			continue
		}
		name := w
		if i := strings.Index(w, "("); i >= 0 {
			name = strings.TrimSpace(w[:i])
		}
		names = append(names, name)
		if len(names) == max {
			break
		}
	}
	return names
}

// encouragementPools holds the tone-matched messages per score band, in
// band order: <50, 50-70, 70-85, >=85.
var encouragementPools = [4][]string{
	{
		"Don't give up! Every expert was once a beginner. Keep practicing and you'll improve! 💪",
		"Learning takes time. Your effort today builds tomorrow's success. Stay determined! 🌟",
		"This is just the beginning of your journey. Keep pushing forward! You've got this! 🎯",
	},
	{
		"You're making good progress! Keep working hard and success will follow! 📚",
		"Good effort! With more practice, you'll master this material. Stay focused! 💫",
		"You're on the right track! Continue studying and you'll see improvement! 🚀",
	},
	{
		"Great job! Your hard work is paying off. Keep up the excellent effort! ⭐",
		"Well done! You're showing strong understanding of the material! 🎓",
		"Impressive performance! You're well on your way to mastery! 🏆",
	},
	{
		"Exceptional work! You've demonstrated excellent mastery of this material! 🌟👏",
		"Outstanding! Your dedication and understanding are truly impressive! 🏆✨",
		"Brilliant performance! You're excelling at this level. Keep soaring! 🚀⭐",
	},
}

// encourage picks one message at random from the score band's pool.
// Repeated calls vary on purpose.
func (t *Tracker) encourage(score float64) string {
	pool := encouragementPools[scoreBand(score)]
	return pool[t.rng.IntN(len(pool))]
}

// scoreBand maps a score to its band index: 0 for <50, 1 for 50-70,
// 2 for 70-85, 3 for >=85.
func scoreBand(score float64) int {
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
