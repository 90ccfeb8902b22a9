package performance

import (
	"context"
	"fmt"
)

// RemedialTarget is the accuracy a struggling topic should be brought up to.
const RemedialTarget = 70.0

// RemedialFocus pairs a struggling topic with its current accuracy and a
// suggested remedial action.
type RemedialFocus struct {
	Topic           string
	CurrentAccuracy float64
	TargetAccuracy  float64
	Recommendation  string
}

// GapAnalysis reports learning gaps over a session's full history.
type GapAnalysis struct {
	GapsIdentified        bool
	Message               string // set only for the empty-session sentinel
	StrugglingTopics      []string
	PrerequisiteGaps      []string
	RemedialFocus         []RemedialFocus
	OverallRecommendation string
}

// AnalyzeGaps aggregates topic accuracy over the session's entire history
// and flags topics below the struggling threshold. This is stricter than
// the mastery threshold: a topic can be a weakness without being a gap.
// A session with no attempts yields a sentinel result, not an error.
func (t *Tracker) AnalyzeGaps(ctx context.Context, sessionID string) (*GapAnalysis, error) {
	attempts, err := t.log.Session(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session history: %w", err)
	}
	if len(attempts) == 0 {
		return &GapAnalysis{
			GapsIdentified: false,
			Message:        "No quiz attempts yet to analyze",
		}, nil
	}

	accuracy := TopicAccuracy(attempts)

	var struggling []string
	for _, topic := range sortedTopics(accuracy) {
		if accuracy[topic] < StrugglingThreshold {
			struggling = append(struggling, topic)
		}
	}

	var prereqs []string
	focus := make([]RemedialFocus, 0, len(struggling))
	for _, topic := range struggling {
		prereqs = append(prereqs, fmt.Sprintf("Consider reviewing foundational concepts for %s", topic))
		focus = append(focus, RemedialFocus{
			Topic:           topic,
			CurrentAccuracy: accuracy[topic],
			TargetAccuracy:  RemedialTarget,
			Recommendation:  fmt.Sprintf("Generate additional easy-level questions for %s", topic),
		})
	}

	return &GapAnalysis{
		GapsIdentified:        len(struggling) > 0,
		StrugglingTopics:      struggling,
		PrerequisiteGaps:      prereqs,
		RemedialFocus:         focus,
		OverallRecommendation: gapRecommendation(len(struggling)),
	}, nil
}

// gapRecommendation grades the overall advice by gap count.
func gapRecommendation(gapCount int) string {
	switch {
	case gapCount == 0:
		return "No significant learning gaps detected. Continue with current study approach."
	case gapCount <= 2:
		return "Focus on strengthening understanding in identified weak areas before proceeding."
	default:
		return "Consider reviewing foundational material. Multiple gaps suggest need for comprehensive review."
	}
}
