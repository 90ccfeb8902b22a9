package performance

// TopicAccuracy folds a set of attempts into per-topic accuracy
// percentages. The fold is commutative: correct and total counts are
// summed per topic across every attempt supplied, then converted to a
// percentage. Topics whose summed total is zero are omitted entirely,
// so the result never contains a division-by-zero artifact.
func TopicAccuracy(attempts []Attempt) map[string]float64 {
	type counts struct {
		correct int
		total   int
	}

	sums := make(map[string]counts)
	for _, a := range attempts {
		for topic, c := range a.QuestionsByTopic {
			s := sums[topic]
			s.correct += c.Correct
			s.total += c.Total
			sums[topic] = s
		}
	}

	accuracy := make(map[string]float64, len(sums))
	for topic, s := range sums {
		if s.total > 0 {
			accuracy[topic] = float64(s.correct) / float64(s.total) * 100
		}
	}
	return accuracy
}
