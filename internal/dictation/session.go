package dictation

import (
	"math/rand"
)

const (
	// QuestionsPerSession is the target number of sentences per run.
	// Levels with smaller pools yield a shorter run.
	QuestionsPerSession = 10

	// PointsPerQuestion is awarded for a correct transcription.
	PointsPerQuestion = 10
)

// Session is one dictation attempt at a level: the sampled sentences,
// the player's answers and the running score. It is owned by the
// caller and mutated only through its methods; nothing here touches
// storage or the clock.
type Session struct {
	LevelID    string
	Questions  []string
	Answers    []string
	Results    []*bool // nil until the slot has been graded
	Index      int
	Score      int
	SpeakCount int

	// awarded tracks, per question, whether the +10 has been paid out.
	// It never resets for the lifetime of the session, so revisiting a
	// slot and resubmitting can flip its result flag but can never
	// award the same question twice.
	awarded []bool
}

// NewSession samples questions for one run at the given level. Pools
// with at least QuestionsPerSession sentences yield exactly that many
// distinct picks, uniformly at random without replacement; smaller
// pools are used whole.
func NewSession(levelID string, pool []string, rng *rand.Rand) *Session {
	n := QuestionsPerSession
	if len(pool) < n {
		n = len(pool)
	}

	picks := make([]string, len(pool))
	copy(picks, pool)
	rng.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})
	picks = picks[:n]

	return &Session{
		LevelID:   levelID,
		Questions: picks,
		Answers:   make([]string, n),
		Results:   make([]*bool, n),
		awarded:   make([]bool, n),
	}
}

// Len returns the number of questions in this run.
func (s *Session) Len() int {
	return len(s.Questions)
}

// Current returns the sentence under the cursor.
func (s *Session) Current() string {
	return s.Questions[s.Index]
}

// RecordAnswer stores the raw transcription at the current index
// without grading it. The raw text is kept so the result screen can
// show exactly what the player typed.
func (s *Session) RecordAnswer(text string) {
	s.Answers[s.Index] = text
}

// SubmitResult is the outcome of grading one transcription.
type SubmitResult struct {
	Correct bool
	Target  string
	Score   int
	Delta   int
}

// Submit records and grades the transcription at the current index.
// The result flag always reflects the latest submission, but the +10
// is paid out at most once per question for the whole session, so
// resubmitting (with or without navigating away first) cannot inflate
// the total.
func (s *Session) Submit(text string) SubmitResult {
	s.RecordAnswer(text)

	target := s.Questions[s.Index]
	ok := Match(text, target)
	s.Results[s.Index] = &ok

	delta := 0
	if ok && !s.awarded[s.Index] {
		delta = PointsPerQuestion
		s.Score += delta
		s.awarded[s.Index] = true
	}

	return SubmitResult{Correct: ok, Target: target, Score: s.Score, Delta: delta}
}

// Advance moves the cursor by delta, clamped to the question range,
// and returns the new index.
func (s *Session) Advance(delta int) int {
	s.Index = clamp(s.Index+delta, 0, len(s.Questions)-1)
	return s.Index
}

// AtLastQuestion reports whether the cursor sits on the final slot.
func (s *Session) AtLastQuestion() bool {
	return s.Index == len(s.Questions)-1
}

// LastGraded reports whether the final question has a recorded result.
// Finishing a session is only valid once this holds, unless the caller
// forces completion.
func (s *Session) LastGraded() bool {
	return s.Results[len(s.Results)-1] != nil
}

// CountSpeak bumps the playback counter. Repeat presses replay the
// same utterance and are not counted.
func (s *Session) CountSpeak(repeat bool) {
	if !repeat {
		s.SpeakCount++
	}
}

// QuestionOutcome is one line of the result summary.
type QuestionOutcome struct {
	Target   string
	Answer   string
	Answered bool
	Correct  bool
}

// Summary is the final state of a finished session.
type Summary struct {
	LevelID    string
	Score      int
	Badge      string
	SpeakCount int
	Outcomes   []QuestionOutcome
}

// Finish folds the session into a result summary. Callers are expected
// to have graded the final question first (see LastGraded); slots that
// were never graded show up as unanswered.
func (s *Session) Finish() Summary {
	outcomes := make([]QuestionOutcome, len(s.Questions))
	for i, q := range s.Questions {
		outcomes[i] = QuestionOutcome{
			Target:   q,
			Answer:   s.Answers[i],
			Answered: s.Results[i] != nil,
			Correct:  s.Results[i] != nil && *s.Results[i],
		}
	}

	return Summary{
		LevelID:    s.LevelID,
		Score:      s.Score,
		Badge:      BadgeFor(s.Score),
		SpeakCount: s.SpeakCount,
		Outcomes:   outcomes,
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
