package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"hanguldrill/internal/dictation"
	"hanguldrill/internal/levels"
)

var (
	// ErrLevelNotFound is surfaced to the player; the session is not started.
	ErrLevelNotFound = errors.New("level not found")

	// ErrNoActiveSession means the caller skipped the setup step.
	ErrNoActiveSession = errors.New("no active session")

	// ErrSessionIncomplete means finish was requested before the last
	// question was graded.
	ErrSessionIncomplete = errors.New("last question not graded yet")
)

// RecordWriter receives completed session scores.
type RecordWriter interface {
	Save(levelID string, score int) error
}

// QuizService owns the active dictation sessions, one per player, and
// writes completed runs through to the record store. All operations
// run synchronously under one lock; the only asynchrony is the
// auto-advance timer, which re-enters through the same lock.
type QuizService struct {
	records RecordWriter

	mu     sync.Mutex
	active map[string]*activeSession
	rng    *rand.Rand

	// autoAdvanceDelay matches the short pause the play screen shows
	// between grading and moving on. Tests shorten it.
	autoAdvanceDelay time.Duration
}

type activeSession struct {
	session     *dictation.Session
	autoAdvance *time.Timer
}

func (a *activeSession) stopTimer() {
	if a.autoAdvance != nil {
		a.autoAdvance.Stop()
		a.autoAdvance = nil
	}
}

// NewQuizService creates a new quiz service
func NewQuizService(records RecordWriter) *QuizService {
	return &QuizService{
		records:          records,
		active:           make(map[string]*activeSession),
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		autoAdvanceDelay: 650 * time.Millisecond,
	}
}

// Start begins a fresh session for the player on the given level,
// discarding any previous one.
func (s *QuizService) Start(playerID, levelID string) (*dictation.Session, error) {
	level := levels.Get(levelID)
	if level == nil {
		return nil, ErrLevelNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev := s.active[playerID]; prev != nil {
		prev.stopTimer()
	}

	sess := dictation.NewSession(level.ID, level.Items, s.rng)
	s.active[playerID] = &activeSession{session: sess}
	return sess, nil
}

// Session returns the player's active session.
func (s *QuizService) Session(playerID string) (*dictation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	as := s.active[playerID]
	if as == nil {
		return nil, ErrNoActiveSession
	}
	return as.session, nil
}

// RecordAnswer stores the raw transcription without grading it.
func (s *QuizService) RecordAnswer(playerID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	as := s.active[playerID]
	if as == nil {
		return ErrNoActiveSession
	}
	as.session.RecordAnswer(text)
	return nil
}

// Submit grades the transcription at the current index. Unless the
// cursor already sits on the last question, an auto-advance fires
// after a short delay; the timer is invalidated by any manual
// navigation, another submission, finishing, or a superseding session.
func (s *QuizService) Submit(playerID, text string) (dictation.SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	as := s.active[playerID]
	if as == nil {
		return dictation.SubmitResult{}, ErrNoActiveSession
	}

	as.stopTimer()
	result := as.session.Submit(text)

	if !as.session.AtLastQuestion() {
		sess := as.session
		as.autoAdvance = time.AfterFunc(s.autoAdvanceDelay, func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			cur := s.active[playerID]
			if cur == nil || cur.session != sess {
				// superseded while the timer was pending
				return
			}
			cur.session.Advance(1)
			cur.autoAdvance = nil
		})
	}

	return result, nil
}

// Move navigates manually, cancelling any pending auto-advance so a
// stale transition cannot fire against the new position.
func (s *QuizService) Move(playerID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	as := s.active[playerID]
	if as == nil {
		return 0, ErrNoActiveSession
	}
	as.stopTimer()
	return as.session.Advance(delta), nil
}

// Speak bumps the playback counter; repeat presses are not counted.
func (s *QuizService) Speak(playerID string, repeat bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	as := s.active[playerID]
	if as == nil {
		return "", ErrNoActiveSession
	}
	as.session.CountSpeak(repeat)
	return as.session.Current(), nil
}

// Finish finalizes the session, writes the score through to the record
// store and drops the session. Without force it refuses until the last
// question has been graded.
func (s *QuizService) Finish(playerID string, force bool) (dictation.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	as := s.active[playerID]
	if as == nil {
		return dictation.Summary{}, ErrNoActiveSession
	}
	if !force && !(as.session.AtLastQuestion() && as.session.LastGraded()) {
		return dictation.Summary{}, ErrSessionIncomplete
	}

	as.stopTimer()
	summary := as.session.Finish()
	delete(s.active, playerID)

	if err := s.records.Save(summary.LevelID, summary.Score); err != nil {
		return summary, err
	}
	return summary, nil
}

// Abandon drops the player's active session without recording anything
// (the home button).
func (s *QuizService) Abandon(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if as := s.active[playerID]; as != nil {
		as.stopTimer()
		delete(s.active, playerID)
	}
}
