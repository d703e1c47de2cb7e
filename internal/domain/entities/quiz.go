package entities

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is the state of the quiz session controller.
type SessionState string

const (
	StateIdle       SessionState = "idle"       // no question on screen
	StatePresenting SessionState = "presenting" // question shown, waiting for an answer
	StateAnswered   SessionState = "answered"   // feedback shown, waiting for "next"
	StateReview     SessionState = "review"     // browsing the answers of a finished test
)

// QuizMode distinguishes free practice from a timed test.
type QuizMode string

const (
	ModePractice QuizMode = "practice"
	ModeTest     QuizMode = "test"
)

// Session statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusStopped   = "stopped"
)

// QuizSession represents one run of the quiz, either practice or test.
type QuizSession struct {
	ID                 uuid.UUID  // unique session ID
	Mode               QuizMode   // practice or test
	TotalQuestions     int        // number of questions in a test, 0 for practice
	CurrentQuestionNum int        // 1-based number of the question on screen
	CorrectAnswers     int        // number of correct answers so far
	Status             string     // "active", "completed" or "stopped"
	StartedAt          time.Time  // when the session started
	CompletedAt        *time.Time // when the session ended (nullable)
}

// NewQuizSession creates an active session starting at the given time.
func NewQuizSession(mode QuizMode, totalQuestions int, startedAt time.Time) *QuizSession {
	return &QuizSession{
		ID:                 uuid.New(),
		Mode:               mode,
		TotalQuestions:     totalQuestions,
		CurrentQuestionNum: 1,
		Status:             StatusActive,
		StartedAt:          startedAt,
	}
}

// IsTest reports whether the session is a timed test.
func (qs *QuizSession) IsTest() bool {
	return qs.Mode == ModeTest
}

// Complete marks the session as completed at the given time.
func (qs *QuizSession) Complete(at time.Time) {
	qs.finish(StatusCompleted, at)
}

// Stop marks the session as ended early at the given time.
func (qs *QuizSession) Stop(at time.Time) {
	qs.finish(StatusStopped, at)
}

func (qs *QuizSession) finish(status string, at time.Time) {
	if qs.CompletedAt != nil {
		return
	}
	qs.Status = status
	qs.CompletedAt = &at
}

// Duration returns the time between start and now, or start and completion once finished.
func (qs *QuizSession) Duration(now time.Time) time.Duration {
	if qs.CompletedAt != nil {
		return qs.CompletedAt.Sub(qs.StartedAt)
	}
	return now.Sub(qs.StartedAt)
}

// AnswerRecord is one answered question of a test, kept for the review screen.
type AnswerRecord struct {
	QuestionNum int           // 1-based position in the test
	Question    Question      // the question as it was presented
	ChosenIndex int           // option picked by the user
	IsCorrect   bool          // whether the chosen option was correct
	AnsweredAt  time.Time     // when the answer was given
	Elapsed     time.Duration // time since the test started
}

// NewAnswerRecord records the choice for q and decides its correctness.
func NewAnswerRecord(num int, q Question, chosen int, answeredAt time.Time, elapsed time.Duration) AnswerRecord {
	return AnswerRecord{
		QuestionNum: num,
		Question:    q,
		ChosenIndex: chosen,
		IsCorrect:   q.IsCorrect(chosen),
		AnsweredAt:  answeredAt,
		Elapsed:     elapsed,
	}
}

// ChosenAnswer returns the text of the chosen option.
func (a AnswerRecord) ChosenAnswer() string {
	if !a.Question.ValidIndex(a.ChosenIndex) {
		return ""
	}
	return a.Question.Options[a.ChosenIndex]
}

// Score counts correct answers out of answered questions.
type Score struct {
	Correct int
	Total   int
}

// Add records one answer.
func (s *Score) Add(correct bool) {
	s.Total++
	if correct {
		s.Correct++
	}
}

// Percentage returns the share of correct answers, 0 when nothing was answered.
func (s Score) Percentage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) * 100 / float64(s.Total)
}

// TestResult summarises a finished test.
type TestResult struct {
	SessionID   uuid.UUID
	Questions   int
	Correct     int
	Duration    time.Duration
	CompletedAt time.Time
}

// NewTestResult builds the summary of a finished test session.
func NewTestResult(s *QuizSession, records []AnswerRecord) TestResult {
	r := TestResult{
		SessionID: s.ID,
		Questions: len(records),
	}
	for _, rec := range records {
		if rec.IsCorrect {
			r.Correct++
		}
	}
	if s.CompletedAt != nil {
		r.CompletedAt = *s.CompletedAt
		r.Duration = s.CompletedAt.Sub(s.StartedAt)
	}
	return r
}

// Better reports whether r beats other: higher share of correct answers, then faster.
func (r TestResult) Better(other TestResult) bool {
	mine, theirs := r.Correct*other.Questions, other.Correct*r.Questions
	if mine != theirs {
		return mine > theirs
	}
	return r.Duration < other.Duration
}
