package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
)

const defaultTestLength = 10

// SessionSettings are the starting values of the controller's flags.
type SessionSettings struct {
	TestLength     int
	ScoringEnabled bool
	ShowHint       bool
	FontSize       int
	MinFontSize    int
	MaxFontSize    int
}

// SessionController drives the quiz: it asks the question source for
// questions, records answers, keeps the score and the test clock, and lets
// the user browse the answers of a finished test.
//
// It is not safe for concurrent use; the window calls it from its event loop.
type SessionController struct {
	questions QuestionSource
	results   ResultStore
	logger    *zap.Logger
	now       func() time.Time

	settings SessionSettings

	state       entities.SessionState
	session     *entities.QuizSession
	current     *entities.Question
	chosen      int
	score       entities.Score
	scoring     bool
	hint        bool
	fontSize    int
	records     []entities.AnswerRecord
	reviewIndex int
}

// ControllerOption customises a SessionController.
type ControllerOption func(*SessionController)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *SessionController) {
		c.now = now
	}
}

// NewSessionController creates an idle controller. results may be nil.
func NewSessionController(
	questions QuestionSource,
	results ResultStore,
	settings SessionSettings,
	logger *zap.Logger,
	opts ...ControllerOption,
) *SessionController {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.TestLength <= 0 {
		settings.TestLength = defaultTestLength
	}
	if settings.MinFontSize <= 0 {
		settings.MinFontSize = 1
	}
	if settings.MaxFontSize < settings.MinFontSize {
		settings.MaxFontSize = settings.MinFontSize
	}

	c := &SessionController{
		questions: questions,
		results:   results,
		logger:    logger,
		now:       time.Now,
		settings:  settings,
		state:     entities.StateIdle,
		chosen:    -1,
		scoring:   settings.ScoringEnabled,
		hint:      settings.ShowHint,
		fontSize:  settings.MinFontSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.SetFontSize(settings.FontSize)

	return c
}

// Start begins a practice session or a test of count questions.
// A non-positive count uses the configured test length.
func (c *SessionController) Start(testMode bool, count int) {
	mode := entities.ModePractice
	total := 0
	if testMode {
		mode = entities.ModeTest
		total = count
		if total <= 0 {
			total = c.settings.TestLength
		}
	}

	c.session = entities.NewQuizSession(mode, total, c.now())
	c.records = nil
	c.reviewIndex = 0
	c.score = entities.Score{}
	c.present()

	c.logger.Info("session started",
		zap.String("session_id", c.session.ID.String()),
		zap.String("mode", string(mode)),
		zap.Int("questions", total),
	)
}

// Answer records the choice of option index. It does nothing unless a
// question is waiting for an answer and index is one of its options.
func (c *SessionController) Answer(index int) {
	if c.state != entities.StatePresenting || c.current == nil || !c.current.ValidIndex(index) {
		return
	}

	at := c.now()
	rec := entities.NewAnswerRecord(c.session.CurrentQuestionNum, *c.current, index, at, c.session.Duration(at))

	c.chosen = index
	c.state = entities.StateAnswered
	if rec.IsCorrect {
		c.session.CorrectAnswers++
	}
	if c.scoring {
		c.score.Add(rec.IsCorrect)
	}
	if c.session.IsTest() {
		c.records = append(c.records, rec)
	}

	c.logger.Debug("answer recorded",
		zap.Int("question", rec.QuestionNum),
		zap.Int("chosen", index),
		zap.Bool("correct", rec.IsCorrect),
	)
}

// Next advances the session: to the next question after an answer, to a
// fresh question when skipping in practice, to review when the test is
// over, or to the next entry while reviewing.
func (c *SessionController) Next() {
	switch c.state {
	case entities.StateAnswered:
		if c.session.IsTest() && len(c.records) >= c.session.TotalQuestions {
			c.finishTest()
			return
		}
		c.session.CurrentQuestionNum++
		c.present()
	case entities.StatePresenting:
		if c.session.IsTest() {
			return
		}
		c.session.CurrentQuestionNum++
		c.present()
	case entities.StateReview:
		c.Seek(c.reviewIndex + 1)
	}
}

// Previous moves to the previous review entry.
func (c *SessionController) Previous() {
	if c.state == entities.StateReview {
		c.Seek(c.reviewIndex - 1)
	}
}

// Seek moves to review entry i. It reports whether i was a valid entry.
func (c *SessionController) Seek(i int) bool {
	if c.state != entities.StateReview || i < 0 || i >= len(c.records) {
		return false
	}
	c.reviewIndex = i
	return true
}

// Stop ends the running session early. A test with recorded answers goes
// to review, anything else returns to idle.
func (c *SessionController) Stop() {
	if c.session == nil || c.state == entities.StateIdle || c.state == entities.StateReview {
		return
	}

	c.session.Stop(c.now())
	c.current = nil
	c.chosen = -1

	if c.session.IsTest() && len(c.records) > 0 {
		c.state = entities.StateReview
		c.reviewIndex = 0
	} else {
		c.state = entities.StateIdle
	}

	c.logger.Info("session stopped",
		zap.String("session_id", c.session.ID.String()),
		zap.Int("answered", len(c.records)),
	)
}

// ExitReview leaves the review screen.
func (c *SessionController) ExitReview() {
	if c.state != entities.StateReview {
		return
	}
	c.state = entities.StateIdle
	c.reviewIndex = 0
}

// ToggleScoring flips scoring on or off and resets the score to zero.
func (c *SessionController) ToggleScoring() {
	c.scoring = !c.scoring
	c.score = entities.Score{}
}

// ToggleHint shows or hides the hint line.
func (c *SessionController) ToggleHint() {
	c.hint = !c.hint
}

// SetFontSize changes the font size within the configured range.
// Non-positive sizes are ignored.
func (c *SessionController) SetFontSize(pt int) {
	if pt <= 0 {
		return
	}
	c.fontSize = min(max(pt, c.settings.MinFontSize), c.settings.MaxFontSize)
}

// Elapsed returns the time since the test started, frozen once it ended.
// It is zero outside of tests.
func (c *SessionController) Elapsed() time.Duration {
	if c.session == nil || !c.session.IsTest() {
		return 0
	}
	return c.session.Duration(c.now())
}

func (c *SessionController) State() entities.SessionState { return c.state }

func (c *SessionController) ScoringEnabled() bool { return c.scoring }

func (c *SessionController) HintVisible() bool { return c.hint }

func (c *SessionController) FontSize() int { return c.fontSize }

func (c *SessionController) Score() entities.Score { return c.score }

func (c *SessionController) TestLength() int { return c.settings.TestLength }

// Current returns the question on screen, nil when there is none.
func (c *SessionController) Current() *entities.Question { return c.current }

// Chosen returns the option picked for the current question, -1 before an answer.
func (c *SessionController) Chosen() int { return c.chosen }

// Session returns a copy of the current session, false before the first start.
func (c *SessionController) Session() (entities.QuizSession, bool) {
	if c.session == nil {
		return entities.QuizSession{}, false
	}
	return *c.session, true
}

// Records returns the answers of the current test in presentation order.
func (c *SessionController) Records() []entities.AnswerRecord {
	out := make([]entities.AnswerRecord, len(c.records))
	copy(out, c.records)
	return out
}

// ReviewEntry returns the entry under the review cursor and its position.
func (c *SessionController) ReviewEntry() (entities.AnswerRecord, int, bool) {
	if c.state != entities.StateReview || len(c.records) == 0 {
		return entities.AnswerRecord{}, 0, false
	}
	return c.records[c.reviewIndex], c.reviewIndex, true
}

// BestResult returns the best finished test of this run.
func (c *SessionController) BestResult() (entities.TestResult, bool) {
	if c.results == nil {
		return entities.TestResult{}, false
	}
	return c.results.Best()
}

// Results returns the finished tests of this run, oldest first.
func (c *SessionController) Results() []entities.TestResult {
	if c.results == nil {
		return nil
	}
	return c.results.All()
}

func (c *SessionController) present() {
	c.current = c.questions.Random()
	c.chosen = -1
	c.state = entities.StatePresenting
}

func (c *SessionController) finishTest() {
	c.session.Complete(c.now())
	c.current = nil
	c.chosen = -1
	c.state = entities.StateReview
	c.reviewIndex = 0

	result := entities.NewTestResult(c.session, c.records)
	if c.results != nil {
		c.results.Store(result)
	}

	c.logger.Info("test completed",
		zap.String("session_id", c.session.ID.String()),
		zap.Int("correct", result.Correct),
		zap.Int("questions", result.Questions),
		zap.Duration("duration", result.Duration),
	)
}
