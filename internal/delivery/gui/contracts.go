package gui

import (
	"github.com/aliskhannn/sarf-quiz/internal/delivery/presenter"
)

// Controller is the session controller as seen by the window.
type Controller interface {
	presenter.Controller

	Start(testMode bool, count int)
	Answer(index int)
	Next()
	Previous()
	Stop()
	ExitReview()
	ToggleScoring()
	ToggleHint()
	SetFontSize(pt int)
	TestLength() int
}
