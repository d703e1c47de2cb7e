// Package gui shows the quiz in a fyne desktop window.
package gui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/aliskhannn/sarf-quiz/internal/config"
	"github.com/aliskhannn/sarf-quiz/internal/delivery/presenter"
	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
	"github.com/aliskhannn/sarf-quiz/internal/textshape"
)

const appID = "com.github.aliskhannn.sarf-quiz"

var testLengths = []int{5, 10, 15, 20, 30}

// Window binds the controller to fyne widgets. Every widget callback runs
// on the fyne event loop, so the controller is never used concurrently.
type Window struct {
	app        fyne.App
	window     fyne.Window
	controller Controller
	shaper     textshape.Shaper
	font       fyne.Resource
	logger     *zap.Logger

	testLength int
	fontSize   int

	headerLabel   *widget.Label
	promptLabel   *widget.Label
	metaLabel     *widget.Label
	hintLabel     *widget.Label
	feedbackLabel *widget.Label
	statusLabel   *widget.Label
	timerLabel    *widget.Label

	optionButtons []*widget.Button
	nextBtn       *widget.Button
	prevBtn       *widget.Button
	practiceBtn   *widget.Button
	testBtn       *widget.Button
	stopBtn       *widget.Button
	doneBtn       *widget.Button

	scoringCheck *widget.Check
	hintCheck    *widget.Check
	lengthSelect *widget.Select
	fontSelect   *widget.Select
}

// NewWindow builds the quiz window. It does not show it.
func NewWindow(cfg *config.Config, controller Controller, shaper textshape.Shaper, logger *zap.Logger) (*Window, error) {
	font, err := loadFont(cfg.UI.FontPath)
	if err != nil {
		return nil, err
	}

	w := &Window{
		app:        app.NewWithID(appID),
		controller: controller,
		shaper:     shaper,
		font:       font,
		logger:     logger,
		testLength: controller.TestLength(),
		fontSize:   controller.FontSize(),
	}

	w.window = w.app.NewWindow("Sarf Quiz")
	w.window.Resize(fyne.NewSize(float32(cfg.UI.WindowWidth), float32(cfg.UI.WindowHeight)))
	w.applyTheme()
	w.window.SetContent(w.build(cfg.UI.FontSizes))
	w.bindKeys()
	w.refresh()

	return w, nil
}

// ShowAndRun shows the window and blocks until it is closed.
func (w *Window) ShowAndRun() {
	ticker := time.NewTicker(time.Second)
	done := make(chan struct{})
	w.window.SetOnClosed(func() {
		ticker.Stop()
		close(done)
	})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fyne.Do(w.refreshTimer)
			}
		}
	}()

	w.logger.Info("window opened")
	w.window.ShowAndRun()
}

func (w *Window) build(fontSizes []int) fyne.CanvasObject {
	w.headerLabel = widget.NewLabel("")
	w.headerLabel.TextStyle = fyne.TextStyle{Bold: true}
	w.timerLabel = widget.NewLabel("")
	w.timerLabel.Alignment = fyne.TextAlignTrailing

	w.promptLabel = widget.NewLabel("")
	w.promptLabel.Wrapping = fyne.TextWrapWord
	w.metaLabel = widget.NewLabel("")
	w.metaLabel.TextStyle = fyne.TextStyle{Italic: true}
	w.hintLabel = widget.NewLabel("")
	w.hintLabel.Wrapping = fyne.TextWrapWord
	w.feedbackLabel = widget.NewLabel("")
	w.feedbackLabel.Wrapping = fyne.TextWrapWord
	w.statusLabel = widget.NewLabel("")
	w.statusLabel.Wrapping = fyne.TextWrapWord

	options := container.NewGridWithColumns(2)
	for i := 0; i < entities.OptionCount; i++ {
		idx := i
		btn := widget.NewButton("", func() {
			w.controller.Answer(idx)
			w.refresh()
		})
		w.optionButtons = append(w.optionButtons, btn)
		options.Add(btn)
	}

	w.nextBtn = widget.NewButton("Next", w.action(w.controller.Next))
	w.nextBtn.Importance = widget.HighImportance
	w.prevBtn = widget.NewButton("Previous", w.action(w.controller.Previous))
	w.practiceBtn = widget.NewButton("Practice", w.action(func() { w.controller.Start(false, 0) }))
	w.testBtn = widget.NewButton("Start test", w.action(func() { w.controller.Start(true, w.testLength) }))
	w.stopBtn = widget.NewButton("Stop", w.action(w.controller.Stop))
	w.stopBtn.Importance = widget.DangerImportance
	w.doneBtn = widget.NewButton("Done", w.action(w.controller.ExitReview))

	w.scoringCheck = widget.NewCheck("Scoring", func(bool) {
		w.controller.ToggleScoring()
		w.refresh()
	})
	w.hintCheck = widget.NewCheck("Show hint", func(bool) {
		w.controller.ToggleHint()
		w.refresh()
	})

	w.lengthSelect = widget.NewSelect(intLabels(withValue(testLengths, w.testLength)), nil)
	w.lengthSelect.SetSelected(strconv.Itoa(w.testLength))
	w.lengthSelect.OnChanged = func(s string) {
		if n, err := strconv.Atoi(s); err == nil {
			w.testLength = n
		}
	}

	w.fontSelect = widget.NewSelect(intLabels(withValue(fontSizes, w.fontSize)), nil)
	w.fontSelect.SetSelected(strconv.Itoa(w.fontSize))
	w.fontSelect.OnChanged = func(s string) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return
		}
		w.controller.SetFontSize(n)
		w.refresh()
	}

	top := container.NewBorder(nil, nil, nil, w.timerLabel, w.headerLabel)
	question := container.NewVBox(w.promptLabel, w.metaLabel, w.hintLabel)
	navigation := container.NewHBox(w.prevBtn, w.nextBtn, w.doneBtn)
	modes := container.NewHBox(w.practiceBtn, w.testBtn, w.stopBtn)
	settings := container.NewHBox(
		w.scoringCheck,
		w.hintCheck,
		widget.NewLabel("Test length:"), w.lengthSelect,
		widget.NewLabel("Font size:"), w.fontSelect,
	)

	return container.NewBorder(
		container.NewVBox(top, widget.NewSeparator()),
		container.NewVBox(widget.NewSeparator(), w.statusLabel, settings, modes),
		nil, nil,
		container.NewVScroll(container.NewVBox(question, options, w.feedbackLabel, navigation)),
	)
}

// bindKeys maps digit keys to the options, Enter and arrows to navigation.
func (w *Window) bindKeys() {
	canvas := w.window.Canvas()
	canvas.SetOnTypedRune(func(r rune) {
		if r >= '1' && r < '1'+entities.OptionCount {
			w.controller.Answer(int(r - '1'))
			w.refresh()
		}
	})
	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyReturn, fyne.KeyEnter, fyne.KeyRight:
			w.controller.Next()
		case fyne.KeyLeft:
			w.controller.Previous()
		case fyne.KeyEscape:
			w.controller.Stop()
		default:
			return
		}
		w.refresh()
	})
}

func (w *Window) action(f func()) func() {
	return func() {
		f()
		w.refresh()
	}
}

func (w *Window) refresh() {
	s := presenter.Build(w.controller, w.shaper)

	w.headerLabel.SetText(s.Header)
	w.timerLabel.SetText(s.Timer)
	w.promptLabel.SetText(s.Prompt)
	w.metaLabel.SetText(s.Meta)
	w.hintLabel.SetText(s.Hint)
	setVisible(w.hintLabel, s.HintVisible && s.Hint != "")
	w.feedbackLabel.SetText(s.Feedback)
	w.statusLabel.SetText(s.Status)

	for i, btn := range w.optionButtons {
		opt := s.Options[i]
		btn.SetText(opt.Text)
		btn.Importance = importance(opt.Mark)
		setEnabled(btn, opt.Text != "" && (opt.Enabled || opt.Mark != presenter.MarkNone))
		btn.Refresh()
	}

	w.nextBtn.SetText(s.NextLabel)
	setEnabled(w.nextBtn, s.CanNext)
	setVisible(w.prevBtn, s.Reviewing)
	setEnabled(w.prevBtn, s.CanPrevious)
	setVisible(w.doneBtn, s.CanExit)
	setEnabled(w.stopBtn, s.CanStop)

	w.scoringCheck.Checked = w.controller.ScoringEnabled()
	w.scoringCheck.Refresh()
	w.hintCheck.Checked = s.HintVisible
	w.hintCheck.Refresh()

	if s.FontSize != w.fontSize {
		w.fontSize = s.FontSize
		w.applyTheme()
	}
}

func (w *Window) refreshTimer() {
	w.timerLabel.SetText(presenter.Build(w.controller, w.shaper).Timer)
}

func (w *Window) applyTheme() {
	w.app.Settings().SetTheme(newQuizTheme(w.fontSize, w.font))
	w.logger.Debug("theme applied", zap.Int("font_size", w.fontSize))
}

func importance(m presenter.Mark) widget.Importance {
	switch m {
	case presenter.MarkCorrect, presenter.MarkMissed:
		return widget.SuccessImportance
	case presenter.MarkWrong:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}

func withValue(values []int, v int) []int {
	for _, x := range values {
		if x == v {
			return values
		}
	}
	out := append([]int(nil), values...)
	for i, x := range out {
		if x > v {
			return append(out[:i], append([]int{v}, out[i:]...)...)
		}
	}
	return append(out, v)
}

func intLabels(values []int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}
