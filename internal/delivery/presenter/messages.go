// messages.go contains the texts shown in the quiz window.

package presenter

const (
	msgTitle       = "Sarf Quiz"
	msgWelcome     = "Practise Arabic verb conjugation.\nPress \"Practice\" for endless questions or \"Start test\" for a timed test."
	msgCorrect     = "✅ Correct!"
	msgWrong       = "❌ Wrong. Correct answer: %s"
	msgScore       = "Score: %d/%d (%.0f%%)"
	msgScoringOff  = "Scoring off"
	msgBest        = "Best test: %d/%d in %s"
	msgHistory     = "Tests this run: %d · last: %d/%d"
	msgTimer       = "⏱ %s"
	msgPractice    = "Practice · question %d"
	msgTest        = "Test · question %d of %d"
	msgReview      = "Review · %d of %d"
	msgReviewRight = "Your answer: %s (correct)"
	msgReviewWrong = "Your answer: %s (wrong), correct: %s"
	msgTestDone    = "Test finished: %d/%d correct in %s"
	msgHintPrefix  = "💡 "

	labelNext   = "Next"
	labelSkip   = "Skip"
	labelFinish = "Finish"
)
