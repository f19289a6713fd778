package constants

// HUD & Summary Constants
const (
	// SpinnerSpeed is the number of frames between spinner advances
	SpinnerSpeed = 6

	// SpinnerInset is the spinner offset from the right edge of the top row
	SpinnerInset = 2

	// CompleteMessage is shown when the target word count is reached
	CompleteMessage = "=== CINEMATIC COMPLETE ==="

	// QuitMessage is shown when the session ends by quit command
	QuitMessage = "=== SESSION ENDED ==="

	// SummaryWordOffset is the number of rows between the message and the first word
	SummaryWordOffset = 2
)

// Key bindings
const (
	KeyPause    = 'p'
	KeyStats    = 's'
	KeySave     = 'v'
	KeyReload   = 'r'
	KeySpeedUp  = '+'
	KeySlowDown = '-'
	KeyQuit     = 'q'
)
