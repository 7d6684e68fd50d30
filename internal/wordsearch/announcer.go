package wordsearch

import "fmt"

// MessageID names an announcement so the platform can localize it.
type MessageID string

const (
	MsgSelectionStart     MessageID = "selection.start"
	MsgSelectionBadEnd    MessageID = "selection.bad_end"
	MsgSelectionCancelled MessageID = "selection.cancelled"
	MsgWordFound          MessageID = "word.found"
	MsgNoWordFound        MessageID = "word.none"
	MsgBoardComplete      MessageID = "board.complete"
	MsgSolutionRevealed   MessageID = "solution.revealed"
)

// Translator turns a message ID and its data into user-facing text.
type Translator interface {
	Translate(id MessageID, data map[string]any) string
}

// Announcer is the single live status slot read by assistive technology.
// It holds at most one message: each announcement replaces the previous one.
// The zero value is ready to use and speaks English.
type Announcer struct {
	tr       Translator
	message  string
	attached bool
	serial   int
}

// NewAnnouncer creates an announcer that localizes through tr.
func NewAnnouncer(tr Translator) *Announcer {
	return &Announcer{tr: tr}
}

// Announce replaces the current message.
func (a *Announcer) Announce(msg string) {
	a.attached = true
	a.message = msg
	a.serial++
}

// AnnounceID localizes id with data and announces the result.
func (a *Announcer) AnnounceID(id MessageID, data map[string]any) {
	tr := a.tr
	if tr == nil {
		tr = englishTranslator{}
	}
	a.Announce(tr.Translate(id, data))
}

// Message returns the current message, empty before the first announcement.
func (a *Announcer) Message() string {
	return a.message
}

// Attached reports whether the status slot has been used yet.
func (a *Announcer) Attached() bool {
	return a.attached
}

// Serial increments on every announcement, so repeated identical messages
// can still be told apart by a renderer.
func (a *Announcer) Serial() int {
	return a.serial
}

// Clear empties the slot without detaching it.
func (a *Announcer) Clear() {
	a.message = ""
}

// englishTranslator is the built-in fallback used when no bundle is wired.
type englishTranslator struct{}

func (englishTranslator) Translate(id MessageID, data map[string]any) string {
	switch id {
	case MsgSelectionStart:
		return fmt.Sprintf("Start at row %v, column %v, letter %v.", data["Row"], data["Column"], data["Letter"])
	case MsgSelectionBadEnd:
		return "Choose an end square in the same row, column, or diagonal."
	case MsgSelectionCancelled:
		return "Selection cancelled."
	case MsgWordFound:
		return fmt.Sprintf("Found %v.", data["Word"])
	case MsgNoWordFound:
		return "No word found."
	case MsgBoardComplete:
		return "All words found!"
	case MsgSolutionRevealed:
		return "Solution revealed."
	}
	return string(id)
}
