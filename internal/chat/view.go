package chat

import (
	"errors"
	"fmt"
	"slices"

	"storefront/internal/models"
)

var ErrUnknownThread = errors.New("unknown chat thread")

type Mode int

const (
	ModeList Mode = iota
	ModeOpen
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeOpen:
		return "open"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// View is the chat tab: a thread list that can open one session at a time.
type View struct {
	threads []models.ChatThread
	thread  *models.ChatThread
	session *Session
	draft   string
}

func NewView(threads []models.ChatThread) *View {
	return &View{threads: slices.Clone(threads)}
}

func (v *View) Mode() Mode {
	if v.session == nil {
		return ModeList
	}
	return ModeOpen
}

func (v *View) Threads() []models.ChatThread {
	return slices.Clone(v.threads)
}

// Open starts a fresh session for threadID, replacing any open one.
func (v *View) Open(threadID int) error {
	i := slices.IndexFunc(v.threads, func(t models.ChatThread) bool {
		return t.ID == threadID
	})
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownThread, threadID)
	}

	thread := v.threads[i]
	v.thread = &thread
	v.session = NewSession(threadID)
	v.draft = ""
	return nil
}

// Close drops the open session and its messages.
func (v *View) Close() {
	v.thread = nil
	v.session = nil
	v.draft = ""
}

// Send appends text to the open session. The draft is cleared only when
// the message was accepted; otherwise it keeps what the user submitted.
func (v *View) Send(text string) bool {
	if v.session == nil {
		return false
	}
	if _, ok := v.session.Send(text); !ok {
		v.draft = text
		return false
	}
	v.draft = ""
	return true
}

func (v *View) Thread() (models.ChatThread, bool) {
	if v.thread == nil {
		return models.ChatThread{}, false
	}
	return *v.thread, true
}

func (v *View) Messages() []models.ChatMessage {
	if v.session == nil {
		return nil
	}
	return v.session.Messages()
}

func (v *View) Draft() string {
	return v.draft
}
