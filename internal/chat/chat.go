package chat

import (
	"slices"
	"strings"

	"storefront/internal/models"
)

// Session is the message exchange of one opened thread.
// It lives only while the thread is open.
type Session struct {
	ThreadID int
	Records  []models.ChatMessage
	LastID   int
}

// seed is what every session starts with, whichever thread was opened.
var seed = []models.ChatMessage{
	{ID: 1, Text: "Hello! How can I help you today?", Sender: models.SenderThem},
	{ID: 2, Text: "I'm interested in your products", Sender: models.SenderMe},
}

func NewSession(threadID int) *Session {
	s := &Session{
		ThreadID: threadID,
		Records:  slices.Clone(seed),
	}
	for _, r := range s.Records {
		s.LastID = max(s.LastID, r.ID)
	}
	return s
}

// Send appends text as a message from me. Blank text is ignored and
// reported with ok == false.
func (s *Session) Send(text string) (models.ChatMessage, bool) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, false
	}

	s.LastID++
	msg := models.ChatMessage{
		ID:     s.LastID,
		Text:   text,
		Sender: models.SenderMe,
	}
	s.Records = append(s.Records, msg)
	return msg, true
}

// Messages returns the messages oldest first.
func (s *Session) Messages() []models.ChatMessage {
	return slices.Clone(s.Records)
}
