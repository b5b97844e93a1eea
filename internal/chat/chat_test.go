package chat

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/stubs"

	"github.com/stretchr/testify/require"
)

func TestNewSession_Seeded(t *testing.T) {
	s := NewSession(7)
	if len(s.Records) != 2 {
		t.Fatalf("expected 2 seeded records, got %d", len(s.Records))
	}
	if s.LastID != 2 {
		t.Errorf("expected LastID 2, got %d", s.LastID)
	}
	if s.Records[0].Sender != models.SenderThem || s.Records[1].Sender != models.SenderMe {
		t.Errorf("unexpected seed senders: %+v", s.Records)
	}
}

func TestSession_Send(t *testing.T) {
	s := NewSession(1)
	before := s.Messages()

	msg, ok := s.Send("Hi")
	require.True(t, ok)
	require.Equal(t, models.ChatMessage{ID: 3, Text: "Hi", Sender: models.SenderMe}, msg)

	after := s.Messages()
	require.Len(t, after, len(before)+1)
	require.Equal(t, before, after[:len(before)])
	require.Equal(t, msg, after[len(after)-1])
}

func TestSession_SendBlank(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		s := NewSession(1)
		before := s.Messages()

		_, ok := s.Send(text)
		require.False(t, ok)
		require.Equal(t, before, s.Messages())
		require.Equal(t, 2, s.LastID)
	}
}

func TestSession_IDsMonotonic(t *testing.T) {
	s := NewSession(1)
	for _, text := range []string{"a", " ", "b", "", "c"} {
		s.Send(text)
	}

	msgs := s.Messages()
	require.Len(t, msgs, 5)
	for i := 1; i < len(msgs); i++ {
		require.Greater(t, msgs[i].ID, msgs[i-1].ID)
	}
	for _, m := range msgs[2:] {
		require.Equal(t, models.SenderMe, m.Sender)
	}
}

func TestSession_MessagesIsACopy(t *testing.T) {
	s := NewSession(1)
	msgs := s.Messages()
	msgs[0].Text = "changed"
	require.NotEqual(t, "changed", s.Messages()[0].Text)
}

func TestSession_SeedIsShared(t *testing.T) {
	a := NewSession(1)
	a.Records[0].Text = "changed"
	b := NewSession(2)
	require.Equal(t, "Hello! How can I help you today?", b.Records[0].Text)
}

func TestView_OpenAnyThreadSeedsSame(t *testing.T) {
	threads := stubs.UserData().Chats
	v := NewView(threads)
	require.Equal(t, ModeList, v.Mode())

	var first []models.ChatMessage
	for _, th := range threads {
		require.NoError(t, v.Open(th.ID))
		require.Equal(t, ModeOpen, v.Mode())

		got, ok := v.Thread()
		require.True(t, ok)
		require.Equal(t, th, got)

		msgs := v.Messages()
		require.Len(t, msgs, 2)
		if first == nil {
			first = msgs
		}
		require.Equal(t, first, msgs)
	}
}

func TestView_OpenUnknown(t *testing.T) {
	v := NewView(stubs.UserData().Chats)
	err := v.Open(999)
	require.ErrorIs(t, err, ErrUnknownThread)
	require.Equal(t, ModeList, v.Mode())
}

func TestView_CloseAndReopenResets(t *testing.T) {
	threads := stubs.UserData().Chats
	v := NewView(threads)

	require.NoError(t, v.Open(threads[0].ID))
	require.True(t, v.Send("Hi"))
	require.True(t, v.Send("Anyone there?"))
	require.Len(t, v.Messages(), 4)

	v.Close()
	require.Equal(t, ModeList, v.Mode())
	require.Nil(t, v.Messages())
	_, ok := v.Thread()
	require.False(t, ok)

	require.NoError(t, v.Open(threads[0].ID))
	require.Equal(t, NewSession(threads[0].ID).Messages(), v.Messages())

	v.Close()
	require.NoError(t, v.Open(threads[1].ID))
	require.Len(t, v.Messages(), 2)
}

func TestView_Draft(t *testing.T) {
	v := NewView(stubs.UserData().Chats)
	require.False(t, v.Send("nobody listening"))

	require.NoError(t, v.Open(1))

	require.False(t, v.Send("   "))
	require.Equal(t, "   ", v.Draft())
	require.Len(t, v.Messages(), 2)

	require.True(t, v.Send("Hi"))
	require.Equal(t, "", v.Draft())

	msgs := v.Messages()
	require.Equal(t, models.ChatMessage{ID: 3, Text: "Hi", Sender: models.SenderMe}, msgs[len(msgs)-1])
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "list", ModeList.String())
	require.Equal(t, "open", ModeOpen.String())
	require.Equal(t, "Mode(9)", Mode(9).String())
}
