package models

// UserProfile is the signed-in seller shown across the app.
type UserProfile struct {
	Name            string       `json:"name"`
	AvatarURL       string       `json:"avatar"`
	MonthlyEarnings float64      `json:"monthlyEarnings"`
	UnreadMessages  []Message    `json:"unreadMessages"`
	SalesData       SalesSummary `json:"salesData"`
	Chats           []ChatThread `json:"chats"`
}

// Message is an inbox entry on the home view. Unread is display only.
type Message struct {
	ID      int    `json:"id"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
	Unread  bool   `json:"unread"`
}

type MonthStats struct {
	TotalSales      int `json:"totalSales"`
	UniqueCustomers int `json:"uniqueCustomers"`
}

// SalesPoint is one sample of the monthly sales series.
type SalesPoint struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

type SalesSummary struct {
	ThisMonth MonthStats   `json:"thisMonth"`
	Trend     []SalesPoint `json:"trend"`
}

// ChatThread is a conversation summary in the chat list.
type ChatThread struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	LastMessage string `json:"lastMessage"`
	Unread      bool   `json:"unread"`
}

type Sender string

const (
	SenderMe   Sender = "me"
	SenderThem Sender = "them"
)

// ChatMessage is one bubble of an open chat session.
type ChatMessage struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}

// ClientEvent is a user action sent from the browser.
type ClientEvent struct {
	Type     ClientEventType `json:"type"`
	Tab      string          `json:"tab,omitempty"`
	Language string          `json:"language,omitempty"`
	DarkMode bool            `json:"darkMode,omitempty"`
	ChatID   int             `json:"chatId,omitempty"`
	Text     string          `json:"text,omitempty"`
}

type ClientEventType string

const (
	ClientEventSelectTab      ClientEventType = "selectTab"
	ClientEventToggleDarkMode ClientEventType = "toggleDarkMode"
	ClientEventSetDarkMode    ClientEventType = "setDarkMode"
	ClientEventSetLanguage    ClientEventType = "setLanguage"
	ClientEventOpenChat       ClientEventType = "openChat"
	ClientEventCloseChat      ClientEventType = "closeChat"
	ClientEventSend           ClientEventType = "send"
)

// ServerMessage is a frame pushed to the browser.
type ServerMessage struct {
	Type       ServerMessageType `json:"type"`
	SessionID  string            `json:"sessionId,omitempty"`
	Tab        string            `json:"tab,omitempty"`
	DarkMode   bool              `json:"darkMode"`
	Language   string            `json:"language,omitempty"`
	HTML       string            `json:"html,omitempty"`
	Transition *Transition       `json:"transition,omitempty"`
	Error      string            `json:"error,omitempty"`
}

type ServerMessageType string

const (
	ServerMessageRender     ServerMessageType = "render"
	ServerMessageTransition ServerMessageType = "transition"
	ServerMessageError      ServerMessageType = "error"
)

// Transition describes the cosmetic slide between two tabs.
type Transition struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Enter      string `json:"enter"`
	Exit       string `json:"exit"`
	DurationMS int64  `json:"durationMs"`
}
