// Package app runs one browser session: it applies client events to the
// shell and chat state and renders the resulting frame.
package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/internal/chat"
	"storefront/internal/i18n"
	"storefront/internal/models"
	"storefront/internal/shell"
	"storefront/internal/views"
)

var (
	ErrUnknownEvent = errors.New("unknown event")
	ErrViewInactive = errors.New("view is not active")
)

type Config struct {
	ID                 string
	Language           i18n.Language
	Renderer           *views.Renderer
	Animator           shell.Animator
	TransitionDuration time.Duration
}

type App struct {
	id         string
	renderer   *views.Renderer
	animator   shell.Animator
	transition time.Duration

	mu    sync.Mutex
	state shell.State
	chat  *chat.View
}

func New(config Config) *App {
	return &App{
		id:         config.ID,
		renderer:   config.Renderer,
		animator:   config.Animator,
		transition: config.TransitionDuration,
		state:      shell.Initial(config.Language),
		chat:       chat.NewView(config.Renderer.Profile().Chats),
	}
}

func (a *App) ID() string {
	return a.id
}

// Snapshot returns the current shell state.
func (a *App) Snapshot() shell.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// ChatMessages returns the messages of the open chat session, if any.
func (a *App) ChatMessages() []models.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chat.Messages()
}

// Handle applies ev and returns the frame to draw next. On error the state
// is left as it was.
func (a *App) Handle(ev models.ClientEvent) (models.ServerMessage, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	prev := a.state
	if err := a.apply(ev); err != nil {
		return models.ServerMessage{}, fmt.Errorf("%s: %w", ev.Type, err)
	}

	if a.state.ActiveTab != prev.ActiveTab {
		if prev.ActiveTab == shell.TabChat {
			// Leaving the tab tears the chat view down.
			a.chat.Close()
		}
		if a.animator != nil {
			a.animator.Animate(shell.NewTransition(prev.ActiveTab, a.state.ActiveTab, a.transition))
		}
	}

	return a.render()
}

func (a *App) apply(ev models.ClientEvent) error {
	switch ev.Type {
	case models.ClientEventSelectTab:
		tab, err := shell.ParseTab(ev.Tab)
		if err != nil {
			return err
		}
		a.state = shell.SelectTab(a.state, tab)
	case models.ClientEventToggleDarkMode:
		a.state = shell.ToggleDarkMode(a.state)
	case models.ClientEventSetDarkMode:
		a.state = shell.SetDarkMode(a.state, ev.DarkMode)
	case models.ClientEventSetLanguage:
		lang, err := i18n.ParseLanguage(ev.Language)
		if err != nil {
			return err
		}
		a.state = shell.SetLanguage(a.state, lang)
	case models.ClientEventOpenChat:
		if err := a.requireTab(shell.TabChat); err != nil {
			return err
		}
		return a.chat.Open(ev.ChatID)
	case models.ClientEventCloseChat:
		if err := a.requireTab(shell.TabChat); err != nil {
			return err
		}
		a.chat.Close()
	case models.ClientEventSend:
		if err := a.requireTab(shell.TabChat); err != nil {
			return err
		}
		a.chat.Send(ev.Text)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return nil
}

func (a *App) requireTab(t shell.Tab) error {
	if a.state.ActiveTab != t {
		return fmt.Errorf("%w: %s", ErrViewInactive, t)
	}
	return nil
}

// Render returns the frame for the current state.
func (a *App) Render() (models.ServerMessage, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.render()
}

func (a *App) render() (models.ServerMessage, error) {
	html, err := a.renderer.App(views.Page{State: a.state, Chat: a.chat})
	if err != nil {
		return models.ServerMessage{}, err
	}
	return models.ServerMessage{
		Type:      models.ServerMessageRender,
		SessionID: a.id,
		Tab:       string(a.state.ActiveTab),
		DarkMode:  a.state.DarkMode,
		Language:  string(a.state.Language),
		HTML:      string(html),
	}, nil
}
