// Package shell holds the app-wide UI state and its transitions.
//
// State is a value; every transition returns a new State and leaves the
// argument untouched.
package shell

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/i18n"
	"storefront/internal/models"
)

var ErrUnknownTab = errors.New("unknown tab")

type Tab string

const (
	TabHome    Tab = "home"
	TabMoney   Tab = "money"
	TabChat    Tab = "chat"
	TabAccount Tab = "account"
)

// Tabs returns the tabs in navigation bar order.
func Tabs() []Tab {
	return []Tab{TabHome, TabMoney, TabChat, TabAccount}
}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

type State struct {
	ActiveTab Tab           `json:"activeTab"`
	DarkMode  bool          `json:"isDarkMode"`
	Language  i18n.Language `json:"language"`
}

func Initial(lang i18n.Language) State {
	return State{
		ActiveTab: TabHome,
		DarkMode:  false,
		Language:  lang,
	}
}

func SelectTab(s State, t Tab) State {
	s.ActiveTab = t
	return s
}

func ToggleDarkMode(s State) State {
	s.DarkMode = !s.DarkMode
	return s
}

func SetDarkMode(s State, on bool) State {
	s.DarkMode = on
	return s
}

func SetLanguage(s State, l i18n.Language) State {
	s.Language = l
	return s
}

type NavItem struct {
	Tab    Tab
	Icon   string
	Label  string
	Active bool
}

var navIcons = map[Tab]string{
	TabHome:    "home",
	TabMoney:   "dollar-sign",
	TabChat:    "message-circle",
	TabAccount: "user",
}

// Nav builds the bottom navigation bar; exactly one item is active.
func Nav(s State) []NavItem {
	p := i18n.For(s.Language)
	labels := map[Tab]string{
		TabHome:    p.NavHome,
		TabMoney:   p.NavMoney,
		TabChat:    p.NavChat,
		TabAccount: p.NavAccount,
	}

	items := make([]NavItem, 0, len(Tabs()))
	for _, t := range Tabs() {
		items = append(items, NavItem{
			Tab:    t,
			Icon:   navIcons[t],
			Label:  labels[t],
			Active: t == s.ActiveTab,
		})
	}
	return items
}

type Direction string

const (
	DirectionRight Direction = "right"
	DirectionLeft  Direction = "left"
)

// Transition is the slide played when the active tab changes.
// The new view enters from the right and the old one exits to the left.
type Transition struct {
	From     Tab
	To       Tab
	Enter    Direction
	Exit     Direction
	Duration time.Duration
}

func NewTransition(from, to Tab, d time.Duration) Transition {
	return Transition{
		From:     from,
		To:       to,
		Enter:    DirectionRight,
		Exit:     DirectionLeft,
		Duration: d,
	}
}

func (t Transition) Model() *models.Transition {
	return &models.Transition{
		From:       string(t.From),
		To:         string(t.To),
		Enter:      string(t.Enter),
		Exit:       string(t.Exit),
		DurationMS: t.Duration.Milliseconds(),
	}
}

// Animator plays transitions. Implementations must not block.
type Animator interface {
	Animate(t Transition)
}

type AnimatorFunc func(t Transition)

func (f AnimatorFunc) Animate(t Transition) {
	f(t)
}
