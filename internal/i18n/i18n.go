// Package i18n holds the fixed phrase tables for the four supported languages.
package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

var ErrUnknownLanguage = errors.New("unknown language")

type Language string

const (
	English Language = "English"
	Spanish Language = "Spanish"
	French  Language = "French"
	German  Language = "German"
)

// Languages returns the supported languages in selector order.
func Languages() []Language {
	return []Language{English, Spanish, French, German}
}

func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if _, ok := table[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return l, nil
}

// Phrases is the set of UI strings for one language.
type Phrases struct {
	Greeting             string `json:"greeting"`
	MonthlyEarnings      string `json:"monthlyEarnings"`
	UnreadMessages       string `json:"unreadMessages"`
	SalesOverview        string `json:"salesOverview"`
	TotalSales           string `json:"totalSales"`
	UniqueCustomers      string `json:"uniqueCustomers"`
	SalesTrend           string `json:"salesTrend"`
	PersonalAccount      string `json:"personalAccount"`
	EditPersonalInfo     string `json:"editPersonalInfo"`
	NotificationSettings string `json:"notificationSettings"`
	PrivacySettings      string `json:"privacySettings"`
	MonetizationSettings string `json:"monetizationSettings"`
	ApplicationSettings  string `json:"applicationSettings"`
	DarkMode             string `json:"darkMode"`
	Language             string `json:"language"`
	LogOut               string `json:"logOut"`
	Chats                string `json:"chats"`
	Online               string `json:"online"`
	TypeMessage          string `json:"typeMessage"`
	Back                 string `json:"back"`
	Month                string `json:"month"`
	Sales                string `json:"sales"`
	NavHome              string `json:"navHome"`
	NavMoney             string `json:"navMoney"`
	NavChat              string `json:"navChat"`
	NavAccount           string `json:"navAccount"`
}

// Labels returns every phrase keyed by its JSON name.
func (p Phrases) Labels() map[string]string {
	return map[string]string{
		"greeting":             p.Greeting,
		"monthlyEarnings":      p.MonthlyEarnings,
		"unreadMessages":       p.UnreadMessages,
		"salesOverview":        p.SalesOverview,
		"totalSales":           p.TotalSales,
		"uniqueCustomers":      p.UniqueCustomers,
		"salesTrend":           p.SalesTrend,
		"personalAccount":      p.PersonalAccount,
		"editPersonalInfo":     p.EditPersonalInfo,
		"notificationSettings": p.NotificationSettings,
		"privacySettings":      p.PrivacySettings,
		"monetizationSettings": p.MonetizationSettings,
		"applicationSettings":  p.ApplicationSettings,
		"darkMode":             p.DarkMode,
		"language":             p.Language,
		"logOut":               p.LogOut,
		"chats":                p.Chats,
		"online":               p.Online,
		"typeMessage":          p.TypeMessage,
		"back":                 p.Back,
		"month":                p.Month,
		"sales":                p.Sales,
		"navHome":              p.NavHome,
		"navMoney":             p.NavMoney,
		"navChat":              p.NavChat,
		"navAccount":           p.NavAccount,
	}
}

// For returns the phrase table of l. Callers pass a parsed Language,
// so an unknown value is a programming error.
func For(l Language) Phrases {
	p, ok := table[l]
	if !ok {
		panic(fmt.Sprintf("i18n: no phrase table for %q", l))
	}
	return p
}

var tags = map[Language]language.Tag{
	English: language.English,
	Spanish: language.Spanish,
	French:  language.French,
	German:  language.German,
}

var matcher = func() language.Matcher {
	supported := make([]language.Tag, 0, len(tags))
	for _, l := range Languages() {
		supported = append(supported, tags[l])
	}
	return language.NewMatcher(supported)
}()

// Match picks the supported language closest to an Accept-Language header.
func Match(acceptLanguage string, fallback Language) Language {
	if acceptLanguage == "" {
		return fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return fallback
	}
	return Languages()[idx]
}
