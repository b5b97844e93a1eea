// Package views renders the four tabs, the navigation bar and the page
// around them with html/template.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"storefront/internal/chat"
	"storefront/internal/content"
	"storefront/internal/i18n"
	"storefront/internal/models"
	"storefront/internal/shell"

	"github.com/c-pro/geche"
)

//go:embed templates/*.html
var templatesFS embed.FS

// FormatAmount formats a money value with exactly two decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Page is everything needed to draw one frame of the app.
type Page struct {
	State shell.State
	// Chat is the chat tab state. Nil draws the thread list.
	Chat *chat.View
}

type Renderer struct {
	profile models.UserProfile
	tmpl    *template.Template
	// Home and Money depend only on the language for a given profile.
	fragments geche.Geche[string, template.HTML]
}

func NewRenderer(profile models.UserProfile) (*Renderer, error) {
	tmpl, err := template.New("views").Funcs(template.FuncMap{
		"icon":    Icon,
		"amount":  FormatAmount,
		"message": content.RenderMessage,
		"isMe": func(s models.Sender) bool {
			return s == models.SenderMe
		},
		"setting": func(icon, text string) settingItem {
			return settingItem{Icon: icon, Text: text}
		},
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		profile:   profile,
		tmpl:      tmpl,
		fragments: geche.NewMapCache[string, template.HTML](),
	}, nil
}

func (r *Renderer) Profile() models.UserProfile {
	return r.profile
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) cached(name string, lang i18n.Language, data any) (template.HTML, error) {
	key := name + ":" + string(lang)
	if html, err := r.fragments.Get(key); err == nil {
		return html, nil
	}

	html, err := r.execute(name, data)
	if err != nil {
		return "", err
	}
	r.fragments.Set(key, html)
	return html, nil
}

type homeData struct {
	P       i18n.Phrases
	Profile models.UserProfile
}

func (r *Renderer) Home(lang i18n.Language) (template.HTML, error) {
	return r.cached("home", lang, homeData{P: i18n.For(lang), Profile: r.profile})
}

type moneyData struct {
	P     i18n.Phrases
	Sales models.SalesSummary
	Plot  Plot
}

func (r *Renderer) Money(lang i18n.Language) (template.HTML, error) {
	sales := r.profile.SalesData
	return r.cached("money", lang, moneyData{
		P:     i18n.For(lang),
		Sales: sales,
		Plot:  PlotLine(sales.Trend, chartWidth, chartHeight),
	})
}

type chatData struct {
	P        i18n.Phrases
	Open     bool
	Threads  []models.ChatThread
	Thread   models.ChatThread
	Messages []models.ChatMessage
	Draft    string
}

func (r *Renderer) Chat(lang i18n.Language, v *chat.View) (template.HTML, error) {
	if v == nil {
		v = chat.NewView(r.profile.Chats)
	}
	thread, open := v.Thread()
	return r.execute("chat", chatData{
		P:        i18n.For(lang),
		Open:     open,
		Threads:  v.Threads(),
		Thread:   thread,
		Messages: v.Messages(),
		Draft:    v.Draft(),
	})
}

// settingItem is one of the inert rows on the account view.
type settingItem struct {
	Icon string
	Text string
}

type accountData struct {
	P         i18n.Phrases
	Profile   models.UserProfile
	State     shell.State
	Languages []i18n.Language
}

func (r *Renderer) Account(s shell.State) (template.HTML, error) {
	return r.execute("account", accountData{
		P:         i18n.For(s.Language),
		Profile:   r.profile,
		State:     s,
		Languages: i18n.Languages(),
	})
}

// View renders the active tab.
func (r *Renderer) View(page Page) (template.HTML, error) {
	s := page.State
	switch s.ActiveTab {
	case shell.TabHome:
		return r.Home(s.Language)
	case shell.TabMoney:
		return r.Money(s.Language)
	case shell.TabChat:
		return r.Chat(s.Language, page.Chat)
	case shell.TabAccount:
		return r.Account(s)
	default:
		panic(fmt.Sprintf("views: no renderer for tab %q", s.ActiveTab))
	}
}

func (r *Renderer) Nav(s shell.State) (template.HTML, error) {
	return r.execute("nav", shell.Nav(s))
}

type appData struct {
	State shell.State
	View  template.HTML
	Nav   template.HTML
}

// App renders the active view together with the navigation bar.
func (r *Renderer) App(page Page) (template.HTML, error) {
	view, err := r.View(page)
	if err != nil {
		return "", err
	}
	nav, err := r.Nav(page.State)
	if err != nil {
		return "", err
	}
	return r.execute("app", appData{State: page.State, View: view, Nav: nav})
}

type documentData struct {
	State shell.State
	Lang  string
	App   template.HTML
}

var htmlLang = map[i18n.Language]string{
	i18n.English: "en",
	i18n.Spanish: "es",
	i18n.French:  "fr",
	i18n.German:  "de",
}

// Document writes a full HTML page for page.
func (r *Renderer) Document(w io.Writer, page Page) error {
	app, err := r.App(page)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "document", documentData{
		State: page.State,
		Lang:  htmlLang[page.State.Language],
		App:   app,
	})
}
