// Command render prints the server-rendered page for a given state.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"storefront/internal/i18n"
	"storefront/internal/shell"
	"storefront/internal/stubs"
	"storefront/internal/views"
)

func main() {
	tab := flag.String("tab", string(shell.TabHome), "Tab to render: home, money, chat or account")
	lang := flag.String("lang", string(i18n.English), "Language: English, Spanish, French or German")
	dark := flag.Bool("dark", false, "Render in dark mode")
	flag.Parse()

	if err := render(os.Stdout, *tab, *lang, *dark); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func render(w io.Writer, tabName, langName string, dark bool) error {
	tab, err := shell.ParseTab(tabName)
	if err != nil {
		return err
	}
	lang, err := i18n.ParseLanguage(langName)
	if err != nil {
		return err
	}

	renderer, err := views.NewRenderer(stubs.UserData())
	if err != nil {
		return err
	}

	s := shell.SetDarkMode(shell.SelectTab(shell.Initial(lang), tab), dark)
	return renderer.Document(w, views.Page{State: s})
}
