//go:build e2e

package e2e

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

func TestE2ETabs(t *testing.T) {
	server := startServer(t)
	defer server.Stop()

	pw, browser := setupPlaywright(t)
	defer func() { _ = pw.Stop() }()
	defer func() { _ = browser.Close() }()

	page := openApp(t, browser, server.BaseURL)
	require.Equal(t, "home", activeView(t, page))

	for _, tab := range []string{"money", "chat", "account", "home"} {
		t.Logf("Selecting %s...", tab)
		err := page.Locator(fmt.Sprintf(`.nav-item[data-tab="%s"]`, tab)).Click()
		require.NoError(t, err)
		waitForView(t, page, tab)

		count, err := page.Locator(".nav-item.active").Count()
		require.NoError(t, err)
		require.Equal(t, 1, count)
		active, err := page.Locator(".nav-item.active").GetAttribute("data-tab")
		require.NoError(t, err)
		require.Equal(t, tab, active)
	}
}

func TestE2ETransition(t *testing.T) {
	server := startServer(t, "TRANSITION_DURATION=2s")
	defer server.Stop()

	pw, browser := setupPlaywright(t)
	defer func() { _ = pw.Stop() }()
	defer func() { _ = browser.Close() }()

	page := openApp(t, browser, server.BaseURL)

	require.NoError(t, page.Locator(`.nav-item[data-tab="money"]`).Click())
	waitForView(t, page, "money")

	// The old view slides out left while the new one enters from the right.
	require.Eventually(t, func() bool {
		exiting, _ := page.Locator(".view-frame.outgoing.exit-left").Count()
		entering, _ := page.Locator("#view.enter-right").Count()
		return exiting == 1 && entering == 1
	}, 2*time.Second, 50*time.Millisecond)

	// Input is not held back by a running slide.
	require.NoError(t, page.Locator(`.nav-item[data-tab="account"]`).Click())
	waitForView(t, page, "account")

	require.Eventually(t, func() bool {
		n, _ := page.Locator(".view-frame.outgoing").Count()
		return n == 0
	}, 5*time.Second, 100*time.Millisecond)
}

func TestE2ESettings(t *testing.T) {
	server := startServer(t)
	defer server.Stop()

	pw, browser := setupPlaywright(t)
	defer func() { _ = pw.Stop() }()
	defer func() { _ = browser.Close() }()

	page := openApp(t, browser, server.BaseURL)

	require.NoError(t, page.Locator(`.nav-item[data-tab="account"]`).Click())
	waitForView(t, page, "account")

	t.Log("Toggling dark mode...")
	require.NoError(t, page.Locator("#dark-mode").Click())
	require.Eventually(t, func() bool {
		class, _ := page.Locator("html").GetAttribute("class")
		return strings.Contains(class, "dark")
	}, 5*time.Second, 100*time.Millisecond)

	t.Log("Switching to Spanish...")
	_, err := page.Locator("#language").SelectOption(playwright.SelectOptionValues{
		Values: playwright.StringSlice("Spanish"),
	})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		text, _ := page.Locator(".bottom-nav").InnerText()
		return strings.Contains(text, "Inicio") && strings.Contains(text, "Dinero")
	}, 5*time.Second, 100*time.Millisecond)

	t.Log("Reloading resets the state...")
	_, err = page.Reload()
	require.NoError(t, err)
	waitForView(t, page, "home")
	class, _ := page.Locator("html").GetAttribute("class")
	require.NotContains(t, class, "dark")
}

func TestE2EChat(t *testing.T) {
	server := startServer(t)
	defer server.Stop()

	pw, browser := setupPlaywright(t)
	defer func() { _ = pw.Stop() }()
	defer func() { _ = browser.Close() }()

	page := openApp(t, browser, server.BaseURL)

	require.NoError(t, page.Locator(`.nav-item[data-tab="chat"]`).Click())
	waitForView(t, page, "chat")

	t.Log("Opening John Doe...")
	require.NoError(t, page.Locator(`.chat-item:has-text("John Doe")`).Click())
	err := page.Locator(".chat-window").WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
	require.NoError(t, err)

	count, err := page.Locator("[data-message-id]").Count()
	require.NoError(t, err)
	require.Equal(t, 2, count)

	t.Log("Sending a blank message...")
	require.NoError(t, page.Locator("#message-input").Fill("   "))
	require.NoError(t, page.Locator("#send-btn").Click())
	time.Sleep(300 * time.Millisecond)
	count, err = page.Locator("[data-message-id]").Count()
	require.NoError(t, err)
	require.Equal(t, 2, count)

	t.Log("Sending a message...")
	msg := "Do you have it in red?"
	require.NoError(t, page.Locator("#message-input").Fill(msg))
	require.NoError(t, page.Locator("#message-input").Press("Enter"))
	require.Eventually(t, func() bool {
		content, _ := page.Locator(".messages").InnerText()
		return strings.Contains(content, msg)
	}, 5*time.Second, 100*time.Millisecond)

	last := page.Locator("[data-message-id]").Last()
	sender, err := last.GetAttribute("data-sender")
	require.NoError(t, err)
	require.Equal(t, "me", sender)
	value, err := page.Locator("#message-input").InputValue()
	require.NoError(t, err)
	require.Empty(t, value)

	t.Log("Going back to the list...")
	require.NoError(t, page.Locator(`[data-action="closeChat"]`).Click())
	err = page.Locator(".chat-list").WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
	require.NoError(t, err)
}
