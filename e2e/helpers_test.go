//go:build e2e

package e2e

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Addr    string
	BaseURL string
	Cmd     *exec.Cmd
}

func getFreePort(t *testing.T) int {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	require.NoError(t, err)

	l, err := net.ListenTCP("tcp", addr)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()
	return l.Addr().(*net.TCPAddr).Port
}

func startServer(t *testing.T, env ...string) *TestServer {
	addr := fmt.Sprintf("localhost:%d", getFreePort(t))
	baseURL := fmt.Sprintf("http://%s", addr)

	cmd := exec.Command(serverBinPath)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("STOREFRONT_ADDR=%s", addr),
		fmt.Sprintf("BASE_URL=%s", baseURL),
		"TRANSITION_DURATION=50ms",
	)
	cmd.Env = append(cmd.Env, env...)

	err := cmd.Start()
	require.NoError(t, err)

	// Wait for server to be ready
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return true
		}
		return false
	}, 5*time.Second, 200*time.Millisecond, "Server failed to start")

	return &TestServer{
		Addr:    addr,
		BaseURL: baseURL,
		Cmd:     cmd,
	}
}

func (s *TestServer) Stop() {
	if s.Cmd != nil && s.Cmd.Process != nil {
		_ = s.Cmd.Process.Kill()
	}
}

func setupPlaywright(t *testing.T) (*playwright.Playwright, playwright.Browser) {
	pw, err := playwright.Run()
	require.NoError(t, err)

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	require.NoError(t, err)

	return pw, browser
}

func openApp(t *testing.T, browser playwright.Browser, url string) playwright.Page {
	context, err := browser.NewContext()
	require.NoError(t, err)

	page, err := context.NewPage()
	require.NoError(t, err)

	_, err = page.Goto(url)
	require.NoError(t, err)

	// The socket session replaces the page body once it is live.
	require.Eventually(t, func() bool {
		id, _ := page.Locator("#app").GetAttribute("data-session")
		return id != ""
	}, 5*time.Second, 100*time.Millisecond, "session did not start")

	return page
}

func activeView(t *testing.T, page playwright.Page) string {
	view, err := page.Locator("[data-view]").GetAttribute("data-view")
	require.NoError(t, err)
	return view
}

func waitForView(t *testing.T, page playwright.Page, view string) {
	require.Eventually(t, func() bool {
		return activeView(t, page) == view
	}, 5*time.Second, 100*time.Millisecond, "view %s not shown", view)
}
