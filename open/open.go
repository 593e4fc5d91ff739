// Package open launches URLs with the system's default handler or a chosen application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/instantsaver/instantsaver/constant"
)

// Start opens url asynchronously. An empty app means the default handler.
func Start(url, app string) error {
	cmd, ok := command(url, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(url, app string) (*exec.Cmd, bool) {
	if app == "" {
		return defaultCommand(url)
	}

	switch runtime.GOOS {
	case constant.Windows:
		// start treats & as a command separator
		escaped := strings.ReplaceAll(url, "&", "^&")
		return exec.Command("cmd", "/C", "start", "", app, escaped), true
	case constant.Darwin:
		return exec.Command("open", "-a", app, url), true
	case constant.Linux:
		return exec.Command(app, url), true
	case constant.Android:
		return exec.Command("termux-open", "--choose", url), true
	default:
		return nil, false
	}
}

func defaultCommand(url string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", url), true
	case constant.Darwin:
		return exec.Command("open", url), true
	case constant.Linux:
		return exec.Command("xdg-open", url), true
	case constant.Android:
		return exec.Command("termux-open", url), true
	default:
		return nil, false
	}
}
