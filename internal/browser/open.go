package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Open opens the specified URL in the user's default browser.
func Open(rawURL string) error {
	name, args, err := command(runtime.GOOS, rawURL)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

// command returns the launcher for goos. Only http and https URLs are accepted
// so a hostile base URL cannot be handed to the shell opener as a file path.
func command(goos, rawURL string) (string, []string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, fmt.Errorf("browser.Open: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", nil, fmt.Errorf("browser.Open: unsupported scheme %q", u.Scheme)
	}
	switch goos {
	case "darwin":
		return "open", []string{rawURL}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{rawURL}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}, nil
	default:
		return "", nil, fmt.Errorf("browser.Open: unsupported OS: %s", goos)
	}
}
