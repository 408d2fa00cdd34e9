package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	a := appPaths{tag: appTag, goos: runtime.GOOS}
	home, err := os.UserHomeDir()
	if err != nil {
		return a, err
	}
	a.home = home
	return a, nil
}

type appPaths struct {
	tag  string
	home string
	goos string
}

var _ AppPaths = appPaths{}

// ConfigDir is the directory for configuration files. Unix systems use a
// lower-case application tag.
func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		switch a.goos {
		case "darwin":
			c = filepath.Join(a.home, "Library", "Application Support")
		case "windows":
			c = a.home
		default:
			c = filepath.Join(a.home, ".config")
		}
	}
	return filepath.Join(c, a.dirname())
}

// LogDir is the directory for trace output.
func (a appPaths) LogDir() string {
	if a.goos == "darwin" {
		return filepath.Join(a.home, "Library", "Logs", a.tag)
	}
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	if a.goos == "windows" {
		return filepath.Join(c, "Logs", a.tag)
	}
	return filepath.Join(c, "logs", a.dirname())
}

func (a appPaths) dirname() string {
	switch a.goos {
	case "darwin", "windows":
		return a.tag
	}
	return strings.ToLower(a.tag)
}
