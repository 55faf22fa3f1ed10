package filesystem

import (
	"os"
	"path/filepath"
)

// EnvDataDir overrides the directory holding settings, history and logs.
const EnvDataDir = "VMODEM_HOME"

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// DataDir returns ~/.vmodem99a unless VMODEM_HOME points elsewhere.
func DataDir() string {
	if custom := os.Getenv(EnvDataDir); custom != "" {
		return ExpandPath(custom)
	}
	return filepath.Join(UserHomeDir(), ".vmodem99a")
}

// ExpandPath resolves a leading "~/" against the home directory.
func ExpandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}
