package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppName names the per-user config directory.
const AppName = "wordladder"

// UserConfigDir returns the platform config directory for the app:
// $XDG_CONFIG_HOME or ~/.config on Linux and macOS, %APPDATA% on Windows.
func UserConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName), nil
		}
		return filepath.Join(home, "AppData", "Roaming", AppName), nil
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		return filepath.Join(home, ".config", AppName), nil
	}
}

// DictionaryCandidates lists where a relative dictionary path is looked for,
// in order: as given, next to the binary, in the binary's data/ directory and
// in the config directory. An absolute path is its only candidate.
func DictionaryCandidates(path, configDir string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	candidates := []string{path}
	if exeDir, err := ExecutableDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(exeDir, path),
			filepath.Join(exeDir, "data", filepath.Base(path)),
		)
	}
	if configDir != "" {
		candidates = append(candidates, filepath.Join(configDir, filepath.Base(path)))
	}
	return candidates
}

// ResolveDictionaryPath returns the first candidate that is a regular file,
// made absolute. When none is, path is returned unchanged so the loader
// reports it.
func ResolveDictionaryPath(path, configDir string) string {
	for _, candidate := range DictionaryCandidates(path, configDir) {
		if IsRegularFile(candidate) {
			candidate = AbsolutePath(candidate)
			log.Debugf("Using dictionary at %s", candidate)
			return candidate
		}
		log.Debugf("Dictionary candidate not found: %s", candidate)
	}
	return path
}
