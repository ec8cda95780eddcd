package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates word lists and config files relative to the places
// jumble is usually run from.
type PathResolver struct {
	executableDir string
	workingDir    string
	configDir     string
}

// NewPathResolver determines the executable, working and config directories.
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not determine working directory: %v", err)
		cwd = "."
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		workingDir:    cwd,
		configDir:     ConfigDirFor(homeDir, "jumble"),
	}
	log.Debugf("PathResolver initialized: execDir=%s, cwd=%s, configDir=%s", execDir, cwd, pr.configDir)
	return pr, nil
}

// NewPathResolverAt builds a resolver over fixed directories.
func NewPathResolverAt(executableDir, workingDir, configDir string) *PathResolver {
	return &PathResolver{
		executableDir: executableDir,
		workingDir:    workingDir,
		configDir:     configDir,
	}
}

// ConfigDirFor returns the platform config directory for app under homeDir.
func ConfigDirFor(homeDir, app string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, app)
		}
		return filepath.Join(homeDir, ".config", app)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, app)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", app)
	default:
		return filepath.Join(homeDir, ".config", app)
	}
}

// GetDictPath resolves a word list path. Candidates, in order:
//  1. the path itself (absolute, or relative to the working directory)
//  2. relative to the executable directory
//  3. inside the config directory
//
// When none exists the original path is returned unchanged so the loader can
// report it.
func (pr *PathResolver) GetDictPath(userPath string) string {
	for _, candidate := range pr.dictCandidates(userPath) {
		if FileExists(candidate) {
			log.Debugf("Found word list: %s", candidate)
			return candidate
		}
		log.Debugf("Word list candidate not found: %s", candidate)
	}
	return userPath
}

func (pr *PathResolver) dictCandidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}
	return []string{
		filepath.Join(pr.workingDir, userPath),
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, userPath),
	}
}

// ConfigDir returns the config directory
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// GetConfigPath returns the path for a config file, falling back to a temp
// location when the config directory is not writable.
func (pr *PathResolver) GetConfigPath(filename string) string {
	if IsWritableDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename)
	}
	fallback := filepath.Join(os.TempDir(), "jumble")
	if IsWritableDir(fallback) {
		path := filepath.Join(fallback, filename)
		log.Warnf("Using fallback config location: %s", path)
		return path
	}
	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}
