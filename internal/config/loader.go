package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// searchDirs lists the directories probed for runebar/config.toml, most
// specific first. On macOS os.UserConfigDir points at Library/Application
// Support, but terminal tools conventionally keep config under ~/.config,
// so both ~/.config and XDG_CONFIG_HOME are probed ahead of it there.
func searchDirs() []string {
	var dirs []string
	if runtime.GOOS == "darwin" {
		if home := os.Getenv("HOME"); home != "" {
			dirs = append(dirs, filepath.Join(home, ".config"))
		}
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			dirs = append(dirs, xdg)
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	return dirs
}

// configFilePath resolves the config file: an explicit RUNEBAR_CONFIG_DIR
// wins, then the first search directory that already holds a config file,
// then the most specific search directory for a file yet to be written.
func configFilePath() string {
	if dir := os.Getenv("RUNEBAR_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	dirs := searchDirs()
	for _, dir := range dirs {
		candidate := filepath.Join(dir, "runebar", "config.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if len(dirs) > 0 {
		return filepath.Join(dirs[0], "runebar", "config.toml")
	}
	return ""
}

// GetConfigDir returns the directory the config file lives in, created or
// not. Empty when no config location can be determined at all.
func GetConfigDir() string {
	configFile := configFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}

// Init loads the user's config file over the defaults into Current. A
// missing file leaves the defaults untouched; a malformed one is an error.
func Init() error {
	cfg := Default()
	configFile := configFilePath()
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// first run, defaults apply
		case err != nil:
			return err
		default:
			if err := cfg.Load(string(data)); err != nil {
				return err
			}
		}
	}
	Current = cfg
	return nil
}
