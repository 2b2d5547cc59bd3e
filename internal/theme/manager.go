// internal/theme/manager.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mvetter/codearea/internal/logger"
)

// Manager holds loaded themes and tracks the active one.
type Manager struct {
	mu     sync.RWMutex
	themes map[string]*Theme // keyed by lowercase name
	active *Theme
}

// NewManager creates a manager seeded with the built-in theme and anything
// found in the user's themes directory.
func NewManager() *Manager {
	m := &Manager{themes: make(map[string]*Theme)}
	m.register(&SlateDark)
	m.active = &SlateDark

	if configDir, err := os.UserConfigDir(); err == nil {
		dir := filepath.Join(configDir, "codearea", "themes")
		if err := m.LoadDir(dir); err != nil {
			logger.Debugf("theme: no user themes loaded from %q: %v", dir, err)
		}
	}
	return m
}

// LoadDir loads every *.toml theme file in dir. A missing directory is not
// an error.
func (m *Manager) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read themes dir %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		th, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Warnf("theme: skipping %q: %v", entry.Name(), err)
			continue
		}
		m.register(th)
	}
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// SetCurrent activates a theme by name (case-insensitive). Unknown names
// leave the active theme alone and return an error.
func (m *Manager) SetCurrent(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	th, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	m.active = th
	return nil
}

func (m *Manager) register(th *Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.themes[strings.ToLower(th.Name)] = th
}
