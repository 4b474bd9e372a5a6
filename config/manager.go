package config

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Manager holds the loaded configuration tree and resolves dot-notation keys against it.
type Manager struct {
	config map[string]any
	mu     sync.RWMutex
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		config: make(map[string]any),
	}
}

// Load replaces the configuration tree.
func (m *Manager) Load(data map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data == nil {
		data = make(map[string]any)
	}
	m.config = data
}

// Set sets a value using dot notation, creating intermediate maps.
// Example: Set("merch.default_brand", "harman")
func (m *Manager) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setNested(m.config, key, value)
}

// Get retrieves a value using dot notation. Missing keys yield nil.
func (m *Manager) Get(key string) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getNested(m.config, key)
}

func (m *Manager) GetString(key string) string {
	value := m.Get(key)
	if value == nil {
		return ""
	}
	if str, ok := value.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", value)
}

func (m *Manager) GetInt(key string) int {
	switch v := m.Get(key).(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		result, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return result
	}
	return 0
}

// GetFloat retrieves a float value. YAML integers and numeric strings are converted.
func (m *Manager) GetFloat(key string) float64 {
	switch v := m.Get(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		result, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return result
	}
	return 0
}

func (m *Manager) GetBool(key string) bool {
	switch v := m.Get(key).(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	}
	return false
}

func (m *Manager) GetAll() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Has reports whether key resolves to a non-nil value.
func (m *Manager) Has(key string) bool {
	return m.Get(key) != nil
}

func (m *Manager) getNested(data map[string]any, key string) any {
	if key == "" {
		return nil
	}

	var current any = data
	for _, part := range strings.Split(key, ".") {
		c, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = c[part]
		if !ok {
			return nil
		}
	}

	return current
}

func (m *Manager) setNested(data map[string]any, key string, value any) {
	if key == "" {
		return
	}

	parts := strings.Split(key, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

var (
	globalConfigManager *Manager
	globalMu            sync.Mutex
)

// InitializeGlobal replaces the global manager's configuration with data.
func InitializeGlobal(data map[string]any) {
	GetGlobal().Load(data)
}

// GetGlobal returns the global manager, creating an empty one on first use.
func GetGlobal() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfigManager == nil {
		globalConfigManager = NewManager()
	}
	return globalConfigManager
}

// ResetGlobal drops the global manager. Tests use it between cases.
func ResetGlobal() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfigManager = nil
}
