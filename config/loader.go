package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/galaplate/creational/env"
	"gopkg.in/yaml.v3"
)

// envPattern matches ${VAR} and ${VAR:default}.
var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([^}]*))?\}`)

// Loader reads every YAML file in a directory into one configuration tree.
type Loader struct {
	configPath string
}

func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

// Load returns a map keyed by file name (without extension). Hidden files and
// non-YAML files are skipped.
func (l *Loader) Load() (map[string]any, error) {
	config := make(map[string]any)

	files, err := os.ReadDir(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, fmt.Errorf("config directory does not exist: %s", l.configPath)
		}
		return config, fmt.Errorf("failed to read config directory: %w", err)
	}

	for _, file := range files {
		name := file.Name()
		if file.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		filename := filepath.Join(l.configPath, name)
		fileConfig, err := l.loadFile(filename)
		if err != nil {
			return config, fmt.Errorf("failed to load config file %s: %w", filename, err)
		}

		config[strings.TrimSuffix(name, ext)] = fileConfig
	}

	return config, nil
}

func (l *Loader) loadFile(filename string) (any, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var data any
	if err := yaml.Unmarshal([]byte(expandEnv(string(content))), &data); err != nil {
		return nil, err
	}

	return normalize(data), nil
}

// expandEnv substitutes env references before YAML parsing so values keep their YAML types.
func expandEnv(content string) string {
	return envPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if value := env.Get(groups[1]); value != "" {
			return value
		}
		return groups[2]
	})
}

// normalize turns map[any]any nodes into map[string]any so dot lookups work.
func normalize(data any) any {
	switch v := data.(type) {
	case map[string]any:
		for key, val := range v {
			v[key] = normalize(val)
		}
		return v
	case map[any]any:
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[fmt.Sprintf("%v", key)] = normalize(val)
		}
		return result
	case []any:
		for i, val := range v {
			v[i] = normalize(val)
		}
		return v
	default:
		return v
	}
}
