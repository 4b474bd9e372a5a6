package testing

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/console"
	"github.com/galaplate/creational/logger"
	"github.com/galaplate/creational/merch"
	"github.com/stretchr/testify/suite"
)

type TestConfig struct {
	// ConfigPath is resolved against the project root. Empty skips config loading.
	ConfigPath   string
	Overrides    map[string]any
	DefaultBrand merch.Brand
	LogLevel     slog.Level
}

// TestCase is the suite base for package tests. Each test starts with a fresh global
// config, a fresh merch registry and captured log output.
type TestCase struct {
	suite.Suite
	Config *TestConfig
	Logs   *bytes.Buffer
	Out    *bytes.Buffer

	projectRoot string
}

func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		ConfigPath:   "config",
		DefaultBrand: merch.Endava,
		LogLevel:     slog.LevelDebug,
	}
}

func NewTestCase(opts ...func(*TestConfig)) *TestCase {
	cfg := DefaultTestConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &TestCase{Config: cfg}
}

func (tc *TestCase) SetupTest() {
	if tc.Config == nil {
		tc.Config = DefaultTestConfig()
	}

	tc.Logs = &bytes.Buffer{}
	tc.Out = &bytes.Buffer{}
	logger.SetOutput(tc.Logs)
	logger.SetLevel(tc.Config.LogLevel)

	tc.loadConfig()

	brand := tc.Config.DefaultBrand
	if brand == "" {
		brand = merch.Endava
	}
	tc.Require().NoError(merch.Initialize(brand))
}

func (tc *TestCase) TearDownTest() {
	logger.SetOutput(nil)
	logger.SetLevel(slog.LevelInfo)
	config.ResetGlobal()
}

func (tc *TestCase) loadConfig() {
	config.ResetGlobal()

	if tc.Config.ConfigPath != "" {
		dir := tc.Config.ConfigPath
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(tc.ProjectRoot(), dir)
		}
		data, err := config.NewLoader(dir).Load()
		tc.Require().NoError(err)
		config.InitializeGlobal(data)
	}

	for key, value := range tc.Config.Overrides {
		config.GetGlobal().Set(key, value)
	}
}

// ProjectRoot walks up from the working directory to the directory holding go.mod.
func (tc *TestCase) ProjectRoot() string {
	if tc.projectRoot != "" {
		return tc.projectRoot
	}

	cwd, err := os.Getwd()
	tc.Require().NoError(err)

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			dir = cwd
			break
		}
		dir = parent
	}

	tc.projectRoot = dir
	return dir
}

// Kernel returns a console kernel reading input and writing to tc.Out.
func (tc *TestCase) Kernel(input string) *console.Kernel {
	return console.NewKernel(strings.NewReader(input), tc.Out)
}
