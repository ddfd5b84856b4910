package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/mathgrid/internal/app"
	"github.com/specialistvlad/mathgrid/internal/hcl"
	"github.com/stretchr/testify/require"
)

// InputFile and SettingsFile are the fixture names the harness wires into
// the app config when present.
const (
	InputFile    = "input.txt"
	SettingsFile = "settings.hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
	Dir       string
}

// DefaultConfig returns the config the harness starts from. DotPath is empty
// so runs do not touch the shared default export path.
func DefaultConfig() *app.Config {
	return &app.Config{
		Root:         app.DefaultRoot,
		Strategy:     app.StrategyRooted,
		Width:        app.DefaultWidth,
		Placeholders: "reject",
		LogLevel:     "debug",
		LogFormat:    "text",
	}
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg *app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext writes files to a temporary directory, points
// cfg at the input and settings fixtures, and runs the app. A nil cfg uses
// DefaultConfig.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg *app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.InputPath == "" {
		cfg.InputPath = filepath.Join(tmpDir, InputFile)
	}
	if _, ok := files[SettingsFile]; ok && cfg.ConfigPath == "" {
		cfg.ConfigPath = filepath.Join(tmpDir, SettingsFile)
	}

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	result := &HarnessResult{Dir: tmpDir}

	testApp, err := app.NewApp(out, logBuffer, cfg, hcl.NewLoader())
	if err == nil {
		result.App = testApp
		err = testApp.Run(ctx)
	}

	if os.Getenv("MATHGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result.Output = out.String()
	result.LogOutput = logBuffer.String()
	result.Err = err
	return result
}
