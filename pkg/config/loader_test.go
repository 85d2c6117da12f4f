package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoader_LoadDefaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.App.Name != "routing-kernel" {
		t.Errorf("expected app name 'routing-kernel', got %s", cfg.App.Name)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Log.Level)
	}
	if cfg.Metrics.Port != 9090 {
		t.Errorf("expected metrics port 9090, got %d", cfg.Metrics.Port)
	}
	if cfg.Kernel.DefaultAlgorithm != "astar" {
		t.Errorf("expected default algorithm 'astar', got %s", cfg.Kernel.DefaultAlgorithm)
	}
	if cfg.Kernel.ParetoSteps != 5 {
		t.Errorf("expected pareto steps 5, got %d", cfg.Kernel.ParetoSteps)
	}
	if cfg.Kernel.MaxWorkers != 8 {
		t.Errorf("expected max workers 8, got %d", cfg.Kernel.MaxWorkers)
	}
}

func TestLoader_LoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
app:
  name: custom-kernel
  version: 2.0.0
  environment: staging
log:
  level: debug
kernel:
  default_algorithm: dijkstra
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	loader := NewLoader(WithConfigPaths(configPath))
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.App.Name != "custom-kernel" {
		t.Errorf("expected app name 'custom-kernel', got %s", cfg.App.Name)
	}
	if cfg.App.Version != "2.0.0" {
		t.Errorf("expected version '2.0.0', got %s", cfg.App.Version)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Log.Level)
	}
	if cfg.Kernel.DefaultAlgorithm != "dijkstra" {
		t.Errorf("expected default algorithm 'dijkstra', got %s", cfg.Kernel.DefaultAlgorithm)
	}
}

func TestLoader_LoadFromEnv(t *testing.T) {
	os.Setenv("ROUTEKERNEL_APP_NAME", "env-kernel")
	os.Setenv("ROUTEKERNEL_KERNEL_MAX_WORKERS", "16")
	defer func() {
		os.Unsetenv("ROUTEKERNEL_APP_NAME")
		os.Unsetenv("ROUTEKERNEL_KERNEL_MAX_WORKERS")
	}()

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.App.Name != "env-kernel" {
		t.Errorf("expected app name 'env-kernel', got %s", cfg.App.Name)
	}
	if cfg.Kernel.MaxWorkers != 16 {
		t.Errorf("expected max workers 16, got %d", cfg.Kernel.MaxWorkers)
	}
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
app:
  name: file-kernel
kernel:
  max_workers: 4
`
	os.WriteFile(configPath, []byte(configContent), 0644)

	os.Setenv("ROUTEKERNEL_APP_NAME", "env-override")
	defer os.Unsetenv("ROUTEKERNEL_APP_NAME")

	cfg, err := NewLoader(WithConfigPaths(configPath)).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.App.Name != "env-override" {
		t.Errorf("expected env override, got %s", cfg.App.Name)
	}
	// Max workers should come from the file since env doesn't set it.
	if cfg.Kernel.MaxWorkers != 4 {
		t.Errorf("expected max workers from file 4, got %d", cfg.Kernel.MaxWorkers)
	}
}

func TestLoader_WithEnvPrefix(t *testing.T) {
	os.Setenv("CUSTOM_APP_NAME", "custom-prefix-kernel")
	defer os.Unsetenv("CUSTOM_APP_NAME")

	cfg, err := NewLoader(WithEnvPrefix("CUSTOM_")).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.App.Name != "custom-prefix-kernel" {
		t.Errorf("expected 'custom-prefix-kernel', got %s", cfg.App.Name)
	}
}

func TestMustLoad_Success(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustLoad should not panic with valid config")
		}
	}()

	cfg := MustLoad()
	if cfg == nil {
		t.Error("expected non-nil config")
	}
}

func TestLoad_Simple(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg == nil {
		t.Error("expected non-nil config")
	}
}

func TestLoader_ConfigEnvVar(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom-config.yaml")

	configContent := `
app:
  name: config-env-var-kernel
`
	os.WriteFile(configPath, []byte(configContent), 0644)

	os.Setenv("CONFIG_PATH", configPath)
	defer os.Unsetenv("CONFIG_PATH")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.App.Name != "config-env-var-kernel" {
		t.Errorf("expected 'config-env-var-kernel', got %s", cfg.App.Name)
	}
}
