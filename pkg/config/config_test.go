package config

import (
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				App:    AppConfig{Name: "test-kernel"},
				Log:    LogConfig{Level: "info"},
				Kernel: KernelConfig{DefaultAlgorithm: "astar", ParetoSteps: 5, MaxWorkers: 8},
			},
			wantErr: false,
		},
		{
			name: "missing app name",
			cfg: Config{
				Log:    LogConfig{Level: "info"},
				Kernel: KernelConfig{ParetoSteps: 5, MaxWorkers: 8},
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			cfg: Config{
				App:    AppConfig{Name: "test"},
				Log:    LogConfig{Level: "invalid"},
				Kernel: KernelConfig{ParetoSteps: 5, MaxWorkers: 8},
			},
			wantErr: true,
		},
		{
			name: "valid debug level",
			cfg: Config{
				App:    AppConfig{Name: "test"},
				Log:    LogConfig{Level: "debug"},
				Kernel: KernelConfig{ParetoSteps: 5, MaxWorkers: 8},
			},
			wantErr: false,
		},
		{
			name: "invalid default algorithm",
			cfg: Config{
				App:    AppConfig{Name: "test"},
				Log:    LogConfig{Level: "info"},
				Kernel: KernelConfig{DefaultAlgorithm: "teleport", ParetoSteps: 5, MaxWorkers: 8},
			},
			wantErr: true,
		},
		{
			name: "zero pareto steps",
			cfg: Config{
				App:    AppConfig{Name: "test"},
				Log:    LogConfig{Level: "info"},
				Kernel: KernelConfig{ParetoSteps: 0, MaxWorkers: 8},
			},
			wantErr: true,
		},
		{
			name: "zero max workers",
			cfg: Config{
				App:    AppConfig{Name: "test"},
				Log:    LogConfig{Level: "info"},
				Kernel: KernelConfig{ParetoSteps: 5, MaxWorkers: 0},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"dev", true},
		{"production", false},
		{"staging", false},
	}

	for _, tt := range tests {
		cfg := &Config{App: AppConfig{Environment: tt.env}}
		if got := cfg.IsDevelopment(); got != tt.want {
			t.Errorf("IsDevelopment() for %s = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"prod", true},
		{"development", false},
		{"staging", false},
	}

	for _, tt := range tests {
		cfg := &Config{App: AppConfig{Environment: tt.env}}
		if got := cfg.IsProduction(); got != tt.want {
			t.Errorf("IsProduction() for %s = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestCacheConfig_Address(t *testing.T) {
	cfg := CacheConfig{
		Host: "redis.local",
		Port: 6379,
	}

	addr := cfg.Address()
	if addr != "redis.local:6379" {
		t.Errorf("expected 'redis.local:6379', got %s", addr)
	}
}
