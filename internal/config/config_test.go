package config

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		wantPort int
		wantErr  error
	}{
		{
			name:     "default port",
			envValue: "",
			wantPort: 8050,
		},
		{
			name:     "custom port",
			envValue: "9000",
			wantPort: 9000,
		},
		{
			name:     "not a number",
			envValue: "http",
			wantErr:  ErrInvalidPort,
		},
		{
			name:     "out of range",
			envValue: "70000",
			wantErr:  ErrInvalidPort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.envValue)

			cfg, err := Load()

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr == nil {
				if cfg == nil {
					t.Fatal("Load() returned nil config with no error")
				}
				if cfg.Port != tt.wantPort {
					t.Errorf("Load() Port = %v, want %v", cfg.Port, tt.wantPort)
				}
			} else if cfg != nil {
				t.Errorf("Load() returned non-nil config with error")
			}
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	cfg := Default()
	if cfg.DatasetPath != "data/spotify_final.csv" ||
		cfg.ClassifierPath != "models/genre_model.json" ||
		cfg.ScalerPath != "models/scaler.json" ||
		cfg.EncoderPath != "models/label_encoder.json" {
		t.Errorf("Default() = %+v", cfg)
	}
	if cfg.DatasetDSN != "" {
		t.Errorf("DatasetDSN = %q, want empty", cfg.DatasetDSN)
	}
}

func TestAddr(t *testing.T) {
	cfg := Default()
	if got := cfg.Addr(); got != "0.0.0.0:8050" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8050", got)
	}
	cfg.Port = 3000
	if got := cfg.Addr(); got != "0.0.0.0:3000" {
		t.Errorf("Addr() = %q, want 0.0.0.0:3000", got)
	}
}
