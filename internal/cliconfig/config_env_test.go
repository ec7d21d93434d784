package cliconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"QUADSWEEP_PROBLEM":      "runge",
				"QUADSWEEP_METHODS":      "gauss, simpson",
				"QUADSWEEP_MAX_N":        "640",
				"QUADSWEEP_GAUSS_POINTS": "4,8,16",
				"QUADSWEEP_SPIKE_WIDTH":  "0.01",
				"QUADSWEEP_SEED":         "jacobi",
				"QUADSWEEP_LABEL_USED":   "1",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Problem:     "runge",
				Methods:     []string{"gauss", "simpson"},
				MaxN:        640,
				GaussPoints: []int{4, 8, 16},
				SpikeWidth:  0.01,
				Seed:        "jacobi",
				LabelUsed:   true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"QUADSWEEP_PROBLEM": "runge",
				"QUADSWEEP_DIGITS":  "60",
			},
			changed:  map[string]bool{"problem": true},
			initial:  Config{Problem: "bell"},
			expected: Config{Problem: "bell", Digits: 60},
		},
		{
			name:     "non-positive ints are ignored",
			envVars:  map[string]string{"QUADSWEEP_MIN_N": "0"},
			changed:  map[string]bool{},
			initial:  Config{MinN: 10},
			expected: Config{MinN: 10},
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"QUADSWEEP_MAX_N": "lots"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid list",
			envVars: map[string]string{"QUADSWEEP_GAUSS_POINTS": "2,x"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
