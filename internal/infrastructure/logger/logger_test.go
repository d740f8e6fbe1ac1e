package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOptions_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"error", "error", logrus.ErrorLevel},
		{"empty falls back", "", logrus.InfoLevel},
		{"garbage falls back", "loud", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewWithOptions(tt.level, "", &bytes.Buffer{})
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNewWithOptions_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions("info", "JSON", &buf)

	log.WithField("scene", 1).Info("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, float64(1), entry["scene"])
}
