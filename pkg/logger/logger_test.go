package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lunchcontrol-api/pkg/logger"
)

func TestNewWithWriter_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{Level: "debug", Service: "lunchcontrol-api"})

	log.Component("scheduler").Info().Str("task", "autosave").Msg("tick")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "lunchcontrol-api", line["service"])
	assert.Equal(t, "scheduler", line["component"])
	assert.Equal(t, "autosave", line["task"])
	assert.Equal(t, "info", line["level"])
}

func TestNewWithWriter_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{Level: "WARN"})

	log.Info().Msg("oculto")
	assert.Zero(t, buf.Len())
	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
