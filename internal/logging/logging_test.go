package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/graph/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "graph.log")
	closer, err := Setup(config.Logging{
		Level: "DEBUG",
		File:  file,
	})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.WithField("axis", "x").Debug("layout done")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "layout done")
	assert.Contains(t, string(data), "axis=x")
}

func TestSetupInvalidLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "graph.log")
	closer, err := Setup(config.Logging{
		Level: "loud",
		File:  file,
	})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
