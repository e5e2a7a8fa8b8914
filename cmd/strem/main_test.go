package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildConfig_defaultsWhenNoFlagsChanged(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STREM_CHANNELS", "")

	cfg, err := buildConfig("[:car:]")
	require.NoError(t, err)

	assert.Equal(t, "[:car:]", cfg.Pattern)
	assert.False(t, cfg.Online)
	assert.Equal(t, 0, cfg.MaxCount)
	assert.Equal(t, 0, cfg.Channels.Len())
}

func Test_buildConfig_envChannelsMergeWhenFlagNotGiven(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STREM_CHANNELS", "cam0 cam1")

	cfg, err := buildConfig("[:car:]")
	require.NoError(t, err)

	assert.True(t, cfg.Channels.Has("cam0"))
	assert.True(t, cfg.Channels.Has("cam1"))
}
