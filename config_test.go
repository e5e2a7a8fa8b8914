package strem_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cps-atlas/strem"
)

func Test_MergeEnvChannels_parsesShellQuotedList(t *testing.T) {
	t.Setenv("STREM_CHANNELS", `cam0 "front door"`)

	cfg, err := strem.MergeEnvChannels(strem.Default())
	require.NoError(t, err)

	assert.True(t, cfg.Channels.Has("cam0"))
	assert.True(t, cfg.Channels.Has("front door"))
}

func Test_MergeEnvChannels_unsetIsNoop(t *testing.T) {
	os.Unsetenv("STREM_CHANNELS")

	cfg, err := strem.MergeEnvChannels(strem.Default())
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Channels.Len())
}

func Test_ApplyFlagChannels_replacesRatherThanUnions(t *testing.T) {
	cfg := strem.Default()
	cfg.Channels.Add("cam0")

	cfg = strem.ApplyFlagChannels(cfg, []string{"cam1", "cam2"})

	assert.False(t, cfg.Channels.Has("cam0"))
	assert.True(t, cfg.Channels.Has("cam1"))
	assert.True(t, cfg.Channels.Has("cam2"))
}

func Test_ApplyFlagChannels_emptyLeavesConfigUnchanged(t *testing.T) {
	cfg := strem.Default()
	cfg.Channels.Add("cam0")

	cfg = strem.ApplyFlagChannels(cfg, nil)

	assert.True(t, cfg.Channels.Has("cam0"))
}

func Test_LoadConfigFile_missingFileIsNotAnError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := strem.LoadConfigFile(strem.Default())
	require.NoError(t, err)
	assert.False(t, cfg.Online)
}

func Test_LoadConfigFile_mergesRecognizedKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(dir+"/strem", 0o755))
	require.NoError(t, os.WriteFile(dir+"/strem/config.toml", []byte(`
online = true
channels = ["cam0", "cam1"]
max_count = 3
export = true
quiet = true
skip = 2
`), 0o644))

	cfg, err := strem.LoadConfigFile(strem.Default())
	require.NoError(t, err)

	assert.True(t, cfg.Online)
	assert.True(t, cfg.Channels.Has("cam0"))
	assert.True(t, cfg.Channels.Has("cam1"))
	assert.Equal(t, 3, cfg.MaxCount)
	assert.True(t, cfg.Export)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, 2, cfg.Skip)
}
