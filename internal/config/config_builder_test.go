package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The builder is exercised without withFlags: flag.Parse may only run once
// per test binary, and flag precedence is covered by merge-order tests here.

func TestConfigBuilder_EnvOnly(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:9999")

	cfg, err := newConfigBuilder().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "from-env:1"}},
		&StructuredConfig{Server: Server{HTTPAddress: "from-json:2", RequestTimeout: 30 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env:1", cfg.Server.HTTPAddress, "first source must win for set fields")
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout, "later sources must fill unset fields")
}

func TestConfigBuilder_JSONPathPickedFromEarlierSources(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"http_address": "json-host:8080"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "json-host:8080", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_BrokenJSONSurfacesError(t *testing.T) {
	path := writeTempJSON(t, `{broken`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	_, err := b.withJSON().build()
	require.Error(t, err)
}
