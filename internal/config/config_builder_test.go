package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// StructuredConfig carrying only defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.Auth.TokenDuration)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("source failed")

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "source failed")
}

// TestBuild_EarlierSourceWins verifies the mergo semantics the builder relies
// on: a field set by an earlier source is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "first:1111"}},
		&StructuredConfig{Server: Server{HTTPAddress: "second:2222"}, Storage: Storage{DB: DB{DSN: "dsn-from-second"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, "dsn-from-second", cfg.Storage.DB.DSN)
}

// TestWithJSON_PathFromEarlierSource verifies that withJSON picks up the file
// path recorded by a previously loaded source.
func TestWithJSON_PathFromEarlierSource(t *testing.T) {
	path := writeTempFile(t, `{"server": {"http_address": "json-host:5000"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-host:5000", b.configs[1].Server.HTTPAddress)
}

// TestWithJSON_BadPathSetsError verifies that an unreadable JSON path is
// recorded as a builder error.
func TestWithJSON_BadPathSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()

	require.Error(t, b.err)
}

// TestClientConfig_Defaults verifies the documented failover behavior of the
// admin client: with nothing configured it targets the local development API.
func TestClientConfig_Defaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultAPIBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, defaultSessionFile, cfg.Storage.SessionPath)
	assert.Equal(t, defaultRefreshInterval, cfg.Workers.RefreshInterval)
	assert.NoError(t, cfg.validate())
}
