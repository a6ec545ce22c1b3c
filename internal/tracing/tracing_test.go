package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	on bool
}

func (c testConfig) Enabled() bool         { return c.on }
func (c testConfig) ServiceName() string   { return "currconv-test" }
func (c testConfig) AgentHostPort() string { return "127.0.0.1:6831" }

func Test_OnDisabled_ShouldReturnNopCloser(t *testing.T) {
	closer, err := Init(testConfig{})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func Test_OnEnabled_ShouldInstallTracer(t *testing.T) {
	closer, err := Init(testConfig{on: true})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}
