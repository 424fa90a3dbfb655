package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	enabled bool
}

func (testConfig) ServiceName() string { return "expenses-ledger-test" }
func (testConfig) AgentAddr() string   { return "127.0.0.1:6831" }
func (c testConfig) Enabled() bool     { return c.enabled }

func Test_OnDisabledTracing_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(testConfig{})

	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}

func Test_OnEnabledTracing_ShouldInstallGlobalTracer(t *testing.T) {
	prev := opentracing.GlobalTracer()
	t.Cleanup(func() { opentracing.SetGlobalTracer(prev) })

	closer, err := Init(testConfig{enabled: true})

	require.NoError(t, err)
	defer closer.Close()
	assert.NotEqual(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}
