package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()
	require.NotNil(t, registry)
	require.NotNil(t, registry.Core())
	require.NotNil(t, registry.PrometheusRegistry())
}

func TestCoreMetricsObservable(t *testing.T) {
	registry := NewRegistry()
	core := registry.Core()

	core.ComponentsCreated.WithLabelValues("tokenizer_whitespace").Inc()
	core.BuildFailures.WithLabelValues("unknown_component").Inc()
	core.StageExecutions.WithLabelValues("tokenizer_whitespace", "process", "ok").Inc()
	core.StageDuration.WithLabelValues("tokenizer_whitespace", "process").Observe(0.01)

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, fam := range families {
		names[fam.GetName()] = true
	}
	assert.True(t, names["rasa_nlu_builder_components_created_total"])
	assert.True(t, names["rasa_nlu_builder_failures_total"])
	assert.True(t, names["rasa_nlu_pipeline_stage_executions_total"])
	assert.True(t, names["rasa_nlu_pipeline_stage_duration_seconds"])
}

func TestDoubleRegistrationPanicsOnSharedRegistry(t *testing.T) {
	registry := NewRegistry()
	metrics := NewMetrics()

	assert.Panics(t, func() {
		registry.PrometheusRegistry().MustRegister(metrics.ComponentsCreated)
	})
}
