package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	baseJSON = `{"benchmarks":[
		{"name":"BM_DecodeValue","real_time":1000,"time_unit":"ns"},
		{"name":"BM_DecodeValue_mean","real_time":1000,"time_unit":"ns"},
		{"name":"BM_EncodeValue","real_time":500,"time_unit":"ns"}
	]}`
	fastJSON = `{"benchmarks":[
		{"name":"BM_DecodeValue","real_time":1020,"time_unit":"ns"},
		{"name":"BM_EncodeValue","real_time":300,"time_unit":"ns"}
	]}`
	slowJSON = `{"benchmarks":[
		{"name":"BM_DecodeValue","real_time":2000,"time_unit":"ns"},
		{"name":"BM_EncodeValue","real_time":500,"time_unit":"ns"}
	]}`
)

func setup(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "base.json", []byte(baseJSON), 0o644))
	require.NoError(t, afero.WriteFile(fs, "fast.json", []byte(fastJSON), 0o644))
	require.NoError(t, afero.WriteFile(fs, "slow.json", []byte(slowJSON), 0o644))
	return fs
}

func TestRunNoRegression(t *testing.T) {
	fs := setup(t)
	opts := options{base: "base.json", pr: "fast.json", threshold: 0.1, output: "comparison.md"}
	require.NoError(t, run(fs, zaptest.NewLogger(t), opts))

	report, err := afero.ReadFile(fs, "comparison.md")
	require.NoError(t, err)
	assert.Contains(t, string(report), "- **Total benchmarks**: 2\n")
	assert.Contains(t, string(report), "| `BM_EncodeValue` | 500.00ns | 300.00ns | **-40.0%** :chart_with_downwards_trend: |")
	ok, err := afero.Exists(fs, regressionMarker)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRunRegression(t *testing.T) {
	fs := setup(t)
	opts := options{base: "base.json", pr: "slow.json", threshold: 0.1, output: "comparison.md"}
	assert.ErrorIs(t, run(fs, zaptest.NewLogger(t), opts), errRegression)

	report, err := afero.ReadFile(fs, "comparison.md")
	require.NoError(t, err)
	assert.Contains(t, string(report), "| `BM_DecodeValue` | 1.00us | 2.00us | **+100.0%** :warning: |")
	ok, err := afero.Exists(fs, regressionMarker)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRunMissingInput(t *testing.T) {
	fs := setup(t)
	opts := options{base: "base.json", pr: "nope.json", threshold: 0.1, output: "comparison.md"}
	assert.ErrorContains(t, run(fs, zaptest.NewLogger(t), opts), "failed to read benchmark results")
}
