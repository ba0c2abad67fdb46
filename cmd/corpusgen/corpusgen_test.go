package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavesplatform/valuecodec/pkg/corpus"
	"go.uber.org/zap/zaptest"
)

func TestRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := zaptest.NewLogger(t)
	opts := options{output: "corpus", format: corpus.FormatRaw, manifest: true, check: true}
	require.NoError(t, run(context.Background(), fs, logger, opts))

	ok, err := afero.Exists(fs, filepath.Join("corpus", corpus.ManifestFileName))
	require.NoError(t, err)
	assert.True(t, ok)
	b, err := afero.ReadFile(fs, filepath.Join("corpus", "deserialize", "minimal"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	opts.verify = true
	require.NoError(t, run(context.Background(), fs, logger, opts))

	require.NoError(t, afero.WriteFile(fs, filepath.Join("corpus", "container", "empty"), []byte{0}, 0o644))
	assert.ErrorContains(t, run(context.Background(), fs, logger, opts), "differ from the cases")
}

func TestRunGoFuzzVerifyMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	opts := options{output: "testdata/fuzz", format: corpus.FormatGoFuzz, verify: true}
	err := run(context.Background(), fs, zaptest.NewLogger(t), opts)
	assert.ErrorContains(t, err, "differ from the cases")
}
