package prof_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symcalc/internal/prof"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	opts := prof.Options{
		CPU:   filepath.Join(dir, "cpu.pprof"),
		Mem:   filepath.Join(dir, "mem.pprof"),
		Trace: filepath.Join(dir, "trace.out"),
	}
	require.True(t, opts.Enabled())

	s, err := prof.Start(opts)
	require.NoError(t, err)
	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())

	for _, p := range []string{opts.CPU, opts.Mem, opts.Trace} {
		st, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Positive(t, st.Size(), p)
	}
}

func TestStartFailsCleanly(t *testing.T) {
	dir := t.TempDir()
	_, err := prof.Start(prof.Options{
		CPU:   filepath.Join(dir, "cpu.pprof"),
		Trace: filepath.Join(dir, "missing", "trace.out"),
	})
	require.Error(t, err)

	// CPU profiling must be free again
	s, err := prof.Start(prof.Options{CPU: filepath.Join(dir, "cpu2.pprof")})
	require.NoError(t, err)
	require.NoError(t, s.Stop())
	assert.False(t, prof.Options{}.Enabled())
}
