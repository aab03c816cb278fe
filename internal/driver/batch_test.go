package driver_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symcalc/internal/driver"
	"symcalc/internal/trace"
)

func TestReadLinesSkipsBlank(t *testing.T) {
	lines, err := driver.ReadLines(strings.NewReader("1+1\n\n   \nx\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []driver.BatchLine{
		{Number: 1, Text: "1+1"},
		{Number: 4, Text: "x"},
	}, lines)
}

func TestBatchKeepsOrder(t *testing.T) {
	var src strings.Builder
	for i := range 50 {
		if i%7 == 3 {
			src.WriteString("1 @\n")
			continue
		}
		src.WriteString(strings.Repeat("1 + ", i) + "0\n")
	}
	lines, err := driver.ReadLines(strings.NewReader(src.String()))
	require.NoError(t, err)

	res, err := driver.Batch(context.Background(), lines, driver.BatchOptions{Jobs: 4})
	require.NoError(t, err)
	require.Len(t, res.Items, 50)

	failed := 0
	for i, it := range res.Items {
		assert.Equal(t, i+1, it.Line)
		if i%7 == 3 {
			failed++
			assert.True(t, it.Failed)
			assert.Contains(t, it.Output, "LEX1001")
			continue
		}
		assert.False(t, it.Failed)
		assert.Equal(t, strconv.Itoa(i)+"\n", it.Output)
	}
	assert.Equal(t, failed, res.Failed)
	assert.Zero(t, res.Cached)
}

func TestBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := driver.Batch(ctx, []driver.BatchLine{{Number: 1, Text: "1"}}, driver.BatchOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBatchUsesCache(t *testing.T) {
	cache, err := driver.OpenDiskCache(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)

	lines := []driver.BatchLine{{Number: 1, Text: "6/4"}, {Number: 2, Text: "(1"}}
	opts := driver.BatchOptions{Cache: cache}

	first, err := driver.Batch(context.Background(), lines, opts)
	require.NoError(t, err)
	assert.Zero(t, first.Cached)

	second, err := driver.Batch(context.Background(), lines, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Cached)
	for i := range lines {
		assert.Equal(t, first.Items[i].Output, second.Items[i].Output)
		assert.Equal(t, first.Items[i].Failed, second.Items[i].Failed)
	}

	// другой формат, другой ключ
	opts.Render.Format = driver.FormatJSON
	third, err := driver.Batch(context.Background(), lines, opts)
	require.NoError(t, err)
	assert.Zero(t, third.Cached)
}

func TestDiskCacheRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "c")
	cache, err := driver.OpenDiskCache(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cache.Dir())

	key := driver.KeyFor("1+1", driver.Options{}, driver.RenderOptions{})
	var got driver.CachePayload
	hit, err := cache.Get(key, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Put(key, &driver.CachePayload{Stage: "simplify", Input: "1+1", Output: "2\n"}))
	hit, err = cache.Get(key, &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "2\n", got.Output)
	assert.Equal(t, "simplify", got.Stage)

	require.NoError(t, cache.DropAll())
	hit, err = cache.Get(key, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, cache.DropAll())
	_, err = os.Stat(dir)
	require.NoError(t, err)
}

func TestKeyForDependsOnOptions(t *testing.T) {
	base := driver.KeyFor("x", driver.Options{}, driver.RenderOptions{})
	assert.Equal(t, base, driver.KeyFor("x", driver.Options{}, driver.RenderOptions{}))
	assert.NotEqual(t, base, driver.KeyFor("y", driver.Options{}, driver.RenderOptions{}))
	assert.NotEqual(t, base, driver.KeyFor("x", driver.Options{Stage: driver.StageAST}, driver.RenderOptions{}))
	assert.NotEqual(t, base, driver.KeyFor("x", driver.Options{}, driver.RenderOptions{Color: true}))
}

func TestBatchTraceSpans(t *testing.T) {
	var buf bytes.Buffer
	tracer := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatNDJSON)
	ctx := trace.WithTracer(context.Background(), tracer)

	lines := []driver.BatchLine{{Number: 1, Text: "1+1"}, {Number: 3, Text: "1 @"}}
	_, err := driver.Batch(ctx, lines, driver.BatchOptions{Jobs: 2})
	require.NoError(t, err)

	out := buf.String()
	for _, name := range []string{`"batch"`, `"line:1"`, `"line:3"`, `"lex"`, `"simplify"`} {
		assert.Contains(t, out, `"name":`+name)
	}
	assert.Contains(t, out, `"kind":"failure"`)
}

func TestBatchReportsProgress(t *testing.T) {
	var done atomic.Int32
	lines := []driver.BatchLine{{Number: 1, Text: "1"}, {Number: 2, Text: "2"}, {Number: 5, Text: "x y"}}
	_, err := driver.Batch(context.Background(), lines, driver.BatchOptions{
		Jobs:     2,
		Progress: func(driver.BatchItem) { done.Add(1) },
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, done.Load())
}
