package transform

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pangfa-core/gfa"
)

var ctx = context.Background()

func source(lines ...string) gfa.Source {
	return gfa.BytesSource("t", []byte(strings.Join(lines, "\n")+"\n"))
}

type sink struct{ lines []string }

func (s *sink) emit(r gfa.Record) error {
	s.lines = append(s.lines, gfa.Format(r))
	return nil
}

func TestRename(t *testing.T) {
	names, err := ReadNames("names.tsv", strings.NewReader("# old\tnew\np1\tchr1\n\np2\tchr2\r\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"p1": "chr1", "p2": "chr2"}, names)

	var out sink
	n, err := Rename(ctx, source("S\t1\tA", "P\tp1\t1+\t*", "P\tp2\t1-"), names, out.emit)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"S\t1\tA", "P\tchr1\t1+\t*", "P\tchr2\t1-"}, out.lines)

	_, err = Rename(ctx, source("P\tp3\t1+"), names, out.emit)
	assert.True(t, errors.Is(err, gfa.ErrNotFound))
	assert.Contains(t, err.Error(), `"p3"`)
}

func TestReadNamesErrors(t *testing.T) {
	_, err := ReadNames("n.tsv", strings.NewReader("a\tb\tc\n"))
	assert.True(t, errors.Is(err, ErrTable))
	assert.Contains(t, err.Error(), "n.tsv:1")

	_, err = ReadNames("n.tsv", strings.NewReader("a\tb\na\tc\n"))
	assert.True(t, errors.Is(err, ErrTable))
}

var maskGraph = []string{
	"H\tVN:Z:1.1",
	"S\t1\tA",
	"S\t2\tC",
	"S\t3\tG",
	"S\t4\tT",
	"L\t1\t+\t2\t+\t0M",
	"L\t2\t+\t4\t+\t0M",
	"L\t1\t+\t3\t+\t0M",
	"L\t3\t+\t4\t+\t0M",
	"P\tref\t1+,2+,4+",
	"W\tHG1\t0\tchr1\t0\t3\t>1>3>4",
}

func TestMaskWalk(t *testing.T) {
	var out sink
	st, err := Mask(ctx, source(maskGraph...), []string{"HG1#0#chr1"}, out.emit)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"H\tVN:Z:1.1",
		"S\t1\tA",
		"S\t2\tC",
		"S\t4\tT",
		"L\t1\t+\t2\t+\t0M",
		"L\t2\t+\t4\t+\t0M",
		"P\tref\t1+,2+,4+",
	}, out.lines)
	assert.Equal(t, MaskStats{Traversals: 1, Segments: 1, Links: 2}, st)
}

func TestMaskUnknownPath(t *testing.T) {
	_, err := Mask(ctx, source(maskGraph...), []string{"nope"}, (&sink{}).emit)
	assert.True(t, errors.Is(err, gfa.ErrNotFound))
}

func TestOptimize(t *testing.T) {
	var out sink
	var mapping bytes.Buffer
	st, err := Optimize(ctx, source(
		"L\t10\t+\t7\t-\t0M",
		"S\t10\tAC",
		"S\t7\tG",
		"L\t7\t+\t99\t+\t0M",
		"P\tp\t10+,7-\t*",
		"W\ts\t0\tc\t*\t*\t<7>10",
	), &mapping, out.emit)
	require.NoError(t, err)
	assert.Equal(t, "10\t1\n7\t2\n", mapping.String())
	assert.Equal(t, []string{
		"L\t1\t+\t2\t-\t0M",
		"S\t1\tAC",
		"S\t2\tG",
		"P\tp\t1+,2-\t*",
		"W\ts\t0\tc\t*\t*\t<2>1",
	}, out.lines)
	assert.Equal(t, RenumberStats{Segments: 2, DroppedLinks: 1}, st)
}

func TestOptimizeUnknownStep(t *testing.T) {
	_, err := Optimize(ctx, source("S\t1\tA", "P\tp\t1+,5+"), &bytes.Buffer{}, (&sink{}).emit)
	assert.True(t, errors.Is(err, gfa.ErrNotFound))
}

func TestConcatenate(t *testing.T) {
	var out sink
	_, err := Concatenate(ctx,
		source("H\tVN:Z:1.1", "S\t3\tA", "S\t8\tC", "L\t3\t+\t8\t+\t0M"),
		source("H\tVN:Z:1.1", "S\t1\tG", "S\t2\tT", "L\t1\t+\t2\t-\t0M", "P\tb\t1+,2-\t0M"),
		out.emit)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"H\tVN:Z:1.1",
		"S\t3\tA",
		"S\t8\tC",
		"L\t3\t+\t8\t+\t0M",
		"S\t9\tG",
		"S\t10\tT",
		"L\t9\t+\t10\t-\t0M",
		"P\tb\t9+,10-\t0M",
	}, out.lines)
}
