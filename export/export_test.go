package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/graphsynth/builder"
	"github.com/katalvlaran/graphsynth/core"
	"github.com/katalvlaran/graphsynth/degree"
	"github.com/katalvlaran/graphsynth/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(t *testing.T) degree.Table {
	t.Helper()
	tbl, err := degree.FromRows([]degree.Row{
		{Degree: 0, InCount: 1, OutCount: 3},
		{Degree: 1, InCount: 3},
		{Degree: 3, OutCount: 1},
	})
	require.NoError(t, err)
	return tbl
}

func TestEncodeDegreeCSV_Schema(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.EncodeDegreeCSV(&buf, sampleTable(t)))
	assert.Equal(t, "Count,In-degree,Out-degree\n0,1,3\n1,3,0\n3,0,1\n", buf.String())

	buf.Reset()
	require.NoError(t, export.EncodeDegreeCSV(&buf, degree.Table{}))
	assert.Equal(t, "Count,In-degree,Out-degree\n", buf.String())
}

func TestDecodeDegreeCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	want := sampleTable(t)
	var buf bytes.Buffer
	require.NoError(t, export.EncodeDegreeCSV(&buf, want))

	got, err := export.DecodeDegreeCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, want.Rows(), got.Rows())
}

func TestDecodeDegreeCSV_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", export.ErrBadHeader},
		{"wrong header", "Degree,In,Out\n1,1,1\n", export.ErrBadHeader},
		{"short header", "Count,In-degree\n", export.ErrBadHeader},
		{"non-integer", "Count,In-degree,Out-degree\n1,x,1\n", export.ErrBadRecord},
		{"short record", "Count,In-degree,Out-degree\n1,1\n", export.ErrBadRecord},
		{"duplicate degree", "Count,In-degree,Out-degree\n1,1,1\n1,2,2\n", degree.ErrBadRows},
	}
	for _, tc := range cases {
		_, err := export.DecodeDegreeCSV(strings.NewReader(tc.input))
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestWriteDegreeCSV_Atomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "degrees.csv")
	require.NoError(t, export.WriteDegreeCSV(path, sampleTable(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Count,In-degree,Out-degree\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files may remain")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteDegreeCSV_Failure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "degrees.csv")
	err := export.WriteDegreeCSV(path, sampleTable(t))
	assert.ErrorIs(t, err, export.ErrWrite)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEncodeEdgeCSV(t *testing.T) {
	t.Parallel()

	es, err := core.FromEdges(3, []core.Edge{{From: 0, To: 1, Weight: 0.25}, {From: 2, To: 2}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.EncodeEdgeCSV(&buf, es))
	assert.Equal(t, "Source,Destination,Weight\n0,1,0.25\n2,2,0\n", buf.String())

	buf.Reset()
	require.NoError(t, export.EncodeEdgeCSV(&buf, nil))
	assert.Equal(t, "Source,Destination,Weight\n", buf.String())

	path := filepath.Join(t.TempDir(), "edges.csv")
	require.NoError(t, export.WriteEdgeCSV(path, es))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Source,Destination,Weight\n0,1,0.25\n2,2,0\n", string(data))
}

func TestEdgeParquet_RoundTrip(t *testing.T) {
	t.Parallel()

	// 2^9·40 edges spans two write batches.
	es, err := builder.Build(builder.Kronecker(9, 40), builder.WithSeed(13))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "edges.parquet")
	require.NoError(t, export.WriteEdgeParquet(path, es))

	got, err := export.ReadEdgeParquet(path)
	require.NoError(t, err)
	assert.Equal(t, es.Edges(), got)
}

func TestReadEdgeParquet_Missing(t *testing.T) {
	t.Parallel()

	_, err := export.ReadEdgeParquet(filepath.Join(t.TempDir(), "nope.parquet"))
	assert.Error(t, err)
}
