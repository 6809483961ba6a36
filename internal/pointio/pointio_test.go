package pointio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvtda/dbscan"
	"github.com/katalvlaran/lvtda/homology"
	"github.com/katalvlaran/lvtda/internal/pointio"
	"github.com/katalvlaran/lvtda/mapper"
	"github.com/katalvlaran/lvtda/rips"
	"github.com/katalvlaran/lvtda/tdaerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "x,y\n# comment\n0, 1\n2.5,-3e1\n"
	pts, err := pointio.ReadCSV(strings.NewReader(in), pointio.ReadOptions{Header: true})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {2.5, -30}}, pts)

	pts, err = pointio.ReadCSV(strings.NewReader("1;2\n3;4\n"), pointio.ReadOptions{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, pts)

	_, err = pointio.ReadCSV(strings.NewReader("1,abc\n"), pointio.ReadOptions{})
	assert.ErrorIs(t, err, pointio.ErrMalformed)
	assert.ErrorIs(t, err, tdaerr.ErrShape)
}

func TestReadJSON(t *testing.T) {
	pts, err := pointio.ReadJSON(strings.NewReader("[[1,2],[3,4.5]]"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4.5}}, pts)

	_, err = pointio.ReadJSON(strings.NewReader(`{"x":1}`))
	assert.ErrorIs(t, err, pointio.ErrMalformed)
}

func TestReadFile_InfersFormat(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "points.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte("[[1],[2]]"), 0o600))
	csvPath := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(csvPath, []byte("1\n2\n"), 0o600))

	for _, p := range []string{jsonPath, csvPath} {
		pts, err := pointio.ReadFile(p, "", pointio.ReadOptions{})
		require.NoError(t, err, p)
		assert.Equal(t, [][]float64{{1}, {2}}, pts)
	}

	_, err := pointio.ReadFile(filepath.Join(dir, "nope.csv"), "", pointio.ReadOptions{})
	assert.Error(t, err)
	_, err = pointio.Read(strings.NewReader(""), "xml", pointio.ReadOptions{})
	assert.ErrorIs(t, err, pointio.ErrMalformed)
}

func TestRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pointio.WriteJSON(&buf, pointio.NewClusteringRecord(dbscan.Labels{1, 1, 0})))
	assert.JSONEq(t, `{"labels":[1,1,0],"clusters":[[0,1]],"noise":[2]}`, buf.String())

	buf.Reset()
	diag := homology.Diagram{
		{Dim: 0, Birth: 0, Death: 1.5},
		{Dim: 0, Birth: 0, Death: homology.Infinity, Cycle: []rips.Simplex{{Vertices: []int{0}}}},
	}
	require.NoError(t, pointio.WriteJSON(&buf, pointio.NewIntervalRecords(diag)))
	assert.JSONEq(t, `[{"dim":0,"birth":0,"death":1.5},{"dim":0,"birth":0,"death":null,"cycle":[[0]]}]`, buf.String())

	buf.Reset()
	g := &mapper.Graph{
		Nodes: []mapper.Node{{ID: 0, Interval: 0, Cluster: 1, Members: []int{0, 1}}, {ID: 1, Interval: 1, Cluster: 1, Members: []int{1}}},
		Edges: []mapper.Edge{{From: 0, To: 1, Shared: 1}},
	}
	require.NoError(t, pointio.WriteJSON(&buf, pointio.NewGraphRecord(g)))
	assert.JSONEq(t, `{"nodes":[{"id":0,"interval":0,"cluster":1,"members":[0,1]},{"id":1,"interval":1,"cluster":1,"members":[1]}],"edges":[{"from":0,"to":1,"shared":1}]}`, buf.String())
}
