package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maze3d"
)

func TestSnapshotRoundTrip(t *testing.T) {
	engine, err := wallWithGap().Engine()
	require.NoError(t, err)

	snapshot := NewSnapshot(engine)
	assert.Equal(t, [3]int{5, 5, 5}, snapshot.Size)
	assert.Equal(t, maze3d.FaceAdjacent, snapshot.Adjacency)
	assert.Len(t, snapshot.Blocked, 24)

	path := filepath.Join(t.TempDir(), "grid.json")
	require.NoError(t, SaveSnapshot(snapshot, path))

	loaded, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, snapshot, *loaded)

	restored, err := loaded.Engine()
	require.NoError(t, err)
	assert.Equal(t, engine.Grid().Occupancy(), restored.Grid().Occupancy())

	want, err := engine.FindPath(maze3d.Coord{0, 0, 0}, maze3d.Coord{0, 4, 0}, maze3d.BFS)
	require.NoError(t, err)
	got, err := restored.FindPath(maze3d.Coord{0, 0, 0}, maze3d.Coord{0, 4, 0}, maze3d.BFS)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSnapshotFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size":[2,1,1],"blocked":[[1,0,0]]}`), 0644))

	snapshot, err := LoadSnapshot(path)
	require.NoError(t, err)
	engine, err := snapshot.Engine()
	require.NoError(t, err)
	assert.Equal(t, maze3d.FaceAdjacent, engine.Adjacency())
	assert.False(t, engine.Grid().IsFree(maze3d.Coord{1, 0, 0}))
	assert.True(t, engine.Grid().IsFree(maze3d.Coord{0, 0, 0}))
}

func TestSnapshotErrors(t *testing.T) {
	_, err := Snapshot{Size: [3]int{2, 0, 2}}.Occupancy()
	assert.ErrorIs(t, err, maze3d.ErrInvalidConfiguration)

	_, err = Snapshot{Size: [3]int{2, 2, 2}, Blocked: []maze3d.Coord{{2, 0, 0}}}.Occupancy()
	assert.ErrorIs(t, err, maze3d.ErrInvalidConfiguration)

	_, err = LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size":`), 0644))
	_, err = LoadSnapshot(path)
	assert.Error(t, err)

	for name, body := range map[string]string{
		"short cell": `{"size":[2,2,2],"blocked":[[1,1]]}`,
		"long cell":  `{"size":[2,2,2],"blocked":[[1,1,1,1]]}`,
		"short size": `{"size":[2,2],"blocked":[]}`,
		"long size":  `{"size":[2,2,2,2],"blocked":[]}`,
		"no size":    `{"blocked":[[0,0,0]]}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "malformed.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := LoadSnapshot(path)
			assert.Error(t, err)
		})
	}

	path = filepath.Join(t.TempDir(), "short.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size":[2,2,2],"blocked":[[1,1]]}`), 0644))
	_, err = LoadSnapshot(path)
	assert.ErrorIs(t, err, maze3d.ErrInvalidCoordinate)

	require.NoError(t, os.WriteFile(path, []byte(`{"size":[2,2],"blocked":[]}`), 0644))
	_, err = LoadSnapshot(path)
	assert.ErrorIs(t, err, maze3d.ErrInvalidConfiguration)
}
