// SPDX-License-Identifier: MIT

package instance_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
)

const geomLike = `c small bandwidth instance
p edge 4 4 5
n 1 1
e 1 2 2
e 2 3 1
e 3 4 3
e 4 1 2
e 2 2 4
`

func TestReadDIMACS(t *testing.T) {
	inst, err := instance.ReadDIMACS(strings.NewReader(geomLike), "tiny")
	require.NoError(t, err)

	assert.Equal(t, "tiny", inst.Name)
	assert.Equal(t, 5, inst.Colors)
	g := inst.Graph
	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, 2, g.Weight(0, 1))
	assert.Equal(t, 3, g.Weight(3, 2))
	assert.Equal(t, 0, g.Weight(1, 1), "self-loop must be skipped")
}

func TestReadDIMACS_PlainColoringDefaults(t *testing.T) {
	inst, err := instance.ReadDIMACS(strings.NewReader("p edge 3 2\ne 1 2\ne 2 3\n"), "plain")
	require.NoError(t, err)
	assert.Equal(t, 0, inst.Colors)
	assert.Equal(t, 1, inst.Graph.Weight(0, 1))
	assert.Equal(t, 1, inst.Graph.Weight(1, 2))
}

func TestReadDIMACS_Malformed(t *testing.T) {
	inputs := map[string]string{
		"edge before p":  "e 1 2 1\np edge 2 1 2\n",
		"no p":           "c nothing\n",
		"bad endpoint":   "p edge 2 1 2\ne 1 3 1\n",
		"bad node count": "p edge x 1 2\n",
		"unknown tag":    "p edge 2 1 2\nx 1 2\n",
		"negative dist":  "p edge 2 1 2\ne 1 2 -1\n",
		"duplicate p":    "p edge 2 1 2\np edge 2 1 2\n",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := instance.ReadDIMACS(strings.NewReader(in), name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, instance.ErrMalformedFile), "got %v", err)
		})
	}
}

func TestWriteDIMACS_RoundTrip(t *testing.T) {
	g, err := instance.Cycle(5, 2)
	require.NoError(t, err)
	src := &instance.Instance{Name: "ring", Graph: g, Colors: 5}

	var buf bytes.Buffer
	require.NoError(t, instance.WriteDIMACS(&buf, src))

	got, err := instance.ReadDIMACS(&buf, "ring")
	require.NoError(t, err)
	assert.Equal(t, src.Colors, got.Colors)
	assert.Equal(t, src.Graph.Matrix(), got.Graph.Matrix())
}

func TestSaveLoadFile(t *testing.T) {
	g, err := instance.Complete(4, 1)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "K4.col.b")

	require.NoError(t, instance.SaveFile(path, &instance.Instance{Name: "K4", Graph: g, Colors: 4}))
	inst, err := instance.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "K4", inst.Name)
	assert.Equal(t, 6, inst.Graph.NumEdges())

	_, err = instance.LoadFile(filepath.Join(t.TempDir(), "missing.col"))
	assert.Error(t, err)
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "GEOM20", instance.NameOf("/data/GEOM20.col.b"))
	assert.Equal(t, "exam", instance.NameOf("exam"))
	assert.Equal(t, ".hidden", instance.NameOf(".hidden"))
}
