package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrainpath/terrain"
)

func TestReconstruct(t *testing.T) {
	g, err := terrain.New([][]float64{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)

	cases := []struct {
		name    string
		prev    []int
		goal    int
		want    Path
		wantErr bool
	}{
		{"Chain", []int{-1, 0, 1, -1, -1, 2}, 5, Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}, false},
		{"StartOnly", []int{-1, -1, -1, -1, -1, -1}, 0, Path{{Row: 0, Col: 0}}, false},
		{"EndsElsewhere", []int{-1, -1, 1, -1, -1, 2}, 5, nil, true},
		{"Cycle", []int{-1, 2, 1, -1, -1, 1}, 5, nil, true},
		{"OutOfRange", []int{-1, 0, 1, -1, -1, 17}, 5, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reconstruct(g, tc.prev, 0, tc.goal)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrReconstruction)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFrontierOrder(t *testing.T) {
	push := func(q *frontier, f, h float64, seq uint64) {
		q.items = append(q.items, entry{f: f, h: h, seq: seq, idx: int(seq)})
	}
	build := func(p TieBreak) *frontier {
		q := &frontier{policy: p}
		push(q, 5, 3, 0)
		push(q, 5, 1, 1)
		push(q, 5, 2, 2)
		push(q, 4, 4, 3)
		return q
	}

	order := func(q *frontier) []int {
		var got []int
		for q.Len() > 0 {
			best := 0
			for i := 1; i < q.Len(); i++ {
				if q.Less(i, best) {
					best = i
				}
			}
			got = append(got, q.items[best].idx)
			q.items = append(q.items[:best], q.items[best+1:]...)
		}
		return got
	}

	assert.Equal(t, []int{3, 0, 1, 2}, order(build(TieBreakFIFO)))
	assert.Equal(t, []int{3, 2, 1, 0}, order(build(TieBreakLIFO)))
	assert.Equal(t, []int{3, 1, 2, 0}, order(build(TieBreakLowestH)))
}
