package main

import (
	"bytes"
	"encoding/csv"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrainpath/config"
	"github.com/katalvlaran/terrainpath/terrain"
)

func TestParseCell(t *testing.T) {
	cases := []struct {
		in      string
		want    terrain.Cell
		wantErr bool
	}{
		{"0,0", terrain.Cell{}, false},
		{"12, 7", terrain.Cell{Row: 12, Col: 7}, false},
		{"3", terrain.Cell{}, true},
		{"a,1", terrain.Cell{}, true},
		{"1,b", terrain.Cell{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseCell(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// fixture writes a 3×3 PNG with a white (high) center and an empty settings file.
func fixture(t *testing.T) (mapFile, envFile string) {
	t.Helper()
	for _, k := range []string{config.EnvAlpha, config.EnvProgressInterval, config.EnvTieBreak, config.EnvDiagonal, config.EnvHeuristic, config.EnvMaxExpansions} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()

	img := image.NewGray(image.Rect(0, 0, 3, 3))
	img.SetGray(1, 1, color.Gray{Y: 255})
	mapFile = filepath.Join(dir, "ridge.png")
	f, err := os.Create(mapFile)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	envFile = filepath.Join(dir, "search.env")
	require.NoError(t, os.WriteFile(envFile, nil, 0o600))
	return mapFile, envFile
}

func TestRun_Batch(t *testing.T) {
	mapFile, envFile := fixture(t)
	var out bytes.Buffer

	j := job{mapFile: mapFile, from: "0,0", to: "2,2", envFile: envFile}
	require.NoError(t, run(j, log.New(io.Discard, "", 0), strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "cost 3.4142 over 4 cells")
	assert.Contains(t, out.String(), "[(0,0) (0,1) (1,2) (2,2)]")
}

func TestRun_Step(t *testing.T) {
	mapFile, envFile := fixture(t)
	var out, logs bytes.Buffer

	j := job{mapFile: mapFile, from: "0,0", to: "2,2", envFile: envFile, step: true}
	require.NoError(t, run(j, log.New(&logs, "", 0), strings.NewReader("\n\n"), &out))
	assert.Equal(t, 3, strings.Count(out.String(), "press Enter"), "two steps, then EOF finishes")
	assert.Contains(t, out.String(), "cost 3.4142")
	assert.Contains(t, logs.String(), "[SESSION] [INFO]")
}

// TestRun_Capped reports a search cut short by the expansion cap, not "no path".
func TestRun_Capped(t *testing.T) {
	mapFile, envFile := fixture(t)
	require.NoError(t, os.WriteFile(envFile, []byte("HIKEPATH_MAX_EXPANSIONS=2\n"), 0o600))
	var out bytes.Buffer

	j := job{mapFile: mapFile, from: "0,0", to: "2,2", envFile: envFile}
	require.NoError(t, run(j, log.New(io.Discard, "", 0), nil, &out))
	assert.Contains(t, out.String(), "expansion cap")
	assert.NotContains(t, out.String(), "no path")
}

// TestRun_Field writes the exact cost-to-goal field next to the route.
func TestRun_Field(t *testing.T) {
	mapFile, envFile := fixture(t)
	fieldFile := filepath.Join(t.TempDir(), "cost.csv")

	j := job{mapFile: mapFile, from: "0,0", to: "2,2", envFile: envFile, fieldFile: fieldFile}
	require.NoError(t, run(j, log.New(io.Discard, "", 0), nil, io.Discard))

	f, err := os.Open(fieldFile)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	value := func(r, c int) float64 {
		v, err := strconv.ParseFloat(rows[r][c], 64)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "0", rows[2][2])
	assert.InDelta(t, 2+math.Sqrt2, value(0, 0), 1e-9, "same cost as the route")
	assert.InDelta(t, 100+math.Sqrt2, value(1, 1), 1e-9, "leaving the peak pays the climb once")
}

func TestRun_Errors(t *testing.T) {
	mapFile, envFile := fixture(t)
	discard := log.New(io.Discard, "", 0)

	assert.Error(t, run(job{mapFile: mapFile, from: "0;0", to: "2,2", envFile: envFile}, discard, nil, io.Discard))
	assert.Error(t, run(job{mapFile: mapFile, from: "0,0", to: "9,9", envFile: envFile}, discard, nil, io.Discard))
	assert.Error(t, run(job{mapFile: filepath.Join(t.TempDir(), "none.png"), from: "0,0", to: "1,1", envFile: envFile}, discard, nil, io.Discard))
	assert.Error(t, run(job{mapFile: mapFile, from: "0,0", to: "1,1", envFile: envFile,
		fieldFile: filepath.Join(t.TempDir(), "missing", "cost.csv")}, discard, nil, io.Discard))
}
