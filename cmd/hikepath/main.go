// Command hikepath finds the cheapest hiking route across a grayscale
// heightmap, where brighter pixels are higher ground.
//
// Usage:
//
//	hikepath -map terrain.png -from 10,12 -to 200,340 [-step] [-env search.env] [-field cost.csv] [-v]
//
// Search settings come from HIKEPATH_* environment variables or an .env file
// (see package config). With -step the search advances one expansion each
// time Enter is pressed. -field writes the exact remaining cost from every
// cell to the goal as CSV, one grid row per line ("inf" where unreachable).
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/terrainpath/astar"
	"github.com/katalvlaran/terrainpath/config"
	"github.com/katalvlaran/terrainpath/dijkstra"
	"github.com/katalvlaran/terrainpath/session"
	"github.com/katalvlaran/terrainpath/terrain"
)

func main() {
	var (
		mapFile = flag.String("map", "", "grayscale heightmap (PNG or JPEG)")
		from    = flag.String("from", "", "start cell as row,col")
		to      = flag.String("to", "", "goal cell as row,col")
		step    = flag.Bool("step", false, "advance one expansion per Enter")
		envFile = flag.String("env", "", "settings file (default: .env if present)")
		field   = flag.String("field", "", "write the cost-to-goal field as CSV")
		verbose = flag.Bool("v", false, "log search progress to stderr")
	)
	flag.Parse()

	if *mapFile == "" || *from == "" || *to == "" {
		fmt.Fprintln(os.Stderr, "Error: -map, -from and -to are required")
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose || *step {
		logger = log.New(os.Stderr, "", log.Ltime)
	}

	j := job{
		mapFile:   *mapFile,
		from:      *from,
		to:        *to,
		envFile:   *envFile,
		fieldFile: *field,
		step:      *step,
	}
	if err := run(j, logger, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// job holds the command-line arguments of one invocation.
type job struct {
	mapFile, from, to string
	envFile           string // optional settings file
	fieldFile         string // optional cost-field CSV output
	step              bool
}

// run loads the terrain, drives a session to completion and prints the route.
func run(j job, logger *log.Logger, in io.Reader, out io.Writer) error {
	var files []string
	if j.envFile != "" {
		files = append(files, j.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}

	start, err := parseCell(j.from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	goal, err := parseCell(j.to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	grid, err := loadGrid(j.mapFile)
	if err != nil {
		return err
	}
	logger.Printf("[APP] [INFO] loaded %s: %dx%d cells", j.mapFile, grid.Rows(), grid.Cols())

	opts := append(cfg.EngineOptions(),
		astar.WithLogger(logger),
		astar.WithProgress(progressLogger(logger), cfg.ProgressInterval),
	)
	engine, err := astar.NewEngine(grid, opts...)
	if err != nil {
		return err
	}
	sess, err := session.New(&session.Config{Searcher: engine, Logger: logger})
	if err != nil {
		return err
	}

	if _, err := sess.Select(start); err != nil {
		return err
	}
	if _, err := sess.Select(goal); err != nil {
		return err
	}

	var res astar.Result
	if j.step {
		res, err = stepThrough(sess, engine, in, out)
	} else {
		res, err = sess.Finish()
	}
	if err != nil {
		return err
	}
	if err := report(out, res); err != nil {
		return err
	}

	if j.fieldFile == "" {
		return nil
	}
	if err := writeField(j.fieldFile, grid, goal, cfg); err != nil {
		return err
	}
	logger.Printf("[APP] [INFO] cost field written to %s", j.fieldFile)

	return nil
}

// stepThrough advances the session one expansion per input line. EOF
// finishes the remaining search in one go.
func stepThrough(sess *session.Session, engine *astar.Engine, in io.Reader, out io.Writer) (astar.Result, error) {
	sc := bufio.NewScanner(in)
	for sess.Mode() == session.ModeSearching {
		fmt.Fprintf(out, "expanded %d, frontier %d; press Enter to step\n", engine.Expanded(), engine.FrontierLen())
		if !sc.Scan() {
			return sess.Finish()
		}
		if _, err := sess.Advance(1); err != nil {
			return astar.Result{}, err
		}
	}
	return sess.Result()
}

func report(out io.Writer, res astar.Result) error {
	if res.Capped {
		_, err := fmt.Fprintf(out, "search stopped at the expansion cap (expanded %d cells, %d pushes)\n", res.Expanded, res.Pushed)
		return err
	}
	if !res.Found {
		_, err := fmt.Fprintf(out, "no path (expanded %d cells, %d pushes)\n", res.Expanded, res.Pushed)
		return err
	}
	_, err := fmt.Fprintf(out, "cost %.4f over %d cells (expanded %d, pushes %d)\n%v\n",
		res.Cost, len(res.Path), res.Expanded, res.Pushed, res.Path)
	return err
}

// writeField computes the exact cost from every cell to goal under the
// configured cost model and writes it as CSV rows.
func writeField(path string, grid *terrain.Grid, goal terrain.Cell, cfg config.Config) error {
	dist, err := dijkstra.CostToGoal(grid, goal,
		dijkstra.WithAlpha(cfg.Alpha), dijkstra.WithDiagonal(cfg.Diagonal))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	record := make([]string, grid.Cols())
	for r := 0; r < grid.Rows(); r++ {
		for c := range record {
			d := dist[grid.Index(terrain.Cell{Row: r, Col: c})]
			if math.IsInf(d, 1) {
				record[c] = "inf"
				continue
			}
			record[c] = strconv.FormatFloat(d, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

func progressLogger(logger *log.Logger) astar.ProgressFunc {
	return func(s astar.Snapshot) error {
		logger.Printf("[SEARCH] [INFO] expanded %d, at %v, partial path %d cells",
			s.Expanded, s.Current, len(s.Partial))
		return nil
	}
}

func loadGrid(path string) (*terrain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return terrain.FromImage(img)
}

// parseCell reads "row,col".
func parseCell(s string) (terrain.Cell, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return terrain.Cell{}, fmt.Errorf("%q is not row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return terrain.Cell{}, fmt.Errorf("row in %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return terrain.Cell{}, fmt.Errorf("col in %q: %w", s, err)
	}
	return terrain.Cell{Row: r, Col: c}, nil
}
