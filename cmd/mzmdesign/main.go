// Command mzmdesign is the designer tool's non-visual entry point: it
// loads (or creates) one level, wires a BackgroundSolver and an Improver
// to it, reports solver status, and appends the level to the output
// save stream. The curses terminal surface is an external collaborator
// per the core's scope (out of scope here); this binary only exercises
// the wiring the real editor would drive through its key handling.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"mzm/internal/level"
	"mzm/internal/mzmtext"
	"mzm/internal/pool"
	"mzm/internal/savelog"
	"mzm/internal/solve"
)

const version = "mzmdesign 1.0"

const minThreads = 2

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mzmdesign", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	help := fs.Bool("h", false, "show usage")
	showVersion := fs.Bool("v", false, "show version")
	startLevel := fs.Int("l", 1, "start level number")
	inputFile := fs.String("i", "", "load levels from file")
	_ = fs.Bool("m", false, "monochrome (terminal surface only, no-op here)")
	threads := fs.Int("t", minThreads, "thread count (>= 2)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *help {
		fs.Usage()
		return 0
	}
	if *showVersion {
		fmt.Println(version)
		return 0
	}
	if *threads < minThreads {
		fmt.Fprintln(os.Stderr, "mzmdesign: -t must be >= 2")
		return 1
	}

	outputFile := "out.mzm"
	if positional := fs.Args(); len(positional) > 0 {
		if len(positional) > 1 {
			fmt.Fprintln(os.Stderr, "mzmdesign: at most one output file may be given")
			return 1
		}
		outputFile = positional[0]
	}

	lvl, err := loadStartLevel(*inputFile, *startLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mzmdesign:", err)
		return 1
	}

	log, err := savelog.Open(outputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mzmdesign:", err)
		return 1
	}
	defer log.Close()

	p := pool.NewWorkerPool(*threads)
	defer p.Close()

	reporter := &stderrCollector{}
	bg := solve.NewBackgroundSolver(p, reporter)
	if err := bg.SetNewLevel(lvl, *startLevel, solve.Flags{Both: true, Rating: true}); err != nil {
		fmt.Fprintln(os.Stderr, "mzmdesign:", err)
		return 1
	}
	p.WaitAsynchronous()

	improver := solve.NewImprover(p, reporter, lvl, reporter.rating, 1, nil)
	bestRating, bestLevel := improver.Improve()
	fmt.Printf("Improver: best rating %.2f\n", bestRating)

	log.Save(*startLevel, bestLevel, time.Now())
	return 0
}

func loadStartLevel(inputFile string, startLevel int) (*level.LevelData, error) {
	if inputFile == "" {
		return blankLevel()
	}
	f, err := os.Open(inputFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	levels, err := mzmtext.ReadLevels(f)
	if err != nil {
		return nil, err
	}
	if startLevel < 1 || startLevel > len(levels) {
		return nil, fmt.Errorf("start level %d out of range [1,%d]", startLevel, len(levels))
	}
	return levels[startLevel-1], nil
}

func blankLevel() (*level.LevelData, error) {
	lvl, err := level.NewLevelData(4, 8)
	if err != nil {
		return nil, err
	}
	if err := lvl.SetStart(0); err != nil {
		return nil, err
	}
	if err := lvl.SetFinish(0); err != nil {
		return nil, err
	}
	return lvl, nil
}

// stderrCollector implements solve.Collector and solve.ImproverCollector,
// printing solver status to stderr the way the real editor would draw it
// to a status line, and remembering the latest rating for the Improver's
// starting point.
type stderrCollector struct {
	rating float64
}

func (c *stderrCollector) CollectSolution(levelNum int, category pool.Category, solvable bool, dirs []level.Direction) {
	fmt.Fprintf(os.Stderr, "level %d: %s solvable=%v\n", levelNum, category, solvable)
}

func (c *stderrCollector) CollectRating(levelNum int, rating float64, pushes int) {
	c.rating = rating
	fmt.Fprintf(os.Stderr, "level %d: rating=%.2f pushes=%d\n", levelNum, rating, pushes)
}

func (c *stderrCollector) CollectLevelNumber(levelNum int) {}

func (c *stderrCollector) CollectImprovement(rating float64, pushes int, dirs []level.Direction, lvl *level.LevelData) {
	fmt.Fprintf(os.Stderr, "improver: found rating=%.2f pushes=%d\n", rating, pushes)
}
