// Command mzmsolve reads one or more `.mzm` levels and reports solver
// results for each: fewest-pushes, fewest-moves, and/or any solution,
// optionally a difficulty rating. Exit code is 1 on any argument or I/O
// failure, 0 otherwise.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"mzm/internal/level"
	"mzm/internal/mzmtext"
	"mzm/internal/pool"
	"mzm/internal/rangeset"
	"mzm/internal/solve"
)

const version = "mzmsolve 1.0"

// builtinLevels is the -d "use built-in defaults" sample suite: a
// self-contained smoke test that needs no input file.
const builtinLevels = `
######
+    #
#    *
######
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mzmsolve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	help := fs.Bool("h", false, "show usage")
	showVersion := fs.Bool("v", false, "show version")
	anySolution := fs.Bool("a", false, "any solution")
	fewestPushes := fs.Bool("p", false, "fewest pushes")
	fewestMoves := fs.Bool("m", false, "fewest moves")
	both := fs.Bool("b", false, "fewest pushes and fewest moves (default)")
	copyMode := fs.Bool("c", false, "copy input to output")
	useDefaults := fs.Bool("d", false, "solve the built-in default levels")
	rating := fs.Bool("r", false, "add a difficulty rating")
	useAStar := fs.Bool("A", false, "use A* instead of breadth-first")
	levelSpec := fs.String("l", "", "level filter (range spec, e.g. \"-3,6,9-11,18,24-\")")
	output := fs.String("o", "", "output file (default stdout)")
	threads := fs.Int("t", 1, "thread count (>= 1)")

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

	flags, err := solveFlags(*anySolution, *fewestPushes, *fewestMoves, *both, *rating)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mzmsolve:", err)
		return 1
	}
	if *threads < 1 {
		fmt.Fprintln(os.Stderr, "mzmsolve: -t must be >= 1")
		return 1
	}

	var pred *rangeset.RangePred
	if *levelSpec != "" {
		pred, err = rangeset.ParseRangePred(*levelSpec)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mzmsolve:", err)
			return 1
		}
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mzmsolve:", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	doc, err := readDocument(fs.Args(), *useDefaults)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mzmsolve:", err)
		return 1
	}

	p := pool.NewWorkerPool(*threads)
	defer p.Close()

	collector := solve.NewOrderedCollector(out, flags, 1)
	src := newDocSource(doc, pred, *copyMode, out)
	solver := solve.NewOfflineSolver(p, collector, flags, *useAStar)
	if *copyMode {
		solver.RunCopyMode(src)
	} else {
		solver.Run(src)
	}
	if err := collector.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "mzmsolve:", err)
		return 1
	}
	return 0
}

// solveFlags validates the mutually-exclusive solution-type flags and
// expands them into solve.Flags, defaulting to Both when none is given.
func solveFlags(anySolution, fewestPushes, fewestMoves, both, rating bool) (solve.Flags, error) {
	count := 0
	for _, b := range []bool{anySolution, fewestPushes, fewestMoves, both} {
		if b {
			count++
		}
	}
	if count > 1 {
		return solve.Flags{}, fmt.Errorf("only one of -a, -p, -m, -b may be given")
	}
	if count == 0 {
		both = true
	}
	return solve.Flags{
		AnySolution:  anySolution,
		FewestPushes: fewestPushes,
		FewestMoves:  fewestMoves,
		Both:         both,
		Rating:       rating,
	}, nil
}

func readDocument(positional []string, useDefaults bool) (*mzmtext.Document, error) {
	if useDefaults {
		return mzmtext.ReadDocument(strings.NewReader(builtinLevels), "<built-in>")
	}
	if len(positional) > 1 {
		return nil, fmt.Errorf("at most one input file may be given")
	}
	if len(positional) == 0 {
		return mzmtext.ReadDocument(os.Stdin, "<stdin>")
	}
	f, err := os.Open(positional[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mzmtext.ReadDocument(f, positional[0])
}

// docSource walks a parsed Document's levels in order, honoring an
// optional level-number filter. In copy mode it also echoes every
// verbatim (non-level) line, and each level's own text, to out as it is
// passed over, so the output file reproduces the input with solver
// results interleaved immediately after each level.
type docSource struct {
	doc     *mzmtext.Document
	pred    *rangeset.RangePred
	copy    bool
	out     *os.File
	i       int
	nextNum int
}

func newDocSource(doc *mzmtext.Document, pred *rangeset.RangePred, copyMode bool, out *os.File) *docSource {
	return &docSource{doc: doc, pred: pred, copy: copyMode, out: out, nextNum: 1}
}

func (s *docSource) Next() (*level.LevelData, int, bool) {
	for s.i < len(s.doc.Items) {
		item := s.doc.Items[s.i]
		s.i++
		if item.Level == nil {
			if s.copy {
				fmt.Fprintln(s.out, item.Line)
			}
			continue
		}
		num := s.nextNum
		s.nextNum++
		if s.copy {
			mzmtext.WriteLevel(s.out, item.Level)
		}
		if s.pred != nil && !s.pred.Contains(num) {
			continue
		}
		return item.Level, num, true
	}
	return nil, 0, false
}
