// Package mzmtext implements the `.mzm` level text format: a line-oriented
// reader that tolerates interleaved comments and blank lines (preserved
// verbatim for copy mode) and a writer for levels and solver output.
package mzmtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"mzm/internal/level"
)

// ParseError reports a malformed `.mzm` file, naming the offending file and
// line so a caller can surface a precise diagnostic instead of a panic.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// Item is one element of a parsed Document: either a verbatim line (when
// Level is nil) or a fully parsed level.
type Item struct {
	Line  string
	Level *level.LevelData
}

// Document is an ordered `.mzm` file: comments, blank lines and levels in
// the order they appeared in the source, so copy mode can reproduce
// anything surrounding the levels exactly.
type Document struct {
	Items []Item
}

// ReadDocument parses every line of r, filename used only to label
// ParseErrors.
func ReadDocument(r io.Reader, filename string) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mzmtext: reading %s: %w", filename, err)
	}

	doc := &Document{}
	i := 0
	for i < len(lines) {
		line := lines[i]
		if !isWallRow(line) {
			doc.Items = append(doc.Items, Item{Line: line})
			i++
			continue
		}

		width := len(line) - 2
		if width < level.MinWidth || width > level.MaxWidth {
			return nil, &ParseError{File: filename, Line: i + 1, Msg: fmt.Sprintf("level width %d out of range", width)}
		}

		top := i
		i++
		bodyStart := i
		for i < len(lines) && !isWallRow(lines[i]) {
			i++
		}
		if i >= len(lines) {
			return nil, &ParseError{File: filename, Line: top + 1, Msg: "unterminated level"}
		}
		if len(lines[i]) != len(line) {
			return nil, &ParseError{File: filename, Line: i + 1, Msg: "closing wall width does not match opening wall"}
		}

		rows := lines[bodyStart:i]
		if len(rows) < level.MinHeight || len(rows) > level.MaxHeight {
			return nil, &ParseError{File: filename, Line: top + 1, Msg: fmt.Sprintf("level height %d out of range", len(rows))}
		}

		lvl, err := buildLevel(rows, bodyStart+1, filename, width)
		if err != nil {
			return nil, err
		}
		doc.Items = append(doc.Items, Item{Level: lvl})
		i++
	}
	return doc, nil
}

// ReadLevels is a convenience wrapper returning just the parsed levels, in
// order, discarding any interleaved verbatim text.
func ReadLevels(r io.Reader) ([]*level.LevelData, error) {
	doc, err := ReadDocument(r, "")
	if err != nil {
		return nil, err
	}
	var levels []*level.LevelData
	for _, it := range doc.Items {
		if it.Level != nil {
			levels = append(levels, it.Level)
		}
	}
	return levels, nil
}

func isWallRow(line string) bool {
	if len(line) < level.MinWidth+2 {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			return false
		}
	}
	return true
}

func buildLevel(rows []string, firstLine int, filename string, width int) (*level.LevelData, error) {
	grid := make([][]bool, len(rows))
	start, finish := level.Coord(-1), level.Coord(-1)

	for y, row := range rows {
		lineNo := firstLine + y
		if len(row) != width+2 {
			return nil, &ParseError{File: filename, Line: lineNo, Msg: "ragged level row"}
		}
		switch row[0] {
		case '#':
		case '+':
			if start != -1 {
				return nil, &ParseError{File: filename, Line: lineNo, Msg: "duplicate entrance"}
			}
			start = level.Coord(y)
		default:
			return nil, &ParseError{File: filename, Line: lineNo, Msg: "row must start with # or +"}
		}
		switch row[len(row)-1] {
		case '#':
		case '*':
			if finish != -1 {
				return nil, &ParseError{File: filename, Line: lineNo, Msg: "duplicate exit"}
			}
			finish = level.Coord(y)
		default:
			return nil, &ParseError{File: filename, Line: lineNo, Msg: "row must end with # or *"}
		}

		grid[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			switch c := row[1+x]; c {
			case '$':
				grid[y][x] = true
			case ' ':
				grid[y][x] = false
			default:
				return nil, &ParseError{File: filename, Line: lineNo, Msg: fmt.Sprintf("invalid character %q", c)}
			}
		}
	}

	if start == -1 {
		return nil, &ParseError{File: filename, Line: firstLine, Msg: "level has no entrance (+)"}
	}
	if finish == -1 {
		return nil, &ParseError{File: filename, Line: firstLine, Msg: "level has no exit (*)"}
	}

	lvl, err := level.NewLevelDataFromGrid(grid, start, finish)
	if err != nil {
		return nil, &ParseError{File: filename, Line: firstLine, Msg: err.Error()}
	}
	return lvl, nil
}

// WriteLevel renders lvl in `.mzm` form: a top wall, one row per height
// line, a bottom wall.
func WriteLevel(w io.Writer, lvl *level.LevelData) error {
	width := lvl.Width()
	wall := strings.Repeat("#", width+2)
	if _, err := fmt.Fprintln(w, wall); err != nil {
		return err
	}
	for y := 0; y < lvl.Height(); y++ {
		var b strings.Builder
		if level.Coord(y) == lvl.Start() {
			b.WriteByte('+')
		} else {
			b.WriteByte('#')
		}
		for x := 0; x < width; x++ {
			if lvl.GetBlock(y, level.Coord(x)) {
				b.WriteByte('$')
			} else {
				b.WriteByte(' ')
			}
		}
		if level.Coord(y) == lvl.Finish() {
			b.WriteByte('*')
		} else {
			b.WriteByte('#')
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, wall)
	return err
}
