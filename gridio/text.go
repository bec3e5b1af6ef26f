package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/rastergrid/grid"
)

var (
	// ErrSyntax indicates a token that is not an integer.
	ErrSyntax = errors.New("gridio: syntax error")

	// ErrShape indicates a header/row count or row width mismatch.
	ErrShape = errors.New("gridio: shape mismatch")

	// ErrSnapshot indicates a snapshot whose cell count disagrees with its size.
	ErrSnapshot = errors.New("gridio: malformed snapshot")
)

// Read parses the text format from r.
func Read(r io.Reader) (*grid.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0

	// next returns the next non-blank line.
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			if s := strings.TrimSpace(sc.Text()); s != "" {
				return s, true
			}
		}
		return "", false
	}
	header := func(name string) (int, error) {
		s, ok := next()
		if !ok {
			return 0, fmt.Errorf("%w: missing %s", ErrShape, name)
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: line %d: %s %q", ErrSyntax, line, name, s)
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: line %d: negative %s %d", ErrShape, line, name, n)
		}
		return n, nil
	}

	w, err := header("width")
	if err != nil {
		return nil, err
	}
	h, err := header("height")
	if err != nil {
		return nil, err
	}

	g, err := grid.New(w, h, 0)
	if err != nil {
		return nil, err
	}
	// a zero-width grid has only blank rows, which next skips
	for y := 0; y < h && w > 0; y++ {
		s, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: got %d rows, want %d", ErrShape, y, h)
		}
		fields := strings.Fields(s)
		if len(fields) != w {
			return nil, fmt.Errorf("%w: line %d: %d cells, want %d", ErrShape, line, len(fields), w)
		}
		for x, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: cell %d: %q", ErrSyntax, line, x, f)
			}
			if err := g.Set(x, y, v); err != nil {
				return nil, err
			}
		}
	}
	if s, ok := next(); ok {
		return nil, fmt.Errorf("%w: line %d: unexpected data %q after %d rows", ErrShape, line, s, h)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// Write emits g in the text format with single-space separators.
func Write(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return grid.ErrNilGrid
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", g.Width(), g.Height())
	for _, row := range g.Rows() {
		for x, v := range row {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WriteFile writes g to path, replacing any existing file.
func WriteFile(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
