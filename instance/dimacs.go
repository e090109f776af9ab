// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Line tags of the DIMACS-style bandwidth coloring format.
const (
	tagComment = "c"
	tagNode    = "n"
	tagProblem = "p"
	tagEdge    = "e"

	// defaultEdgeDistance is used for "e u v" lines without a distance,
	// which makes plain DIMACS coloring files readable as distance-1 instances.
	defaultEdgeDistance = 1
)

// ReadDIMACS parses a bandwidth coloring instance.
//
// The "p" line must precede every "e" line. Its optional fifth field is the
// color budget; when absent Colors is left at 0 and the caller must supply it.
// Edges are 1-based, self-loops are skipped and a repeated pair keeps the last
// distance read. The resulting matrix is validated by NewGraph.
func ReadDIMACS(r io.Reader, name string) (*Instance, error) {
	var (
		sc     = bufio.NewScanner(r)
		lineNo int
		n      int
		colors int
		w      [][]int
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case tagComment, tagNode:
			continue

		case tagProblem:
			if w != nil {
				return nil, malformed(lineNo, "duplicate problem line")
			}
			if len(fields) < 4 {
				return nil, malformed(lineNo, "problem line needs at least 4 fields")
			}
			var err error
			if n, err = strconv.Atoi(fields[2]); err != nil || n < 1 {
				return nil, malformed(lineNo, "bad node count %q", fields[2])
			}
			if len(fields) >= 5 {
				if colors, err = strconv.Atoi(fields[4]); err != nil || colors < 0 {
					return nil, malformed(lineNo, "bad color count %q", fields[4])
				}
			}
			w = make([][]int, n)
			for i := range w {
				w[i] = make([]int, n)
			}

		case tagEdge:
			if w == nil {
				return nil, malformed(lineNo, "edge before problem line")
			}
			if len(fields) < 3 {
				return nil, malformed(lineNo, "edge line needs at least 3 fields")
			}
			u, errU := strconv.Atoi(fields[1])
			v, errV := strconv.Atoi(fields[2])
			if errU != nil || errV != nil || u < 1 || v < 1 || u > n || v > n {
				return nil, malformed(lineNo, "bad endpoints %q %q", fields[1], fields[2])
			}
			d := defaultEdgeDistance
			if len(fields) >= 4 {
				var err error
				if d, err = strconv.Atoi(fields[3]); err != nil || d < 0 {
					return nil, malformed(lineNo, "bad distance %q", fields[3])
				}
			}
			if u == v {
				continue
			}
			w[u-1][v-1] = d
			w[v-1][u-1] = d

		default:
			return nil, malformed(lineNo, "unknown line tag %q", fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading instance %s", name)
	}
	if w == nil {
		return nil, errors.Wrap(ErrMalformedFile, "missing problem line")
	}

	g, err := NewGraph(w)
	if err != nil {
		return nil, errors.WithMessagef(err, "instance %s", name)
	}
	return &Instance{Name: name, Graph: g, Colors: colors}, nil
}

// WriteDIMACS writes inst in the format read by ReadDIMACS.
func WriteDIMACS(out io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(out)
	g := inst.Graph

	if inst.Name != "" {
		fmt.Fprintf(bw, "%s %s\n", tagComment, inst.Name)
	}
	fmt.Fprintf(bw, "%s edge %d %d %d\n", tagProblem, g.NumNodes(), g.NumEdges(), inst.Colors)
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s %d %d %d\n", tagEdge, e.U+1, e.V+1, e.Weight)
	}
	return errors.Wrap(bw.Flush(), "writing instance")
}

// LoadFile reads an instance file; the instance is named after the file.
func LoadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening instance")
	}
	defer f.Close()

	return ReadDIMACS(f, NameOf(path))
}

// SaveFile writes inst to path, replacing any existing file.
func SaveFile(path string, inst *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating instance file")
	}
	if err = WriteDIMACS(f, inst); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing instance file")
}

// NameOf strips the directory and every extension from path,
// so "dir/GEOM20.col.b" becomes "GEOM20".
func NameOf(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

func malformed(line int, format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedFile, "line %d: %s", line, fmt.Sprintf(format, args...))
}
