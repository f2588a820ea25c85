package parse

import (
	"bytes"
	"errors"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// Validate decodes d and reports the first error, if any, as an *Error.
// It catches what the structural parser does not look at: duplicate keys,
// redefined tables, malformed numbers and date/times.
func Validate(d []byte) error {
	var v map[string]any
	err := toml.Unmarshal(d, &v)
	if err == nil {
		return nil
	}
	var de *toml.DecodeError
	if !errors.As(err, &de) {
		res := &Error{Err: errors.New(strings.TrimPrefix(err.Error(), "toml: "))}
		if line, col, ok := locate(d); ok {
			res.Line, res.Col, res.Context = line, col, sourceLine(d, line)
		}
		return res
	}
	row, col := de.Position()
	return &Error{
		Err:     errors.New(strings.TrimPrefix(de.Error(), "toml: ")),
		Line:    row,
		Col:     col,
		Context: sourceLine(d, row),
	}
}

// locate returns the position of the first expression of d which does not
// decode. Redefined keys and tables are reported without a position, so
// prefixes of d ending before each expression are decoded until the
// shortest failing one is found.
func locate(d []byte) (int, int, bool) {
	var (
		p      unstable.Parser
		starts []int
		shapes []unstable.Shape
	)
	p.Reset(d)
	for p.NextExpression() {
		it := p.Expression().Key()
		if !it.Next() {
			continue
		}
		sh := p.Shape(it.Node().Raw)
		starts = append(starts, bytes.LastIndexByte(d[:sh.Start.Offset], '\n')+1)
		shapes = append(shapes, sh)
	}
	n := len(starts)
	i := sort.Search(n, func(i int) bool {
		end := len(d)
		if i+1 < n {
			end = starts[i+1]
		}
		var v map[string]any
		return toml.Unmarshal(d[:end], &v) != nil
	})
	if i == n {
		return 0, 0, false
	}
	return shapes[i].Start.Line, shapes[i].Start.Column, true
}

func sourceLine(d []byte, line int) string {
	if line < 1 {
		return ""
	}
	for i := 1; i < line; i++ {
		j := bytes.IndexByte(d, '\n')
		if j == -1 {
			return ""
		}
		d = d[j+1:]
	}
	if j := bytes.IndexByte(d, '\n'); j != -1 {
		d = d[:j]
	}
	return string(bytes.TrimRight(d, "\r"))
}
