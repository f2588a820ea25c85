package token

import (
	"fmt"
	"sort"
	"strconv"
)

type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the zero based line and column of byte offset off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

// Context returns a short quoted excerpt of the document around p.
func (p *Pos) Context() string {
	if p.D == nil || len(p.D.d) == 0 {
		return "?"
	}
	lo := max(0, p.I-5)
	hi := min(p.I+5, len(p.D.d))
	if lo > hi {
		return "?"
	}
	sample := strconv.Quote(string(p.D.d[lo:hi]))
	return sample[1 : len(sample)-1]
}

func (p Pos) String() string {
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", p.Context(), p.I, p.Line()+1, p.Col()+1)
}
