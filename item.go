package tomlsort

import (
	"strings"

	"github.com/signadot/tomlsort/ir"
)

// Path is the sequence of key names from the document root to a node.
type Path []string

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Child returns the path of the entry with key k below p.
func (p Path) Child(k *ir.Key) Path {
	res := make(Path, len(p), len(p)+len(k.Parts))
	copy(res, p)
	for i := range k.Parts {
		res = append(res, k.Parts[i].Name)
	}
	return res
}

// SortItem is an entry of the sort tree. Comments render immediately
// before the item. Children are set for tables, and for arrays of tables,
// where each child is one element table.
type SortItem struct {
	Key      *ir.Key
	Path     Path
	Value    *ir.Node
	Comments []*ir.Node
	Children []*SortItem
}

func (it *SortItem) IsTable() bool {
	return it.Value.Type == ir.TableType
}

func (it *SortItem) IsSuper() bool {
	return it.IsTable() && it.Value.IsSuper
}

func (it *SortItem) IsAoT() bool {
	return it.Value.Type == ir.AoTType
}

func (it *SortItem) tableLike() bool {
	return it.IsTable() || it.IsAoT()
}
