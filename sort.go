package tomlsort

import (
	"cmp"
	"slices"
	"strings"

	"github.com/signadot/tomlsort/debug"
	"github.com/signadot/tomlsort/ir"
)

// sortChildren orders the items of the table at parent: key/values first,
// then tables and arrays of tables.
func (s *Sorter) sortChildren(parent Path, items []*SortItem) []*SortItem {
	cfg := s.resolve(parent)
	var leaves, tables []*SortItem
	for _, it := range items {
		if it.tableLike() {
			tables = append(tables, it)
			continue
		}
		it.Key = formatKey(it.Key)
		it.Value = s.formatValue(it.Path, it.Value, 0)
		leaves = append(leaves, it)
	}
	tables = coalesce(tables)
	leaves = sortKeys(leaves, cfg, cfg.TableKeys)
	tables = sortKeys(tables, cfg, cfg.Tables)
	res := append(leaves, tables...)
	if debug.Sort() {
		names := make([]string, len(res))
		for i, it := range res {
			names[i] = it.Key.Name()
		}
		debug.Logf("sort %q: %v\n", parent.String(), names)
	}
	return res
}

// sortKeys sorts items by key name when sorted is set, then moves the
// keys listed in cfg.First to the front in that order.
func sortKeys(items []*SortItem, cfg SortConfiguration, sorted bool) []*SortItem {
	if sorted {
		slices.SortStableFunc(items, func(a, b *SortItem) int {
			return strings.Compare(keyText(a.Key, cfg), keyText(b.Key, cfg))
		})
	}
	if len(cfg.First) == 0 {
		return items
	}
	rank := func(it *SortItem) int {
		if i := slices.Index(cfg.First, it.Key.Name()); i != -1 {
			return i
		}
		return len(cfg.First)
	}
	slices.SortStableFunc(items, func(a, b *SortItem) int {
		return cmp.Compare(rank(a), rank(b))
	})
	return items
}

func keyText(k *ir.Key, cfg SortConfiguration) string {
	if cfg.IgnoreCase {
		return strings.ToLower(k.Name())
	}
	return k.Name()
}

// formatKey renders a key as "key = value".
func formatKey(k *ir.Key) *ir.Key {
	res := k.Clone()
	res.Sep = " = "
	return res
}
