package storage

import (
	"github.com/google/btree"

	"github.com/yfyang86/form-repl/pkg/parser/form"
	"github.com/yfyang86/form-repl/pkg/types"
)

// Table is an ordered mapping from names to expressions; iteration is in
// name order, which keeps batch rewrites and test output deterministic.
// It is not safe for concurrent use; the session owning it is single
// threaded.
type Table struct {
	tree *btree.BTreeG[item]
}

func NewTable() *Table {
	return &Table{
		tree: newBTree(),
	}
}

func (tbl *Table) Set(nam types.Identifier, e form.Expr) {
	tbl.tree.ReplaceOrInsert(nameToItem(nam, e))
}

func (tbl *Table) Get(nam types.Identifier) (form.Expr, bool) {
	it, ok := tbl.tree.Get(nameToItem(nam, nil))
	if !ok {
		return nil, false
	}
	return it.expr, true
}

func (tbl *Table) Delete(nam types.Identifier) bool {
	_, ok := tbl.tree.Delete(nameToItem(nam, nil))
	return ok
}

func (tbl *Table) Len() int {
	return tbl.tree.Len()
}

// Walk calls fn for every entry in name order; fn returning false stops the
// walk. fn must not mutate the table.
func (tbl *Table) Walk(fn func(nam types.Identifier, e form.Expr) bool) {
	tbl.tree.Ascend(func(it item) bool {
		return fn(it.name, it.expr)
	})
}
