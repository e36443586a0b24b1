package storage

import (
	"fmt"

	"github.com/google/btree"

	"github.com/yfyang86/form-repl/pkg/parser/form"
	"github.com/yfyang86/form-repl/pkg/types"
)

type item struct {
	key  string
	name types.Identifier
	expr form.Expr
}

func lessItems(it1, it2 item) bool {
	return it1.key < it2.key
}

func nameToItem(nam types.Identifier, e form.Expr) item {
	return item{
		key:  nam.String(),
		name: nam,
		expr: e,
	}
}

func (it item) String() string {
	return fmt.Sprintf("%s = %s", it.key, it.expr)
}

func newBTree() *btree.BTreeG[item] {
	return btree.NewG[item](8, lessItems)
}
