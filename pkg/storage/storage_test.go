package storage_test

import (
	"testing"

	"github.com/yfyang86/form-repl/pkg/parser/form"
	"github.com/yfyang86/form-repl/pkg/storage"
	"github.com/yfyang86/form-repl/pkg/types"
)

func TestTable(t *testing.T) {
	tbl := storage.NewTable()
	if tbl.Len() != 0 {
		t.Errorf("Len() got %d want 0", tbl.Len())
	}

	tbl.Set(types.ID("e"), form.Number(1))
	tbl.Set(types.ID("a"), form.Number(2))
	tbl.Set(types.ID("m"), form.Symbol(types.ID("x")))
	if tbl.Len() != 3 {
		t.Errorf("Len() got %d want 3", tbl.Len())
	}

	e, ok := tbl.Get(types.ID("a"))
	if !ok {
		t.Fatalf("Get(a) not found")
	}
	if !e.Equal(form.Number(2)) {
		t.Errorf("Get(a) got %s want 2", e)
	}

	if _, ok := tbl.Get(types.ID("missing")); ok {
		t.Errorf("Get(missing) found")
	}

	// Set replaces an existing entry.
	tbl.Set(types.ID("a"), form.Number(3))
	if tbl.Len() != 3 {
		t.Errorf("Len() got %d want 3", tbl.Len())
	}
	e, _ = tbl.Get(types.ID("a"))
	if !e.Equal(form.Number(3)) {
		t.Errorf("Get(a) got %s want 3", e)
	}

	if !tbl.Delete(types.ID("m")) {
		t.Errorf("Delete(m) got false")
	}
	if tbl.Delete(types.ID("m")) {
		t.Errorf("Delete(m) twice got true")
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() got %d want 2", tbl.Len())
	}
}

func TestTableWalk(t *testing.T) {
	tbl := storage.NewTable()
	for _, s := range []string{"zebra", "alpha", "mid", "beta"} {
		tbl.Set(types.ID(s), form.Number(0))
	}

	var names []string
	tbl.Walk(func(nam types.Identifier, e form.Expr) bool {
		names = append(names, nam.String())
		return true
	})

	want := []string{"alpha", "beta", "mid", "zebra"}
	if len(names) != len(want) {
		t.Fatalf("Walk got %d entries want %d", len(names), len(want))
	}
	for idx := range want {
		if names[idx] != want[idx] {
			t.Errorf("Walk[%d] got %s want %s", idx, names[idx], want[idx])
		}
	}

	// Walk stops when fn returns false.
	cnt := 0
	tbl.Walk(func(nam types.Identifier, e form.Expr) bool {
		cnt += 1
		return cnt < 2
	})
	if cnt != 2 {
		t.Errorf("Walk visited %d entries want 2", cnt)
	}
}
