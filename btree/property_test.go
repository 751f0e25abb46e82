package btree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/ptree/cursor"
	"github.com/npillmayer/ptree/policy"
	tidwall "github.com/tidwall/btree"
)

// modelTree pairs a tree under test with a tidwall ordered map serving as
// reference.
type modelTree struct {
	t     *testing.T
	tree  *Tree[int, int]
	model tidwall.Map[int, int]
}

func newModelTree(t *testing.T, threshold int) *modelTree {
	tree, err := New(Config[int, int]{
		Compare: func(a, b int) int { return a - b },
		Policy:  policy.Threshold(threshold),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return &modelTree{t: t, tree: tree}
}

func (m *modelTree) set(k, v int) {
	m.tree.Set(k, v)
	m.model.Set(k, v)
}

func (m *modelTree) delete(k int) {
	_, present := m.model.Delete(k)
	if got := m.tree.Delete(k); got != present {
		m.t.Fatalf("Delete(%d) = %v, model says %v", k, got, present)
	}
}

func (m *modelTree) drop(n int) {
	for range min(n, m.model.Len()) {
		k, _, _ := m.model.GetAt(0)
		m.model.Delete(k)
	}
	m.tree.Drop(n)
}

func (m *modelTree) take(n int) {
	for m.model.Len() > max(n, 0) {
		k, _, _ := m.model.GetAt(m.model.Len() - 1)
		m.model.Delete(k)
	}
	m.tree.Take(n)
}

func (m *modelTree) verify(step string) {
	m.t.Helper()
	if err := m.tree.Check(); err != nil {
		m.t.Fatalf("%s: %v", step, err)
	}
	if m.tree.Len() != m.model.Len() {
		m.t.Fatalf("%s: Len() = %d, model has %d", step, m.tree.Len(), m.model.Len())
	}
	c := m.tree.Entries()
	i := 0
	m.model.Scan(func(k, v int) bool {
		e, ok := c.Next()
		if !ok || e.Key != k || e.Value != v {
			m.t.Fatalf("%s: entry %d = %v/%v, model has %d=%d", step, i, e, ok, k, v)
		}
		i++
		return true
	})
	if c.HasNext() {
		m.t.Fatalf("%s: tree has more entries than the model", step)
	}
	r := m.tree.ReverseEntries()
	m.model.Reverse(func(k, v int) bool {
		e, ok := r.Next()
		if !ok || e.Key != k {
			m.t.Fatalf("%s: reverse entry %v/%v, model has %d", step, e, ok, k)
		}
		return true
	})
}

func (m *modelTree) verifyQueries(step string, key int) {
	m.t.Helper()
	want, wantOK := m.model.Get(key)
	if got, ok := m.tree.Get(key); ok != wantOK || got != want {
		m.t.Fatalf("%s: Get(%d) = %d/%v, model has %d/%v", step, key, got, ok, want, wantOK)
	}
	var next, prev *int
	m.model.Ascend(key, func(k, _ int) bool {
		if k == key {
			return true
		}
		next = &k
		return false
	})
	m.model.Descend(key, func(k, _ int) bool {
		if k == key {
			return true
		}
		prev = &k
		return false
	})
	e, ok := m.tree.NextEntry(key)
	if ok != (next != nil) || (ok && e.Key != *next) {
		m.t.Fatalf("%s: NextEntry(%d) = %v/%v", step, key, e, ok)
	}
	e, ok = m.tree.PreviousEntry(key)
	if ok != (prev != nil) || (ok && e.Key != *prev) {
		m.t.Fatalf("%s: PreviousEntry(%d) = %v/%v", step, key, e, ok)
	}
	if wantOK {
		rank := m.tree.IndexOf(key)
		if k, _, _ := m.model.GetAt(rank); k != key {
			m.t.Fatalf("%s: IndexOf(%d) = %d, model has %d at that rank", step, key, rank, k)
		}
	}
}

func runRandomOps(t *testing.T, seed int64, threshold, steps, keyspace int) {
	rnd := rand.New(rand.NewSource(seed))
	m := newModelTree(t, threshold)
	var snapshots []*Tree[int, int]
	var contents [][]Entry[int, int]
	for range steps {
		k := rnd.Intn(keyspace)
		switch op := rnd.Intn(100); {
		case op < 55:
			m.set(k, rnd.Intn(1000))
		case op < 90:
			m.delete(k)
		case op < 93:
			m.drop(rnd.Intn(m.model.Len()/4 + 1))
		case op < 96:
			m.take(m.model.Len() - rnd.Intn(m.model.Len()/4+1))
		default:
			snapshots = append(snapshots, m.tree.Clone())
			contents = append(contents, cursorEntries(m.tree.Entries()))
		}
		m.verify("step")
		m.verifyQueries("step", rnd.Intn(keyspace))
	}
	for i, s := range snapshots {
		got := cursorEntries(s.Entries())
		if len(got) != len(contents[i]) {
			t.Fatalf("snapshot %d changed length: %d != %d", i, len(got), len(contents[i]))
		}
		for j := range got {
			if got[j] != contents[i][j] {
				t.Fatalf("snapshot %d changed at %d", i, j)
			}
		}
	}
}

func cursorEntries(c cursor.Cursor[Entry[int, int]]) []Entry[int, int] {
	var entries []Entry[int, int]
	for e := range cursor.Seq(c) {
		entries = append(entries, e)
	}
	return entries
}

func TestRandomOpsAgainstModel(t *testing.T) {
	for _, threshold := range []int{4, 5, 8, 32} {
		for seed := int64(1); seed <= 5; seed++ {
			runRandomOps(t, seed*int64(threshold), threshold, 600, 300)
		}
	}
}

func TestSequentialGrowAndShrink(t *testing.T) {
	m := newModelTree(t, 4)
	for i := range 500 {
		m.set(i, i)
	}
	m.verify("ascending inserts")
	for i := 0; i < 500; i += 2 {
		m.delete(i)
	}
	m.verify("deleting even keys")
	for i := 499; i >= 0; i -= 2 {
		m.delete(i)
	}
	m.verify("deleting odd keys")
	if m.tree.root != page[int, int](m.tree.ctx.empty) {
		t.Fatalf("emptied tree is not canonical")
	}
}

func FuzzTreeOps(f *testing.F) {
	f.Add([]byte{1, 2, 3, 200, 4, 5, 130, 6})
	f.Add([]byte{0, 0, 0, 0, 255, 255, 128, 128})
	f.Fuzz(func(t *testing.T, ops []byte) {
		m := newModelTree(t, 4)
		for _, op := range ops {
			k := int(op & 0x3f)
			switch {
			case op&0xc0 == 0xc0:
				m.drop(k & 0x7)
			case op&0x80 != 0:
				m.delete(k)
			default:
				m.set(k, int(op))
			}
			m.verify("fuzz")
		}
	})
}
