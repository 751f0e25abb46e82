package stree

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/ptree/cursor"
	"github.com/npillmayer/ptree/policy"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// newCounted creates a sequence whose identities are consecutive numbers,
// starting at 1000.
func newCounted(t *testing.T, threshold int) *Tree[int, int] {
	t.Helper()
	next := 1000
	tree, err := New(Config[int, int]{
		Identify: func(int) int { next++; return next },
		Compare:  cmp.Compare[int],
		Policy:   policy.Threshold(threshold),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func values[I, V any](tree *Tree[I, V]) []V {
	return slices.Collect(cursor.Seq(tree.Values()))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int, string]{Compare: cmp.Compare[int]})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig without identity generator, got %v", err)
	}
	_, err = New(Config[int, string]{Identify: func(string) int { return 0 }})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig without comparator, got %v", err)
	}
}

func TestPushMove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree")
	defer teardown()
	//
	seq := NewSequence[int]()
	seq.Push(10, 20, 30)
	if seq.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", seq.Len())
	}
	if err := seq.Move(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := values(seq); !slices.Equal(got, []int{20, 30, 10}) {
		t.Fatalf("values = %v, want [20 30 10]", got)
	}
	ids := slices.Collect(cursor.Seq(seq.IDs()))
	if ids[0] == ids[1] || ids[1] == ids[2] || ids[0] == ids[2] {
		t.Fatalf("snowflake identities not unique: %v", ids)
	}
}

func TestPositionalOps(t *testing.T) {
	seq := newCounted(t, 4)
	var model []int
	for i := range 100 {
		if err := seq.Insert(i/2, i); err != nil {
			t.Fatal(err)
		}
		model = slices.Insert(model, i/2, i)
	}
	if err := seq.Check(); err != nil {
		t.Fatal(err)
	}
	if got := values(seq); !slices.Equal(got, model) {
		t.Fatalf("values differ from model")
	}
	for i, want := range model {
		if v, ok := seq.Get(i); !ok || v != want {
			t.Fatalf("Get(%d) = %d, %v; want %d", i, v, ok, want)
		}
	}
	if err := seq.Set(50, -1); err != nil {
		t.Fatal(err)
	}
	if v, _ := seq.Get(50); v != -1 {
		t.Fatalf("Set(50) not visible")
	}
	v, err := seq.Remove(0)
	if err != nil || v != model[0] {
		t.Fatalf("Remove(0) = %d, %v", v, err)
	}
	if err := seq.Check(); err != nil {
		t.Fatal(err)
	}
	if seq.Height() < 3 {
		t.Errorf("expected a multi-level tree, height = %d", seq.Height())
	}
}

func TestStackAndQueueOps(t *testing.T) {
	seq := newCounted(t, 4)
	seq.Push(3, 4, 5)
	seq.Unshift(1, 2)
	if got := values(seq); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("values = %v", got)
	}
	if v, ok := seq.Pop(); !ok || v != 5 {
		t.Fatalf("Pop() = %d, %v", v, ok)
	}
	if v, ok := seq.Shift(); !ok || v != 1 {
		t.Fatalf("Shift() = %d, %v", v, ok)
	}
	seq.Clear()
	if _, ok := seq.Pop(); ok {
		t.Fatalf("Pop on empty sequence reported a value")
	}
	if _, ok := seq.Shift(); ok {
		t.Fatalf("Shift on empty sequence reported a value")
	}
}

func TestRangeErrorsLeaveTreeUnmodified(t *testing.T) {
	seq := newCounted(t, 4)
	seq.Push(1, 2, 3, 4, 5, 6, 7)
	root := seq.root
	checks := []struct {
		name string
		err  error
	}{
		{"Set(-1)", seq.Set(-1, 0)},
		{"Set(len)", seq.Set(7, 0)},
		{"Insert(-1)", seq.Insert(-1, 0)},
		{"Insert(len+1)", seq.Insert(8, 0)},
		{"InsertWithID(len+1)", seq.InsertWithID(8, 1, 0)},
		{"Move(7, 0)", seq.Move(7, 0)},
		{"Move(0, 7)", seq.Move(0, 7)},
		{"Move(-1, 0)", seq.Move(-1, 0)},
	}
	for _, c := range checks {
		if !errors.Is(c.err, ErrIndexOutOfBounds) {
			t.Errorf("%s: expected ErrIndexOutOfBounds, got %v", c.name, c.err)
		}
	}
	if _, err := seq.Remove(7); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Remove(len): expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := seq.SetByID(42, 0, 0); !errors.Is(err, ErrUnknownIdentity) {
		t.Errorf("SetByID: expected ErrUnknownIdentity, got %v", err)
	}
	if err := seq.MoveByID(42, 0, 0); !errors.Is(err, ErrUnknownIdentity) {
		t.Errorf("MoveByID: expected ErrUnknownIdentity, got %v", err)
	}
	if _, err := seq.RemoveByID(42, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("RemoveByID: unknown identity should be a range error, got %v", err)
	}
	if seq.root != root {
		t.Fatalf("failed mutation replaced the root")
	}
	if _, ok := seq.GetByID(42, 3); ok {
		t.Errorf("GetByID of unknown identity reported a value")
	}
}

func TestLookup(t *testing.T) {
	seq := newCounted(t, 4)
	for i := range 40 {
		seq.Push(i)
	}
	// identities are 1001 … 1040
	for _, start := range []int{-5, 0, 13, 39, 100} {
		if got := seq.Lookup(1021, start); got != 20 {
			t.Errorf("Lookup(1021, %d) = %d, want 20", start, got)
		}
	}
	if got := seq.Lookup(999, 10); got != -1 {
		t.Errorf("Lookup of unknown identity = %d", got)
	}
	if err := seq.InsertWithID(0, 7, -7); err != nil {
		t.Fatal(err)
	}
	if got := seq.Lookup(1021, 20); got != 21 {
		t.Errorf("after insert: Lookup = %d, want 21", got)
	}
	if err := seq.MoveByID(1021, 0, 21); err != nil {
		t.Fatal(err)
	}
	if got := seq.Lookup(1021, 30); got != 0 {
		t.Errorf("after move: Lookup = %d, want 0", got)
	}
	if v, ok := seq.GetByID(1021, 0); !ok || v != 20 {
		t.Errorf("GetByID = %d, %v", v, ok)
	}
	if err := seq.SetByID(1021, 200, 0); err != nil {
		t.Fatal(err)
	}
	if v, err := seq.RemoveByID(1021, 5); err != nil || v != 200 {
		t.Fatalf("RemoveByID = %d, %v", v, err)
	}
	if got := seq.Lookup(1021, 0); got != -1 {
		t.Errorf("removed identity still found at %d", got)
	}
	if e, ok := seq.GetEntryByID(7, 40); !ok || e.Value != -7 {
		t.Errorf("GetEntryByID(7) = %v, %v", e, ok)
	}
	if err := seq.Check(); err != nil {
		t.Fatal(err)
	}
	empty := newCounted(t, 4)
	if empty.Lookup(1, 0) != -1 {
		t.Errorf("Lookup on empty sequence found something")
	}
}

func TestSplice(t *testing.T) {
	cases := []struct {
		start, count int
		insert       []int
		removed      []int
		result       []int
	}{
		{start: 1, count: 2, insert: []int{7, 8, 9}, removed: []int{1, 2}, result: []int{0, 7, 8, 9, 3, 4}},
		{start: -2, count: 5, removed: []int{3, 4}, result: []int{0, 1, 2}},
		{start: -10, count: 1, insert: []int{9}, removed: []int{0}, result: []int{9, 1, 2, 3, 4}},
		{start: 10, count: 3, insert: []int{5}, removed: []int{}, result: []int{0, 1, 2, 3, 4, 5}},
		{start: 2, count: -1, insert: []int{9}, removed: []int{}, result: []int{0, 1, 9, 2, 3, 4}},
		{start: 0, count: 5, removed: []int{0, 1, 2, 3, 4}, result: nil},
	}
	for i, c := range cases {
		seq := newCounted(t, 4)
		seq.Push(0, 1, 2, 3, 4)
		removed := seq.Splice(c.start, c.count, c.insert...)
		if !slices.Equal(removed, c.removed) {
			t.Errorf("case %d: removed %v, want %v", i, removed, c.removed)
		}
		if got := values(seq); !slices.Equal(got, c.result) {
			t.Errorf("case %d: result %v, want %v", i, got, c.result)
		}
		if err := seq.Check(); err != nil {
			t.Errorf("case %d: %v", i, err)
		}
	}
}

func TestDropTakeAndCanonicalEmpty(t *testing.T) {
	seq := newCounted(t, 4)
	empty := seq.root
	for _, n := range []int{0, 1, 3, 4, 17, 49, 50, 60} {
		s := newCounted(t, 4)
		for i := range 50 {
			s.Push(i)
		}
		head, tail := s.Clone(), s.Clone()
		head.Take(n)
		tail.Drop(n)
		if err := head.Check(); err != nil {
			t.Fatalf("Take(%d): %v", n, err)
		}
		if err := tail.Check(); err != nil {
			t.Fatalf("Drop(%d): %v", n, err)
		}
		if got := append(values(head), values(tail)...); !slices.Equal(got, values(s)) {
			t.Fatalf("n=%d: head+tail do not reassemble the sequence", n)
		}
	}
	for range 3 {
		seq.Push(1, 2, 3, 4, 5, 6, 7, 8, 9)
		for !seq.IsEmpty() {
			seq.Pop()
		}
		if seq.root != empty {
			t.Fatalf("emptied sequence does not use the canonical empty page")
		}
	}
}

func TestCloneIsolation(t *testing.T) {
	seq := newCounted(t, 4)
	for i := range 30 {
		seq.Push(i)
	}
	snapshot := seq.Clone()
	seq.Splice(5, 10, 100, 101)
	seq.Move(0, 10)
	seq.Set(3, -3)
	want := make([]int, 30)
	for i := range want {
		want[i] = i
	}
	if got := values(snapshot); !slices.Equal(got, want) {
		t.Fatalf("snapshot changed: %v", got)
	}
}

func TestSetEqualValueKeepsRoot(t *testing.T) {
	seq := newCounted(t, 4)
	seq.Push(1, 2, 3, 4, 5, 6)
	root := seq.root
	if err := seq.Set(4, 5); err != nil {
		t.Fatal(err)
	}
	if seq.root != root {
		t.Fatalf("writing an equal value replaced the root")
	}
}

func TestIteration(t *testing.T) {
	seq := newCounted(t, 4)
	for i := range 25 {
		seq.Push(i * 10)
	}
	for i, v := range seq.All() {
		if v != i*10 {
			t.Fatalf("All yields %d at %d", v, i)
		}
	}
	expect := 24
	for i, v := range seq.Backward() {
		if i != expect || v != i*10 {
			t.Fatalf("Backward yields %d at %d, want position %d", v, i, expect)
		}
		expect--
	}
	if expect != -1 {
		t.Fatalf("Backward stopped early at %d", expect)
	}
	rev := slices.Collect(cursor.Seq(cursor.Map(seq.ReverseEntries(), func(e Entry[int, int]) int { return e.Value })))
	if len(rev) != 25 || rev[0] != 240 || rev[24] != 0 {
		t.Fatalf("reverse entries = %v", rev)
	}
	c := seq.EntriesFrom(13)
	if e, ok := c.Next(); !ok || e.Value != 130 {
		t.Fatalf("EntriesFrom(13).Next() = %v, %v", e, ok)
	}
	n := 0
	seq.ForEach(func(id, v int) bool {
		n++
		return v < 50
	})
	if n != 6 {
		t.Fatalf("ForEach visited %d elements, want 6", n)
	}
	if e, _ := seq.FirstEntry(); e.Value != 0 {
		t.Fatalf("FirstEntry = %v", e)
	}
	if e, _ := seq.LastEntry(); e.Value != 240 {
		t.Fatalf("LastEntry = %v", e)
	}
}

func TestReduce(t *testing.T) {
	seq := newCounted(t, 4)
	concat := func(tr *Tree[int, int]) string {
		return Reduce(tr, "",
			func(acc string, v int) string { return acc + string(rune('a'+v)) },
			func(a, b string) string { return a + b })
	}
	if concat(seq) != "" {
		t.Fatalf("empty fold is not the identity")
	}
	for i := range 26 {
		seq.Push(i)
	}
	if got := concat(seq); got != "abcdefghijklmnopqrstuvwxyz" {
		t.Fatalf("fold = %q", got)
	}
	seq.Move(25, 0)
	if got := concat(seq); got != "zabcdefghijklmnopqrstuvwxy" {
		t.Fatalf("fold after move = %q", got)
	}
}

func TestDump(t *testing.T) {
	color.NoColor = true
	seq := newCounted(t, 4)
	for i := range 12 {
		seq.Push(i)
	}
	var sb strings.Builder
	if err := seq.Dump(&sb); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(sb.String(), "node[") {
		t.Errorf("unexpected outline:\n%s", sb.String())
	}
	sb.Reset()
	if err := seq.Dot(&sb); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(sb.String(), "strict digraph") {
		t.Errorf("unexpected DOT output:\n%s", sb.String())
	}
}
