package feedback

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "feedback.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndList(t *testing.T) {
	s := openTestStore(t)

	r, err := s.Save("f2-661-1", "2c65839692", true, "clear steps")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if r.ID == "" {
		t.Error("Save should assign an ID")
	}
	if r.CreatedAt.IsZero() {
		t.Error("Save should assign a timestamp")
	}

	if _, err := s.Save("f3-661-2", "2304e55a78", false, ""); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	all, err := s.List("")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List returned %d ratings, want 2", len(all))
	}

	one, err := s.List("f2-661-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(one) != 1 {
		t.Fatalf("filtered List returned %d ratings, want 1", len(one))
	}
	if !one[0].Helpful || one[0].Note != "clear steps" {
		t.Errorf("unexpected rating: %+v", one[0])
	}
}

func TestSaveRequiresFindingID(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Save("", "abc", true, ""); err == nil {
		t.Error("expected error for empty finding id")
	}
}

func TestSummarize(t *testing.T) {
	s := openTestStore(t)
	for _, helpful := range []bool{true, true, false} {
		if _, err := s.Save("f1-436-1", "aaaa", helpful, ""); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}
	if _, err := s.Save("f4-100-2", "bbbb", true, ""); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	sums, err := s.Summarize()
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("Summarize returned %d rows, want 2", len(sums))
	}
	if sums[0].FindingID != "f1-436-1" || sums[0].Helpful != 2 || sums[0].Unhelpful != 1 {
		t.Errorf("unexpected summary: %+v", sums[0])
	}
	if sums[1].FindingID != "f4-100-2" || sums[1].Helpful != 1 || sums[1].Unhelpful != 0 {
		t.Errorf("unexpected summary: %+v", sums[1])
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "feedback.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer s.Close()
	if _, err := s.List(""); err != nil {
		t.Errorf("List on fresh store: %v", err)
	}
}
