package testcases

import "testing"

func TestCatalogSplit(t *testing.T) {
	if got := len(Legit()); got != 7 {
		t.Fatalf("expected 7 legit messages, got %d", got)
	}
	if got := len(Scams()); got != 9 {
		t.Fatalf("expected 9 scam messages, got %d", got)
	}
	if got := len(Tricky()); got != 7 {
		t.Fatalf("expected 7 tricky messages, got %d", got)
	}
	if got := len(All()); got != 23 {
		t.Fatalf("expected 23 messages total, got %d", got)
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	first := Legit()
	first[0] = "mutated"
	if Legit()[0] == "mutated" {
		t.Fatal("catalog must not be mutable through accessors")
	}
}
