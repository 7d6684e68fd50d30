package wordsearch

import (
	"reflect"
	"testing"
)

func TestRegistryCollectActive(t *testing.T) {
	r := NewRegistry("Tender", "", "  news ", "complex", "Farce")

	expected := []string{"complex", "farce", "news", "tender"}
	if got := r.CollectActive(); !reflect.DeepEqual(got, expected) {
		t.Errorf("CollectActive() = %v, expected %v", got, expected)
	}

	// Display order is insertion order, blanks included.
	entries := r.Entries()
	if len(entries) != 5 || entries[0].Word != "Tender" || entries[1].Word != "" {
		t.Errorf("Entries() = %v", entries)
	}
}

func TestRegistryAddEntryKeepsOrder(t *testing.T) {
	r := NewRegistry("one")
	r.AddEntry("two")
	r.AddEntry("")

	entries := r.Entries()
	if len(entries) != 3 || entries[1].Word != "two" || entries[2].Word != "" {
		t.Errorf("Entries() = %v", entries)
	}
}

func TestRegistryMarkFound(t *testing.T) {
	r := NewRegistry("cat", "Cat", "dog")

	if !r.MarkFound("cat") {
		t.Fatal("MarkFound(cat) should succeed")
	}
	if !r.Entries()[0].Found || r.Entries()[1].Found {
		t.Error("MarkFound should mark only the first unfound match")
	}
	if !r.MarkFound("cat") {
		t.Fatal("second MarkFound(cat) should mark the duplicate")
	}
	if r.MarkFound("cat") {
		t.Error("third MarkFound(cat) should fail")
	}
	if r.FoundCount() != 2 {
		t.Errorf("FoundCount() = %d, expected 2", r.FoundCount())
	}
	if !r.IsFound("cat") || r.IsFound("dog") {
		t.Error("IsFound mismatch")
	}

	r.ResetFound()
	if r.FoundCount() != 0 {
		t.Error("ResetFound should clear all flags")
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry("a", "b", "c")
	r.Remove(1)
	r.Remove(7)

	if got := r.CollectActive(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("CollectActive() after Remove = %v", got)
	}
}
