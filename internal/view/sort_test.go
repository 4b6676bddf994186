package view

import (
	"testing"

	"github.com/mwrend/lotview/internal/dataset"
)

func priced(model, price string) dataset.Record {
	return dataset.Record{"Model": model, "Price": price}
}

func TestSortOrderCycle(t *testing.T) {
	o := SortNone
	steps := []SortOrder{SortAscending, SortDescending, SortNone}
	for i, want := range steps {
		o = o.Next()
		if o != want {
			t.Fatalf("step %d = %v, want %v", i+1, o, want)
		}
	}
}

func TestSortNoneIsIdentity(t *testing.T) {
	records := []dataset.Record{priced("b", "$300"), priced("a", "$100"), priced("c", "$200")}
	got := Sort(records, "Price", SortNone)
	for i := range records {
		if got[i].Get("Model") != records[i].Get("Model") {
			t.Fatalf("SortNone reordered input: %v", models(got))
		}
	}
}

func TestSortAscendingAndDescendingMirror(t *testing.T) {
	records := []dataset.Record{priced("b", "$300"), priced("a", "$100"), priced("c", "$200")}

	asc := Sort(records, "Price", SortAscending)
	desc := Sort(records, "Price", SortDescending)

	wantAsc := []string{"a", "c", "b"}
	for i, w := range wantAsc {
		if asc[i].Get("Model") != w {
			t.Fatalf("ascending = %v, want %v", models(asc), wantAsc)
		}
	}
	for i := range asc {
		if desc[len(desc)-1-i].Get("Model") != asc[i].Get("Model") {
			t.Fatalf("descending %v is not reverse of ascending %v", models(desc), models(asc))
		}
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	records := []dataset.Record{
		priced("first", "$100"),
		priced("second", "$100"),
		priced("cheap", "$50"),
		priced("third", "$100"),
	}
	got := Sort(records, "Price", SortAscending)
	want := []string{"cheap", "first", "second", "third"}
	for i, w := range want {
		if got[i].Get("Model") != w {
			t.Fatalf("order = %v, want %v", models(got), want)
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := []dataset.Record{priced("b", "$300"), priced("a", "$100")}
	_ = Sort(records, "Price", SortAscending)
	if records[0].Get("Model") != "b" {
		t.Fatal("input slice was mutated")
	}
}

func TestSortUnparseablePricesAsZero(t *testing.T) {
	records := []dataset.Record{priced("paid", "$10"), priced("free", "Free")}
	got := Sort(records, "Price", SortAscending)
	if got[0].Get("Model") != "free" {
		t.Fatalf("order = %v, want free first", models(got))
	}
}
