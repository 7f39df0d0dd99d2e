package split

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"
)

func makeExamples(n, positives int) []Example {
	out := make([]Example, n)
	for i := range out {
		out[i] = Example{Key: "1 1-" + strconv.Itoa(i), Text: "text " + strconv.Itoa(i), Label: i < positives}
	}
	return out
}

func TestSplitSizes(t *testing.T) {
	examples := makeExamples(100, 10)
	p, err := Split(examples, Ratios{Train: 0.8, Validation: 0.1, Test: 0.1}, 42)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(p.Train) != 80 || len(p.Validation) != 10 || len(p.Test) != 10 {
		t.Fatalf("sizes = %d/%d/%d", len(p.Train), len(p.Validation), len(p.Test))
	}

	seen := map[string]bool{}
	for _, set := range [][]Example{p.Train, p.Validation, p.Test} {
		for _, ex := range set {
			if seen[ex.Key] {
				t.Fatalf("duplicate key %q across partitions", ex.Key)
			}
			seen[ex.Key] = true
		}
	}
	if len(seen) != 100 {
		t.Fatalf("expected every example once, got %d", len(seen))
	}
}

func TestSplitRoundsHoldoutUp(t *testing.T) {
	p, err := Split(makeExamples(7, 0), Ratios{Train: 0.7, Validation: 0.15, Test: 0.15}, 1)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	// ceil(0.3*7) = 3 held out; ceil(0.5*3) = 2 for test.
	if len(p.Train) != 4 || len(p.Test) != 2 || len(p.Validation) != 1 {
		t.Fatalf("sizes = %d/%d/%d", len(p.Train), len(p.Validation), len(p.Test))
	}
}

func TestSplitDeterministic(t *testing.T) {
	examples := makeExamples(50, 5)
	ratios := Ratios{Train: 0.8, Validation: 0.1, Test: 0.1}
	a, _ := Split(examples, ratios, 7)
	b, _ := Split(examples, ratios, 7)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different partitions")
	}
}

func TestSplitRejectsBadRatios(t *testing.T) {
	if _, err := Split(nil, Ratios{Train: 0.8, Validation: 0.3, Test: 0.1}, 1); err == nil {
		t.Fatal("expected error for ratios not summing to 1")
	}
	if _, err := Split(nil, Ratios{Train: 1, Validation: 0, Test: 0}, 1); err == nil {
		t.Fatal("expected error for zero ratio")
	}
}

func TestSplitEmpty(t *testing.T) {
	p, err := Split(nil, Ratios{Train: 0.8, Validation: 0.1, Test: 0.1}, 1)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(p.Train)+len(p.Validation)+len(p.Test) != 0 {
		t.Fatalf("expected empty partition, got %+v", p)
	}
}

func TestOversampleBalancesClasses(t *testing.T) {
	out := Oversample(makeExamples(20, 4), 3)
	pos, neg := Counts(out)
	if pos != 4 || neg != 4 {
		t.Fatalf("counts after oversampling = %d/%d, want 4/4", pos, neg)
	}
}

func TestOversampleSingleClassUnchanged(t *testing.T) {
	out := Oversample(makeExamples(5, 0), 3)
	if len(out) != 5 {
		t.Fatalf("expected 5 examples, got %d", len(out))
	}
}

func TestWriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	p := Partition{
		Train: []Example{{Text: "hello , world", Label: true}, {Text: "plain", Label: false}},
	}
	if err := WriteDir(dir, p); err != nil {
		t.Fatalf("WriteDir: %v", err)
	}
	file, err := os.Open(filepath.Join(dir, TrainFile))
	if err != nil {
		t.Fatalf("open train: %v", err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read train: %v", err)
	}
	want := [][]string{{"X", "y"}, {"hello , world", "1"}, {"plain", "0"}}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("records = %v, want %v", records, want)
	}
	for _, name := range []string{ValidationFile, TestFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}
