package sort_suite

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	mop "reflect"
	str "strings"
	test "testing"
)

func TestReadNumbers(t *test.T) {
	values, err := ReadNumbers(str.NewReader("5, 3 3\n1,4\n\t-12 +7"), 0)
	if err != nil {
		t.Fatalf("ReadNumbers failed: %v", err)
	}
	expected := []int{5, 3, 3, 1, 4, -12, 7}
	if !mop.DeepEqual(values, expected) {
		t.Errorf("Unexpected values: [%v], expected: [%v]", values, expected)
	}
}

func TestReadNumbersEmpty(t *test.T) {
	values, err := ReadNumbers(str.NewReader(" ,\n, "), 10)
	if err != nil {
		t.Fatalf("ReadNumbers failed: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("Unexpected values from blank input: %v", values)
	}
}

func TestReadNumbersInvalidToken(t *test.T) {
	values, err := ReadNumbers(str.NewReader("1 2 12a 4"), 0)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Unexpected error: [%v], expected ErrInvalidToken", err)
	}
	if !str.Contains(err.Error(), `"12a"`) {
		t.Errorf("Error [%v] does not name the offending token", err)
	}
	if values != nil {
		t.Errorf("Unexpected partial values: %v", values)
	}
}

func TestReadNumbersLimit(t *test.T) {
	// Tokens past the limit are never parsed, bad or not.
	values, err := ReadNumbers(str.NewReader("1 2 12a"), 2)
	if err != nil {
		t.Fatalf("ReadNumbers failed: %v", err)
	}
	if !mop.DeepEqual(values, []int{1, 2}) {
		t.Errorf("Unexpected values: [%v], expected: [1 2]", values)
	}
}

func TestReadNumbersFromFile(t *test.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("3,2,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	values, err := ReadNumbersFromFile(path, 0)
	if err != nil {
		t.Fatalf("ReadNumbersFromFile failed: %v", err)
	}
	if !mop.DeepEqual(values, []int{3, 2, 1}) {
		t.Errorf("Unexpected values: %v", values)
	}

	if _, err := ReadNumbersFromFile(filepath.Join(dir, "missing.txt"), 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Unexpected error for missing file: %v", err)
	}
}

func TestWriteNumbersReadsBack(t *test.T) {
	InitRNG(42)
	values, err := GenerateInput(25, -50, 50)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteNumbers(&buf, values); err != nil {
		t.Fatalf("WriteNumbers failed: %v", err)
	}
	if lines := str.Count(buf.String(), "\n"); lines != 3 {
		t.Errorf("Unexpected line count [%d], expected [3]", lines)
	}

	back, err := ReadNumbers(&buf, 0)
	if err != nil {
		t.Fatalf("ReadNumbers failed: %v", err)
	}
	if !mop.DeepEqual(back, values) {
		t.Errorf("Values changed through a write and read: [%v] vs [%v]", back, values)
	}
}

func TestFormatNumbers(t *test.T) {
	if s := FormatNumbers([]int{1, -2, 3}); s != "1 -2 3" {
		t.Errorf("Unexpected format: %q", s)
	}
	if s := FormatNumbers(nil); s != "" {
		t.Errorf("Unexpected format of nil: %q", s)
	}
}
