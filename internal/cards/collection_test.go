package cards

import (
	"strings"
	"testing"
)

func TestCollectionPutKeepsPositionOnOverwrite(t *testing.T) {
	c := NewCollection()
	c.Put("a", Record{Number: "1"})
	c.Put("b", Record{Number: "2"})
	c.Put("a", Record{Number: "9"})

	keys := c.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected key order: %v", keys)
	}
	record, _ := c.Get("a")
	if record.Number != "9" {
		t.Fatalf("overwrite lost: %+v", record)
	}
}

func TestCollectionSortIsNumericAndStable(t *testing.T) {
	c := NewCollection()
	c.Put("twelve", Record{Number: "12"})
	c.Put("promo-one", Record{Number: "P1"})
	c.Put("trainer-three", Record{Number: "TL3"})
	c.Put("five", Record{Number: "5"})
	c.Put("also-five", Record{Number: "05"})

	c.Sort([]string{"TL", "P"})

	want := []string{"promo-one", "trainer-three", "five", "also-five", "twelve"}
	got := c.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: %v", got)
		}
	}
}

func TestCollectionEncodeFormat(t *testing.T) {
	c := NewCollection()
	c.Put("A1_10_000010_00", Record{Number: "4", Name: "Charizard EX", Rarity: 4, Obtainable: true})

	var buf strings.Builder
	if err := c.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "{\n    \"A1_10_000010_00\": {\n") {
		t.Fatalf("unexpected prefix:\n%s", out)
	}
	if !strings.Contains(out, "\"card_name\": \"Charizard EX\"") {
		t.Fatalf("missing name field:\n%s", out)
	}
	if !strings.Contains(out, "\"card_obtainable\": true") {
		t.Fatalf("missing obtainable field:\n%s", out)
	}
	if !strings.HasSuffix(out, "}") {
		t.Fatalf("unexpected suffix:\n%s", out)
	}
}

func TestCollectionEncodeEmpty(t *testing.T) {
	var buf strings.Builder
	if err := NewCollection().Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.String() != "{}" {
		t.Fatalf("unexpected empty encoding: %q", buf.String())
	}
}

func TestDecodePreservesFileOrder(t *testing.T) {
	c := NewCollection()
	c.Put("z-last", Record{Number: "3", Name: "Third"})
	c.Put("a-first", Record{Number: "1", Name: "First"})

	var buf strings.Builder
	if err := c.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := Decode(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	keys := decoded.Keys()
	if len(keys) != 2 || keys[0] != "z-last" || keys[1] != "a-first" {
		t.Fatalf("order not preserved: %v", keys)
	}
	record, ok := decoded.Get("a-first")
	if !ok || record.Name != "First" {
		t.Fatalf("record lost: %+v", record)
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	if _, err := Decode(strings.NewReader("[]")); err == nil {
		t.Fatalf("expected error for array input")
	}
}

func TestCollectionMergeOverwrites(t *testing.T) {
	a := NewCollection()
	a.Put("shared", Record{Number: "1"})
	a.Put("only-a", Record{Number: "2"})

	b := NewCollection()
	b.Put("shared", Record{Number: "7"})
	b.Put("only-b", Record{Number: "3"})

	a.Merge(b)

	if a.Len() != 3 {
		t.Fatalf("unexpected length: %d", a.Len())
	}
	record, _ := a.Get("shared")
	if record.Number != "7" {
		t.Fatalf("merge did not overwrite: %+v", record)
	}
}
