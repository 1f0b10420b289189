package health

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecode_Object(t *testing.T) {
	v, err := Decode([]byte(`{"b":{"n":1.50},"a":[true,null,"x"],"b":{"n":2}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("expected *Object, got %T", v)
	}
	if keys := obj.Keys(); !reflect.DeepEqual(keys, []string{"b", "a"}) {
		t.Fatalf("unexpected keys: %v", keys)
	}

	b, _ := obj.Get("b")
	n, _ := b.(*Object).Get("n")
	if n != json.Number("2") {
		t.Fatalf("duplicate member did not keep last value: %v", n)
	}

	a, _ := obj.Get("a")
	if !reflect.DeepEqual(a, []any{true, nil, "x"}) {
		t.Fatalf("unexpected array: %#v", a)
	}
}

func TestDecode_Errors(t *testing.T) {
	for _, body := range []string{"", " ", "OK", `{"a":1} {}`, `[1,]`, `{"a" 1}`} {
		if _, err := Decode([]byte(body)); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}

func TestIsArrayIndex(t *testing.T) {
	cases := map[string]bool{
		"0":          true,
		"42":         true,
		"4294967294": true,
		"4294967295": false,
		"01":         false,
		"-1":         false,
		"1.5":        false,
		"":           false,
		"a":          false,
	}
	for k, want := range cases {
		if got := isArrayIndex(k); got != want {
			t.Fatalf("isArrayIndex(%q) = %v, want %v", k, got, want)
		}
	}
}
