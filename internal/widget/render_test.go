package widget

import (
	"testing"

	"github.com/Rin0913/healthping/internal/health"
)

func render(t *testing.T, body string) string {
	t.Helper()

	v, err := health.Decode([]byte(body))
	if err != nil {
		t.Fatalf("decode %q: %v", body, err)
	}
	got, err := Render(&health.Response{Value: v})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return got
}

func TestRender(t *testing.T) {
	cases := map[string]struct {
		body string
		want string
	}{
		"object":       {`{"status":"ok"}`, "{\n  \"status\": \"ok\"\n}"},
		"keeps order":  {`{"z":1,"a":2}`, "{\n  \"z\": 1,\n  \"a\": 2\n}"},
		"nested":       {`{"a":{"b":[1,2]}}`, "{\n  \"a\": {\n    \"b\": [\n      1,\n      2\n    ]\n  }\n}"},
		"empty object": {`{}`, "{}"},
		"empty array":  {`{"a":[],"b":{}}`, "{\n  \"a\": [],\n  \"b\": {}\n}"},
		"scalar":       {`"up"`, `"up"`},
		"literals":     {`[true,false,null]`, "[\n  true,\n  false,\n  null\n]"},
		"no escaping":  {`{"html":"<b>&</b>"}`, "{\n  \"html\": \"<b>&</b>\"\n}"},
		"compacts":     {"{ \"a\" :\t1 }", "{\n  \"a\": 1\n}"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := render(t, tc.body); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_Strings(t *testing.T) {
	cases := map[string]struct {
		body string
		want string
	}{
		"unicode escape":      {`"conexi\u00f3n"`, `"conexión"`},
		"escaped slash":       {`"a\/b"`, `"a/b"`},
		"quote":               {`"say \"hi\""`, `"say \"hi\""`},
		"backslash":           {`"C:\\tmp"`, `"C:\\tmp"`},
		"short escapes":       {`"\b\f\n\r\t"`, `"\b\f\n\r\t"`},
		"control":             {`"\u0001\u001f"`, `"\u0001\u001f"`},
		"del":                 {`"\u007f"`, "\"\x7f\""},
		"line separator":      {`"\u2028\u2029"`, "\"\u2028\u2029\""},
		"surrogate pair":      {`"\ud83d\ude00"`, `"😀"`},
		"escaped key":         {`{"k\u00e9y":1}`, "{\n  \"kéy\": 1\n}"},
		"escaped backslash u": {`"\\u00f3"`, `"\\u00f3"`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := render(t, tc.body); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_DuplicateKeys(t *testing.T) {
	cases := map[string]struct {
		body string
		want string
	}{
		"last wins":          {`{"a":1,"a":2}`, "{\n  \"a\": 2\n}"},
		"first position":     {`{"a":1,"b":2,"a":3}`, "{\n  \"a\": 3,\n  \"b\": 2\n}"},
		"nested replacement": {`{"a":{"x":1},"a":[]}`, "{\n  \"a\": []\n}"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := render(t, tc.body); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_IndexKeysFirst(t *testing.T) {
	got := render(t, `{"b":1,"10":2,"2":3,"01":4,"a":5}`)
	want := "{\n  \"2\": 3,\n  \"10\": 2,\n  \"b\": 1,\n  \"01\": 4,\n  \"a\": 5\n}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_Numbers(t *testing.T) {
	cases := map[string]string{
		`1.0`:                   `1`,
		`1e2`:                   `100`,
		`-0`:                    `0`,
		`0.0`:                   `0`,
		`-12.50`:                `-12.5`,
		`0.1`:                   `0.1`,
		`0.000001`:              `0.000001`,
		`1.5e-7`:                `1.5e-7`,
		`1e21`:                  `1e+21`,
		`1.25E+22`:              `1.25e+22`,
		`123456789012345678901`: `123456789012345680000`,
		`9007199254740993`:      `9007199254740992`,
		`1e400`:                 `null`,
		`-1e400`:                `null`,
	}

	for body, want := range cases {
		t.Run(body, func(t *testing.T) {
			if got := render(t, body); got != want {
				t.Fatalf("got %q, want %q", got, want)
			}
		})
	}
}
