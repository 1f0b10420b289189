package widget

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rin0913/healthping/internal/health"
)

const indent = "  "

// Render serializes the decoded response the way a browser's
// JSON.stringify(value, null, 2) does: two-space indentation, strings
// re-escaped only where required and numbers in shortest JS form.
func Render(res *health.Response) (string, error) {
	var b strings.Builder
	if err := writeValue(&b, res.Value, ""); err != nil {
		return "", fmt.Errorf("widget: render: %w", err)
	}
	return b.String(), nil
}

func writeValue(b *strings.Builder, v any, prefix string) error {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(t))
	case string:
		writeString(b, t)
	case json.Number:
		s, err := formatNumber(t)
		if err != nil {
			return err
		}
		b.WriteString(s)
	case []any:
		if len(t) == 0 {
			b.WriteString("[]")
			return nil
		}
		inner := prefix + indent
		b.WriteString("[\n")
		for i, e := range t {
			if i > 0 {
				b.WriteString(",\n")
			}
			b.WriteString(inner)
			if err := writeValue(b, e, inner); err != nil {
				return err
			}
		}
		b.WriteString("\n" + prefix + "]")
	case *health.Object:
		if t.Len() == 0 {
			b.WriteString("{}")
			return nil
		}
		inner := prefix + indent
		b.WriteString("{\n")
		for i, k := range t.Keys() {
			if i > 0 {
				b.WriteString(",\n")
			}
			b.WriteString(inner)
			writeString(b, k)
			b.WriteString(": ")
			m, _ := t.Get(k)
			if err := writeValue(b, m, inner); err != nil {
				return err
			}
		}
		b.WriteString("\n" + prefix + "}")
	default:
		return fmt.Errorf("unsupported value %T", v)
	}
	return nil
}

// writeString quotes s escaping only quote, backslash and control
// characters. U+2028, U+2029 and HTML characters are written as is.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

// formatNumber renders n as a JS Number would print. Values that overflow
// a float64 become null.
func formatNumber(n json.Number) (string, error) {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil && !math.IsInf(f, 0) {
		return "", err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null", nil
	}
	if f == 0 {
		return "0", nil
	}
	if f < 0 {
		return "-" + formatPositive(-f), nil
	}
	return formatPositive(f), nil
}

func formatPositive(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, expStr, _ := strings.Cut(s, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expStr)

	k := len(digits)
	n := exp + 1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	e := n - 1
	sign := "+"
	if e < 0 {
		sign = "-"
		e = -e
	}
	if k == 1 {
		return digits + "e" + sign + strconv.Itoa(e)
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + strconv.Itoa(e)
}
