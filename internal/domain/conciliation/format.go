package conciliation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"pagalotodo/internal/domain/entities"
)

// formatValue applies a field's format and length to a resolved value.
//
// A value that parses as a number gets the numeric format; otherwise a value
// that parses as a date gets the date format. Length only applies to values
// left as plain text. runDate fills in the parts of a date the value omits.
func formatValue(raw string, f entities.FieldTemplate, runDate time.Time) string {
	value := raw
	plain := true
	if strings.TrimSpace(f.Format) != "" {
		if n, ok := parseNumber(raw); ok {
			value = formatNumber(n, f.Format)
			plain = false
		} else if t, ok := parseDate(raw, runDate); ok {
			value = formatDate(t, f.Format)
			plain = false
		}
	}
	if f.Length != nil && plain {
		value = fitLength(value, *f.Length)
	}
	return value
}

func parseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Time-of-day values with no date part.
var timeOnlyLayouts = []string{
	"15:04",
	"15:04:05",
	"15:04:05.999999999",
	"3:04 PM",
	"3:04:05 PM",
	"3:04PM",
	"3:04:05PM",
}

// parseDate reads s as a date. A bare time of day lands on runDate, and a
// date without a year takes runDate's year.
func parseDate(s string, runDate time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	runDate = runDate.UTC()
	for _, layout := range timeOnlyLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return time.Date(runDate.Year(), runDate.Month(), runDate.Day(),
				t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), true
		}
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	if t.Year() == 0 {
		anchored := time.Date(runDate.Year(), t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
		// 29 Feb outside a leap year.
		if anchored.Day() != t.Day() {
			return time.Time{}, false
		}
		return anchored, true
	}
	return t, true
}

// fitLength pads with trailing spaces or truncates so the result has exactly
// n runes.
func fitLength(s string, n int) string {
	if n < 0 {
		return s
	}
	runes := []rune(s)
	switch {
	case len(runes) < n:
		return s + strings.Repeat(" ", n-len(runes))
	case len(runes) > n:
		return string(runes[:n])
	}
	return s
}

// formatNumber renders d with a numeric pattern such as "N2", "F0" or "#,##0.00".
// '.' is always the decimal point and ',' the group separator.
func formatNumber(d decimal.Decimal, pattern string) string {
	if spec, precision, ok := standardNumeric(pattern); ok {
		switch spec {
		case 'F':
			return renderFixed(d, 1, precision, precision, false)
		case 'N':
			return renderFixed(d, 1, precision, precision, true)
		case 'D':
			return renderFixed(d, int(precision), 0, 0, false)
		}
	}
	return customNumeric(d, pattern)
}

// standardNumeric recognises F, N and D with an optional precision (F2, N0, D8).
func standardNumeric(pattern string) (byte, int32, bool) {
	if len(pattern) == 0 || len(pattern) > 3 {
		return 0, 0, false
	}
	spec := pattern[0] &^ 0x20
	if spec != 'F' && spec != 'N' && spec != 'D' {
		return 0, 0, false
	}
	precision := 2
	if spec == 'D' {
		precision = 0
	}
	if len(pattern) > 1 {
		n, err := strconv.Atoi(pattern[1:])
		if err != nil || n < 0 {
			return 0, 0, false
		}
		precision = n
	}
	return spec, int32(precision), true
}

// customNumeric handles patterns built from 0, #, ',' and '.', with literal
// text before and after the placeholders ("$#,##0.00", "0.000 Bs").
// A pattern without placeholders is emitted literally.
func customNumeric(d decimal.Decimal, pattern string) string {
	first := strings.IndexAny(pattern, "0#")
	if first < 0 {
		return pattern
	}
	last := strings.LastIndexAny(pattern, "0#")
	for first > 0 && strings.IndexByte(".,", pattern[first-1]) >= 0 {
		first--
	}
	for last+1 < len(pattern) && strings.IndexByte(".,", pattern[last+1]) >= 0 {
		last++
	}
	prefix, body, suffix := pattern[:first], pattern[first:last+1], pattern[last+1:]

	intPattern, fracPattern, _ := strings.Cut(body, ".")
	minInt := strings.Count(intPattern, "0")
	minFrac := int32(strings.Count(fracPattern, "0"))
	maxFrac := minFrac + int32(strings.Count(fracPattern, "#"))
	grouped := strings.Contains(intPattern, ",")

	number := renderFixed(d, minInt, minFrac, maxFrac, grouped)
	if strings.HasPrefix(number, "-") {
		return "-" + prefix + number[1:] + suffix
	}
	return prefix + number + suffix
}

// renderFixed rounds half away from zero to maxFrac digits, then drops
// trailing zeros down to minFrac and left-pads the integer part to minInt.
func renderFixed(d decimal.Decimal, minInt int, minFrac, maxFrac int32, grouped bool) string {
	r := d.Round(maxFrac)
	intPart, fracPart, _ := strings.Cut(r.Abs().StringFixed(maxFrac), ".")

	fracPart = strings.TrimRight(fracPart, "0")
	for int32(len(fracPart)) < minFrac {
		fracPart += "0"
	}
	if intPart == "0" && minInt == 0 {
		intPart = ""
	}
	for len(intPart) < minInt {
		intPart = "0" + intPart
	}
	if grouped {
		intPart = groupThousands(intPart)
	}

	out := intPart
	if fracPart != "" {
		out += "." + fracPart
	}
	if r.Sign() < 0 {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Single-letter date patterns and the custom pattern each one expands to.
var standardDatePatterns = map[string]string{
	"d": "MM/dd/yyyy",
	"D": "dddd, dd MMMM yyyy",
	"f": "dddd, dd MMMM yyyy HH:mm",
	"F": "dddd, dd MMMM yyyy HH:mm:ss",
	"g": "MM/dd/yyyy HH:mm",
	"G": "MM/dd/yyyy HH:mm:ss",
	"m": "MMMM dd",
	"M": "MMMM dd",
	"o": "yyyy-MM-dd'T'HH:mm:ss.fffffff'Z'",
	"O": "yyyy-MM-dd'T'HH:mm:ss.fffffff'Z'",
	"s": "yyyy-MM-dd'T'HH:mm:ss",
	"t": "HH:mm",
	"T": "HH:mm:ss",
	"u": "yyyy-MM-dd HH:mm:ss'Z'",
	"y": "yyyy MMMM",
	"Y": "yyyy MMMM",
}

// formatDate renders t (in UTC) with a custom pattern such as "dd/MM/yyyy".
// Quoted text and backslash-escaped characters are copied literally.
func formatDate(t time.Time, pattern string) string {
	if std, ok := standardDatePatterns[pattern]; ok {
		pattern = std
	}
	t = t.UTC()

	var b strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch c {
		case '\'', '"':
			end := strings.IndexByte(pattern[i+1:], c)
			if end < 0 {
				b.WriteString(pattern[i+1:])
				i = len(pattern)
				continue
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		case '\\':
			if i+1 < len(pattern) {
				b.WriteByte(pattern[i+1])
			}
			i += 2
			continue
		case 'y', 'M', 'd', 'H', 'h', 'm', 's', 'f', 't':
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}
			b.WriteString(dateToken(t, c, n))
			i += n
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func dateToken(t time.Time, c byte, n int) string {
	switch c {
	case 'y':
		switch n {
		case 1:
			return strconv.Itoa(t.Year() % 100)
		case 2:
			return fmt.Sprintf("%02d", t.Year()%100)
		default:
			return fmt.Sprintf("%0*d", n, t.Year())
		}
	case 'M':
		switch n {
		case 1, 2:
			return padNumber(int(t.Month()), n)
		case 3:
			return t.Month().String()[:3]
		default:
			return t.Month().String()
		}
	case 'd':
		switch n {
		case 1, 2:
			return padNumber(t.Day(), n)
		case 3:
			return t.Weekday().String()[:3]
		default:
			return t.Weekday().String()
		}
	case 'H':
		return padNumber(t.Hour(), n)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return padNumber(h, n)
	case 'm':
		return padNumber(t.Minute(), n)
	case 's':
		return padNumber(t.Second(), n)
	case 'f':
		if n > 9 {
			n = 9
		}
		return fmt.Sprintf("%09d", t.Nanosecond())[:n]
	case 't':
		marker := "AM"
		if t.Hour() >= 12 {
			marker = "PM"
		}
		if n == 1 {
			return marker[:1]
		}
		return marker
	}
	return ""
}

func padNumber(v, width int) string {
	if width >= 2 {
		return fmt.Sprintf("%02d", v)
	}
	return strconv.Itoa(v)
}
