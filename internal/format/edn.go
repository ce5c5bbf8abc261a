package format

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes v as EDN. Values go through their JSON encoding first so json tags
// decide field names; object keys become kebab-case keywords (repoUrl => :repo-url).
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	var buf bytes.Buffer
	writeEDN(&buf, x, pretty, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func writeEDN(buf *bytes.Buffer, v any, pretty bool, depth int) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case json.Number:
		buf.WriteString(t.String())
	case string:
		buf.WriteString(strconv.Quote(t))
	case []any:
		writeSeq(buf, '[', ']', len(t), pretty, depth, func(i int) {
			writeEDN(buf, t[i], pretty, depth+1)
		})
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		writeSeq(buf, '{', '}', len(keys), pretty, depth, func(i int) {
			buf.WriteString(ednKeyword(keys[i]))
			buf.WriteByte(' ')
			writeEDN(buf, t[keys[i]], pretty, depth+1)
		})
	}
}

func writeSeq(buf *bytes.Buffer, open, close byte, n int, pretty bool, depth int, elem func(i int)) {
	buf.WriteByte(open)
	for i := 0; i < n; i++ {
		switch {
		case pretty:
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat("  ", depth+1))
		case i > 0:
			buf.WriteByte(' ')
		}
		elem(i)
	}
	if pretty && n > 0 {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat("  ", depth))
	}
	buf.WriteByte(close)
}

func ednKeyword(s string) string {
	var b strings.Builder
	b.WriteByte(':')
	for i, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '_':
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
