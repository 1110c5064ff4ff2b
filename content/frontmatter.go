package content

import "strings"

const delimiter = "---"

// Header holds the raw key/value pairs of a front-matter block. Values
// are stored as written (post-trim); use Get and List to interpret
// them. Duplicate keys overwrite, last occurrence wins.
type Header map[string]string

// Get returns the value for key with one layer of matching single or
// double quotes stripped.
func (h Header) Get(key string) string {
	return unquote(h[key])
}

// List interprets the value for key as a bracketed comma-separated
// list, e.g. `[go, tui]`. Each element is trimmed and unquoted. A
// plain scalar value yields a single-element list; a missing key
// yields nil.
func (h Header) List(key string) []string {
	raw, ok := h[key]
	if !ok {
		return nil
	}
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return []string{unquote(raw)}
	}
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, unquote(strings.TrimSpace(p)))
	}
	return out
}

// SplitFrontMatter splits raw text into its front-matter header and
// body. The header is an optional block delimited by lines of exactly
// `---` at the very start of the text. If the delimiters are absent or
// the block is never closed, the header is empty and the body is the
// entire input unchanged. Absence of front matter is not an error and
// this function never fails.
//
// Header lines are split on the first `:`; lines without one are
// ignored. The body is returned byte for byte as it appears after the
// closing delimiter line.
func SplitFrontMatter(raw string) (Header, string) {
	header := Header{}

	first, rest, found := strings.Cut(raw, "\n")
	if !found || strings.TrimSpace(first) != delimiter {
		return header, raw
	}

	offset := 0
	for offset <= len(rest) {
		line := rest[offset:]
		next := len(rest) + 1
		if i := strings.Index(line, "\n"); i >= 0 {
			line = line[:i]
			next = offset + i + 1
		}
		if strings.TrimSpace(line) == delimiter {
			if next > len(rest) {
				return header, ""
			}
			return header, rest[next:]
		}
		key, val, ok := strings.Cut(line, ":")
		if ok {
			header[strings.TrimSpace(key)] = strings.TrimSpace(val)
		}
		offset = next
	}

	// no closing delimiter, treat the whole input as body
	return Header{}, raw
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
