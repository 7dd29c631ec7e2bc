// Package querystring encodes flat attribute maps to URL query strings
// and parses them back. It is deliberately lossy in the directions the
// record layer needs: nil values vanish on encode, empty keys vanish
// on decode.
package querystring

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Encode renders attrs as "k=v&k2=v2", keys sorted for determinism.
// With a non-empty prefix each key becomes "prefix[k]". Nil values are
// omitted entirely. Booleans encode as "1"/"0". A value that cannot be
// rendered as a string encodes as the empty string.
func Encode(attrs map[string]any, prefix string) string {
	keys := make([]string, 0, len(attrs))
	for k, v := range attrs {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		name := url.QueryEscape(k)
		if prefix != "" {
			name = fmt.Sprintf("%s[%s]", prefix, url.QueryEscape(k))
		}
		parts = append(parts, name+"="+url.QueryEscape(render(attrs[k])))
	}
	return strings.Join(parts, "&")
}

// render stringifies a single attribute value.
func render(v any) string {
	if b, ok := v.(bool); ok {
		if b {
			return "1"
		}
		return "0"
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		// Unrenderable value: drop the data, keep the key.
		return ""
	}
	return s
}

// Decode splits s on "&" and each segment on the first "=". Keys and
// values are percent-decoded; if unescaping fails the raw text is kept
// as-is. Segments with an empty key are skipped. Empty input yields an
// empty map.
func Decode(s string) map[string]string {
	out := make(map[string]string)
	if s == "" {
		return out
	}
	for _, seg := range strings.Split(s, "&") {
		if seg == "" {
			continue
		}
		key, val := seg, ""
		if i := strings.Index(seg, "="); i >= 0 {
			key, val = seg[:i], seg[i+1:]
		}
		key = unescape(key)
		if key == "" {
			continue
		}
		out[key] = unescape(val)
	}
	return out
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return u
}
