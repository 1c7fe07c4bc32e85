// Package llmutils provides helpers for cleaning and formatting JSON
// exchanged with LLMs, which tend to wrap payloads in prose or backticks.
package llmutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CleanJSON trims any prose before and after a JSON object or array,
// as LLMs can reply like `Sure, here you go: {json}`.
func CleanJSON(bs []byte) []byte {
	start := firstIndex(bs, '{', '[')
	if start >= 0 {
		bs = bs[start:]
	}
	end := lastIndex(bs, '}', ']')
	if end >= 0 {
		bs = bs[:end+1]
	}
	return bs
}

func firstIndex(bs []byte, a, b byte) int {
	ia := bytes.IndexByte(bs, a)
	ib := bytes.IndexByte(bs, b)
	if ia < 0 {
		return ib
	}
	if ib < 0 {
		return ia
	}
	return min(ia, ib)
}

func lastIndex(bs []byte, a, b byte) int {
	return max(bytes.LastIndexByte(bs, a), bytes.LastIndexByte(bs, b))
}

// TrimBackticks removes a Markdown code fence around the text, if present.
func TrimBackticks(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			text = text[idx+1:]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// ToJSON returns compact JSON encoding of the value.
func ToJSON(val any) string {
	js, _ := json.Marshal(val)
	return string(js)
}

// ToJSONIndent returns indented JSON encoding of the value.
func ToJSONIndent(val any) string {
	js, _ := json.MarshalIndent(val, "", "  ")
	return string(js)
}

// ToYAML returns YAML encoding of the value.
func ToYAML(val any) string {
	ys, _ := yaml.Marshal(val)
	return string(ys)
}

// JSONIndent re-indents a JSON document, returning the original on failure.
func JSONIndent(body string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(body), "", "  "); err != nil {
		return body
	}
	return buf.String()
}

// BackticksJSON wraps a JSON document in a Markdown code fence.
func BackticksJSON(js string) string {
	return "```json\n" + js + "\n```"
}

// Stringify returns the string form of the value: strings pass through,
// everything else is JSON encoded.
func Stringify(s any) string {
	switch v := s.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ToJSON(s)
	}
}
