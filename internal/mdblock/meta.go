package mdblock

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from a code block's info string.
type Meta map[string]interface{}

// Get returns the metadata value for the given key as a string.
// It returns an empty string if the key is missing or the Meta is nil.
func (m Meta) Get(name string) string {
	if m == nil {
		return ""
	}

	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

var (
	reInfo     = regexp.MustCompile(`^\s*([\w+#.-]+)\s*(.*?)\s*$`)
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}$`)
)

// ParseInfo splits a code block info string such as `go file=main.go` into
// the language word and its metadata. Metadata is either shell-style
// key=value words, optionally wrapped in braces, or a JSON object.
func ParseInfo(info string) (string, Meta, error) {
	all := reInfo.FindStringSubmatch(info)
	if all == nil {
		meta, err := parseMeta(info)

		return "", meta, err
	}

	meta, err := parseMeta(all[2])

	return all[1], meta, err
}

func parseMeta(input string) (Meta, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSON.MatchString(input) {
		var meta Meta

		if err := json.Unmarshal([]byte(input), &meta); err != nil {
			return nil, err
		}

		return meta, nil
	}

	if subs := reBrackets.FindStringSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(input)
	if err != nil {
		return nil, err
	}

	dict := make(Meta)

	for _, word := range words {
		if key, value, found := strings.Cut(word, "="); found {
			dict[key] = value
		}
	}

	return dict, nil
}
