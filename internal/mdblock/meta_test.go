package mdblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info string
		lang string
		meta Meta
	}{
		{"empty", "", "", Meta{}},
		{"lang only", "go", "go", Meta{}},
		{"words", `js file=main.js title="hello world"`, "js", Meta{"file": "main.js", "title": "hello world"}},
		{"brackets", "sh {file=run.sh}", "sh", Meta{"file": "run.sh"}},
		{"json", `py {"file":"a.py","n":2}`, "py", Meta{"file": "a.py", "n": float64(2)}},
		{"meta only", "{file=x.txt}", "", Meta{"file": "x.txt"}},
		{"symbols", "c++ file=a.cpp", "c++", Meta{"file": "a.cpp"}},
		{"bare words ignored", "go outline", "go", Meta{}},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lang, meta, err := ParseInfo(tt.info)

			require.NoError(t, err)
			assert.Equal(t, tt.lang, lang)
			assert.Equal(t, tt.meta, meta)
		})
	}
}

func TestParseInfoErrors(t *testing.T) {
	t.Parallel()

	_, _, err := ParseInfo(`go {"file":}`)
	require.Error(t, err)

	_, _, err = ParseInfo(`go file="unterminated`)
	require.Error(t, err)
}

func TestMetaGet(t *testing.T) {
	t.Parallel()

	var empty Meta

	assert.Empty(t, empty.Get("file"))
	assert.Equal(t, "2", Meta{"n": 2}.Get("n"))
	assert.Equal(t, "a", Meta{"file": "a"}.Get("file"))
	assert.Empty(t, Meta{"file": "a"}.Get("other"))
}
