package keydiff

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18n-catalog/internal/parser"
)

func TestCompare(t *testing.T) {
	r := Compare("locales/zh.ts", parser.NewKeySet("a.b", "c"), "locales/en.ts", parser.NewKeySet("a.b", "d"))

	assert.False(t, r.Identical)
	assert.Equal(t, []string{"c"}, r.MissingInSecond)
	assert.Equal(t, []string{"d"}, r.MissingInFirst)
	assert.Equal(t, "missing_in_zh.ts", r.FirstLabel)
	assert.Equal(t, "missing_in_en.ts", r.SecondLabel)
}

func TestCompare_SortedOutput(t *testing.T) {
	r := Compare("a.ts", parser.NewKeySet("z", "m", "a", "k"), "b.ts", parser.NewKeySet("k"))
	assert.Equal(t, []string{"a", "m", "z"}, r.MissingInSecond)
	assert.Empty(t, r.MissingInFirst)
}

func TestCompare_Identity(t *testing.T) {
	keys := parser.NewKeySet("a.b", "c", "d.e.f")
	r := Compare("zh.ts", keys, "zh.ts", keys)

	assert.True(t, r.Identical)
	assert.Empty(t, r.MissingInFirst)
	assert.Empty(t, r.MissingInSecond)
}

func TestCompare_Symmetric(t *testing.T) {
	a := parser.NewKeySet("x", "y.z", "only.a")
	b := parser.NewKeySet("x", "only.b", "also.b")

	ab := Compare("a.ts", a, "b.ts", b)
	ba := Compare("b.ts", b, "a.ts", a)

	assert.Equal(t, ab.MissingInSecond, ba.MissingInFirst)
	assert.Equal(t, ab.MissingInFirst, ba.MissingInSecond)
}

func TestCompare_LabelCollision(t *testing.T) {
	r := Compare("app/zh.ts", parser.NewKeySet("a"), "admin/zh.ts", parser.NewKeySet("b"))

	assert.Equal(t, "missing_in_zh.ts", r.FirstLabel)
	assert.Equal(t, "missing_in_zh.ts_2", r.SecondLabel)
	assert.Len(t, r.Report(), 3)
}

func TestReport(t *testing.T) {
	r := Compare("zh.ts", parser.NewKeySet("a", "b"), "en.ts", parser.NewKeySet("a"))

	assert.Equal(t, map[string]any{
		"identical":        false,
		"missing_in_zh.ts": []string{},
		"missing_in_en.ts": []string{"b"},
	}, r.Report())
}

func TestWrite_JSON(t *testing.T) {
	r := Compare("zh.ts", parser.NewKeySet("a", "b"), "en.ts", parser.NewKeySet("a", "c"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatJSON))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, false, got["identical"])
	assert.Equal(t, []any{"c"}, got["missing_in_zh.ts"])
	assert.Equal(t, []any{"b"}, got["missing_in_en.ts"])
}

func TestWrite_TOML(t *testing.T) {
	r := Compare("zh.ts", parser.NewKeySet("a", "b"), "en.ts", parser.NewKeySet("a"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatTOML))

	var got map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, false, got["identical"])
	assert.Equal(t, []any{"b"}, got["missing_in_en.ts"])
}

func TestWrite_Text(t *testing.T) {
	r := Compare("zh.ts", parser.NewKeySet("a", "b"), "en.ts", parser.NewKeySet("a", "c"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatText))
	assert.Equal(t, "identical: false\n"+
		"missing_in_zh.ts (1):\n  c\n"+
		"missing_in_en.ts (1):\n  b\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestWriteSet(t *testing.T) {
	zh := parser.NewKeySet("a", "b")
	results := map[string]Result{
		"fr": Compare("zh.ts", zh, "fr.ts", parser.NewKeySet("a")),
		"en": Compare("zh.ts", zh, "en.ts", parser.NewKeySet("a", "b")),
	}

	var text bytes.Buffer
	require.NoError(t, WriteSet(&text, results, FormatText))
	assert.Equal(t, "== en\n"+
		"identical: true\n"+
		"missing_in_zh.ts (0):\n"+
		"missing_in_en.ts (0):\n"+
		"== fr\n"+
		"identical: false\n"+
		"missing_in_zh.ts (0):\n"+
		"missing_in_fr.ts (1):\n  b\n", text.String())

	var js bytes.Buffer
	require.NoError(t, WriteSet(&js, results, FormatJSON))
	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &got))
	assert.Equal(t, true, got["en"]["identical"])
	assert.Equal(t, []any{"b"}, got["fr"]["missing_in_fr.ts"])

	var tm bytes.Buffer
	require.NoError(t, WriteSet(&tm, results, FormatTOML))
	var gotTOML map[string]map[string]any
	require.NoError(t, toml.Unmarshal(tm.Bytes(), &gotTOML))
	assert.Equal(t, false, gotTOML["fr"]["identical"])
}
