package schema_test

import (
	"strings"
	"testing"

	"todolist/pkg/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *schema.Schema {
	return schema.New(
		schema.Field{
			Name:      "name",
			Required:  true,
			Before:    []schema.Transform{schema.TrimSpace},
			Tag:       "text,min=1,max=5",
			MessageID: "nameLength",
			Messages:  map[string]string{schema.TagText: "nameText"},
			After:     []schema.Transform{schema.EscapeHTML},
		},
		schema.Field{
			Name:      "flag",
			Default:   false,
			Tag:       schema.TagBool,
			MessageID: "flagBoolean",
			After:     []schema.Transform{schema.ParseBool},
		},
		schema.Field{
			Name:      "color",
			Default:   "red",
			Tag:       "text,oneof=red green",
			MessageID: "colorInvalid",
		},
	)
}

func TestEvaluate_AppliesDefaultsAndTransforms(t *testing.T) {
	values, violations := testSchema().Evaluate(map[string]any{"name": "  <b> "})

	require.Empty(t, violations)
	name, ok := values.String("name")
	require.True(t, ok)
	assert.Equal(t, "&lt;b&gt;", name)

	flag, ok := values.Bool("flag")
	require.True(t, ok)
	assert.False(t, flag)

	color, _ := values.String("color")
	assert.Equal(t, "red", color)
}

func TestEvaluate_ReportsViolationsInFieldOrder(t *testing.T) {
	values, violations := testSchema().Evaluate(map[string]any{
		"color": "blue",
		"flag":  float64(2),
	})

	require.Nil(t, values)
	require.Len(t, violations, 3)

	assert.Equal(t, "name", violations[0].Field)
	assert.Equal(t, schema.TagRequired, violations[0].Tag)
	assert.Equal(t, "nameLength", violations[0].MessageID)
	assert.Nil(t, violations[0].Value)

	assert.Equal(t, "flag", violations[1].Field)
	assert.Equal(t, "flagBoolean", violations[1].MessageID)
	assert.Equal(t, float64(2), violations[1].Value)

	assert.Equal(t, "color", violations[2].Field)
	assert.Equal(t, "blue", violations[2].Value)
}

func TestEvaluate_LengthCountsRunes(t *testing.T) {
	_, violations := testSchema().Evaluate(map[string]any{"name": "héllo"})
	require.Empty(t, violations)

	_, violations = testSchema().Evaluate(map[string]any{"name": strings.Repeat("a", 6)})
	require.Len(t, violations, 1)
	assert.Equal(t, "max", violations[0].Tag)
}

func TestEvaluate_ReportsTrimmedValue(t *testing.T) {
	_, violations := testSchema().Evaluate(map[string]any{"name": "   "})
	require.Len(t, violations, 1)
	assert.Equal(t, "", violations[0].Value)
	assert.Equal(t, "min", violations[0].Tag)
}

func TestEvaluate_UsesPerTagMessage(t *testing.T) {
	_, violations := testSchema().Evaluate(map[string]any{"name": float64(42)})
	require.Len(t, violations, 1)
	assert.Equal(t, schema.TagText, violations[0].Tag)
	assert.Equal(t, "nameText", violations[0].MessageID)
}

func TestEvaluate_NullIsPresentButInvalid(t *testing.T) {
	_, violations := testSchema().Evaluate(map[string]any{"name": "ok", "color": nil})
	require.Len(t, violations, 1)
	assert.Equal(t, "color", violations[0].Field)
}

func TestEvaluate_BoolForms(t *testing.T) {
	for in, want := range map[any]bool{
		true:       true,
		false:      false,
		float64(1): true,
		float64(0): false,
		"true":     true,
		"false":    false,
		"1":        true,
		"0":        false,
	} {
		values, violations := testSchema().Evaluate(map[string]any{"name": "ok", "flag": in})
		require.Empty(t, violations, "%#v", in)
		flag, ok := values.Bool("flag")
		require.True(t, ok, "%#v", in)
		assert.Equal(t, want, flag, "%#v", in)
	}

	for _, in := range []any{"TRUE", "t", "F", "yes", "", float64(2), float64(0.5), nil, []any{}} {
		_, violations := testSchema().Evaluate(map[string]any{"name": "ok", "flag": in})
		require.Len(t, violations, 1, "%#v", in)
		assert.Equal(t, "flag", violations[0].Field)
		assert.Equal(t, "flagBoolean", violations[0].MessageID)
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{float64(0), false},
		{float64(2), true},
		{"", false},
		{"false", true},
		{map[string]any{}, true},
		{[]any{}, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, schema.Truthy(tc.in), "%#v", tc.in)
	}
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "Tom &amp; Jerry &#x2F; &quot;x&quot; &#x27;y&#x27;", schema.EscapeHTML(`Tom & Jerry / "x" 'y'`))
	assert.Equal(t, 3, schema.EscapeHTML(3))
}
