package xmlmap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/test47-web/go-xmlmap"
)

func TestMap_MarshalJSON(t *testing.T) {
	testCases := []struct {
		name string
		in   *xmlmap.Map
		want string
	}{
		{
			name: "keys keep insertion order",
			in: buildMap(
				"b", 1.0,
				"a", "x",
				"nested", buildMap("y", 2.0),
				"arr", []any{1.0, "s"},
				"empty", xmlmap.NewMap(),
			),
			want: `{"b":1,"a":"x","nested":{"y":2},"arr":[1,"s"],"empty":{}}`,
		},
		{
			name: "empty map",
			in:   xmlmap.NewMap(),
			want: `{}`,
		},
		{
			name: "keys are escaped",
			in:   buildMap(`he"y`, 1.0),
			want: `{"he\"y":1}`,
		},
		{
			name: "off-contract values delegate to encoding/json",
			in:   buildMap("ok", true, "none", nil),
			want: `{"ok":true,"none":null}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := json.Marshal(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, string(out))
		})
	}
}

func TestMap_MarshalJSON_Nil(t *testing.T) {
	out, err := json.Marshal((*xmlmap.Map)(nil))
	require.NoError(t, err)
	require.Equal(t, "null", string(out))
}

func TestMap_UnmarshalJSON(t *testing.T) {
	input := `{"b":1,"a":"x","n":{"k":[true,null]},"dup":1,"dup":2}`

	m := xmlmap.NewMap()
	require.NoError(t, json.Unmarshal([]byte(input), m))

	require.Equal(t, []string{"b", "a", "n", "dup"}, m.Keys(),
		"source order survives, duplicate keeps first position")

	v, _ := m.Get("b")
	require.Equal(t, 1.0, v)
	v, _ = m.Get("a")
	require.Equal(t, "x", v)

	v, _ = m.Get("n")
	n, ok := v.(*xmlmap.Map)
	require.True(t, ok)
	k, _ := n.Get("k")
	require.Equal(t, []any{true, nil}, k)

	v, _ = m.Get("dup")
	require.Equal(t, 2.0, v, "duplicate keeps last value")
}

func TestMap_UnmarshalJSON_Empty(t *testing.T) {
	m := xmlmap.NewMap()
	require.NoError(t, json.Unmarshal([]byte(`{}`), m))
	require.Equal(t, 0, m.Len())

	require.NoError(t, json.Unmarshal([]byte(`{"a":[]}`), m))
	v, _ := m.Get("a")
	require.Equal(t, []any{}, v)
}

func TestMap_UnmarshalJSON_Replaces(t *testing.T) {
	m := buildMap("old", 1.0)
	require.NoError(t, json.Unmarshal([]byte(`{"new":2}`), m))
	require.Equal(t, []string{"new"}, m.Keys())
}

func TestMap_UnmarshalJSON_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "array root",
			input: `[1,2]`,
			want:  "xmlmap: cannot unmarshal JSON [ into Map",
		},
		{
			name:  "number root",
			input: `123`,
			want:  "xmlmap: cannot unmarshal JSON 123 into Map",
		},
		{
			name:  "string root",
			input: `"s"`,
			want:  "xmlmap: cannot unmarshal JSON s into Map",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tc.input), xmlmap.NewMap())
			require.EqualError(t, err, tc.want)
		})
	}

	t.Run("truncated object", func(t *testing.T) {
		require.Error(t, json.Unmarshal([]byte(`{"a":`), xmlmap.NewMap()))
	})
	t.Run("malformed input", func(t *testing.T) {
		require.Error(t, json.Unmarshal([]byte(`{"a"}`), xmlmap.NewMap()))
	})
}

func TestJSONRoundTrip(t *testing.T) {
	input := `<config>
  <name>staging</name>
  <listen><host>localhost</host><port>8443</port></listen>
  <replica>alpha</replica>
  <replica>beta</replica>
  <note><![CDATA[ keep spacing ]]></note>
</config>`

	doc, err := xmlmap.Parse([]byte(input))
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	back := xmlmap.NewMap()
	require.NoError(t, json.Unmarshal(out, back))
	requireMapEqual(t, doc, back)
}
