package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string   `json:"name" yaml:"name"`
	Count int      `json:"count" yaml:"count"`
	Tags  []string `json:"tags" yaml:"tags"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json", "yaml"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}
	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	in := payload{Name: "inventory", Count: 3, Tags: []string{"a", "b"}}
	for _, c := range []Codec{JSON{}, GoJSON{}, YAML{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestJSONCodecsAgree(t *testing.T) {
	in := payload{Name: "x", Count: 1}
	a := MustMarshal(JSON{}, in)
	b := MustMarshal(GoJSON{}, in)
	assert.Equal(t, string(a), string(b))
}

func TestMarshalIndent(t *testing.T) {
	in := map[string]any{"a": 1}
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		im, ok := c.(IndentMarshaler)
		require.True(t, ok, c.Name())
		data, err := im.MarshalIndent(in, "", "  ")
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(data), "\n  \"a\""), "two-space indent: %s", data)
	}

	_, ok := Codec(YAML{}).(IndentMarshaler)
	assert.False(t, ok, "yaml is indented by construction")
}

func TestUnmarshalMalformed(t *testing.T) {
	var out payload
	for _, c := range []Codec{JSON{}, GoJSON{}, YAML{}} {
		assert.Error(t, c.Unmarshal([]byte("{not valid"), &out), c.Name())
	}
}
