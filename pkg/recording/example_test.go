package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTagsUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Tags
	}{
		{"absent", "description: x", Tags{}},
		{"true", "document: true", Tags{}},
		{"false", "document: false", Tags{Disabled: true}},
		{"single tag", "document: public_api", Tags{Names: []string{"public_api"}}},
		{"tag list", "document: [public_api, v2]", Tags{Names: []string{"public_api", "v2"}}},
		{"empty list", "document: []", Tags{Disabled: true, Names: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ex Example
			require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &ex))
			assert.Equal(t, tt.want.Disabled, ex.Document.Disabled)
			assert.ElementsMatch(t, tt.want.Names, ex.Document.Names)
		})
	}

	t.Run("mapping is rejected", func(t *testing.T) {
		var ex Example
		err := yaml.Unmarshal([]byte("document: {a: b}"), &ex)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "document must be")
	})
}

func TestTagsMarshal(t *testing.T) {
	out, err := yaml.Marshal(map[string]Tags{
		"off":  Disabled(),
		"on":   Enabled(),
		"tags": Enabled("a", "b"),
	})
	require.NoError(t, err)

	var back map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, false, back["off"])
	assert.Equal(t, true, back["on"])
	assert.Equal(t, []interface{}{"a", "b"}, back["tags"])
}
