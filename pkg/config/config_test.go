package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCoreNil(t *testing.T) {
	c := FromCore(nil)
	assert.Empty(t, c.PackagesPath)
	assert.Empty(t, c.IgnoredPackages)
	assert.True(t, c.ShouldReadPreferences())
}

func TestShouldReadPreferences(t *testing.T) {
	off := false
	on := true
	assert.False(t, Config{ReadPreferences: &off}.ShouldReadPreferences())
	assert.True(t, Config{ReadPreferences: &on}.ShouldReadPreferences())
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Keyview Configuration", doc["title"])
	assert.NotContains(t, doc, "required")

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{"packages_path", "ignored_packages", "platform", "editor", "read_preferences"} {
		assert.Contains(t, props, field)
	}
}
