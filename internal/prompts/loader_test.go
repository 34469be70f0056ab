package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("explain.json", "evidence_summary")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "evidence_summary")
	assert.Contains(t, prompt, "{{.SkillName}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("explain.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Skill {{.SkillName}} in {{.Category}}"
	data := map[string]string{
		"SkillName": "Python basics",
		"Category":  "coding",
	}

	result := Format(template, data)
	assert.Equal(t, "Skill Python basics in coding", result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	data := map[string]string{}

	result := Format(template, data)
	assert.Equal(t, template, result) // Placeholder remains
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get("explain.json", "evidence_summary")
	require.NoError(t, err)

	prompt2, err := Get("explain.json", "evidence_summary")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
