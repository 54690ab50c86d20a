package prompts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dailytoon-backend/internal/prompts"
)

func TestBuildNarrativePrompt_ContainsInputs(t *testing.T) {
	prompt := prompts.BuildNarrativePrompt(
		"I found a treasure map on my way home.",
		"adventure/fantasy",
		"ghibli",
		"a boy wearing a straw hat",
		4,
	)

	assert.Contains(t, prompt, "I found a treasure map on my way home.")
	assert.Contains(t, prompt, "adventure/fantasy")
	assert.Contains(t, prompt, "ghibli")
	assert.Contains(t, prompt, "a boy wearing a straw hat")
	assert.Contains(t, prompt, "4-panel")
}

func TestBuildNarrativePrompt_SafetyRules(t *testing.T) {
	prompt := prompts.BuildNarrativePrompt("entry", "comedy", "webtoon", "", 4)

	// The safety prohibition list must survive any template change
	assert.Contains(t, prompt, "violence")
	assert.Contains(t, prompt, "self-harm")
	assert.Contains(t, prompt, "Safety compliance required")
}

func TestBuildNarrativePrompt_JSONShape(t *testing.T) {
	prompt := prompts.BuildNarrativePrompt("entry", "comedy", "webtoon", "", 6)

	assert.Contains(t, prompt, `"full_story"`)
	assert.Contains(t, prompt, `"cuts"`)
	assert.Contains(t, prompt, `"cut_number"`)
	assert.Contains(t, prompt, `"image_prompt"`)
	assert.Contains(t, prompt, "6 scenes")
}

func TestBuildImagePrompt(t *testing.T) {
	prompt := prompts.BuildImagePrompt(
		"ghibli",
		"a boy wearing a straw hat",
		"the boy unfolds the map",
		"a boy standing on a hill at sunset",
	)

	assert.True(t, strings.HasPrefix(prompt, "a boy standing on a hill at sunset"))
	assert.Contains(t, prompt, "ghibli style")
	assert.Contains(t, prompt, "a boy wearing a straw hat")
	assert.Contains(t, prompt, "the boy unfolds the map")
	assert.Contains(t, prompt, "best quality")
}
