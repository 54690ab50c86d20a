// Package prompts assembles the model inputs for narrative adaptation and
// panel rendering. Everything here is pure string work; no I/O.
package prompts

import (
	"fmt"
	"strings"
)

// systemTemplate pins the writer role and the safety rules. The prohibition
// list is a hard contract: prompts that omit it get rejected by the image
// provider's safety policy far more often.
const systemTemplate = `You are a professional webtoon story writer and AI prompt engineer.
None of your output or generated prompts may contain violence, sexual content, hate, illegal activity, self-harm, or otherwise explicit material.
Based on the user's diary entry, write the script and the image generation prompts for a %d-panel comic.
You must answer strictly in the JSON format given below.`

const userTemplate = `[Input]
- Diary entry: %s
- Genre: %s
- Art style: %s
- Character notes: %s

[Instructions]
1. Adapt the diary entry above into the %s genre and write the complete storyline (full_story).
2. [Safety compliance required]: to satisfy the image model's safety policy, no panel may contain nudity, sexual content, graphic violence, hateful content, illegal activity, or self-harm.
3. Split the story into %d scenes (cuts) and write each scene's dialogue, scene_description, and image_prompt.
4. The image_prompt must be written in English and include concrete visual details (lighting, composition, style).

[Required output format (JSON)]
Respond with this JSON shape only, and nothing else.

{
  "full_story": "the adapted storyline...",
  "cuts": [
    {
      "cut_number": 1,
      "dialogue": "caption or dialogue for the panel",
      "scene_description": "what happens in the scene",
      "image_prompt": "Detailed description of the scene, %s style, %s, action details... (English)"
    },
    {
      "cut_number": 2,
      "...": "..."
    }
  ]
}`

const imageTemplate = `%s,
(masterpiece), best quality, high resolution,
%s style, %s, %s,
cinematic lighting, detailed texture`

// BuildNarrativePrompt produces the full prompt sent to the narrative model:
// system preamble followed by the adaptation request.
func BuildNarrativePrompt(originalContent, genre, style, characterNote string, cutsCount int) string {
	system := fmt.Sprintf(systemTemplate, cutsCount)
	user := fmt.Sprintf(userTemplate,
		originalContent, genre, style, characterNote,
		genre, cutsCount,
		style, characterNote,
	)
	return system + "\n" + user
}

// BuildImagePrompt combines the requested style, the character notes and the
// model-supplied scene text into the final rendering prompt for one panel.
func BuildImagePrompt(style, characterNote, actionDescription, backgroundDescription string) string {
	return strings.TrimSpace(fmt.Sprintf(imageTemplate,
		backgroundDescription, style, characterNote, actionDescription,
	))
}
