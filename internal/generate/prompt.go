// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"text/template"
)

// topicsPromptTmpl asks the completion service for a JSON array of day
// topics. The response is parsed by extractTopics.
var topicsPromptTmpl = template.Must(template.New("topics").Parse(`Generate {{.Days}} unique and engaging social media content topics for the theme: "{{.Theme}}".

Requirements:
- Each topic should be specific and actionable
- Topics should be relevant to the target audience
- Vary the content types (tips, questions, behind-the-scenes, educational, etc.)
- Keep topics concise (2-6 words each)

Format your response as a JSON array of strings, like this:
["Topic 1", "Topic 2", "Topic 3", ...]

Topics for "{{.Theme}}":
`))

// captionPromptTmpl asks for one short caption without hashtags.
var captionPromptTmpl = template.Must(template.New("caption").Parse(`Create an engaging social media caption for the topic "{{.Topic}}" within the theme "{{.Theme}}".

Requirements:
- 1-2 sentences maximum
- Include relevant emojis (2-4 emojis)
- Be conversational and engaging
- Encourage interaction
- Match the tone appropriate for the theme
- Don't include hashtags (they will be added separately)

Caption for "{{.Topic}}" ({{.Theme}}):
`))

// hashtagsPromptTmpl asks for exactly five "#" tokens. The response is
// parsed by extractHashtags, which tolerates fewer.
var hashtagsPromptTmpl = template.Must(template.New("hashtags").Parse(`Generate 5 relevant hashtags for a social media post about "{{.Topic}}" in the "{{.Theme}}" niche.

Requirements:
- Exactly 5 hashtags
- Mix of broad and specific tags
- No spaces in hashtags
- Include the # symbol
- Separate with spaces

Hashtags for "{{.Topic}}" ({{.Theme}}):
`))

// promptData carries the template fields; unused fields are ignored by
// templates that do not reference them.
type promptData struct {
	Theme string
	Topic string
	Days  int
}

func renderPrompt(tmpl *template.Template, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
