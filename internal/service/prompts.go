package service

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var promptTemplates = template.Must(template.New("prompts").ParseFS(promptFS, "prompts/*.tmpl"))

// Prompt template names.
const (
	promptTranslate     = "translate.tmpl"
	promptExamples      = "examples.tmpl"
	promptLesson        = "lesson.tmpl"
	promptPractice      = "practice.tmpl"
	promptChatbotSystem = "chatbot_system.tmpl"
	promptChatOptions   = "chat_options.tmpl"
)

func renderPrompt(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
