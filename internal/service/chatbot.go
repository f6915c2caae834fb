package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/phrazzld/polyglot-api/internal/catalog"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/platform/logger"
	"github.com/phrazzld/polyglot-api/internal/redact"
)

const chatOptionCount = 3

var (
	sectionMarker = regexp.MustCompile(`(?m)^[ \t]*\**(Example|Practice|Grammar|Vocabulary|Tip|Translation)s?\**:\**[ \t]*`)
	bulletLine    = regexp.MustCompile(`(?m)^[ \t]*[-•][ \t]*(.+)$`)
	blankRun      = regexp.MustCompile(`\n{3,}`)
	optionPrefix  = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)
)

var sectionHeadings = map[string]string{
	"Example":     "## 🔍 Examples",
	"Practice":    "## ✨ Practice This",
	"Grammar":     "## 📚 Grammar Note",
	"Vocabulary":  "## 📖 Vocabulary",
	"Tip":         "## 💡 Pro Tip",
	"Translation": "## 🗣️ Translation",
}

// ChatInput is one chatbot turn with its history.
type ChatInput struct {
	Messages []domain.ChatMessage
	Language string
}

// ChatbotService runs the language tutor conversation.
type ChatbotService interface {
	// Reply answers the conversation. Upstream failures are answered with a
	// canned reply; only invalid input returns an error.
	Reply(ctx context.Context, in ChatInput) (domain.ChatReply, error)
}

type chatbotService struct {
	completer generation.Completer
	logger    *slog.Logger
}

// NewChatbotService creates a ChatbotService.
func NewChatbotService(completer generation.Completer, log *slog.Logger) (ChatbotService, error) {
	if completer == nil {
		return nil, &ServiceError{Service: "chatbot", Operation: "create_service", Message: "completer cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}
	return &chatbotService{completer: completer, logger: log.With("component", "chatbot_service")}, nil
}

func (s *chatbotService) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With("component", "chatbot_service")
	}
	return s.logger
}

func (s *chatbotService) Reply(ctx context.Context, in ChatInput) (domain.ChatReply, error) {
	messages := conversation(in.Messages)
	if len(messages) == 0 {
		return domain.ChatReply{}, fmt.Errorf("%w: conversation has no non-empty messages", domain.ErrValidation)
	}
	code := catalog.ResolveLanguage(in.Language)
	name := catalog.LanguageName(code)

	system, err := renderPrompt(promptChatbotSystem, map[string]string{"Language": name})
	if err != nil {
		return domain.ChatReply{}, newServiceError("chatbot", "reply", "failed to build prompt", err)
	}

	resp, err := s.completer.Complete(ctx, generation.Request{
		System:      system,
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil || strings.TrimSpace(resp.Content) == "" {
		if err == nil {
			err = fmt.Errorf("%w: empty reply", generation.ErrInvalidResponse)
		}
		s.log(ctx).Warn("chatbot completion failed, serving canned reply",
			"error", redact.Error(err),
			"language", code)
		return domain.ChatReply{
			Response: catalog.CannedChatReply(code),
			Options:  catalog.DefaultChatOptions(),
		}, nil
	}

	reply := FormatReply(resp.Content)
	return domain.ChatReply{
		Response: reply,
		Options:  s.followUps(ctx, reply, name),
	}, nil
}

// conversation drops blank turns and maps client roles onto completion
// roles. Anything other than "assistant" is treated as the learner.
func conversation(in []domain.ChatMessage) []generation.Message {
	out := make([]generation.Message, 0, len(in))
	for _, m := range in {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		role := generation.RoleUser
		if strings.EqualFold(m.Role, domain.ChatRoleAssistant) {
			role = generation.RoleAssistant
		}
		out = append(out, generation.Message{Role: role, Content: content})
	}
	return out
}

// followUps asks for three short suggestions. Missing suggestions are filled
// from the default options.
func (s *chatbotService) followUps(ctx context.Context, reply, language string) []string {
	prompt, err := renderPrompt(promptChatOptions, map[string]string{"Reply": reply, "Language": language})
	if err != nil {
		return catalog.DefaultChatOptions()
	}
	req := generation.UserPrompt("", prompt)
	req.MaxTokens = 150
	req.Temperature = 0.7

	resp, err := s.completer.Complete(ctx, req)
	if err != nil {
		s.log(ctx).Debug("follow-up generation failed", "error", redact.Error(err))
		return catalog.DefaultChatOptions()
	}
	return parseOptions(resp.Content)
}

func parseOptions(content string) []string {
	options := make([]string, 0, chatOptionCount)
	seen := map[string]bool{}
	for _, line := range strings.Split(content, "\n") {
		opt := strings.TrimSpace(optionPrefix.ReplaceAllString(line, ""))
		opt = strings.Trim(opt, `"`)
		if opt == "" || seen[opt] {
			continue
		}
		seen[opt] = true
		options = append(options, opt)
		if len(options) == chatOptionCount {
			return options
		}
	}
	for _, def := range catalog.DefaultChatOptions() {
		if len(options) == chatOptionCount {
			break
		}
		if !seen[def] {
			options = append(options, def)
		}
	}
	return options
}

// FormatReply turns section markers such as "Grammar:" into markdown
// headings and normalises list bullets to "*".
func FormatReply(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = sectionMarker.ReplaceAllStringFunc(text, func(m string) string {
		name := sectionMarker.FindStringSubmatch(m)[1]
		return "\n" + sectionHeadings[name] + "\n"
	})
	text = bulletLine.ReplaceAllString(text, "* $1")
	text = blankRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
