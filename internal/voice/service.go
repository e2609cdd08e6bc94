package voice

import (
	"context"
	"fmt"
	"strings"

	"github.com/giftforge/giftforge/internal/llm"
)

// ChatTurn is the result of one conversation exchange.
type ChatTurn struct {
	SessionID      string
	UserSaid       string
	AssistantReply string
	Draft          *GiftDraft
	Confirmed      bool
}

// Service turns free-form speech or text into structured gift drafts.
type Service interface {
	// ParseGiftDraft extracts a complete draft from a single utterance.
	// Returns ErrLowConfidence when the extraction falls below the
	// configured threshold.
	ParseGiftDraft(ctx context.Context, text string) (*GiftDraft, error)

	// Chat advances a multi-turn collection conversation. The returned
	// turn carries a confirmed draft only on the final exchange, after
	// which the session is discarded.
	Chat(ctx context.Context, sessionID, text string) (*ChatTurn, error)

	// ClearSession drops any conversation state for the session id.
	ClearSession(sessionID string)
}

type voiceService struct {
	client   llm.LLMClient
	cfg      llm.LLMConfig
	sessions *SessionStore
}

// NewService creates a voice Service backed by an LLM client.
func NewService(client llm.LLMClient, cfg llm.LLMConfig, sessions *SessionStore) Service {
	if sessions == nil {
		sessions = NewSessionStore(DefaultSessionTTL)
	}
	return &voiceService{client: client, cfg: cfg, sessions: sessions}
}

func (s *voiceService) ParseGiftDraft(ctx context.Context, text string) (*GiftDraft, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskParse,
		SystemPrompt: parseSystemPrompt,
		UserPrompt:   text,
	})
	if err != nil {
		return nil, fmt.Errorf("llm parse failed: %w", err)
	}

	draft, err := llm.ExtractJSON[GiftDraft](resp.Text, validateGiftDraft)
	if err != nil {
		return nil, fmt.Errorf("extracting gift draft: %w", err)
	}

	if draft.Confidence < s.cfg.ConfidenceThreshold {
		return nil, fmt.Errorf("%w: got %.0f%%, need %.0f%%",
			ErrLowConfidence, draft.Confidence*100, s.cfg.ConfidenceThreshold*100)
	}

	return &draft, nil
}

func (s *voiceService) Chat(ctx context.Context, sessionID, text string) (*ChatTurn, error) {
	history := s.sessions.Append(sessionID, RoleUser, text)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   renderHistory(history),
	})
	if err != nil {
		return nil, fmt.Errorf("llm chat failed: %w", err)
	}

	s.sessions.Append(sessionID, RoleAssistant, resp.Text)

	turn := &ChatTurn{
		SessionID:      sessionID,
		UserSaid:       text,
		AssistantReply: resp.Text,
	}

	// The model emits bare JSON with status "confirmed" only on the final
	// turn; anything else is an in-progress prose reply.
	draft, err := llm.ExtractJSON[GiftDraft](resp.Text, nil)
	if err == nil && draft.Status == "confirmed" {
		if err := validateGiftDraft(draft); err != nil {
			return nil, fmt.Errorf("confirmed draft invalid: %w", err)
		}
		s.sessions.Clear(sessionID)
		turn.Draft = &draft
		turn.Confirmed = true
		turn.AssistantReply = "Gift created successfully!"
	}

	return turn, nil
}

func (s *voiceService) ClearSession(sessionID string) {
	s.sessions.Clear(sessionID)
}

// renderHistory flattens the conversation into a single prompt for the
// non-chat generate endpoint.
func renderHistory(turns []Turn) string {
	var b strings.Builder
	for _, t := range turns {
		switch t.Role {
		case RoleUser:
			b.WriteString("User: ")
		case RoleAssistant:
			b.WriteString("Assistant: ")
		}
		b.WriteString(t.Content)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}
