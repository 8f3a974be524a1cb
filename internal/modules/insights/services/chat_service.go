package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/insightx-ai/insightx-be/internal/core/llm"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/repositories"
	"github.com/insightx-ai/insightx-be/internal/shared/utils"
)

const (
	// MaxHistoryTurns bounds how many question/answer pairs are replayed to
	// the model, preventing context creep over long conversations.
	MaxHistoryTurns = 6

	// liveStatsMarker separates the user's question from the injected
	// per-question statistics. Stripped again for display.
	liveStatsMarker = "[LIVE DATA STATS]"

	overviewQuestion = "Give me a concise executive overview of this dataset. " +
		"What are the 3-5 most important headlines a CEO should know immediately? " +
		"Highlight key risks, top performers, and strategic opportunities. Be brief."
)

type session struct {
	history    []llm.Message
	lastActive time.Time
}

// ChatResult is the outcome of one chat turn.
type ChatResult struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
	ChartType string `json:"chart_type,omitempty"`
}

// ChatService keeps per-session conversation history in memory and proxies
// each turn to the LLM with the dataset grounding context.
type ChatService struct {
	mu       sync.RWMutex
	sessions map[string]*session

	llm         *llm.Service
	datasets    *DatasetService
	transcripts repositories.TranscriptRepo // nil when persistence is disabled
}

// NewChatService creates the chat service. transcripts may be nil.
func NewChatService(llmService *llm.Service, datasets *DatasetService, transcripts repositories.TranscriptRepo) *ChatService {
	return &ChatService{
		sessions:    make(map[string]*session),
		llm:         llmService,
		datasets:    datasets,
		transcripts: transcripts,
	}
}

// Chat handles one user turn: resolve or create the session, enrich the
// question with live stats from the current dataset, call the model with
// the trimmed history, and record both sides.
func (s *ChatService) Chat(ctx context.Context, sessionID, message string) (*ChatResult, error) {
	sid := sessionID
	if sid == "" {
		sid = uuid.NewString()
	}

	snap := s.datasets.Current()

	userContent := message
	if snap != nil {
		if dynamic := DynamicStats(snap.Dataset, snap.Summary, message); dynamic != "" {
			userContent = message + "\n\n" + liveStatsMarker + "\n" + dynamic
		}
	}

	s.mu.Lock()
	sess, ok := s.sessions[sid]
	if !ok {
		sess = &session{}
		s.sessions[sid] = sess
	}
	sess.history = append(sess.history, llm.Message{Role: llm.RoleUser, Content: userContent})
	sess.lastActive = time.Now()
	trimmed := trimHistory(sess.history)
	s.mu.Unlock()

	systemPrompt := staticSystemPrompt
	if snap != nil {
		systemPrompt = snap.SystemPrompt
	}

	reply, err := s.llm.Chat(ctx, systemPrompt, trimmed)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	sess.history = append(sess.history, llm.Message{Role: llm.RoleAssistant, Content: reply})
	sess.lastActive = time.Now()
	s.mu.Unlock()

	chartType := DetectChartType(message)
	s.logExchange(sid, message, reply, chartType)

	return &ChatResult{Reply: reply, SessionID: sid, ChartType: chartType}, nil
}

// Overview runs the canned executive-overview question in a fresh session
// and returns the reply together with the new session ID, so the frontend
// can continue the conversation.
func (s *ChatService) Overview(ctx context.Context) (*ChatResult, error) {
	sid := uuid.NewString()

	s.mu.Lock()
	s.sessions[sid] = &session{lastActive: time.Now()}
	s.mu.Unlock()

	return s.Chat(ctx, sid, overviewQuestion)
}

// History returns the display form of a session's conversation: injected
// live-stats blocks are stripped from user messages.
func (s *ChatService) History(sessionID string) ([]llm.Message, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.RUnlock()
		return nil, false
	}
	out := make([]llm.Message, len(sess.history))
	copy(out, sess.history)
	s.mu.RUnlock()

	for i, m := range out {
		if idx := strings.Index(m.Content, liveStatsMarker); idx >= 0 {
			out[i].Content = strings.TrimSpace(m.Content[:idx])
		}
	}
	return out, true
}

// Clear deletes a session's history (the "New Chat" button).
func (s *ChatService) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// PruneIdle removes sessions idle longer than maxAge and returns how many
// were dropped. Called by the cron janitor.
func (s *ChatService) PruneIdle(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for sid, sess := range s.sessions {
		if sess.lastActive.Before(cutoff) {
			delete(s.sessions, sid)
			pruned++
		}
	}
	return pruned
}

// SessionCount returns the number of live sessions.
func (s *ChatService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// trimHistory keeps the last MaxHistoryTurns question/answer pairs.
func trimHistory(history []llm.Message) []llm.Message {
	max := MaxHistoryTurns * 2
	if len(history) <= max {
		return append([]llm.Message(nil), history...)
	}
	return append([]llm.Message(nil), history[len(history)-max:]...)
}

// logExchange persists the transcript, best effort.
func (s *ChatService) logExchange(sessionID, message, reply, chartType string) {
	if s.transcripts == nil {
		return
	}
	if err := s.transcripts.LogExchange(sessionID, message, reply, chartType); err != nil {
		utils.LogError("failed to persist chat transcript", err, map[string]interface{}{"session_id": sessionID})
	}
}
