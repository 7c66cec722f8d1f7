// Package server exposes the conversational endpoint over HTTP.
package server

// #region imports
import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/mockbank/bankagent/internal/dispatch"
	"github.com/mockbank/bankagent/internal/extract"
	"github.com/mockbank/bankagent/internal/logging"
	"github.com/mockbank/bankagent/internal/nlu"
)

// #endregion

// #region collaborators

// Classifier is the intent model collaborator.
type Classifier interface {
	Classify(ctx context.Context, text string) (nlu.Classification, error)
}

// Tagger is the token-classification model collaborator.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]nlu.Span, error)
}

// #endregion collaborators

// #region server-struct

// Server wires the NLU collaborators and the dispatch engine behind HTTP.
type Server struct {
	mux        *http.ServeMux
	engine     *dispatch.Engine
	classifier Classifier
	tagger     Tagger
	logDB      *sql.DB // nil disables the dispatch log
}

// New builds a Server. logDB may be nil to disable decision logging.
func New(engine *dispatch.Engine, classifier Classifier, tagger Tagger, logDB *sql.DB) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		engine:     engine,
		classifier: classifier,
		tagger:     tagger,
		logDB:      logDB,
	}
	s.mux.HandleFunc("/chat", s.handleChat)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	return s
}

// Handler returns the HTTP handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// #endregion server-struct

// #region wire-types

type chatRequest struct {
	Text string `json:"text"`
}

type chatResult struct {
	BotReply string            `json:"bot_reply"`
	Source   string            `json:"source"`
	Entities map[string]string `json:"extracted_entities"`
}

type chatResponse struct {
	UserQuery       string     `json:"user_query"`
	PredictedIntent string     `json:"predicted_intent"`
	Confidence      float64    `json:"confidence"`
	Result          chatResult `json:"result"`
}

// #endregion wire-types

// #region chat-handler

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		http.Error(w, "body must be JSON with a non-empty text field", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	cls, err := s.classifier.Classify(ctx, req.Text)
	if err != nil {
		log.Printf("[SERVER] classify failed: %v", err)
		http.Error(w, "model service unavailable", http.StatusBadGateway)
		return
	}

	spans, err := s.tagger.Tag(ctx, req.Text)
	if err != nil {
		log.Printf("[SERVER] tag failed: %v", err)
		http.Error(w, "model service unavailable", http.StatusBadGateway)
		return
	}

	ents := extract.FromSpans(toExtractSpans(spans))
	amount, hasAmount := extract.Amount(ents)

	dreq := dispatch.Request{
		RequestID:  uuid.New().String(),
		RawIntent:  cls.Label,
		Confidence: cls.Score,
		Entities:   ents,
		Text:       req.Text,
		Amount:     amount,
		HasAmount:  hasAmount,
	}

	reply, err := s.engine.Handle(ctx, dreq)
	if err != nil {
		log.Printf("[SERVER] dispatch failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Best effort: a failed log write never fails the request.
	if s.logDB != nil {
		logErr := logging.LogDecision(s.logDB, logging.Entry{
			RequestID:       dreq.RequestID,
			RawIntent:       dreq.RawIntent,
			CorrectedIntent: reply.Intent,
			Confidence:      reply.Confidence,
			Source:          string(reply.Source),
			Reply:           reply.Message,
		})
		if logErr != nil {
			log.Printf("[SERVER] dispatch log failed: %v", logErr)
		}
	}

	resp := chatResponse{
		UserQuery:       req.Text,
		PredictedIntent: reply.Intent,
		Confidence:      reply.Confidence,
		Result: chatResult{
			BotReply: reply.Message,
			Source:   string(reply.Source),
			Entities: ents.Map(),
		},
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[SERVER] write response: %v", err)
	}
}

func toExtractSpans(spans []nlu.Span) []extract.Span {
	out := make([]extract.Span, len(spans))
	for i, sp := range spans {
		out[i] = extract.Span{Label: sp.Kind, Text: sp.Text}
	}
	return out
}

// #endregion chat-handler

// #region health-handler

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"knowledge": s.engine.KnowledgeReady(),
	})
}

// #endregion health-handler
