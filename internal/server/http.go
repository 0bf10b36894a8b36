package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/awave1/jay/internal/token"
	"github.com/awave1/jay/internal/tokenstream"
	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

const maxBodySize = 1 << 20

// Classification is the verdict on a single word.
type Classification struct {
	Word    string `json:"word"`
	Keyword bool   `json:"keyword"`
	Kind    string `json:"kind"`
	Text    string `json:"text"`
}

// Classify runs the keyword classifier over words. Words that are not
// reserved come back as identifiers.
func Classify(words []string) []Classification {
	return lo.Map(words, func(word string, _ int) Classification {
		tok := token.LookupIdent(word)
		return Classification{
			Word:    word,
			Keyword: tok.Kind.IsKeyword(),
			Kind:    tok.Kind.String(),
			Text:    tok.String(),
		}
	})
}

type classifyRequest struct {
	Words []string `json:"words"`
}

type renderRequest struct {
	Tokens tokenstream.Stream `json:"tokens"`
}

type renderResponse struct {
	Text   string             `json:"text"`
	Tokens tokenstream.Stream `json:"tokens"`
}

type httpHandler struct {
	mux *http.ServeMux
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func allowMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func (h *httpHandler) classify(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req classifyRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		log.Printf("failed to decode request body: %v", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	respond(w, http.StatusOK, map[string][]Classification{"results": Classify(req.Words)})
}

func (h *httpHandler) render(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req renderRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		log.Printf("failed to decode request body: %v", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Tokens == nil {
		req.Tokens = tokenstream.Stream{}
	}

	respond(w, http.StatusOK, renderResponse{Text: req.Tokens.String(), Tokens: req.Tokens})
}

func (h *httpHandler) keywords(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string][]string{"keywords": token.Keywords()})
}

// NewHTTPHandler serves the classifier and the renderer over HTTP. Handlers
// hold no state, so requests are served concurrently without locking.
func NewHTTPHandler() http.Handler {
	h := &httpHandler{mux: http.NewServeMux()}
	h.mux.HandleFunc("/v1/classify", allowMethod(http.MethodPost, h.classify))
	h.mux.HandleFunc("/v1/render", allowMethod(http.MethodPost, h.render))
	h.mux.HandleFunc("/v1/keywords", allowMethod(http.MethodGet, h.keywords))
	return h
}

// respond writes v as JSON. The status line may already be sent when writing
// fails, so the failure is only logged.
func respond(w http.ResponseWriter, status int, v any) {
	if err := resJSON(w, status, v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func resJSON(w http.ResponseWriter, status int, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)+1))
	w.WriteHeader(status)

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
