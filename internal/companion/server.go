package companion

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/five82/alertface/internal/appmsg"
)

const (
	alertKey   = 0
	alertValue = 1
	maxBody    = 64 << 10

	// maxSeen bounds replay detection to the most recent transaction ids.
	maxSeen = 256
)

// Server is the paired-device simulator. It acknowledges (or rejects) every
// AppMessage and counts alert events.
type Server struct {
	failWith appmsg.Result
	now      func() time.Time

	mu        sync.Mutex
	alerts    int
	lastAlert time.Time
	seen      map[uuid.UUID]struct{}
	seenRing  []uuid.UUID
	seenNext  int
}

// NewServer builds a simulator from cfg.
func NewServer(cfg Config) *Server {
	return &Server{
		failWith: cfg.FailResult,
		now:      time.Now,
		seen:     make(map[uuid.UUID]struct{}, maxSeen),
		seenRing: make([]uuid.UUID, 0, maxSeen),
	}
}

// Router returns the HTTP routes served by the simulator.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/appmessage", s.handleAppMessage).Methods(http.MethodPost)
	r.HandleFunc("/api/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK\n"))
	}).Methods(http.MethodGet)
	return r
}

// Status reports the simulator's counters.
func (s *Server) Status() appmsg.CompanionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := appmsg.CompanionStatus{Running: true, Alerts: s.alerts}
	if !s.lastAlert.IsZero() {
		last := s.lastAlert
		status.LastAlert = &last
	}
	return status
}

type resultResponse struct {
	Result appmsg.Result `json:"result"`
}

func (s *Server) handleAppMessage(w http.ResponseWriter, r *http.Request) {
	var msg appmsg.Message
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(&msg); err != nil {
		http.Error(w, "malformed message", http.StatusBadRequest)
		return
	}
	if msg.TransactionID == uuid.Nil {
		http.Error(w, "missing transaction_id", http.StatusBadRequest)
		return
	}
	if len(msg.Tuples) == 0 {
		http.Error(w, "message has no tuples", http.StatusBadRequest)
		return
	}
	for _, t := range msg.Tuples {
		if t.Type != "int" {
			http.Error(w, "unsupported tuple type "+t.Type, http.StatusBadRequest)
			return
		}
	}

	result := s.receive(msg)
	if result != appmsg.OK {
		log.Printf("companion: rejecting %s with %s", msg.TransactionID, result)
	}
	writeJSON(w, resultResponse{Result: result})
}

// receive records msg and returns the result to report. Replayed
// transaction ids are acknowledged without counting twice.
func (s *Server) receive(msg appmsg.Message) appmsg.Result {
	if s.failWith != appmsg.OK {
		return s.failWith
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.seen[msg.TransactionID]; dup {
		return appmsg.OK
	}
	s.remember(msg.TransactionID)

	for _, t := range msg.Tuples {
		if t.Key == alertKey && t.Value == alertValue {
			s.alerts++
			s.lastAlert = s.now()
			log.Printf("companion: alert received (%s), total %d", msg.TransactionID, s.alerts)
		}
	}
	return appmsg.OK
}

// remember records id, evicting the oldest once maxSeen ids are held.
// Callers hold s.mu.
func (s *Server) remember(id uuid.UUID) {
	if len(s.seenRing) < maxSeen {
		s.seenRing = append(s.seenRing, id)
	} else {
		delete(s.seen, s.seenRing[s.seenNext])
		s.seenRing[s.seenNext] = id
		s.seenNext = (s.seenNext + 1) % maxSeen
	}
	s.seen[id] = struct{}{}
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.Status())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("companion: encode response: %v", err)
	}
}
