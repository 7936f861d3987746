package appmsg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != defaultCompanionAddr {
		t.Fatalf("url = %q, want http://%s", u.String(), defaultCompanionAddr)
	}

	u, err = parseBaseURL("http://phone.local:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestHTTPTransport_DeliverPostsMessage(t *testing.T) {
	t.Parallel()

	var got Message
	var gotUserAgent, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/appmessage" {
			http.NotFound(w, r)
			return
		}
		gotMethod = r.Method
		gotUserAgent = r.Header.Get("User-Agent")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"result": 0})
	}))
	t.Cleanup(server.Close)

	tr, err := NewHTTPTransport(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewHTTPTransport returned error: %v", err)
	}

	id := uuid.New()
	res := tr.Deliver(context.Background(), Message{
		TransactionID: id,
		Tuples:        []Tuple{{Key: 0, Type: "int", Value: 1}},
	})
	if res != OK {
		t.Fatalf("Deliver = %s, want MSG_OK", res)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q, want POST", gotMethod)
	}
	if got.TransactionID != id || len(got.Tuples) != 1 || got.Tuples[0].Value != 1 {
		t.Fatalf("server got %#v, want id=%s tuple {0:1}", got, id)
	}
	if !strings.HasPrefix(gotUserAgent, "alertface/") {
		t.Fatalf("User-Agent = %q, want alertface/*", gotUserAgent)
	}
}

func TestHTTPTransport_DeliverReturnsCompanionResult(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"result": uint32(AppNotRunning)})
	}))
	t.Cleanup(server.Close)

	tr, _ := NewHTTPTransport(server.URL, time.Second)
	if res := tr.Deliver(context.Background(), Message{}); res != AppNotRunning {
		t.Fatalf("Deliver = %s, want MSG_APP_NOT_RUNNING", res)
	}
}

func TestHTTPTransport_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		want   Result
	}{
		{http.StatusBadRequest, SendRejected},
		{http.StatusNotFound, AppNotRunning},
		{http.StatusTooManyRequests, Busy},
		{http.StatusServiceUnavailable, Busy},
		{http.StatusInternalServerError, InternalError},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tc.status)
		}))
		tr, _ := NewHTTPTransport(server.URL, time.Second)
		if res := tr.Deliver(context.Background(), Message{}); res != tc.want {
			t.Errorf("status %d: Deliver = %s, want %s", tc.status, res, tc.want)
		}
		server.Close()
	}
}

func TestHTTPTransport_DecodeFailureIsInternalError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	tr, _ := NewHTTPTransport(server.URL, time.Second)
	if res := tr.Deliver(context.Background(), Message{}); res != InternalError {
		t.Fatalf("Deliver = %s, want MSG_INTERNAL_ERROR", res)
	}
}

func TestHTTPTransport_TimeoutAndRefused(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		slow.Close()
	})

	tr, _ := NewHTTPTransport(slow.URL, 50*time.Millisecond)
	if res := tr.Deliver(context.Background(), Message{}); res != SendTimeout {
		t.Fatalf("slow Deliver = %s, want MSG_SEND_TIMEOUT", res)
	}

	closed := httptest.NewServer(http.NotFoundHandler())
	addr := closed.URL
	closed.Close()

	tr, _ = NewHTTPTransport(addr, time.Second)
	if res := tr.Deliver(context.Background(), Message{}); res != NotConnected {
		t.Fatalf("refused Deliver = %s, want MSG_NOT_CONNECTED", res)
	}
}

func TestHTTPTransport_FetchStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/status":
			_ = json.NewEncoder(w).Encode(CompanionStatus{Running: true, Alerts: 3})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	tr, _ := NewHTTPTransport(server.URL, time.Second)
	status, err := tr.FetchStatus(context.Background())
	if err != nil {
		t.Fatalf("FetchStatus returned error: %v", err)
	}
	if !status.Running || status.Alerts != 3 {
		t.Fatalf("status = %#v, want running alerts=3", status)
	}
}

func TestHTTPTransport_FetchStatusHTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	tr, _ := NewHTTPTransport(server.URL, time.Second)
	_, err := tr.FetchStatus(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchStatus error = %v, want status 500 error", err)
	}
}
