// Package slacktest provides a fake Slack Web API server for tests. It
// answers auth.test and chat.postMessage, records every message post, and can
// be scripted to fail upcoming posts with a given Slack error code.
package slacktest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

type Server struct {
	mu       sync.Mutex
	ts       *httptest.Server
	URL      string
	requests []Request
	errors   []string
	closed   bool
}

// Request is one recorded chat.postMessage call.
type Request struct {
	Channel     string
	Username    string
	IconEmoji   string
	Attachments []Attachment
}

type Attachment struct {
	Fallback string `json:"fallback"`
	Color    string `json:"color"`
	Text     string `json:"text"`
}

// NewServer starts the fake API. URL carries the trailing slash slack-go
// expects, so it can be handed to slack.OptionAPIURL as is.
func NewServer() *Server {
	s := new(Server)
	mux := http.NewServeMux()
	mux.HandleFunc("/auth.test", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true,"url":"https://acme.slack.com/","team":"acme","user":"planka-bot","team_id":"T0001","user_id":"U0001"}`)
	})
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		req := Request{
			Channel:   r.FormValue("channel"),
			Username:  r.FormValue("username"),
			IconEmoji: r.FormValue("icon_emoji"),
		}
		if raw := r.FormValue("attachments"); raw != "" {
			json.Unmarshal([]byte(raw), &req.Attachments)
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		var code string
		if len(s.errors) > 0 {
			code = s.errors[0]
			s.errors = s.errors[1:]
		}
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if code != "" {
			fmt.Fprintf(w, `{"ok":false,"error":%q}`, code)
			return
		}
		fmt.Fprint(w, `{"ok":true,"channel":"C0001","ts":"1503435956.000247"}`)
	})
	ts := httptest.NewServer(mux)
	s.ts = ts
	s.URL = ts.URL + "/"
	return s
}

// FailNext queues Slack error codes for upcoming posts, consumed one per
// chat.postMessage call in order.
func (s *Server) FailNext(codes ...string) {
	s.mu.Lock()
	s.errors = append(s.errors, codes...)
	s.mu.Unlock()
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

func (s *Server) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.ts.Close()
}
