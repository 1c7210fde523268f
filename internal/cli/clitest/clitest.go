// Package clitest builds command contexts backed by a fake API server.
package clitest

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/julianstephens/edusync/internal/api"
	"github.com/julianstephens/edusync/internal/cli"
	"github.com/julianstephens/edusync/internal/config"
)

// Server records requests and serves canned JSON keyed by "METHOD /path"
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

func (s *Server) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

func NewServer(t *testing.T, routes map[string]string) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Clone(context.Background()))
		s.mu.Unlock()

		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Not Found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

// NewContext returns a command context talking to baseURL and the buffer
// its output is written to
func NewContext(t *testing.T, baseURL string) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	client, err := api.New(baseURL)
	if err != nil {
		t.Fatalf("api.New(%q) failed: %v", baseURL, err)
	}
	out := &bytes.Buffer{}
	return &cli.Context{
		Ctx:    context.Background(),
		Client: client,
		Config: config.Config{APIURL: baseURL, Source: config.SourceFlag},
		Out:    out,
	}, out
}

// Canned responses shared by command tests
const (
	Students = `[
		{"id":1,"name":"Asha","email":"asha@example.com","roll_number":"R1","class_name":"10A","career_interest":"STEM","created_at":"2024-01-01T09:00:00"},
		{"id":5,"name":"Ravi","email":"ravi@example.com","roll_number":"R5","class_name":"10B","career_interest":null,"created_at":"2024-01-01T09:00:00"}
	]`
	Attendance = `[
		{"id":1,"student_id":1,"subject":"General","timestamp":"2024-03-01T09:00:00","attendance_type":"present","marked_by":"teacher"},
		{"id":2,"student_id":5,"subject":"General","timestamp":"2024-03-01T09:05:00","attendance_type":"present","marked_by":"teacher"},
		{"id":3,"student_id":1,"subject":"Math","timestamp":"2024-03-02T09:00:00","attendance_type":"present","marked_by":"teacher"}
	]`
	Stats = `{"total_students":2,"attendance_today":1,"attendance_percentage":50.0,"active_tasks":3}`
)
