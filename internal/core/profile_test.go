package core

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// fakeGenerator replays a scripted sequence of replies, one per call.
type fakeGenerator struct {
	mu      sync.Mutex
	replies []fakeReply
	calls   int
}

type fakeReply struct {
	narrative string
	err       error
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reply := f.replies[f.calls]
	f.calls++
	return reply.narrative, reply.err
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testFacts() ExtractedFacts {
	return ExtractedFacts{
		Name:        "John Doe",
		Email:       "john@example.com",
		Phone:       "555-123-4567",
		CleanedText: "John Doe ten years of SQL",
		Keywords:    map[string][]string{"data_analytics": {"SQL"}},
	}
}

// TestGenerateSuccess verifies the happy path: one call, narrative returned.
func TestGenerateSuccess(t *testing.T) {
	llm := &fakeGenerator{replies: []fakeReply{{narrative: "a fine profile"}}}
	gen := NewProfileGenerator(llm, nil, zap.NewNop(), 3, time.Millisecond, 0)

	got := gen.Generate(context.Background(), "Data Analyst", testFacts())

	if got != "a fine profile" {
		t.Errorf("Generate = %q, want narrative", got)
	}
	if llm.callCount() != 1 {
		t.Errorf("calls = %d, want 1", llm.callCount())
	}
}

// TestGenerateRateLimitRetry verifies that rate-limited calls are retried and
// a later success wins.
func TestGenerateRateLimitRetry(t *testing.T) {
	llm := &fakeGenerator{replies: []fakeReply{
		{err: errors.New("429 Too Many Requests")},
		{err: errors.New("rate_limit_exceeded: slow down")},
		{narrative: "third time lucky"},
	}}
	gen := NewProfileGenerator(llm, nil, zap.NewNop(), 3, time.Millisecond, 0)

	got := gen.Generate(context.Background(), "Data Analyst", testFacts())

	if got != "third time lucky" {
		t.Errorf("Generate = %q, want the third reply", got)
	}
	if llm.callCount() != 3 {
		t.Errorf("calls = %d, want 3", llm.callCount())
	}
}

// TestGenerateExhausted verifies the sentinel after every attempt was
// rate-limited.
func TestGenerateExhausted(t *testing.T) {
	llm := &fakeGenerator{replies: []fakeReply{
		{err: errors.New("429")},
		{err: errors.New("429")},
		{err: errors.New("429")},
	}}
	gen := NewProfileGenerator(llm, nil, zap.NewNop(), 3, time.Millisecond, 0)

	got := gen.Generate(context.Background(), "Data Analyst", testFacts())

	if got != SentinelExhausted {
		t.Errorf("Generate = %q, want %q", got, SentinelExhausted)
	}
	if llm.callCount() != 3 {
		t.Errorf("calls = %d, want exactly maxAttempts", llm.callCount())
	}
}

// TestGenerateTerminalError verifies that a non-rate-limit failure stops
// immediately with the error sentinel.
func TestGenerateTerminalError(t *testing.T) {
	llm := &fakeGenerator{replies: []fakeReply{
		{err: errors.New("invalid api key")},
	}}
	gen := NewProfileGenerator(llm, nil, zap.NewNop(), 3, time.Millisecond, 0)

	got := gen.Generate(context.Background(), "Data Analyst", testFacts())

	if got != SentinelErrPrefix+"invalid api key" {
		t.Errorf("Generate = %q, want prefixed error sentinel", got)
	}
	if llm.callCount() != 1 {
		t.Errorf("calls = %d, want 1, terminal errors never retry", llm.callCount())
	}
}

// TestGenerateNilClient verifies the initialization sentinel.
func TestGenerateNilClient(t *testing.T) {
	gen := NewProfileGenerator(nil, nil, zap.NewNop(), 3, time.Millisecond, 0)

	if got := gen.Generate(context.Background(), "Data Analyst", testFacts()); got != SentinelInitFailed {
		t.Errorf("Generate with nil client = %q, want %q", got, SentinelInitFailed)
	}
}

// TestIsFailureNarrative verifies sentinel detection against genuine output.
func TestIsFailureNarrative(t *testing.T) {
	tests := []struct {
		narrative string
		want      bool
	}{
		{SentinelInitFailed, true},
		{SentinelExhausted, true},
		{SentinelErrPrefix + "boom", true},
		{"Error generating profile: context deadline exceeded", true},
		{"Basic Information:\n- Name: John", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFailureNarrative(tt.narrative); got != tt.want {
			t.Errorf("IsFailureNarrative(%q) = %v, want %v", tt.narrative, got, tt.want)
		}
	}
}

// TestBuildPrompt verifies the candidate facts are interpolated and the
// section headers the parser depends on are present.
func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Data Analyst role", testFacts())

	for _, want := range []string{
		"Data Analyst role",
		"John Doe",
		"john@example.com",
		"555-123-4567",
		`"data_analytics"`,
		"Basic Information:",
		"Strengths & Weaknesses:",
		"HR Summary & Justification:",
		"Recommendation:",
		"ATS Evaluation JSON:",
		"JD-Based Interview Questions",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
