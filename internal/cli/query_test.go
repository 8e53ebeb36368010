package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Belphemur/Aggregator/internal/apperrors"
	"github.com/Belphemur/Aggregator/internal/models"
	"github.com/Belphemur/Aggregator/internal/services"
)

type mockAggregator struct {
	calls  int
	failAt int
}

func (m *mockAggregator) Combine(ctx context.Context) (models.CombinedResult, error) {
	m.calls++
	if m.calls == m.failAt {
		return models.CombinedResult{}, apperrors.NewHTTPStatusError("post", 7, 404)
	}
	return models.CombinedResult{
		FirstField:  fmt.Sprintf("user%d@example.com", m.calls),
		SecondField: fmt.Sprintf("Post %d", m.calls),
	}, nil
}

func TestRunCombine(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{OutputJSON, "{\"firstField\":\"user1@example.com\",\"secondField\":\"Post 1\"}\n"},
		{OutputYAML, "firstField: user1@example.com\nsecondField: Post 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := runCombine(context.Background(), &mockAggregator{}, &buf, tt.format); err != nil {
				t.Fatalf("runCombine failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestRunCombine_UnsupportedFormat(t *testing.T) {
	agg := &mockAggregator{}
	var buf bytes.Buffer
	err := runCombine(context.Background(), agg, &buf, "xml")
	if err == nil {
		t.Fatal("Expected an error for an unsupported format")
	}
	if agg.calls != 0 {
		t.Errorf("Expected no Combine call, got %d", agg.calls)
	}
}

func TestRunCombine_Error(t *testing.T) {
	var buf bytes.Buffer
	err := runCombine(context.Background(), &mockAggregator{failAt: 1}, &buf, OutputJSON)
	if !errors.Is(err, &apperrors.HTTPStatusError{StatusCode: 404}) {
		t.Fatalf("Expected HTTPStatusError 404, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestRunStream_JSON(t *testing.T) {
	var buf bytes.Buffer
	producer := services.NewStreamProducer(&mockAggregator{})
	if err := runStream(context.Background(), producer, 3, &buf, OutputJSON); err != nil {
		t.Fatalf("runStream failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	for i, line := range lines {
		want := fmt.Sprintf("{\"firstField\":\"user%d@example.com\",\"secondField\":\"Post %d\"}", i+1, i+1)
		if line != want {
			t.Errorf("Line %d: expected %q, got %q", i, want, line)
		}
	}
}

func TestRunStream_YAML(t *testing.T) {
	var buf bytes.Buffer
	producer := services.NewStreamProducer(&mockAggregator{})
	if err := runStream(context.Background(), producer, 2, &buf, OutputYAML); err != nil {
		t.Fatalf("runStream failed: %v", err)
	}

	want := "firstField: user1@example.com\nsecondField: Post 1\n---\nfirstField: user2@example.com\nsecondField: Post 2\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestRunStream_ZeroAmount(t *testing.T) {
	for _, format := range []string{OutputJSON, OutputYAML} {
		agg := &mockAggregator{}
		var buf bytes.Buffer
		if err := runStream(context.Background(), services.NewStreamProducer(agg), 0, &buf, format); err != nil {
			t.Fatalf("runStream(%s) failed: %v", format, err)
		}
		if buf.Len() != 0 {
			t.Errorf("Expected no output for %s, got %q", format, buf.String())
		}
		if agg.calls != 0 {
			t.Errorf("Expected no Combine call, got %d", agg.calls)
		}
	}
}

func TestRunStream_StopsOnError(t *testing.T) {
	agg := &mockAggregator{failAt: 2}
	var buf bytes.Buffer
	err := runStream(context.Background(), services.NewStreamProducer(agg), 5, &buf, OutputJSON)
	if !errors.Is(err, &apperrors.HTTPStatusError{}) {
		t.Fatalf("Expected HTTPStatusError, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("Expected the element before the failure to be printed, got %q", buf.String())
	}
	if agg.calls != 2 {
		t.Errorf("Expected 2 Combine calls, got %d", agg.calls)
	}
}

func TestStreamCmd_InvalidAmount(t *testing.T) {
	err := runStreamCmd(streamCmd, []string{"many"})
	if !errors.Is(err, &apperrors.InvalidAmountError{}) {
		t.Fatalf("Expected InvalidAmountError, got %v", err)
	}
}
