package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestComment_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     string
		wantEmail string
		wantErr   bool
		missing   bool
	}{
		{
			name:      "full upstream payload",
			input:     `{"postId":1,"id":3,"name":"odio","email":"Nikita@garfield.biz","body":"quia"}`,
			wantEmail: "Nikita@garfield.biz",
		},
		{
			name:      "empty email is still present",
			input:     `{"email":""}`,
			wantEmail: "",
		},
		{
			name:    "missing email",
			input:   `{"id":3}`,
			wantErr: true,
			missing: true,
		},
		{
			name:    "email with wrong type",
			input:   `{"email":42}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			input:   `[]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var c Comment
			err := json.Unmarshal([]byte(tt.input), &c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var missing *MissingFieldError
				if errors.As(err, &missing) != tt.missing {
					t.Errorf("Expected MissingFieldError=%v, got %v", tt.missing, err)
				}
				if c.Email != "" {
					t.Errorf("Expected zero value on error, got email %q", c.Email)
				}
				return
			}
			if c.Email != tt.wantEmail {
				t.Errorf("Email = %q, want %q", c.Email, tt.wantEmail)
			}
		})
	}
}

func TestPost_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantErr   bool
	}{
		{
			name:      "full upstream payload",
			input:     `{"userId":1,"id":7,"title":"magnam facilis autem","body":"dolore"}`,
			wantTitle: "magnam facilis autem",
		},
		{
			name:    "missing title",
			input:   `{"userId":1}`,
			wantErr: true,
		},
		{
			name:    "null title",
			input:   `{"title":null}`,
			wantErr: true,
		},
		{
			name:    "truncated body",
			input:   `{"title":"abc"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var p Post
			err := json.Unmarshal([]byte(tt.input), &p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if p.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", p.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewCombinedResult(t *testing.T) {
	result := NewCombinedResult(Comment{Email: "a@x"}, Post{Title: "P1"})
	if result.FirstField != "a@x" {
		t.Errorf("Expected FirstField 'a@x', got %q", result.FirstField)
	}
	if result.SecondField != "P1" {
		t.Errorf("Expected SecondField 'P1', got %q", result.SecondField)
	}

	body, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(body) != `{"firstField":"a@x","secondField":"P1"}` {
		t.Errorf("Unexpected JSON encoding: %s", body)
	}
}
