package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/examhall/examhall/internal/auth"
)

func TestIssueParseRoundTrip(t *testing.T) {
	svc := auth.NewService("test-secret", 2*time.Hour)
	want := auth.Identity{UserID: "u1", Role: "student", Name: "Asha", RollNumber: "R42"}

	tok, err := svc.Issue(want)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	got, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)
	tok, err := svc.Issue(auth.Identity{UserID: "u1", Role: "student"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	// flip a payload byte
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	body := []byte(parts[1])
	if body[0] == 'A' {
		body[0] = 'B'
	} else {
		body[0] = 'A'
	}
	parts[1] = string(body)
	if _, err := svc.Parse(strings.Join(parts, ".")); err != auth.ErrInvalidCredentials {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	tok, err := auth.NewService("secret-a", time.Hour).Issue(auth.Identity{UserID: "u1", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := auth.NewService("secret-b", time.Hour).Parse(tok); err != auth.ErrInvalidCredentials {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := auth.NewService("test-secret", -time.Minute)
	tok, err := svc.Issue(auth.Identity{UserID: "u1", Role: "student"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Parse(tok); err != auth.ErrInvalidCredentials {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}
