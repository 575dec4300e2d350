package openai

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/kbukum/openaikit/errors"
)

func TestCredential_Resolve(t *testing.T) {
	vaultDown := stderrors.New("vault down")

	tests := []struct {
		name     string
		cred     Credential
		wantKey  string
		wantCode errors.ErrorCode
	}{
		{"static", StaticCredential("sk-1"), "sk-1", ""},
		{"static empty", StaticCredential(""), "", errors.ErrCodeMissingField},
		{
			"resolver",
			ResolverCredential(func(_ context.Context, name string) (string, error) { return "sk-" + name, nil }),
			"sk-Authorization", "",
		},
		{
			"resolver empty",
			ResolverCredential(func(context.Context, string) (string, error) { return "", nil }),
			"", errors.ErrCodeMissingField,
		},
		{
			"resolver fails",
			ResolverCredential(func(context.Context, string) (string, error) { return "", vaultDown }),
			"", errors.ErrCodeCredentialUnresolved,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, err := tc.cred.Resolve(context.Background(), "Authorization")
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if key != tc.wantKey {
					t.Errorf("key = %q, want %q", key, tc.wantKey)
				}
				return
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != tc.wantCode {
				t.Errorf("code = %s, want %s", appErr.Code, tc.wantCode)
			}
		})
	}
}

func TestCredential_ResolverCauseKept(t *testing.T) {
	vaultDown := stderrors.New("vault down")
	cred := ResolverCredential(func(context.Context, string) (string, error) { return "", vaultDown })
	_, err := cred.Resolve(context.Background(), "Authorization")
	if !stderrors.Is(err, vaultDown) {
		t.Errorf("expected cause to be wrapped, got %v", err)
	}
}

func TestResolveConfiguration(t *testing.T) {
	cred := ResolverCredential(func(context.Context, string) (string, error) { return "sk-late", nil })
	cfg, err := ResolveConfiguration(context.Background(), cred, Parameters{Organization: "org-1", APIKey: "ignored"})
	if err != nil {
		t.Fatalf("ResolveConfiguration() error: %v", err)
	}
	h := cfg.Headers()
	if h["Authorization"] != "Bearer sk-late" {
		t.Errorf("Authorization = %q", h["Authorization"])
	}
	if h["OpenAI-Organization"] != "org-1" {
		t.Errorf("OpenAI-Organization = %q", h["OpenAI-Organization"])
	}
}

func TestResolveConfiguration_Error(t *testing.T) {
	cfg, err := ResolveConfiguration(context.Background(), StaticCredential(""), Parameters{})
	if err == nil || cfg != nil {
		t.Fatalf("expected error and nil config, got %v, %v", cfg, err)
	}
}
