package usecase

import (
	"context"
	"fmt"
	"testing"
)

type stubLauncher struct {
	canOpen   bool
	openErr   error
	openCalls []string
	canCalls  []string
}

func (s *stubLauncher) CanOpen(_ context.Context, url string) bool {
	s.canCalls = append(s.canCalls, url)
	return s.canOpen
}

func (s *stubLauncher) Open(_ context.Context, url string) error {
	s.openCalls = append(s.openCalls, url)
	return s.openErr
}

func TestDispatchExternal_OpensWhenHandlerExists(t *testing.T) {
	launcher := &stubLauncher{canOpen: true}
	uc := NewDispatchExternalUseCase(launcher)

	uc.Execute(context.Background(), DispatchExternalInput{URL: "mailto:booking@melovue.com"})

	if len(launcher.openCalls) != 1 || launcher.openCalls[0] != "mailto:booking@melovue.com" {
		t.Fatalf("open calls = %v, want exactly one dispatch", launcher.openCalls)
	}
}

func TestDispatchExternal_NoHandlerIsSilentNoop(t *testing.T) {
	launcher := &stubLauncher{canOpen: false}
	uc := NewDispatchExternalUseCase(launcher)

	uc.Execute(context.Background(), DispatchExternalInput{URL: "spotify:track:123"})

	if len(launcher.openCalls) != 0 {
		t.Fatalf("open calls = %v, want none without a handler", launcher.openCalls)
	}
}

func TestDispatchExternal_OpenFailureIsSwallowed(t *testing.T) {
	launcher := &stubLauncher{canOpen: true, openErr: fmt.Errorf("launch rejected")}
	uc := NewDispatchExternalUseCase(launcher)

	// Must not panic or surface anything.
	uc.Execute(context.Background(), DispatchExternalInput{URL: "tel:+123"})
}

func TestDispatchExternal_EmptyURLSkipsOSQuery(t *testing.T) {
	launcher := &stubLauncher{canOpen: true}
	uc := NewDispatchExternalUseCase(launcher)

	uc.Execute(context.Background(), DispatchExternalInput{})

	if len(launcher.canCalls) != 0 {
		t.Fatalf("CanOpen called for empty URL: %v", launcher.canCalls)
	}
}
