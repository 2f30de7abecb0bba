package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/melovue/shell/internal/application/port"
	"github.com/melovue/shell/internal/domain/build"
	"github.com/melovue/shell/internal/domain/entity"
)

type stubAuthority struct {
	info  *entity.UpdateInfo
	err   error
	calls int
}

func (s *stubAuthority) FetchUpdateInfo(context.Context) (*entity.UpdateInfo, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}

func TestResolveGate_DevBuildSkipsNetworkCheck(t *testing.T) {
	for _, v := range []string{"", "dev"} {
		authority := &stubAuthority{err: fmt.Errorf("must not be called")}
		uc := NewResolveGateUseCase(authority, build.Info{Version: v})

		out := uc.Execute(context.Background(), ResolveGateInput{})
		if out.State != entity.GateNotRequired {
			t.Errorf("version %q: State = %v, want not-required", v, out.State)
		}
		if authority.calls != 0 {
			t.Errorf("version %q: authority called %d times, want 0", v, authority.calls)
		}
	}
}

func TestResolveGate_MatchingVersion(t *testing.T) {
	authority := &stubAuthority{info: &entity.UpdateInfo{RequiredVersion: "v1.2.0"}}
	uc := NewResolveGateUseCase(authority, build.Info{Version: "v1.2.0"})

	out := uc.Execute(context.Background(), ResolveGateInput{})
	if out.State != entity.GateNotRequired {
		t.Fatalf("State = %v, want not-required", out.State)
	}
	if out.LocalVersion != "v1.2.0" {
		t.Fatalf("LocalVersion = %q, want v1.2.0", out.LocalVersion)
	}
}

func TestResolveGate_UnprefixedTagsCompareEqual(t *testing.T) {
	// The backend sends bare tags; both sides normalize to v<value>.
	authority := &stubAuthority{info: &entity.UpdateInfo{RequiredVersion: "1.2.0"}}
	uc := NewResolveGateUseCase(authority, build.Info{Version: "v1.2.0"})

	out := uc.Execute(context.Background(), ResolveGateInput{})
	if out.State != entity.GateNotRequired {
		t.Fatalf("State = %v, want not-required", out.State)
	}
}

func TestResolveGate_StaleVersionRequiresUpdate(t *testing.T) {
	authority := &stubAuthority{info: &entity.UpdateInfo{
		RequiredVersion: "1.3.0",
		InstallerURL:    "https://cdn.melovue.com/shell/installer.pkg",
	}}
	uc := NewResolveGateUseCase(authority, build.Info{Version: "v1.2.0"})

	out := uc.Execute(context.Background(), ResolveGateInput{})
	if out.State != entity.GateRequired {
		t.Fatalf("State = %v, want required", out.State)
	}
	if out.RequiredVersion != "v1.3.0" {
		t.Fatalf("RequiredVersion = %q, want v1.3.0", out.RequiredVersion)
	}
	if out.InstallerURL != "https://cdn.melovue.com/shell/installer.pkg" {
		t.Fatalf("InstallerURL = %q", out.InstallerURL)
	}
}

func TestResolveGate_EmptyRequiredVersionNotEnforced(t *testing.T) {
	authority := &stubAuthority{info: &entity.UpdateInfo{}}
	uc := NewResolveGateUseCase(authority, build.Info{Version: "v1.2.0"})

	out := uc.Execute(context.Background(), ResolveGateInput{})
	if out.State != entity.GateNotRequired {
		t.Fatalf("State = %v, want not-required", out.State)
	}
}

func TestResolveGate_CheckFailureFailsClosed(t *testing.T) {
	authority := &stubAuthority{err: fmt.Errorf("%w: backend returned status 500", port.ErrUpdateCheckFailed)}
	uc := NewResolveGateUseCase(authority, build.Info{Version: "v1.2.0"})

	out := uc.Execute(context.Background(), ResolveGateInput{})
	if out.State != entity.GateRequired {
		t.Fatalf("State = %v, want required (fail-closed)", out.State)
	}
	if !strings.Contains(out.Diagnostic, "500") {
		t.Fatalf("Diagnostic = %q, want status code included", out.Diagnostic)
	}
}

func TestResolveGate_Idempotent(t *testing.T) {
	authority := &stubAuthority{info: &entity.UpdateInfo{RequiredVersion: "1.3.0"}}
	uc := NewResolveGateUseCase(authority, build.Info{Version: "v1.2.0"})

	first := uc.Execute(context.Background(), ResolveGateInput{})
	second := uc.Execute(context.Background(), ResolveGateInput{})
	if first.State != second.State || first.RequiredVersion != second.RequiredVersion {
		t.Fatalf("gate not idempotent: first %+v, second %+v", first, second)
	}
}
