package pathcfg

import "testing"

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 400, "WALL-OUTER", true, false); err != ErrInvalidSpeed {
		t.Errorf("speed=0: err = %v, want ErrInvalidSpeed", err)
	}
	if _, err := New(30, -1, "WALL-OUTER", true, false); err != ErrInvalidWidth {
		t.Errorf("width=-1: err = %v, want ErrInvalidWidth", err)
	}
	cfg, err := New(30, 400, "WALL-OUTER", true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IsTravel() {
		t.Error("expected non-travel config")
	}
}

func TestNewTravelIsTravel(t *testing.T) {
	cfg, err := NewTravel(150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsTravel() {
		t.Error("expected travel config")
	}
	if cfg.CommentTag != TagTravel {
		t.Errorf("CommentTag = %q, want %q", cfg.CommentTag, TagTravel)
	}
}

func TestSameIsIdentityNotStructuralEquality(t *testing.T) {
	a, _ := New(30, 400, "WALL-OUTER", true, false)
	b, _ := New(30, 400, "WALL-OUTER", true, false)

	if Same(a, b) {
		t.Error("expected structurally-equal-but-distinct configs to not be Same")
	}
	if !Same(a, a) {
		t.Error("expected a config to be Same as itself")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	cfg, _ := New(30, 400, "WALL-OUTER", true, false)

	if err := r.Register("wall-outer", cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register("wall-outer", cfg); err != ErrDuplicateName {
		t.Errorf("duplicate register: err = %v, want ErrDuplicateName", err)
	}

	got, err := r.Get("wall-outer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Same(got, cfg) {
		t.Error("expected Get to return the registered pointer")
	}

	if _, err := r.Get("missing"); err != ErrUnknownName {
		t.Errorf("err = %v, want ErrUnknownName", err)
	}
}
