package store

import (
	"errors"
	"testing"
)

func TestSettings_SetAndGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.Settings().Set(SettingTheme, "dark"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, err := s.Settings().Get(SettingTheme)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "dark" {
		t.Errorf("Get() = %q, want %q", value, "dark")
	}
}

func TestSettings_SetReplaces(t *testing.T) {
	s := newTestStore(t)

	s.Settings().Set(SettingTheme, "dark")
	s.Settings().Set(SettingTheme, "light")

	value, err := s.Settings().Get(SettingTheme)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "light" {
		t.Errorf("Get() = %q, want %q", value, "light")
	}
}

func TestSettings_GetMissing(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Settings().Get("no-such-key"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSettings_GetOr(t *testing.T) {
	s := newTestStore(t)

	if got := s.Settings().GetOr(SettingTheme, "dark"); got != "dark" {
		t.Errorf("GetOr() = %q, want fallback %q", got, "dark")
	}

	s.Settings().Set(SettingTheme, "light")
	if got := s.Settings().GetOr(SettingTheme, "dark"); got != "light" {
		t.Errorf("GetOr() = %q, want stored %q", got, "light")
	}
}

func TestSettings_GetIntOr(t *testing.T) {
	s := newTestStore(t)

	if got := s.Settings().GetIntOr(SettingCooldownMs, 300); got != 300 {
		t.Errorf("GetIntOr() = %d, want fallback 300", got)
	}

	s.Settings().Set(SettingCooldownMs, "500")
	if got := s.Settings().GetIntOr(SettingCooldownMs, 300); got != 500 {
		t.Errorf("GetIntOr() = %d, want stored 500", got)
	}

	s.Settings().Set(SettingCooldownMs, "not-a-number")
	if got := s.Settings().GetIntOr(SettingCooldownMs, 300); got != 300 {
		t.Errorf("GetIntOr() with junk value = %d, want fallback 300", got)
	}
}

func TestSettings_All(t *testing.T) {
	s := newTestStore(t)

	s.Settings().Set(SettingTheme, "dark")
	s.Settings().Set(SettingCameraID, "1")

	all, err := s.Settings().All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("All() length = %d, want 2", len(all))
	}
	if all[SettingTheme] != "dark" || all[SettingCameraID] != "1" {
		t.Errorf("All() = %v, missing expected values", all)
	}
}
