package engineconfig

import "testing"

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Buffer.TabSizeOrDefault() != 4 {
		t.Fatalf("TabSizeOrDefault() = %d, want 4", cfg.Buffer.TabSizeOrDefault())
	}
	if cfg.Buffer.UndoCapacityOrDefault() != 40 {
		t.Fatalf("UndoCapacityOrDefault() = %d, want 40", cfg.Buffer.UndoCapacityOrDefault())
	}
	if cfg.UI.SyntaxThemeOrDefault() != "vulcan" {
		t.Fatalf("SyntaxThemeOrDefault() = %q, want vulcan", cfg.UI.SyntaxThemeOrDefault())
	}
}

func TestValidateRejectsNegativeTabSize(t *testing.T) {
	cfg := &Config{Buffer: BufferConfig{TabSize: -1}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate() = nil, want error for negative tab_size")
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/engine.toml"); err == nil {
		t.Fatalf("Load() of a missing path should error")
	}
}
