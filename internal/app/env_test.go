package app

import (
    "os"
    "path/filepath"
    "testing"
    "time"
)

func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
    t.Setenv("FOO", "")
    t.Setenv("BAR", "")

    dir := t.TempDir()
    envPath := filepath.Join(dir, ".env.test")
    content := "\n# sample dotenv file\nFOO=alpha\nBAR=\"beta\"\n"
    if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
        t.Fatalf("write dotenv: %v", err)
    }

    if err := LoadEnvFiles(envPath); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }
    if got := os.Getenv("FOO"); got != "alpha" {
        t.Fatalf("FOO=%q, want alpha", got)
    }
    if got := os.Getenv("BAR"); got != "beta" {
        t.Fatalf("BAR=%q, want beta (quotes stripped)", got)
    }
}

func TestLoadEnvFiles_LaterFilesOverride(t *testing.T) {
    t.Setenv("K", "")
    dir := t.TempDir()
    a := filepath.Join(dir, ".env.a")
    b := filepath.Join(dir, ".env.b")
    if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil {
        t.Fatalf("write a: %v", err)
    }
    if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil {
        t.Fatalf("write b: %v", err)
    }

    if err := LoadEnvFiles(a, b); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }
    if got := os.Getenv("K"); got != "second" {
        t.Fatalf("override order failed: got %q, want second", got)
    }
}

func TestLoadEnvFiles_MissingFileIgnored(t *testing.T) {
    if err := LoadEnvFiles(filepath.Join(t.TempDir(), "absent.env")); err != nil {
        t.Fatalf("missing dotenv should not be fatal: %v", err)
    }
}

func TestApplyEnvToConfig(t *testing.T) {
    t.Setenv("GOREVIEWS_OUTPUT", "env.csv")
    t.Setenv("GOREVIEWS_TIMEOUT", "12s")
    t.Setenv("GOREVIEWS_ATTEMPTS", "6")
    t.Setenv("GOREVIEWS_VERBOSE", "yes")

    var cfg Config
    ApplyEnvToConfig(&cfg)
    if cfg.OutputPath != "env.csv" {
        t.Fatalf("OutputPath=%q, want env.csv", cfg.OutputPath)
    }
    if cfg.Timeout != 12*time.Second {
        t.Fatalf("Timeout=%v, want 12s", cfg.Timeout)
    }
    if cfg.MaxAttempts != 6 {
        t.Fatalf("MaxAttempts=%d, want 6", cfg.MaxAttempts)
    }
    if !cfg.Verbose {
        t.Fatalf("expected verbose from env")
    }
}

func TestApplyEnvToConfig_FlagsWin(t *testing.T) {
    t.Setenv("GOREVIEWS_OUTPUT", "env.csv")
    t.Setenv("GOREVIEWS_ATTEMPTS", "6")

    cfg := Config{OutputPath: "flag.csv", MaxAttempts: 2}
    ApplyEnvToConfig(&cfg)
    if cfg.OutputPath != "flag.csv" {
        t.Fatalf("explicit output overridden: %q", cfg.OutputPath)
    }
    if cfg.MaxAttempts != 2 {
        t.Fatalf("explicit attempts overridden: %d", cfg.MaxAttempts)
    }
}
