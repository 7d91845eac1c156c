package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Credentials.YouTube.BaseURL == "" {
			t.Error("expected a default YouTube base URL")
		}
		if config.Credentials.Summarizer.Model == "" {
			t.Error("expected a default summarizer model")
		}
		if config.User.DefaultID == "" {
			t.Error("expected a default user ID")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("parses a valid file", func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")

			content := `
[credentials.youtube]
api_key = "yt-key"
base_url = "https://example.com/youtube"

[credentials.transcript]
base_url = "http://localhost:9000"

[credentials.summarizer]
api_key = "llm-key"
model = "gpt-4o"

[database]
path = "lecx.db"
max_open_conns = 5

[user]
default_id = "testuser"
`
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}

			if config.Credentials.YouTube.APIKey != "yt-key" {
				t.Errorf("expected yt-key, got %s", config.Credentials.YouTube.APIKey)
			}
			if config.Credentials.Transcript.BaseURL != "http://localhost:9000" {
				t.Errorf("unexpected transcript base URL: %s", config.Credentials.Transcript.BaseURL)
			}
			if config.Database.Path != "lecx.db" {
				t.Errorf("unexpected database path: %s", config.Database.Path)
			}
			if config.User.DefaultID != "testuser" {
				t.Errorf("unexpected default user: %s", config.User.DefaultID)
			}
		})

		t.Run("missing file returns error", func(t *testing.T) {
			if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("malformed TOML returns error", func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "bad.toml")
			if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error for malformed TOML")
			}
		})
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		t.Run("writes the template", func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")

			if err := CreateConfigFile(path); err != nil {
				t.Fatalf("CreateConfigFile failed: %v", err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("created config does not parse: %v", err)
			}
			if config.Credentials.YouTube.BaseURL == "" {
				t.Error("expected template to carry a YouTube base URL")
			}
		})

		t.Run("refuses to overwrite", func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")

			if err := CreateConfigFile(path); err != nil {
				t.Fatalf("CreateConfigFile failed: %v", err)
			}
			if err := CreateConfigFile(path); err == nil {
				t.Error("expected error when file exists")
			}
		})
	})
}
