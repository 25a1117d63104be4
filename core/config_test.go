package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigManager(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configContent := `
bot:
  server: "https://www.example.com"
  state_dir: "/tmp/snb"
credentials:
  user_agent: "test-agent"
  cookie: "c_user=100012345678; xs=abc"
  user_id: "100012345678"
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write dummy config file: %v", err)
	}

	cm, err := NewConfigManager(configPath, nil)
	if err != nil {
		t.Fatalf("NewConfigManager failed: %v", err)
	}

	config := cm.GetConfig()
	if config.Bot.Server != "https://www.example.com" {
		t.Errorf("Expected server to be 'https://www.example.com', got '%s'", config.Bot.Server)
	}
	if config.Bot.StateDir != "/tmp/snb" {
		t.Errorf("Expected state_dir to be '/tmp/snb', got '%s'", config.Bot.StateDir)
	}
	if config.Credentials["user_id"] != "100012345678" {
		t.Errorf("Expected user_id to be '100012345678', got '%s'", config.Credentials["user_id"])
	}

	// Test SaveConfig round trip
	config.Credentials["user_id"] = "200000000000000"
	if err := cm.SaveConfig(); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	cm2, err := NewConfigManager(configPath, nil)
	if err != nil {
		t.Fatalf("NewConfigManager (reload) failed: %v", err)
	}
	if cm2.GetConfig().Credentials["user_id"] != "200000000000000" {
		t.Errorf("Expected reloaded user_id to be '200000000000000', got '%s'", cm2.GetConfig().Credentials["user_id"])
	}
}

func TestConfigManager_PromptsWhenMissing(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	input := strings.NewReader("https://www.example.com\ntest-agent\nc_user=1; xs=abc\n100012345678\n")
	cm, err := NewConfigManager(filepath.Join(tmpDir, "config.yaml"), input)
	if err != nil {
		t.Fatalf("NewConfigManager failed: %v", err)
	}

	config := cm.GetConfig()
	if config.Bot.Server != "https://www.example.com" {
		t.Errorf("Expected prompted server, got '%s'", config.Bot.Server)
	}
	if config.Credentials["cookie"] != "c_user=1; xs=abc" {
		t.Errorf("Expected prompted cookie, got '%s'", config.Credentials["cookie"])
	}
	if err := cm.Validate(); err != nil {
		t.Errorf("Expected prompted config to validate, got %v", err)
	}
}

func TestConfigManager_Validate(t *testing.T) {
	cm := &ConfigManager{}
	cm.SetConfig(&Config{
		Bot:         BotConfig{Server: "https://www.example.com"},
		Credentials: map[string]string{"user_agent": "a"},
	})
	if err := cm.Validate(); err == nil {
		t.Error("Expected validation to fail without a cookie")
	}
}
