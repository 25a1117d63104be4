package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config corresponds to the structure of the YAML config file.
type Config struct {
	Bot         BotConfig         `yaml:"bot"`
	Credentials map[string]string `yaml:"credentials"`
}

// BotConfig holds client-wide settings.
type BotConfig struct {
	Server   string `yaml:"server"`
	StateDir string `yaml:"state_dir"`
}

// ConfigManager handles loading and saving of the client's configuration.
type ConfigManager struct {
	configPath string
	config     *Config
	lock       sync.Mutex
}

// NewConfigManager creates and initializes a new ConfigManager. When the
// config file is missing or invalid, the user is prompted for the details
// (from reader, or the terminal when reader is nil).
func NewConfigManager(path string, reader io.Reader) (*ConfigManager, error) {
	cm := &ConfigManager{
		configPath: path,
	}

	for {
		exists, err := cm.LoadConfig()
		if err != nil {
			return nil, err
		}
		if exists {
			if err := cm.Validate(); err == nil {
				break
			}
			fmt.Println("Configuration is invalid, please re-enter details.")
		}

		if reader == nil {
			tty, err := os.Open("/dev/tty")
			if err != nil {
				return nil, fmt.Errorf("failed to open tty: %w", err)
			}
			defer tty.Close()
			reader = tty
		}
		newConfig, err := createConfig(bufio.NewReader(reader))
		if err != nil {
			return nil, fmt.Errorf("failed to create config: %w", err)
		}
		cm.config = newConfig
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save config: %w", err)
		}
	}

	return cm, nil
}

// Validate checks if the essential configuration values are set.
func (cm *ConfigManager) Validate() error {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	if cm.config.Bot.Server == "" {
		return fmt.Errorf("server URL is not set")
	}
	if cm.config.Credentials["user_agent"] == "" {
		return fmt.Errorf("user_agent is not set")
	}
	if cm.config.Credentials["cookie"] == "" {
		return fmt.Errorf("cookie is not set")
	}
	return nil
}

func createConfig(reader *bufio.Reader) (*Config, error) {
	fmt.Print("Enter server URL: ")
	server, _ := reader.ReadString('\n')
	fmt.Print("Enter User-Agent: ")
	userAgent, _ := reader.ReadString('\n')
	fmt.Print("Enter Cookie: ")
	cookie, _ := reader.ReadString('\n')
	fmt.Print("Enter user ID (optional): ")
	userID, _ := reader.ReadString('\n')

	return &Config{
		Bot: BotConfig{
			Server:   strings.TrimSpace(server),
			StateDir: ".",
		},
		Credentials: map[string]string{
			"user_agent": strings.TrimSpace(userAgent),
			"cookie":     strings.TrimSpace(cookie),
			"user_id":    strings.TrimSpace(userID),
		},
	}, nil
}

// LoadConfig loads the configuration from the specified YAML file.
func (cm *ConfigManager) LoadConfig() (bool, error) {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	file, err := os.ReadFile(cm.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(file, &config); err != nil {
		return false, fmt.Errorf("failed to decode YAML from config file: %w", err)
	}
	cm.config = &config
	return true, nil
}

// SaveConfig saves the current configuration to the YAML file.
func (cm *ConfigManager) SaveConfig() error {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	data, err := yaml.Marshal(cm.config)
	if err != nil {
		return fmt.Errorf("failed to encode config to YAML: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to config file: %w", err)
	}
	return nil
}

// GetConfig returns the entire configuration.
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig sets the configuration for testing purposes.
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}
