package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName         = "jobboard"
	ConfigFileName  = "config.json"
	ProxiesFileName = "proxies.txt"

	DefaultAPIURL     = "http://localhost:3000/api/jobs"
	DefaultListenAddr = "127.0.0.1:8080"
	DefaultTimeout    = 30
)

// Config holds the backend location and front-end defaults.
type Config struct {
	APIURL     string `json:"api_url"`
	ListenAddr string `json:"listen_addr"`
	// Request timeout in seconds.
	Timeout int `json:"timeout"`
}

func (c Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

func DefaultConfig() Config {
	return Config{
		APIURL:     DefaultAPIURL,
		ListenAddr: DefaultListenAddr,
		Timeout:    DefaultTimeout,
	}
}

func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("JOBBOARD_CONFIG_DIR")); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func ProxiesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProxiesFileName), nil
}

// Load reads config.json from the config dir and applies JOBBOARD_* env
// overrides on top. A missing or empty file yields the defaults.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return applyEnv(DefaultConfig()), err
	}
	return LoadFile(path)
}

func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return applyEnv(cfg), nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	cfg.APIURL = envString("JOBBOARD_API_URL", cfg.APIURL)
	cfg.ListenAddr = envString("JOBBOARD_LISTEN_ADDR", cfg.ListenAddr)
	cfg.Timeout = envInt("JOBBOARD_TIMEOUT", cfg.Timeout)
	return cfg
}

// Init writes default config.json and proxies.txt if they don't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	proxiesPath := filepath.Join(dir, ProxiesFileName)
	if _, err := os.Stat(proxiesPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(proxiesPath, []byte("# one proxy URL per line\n"), 0o644); err != nil {
			return created, err
		}
		created = append(created, proxiesPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadProxies resolves proxies from the flag, then JOBBOARD_PROXIES, then
// proxies.txt. Blank lines and # comments in the file are skipped.
func LoadProxies(flagValue string) ([]string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return splitCSV(flagValue), nil
	}

	if env := strings.TrimSpace(os.Getenv("JOBBOARD_PROXIES")); env != "" {
		return splitCSV(env), nil
	}

	path, err := ProxiesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var proxies []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	return proxies, nil
}
