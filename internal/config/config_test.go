package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"JOBBOARD_API_URL", "JOBBOARD_LISTEN_ADDR", "JOBBOARD_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("LoadFile() = %+v, want defaults", cfg)
	}
}

func TestLoadFileParsesJSON5AndEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	data := `{
  // backend collection endpoint
  api_url: "https://jobs.example.com/api/jobs",
  timeout: 5,
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	clearEnv(t)
	t.Setenv("JOBBOARD_LISTEN_ADDR", ":9090")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.APIURL != "https://jobs.example.com/api/jobs" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("ListenAddr = %q, want env override", cfg.ListenAddr)
	}
	if cfg.RequestTimeout() != 5*time.Second {
		t.Fatalf("RequestTimeout() = %v, want 5s", cfg.RequestTimeout())
	}
}

func TestLoadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("{api_url:"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("LoadFile() error = nil, want parse error")
	}
}

func TestInitAndLoadProxies(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOBBOARD_CONFIG_DIR", dir)
	t.Setenv("JOBBOARD_PROXIES", "")

	created, err := Init()
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("Init() created %v, want 2 files", created)
	}
	again, err := Init()
	if err != nil || len(again) != 0 {
		t.Fatalf("second Init() = %v, %v; want nothing created", again, err)
	}

	proxies, err := LoadProxies("")
	if err != nil || len(proxies) != 0 {
		t.Fatalf("LoadProxies() = %v, %v; want none", proxies, err)
	}

	content := "# comment\nhttp://p1:8080\n\n  http://p2:8080  \n"
	if err := os.WriteFile(filepath.Join(dir, ProxiesFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write proxies: %v", err)
	}
	proxies, err = LoadProxies("")
	if err != nil {
		t.Fatalf("LoadProxies() error = %v", err)
	}
	if want := []string{"http://p1:8080", "http://p2:8080"}; !reflect.DeepEqual(proxies, want) {
		t.Fatalf("LoadProxies() = %v, want %v", proxies, want)
	}

	t.Setenv("JOBBOARD_PROXIES", "http://env:1")
	proxies, _ = LoadProxies("")
	if want := []string{"http://env:1"}; !reflect.DeepEqual(proxies, want) {
		t.Fatalf("env proxies = %v, want %v", proxies, want)
	}

	proxies, _ = LoadProxies("http://flag:1, ,http://flag:2")
	if want := []string{"http://flag:1", "http://flag:2"}; !reflect.DeepEqual(proxies, want) {
		t.Fatalf("flag proxies = %v, want %v", proxies, want)
	}
}

func TestEnvBool(t *testing.T) {
	for value, want := range map[string]bool{"1": true, "TRUE": true, " on ": true, "no": false, "": false} {
		t.Setenv("JOBBOARD_TEST_BOOL", value)
		if got := EnvBool("JOBBOARD_TEST_BOOL"); got != want {
			t.Fatalf("EnvBool(%q) = %v, want %v", value, got, want)
		}
	}
}
