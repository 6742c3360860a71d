package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/dirtree/internal/utils"
)

func TestInitializeConfigurationCreatesLocalFile(t *testing.T) {
	workingDirectory := t.TempDir()
	options := InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal}
	path, err := InitializeConfiguration(options)
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if path != expectedPath {
		t.Fatalf("expected path %s, got %s", expectedPath, path)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read config: %v", readErr)
	}
	if !strings.Contains(string(content), "tree:") {
		t.Fatalf("unexpected configuration content: %s", string(content))
	}
}

func TestInitializeConfigurationHonorsGlobalTarget(t *testing.T) {
	homeDir := t.TempDir()
	path, err := InitializeConfiguration(InitOptions{Target: InitTargetGlobal, Force: true, HomeDirectory: homeDir})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(homeDir, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
	if path != expectedPath {
		t.Fatalf("expected %s, got %s", expectedPath, path)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("expected file to exist at %s: %v", path, statErr)
	}
}

func TestInitializeConfigurationPreventsOverwriteWithoutForce(t *testing.T) {
	workingDirectory := t.TempDir()
	path := filepath.Join(workingDirectory, utils.ConfigFileName)
	if err := os.WriteFile(path, []byte("existing"), 0o600); err != nil {
		t.Fatalf("write seed config: %v", err)
	}
	_, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal, Force: false})
	if err == nil {
		t.Fatalf("expected error when configuration already exists")
	}
}

func TestDefaultTemplateLoadsIntoContext(t *testing.T) {
	workingDirectory := t.TempDir()
	if _, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory}); err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	loaded, loadErr := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory, HomeDirectory: t.TempDir()})
	if loadErr != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", loadErr)
	}
	ctx := DefaultContext()
	if applyErr := loaded.Tree.ApplyTo(&ctx); applyErr != nil {
		t.Fatalf("ApplyTo error: %v", applyErr)
	}
	if validateErr := ctx.Validate(); validateErr != nil {
		t.Fatalf("Validate error: %v", validateErr)
	}
	if ctx != DefaultContext() {
		t.Fatalf("default template should reproduce default context, got %+v", ctx)
	}
}
