package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/makeca/make-ca/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig("1.2.0")
	assert.Equal(t, "1.2.0", cfg.Version)
	assert.Equal(t, "src", cfg.SourceRoot)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_EffectiveSourceRoot(t *testing.T) {
	assert.Equal(t, "src", domain.ProjectConfig{}.EffectiveSourceRoot())
	assert.Equal(t, "lib", domain.ProjectConfig{SourceRoot: "lib"}.EffectiveSourceRoot())
}

func TestConfig_ResolveTemplatesDir(t *testing.T) {
	assert.Equal(t, "", domain.ProjectConfig{}.ResolveTemplatesDir("/p"))
	assert.Equal(t, filepath.Join("/p", "tpl"), domain.ProjectConfig{TemplatesDir: "tpl"}.ResolveTemplatesDir("/p"))
	assert.Equal(t, "/abs/tpl", domain.ProjectConfig{TemplatesDir: "/abs/tpl"}.ResolveTemplatesDir("/p"))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.ProjectConfig
		wantErr string
	}{
		{"empty", domain.ProjectConfig{}, ""},
		{"dev version", domain.ProjectConfig{Version: "dev"}, ""},
		{"v prefix", domain.ProjectConfig{Version: "v1.0.0"}, ""},
		{"bad version", domain.ProjectConfig{Version: "one"}, "invalid version"},
		{"absolute source root", domain.ProjectConfig{SourceRoot: "/src"}, "must be relative"},
		{"escaping source root", domain.ProjectConfig{SourceRoot: "../src"}, "must not leave"},
		{"nested source root", domain.ProjectConfig{SourceRoot: "app/src"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_CheckCompatible(t *testing.T) {
	assert.NoError(t, domain.ProjectConfig{Version: "1.4.0"}.CheckCompatible("1.0.0"))
	assert.NoError(t, domain.ProjectConfig{Version: "0.9.0"}.CheckCompatible("1.0.0"))
	assert.NoError(t, domain.ProjectConfig{Version: "3.0.0"}.CheckCompatible("dev"))
	assert.NoError(t, domain.ProjectConfig{}.CheckCompatible("1.0.0"))

	err := domain.ProjectConfig{Version: "2.0.0"}.CheckCompatible("1.3.0")
	assert.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindIncompatible))
}
