// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Parallel()

	c, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if c != Default() {
		t.Errorf("FromEnv() = %+v, want %+v", c, Default())
	}
}

func TestFromEnv_Values(t *testing.T) {
	t.Parallel()

	c, err := FromEnv(envMap(map[string]string{
		EnvAssetDir:     "assets",
		EnvSampleRate:   "22050",
		EnvFrames:       " 512 ",
		EnvMasterVolume: "3.5",
		EnvLogLevel:     "debug",
	}))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	want := Config{
		AssetDir:     "assets",
		SampleRate:   22050,
		Frames:       512,
		MasterVolume: 1,
		LogLevel:     zapcore.DebugLevel,
	}

	if c != want {
		t.Errorf("FromEnv() = %+v, want %+v", c, want)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		EnvSampleRate:   "fast",
		EnvFrames:       "0",
		EnvMasterVolume: "loud",
		EnvLogLevel:     "chatty",
	}

	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			_, err := FromEnv(envMap(map[string]string{key: val}))
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("FromEnv(%s=%q) error = %v, want ErrInvalidValue", key, val, err)
			}
		})
	}
}

// Not parallel: touches the process environment.
func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SNDMIX_FRAMES=256\nSNDMIX_ASSET_DIR=sfx\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvFrames, "")
	t.Setenv(EnvAssetDir, "from-env")
	os.Unsetenv(EnvFrames)

	c, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Frames != 256 {
		t.Errorf("Frames = %d, want 256 from the file", c.Frames)
	}

	if c.AssetDir != "from-env" {
		t.Errorf("AssetDir = %q, want the environment to win", c.AssetDir)
	}
}

func TestConfig_Logger(t *testing.T) {
	t.Parallel()

	c := Default()
	c.LogLevel = zapcore.WarnLevel

	l, err := c.Logger()
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}

	if l.Core().Enabled(zapcore.InfoLevel) || !l.Core().Enabled(zapcore.WarnLevel) {
		t.Error("logger level not applied")
	}
}
