// SPDX-License-Identifier: EPL-2.0

// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ik5/sndmix/utils"
)

const (
	EnvAssetDir     = "SNDMIX_ASSET_DIR"
	EnvSampleRate   = "SNDMIX_SAMPLE_RATE"
	EnvFrames       = "SNDMIX_FRAMES"
	EnvMasterVolume = "SNDMIX_MASTER_VOLUME"
	EnvLogLevel     = "SNDMIX_LOG_LEVEL"
)

var ErrInvalidValue = errors.New("invalid config value")

type Config struct {
	AssetDir     string
	SampleRate   int
	Frames       int
	MasterVolume float32
	LogLevel     zapcore.Level
}

func Default() Config {
	return Config{
		AssetDir:     ".",
		SampleRate:   44100,
		Frames:       1024,
		MasterVolume: 1,
		LogLevel:     zapcore.InfoLevel,
	}
}

// Load reads the given .env files (".env" when none are given) and then the
// process environment. Missing files are ignored. Variables already set in
// the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, falling back to Default for unset
// variables.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()

	if v := getenv(EnvAssetDir); v != "" {
		c.AssetDir = v
	}

	if err := positiveInt(getenv, EnvSampleRate, &c.SampleRate); err != nil {
		return Config{}, err
	}

	if err := positiveInt(getenv, EnvFrames, &c.Frames); err != nil {
		return Config{}, err
	}

	if v := strings.TrimSpace(getenv(EnvMasterVolume)); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvMasterVolume, v)
		}

		c.MasterVolume = utils.ClampUnit(float32(f))
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvLogLevel, v)
		}

		c.LogLevel = lvl
	}

	return c, nil
}

func positiveInt(getenv func(string) string, key string, dst *int) error {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}

	*dst = n

	return nil
}

// Logger builds the process logger for c.LogLevel.
func (c Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.LogLevel <= zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return l, nil
}
