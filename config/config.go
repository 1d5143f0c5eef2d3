// SPDX-License-Identifier: MIT
// Package config holds the run configuration: defaults, an optional YAML
// file and struct-tag validation. Flag overrides are applied by the caller
// between Load and Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/commgraph/extract"
	"github.com/katalvlaran/commgraph/ingest"
	"github.com/katalvlaran/commgraph/telemetry"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// DefaultVerifyMaxVertices bounds the brute-force check, which is quadratic.
const DefaultVerifyMaxVertices = 2000

// Config is the full run configuration.
type Config struct {
	Domain       string        `yaml:"domain" validate:"required"`
	Workers      int           `yaml:"workers" validate:"min=1"`
	DrainTimeout time.Duration `yaml:"drain_timeout" validate:"gt=0"`
	Interactive  bool          `yaml:"interactive"`

	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
	Trace   Trace   `yaml:"trace"`
	Verify  Verify  `yaml:"verify"`
	Neo4j   Neo4j   `yaml:"neo4j"`
}

// Log selects slog level and handler format.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Metrics exposes /metrics on Addr when set.
type Metrics struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Trace picks the span exporter.
type Trace struct {
	Exporter string `yaml:"exporter" validate:"oneof=none stdout"`
}

// Verify enables the brute-force cross-check for graphs up to MaxVertices.
type Verify struct {
	Enabled     bool `yaml:"enabled"`
	MaxVertices int  `yaml:"max_vertices" validate:"min=0"`
}

// Neo4j export is enabled when URI is set.
type Neo4j struct {
	URI      string `yaml:"uri" validate:"omitempty,uri"`
	User     string `yaml:"user" validate:"required_with=URI"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// Enabled reports whether an export target is configured.
func (n Neo4j) Enabled() bool { return n.URI != "" }

// Default returns the configuration used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Domain:       extract.DefaultDomain,
		Workers:      runtime.NumCPU(),
		DrainTimeout: ingest.DefaultDrainTimeout,
		Interactive:  true,
		Log:          Log{Level: "info", Format: "text"},
		Trace:        Trace{Exporter: telemetry.ExporterNone},
		Verify:       Verify{MaxVertices: DefaultVerifyMaxVertices},
		Neo4j:        Neo4j{User: "neo4j", Database: "neo4j"},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// yields the defaults. Unknown keys are rejected. The result is not
// validated so that flag overrides can still be applied.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Decode overlays YAML from r onto cfg. An empty document leaves cfg as is.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures under their YAML keys.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the struct tags and returns ErrInvalid listing every
// failing field as "key (rule)".
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := strings.TrimPrefix(fe.Namespace(), "Config.")
		fields = append(fields, fmt.Sprintf("%s (%s)", key, fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
}
