// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/qcgm1978/tfjs-core/multinomial"
	"github.com/qcgm1978/tfjs-core/random"
)

const (
	ConfigKey     = "config"
	InputKey      = "input"
	SamplesKey    = "samples"
	SeedKey       = "seed"
	NormalizedKey = "normalized"
	LogitsKey     = "logits"
	WorkersKey    = "workers"
	GeneratorKey  = "generator"
	LogLevelKey   = "log-level"
	PrettyKey     = "pretty"
	NoColorKey    = "no-color"

	envPrefix = "MULTINOMIAL"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(ConfigKey, "", "Optional config file (yaml, json or toml) holding flag values")
	flags.StringP(InputKey, "i", "-", "JSON probability tensor file, - for stdin")
	flags.Float64P(SamplesKey, "n", 1, "Samples to draw per distribution")
	flags.Int64(SeedKey, 0, "Seed for reproducible output; unset draws from system entropy")
	flags.Bool(NormalizedKey, multinomial.DefaultNormalized, "Rows already sum to 1; skip the division pass")
	flags.Bool(LogitsKey, multinomial.DefaultLogits, "Rows are log-probabilities; sample from their softmax")
	flags.Int(WorkersKey, multinomial.DefaultWorkers(), "Rows sampled concurrently")
	flags.String(GeneratorKey, multinomial.DefaultGenerator.String(), "PRNG: mt19937-64, mt19937 or xoshiro256**")
	flags.String(LogLevelKey, zapcore.WarnLevel.String(), "Log level: debug, info, warn, error")
	flags.Bool(PrettyKey, false, "Indent and colorize the JSON output")
	flags.Bool(NoColorKey, false, "Disable colored output")
}

type Config struct {
	Input      string
	Samples    int
	Seed       int64
	Seeded     bool
	Normalized bool
	Logits     bool
	Workers    int
	Generator  random.Kind
	LogLevel   zapcore.Level
	Pretty     bool
	NoColor    bool
}

// ParseFlags resolves flags, MULTINOMIAL_* environment variables and the
// optional config file, in that order of precedence. A positional argument
// overrides --input.
func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	if path := v.GetString(ConfigKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %q: %w", path, err)
		}
	}

	samples, err := multinomial.SampleCount(v.GetFloat64(SamplesKey))
	if err != nil {
		return nil, err
	}

	generator, err := random.ParseKind(v.GetString(GeneratorKey))
	if err != nil {
		return nil, err
	}

	workers := v.GetInt(WorkersKey)
	if workers < 1 {
		return nil, fmt.Errorf("--%s must be >= 1, got %d", WorkersKey, workers)
	}

	logits, normalized := v.GetBool(LogitsKey), v.GetBool(NormalizedKey)
	if logits && normalized {
		return nil, fmt.Errorf("--%s and --%s are mutually exclusive", LogitsKey, NormalizedKey)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(v.GetString(LogLevelKey))); err != nil {
		return nil, err
	}

	input := v.GetString(InputKey)
	if rest := flags.Args(); len(rest) > 0 {
		input = rest[0]
	}

	return &Config{
		Input:      input,
		Samples:    samples,
		Seed:       v.GetInt64(SeedKey),
		Seeded:     v.IsSet(SeedKey),
		Normalized: normalized,
		Logits:     logits,
		Workers:    workers,
		Generator:  generator,
		LogLevel:   level,
		Pretty:     v.GetBool(PrettyKey),
		NoColor:    v.GetBool(NoColorKey),
	}, nil
}

// options maps the resolved config onto kernel options.
func (c *Config) options(log *zap.Logger) []multinomial.Option {
	opts := []multinomial.Option{
		multinomial.WithNormalized(c.Normalized),
		multinomial.WithWorkers(c.Workers),
		multinomial.WithGenerator(c.Generator),
		multinomial.WithLogger(log),
	}
	if c.Seeded {
		opts = append(opts, multinomial.WithSeed(c.Seed))
	}
	if c.Logits {
		opts = append(opts, multinomial.WithLogits())
	}
	return opts
}
