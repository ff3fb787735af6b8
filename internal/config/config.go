package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cerfical/ipconv/internal/addr"
	"github.com/cerfical/ipconv/internal/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// ErrHelp is returned when the help message was requested.
	ErrHelp = errors.New("help requested")

	// ErrNoInput is returned when no address literal was provided.
	ErrNoInput = errors.New("no address specified")
)

var (
	defLogLevel   = log.LevelError
	defOctalStyle = addr.OctalModern
)

// Load builds the configuration from command-line arguments, the first of which is the program path.
// On failure, the error and usage information are written to out.
func Load(args []string, out io.Writer) (*Config, error) {
	progName := getProgramName(args)

	flags := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	flags.SetOutput(out)
	flags.Usage = func() {
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  %v [options] <address>\n\n", progName)
		fmt.Fprintf(out, "Options:\n")
		fmt.Fprint(out, flags.FlagUsages())
	}

	if err := parseFlags(flags, args); err != nil {
		printError(out, flags, err)
		return nil, err
	}

	rawConfig, err := parseRawConfig(flags)
	if err != nil {
		printError(out, flags, err)
		return nil, err
	}

	config := rawConfig.ToConfig()
	config.Input = flags.Arg(0)
	return config, nil
}

func printError(out io.Writer, f *pflag.FlagSet, err error) {
	if !errors.Is(err, ErrHelp) && !errors.Is(err, ErrNoInput) {
		fmt.Fprintf(out, "Error: %v\n\n", err)
	}
	f.Usage()
}

func parseRawConfig(f *pflag.FlagSet) (*rawConfig, error) {
	v := viper.New()

	// Bind command-line flags to their corresponding values from config file
	configNames := []string{"log.level", "octal.style"}
	for _, name := range configNames {
		kebabCasedName := strings.ReplaceAll(name, ".", "-")
		if err := v.BindPFlag(name, f.Lookup(kebabCasedName)); err != nil {
			panic(fmt.Errorf("bind flag: %w", err))
		}
	}

	if configFile, _ := f.GetString("config-file"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
	}

	options := []viper.DecoderConfigOption{
		viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()),

		func(c *mapstructure.DecoderConfig) {
			c.IgnoreUntaggedFields = true
		},
	}

	var config rawConfig
	if err := v.UnmarshalExact(&config, options...); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return &config, nil
}

func parseFlags(f *pflag.FlagSet, args []string) error {
	// Flags shared with options from a configuration file
	logLevel := logLevelValue(defLogLevel)
	f.Var(&logLevel, "log-level", "``severity level of logging messages (silent, fatal, error, info, verbose)")

	octalStyle := octalStyleValue(defOctalStyle)
	f.Var(&octalStyle, "octal-style", "``prefix style of octal numbers (0o, legacy)")

	help := f.BoolP("help", "h", false, "``display help message")
	f.String("config-file", "", "``configuration file")

	if err := f.Parse(args[1:]); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *help {
		return ErrHelp
	}

	switch n := f.NArg(); {
	case n == 0:
		return ErrNoInput
	case n > 1:
		return fmt.Errorf("expected 1 address, but got %v", n)
	}
	return nil
}

func getProgramName(args []string) string {
	progPath := args[0]
	return strings.TrimSuffix(
		filepath.Base(progPath),
		filepath.Ext(progPath),
	)
}

type Config struct {
	// Input is the address literal to convert.
	Input string

	Log struct {
		Level log.Level
	}

	Octal struct {
		Style addr.OctalStyle
	}
}

type rawConfig struct {
	Log struct {
		Level logLevelValue `mapstructure:"level"`
	} `mapstructure:"log"`

	Octal struct {
		Style octalStyleValue `mapstructure:"style"`
	} `mapstructure:"octal"`
}

func (c *rawConfig) ToConfig() *Config {
	var config Config

	config.Log.Level = log.Level(c.Log.Level)
	config.Octal.Style = addr.OctalStyle(c.Octal.Style)

	return &config
}

type logLevelValue log.Level

func (v *logLevelValue) Set(s string) error {
	return (*log.Level)(v).UnmarshalText([]byte(s))
}

func (v *logLevelValue) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

func (v *logLevelValue) String() string {
	return (*log.Level)(v).String()
}

func (v *logLevelValue) Type() string {
	return ""
}

type octalStyleValue addr.OctalStyle

func (v *octalStyleValue) Set(s string) error {
	return (*addr.OctalStyle)(v).UnmarshalText([]byte(s))
}

func (v *octalStyleValue) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

func (v *octalStyleValue) String() string {
	return (*addr.OctalStyle)(v).String()
}

func (v *octalStyleValue) Type() string {
	return ""
}
