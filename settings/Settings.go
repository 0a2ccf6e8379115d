package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

type Settings struct {
	Env      string
	Frontend string

	FrameInterval time.Duration
	KeyHold       time.Duration
	WindowScale   int
	Background    colorful.Color

	Seed  int64
	Trace bool

	// ConfigFile is empty when no properties file was found.
	ConfigFile string
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("pong", pflag.ContinueOnError)
	flags.String("env", "local", "properties/<env>.properties to load")
	flags.String("frontend", FrontendTerminal, "terminal or window")
	flags.Int64("seed", 0, "random seed for serves, 0 uses the clock")
	flags.Bool("trace", false, "log every frame at trace level")
	return flags
}

// Load parses args, then reads properties/<env>.properties from fs.
// Flags given on the command line win over the file.
func Load(fs afero.Fs, args []string) (Settings, error) {
	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("parse flags: %w", err)
	}

	env, _ := flags.GetString("env")

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath("properties")
	v.AddConfigPath("./")

	v.SetDefault("frontend", FrontendTerminal)
	v.SetDefault("frameInterval", 16)
	v.SetDefault("keyHold", 150)
	v.SetDefault("windowScale", 2)
	v.SetDefault("background", "#282d34")
	v.SetDefault("seed", 0)
	v.SetDefault("trace", false)

	for _, name := range []string{"frontend", "seed", "trace"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read properties %s: %w", env, err)
		}
	}

	s := Settings{
		Env:           env,
		Frontend:      cast.ToString(v.Get("frontend")),
		FrameInterval: time.Duration(cast.ToInt(v.Get("frameInterval"))) * time.Millisecond,
		KeyHold:       time.Duration(cast.ToInt(v.Get("keyHold"))) * time.Millisecond,
		WindowScale:   cast.ToInt(v.Get("windowScale")),
		Seed:          cast.ToInt64(v.Get("seed")),
		Trace:         cast.ToBool(v.Get("trace")),
		ConfigFile:    v.ConfigFileUsed(),
	}

	background, err := colorful.Hex(cast.ToString(v.Get("background")))
	if err != nil {
		return Settings{}, fmt.Errorf("background colour: %w", err)
	}
	s.Background = background

	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("unknown frontend %q", s.Frontend)
	}
	if s.FrameInterval <= 0 {
		return fmt.Errorf("frameInterval must be positive, got %s", s.FrameInterval)
	}
	if s.WindowScale < 1 {
		return fmt.Errorf("windowScale must be at least 1, got %d", s.WindowScale)
	}
	return nil
}
