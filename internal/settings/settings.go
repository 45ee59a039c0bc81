// seehuhn.de/go/riemann - an interactive Riemann sum explorer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package settings collects the startup settings of the explorer.
//
// Values are taken from the following sources, each overriding the
// previous one: built-in defaults, a YAML file, a .env file, the process
// environment (variables named UHI_<KEY>), and command-line flags.
package settings

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/riemann"
)

// ErrInvalidSetting is returned for values which cannot be used.
var ErrInvalidSetting = errors.New("invalid setting")

// EnvPrefix is prepended to the upper-case key of every setting to form
// the name of its environment variable.
const EnvPrefix = "UHI_"

// Settings holds everything needed to start the explorer.
type Settings struct {
	Explorer riemann.Config `yaml:"explorer"`
	Function string         `yaml:"function"`
	Width    float64        `yaml:"width"`
	Height   float64        `yaml:"height"`

	LogLevel  string `yaml:"log_level"`
	LogPretty bool   `yaml:"log_pretty"`

	Headless bool    `yaml:"headless"`
	Frames   int     `yaml:"frames"` // 0 means run until interrupted
	Hz       float64 `yaml:"hz"`
	OutDir   string  `yaml:"out"`
	PDF      bool    `yaml:"pdf"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Explorer:  riemann.DefaultConfig(),
		Function:  "cubic",
		Width:     riemann.DefaultViewport.Width,
		Height:    riemann.DefaultViewport.Height,
		LogLevel:  "info",
		LogPretty: true,
		Hz:        60,
		OutDir:    "frames",
	}
}

// Viewport returns the configured window size.
func (s *Settings) Viewport() riemann.Viewport {
	return riemann.Viewport{Width: s.Width, Height: s.Height}
}

// key describes one setting which can be given in the environment or on
// the command line.
type key struct {
	name    string
	usage   string
	boolean bool
	set     func(s *Settings, v string) error
	get     func(s *Settings) string
}

func intKey(name, usage string, field func(s *Settings) *int) key {
	return key{
		name:  name,
		usage: usage,
		set: func(s *Settings, v string) error {
			n, err := cast.ToIntE(trimLeadingZeros(strings.TrimSpace(v)))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidSetting, err)
			}
			*field(s) = n
			return nil
		},
		get: func(s *Settings) string { return cast.ToString(*field(s)) },
	}
}

// trimLeadingZeros removes leading zeros from a decimal integer, so that
// cast does not read it as an octal number.
func trimLeadingZeros(v string) string {
	sign := ""
	if v != "" && (v[0] == '-' || v[0] == '+') {
		sign, v = v[:1], v[1:]
	}
	t := strings.TrimLeft(v, "0")
	if len(t) < len(v) && (t == "" || t[0] < '0' || t[0] > '9') {
		t = "0" + t // keep "0" and prefixes like "0x"
	}
	return sign + t
}

func floatKey(name, usage string, field func(s *Settings) *float64) key {
	return key{
		name:  name,
		usage: usage,
		set: func(s *Settings, v string) error {
			x, err := cast.ToFloat64E(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidSetting, err)
			}
			*field(s) = x
			return nil
		},
		get: func(s *Settings) string { return cast.ToString(*field(s)) },
	}
}

func boolKey(name, usage string, field func(s *Settings) *bool) key {
	return key{
		name:    name,
		usage:   usage,
		boolean: true,
		set: func(s *Settings, v string) error {
			b, err := cast.ToBoolE(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidSetting, err)
			}
			*field(s) = b
			return nil
		},
		get: func(s *Settings) string { return cast.ToString(*field(s)) },
	}
}

func stringKey(name, usage string, field func(s *Settings) *string) key {
	return key{
		name:  name,
		usage: usage,
		set:   func(s *Settings, v string) error { *field(s) = v; return nil },
		get:   func(s *Settings) string { return *field(s) },
	}
}

var keys = []key{
	intKey("n", "number of partitions",
		func(s *Settings) *int { return &s.Explorer.N }),
	floatKey("a", "lower integration bound",
		func(s *Settings) *float64 { return &s.Explorer.A }),
	floatKey("b", "upper integration bound",
		func(s *Settings) *float64 { return &s.Explorer.B }),
	{
		name:  "pick",
		usage: "sample point strategy: LOW, HIGH, RANDOM or CUSTOM",
		set: func(s *Settings, v string) error {
			p, err := riemann.ParsePickStrategy(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			s.Explorer.Pick = p
			return nil
		},
		get: func(s *Settings) string { return s.Explorer.Pick.String() },
	},
	floatKey("custom-fraction", "sample position for CUSTOM, in [0, 1]",
		func(s *Settings) *float64 { return &s.Explorer.CustomFraction }),
	stringKey("seed", "seed text for RANDOM",
		func(s *Settings) *string { return &s.Explorer.Seed }),
	floatKey("zoom", "view scale, larger values show more of the graph",
		func(s *Settings) *float64 { return &s.Explorer.Zoom }),
	boolKey("show-area", "draw the Riemann rectangles",
		func(s *Settings) *bool { return &s.Explorer.ShowArea }),
	boolKey("show-helpers", "draw axes, ticks and labels",
		func(s *Settings) *bool { return &s.Explorer.ShowHelpers }),
	stringKey("function", "function to integrate: "+strings.Join(riemann.Names(), ", "),
		func(s *Settings) *string { return &s.Function }),
	floatKey("width", "window width in pixels",
		func(s *Settings) *float64 { return &s.Width }),
	floatKey("height", "window height in pixels",
		func(s *Settings) *float64 { return &s.Height }),
	stringKey("log-level", "log level: debug, info, warn or error",
		func(s *Settings) *string { return &s.LogLevel }),
	boolKey("log-pretty", "human readable log output",
		func(s *Settings) *bool { return &s.LogPretty }),
	boolKey("headless", "render frames to files instead of opening a window",
		func(s *Settings) *bool { return &s.Headless }),
	intKey("frames", "number of frames in headless mode, 0 for unlimited",
		func(s *Settings) *int { return &s.Frames }),
	floatKey("hz", "frame rate in headless mode",
		func(s *Settings) *float64 { return &s.Hz }),
	stringKey("out", "output directory in headless mode",
		func(s *Settings) *string { return &s.OutDir }),
	boolKey("pdf", "also write PDF files in headless mode",
		func(s *Settings) *bool { return &s.PDF }),
}

// flagValue holds the text of a flag until it is applied.
type flagValue struct {
	text    string
	boolean bool
}

func (v *flagValue) String() string     { return v.text }
func (v *flagValue) Set(s string) error { v.text = s; return nil }
func (v *flagValue) IsBoolFlag() bool   { return v.boolean }

// EnvName returns the environment variable for the setting with the given
// flag name.
func EnvName(name string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// Load reads the YAML file configFile and the environment on top of the
// defaults. Empty file names are skipped, and a missing envFile is not an
// error. The result is not yet clamped, see [Settings.Finish].
func Load(configFile, envFile string) (*Settings, error) {
	s := Default()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("%s: %w", configFile, err)
		}
	}

	fileEnv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", envFile, err)
		}
		if m != nil {
			fileEnv = m
		}
	}

	// process environment takes precedence over the .env file
	for _, k := range keys {
		env := EnvName(k.name)
		v, ok := os.LookupEnv(env)
		if !ok {
			v, ok = fileEnv[env]
		}
		if !ok {
			continue
		}
		if err := k.set(&s, v); err != nil {
			return nil, fmt.Errorf("%s=%q: %w", env, v, err)
		}
	}

	return &s, nil
}

// Flags binds the settings to command-line flags.
type Flags struct {
	fs         *flag.FlagSet
	configFile *string
	envFile    *string
}

// NewFlags defines one flag per setting on fset, plus -config and -env
// for the file names.
func NewFlags(fset *flag.FlagSet) *Flags {
	f := &Flags{
		fs:         fset,
		configFile: fset.String("config", "", "YAML settings file"),
		envFile:    fset.String("env", ".env", "file with "+EnvPrefix+"* variables"),
	}
	d := Default()
	for _, k := range keys {
		fset.Var(&flagValue{text: k.get(&d), boolean: k.boolean}, k.name, k.usage)
	}
	return f
}

// ConfigFile returns the value of the -config flag.
func (f *Flags) ConfigFile() string {
	return *f.configFile
}

// EnvFile returns the value of the -env flag.
func (f *Flags) EnvFile() string {
	return *f.envFile
}

// Apply copies the flags which were given on the command line into s.
func (f *Flags) Apply(s *Settings) error {
	var errs []error
	f.fs.Visit(func(fl *flag.Flag) {
		i := slices.IndexFunc(keys, func(k key) bool { return k.name == fl.Name })
		if i < 0 {
			return
		}
		v := fl.Value.String()
		if err := keys[i].set(s, v); err != nil {
			errs = append(errs, fmt.Errorf("-%s=%q: %w", fl.Name, v, err))
		}
	})
	return errors.Join(errs...)
}

// Finish clamps the explorer settings into their valid ranges and checks
// the remaining settings. The return value reports whether clamping
// changed anything.
func (s *Settings) Finish() (bool, error) {
	clamped := s.Explorer.Clamped()
	changed := clamped != s.Explorer
	s.Explorer = clamped

	if _, err := riemann.Lookup(s.Function); err != nil {
		return changed, err
	}
	if !(s.Width > 0 && s.Height > 0) {
		return changed, fmt.Errorf("window %gx%g: %w", s.Width, s.Height, riemann.ErrViewport)
	}
	if s.Frames < 0 {
		return changed, fmt.Errorf("frames %d: %w", s.Frames, ErrInvalidSetting)
	}
	if !(s.Hz > 0) {
		return changed, fmt.Errorf("hz %g: %w", s.Hz, ErrInvalidSetting)
	}
	if s.Headless && s.OutDir == "" {
		return changed, fmt.Errorf("empty output directory: %w", ErrInvalidSetting)
	}
	return changed, nil
}
