package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/teunvw14/rtr/pkg/palette"
)

// Config holds everything the tree renderer needs besides the target path.
type Config struct {
	// ShowFiles lists files as leaves next to directories
	ShowFiles bool

	// ASCII selects plain ASCII connectors instead of box-drawing characters
	ASCII bool

	// NoColor disables colored output
	NoColor bool

	// Verbose sets the logging verbosity level
	Verbose int

	// Palette is the ordered branch color cycle
	Palette []string
}

// RegisterFlags adds every flag Load understands to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolP(FlagShowFiles, "f", false, "show files inside folders")
	flags.BoolP(FlagASCII, "a", false, "use ASCII characters")
	flags.Bool(FlagNoColor, false, "disable colored output")
	flags.StringSlice(FlagPalette, nil,
		"branch colors cycled by depth (default "+strings.Join(palette.DefaultBranchNames, ",")+")")
	flags.CountP(FlagVerbose, "v", "verbose logging to stderr (repeat for more)")
	flags.StringSlice(FlagEnvFile, nil, "load environment variables from these files first")
}

// Load builds a Config from, in increasing precedence: defaults, env files
// named by --env-file, RTR_* environment variables and flags that were set
// on the command line. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	if err := loadEnvFiles(flags); err != nil {
		return Config{}, err
	}

	v := viper.New()

	v.SetDefault(keyShowFiles, false)
	v.SetDefault(keyASCII, false)
	v.SetDefault(keyNoColor, false)
	v.SetDefault(keyPalette, palette.DefaultBranchNames)
	v.SetDefault(keyVerbose, 0)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	verbose, err := parseVerbosity(v.GetString(keyVerbose))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ShowFiles: v.GetBool(keyShowFiles),
		ASCII:     v.GetBool(keyASCII),
		NoColor:   v.GetBool(keyNoColor),
		Verbose:   verbose,
		Palette:   splitList(v.Get(keyPalette)),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	if _, err := palette.ParseNames(c.Palette); err != nil {
		return fmt.Errorf("invalid palette: %w", err)
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{ShowFiles: %v, ASCII: %v, NoColor: %v, Verbose: %d, Palette: %v}",
		c.ShowFiles, c.ASCII, c.NoColor, c.Verbose, c.Palette,
	)
}

func loadEnvFiles(flags *pflag.FlagSet) error {
	if flags == nil || flags.Lookup(FlagEnvFile) == nil {
		return nil
	}

	files, err := flags.GetStringSlice(FlagEnvFile)
	if err != nil {
		return fmt.Errorf("failed to read --%s: %w", FlagEnvFile, err)
	}
	if len(files) == 0 {
		return nil
	}

	// Variables already present in the environment are left untouched.
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// parseVerbosity accepts a level ("2") or a run of v's ("vv").
func parseVerbosity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if strings.Trim(s, "v") == "" {
		return len(s), nil
	}
	return 0, fmt.Errorf("invalid verbosity %q: use a number or a run of 'v'", s)
}

// splitList normalizes a comma-separated string or a string slice.
func splitList(value interface{}) []string {
	var raw []string
	switch val := value.(type) {
	case []string:
		raw = val
	case string:
		raw = strings.Split(val, ",")
	case []interface{}:
		for _, item := range val {
			raw = append(raw, fmt.Sprint(item))
		}
	}

	items := make([]string, 0, len(raw))
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				items = append(items, trimmed)
			}
		}
	}
	return items
}
