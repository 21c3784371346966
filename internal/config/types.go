package config

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "RTR"

// Command-line flag names understood by RegisterFlags and Load.
const (
	FlagShowFiles = "show-files"
	FlagASCII     = "ascii"
	FlagNoColor   = "no-color"
	FlagPalette   = "palette"
	FlagVerbose   = "verbose"
	FlagEnvFile   = "env-file"
)

// Viper keys; the environment variable for a key is EnvPrefix + "_" + upper(key).
const (
	keyShowFiles = "show_files"
	keyASCII     = "ascii"
	keyNoColor   = "no_color"
	keyPalette   = "palette"
	keyVerbose   = "verbose"
)

// flagKeys maps viper keys to the flags that override them.
var flagKeys = map[string]string{
	keyShowFiles: FlagShowFiles,
	keyASCII:     FlagASCII,
	keyNoColor:   FlagNoColor,
	keyPalette:   FlagPalette,
	keyVerbose:   FlagVerbose,
}
