// Package config provides configuration management for rtr.
// It merges defaults, optional env files, environment variables and
// command-line flags, and validates the result.
//
// # Configuration Loading
//
//	flags := pflag.NewFlagSet("rtr", pflag.ExitOnError)
//	config.RegisterFlags(flags)
//	flags.Parse(os.Args[1:])
//
//	cfg, err := config.Load(flags)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Precedence
//
// From lowest to highest:
//
//  1. built-in defaults
//  2. files named by --env-file (never override variables already set)
//  3. RTR_* environment variables
//  4. flags given on the command line
//
// # Environment Variables
//
//	RTR_SHOW_FILES  List files as leaves (true/false)
//	RTR_ASCII       Use ASCII connectors (true/false)
//	RTR_NO_COLOR    Disable colored output (true/false)
//	RTR_VERBOSE     Verbosity level, a number or a run of 'v's
//	RTR_PALETTE     Comma-separated branch colors, e.g. "cyan,magenta,red"
//
// # Flags
//
//	-f, --show-files     show files inside folders
//	-a, --ascii          use ASCII characters
//	    --no-color       disable colored output
//	    --palette        branch colors cycled by depth
//	-v, --verbose        verbose logging to stderr (repeat for more)
//	    --env-file       load environment variables from these files first
//
// # Validation
//
//   - Verbose must be non-negative
//   - Palette must hold at least one known color name
package config
