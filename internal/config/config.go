package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/bookshelf/internal/app"
	"github.com/atomicstack/bookshelf/internal/catalog"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the optional YAML configuration file.
type fileConfig struct {
	Limits  catalog.Limits `yaml:"limits"`
	Dir     string         `yaml:"dir"`
	Width   int            `yaml:"width"`
	Height  int            `yaml:"height"`
	Footer  bool           `yaml:"footer"`
	Verbose bool           `yaml:"verbose"`
	Trace   bool           `yaml:"trace"`
	LogFile string         `yaml:"log_file"`
}

const (
	envConfig     = "BOOKSHELF_CONFIG"
	envCapacity   = "BOOKSHELF_CAPACITY"
	envMaxName    = "BOOKSHELF_MAX_NAME"
	envMaxPages   = "BOOKSHELF_MAX_PAGES"
	envMaxPrice   = "BOOKSHELF_MAX_PRICE"
	envDir        = "BOOKSHELF_DIR"
	envWidth      = "BOOKSHELF_WIDTH"
	envHeight     = "BOOKSHELF_HEIGHT"
	envShowFooter = "BOOKSHELF_FOOTER"
	envVerbose    = "BOOKSHELF_VERBOSE"
	envTrace      = "BOOKSHELF_TRACE"
	envLogFile    = "BOOKSHELF_LOG_FILE"
)

const configFlag = "config"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values are
// layered as defaults, then the YAML file, then environment, then flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := configPath(args, envOrDefault(env, envConfig, ""))
	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("bookshelf", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String(configFlag, path, "path to a YAML configuration file")
	capacity := fs.Int("capacity", envOrInt(env, envCapacity, file.Limits.Capacity), "number of book slots")
	maxName := fs.Int("max-name", envOrInt(env, envMaxName, file.Limits.MaxName), "maximum book name length in characters")
	maxPages := fs.Int("max-pages", envOrInt(env, envMaxPages, file.Limits.MaxPages), "maximum page count")
	maxPrice := fs.Int("max-price", envOrInt(env, envMaxPrice, file.Limits.MaxPrice), "maximum price")
	dir := fs.String("dir", envOrDefault(env, envDir, file.Dir), "directory the file picker starts in")
	width := fs.Int("width", envOrInt(env, envWidth, file.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, file.Footer), "enable footer key help (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.Trace), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, file.Verbose), "show details for completed actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Limits: catalog.Limits{
				Capacity: *capacity,
				MaxName:  *maxName,
				MaxPages: *maxPages,
				MaxPrice: *maxPrice,
			},
			StartDir:   *dir,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"config":    path,
			"capacity":  strconv.Itoa(*capacity),
			"max-name":  strconv.Itoa(*maxName),
			"max-pages": strconv.Itoa(*maxPages),
			"max-price": strconv.Itoa(*maxPrice),
			"dir":       *dir,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configPath finds the -config flag ahead of the full parse so the file can
// seed the flag defaults.
func configPath(args []string, fallback string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, configFlag+"="); ok {
			return value
		}
		if name == configFlag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return fallback
}

func readFile(path string) (fileConfig, error) {
	cfg := fileConfig{Limits: catalog.DefaultLimits()}
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the catalog limits are usable.
func Validate(cfg Config) error {
	if err := cfg.App.Limits.Validate(); err != nil {
		return fmt.Errorf("invalid limits: %w", err)
	}
	return nil
}
