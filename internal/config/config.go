package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is looked up in the working directory; it is optional.
const ConfigFile = "mdtodocu.toml"

// Config holds the paths and parsing knobs for a conversion run.
type Config struct {
	// BooksDir is where outline documents live: <BooksDir>/<book>/SUMMARY.md.
	BooksDir string `toml:"books_dir"`

	// SearchDir is the root searched for source files and images.
	SearchDir string `toml:"search_dir"`

	// OutputDir is the root of generated trees: <OutputDir>/<book>.
	OutputDir string `toml:"output_dir"`

	// IndentWidth is the number of leading whitespace characters that encode
	// one nesting level in the outline document.
	IndentWidth int `toml:"indent_width"`

	// LogFile is where unresolved image names are persisted.
	LogFile string `toml:"log_file"`

	// PreviewAddr is the listen address for the preview server.
	PreviewAddr string `toml:"preview_addr"`
}

// Load builds the configuration from defaults, then the optional TOML file in
// the working directory, then environment variable overrides.
func Load() (Config, error) {
	cfg := Config{
		BooksDir:    "../books",
		SearchDir:   ".",
		OutputDir:   "docu_book",
		IndentWidth: 2,
		LogFile:     "mdtodocu.log",
		PreviewAddr: ":8090",
	}

	if data, err := os.ReadFile(ConfigFile); err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", ConfigFile, err)
		}
	}

	cfg.BooksDir = envOr("MDTODOCU_BOOKS_DIR", cfg.BooksDir)
	cfg.SearchDir = envOr("MDTODOCU_SEARCH_DIR", cfg.SearchDir)
	cfg.OutputDir = envOr("MDTODOCU_OUTPUT_DIR", cfg.OutputDir)
	cfg.IndentWidth = envInt("MDTODOCU_INDENT_WIDTH", cfg.IndentWidth)
	cfg.LogFile = envOr("MDTODOCU_LOG_FILE", cfg.LogFile)
	cfg.PreviewAddr = envOr("MDTODOCU_PREVIEW_ADDR", cfg.PreviewAddr)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values no pipeline stage can recover from.
func (c Config) Validate() error {
	if c.IndentWidth <= 0 {
		return fmt.Errorf("indent width must be positive, got %d", c.IndentWidth)
	}
	if c.BooksDir == "" {
		return fmt.Errorf("books dir must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output dir must not be empty")
	}
	return nil
}

// OutlinePath returns the outline document path for a book.
func (c Config) OutlinePath(book string) string {
	return filepath.Join(c.BooksDir, book, "SUMMARY.md")
}

// OutputPath returns the output tree root for a book.
func (c Config) OutputPath(book string) string {
	return filepath.Join(c.OutputDir, book)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
