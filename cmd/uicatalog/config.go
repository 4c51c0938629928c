package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnana997/uicatalog/catalogs"
	"github.com/gnana997/uicatalog/pkg/catalog"
	"github.com/gnana997/uicatalog/pkg/util"
)

const defaultConfigPath = ".uicatalog/config.yaml"

// ProjectConfig holds the contents of .uicatalog/config.yaml.
type ProjectConfig struct {
	IndexPath       string `yaml:"index_path"`
	SourceRoot      string `yaml:"source_root"`
	ExportPath      string `yaml:"export_path"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
	ToolLog         string `yaml:"tool_log"`
	SearchCacheSize *int   `yaml:"search_cache_size"`
}

// loadProjectConfig reads the config file at path, or the default location
// when path is empty. A missing default file is not an error (nil config);
// a missing explicitly named file is.
func loadProjectConfig(path string) (*ProjectConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// rootFlags are the raw persistent flag values; empty means "not given".
type rootFlags struct {
	configPath string
	indexPath  string
	exportPath string
	logLevel   string
	logFormat  string
	toolLog    string
}

// settings is the resolved configuration every command runs with.
type settings struct {
	indexPath       string
	indexExplicit   bool // from a flag or the config file, so it must load
	sourceRoot      string
	exportPath      string
	logLevel        util.LogLevel
	logFormat       util.LogFormat
	toolLog         string
	searchCacheSize int
}

// resolveSettings applies the chain flag > config file > default to every
// value. cfg may be nil.
func resolveSettings(f rootFlags, cfg *ProjectConfig) (settings, error) {
	if cfg == nil {
		cfg = &ProjectConfig{}
	}

	s := settings{
		indexPath:       firstNonEmpty(f.indexPath, cfg.IndexPath, catalogs.SmartHRPath),
		indexExplicit:   f.indexPath != "" || cfg.IndexPath != "",
		sourceRoot:      cfg.SourceRoot,
		exportPath:      firstNonEmpty(f.exportPath, cfg.ExportPath, catalog.DefaultExportPath),
		toolLog:         firstNonEmpty(f.toolLog, cfg.ToolLog),
		searchCacheSize: catalog.DefaultSearchCacheSize,
	}
	if cfg.SearchCacheSize != nil {
		s.searchCacheSize = *cfg.SearchCacheSize
	}

	level, err := util.ParseLogLevel(firstNonEmpty(f.logLevel, cfg.LogLevel, string(util.LevelInfo)))
	if err != nil {
		return settings{}, err
	}
	s.logLevel = level

	format, err := util.ParseLogFormat(firstNonEmpty(f.logFormat, cfg.LogFormat, string(util.FormatText)))
	if err != nil {
		return settings{}, err
	}
	s.logFormat = format

	return s, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
