package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnana997/uicatalog/catalogs"
	"github.com/gnana997/uicatalog/pkg/catalog"
	"github.com/gnana997/uicatalog/pkg/util"
)

var (
	flags  rootFlags
	cfg    settings
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "uicatalog",
	Short: "Component catalog for UI libraries, served over MCP",
	Long: `uicatalog indexes a TypeScript UI component library (components, categories,
documentation summaries, deprecation and Storybook coverage) into a JSON index
and answers queries about it, either from the command line or as an MCP server
for coding agents.

Settings are read from flags, then .uicatalog/config.yaml, then defaults.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		projectCfg, err := loadProjectConfig(flags.configPath)
		if err != nil {
			return err
		}
		cfg, err = resolveSettings(flags, projectCfg)
		if err != nil {
			return err
		}

		logger = util.NewLogger(util.LoggerConfig{
			Level:  cfg.logLevel,
			Format: cfg.logFormat,
			Output: cmd.ErrOrStderr(),
		})
		util.SetDefault(logger)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default "+defaultConfigPath+")")
	pf.StringVar(&flags.indexPath, "index", "", "component index file (default "+catalogs.SmartHRPath+")")
	pf.StringVar(&flags.exportPath, "export-path", "", "module specifier used in generated imports (default "+catalog.DefaultExportPath+")")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: text, json")
	pf.StringVar(&flags.toolLog, "tool-log", "", "append one JSON line per MCP tool call to this file")
}

// openQueryService loads the configured index. When no index path was
// configured and the default file does not exist, the embedded snapshot is
// used instead.
func openQueryService() (*catalog.QueryService, error) {
	opts := []catalog.QueryOption{
		catalog.WithExportPath(cfg.exportPath),
		catalog.WithSearchCacheSize(cfg.searchCacheSize),
	}

	if !cfg.indexExplicit {
		if _, err := os.Stat(cfg.indexPath); errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no local index, using embedded snapshot", "path", cfg.indexPath)
			return catalog.LoadAndQueryBytes(catalogs.SmartHRJSON, opts...)
		}
	}

	qs, err := catalog.LoadAndQuery(cfg.indexPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.indexPath, err)
	}
	logger.Debug("index loaded", "path", cfg.indexPath, "components", qs.Index().Len())
	return qs, nil
}

// writeJSON prints v as two-space indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
