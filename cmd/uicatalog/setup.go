package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const serverKey = "uicatalog"

// AgentDef describes one project-level MCP client config file.
type AgentDef struct {
	ID          string
	DisplayName string
	ConfigPath  string            // relative to the project root
	DirMarker   string            // directory whose presence means the agent is used; "" = always
	ServersKey  string            // "servers" (VS Code) or "mcpServers" (others)
	ExtraFields map[string]string // e.g. "type": "stdio" for VS Code
}

// DetectedAgent is an agent found in the project.
type DetectedAgent struct {
	Def          AgentDef
	AlreadySetup bool
}

type setupOptions struct {
	auto      bool
	indexPath string
}

// Replaceable for testing.
var statFunc = os.Stat

var agentRegistry = []AgentDef{
	{
		ID: "mcp_json", DisplayName: "Project .mcp.json",
		ConfigPath: ".mcp.json", ServersKey: "mcpServers",
	},
	{
		ID: "vscode", DisplayName: "VS Code",
		ConfigPath: filepath.Join(".vscode", "mcp.json"), DirMarker: ".vscode",
		ServersKey: "servers", ExtraFields: map[string]string{"type": "stdio"},
	},
	{
		ID: "cursor", DisplayName: "Cursor",
		ConfigPath: filepath.Join(".cursor", "mcp.json"), DirMarker: ".cursor",
		ServersKey: "mcpServers",
	},
}

var setupAuto bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Register the MCP server in project agent configs",
	Long: `Add a "uicatalog" server entry (running "uicatalog serve") to the MCP
config files of agents used in this project: .mcp.json always, plus
.vscode/mcp.json and .cursor/mcp.json when those directories exist.

Existing entries and key order are preserved. An explicit --index is passed
through to the server entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		executeSetup(cmd.InOrStdin(), cmd.OutOrStdout(), setupOptions{auto: setupAuto, indexPath: flags.indexPath})
		return nil
	},
}

func init() {
	setupCmd.Flags().BoolVar(&setupAuto, "auto", false, "configure every detected agent without prompting")
	rootCmd.AddCommand(setupCmd)
}

// detectAgents returns the agents whose marker directory exists.
func detectAgents() []DetectedAgent {
	var detected []DetectedAgent
	for _, def := range agentRegistry {
		if def.DirMarker != "" {
			if _, err := statFunc(def.DirMarker); err != nil {
				continue
			}
		}
		detected = append(detected, DetectedAgent{
			Def:          def,
			AlreadySetup: isAlreadyConfigured(def.ConfigPath, def.ServersKey),
		})
	}
	return detected
}

func isAlreadyConfigured(configPath, serversKey string) bool {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return false
	}
	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		return false
	}
	servers, ok := config[serversKey].(map[string]any)
	if !ok {
		return false
	}
	_, exists := servers[serverKey]
	return exists
}

// serverEntry returns the MCP server config object for uicatalog.
func serverEntry(extra map[string]string, indexPath string) *orderedmap.OrderedMap[string, any] {
	args := []any{"serve"}
	if indexPath != "" {
		args = append(args, "--index", indexPath)
	}

	entry := orderedmap.New[string, any]()
	for k, v := range extra {
		entry.Set(k, v)
	}
	entry.Set("command", "uicatalog")
	entry.Set("args", args)
	return entry
}

// mergeServerEntry adds a uicatalog entry under serversKey to an existing
// JSON config (or a new one), keeping every other key in its place.
// It returns nil, nil when the entry already exists.
func mergeServerEntry(existing []byte, serversKey string, extra map[string]string, indexPath string) ([]byte, error) {
	config := orderedmap.New[string, json.RawMessage]()
	if len(bytes.TrimSpace(existing)) > 0 {
		if err := json.Unmarshal(existing, config); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}

	servers := orderedmap.New[string, json.RawMessage]()
	if raw, ok := config.Get(serversKey); ok {
		if err := json.Unmarshal(raw, servers); err != nil {
			return nil, fmt.Errorf("invalid %q section: %w", serversKey, err)
		}
	}
	if _, exists := servers.Get(serverKey); exists {
		return nil, nil
	}

	entry, err := json.Marshal(serverEntry(extra, indexPath))
	if err != nil {
		return nil, err
	}
	servers.Set(serverKey, entry)

	section, err := json.Marshal(servers)
	if err != nil {
		return nil, err
	}
	config.Set(serversKey, section)

	flat, err := json.Marshal(config)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, flat, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// configureFileAgent reads, merges and writes one config file.
func configureFileAgent(def AgentDef, indexPath string) error {
	if err := os.MkdirAll(filepath.Dir(def.ConfigPath), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	var existing []byte
	if data, err := os.ReadFile(def.ConfigPath); err == nil {
		existing = data
	}

	merged, err := mergeServerEntry(existing, def.ServersKey, def.ExtraFields, indexPath)
	if err != nil {
		return err
	}
	if merged == nil {
		return nil
	}
	return os.WriteFile(def.ConfigPath, merged, 0o644)
}

// promptYesNo prints a question and reads Y/n. Empty input and EOF mean yes.
func promptYesNo(r *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s ", question)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return true
	}
	answer := strings.TrimSpace(strings.ToLower(line))
	return answer == "" || answer == "y" || answer == "yes"
}

// executeSetup is the testable core of the setup command.
func executeSetup(in io.Reader, w io.Writer, opts setupOptions) {
	r := bufio.NewReader(in)

	detected := detectAgents()
	fmt.Fprintln(w, "MCP client configs:")
	for _, d := range detected {
		if d.AlreadySetup {
			fmt.Fprintf(w, "  * %s (already configured)\n", d.Def.DisplayName)
		} else {
			fmt.Fprintf(w, "  * %s\n", d.Def.DisplayName)
		}
	}

	for _, d := range detected {
		if d.AlreadySetup {
			continue
		}
		if !opts.auto && !promptYesNo(r, w, fmt.Sprintf("\n%s: add uicatalog to %s? [Y/n]", d.Def.DisplayName, d.Def.ConfigPath)) {
			fmt.Fprintln(w, "  skipped")
			continue
		}
		if err := configureFileAgent(d.Def, opts.indexPath); err != nil {
			fmt.Fprintf(w, "  ! %s: failed: %v\n", d.Def.DisplayName, err)
			continue
		}
		fmt.Fprintf(w, "  + %s configured (%s)\n", d.Def.DisplayName, d.Def.ConfigPath)
	}
}
