package service

import (
	"github.com/louisbranch/cortex-dice/internal/platform/branding"
	"github.com/louisbranch/cortex-dice/internal/services/mcp/domain"
	"github.com/louisbranch/cortex-dice/internal/services/roll"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
	// serverName identifies this MCP server to clients.
	serverName = branding.AppName + " MCP"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	// Locale is the default language for rendered rolls and error messages.
	Locale string
	// Rules are the defaults applied when a tool call leaves a setting out.
	Rules roll.Rules
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates an MCP server with the Cortex tools registered against a
// fresh roll service.
func New(cfg Config) (*Server, error) {
	return newServer(cfg, roll.NewService())
}

// newServer binds tool handlers to roller once.
func newServer(cfg Config, roller domain.Roller) (*Server, error) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	if err := registerCortexTools(mcpServer, roller, settingsFromConfig(cfg)); err != nil {
		return nil, err
	}
	return &Server{mcpServer: mcpServer}, nil
}

func settingsFromConfig(cfg Config) domain.Settings {
	rules := cfg.Rules
	if rules == (roll.Rules{}) {
		rules = roll.DefaultRules()
	}
	return domain.Settings{Rules: rules, Locale: cfg.Locale}
}
