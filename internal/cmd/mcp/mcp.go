// Package mcp parses MCP command flags and serves the Cortex tools.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/cortex-dice/internal/platform/cmd"
	mcpservice "github.com/louisbranch/cortex-dice/internal/services/mcp/service"
	"github.com/louisbranch/cortex-dice/internal/services/roll"
)

// Config holds MCP command configuration.
type Config struct {
	Transport string `env:"CORTEX_MCP_TRANSPORT" envDefault:"stdio"`
	Locale    string `env:"CORTEX_LANG"          envDefault:"en-US"`
	Keep      int    `env:"CORTEX_KEEP"          envDefault:"2"`
	HitchOn   int    `env:"CORTEX_HITCH_ON"      envDefault:"1"`
	MaxDice   int    `env:"CORTEX_MAX_DICE"      envDefault:"30"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio")
	fs.StringVar(&cfg.Locale, "lang", cfg.Locale, "default language for tool output: en-US or pt-BR")
	fs.IntVar(&cfg.Keep, "keep", cfg.Keep, "default number of dice summed into a total")
	fs.IntVar(&cfg.HitchOn, "hitch-on", cfg.HitchOn, "default highest face that counts as a hitch")
	fs.IntVar(&cfg.MaxDice, "max-dice", cfg.MaxDice, "largest pool accepted (0 means the 1000 dice ceiling)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// serviceConfig maps command settings onto the MCP server configuration.
func (c Config) serviceConfig() mcpservice.Config {
	rules := roll.DefaultRules()
	rules.Keep = c.Keep
	rules.HitchOn = c.HitchOn
	rules.MaxDice = c.MaxDice
	return mcpservice.Config{
		Transport: mcpservice.TransportKind(c.Transport),
		Locale:    c.Locale,
		Rules:     rules,
	}
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, cfg.serviceConfig())
	})
}
