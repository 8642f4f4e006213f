package service

import (
	"fmt"

	"github.com/louisbranch/cortex-dice/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerCortexTools(server *mcp.Server, roller domain.Roller, settings domain.Settings) error {
	if err := registerTool(server, domain.CortexRollTool(), domain.CortexRollHandler(roller, settings)); err != nil {
		return err
	}
	if err := registerTool(server, domain.CortexParseTool(), domain.CortexParseHandler(settings)); err != nil {
		return err
	}
	if err := registerTool(server, domain.CortexRulesTool(), domain.CortexRulesHandler(settings)); err != nil {
		return err
	}
	return nil
}

// registerTool adds a typed tool handler; mcp.AddTool infers both schemas
// from I and O.
func registerTool[I any, O any](server *mcp.Server, tool *mcp.Tool, handler mcp.ToolHandlerFor[I, O]) error {
	if server == nil {
		return fmt.Errorf("mcp server is nil")
	}
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	mcp.AddTool(server, tool, handler)
	return nil
}
