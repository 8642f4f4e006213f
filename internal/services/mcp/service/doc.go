// Package service wires the MCP protocol transport to the Cortex tools.
//
// It is the transport adapter layer: it knows how to run MCP over stdio and
// delegates roll semantics to the domain handlers.
package service
