// Package domain translates MCP tool calls into Cortex dice operations.
//
// Each tool has a schema constructor, typed input and output structs, and a
// handler that maps the call onto the roll service and renders the result as
// both structured output and chat text.
package domain
