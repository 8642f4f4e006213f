// Package branding holds the product names shown to users and MCP clients.
package branding

// AppName is the user-facing product name.
const AppName = "Cortex Dice"
