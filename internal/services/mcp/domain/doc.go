// Package domain translates MCP tool calls into challenge service operations.
//
// Inputs arrive as loosely typed JSON: method names are parsed here, seeds
// are drawn when a generate call omits one, and service errors are mapped to
// structured results where the caller can act on them.
package domain
