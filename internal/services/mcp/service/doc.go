// Package service wires MCP transports to the challenge tool handlers.
//
// It knows how to run MCP over stdio or streamable HTTP and delegates the
// meaning of every tool to the domain package.
package service
