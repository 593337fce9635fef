// Package domain translates MCP tool calls and resource reads into showcase
// operations.
//
// Handlers share the same Showcase state object as the web service, so a fan
// art entry submitted through a tool is visible to the next page render.
package domain
