// Package branding holds the product name shared by every binary.
package branding

// AppName is the user-facing product name.
const AppName = "Mythic Nexus"
