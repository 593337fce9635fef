// Package service wires protocol transport to domain services.
package service
