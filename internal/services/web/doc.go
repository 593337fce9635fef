// Package web owns the browser-facing character showcase.
//
// It composes the showcase, JSON API and health modules behind one root
// handler. Every page is plain HTML first; HTMX requests receive only the
// fragment they swap.
package web
