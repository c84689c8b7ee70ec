// Package render formats closure results and simulation traces for people
// (plain text) and for tools (JSON).
package render
