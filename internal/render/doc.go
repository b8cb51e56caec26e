// Package render writes query results for the command line, either as
// indented JSON or as colored, column-aligned text.
package render
