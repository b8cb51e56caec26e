// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle: load the
// configuration, read the four tables, build the query engine, answer one
// query and optionally keep the health and metrics server running. It is
// decoupled from any specific entrypoint like a CLI.
package app
