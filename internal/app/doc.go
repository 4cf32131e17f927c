// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the execution lifecycle, decoupled from any
// specific entrypoint like a CLI. An App either runs one interactive session
// or serves the calculator over HTTP.
package app
