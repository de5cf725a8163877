// Package commands defines the telebridge CLI.
//
// Commands
//
//   - serve    Run the bridge between nodes and a push gateway
//   - keygen   Generate an X25519 identity and print its public key
//   - probe    Check a running bridge the way a node would
//
// # Configuration
//
// Every serve flag defaults to a TELEBRIDGE_* environment variable (see
// app.DefaultConfig), so the bridge can run from a unit file or container
// without arguments. Flags win over the environment.
package commands
