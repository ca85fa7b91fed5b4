// Package commands defines the moneyfmt CLI.
//
// Commands
//
//   - format      Render an amount with a format specifier
//   - parse       Read a locale-formatted amount
//   - currency    Show one currency by code, number or region
//   - currencies  List the known currencies
//
// # Implementation
//
// The root command loads the configuration, builds the logger and installs
// the locale provider and currency registry before any subcommand runs.
package commands
