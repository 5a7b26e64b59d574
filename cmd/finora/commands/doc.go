// Package commands defines the finora CLI.
//
// Commands
//
//   - serve         Run the HTTP API
//   - migrate       Apply or roll back schema migrations
//   - returns       Compute a returns report from a trades CSV
//   - monitor       Check an advisor's active recommendations against live quotes
//   - send-reports  Email performance reports to an advisor's clients
//
// Commands that touch the database or external providers load secrets the
// same way the API does, from the file selected by FINORA_ENV.
package commands
