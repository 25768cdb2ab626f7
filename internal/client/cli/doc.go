// Package cli provides the interactive command-line front end.
//
// It wires configuration, the local database and the AuthService, then runs
// a read-eval-print loop that stands in for the login, signup and home
// screens. On start the persisted session is restored: a returning user
// lands on the home view, everyone else is asked to log in or sign up.
//
// Commands:
//   - login, signup (register): prompt for credentials
//   - profile (home): show the logged-in user
//   - logout
//   - help, exit | quit
//
// Results are reported as toasts (see package notify).
package cli
