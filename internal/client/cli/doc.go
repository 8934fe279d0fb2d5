// Package cli implements the interactive Splits client: a read-eval-print
// loop with three screens mirroring the web app's pages.
//
// # Screens
//
//   - sign-in: login, register
//   - dashboard: list, create, open <n>, whoami, logout
//   - group: expenses, balance, settlements, members, addexpense, addmember,
//     removemember, settle <n>, refresh, back
//
// Form input is validated locally before any network call (required fields,
// positive amounts, duplicate members); backend errors are shown inline and
// the current screen stays. A 401 on any call clears the session through the
// transport's expiry handler, and the REPL falls back to the sign-in screen
// on the next prompt.
package cli
