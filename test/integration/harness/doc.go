// Package harness runs the compiled shellbridge binary against an isolated home.
//
// Environment variables managed:
//   - SHELLBRIDGE_HOME: temp directory per test
//   - SHELLBRIDGE_*: cleared so the developer's own tuning does not leak in
//   - USER: fixed, profiles default their user name from it
package harness
