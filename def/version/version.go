// Package version defines the current mutebase64 version number.
package version

// Number is the current mutebase64 version number.
// We use semantic versioning (http://semver.org/).
const Number = "0.1.0"
