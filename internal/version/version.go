// Package version contains the vkbind version.
package version

// Version is the version of vkbind.
const Version = "0.1.0"
