// Package utils holds small formatting helpers shared by the formatter and
// the CLI.
package utils
