// Package config manages user-level defaults stored at
// ~/.create-program/config.yaml. Values there, or in CREATE_PROGRAM_*
// environment variables, stand in for command-line flags the user did not
// pass: the test runner, quiet mode, and the log level.
package config
