// Package cli provides the command-line interface of numwords. It wires
// cobra commands to the conversion engine and resolves settings from a
// YAML file, NUMWORDS_* environment variables and flags using viper.
package cli
