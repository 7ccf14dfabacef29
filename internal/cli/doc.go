// Package cli implements the redflag command-line interface.
package cli
