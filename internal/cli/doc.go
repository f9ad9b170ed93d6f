// Package cli holds the flag and output plumbing shared by the libcc
// command line tools.
package cli
