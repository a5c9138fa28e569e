// Package model defines the data structures shared by the extractors, the
// question generator and the CLI.
package model

// Path represents a file system path.
type Path string

// Sample is a code file discovered in a samples directory. Algorithm is the
// name of the folder that groups implementations of the same algorithm.
type Sample struct {
	Path      Path
	Algorithm string
	Language  Language
}
