// Package main is the entry point for the codeqg CLI.
package main

import "github.com/jalshboul/template-based-question-generation/cmd"

func main() {
	cmd.Execute()
}
