package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/zeu5/gridworld/benchmarks"
)

// main entry point to all the commands
func main() {
	// a missing .env file is fine, the flags have defaults
	_ = godotenv.Load()

	rootCommand := benchmarks.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
