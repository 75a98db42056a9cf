package main

import (
	"github.com/joho/godotenv"

	"github.com/CalebHellmund/calebhellmund.github.io/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
