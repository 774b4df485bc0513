package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"heckel.io/mentionbot/cmd"
	"heckel.io/mentionbot/util"
	"log"
	"os"
)

var version = "dev"

func main() {
	// Values from a .env file never override the environment
	if util.FileExists(".env") {
		if err := godotenv.Load(); err != nil {
			log.Printf("Cannot load .env file: %s", err.Error())
		}
	}
	app := cmd.New()
	app.Version = version
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
