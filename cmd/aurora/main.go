package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

const version = "v0.1.0"

type command struct {
	Globals

	Version       kong.VersionFlag `help:"Print version and exit."`
	Serve         ServeCmd         `cmd:"" default:"1" help:"Run the web server."`
	ResetPassword ResetPasswordCmd `cmd:"" name:"reset-password" help:"Set a new password for an account."`
}

func main() {
	cli := command{}
	ctx := kong.Parse(&cli,
		kong.Name("aurora"),
		kong.Description("Wellness companion: habits, diary, daily tasks and an AI coach."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(&cli.Globals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
