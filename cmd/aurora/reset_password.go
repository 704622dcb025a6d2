package main

import (
	"os"

	"github.com/terraincognita07/aurora/internal/cli"
)

type ResetPasswordCmd struct {
	Email string `arg:"" help:"Account email."`
}

func (cmd *ResetPasswordCmd) Run(globals *Globals) error {
	log, err := globals.logger()
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	database, closeDatabase, err := globals.openDatabase(log)
	if err != nil {
		return err
	}
	defer closeDatabase()

	return cli.RunResetPasswordCommand(database, cmd.Email, cli.TerminalPasswordPrompt(os.Stdin, os.Stdout), os.Stdout)
}
