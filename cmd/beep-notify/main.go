// beep-notify - notificator's beep command as its own program
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/notificator

package main

import (
	"os"

	"github.com/ariel-frischer/notificator/internal/cli"
)

func main() {
	if err := cli.ExecuteStandalone("beep-notify"); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
