package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/notificator/internal/build"
	"github.com/ariel-frischer/notificator/internal/notify"
)

// standaloneCommands maps each single-purpose program name to its command
var standaloneCommands = map[string]func(...notify.Option) *cobra.Command{
	"beep-notify":    newBeepCmd,
	"desktop-notify": newDesktopCmd,
	"center-notify":  newDesktopCmd,
	"slack-notify":   newSlackCmd,
	"discord-notify": newDiscordCmd,
	"line-notify":    newLineCmd,
}

// StandaloneNames returns the supported standalone program names, sorted
func StandaloneNames() []string {
	names := make([]string, 0, len(standaloneCommands))
	for name := range standaloneCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newStandaloneCmd turns the subcommand behind name into a root command of
// its own, so `slack-notify -m hi` behaves like `notificator slack -m hi`.
func newStandaloneCmd(name string, opts ...notify.Option) (*cobra.Command, error) {
	newCmd, ok := standaloneCommands[name]
	if !ok {
		return nil, fmt.Errorf("unknown standalone command %q (want one of %s)",
			name, strings.Join(StandaloneNames(), ", "))
	}

	cmd := newCmd(opts...)
	if i := strings.IndexByte(cmd.Use, ' '); i >= 0 {
		cmd.Use = name + cmd.Use[i:]
	} else {
		cmd.Use = name
	}
	cmd.Aliases = nil
	cmd.Version = build.Version
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	addGlobalFlags(cmd)
	cmd.SetFlagErrorFunc(flagError)
	return cmd, nil
}

// ExecuteStandalone runs the single-purpose program called name against os.Args
func ExecuteStandalone(name string) error {
	cmd, err := newStandaloneCmd(name)
	if err != nil {
		return err
	}
	return run(cmd, os.Args[1:])
}
