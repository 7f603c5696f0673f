package autocomplete

import (
	"fmt"

	"github.com/spf13/cobra"
)

const longHelpTemplate = `To load completions:

Bash:
  $ source <(%[1]s completion bash)

  To load completions for each session, execute once:
  $ %[1]s completion bash > /etc/bash_completion.d/%[1]s

Zsh:
  $ %[1]s completion zsh > "${fpath[1]}/_%[1]s"

  You will need to start a new shell for this setup to take effect.

Fish:
  $ %[1]s completion fish | source

  To load completions for each session, execute once:
  $ %[1]s completion fish > ~/.config/fish/completions/%[1]s.fish
`

// Command returns cobra command structure for autocomplete routine.
func Command(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long:  fmt.Sprintf(longHelpTemplate, name),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				_ = cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				_ = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				_ = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				_ = cmd.Root().GenPowerShellCompletion(cmd.OutOrStdout())
			}
		},
	}
}
