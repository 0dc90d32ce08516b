package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ebicsletter/internal/app"
)

var (
	home       string
	passphrase string
	locale     string
	appCtx     *app.App
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	home, passphrase, locale, appCtx = "", "", "", nil

	root := &cobra.Command{
		Use:          "ebicsletter",
		Short:        "Create EBICS users and their key initialization letters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".ebicsletter")
			}

			a, err := app.Open(home, cmd.ErrOrStderr(), func(c *app.Config) {
				if locale != "" {
					c.Locale = locale
				}
			})
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.ebicsletter)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the key store")
	root.PersistentFlags().StringVar(&locale, "locale", "", "letter and message language, e.g. de-CH (default from config)")

	root.AddCommand(initCmd(), lettersCmd(), fingerprintCmd(), showCmd())
	return root
}
