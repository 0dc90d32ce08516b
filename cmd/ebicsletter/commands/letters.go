package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ebicsletter/internal/domain"
)

// useCertificates returns the --certificates flag if given, otherwise the
// setting stored with the user's bank.
func useCertificates(cmd *cobra.Command, flag bool, id domain.UserID) (bool, error) {
	if cmd.Flags().Changed("certificates") {
		return flag, nil
	}
	rec, err := appCtx.Users.LoadUser(id)
	if err != nil {
		return false, err
	}
	return rec.Bank.UseCertificates, nil
}

func lettersCmd() *cobra.Command {
	var (
		userID string
		certs  bool
	)
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "Write the A005, E002 and X002 initialization letters of a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id := domain.UserID(userID)
			use, err := useCertificates(cmd, certs, id)
			if err != nil {
				return err
			}
			paths, err := appCtx.Letters.CreateLetters(id, passphrase, use)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Letter: %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "EBICS user ID")
	cmd.Flags().BoolVar(&certs, "certificates", false, "print certificates in every letter (default from the bank record)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
