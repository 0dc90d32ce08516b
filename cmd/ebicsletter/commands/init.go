package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ebicsletter/internal/domain"
)

func initCmd() *cobra.Command {
	var (
		rec             domain.UserRecord
		userID          string
		useCertificates bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a user, generate its keys and write its initialization letters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			rec.UserID = domain.UserID(userID)
			rec.Bank.UseCertificates = useCertificates

			created, paths, err := appCtx.Users.CreateUser(rec, passphrase)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "User %s created for partner %s at %s.\n", created.UserID, created.PartnerID, created.Bank.HostID)
			for _, p := range paths {
				fmt.Fprintf(out, "Letter: %s\n", p)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&userID, "user", "", "EBICS user ID as issued by the bank")
	f.StringVar(&rec.Name, "name", "", "user name printed in the letters")
	f.StringVar(&rec.Email, "email", "", "user email")
	f.StringVar(&rec.Country, "country", "", "ISO country code for the certificates")
	f.StringVar(&rec.Organization, "organization", "", "organization for the certificates")
	f.StringVar(&rec.PartnerID, "partner", "", "EBICS partner ID")
	f.StringVar(&rec.Bank.HostID, "host", "", "EBICS host ID of the bank")
	f.StringVar(&rec.Bank.Name, "bank", "", "bank name printed in the letters")
	f.StringVar(&rec.Bank.URL, "url", "", "EBICS URL of the bank")
	f.BoolVar(&useCertificates, "certificates", false, "bank expects certificates in every letter")
	for _, name := range []string{"user", "name", "partner", "host", "bank"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
