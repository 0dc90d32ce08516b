package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ebicsletter/internal/domain"
)

func fingerprintCmd() *cobra.Command {
	var (
		userID string
		certs  bool
	)
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the key fingerprints as they appear in the letters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id := domain.UserID(userID)
			use, err := useCertificates(cmd, certs, id)
			if err != nil {
				return err
			}
			fps, err := appCtx.Letters.Fingerprints(id, passphrase, use)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, fp := range fps {
				fmt.Fprintf(out, "%s (%s):\n", fp.Version, fp.Fingerprint.Algorithm)
				for _, line := range strings.Split(strings.TrimRight(fp.Text, "\r\n"), "\n") {
					fmt.Fprintf(out, "  %s\n", strings.TrimRight(line, "\r "))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "EBICS user ID")
	cmd.Flags().BoolVar(&certs, "certificates", false, "fingerprint certificates instead of raw keys (default from the bank record)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
