package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List stored users",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := appCtx.Users.ListUsers()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(ids) == 0 {
				msg, err := appCtx.Text.Get("user.list.empty", filepath.Join(appCtx.Config.Home, "users"))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, msg)
				return nil
			}
			for _, id := range ids {
				rec, err := appCtx.Users.LoadUser(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\tpartner=%s\thost=%s\tbank=%s\n",
					rec.UserID, rec.Name, rec.PartnerID, rec.Bank.HostID, rec.Bank.Name)
			}
			return nil
		},
	}
}
