package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/brightofhouse/site/internal/auth"
	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for ADMIN_PASS",
	Long: `Print a bcrypt hash of the admin password. ADMIN_PASS accepts either the
plain password or this hash.

Without an argument the password is read from the first line of stdin, which
keeps it out of shell history:

  printf '%s' "$PASS" | sitectl hash-password`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHashPassword,
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("no password given")
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printer.Result(map[string]string{"hash": hash})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
	return err
}
