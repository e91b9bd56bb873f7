package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"viaduct/internal/domain"
)

func chainCmd() *cobra.Command {
	var clientID, serverID int

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Boot mapping data and print the translation chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clientID == 0 || serverID == 0 {
				return fmt.Errorf("client and server versions required (--client, --server)")
			}

			client := findVersion(clientID)
			server := findVersion(serverID)

			if err := wireCtx.Manager.Boot(); err != nil {
				return err
			}
			path, err := wireCtx.Manager.ProtocolPath(client, server)
			if err != nil {
				return err
			}

			if len(path) == 0 {
				fmt.Printf("%s speaks %s natively; no translation needed.\n", client, server)
				return nil
			}
			fmt.Printf("Translation chain %s -> %s:\n", client, server)
			for _, step := range path {
				state := "skipped"
				if step.IsRegistered() {
					state = "active"
				}
				fmt.Printf("  %-24s %s -> %s [%s]\n", step.ID(), step.ClientVersion(), step.ServerVersion(), state)
			}
			fmt.Printf("Shared tables filled: %d\n", wireCtx.Shared.Len())
			return nil
		},
	}

	cmd.Flags().IntVar(&clientID, "client", 0, "client protocol version id")
	cmd.Flags().IntVar(&serverID, "server", 0, "server protocol version id")
	return cmd
}

// findVersion resolves a numeric id against the engine's known versions,
// falling back to an unnamed version for ids outside the definition.
func findVersion(id int) domain.ProtocolVersion {
	for _, v := range wireCtx.Manager.Versions() {
		if v.ID() == id {
			return v
		}
	}
	return domain.NewVersion(id, "")
}
