package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"orghub/pkg/db"
	"orghub/pkg/server/store"
	storegorm "orghub/pkg/server/store/gorm"
)

// orgDeleteCmd represents the org delete command
var orgDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete an organization",
	Long: `Soft-delete an organization and drop its data partition.

Unlike DELETE /org/delete this is an operator command and requires no
session token.

Example:
  orgctl org delete "Acme Corp"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		orgs := storegorm.NewOrgsStore(database)
		partitions := storegorm.NewPartitionsStore(database)

		org, err := orgs.FindByName(name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "Organization '%s' not found\n", name)
			} else {
				fmt.Fprintf(os.Stderr, "Failed to resolve organization: %v\n", err)
			}
			os.Exit(1)
		}

		if err := orgs.MarkDeleted(org.ID, time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete organization: %v\n", err)
			os.Exit(1)
		}

		if err := partitions.Drop(org.PartitionID); err != nil {
			fmt.Fprintf(os.Stderr, "Organization deleted but partition drop failed: %v\n", err)
			fmt.Fprintf(os.Stderr, "Partition %s needs manual cleanup\n", org.PartitionID)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Deleted organization '%s' and dropped partition %s\n", org.Name, org.PartitionID)
	},
}

func init() {
	orgCmd.AddCommand(orgDeleteCmd)
}
