package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orghub/pkg/config"
	"orghub/pkg/db"
	storegorm "orghub/pkg/server/store/gorm"
)

// orgListCmd represents the org list command
var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations",
	Long: `List non-deleted organizations with their partitions.

With --partitions the materialized partitions are listed instead, including
any left behind by interrupted deletes or renames.

Example:
  orgctl org list
  orgctl org list --partitions`,
	Run: func(cmd *cobra.Command, args []string) {
		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		partitions := storegorm.NewPartitionsStore(database)

		showPartitions, _ := cmd.Flags().GetBool("partitions")
		if showPartitions {
			ids, err := partitions.List()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to list partitions: %v\n", err)
				os.Exit(1)
			}

			fmt.Printf("%-40s %s\n", "PARTITION", "RECORDS")
			for _, id := range ids {
				count, err := partitions.Count(id)
				if err != nil {
					fmt.Printf("%-40s %s\n", id, "?")
					continue
				}
				fmt.Printf("%-40s %d\n", id, count)
			}
			return
		}

		orgs := storegorm.NewOrgsStore(database)
		list, err := orgs.List(config.Get().APIListLimitMax)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list organizations: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%-36s %-30s %-30s %s\n", "ID", "NAME", "PARTITION", "MATERIALIZED")
		for _, org := range list {
			exists, err := partitions.Exists(org.PartitionID)
			materialized := "?"
			if err == nil {
				materialized = fmt.Sprintf("%v", exists)
			}
			fmt.Printf("%-36s %-30s %-30s %s\n", org.ID, org.Name, org.PartitionID, materialized)
		}
	},
}

func init() {
	orgCmd.AddCommand(orgListCmd)
	orgListCmd.Flags().Bool("partitions", false, "list materialized partitions instead of registry records")
}
