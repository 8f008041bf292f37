package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orghub/pkg/db"
	"orghub/pkg/lifecycle"
	storegorm "orghub/pkg/server/store/gorm"
)

// orgCreateCmd represents the org create command
var orgCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an organization",
	Long: `Create an organization with its admin credential and data partition.

This runs the same workflow as POST /org/create: the admin credential is
created, the organization registered, and an empty partition materialized.

Example:
  orgctl org create "Acme Corp" --email admin@acme.example --password secret1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			fmt.Fprintln(os.Stderr, "--email and --password are required")
			os.Exit(1)
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		orchestrator := lifecycle.NewOrchestrator(
			storegorm.NewOrgsStore(database),
			storegorm.NewAdminsStore(database),
			storegorm.NewPartitionsStore(database),
			nil, // no tokens issued here
		)

		org, err := orchestrator.CreateOrganization(name, email, password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create organization: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created organization '%s'\n", org.Name)
		fmt.Printf("Organization ID: %s\n", org.ID)
		fmt.Printf("Partition: %s\n", org.PartitionID)
	},
}

func init() {
	orgCmd.AddCommand(orgCreateCmd)
	orgCreateCmd.Flags().StringP("email", "e", "", "Admin email")
	orgCreateCmd.Flags().StringP("password", "w", "", "Admin password")
}
