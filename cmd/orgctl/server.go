package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"orghub/pkg/config"
	"orghub/pkg/db"
	"orghub/pkg/lifecycle"
	"orghub/pkg/server"
	"orghub/pkg/server/endpoints"
	storegorm "orghub/pkg/server/store/gorm"
	"orghub/pkg/token"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the orghub application server",
	Long: `Run the orghub application server

To run the server requires the environment variables ORGHUB_TOKEN_SECRET and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		secret, ok := os.LookupEnv("ORGHUB_TOKEN_SECRET")
		if !ok || secret == "" {
			fmt.Fprintln(os.Stderr, "ORGHUB_TOKEN_SECRET environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		issuer, err := token.NewIssuer([]byte(secret), cfg.TokenAlgorithm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to initiate token issuer: %v\n", err)
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
			issuer,
		)

		// Pick up config file edits without a restart. Token algorithm
		// changes still need a restart since the issuer is built once.
		go func() {
			if err := config.Watch(nil, func(c *config.Config) {
				log.Printf("Configuration reloaded from %s\n", c.ConfigFilePath())
			}); err != nil {
				log.Printf("Config watch stopped: %v\n", err)
			}
		}()

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(orchestrator, issuer, database, host, port)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
