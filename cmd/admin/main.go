package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/recircle/twin-ledger/internal/config"
	"github.com/recircle/twin-ledger/internal/domain"
	"github.com/recircle/twin-ledger/internal/ledger"
	"github.com/recircle/twin-ledger/internal/logger"
	"github.com/recircle/twin-ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: admin [flags] <command> [args]

Commands:
  grant-role <role> <address>    Grant a role (minter, brand) to an address
  revoke-role <role> <address>   Remove a role grant
  has-role <role> <address>      Check whether an address holds a role
  balance <address>              Show the reward balance of an address
  supply                         Show the cumulative minted reward amount
  twin <token_id>                Show a twin and its lifecycle history

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	config.ChdirRepoRoot()
	cfg, err := config.LoadAdminConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "admin",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)

	// The admin path never publishes events and issues no rewards itself, so
	// the coordinator runs without a publisher
	coordinator := ledger.NewCoordinator(dataStore, nil, 1)
	defer coordinator.Close()

	if err := run(ctx, coordinator, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, coordinator ledger.Coordinator, args []string) error {
	command := args[0]
	args = args[1:]

	switch command {
	case "grant-role":
		if len(args) != 2 {
			return fmt.Errorf("grant-role requires <role> <address>")
		}
		if err := coordinator.GrantRole(ctx, domain.Role(args[0]), args[1]); err != nil {
			return err
		}
		fmt.Printf("Granted role %q to %s\n", args[0], domain.NormalizeAddress(args[1]))
		return nil

	case "revoke-role":
		if len(args) != 2 {
			return fmt.Errorf("revoke-role requires <role> <address>")
		}
		if err := coordinator.RevokeRole(ctx, domain.Role(args[0]), args[1]); err != nil {
			return err
		}
		fmt.Printf("Revoked role %q from %s\n", args[0], domain.NormalizeAddress(args[1]))
		return nil

	case "has-role":
		if len(args) != 2 {
			return fmt.Errorf("has-role requires <role> <address>")
		}
		hasRole, err := coordinator.HasRole(ctx, domain.Role(args[0]), args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%t\n", hasRole)
		return nil

	case "balance":
		if len(args) != 1 {
			return fmt.Errorf("balance requires <address>")
		}
		balance, err := coordinator.BalanceOf(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", balance)
		return nil

	case "supply":
		supply, err := coordinator.TotalSupply(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", supply)
		return nil

	case "twin":
		if len(args) != 1 {
			return fmt.Errorf("twin requires <token_id>")
		}
		tokenID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid token id %q", args[0])
		}
		twin, err := coordinator.GetTwin(ctx, tokenID)
		if err != nil {
			return err
		}
		fmt.Printf("Token ID:     %d\n", twin.ID)
		fmt.Printf("Owner:        %s\n", twin.OwnerAddress)
		fmt.Printf("Metadata URI: %s\n", twin.MetadataURI)
		fmt.Printf("Retired:      %t\n", twin.Retired)

		events, err := coordinator.GetHistory(ctx, tokenID)
		if err != nil {
			return err
		}
		fmt.Println("History:")
		for _, event := range events {
			fmt.Printf("  %s  %-8s  %s\n", event.Timestamp.Format(time.RFC3339), event.Description, event.Actor)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
