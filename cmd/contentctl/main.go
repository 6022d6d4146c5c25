package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"showcase/internal/errors"
)

// Supported subcommands:
// - migrate-db:       Apply pending schema migrations
// - load:             Overwrite every content block with its default
// - migrate-language: Assign the default language to legacy records
// - duplicate:        Copy records into a language that lacks them
// - seed-admin:       Create an administrator account

func main() {
	migrateDBCmd := flag.NewFlagSet("migrate-db", flag.ExitOnError)
	loadCmd := flag.NewFlagSet("load", flag.ExitOnError)
	migrateLanguageCmd := flag.NewFlagSet("migrate-language", flag.ExitOnError)
	duplicateCmd := flag.NewFlagSet("duplicate", flag.ExitOnError)
	seedAdminCmd := flag.NewFlagSet("seed-admin", flag.ExitOnError)

	// duplicate parameters
	duplicateFrom := duplicateCmd.String("from", "EN", "Source language")
	duplicateTo := duplicateCmd.String("to", "AR", "Target language")

	// seed-admin parameters
	seedName := seedAdminCmd.String("name", "Administrator", "Display name")
	seedEmail := seedAdminCmd.String("email", "", "Login e-mail")
	seedPassword := seedAdminCmd.String("password", "", "Login password (falls back to $ADMIN_PASSWORD)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := ctlFlags{
		MigrateDB:       migrateDBCmd,
		Load:            loadCmd,
		MigrateLanguage: migrateLanguageCmd,
		Duplicate: duplicateFlags{
			cmd:  duplicateCmd,
			from: duplicateFrom,
			to:   duplicateTo,
		},
		SeedAdmin: seedAdminFlags{
			cmd:      seedAdminCmd,
			name:     seedName,
			email:    seedEmail,
			password: seedPassword,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	MigrateDB       *flag.FlagSet
	Load            *flag.FlagSet
	MigrateLanguage *flag.FlagSet
	Duplicate       duplicateFlags
	SeedAdmin       seedAdminFlags
}

type duplicateFlags struct {
	cmd  *flag.FlagSet
	from *string
	to   *string
}

type seedAdminFlags struct {
	cmd      *flag.FlagSet
	name     *string
	email    *string
	password *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "migrate-db":
		if err := flags.MigrateDB.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse migrate-db flags")
		}

		return runMigrateDB(ctx)
	case "load":
		if err := flags.Load.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse load flags")
		}

		return runLoad(ctx)
	case "migrate-language":
		if err := flags.MigrateLanguage.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse migrate-language flags")
		}

		return runMigrateLanguage(ctx)
	case "duplicate":
		return handleDuplicate(ctx, flags)
	case "seed-admin":
		return handleSeedAdmin(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleDuplicate(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Duplicate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse duplicate flags")
	}

	return runDuplicate(ctx, *flags.Duplicate.from, *flags.Duplicate.to)
}

func handleSeedAdmin(ctx context.Context, flags *ctlFlags) error {
	if err := flags.SeedAdmin.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse seed-admin flags")
	}

	password := *flags.SeedAdmin.password
	if password == "" {
		password = os.Getenv("ADMIN_PASSWORD")
	}

	if *flags.SeedAdmin.email == "" || password == "" {
		return errors.New("--email and --password (or $ADMIN_PASSWORD) are required for seed-admin")
	}

	return runSeedAdmin(ctx, *flags.SeedAdmin.name, *flags.SeedAdmin.email, password)
}

func printUsage() {
	fmt.Println("Usage: contentctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate-db        Apply pending schema migrations")
	fmt.Println("  load              Overwrite every content block with its default")
	fmt.Println("  migrate-language  Assign the default language to legacy records")
	fmt.Println("  duplicate         Copy records into a language that lacks them")
	fmt.Println("  seed-admin        Create an administrator account")
	fmt.Println("")
	fmt.Println("Use 'contentctl <command> -h' for more information about a command.")
}
