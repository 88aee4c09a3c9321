package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"reactlint/internal/config"
	"reactlint/internal/git"
	"reactlint/internal/runner"
	"reactlint/internal/rules"
	"reactlint/internal/storage"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "reactlint",
		Short: "React component linter for JavaScript/JSX projects",
	}
	dbPath     string
	configPath string
	jsonOut    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Default DB path is local to the project
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the local result cache (SQLite); overrides config")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "reactlint.yaml", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&jsonOut, "json", "", "Write a JSON report to the given path")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(checkCmd)
}

func initSetup() (*config.Config, storage.ResultStore, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.Cache.Path
	if dbPath != "" {
		path = dbPath
	}
	if path == "" {
		// Caching disabled; lint everything fresh.
		return cfg, nil, nil
	}

	store, err := storage.NewSQLiteStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return cfg, store, nil
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Lint every JS/JSX file under the given path",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, store, err := initSetup()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		if store != nil {
			defer store.Close()
		}

		root := cfg.Project.Root
		if len(args) > 0 {
			root = args[0]
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			log.Fatalf("Failed to resolve path: %v", err)
		}

		fmt.Printf("📂 Scanning directory: %s\n", absRoot)
		start := time.Now()

		r := runner.New(cfg, store)
		rep, err := r.LintProject(context.Background(), absRoot)
		if err != nil {
			log.Fatalf("Lint failed: %v", err)
		}

		fmt.Printf("✅ Linted %d files in %v.\n\n", rep.Files, time.Since(start))
		rep.WriteText(os.Stdout)

		if jsonOut != "" {
			if err := rep.SaveJSON(jsonOut); err != nil {
				log.Fatalf("Failed to write JSON report: %v", err)
			}
			fmt.Printf("💾 Report written to %s\n", jsonOut)
		}

		if len(rep.Violations) > 0 {
			os.Exit(1)
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [base-ref]",
	Short: "Lint only the files changed since a git ref, reporting changed lines",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		baseRef := "HEAD"
		if len(args) > 0 {
			baseRef = args[0]
		}

		cfg, store, err := initSetup()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		if store != nil {
			defer store.Close()
		}

		changes, err := git.GetChangedFiles(cfg.Project.Root, baseRef)
		if err != nil {
			log.Fatalf("Failed to get git changes: %v", err)
		}
		if len(changes) == 0 {
			fmt.Println("✅ No changes detected.")
			return
		}

		fmt.Printf("📝 Detected %d changed files.\n", len(changes))

		ctx := context.Background()
		r := runner.New(cfg, store)

		var violations []rules.Violation
		components := 0
		linted := 0

		for _, change := range changes {
			path := filepath.Join(cfg.Project.Root, change.Path)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				continue // deleted in the working tree
			}

			res, err := r.LintFile(ctx, path)
			if err != nil {
				log.Printf("⚠️ Failed to lint %s: %v", change.Path, err)
				continue
			}
			linted++
			components += res.Components

			// Only findings on touched lines are the change's fault.
			for _, v := range res.Violations {
				if change.ContainsLine(v.Line) {
					violations = append(violations, v)
				}
			}
		}

		rules.Sort(violations)
		fmt.Printf("📊 %d files linted, %d components seen.\n", linted, components)
		for _, v := range violations {
			fmt.Printf("%s:%d: %s (%s)\n", v.File, v.Line, v.Message, v.RuleID)
		}

		if len(violations) > 0 {
			os.Exit(1)
		}
		fmt.Println("✅ No violations on changed lines.")
	},
}
