package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-scraper/internal/config"
	"github.com/jonathan/linkedin-scraper/internal/observability"
	"github.com/jonathan/linkedin-scraper/internal/schemas"
	"github.com/jonathan/linkedin-scraper/internal/session"
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Scrape a person profile into JSON",
	Long: "Scrape a LinkedIn person profile. Selects which sections to visit " +
		"via --fields (basic, experience, education, interests, accomplishments, " +
		"contacts, or the presets minimal/career/all) and emits the profile as JSON.",
	RunE: runPerson,
}

var (
	personURL    string
	personFields string
	personCookie string
	personConfig string
	personOutput string
)

func init() {
	personCmd.Flags().StringVarP(&personURL, "url", "u", "", "Profile URL (required)")
	personCmd.Flags().StringVar(&personFields, "fields", "", "Comma-separated field selection (default: minimal)")
	personCmd.Flags().StringVar(&personCookie, "cookie", "", "li_at session cookie (or set "+config.CookieEnvVar+")")
	personCmd.Flags().StringVar(&personConfig, "config", "", "Path to JSON config file")
	personCmd.Flags().StringVarP(&personOutput, "out", "o", "", "Output file path (default: stdout)")

	rootCmd.AddCommand(personCmd)
}

func runPerson(cmd *cobra.Command, args []string) error {
	if personURL == "" {
		return fmt.Errorf("--url is required")
	}

	fields, err := config.ParsePersonFields(personFields)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(personConfig, personCookie, personOutput)
	if err != nil {
		return err
	}

	ctx := context.Background()
	sess, err := session.Start(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer sess.Close()

	if err := sess.Login(ctx, cfg.Cookie); err != nil {
		return err
	}

	person, err := sess.ScrapePerson(ctx, personURL, fields)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(person, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := writeResult(cfg.Output, data); err != nil {
		return err
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/person.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				fmt.Fprintf(os.Stderr, "Warning: output failed schema validation:\n%v", validationErr)
			} else {
				fmt.Fprintf(os.Stderr, "Warning: schema validation unavailable: %v\n", err)
			}
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintPersonSummary(person)
	}
	return nil
}

// resolveConfig merges the optional config file, environment, and flag
// overrides into the effective configuration. Flags win over the file.
func resolveConfig(configPath, cookie, output string) (*config.Config, error) {
	overrides := config.Config{
		Cookie:   cookie,
		Headless: headless,
		Verbose:  verbose,
		Output:   output,
		MaxPages: maxPages,
	}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		overrides = overrides.MergeWithDefaults(*fileCfg)
	}

	overrides.LoadEnv()
	if err := overrides.Validate(); err != nil {
		return nil, err
	}
	if overrides.Cookie == "" {
		return nil, fmt.Errorf("no session cookie: pass --cookie, set %s, or add it to the config file", config.CookieEnvVar)
	}
	return &overrides, nil
}

// writeResult writes data to path, or to stdout when path is empty.
func writeResult(path string, data []byte) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}
