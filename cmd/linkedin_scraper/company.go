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

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Scrape a company page into JSON",
	Long: "Scrape a LinkedIn company page: the about grid, showcase and " +
		"affiliated pages, and optionally the paginated employee and " +
		"follower lists (bounded by --max-pages).",
	RunE: runCompany,
}

var (
	companyURL    string
	companyFields string
	companyCookie string
	companyConfig string
	companyOutput string
	maxPages      int
)

func init() {
	companyCmd.Flags().StringVarP(&companyURL, "url", "u", "", "Company page URL (required)")
	companyCmd.Flags().StringVar(&companyFields, "fields", "", "Comma-separated field selection (default: minimal)")
	companyCmd.Flags().StringVar(&companyCookie, "cookie", "", "li_at session cookie (or set "+config.CookieEnvVar+")")
	companyCmd.Flags().StringVar(&companyConfig, "config", "", "Path to JSON config file")
	companyCmd.Flags().StringVarP(&companyOutput, "out", "o", "", "Output file path (default: stdout)")
	companyCmd.Flags().IntVar(&maxPages, "max-pages", 0, "Employee and follower result pages to walk (0 skips both)")

	rootCmd.AddCommand(companyCmd)
}

func runCompany(cmd *cobra.Command, args []string) error {
	if companyURL == "" {
		return fmt.Errorf("--url is required")
	}

	fields, err := config.ParseCompanyFields(companyFields)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(companyConfig, companyCookie, companyOutput)
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

	company, err := sess.ScrapeCompany(ctx, companyURL, fields, cfg.MaxPages)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(company, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal company: %w", err)
	}

	if err := writeResult(cfg.Output, data); err != nil {
		return err
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/company.schema.json"); schemaPath != "" {
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
		observability.NewPrinter(os.Stderr).PrintCompanySummary(company)
	}
	return nil
}
