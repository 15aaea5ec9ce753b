// Command papicli makes ad-hoc calls against a Polaris deployment with the
// credentials from the environment (POLARIS_HOST, POLARIS_ACCESS_KEY,
// POLARIS_ACCESS_KEY_ID). It prints the raw JSON response; interpreting the
// status code is left to the caller, as with the library itself.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/DarienLibrary/PolarisAPI/internal/config"
	"github.com/DarienLibrary/PolarisAPI/papi"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	client, err := papi.New(papi.Config{
		Host:        cfg.Polaris.Host,
		AccessKey:   cfg.Polaris.AccessKey,
		AccessKeyID: cfg.Polaris.AccessKeyID,
		Defaults: papi.Defaults{
			Version:        cfg.Defaults.Version,
			LanguageID:     cfg.Defaults.LanguageID,
			ApplicationID:  cfg.Defaults.ApplicationID,
			OrganizationID: cfg.Defaults.OrganizationID,
		},
	}, papi.NewHTTPTransport(cfg.HTTP.Timeout, logger), logger)
	if err != nil {
		logger.Fatal("client construction failed", zap.Error(err))
	}

	resp, err := run(context.Background(), client, os.Args[1:])
	if err != nil {
		logger.Fatal("call failed", zap.Error(err))
	}

	fmt.Printf("%d\n%s\n", resp.StatusCode, resp.Body)
}

func run(ctx context.Context, client *papi.Client, args []string) (*papi.Response, error) {
	if len(args) == 0 {
		return nil, usageError()
	}
	switch args[0] {
	case "bib-get":
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: papicli bib-get <bibID>")
		}
		return client.BibGet(ctx, args[1], nil)
	case "bib-search":
		if len(args) != 3 {
			return nil, fmt.Errorf("usage: papicli bib-search <qualifier> <query>")
		}
		return client.BibSearch(ctx, args[1], map[string]string{"q": args[2]}, nil)
	case "patron-validate":
		if len(args) != 3 {
			return nil, fmt.Errorf("usage: papicli patron-validate <barcode> <password>")
		}
		return client.PatronValidate(ctx, args[1], args[2], nil)
	case "organizations":
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: papicli organizations <tier>")
		}
		return client.OrganizationsGet(ctx, args[1], nil)
	case "staff-auth":
		if len(args) != 4 {
			return nil, fmt.Errorf("usage: papicli staff-auth <domain> <username> <password>")
		}
		return client.AuthenticateStaffUser(ctx, args[1], args[2], args[3], nil)
	default:
		return nil, usageError()
	}
}

func usageError() error {
	return fmt.Errorf("usage: papicli <bib-get|bib-search|patron-validate|organizations|staff-auth> [args]")
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.Encoding == "console" {
		zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zapCfg.Build()
}
