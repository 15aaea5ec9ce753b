package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/DarienLibrary/PolarisAPI/papi"
)

// SmokeTest exercises a live Polaris server end to end: public catalog
// reads, patron validation, and (when staff credentials are supplied)
// protected staff authentication. Run it against a test instance:
//
//	POLARIS_HOST=catalog.example.org \
//	POLARIS_ACCESS_KEY=... POLARIS_ACCESS_KEY_ID=... \
//	go run scripts/smoke-live.go
type SmokeTest struct {
	client *papi.Client
	logger *zap.Logger

	passed int
	failed int
}

func NewSmokeTest() (*SmokeTest, error) {
	logger, _ := zap.NewDevelopment()

	cfg := papi.Config{
		Host:        os.Getenv("POLARIS_HOST"),
		AccessKey:   os.Getenv("POLARIS_ACCESS_KEY"),
		AccessKeyID: os.Getenv("POLARIS_ACCESS_KEY_ID"),
	}

	client, err := papi.New(cfg, papi.NewHTTPTransport(30*time.Second, logger), logger)
	if err != nil {
		return nil, err
	}

	return &SmokeTest{client: client, logger: logger}, nil
}

func (st *SmokeTest) report(name string, resp *papi.Response, err error) {
	if err != nil {
		st.failed++
		st.logger.Error("step failed", zap.String("step", name), zap.Error(err))
		return
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		st.failed++
		st.logger.Error("step rejected",
			zap.String("step", name),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", resp.Body))
		return
	}
	st.passed++

	var pretty map[string]interface{}
	if jerr := json.Unmarshal(resp.Body, &pretty); jerr == nil {
		st.logger.Info("step passed",
			zap.String("step", name),
			zap.Int("status", resp.StatusCode),
			zap.Int("fields", len(pretty)))
	} else {
		st.logger.Info("step passed",
			zap.String("step", name),
			zap.Int("status", resp.StatusCode))
	}
}

func (st *SmokeTest) Run(ctx context.Context) {
	resp, err := st.client.OrganizationsGet(ctx, "all", nil)
	st.report("organizations-get", resp, err)

	resp, err = st.client.SortOptionsGet(ctx, nil)
	st.report("sort-options-get", resp, err)

	resp, err = st.client.BibSearch(ctx, "KW", map[string]string{"q": "dogs"}, nil)
	st.report("bib-search", resp, err)

	resp, err = st.client.HeadingSearch(ctx, "su", map[string]string{
		"startpoint": "history",
		"numterms":   "5",
	}, nil)
	st.report("heading-search", resp, err)

	if bib := os.Getenv("SMOKE_BIB_ID"); bib != "" {
		resp, err = st.client.BibGet(ctx, bib, nil)
		st.report("bib-get", resp, err)

		resp, err = st.client.BibHoldingsGet(ctx, bib, nil)
		st.report("bib-holdings-get", resp, err)
	}

	barcode := os.Getenv("SMOKE_PATRON_BARCODE")
	password := os.Getenv("SMOKE_PATRON_PASSWORD")
	if barcode != "" && password != "" {
		resp, err = st.client.PatronValidate(ctx, barcode, password, nil)
		st.report("patron-validate", resp, err)

		resp, err = st.client.PatronBasicDataGet(ctx, barcode, password, nil)
		st.report("patron-basic-data-get", resp, err)
	}

	domain := os.Getenv("SMOKE_STAFF_DOMAIN")
	username := os.Getenv("SMOKE_STAFF_USERNAME")
	staffPassword := os.Getenv("SMOKE_STAFF_PASSWORD")
	if domain != "" && username != "" && staffPassword != "" {
		resp, err = st.client.AuthenticateStaffUser(ctx, domain, username, staffPassword, nil)
		st.report("authenticate-staff-user", resp, err)
	}
}

func main() {
	st, err := NewSmokeTest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup failed: %v\n", err)
		fmt.Fprintln(os.Stderr, "set POLARIS_HOST, POLARIS_ACCESS_KEY and POLARIS_ACCESS_KEY_ID")
		os.Exit(2)
	}
	defer st.logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	st.Run(ctx)

	fmt.Printf("\nsmoke: %d passed, %d failed\n", st.passed, st.failed)
	if st.failed > 0 {
		os.Exit(1)
	}
}
