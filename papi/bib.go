package papi

import (
	"context"
	"fmt"

	"github.com/DarienLibrary/PolarisAPI/pkg/errors"
)

// BibGet returns bibliographic information for a specified record.
func (c *Client) BibGet(ctx context.Context, bibID string, ov *Overrides) (*Response, error) {
	const op = "BibGet"
	if err := requireFields(op, "bibID", bibID); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("bib/%s", bibID),
	}, ov)
}

// BibSearch returns bibliographic records matching the search criteria in
// params, keyed by the query string parameter names the service documents.
// Values are passed through to the query string unmodified apart from the
// space encoding the server's signature verification requires.
func (c *Client) BibSearch(ctx context.Context, qualifierName string, params map[string]string, ov *Overrides) (*Response, error) {
	const op = "BibSearch"
	if err := requireFields(op, "qualifierName", qualifierName); err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, errors.NewValidationError("params is required", op)
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("search/bibs/keyword/%s", qualifierName),
		params:     params,
	}, ov)
}

// HeadingSearch searches an ordered list of terms and returns headings
// information relative to a given start point.
func (c *Client) HeadingSearch(ctx context.Context, qualifierName string, params map[string]string, ov *Overrides) (*Response, error) {
	const op = "HeadingSearch"
	if err := requireFields(op, "qualifierName", qualifierName); err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, errors.NewValidationError("params is required", op)
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("search/headings/%s", qualifierName),
		params:     params,
	}, ov)
}

// BibHoldingsGet returns holdings information for a specified bibliographic
// record.
func (c *Client) BibHoldingsGet(ctx context.Context, bibID string, ov *Overrides) (*Response, error) {
	const op = "BibHoldingsGet"
	if err := requireFields(op, "bibID", bibID); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("bib/%s/holdings", bibID),
	}, ov)
}

// CollectionsGet returns collections for the organization selected by the
// OrganizationID override, defaulting to the system level. Pass a branch's
// organization ID to list that branch's collections.
func (c *Client) CollectionsGet(ctx context.Context, ov *Overrides) (*Response, error) {
	return c.do(ctx, request{
		operation:  "CollectionsGet",
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     "collections",
	}, ov)
}

// OrganizationsGet returns system, library and branch level organizations,
// filtered by tier ("system", "library", "branch" or "all").
func (c *Client) OrganizationsGet(ctx context.Context, tier string, ov *Overrides) (*Response, error) {
	const op = "OrganizationsGet"
	if err := requireFields(op, "tier", tier); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("organizations/%s", tier),
	}, ov)
}

// SortOptionsGet returns the valid sort options.
func (c *Client) SortOptionsGet(ctx context.Context, ov *Overrides) (*Response, error) {
	return c.do(ctx, request{
		operation:  "SortOptionsGet",
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     "sortoptions",
	}, ov)
}

// LimitFiltersGet returns the valid bib search limit filters for the
// organization.
func (c *Client) LimitFiltersGet(ctx context.Context, ov *Overrides) (*Response, error) {
	return c.do(ctx, request{
		operation:  "LimitFiltersGet",
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     "limitfilters",
	}, ov)
}
