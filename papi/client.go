// Package papi is a Go client for the Polaris Application Programming
// Interface (PAPI), the REST interface of the Polaris ILS. Every operation
// funnels through one signing pipeline that assembles the canonical request
// URL, computes the HMAC signature the server verifies, and attaches the
// header set the service expects.
//
// Responses are returned raw: the client does not interpret status codes or
// response schemas, and it does not retry. Access tokens issued by
// AuthenticateStaffUser are valid for 24 hours; tracking expiry and
// re-authenticating is the caller's responsibility.
package papi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DarienLibrary/PolarisAPI/internal/sign"
	"github.com/DarienLibrary/PolarisAPI/pkg/errors"

	"go.uber.org/zap"
)

// Root path segment defaults applied when neither Config.Defaults nor a
// per-call override supplies a value.
const (
	DefaultVersion        = "v1"
	DefaultLanguageID     = "1033" // English
	DefaultApplicationID  = "100"  // third-party
	DefaultOrganizationID = "1"    // system level
)

// Protection levels, re-exported from the signing layer for the catalog.
const (
	protectionPublic    = sign.Public
	protectionProtected = sign.Protected
)

// AllRecords is the record identifier the server interprets as "every
// matching record". The *AllForPatron operations pass it in place of a single
// request or item ID; a real record never has this ID.
const AllRecords = "0"

// Config carries the credentials and deployment coordinates bound to a Client
// for its lifetime.
type Config struct {
	// Host is the Polaris server hostname, e.g. "catalog.example.org".
	Host string

	// AccessKey is the shared signing key. It is only ever used locally to
	// compute request signatures and is never transmitted.
	AccessKey string

	// AccessKeyID is the non-secret identifier sent alongside each signature
	// so the server knows which key to verify against.
	AccessKeyID string

	// Defaults replaces the root path segment defaults for every call made by
	// this client. Zero fields keep the package defaults.
	Defaults Defaults
}

// Defaults are the four root path segments shared by every operation.
type Defaults struct {
	Version        string
	LanguageID     string
	ApplicationID  string
	OrganizationID string
}

// Overrides adjusts a single call. A nil *Overrides means "all defaults".
type Overrides struct {
	Version        string
	LanguageID     string
	ApplicationID  string
	OrganizationID string

	// AccessToken is attached as the X-PAPI-AccessToken header on public
	// operations. Protected operations take the token as an argument and
	// embed it in the path instead.
	AccessToken string

	// AccessSecret replaces the patron password as the signature password.
	// This is how an authenticated staff user overrides a patron method.
	// When both AccessSecret and a patron password are set, the secret wins.
	AccessSecret string

	// PatronPassword replaces the password supplied to a public operation.
	// Protected operations always sign with their access secret.
	PatronPassword string
}

// Client issues signed requests against one Polaris deployment. The
// credentials are immutable after construction and the Transport is reused
// for every call; a Client is safe for concurrent use when its Transport is.
type Client struct {
	cfg       Config
	transport Transport
	logger    *zap.Logger
	now       func() time.Time
}

// New builds a Client. transport may be nil, in which case the built-in HTTP
// transport with DefaultTimeout is used; logger may be nil for no logging.
// Missing host, access key or access key ID is a configuration error,
// surfaced here rather than on first call.
func New(cfg Config, transport Transport, logger *zap.Logger) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.NewConfigurationError("host is required", "")
	}
	if cfg.AccessKey == "" {
		return nil, errors.NewConfigurationError("access key is required", "")
	}
	if cfg.AccessKeyID == "" {
		return nil, errors.NewConfigurationError("access key id is required", "")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if transport == nil {
		transport = NewHTTPTransport(DefaultTimeout, logger)
	}
	return &Client{
		cfg:       cfg,
		transport: transport,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// request is the shaped input every operation hands to do. The password field
// holds whatever credential the operation signs with before overrides apply:
// a patron password on public operations, an access secret on protected ones.
type request struct {
	operation  string
	method     string
	scheme     string
	protection string
	suffix     string
	params     map[string]string
	body       any
	password   string
}

// do is the single pipeline behind every operation: merge defaults, resolve
// the signing password, serialize the body, canonicalize the URL, sign, and
// dispatch through the Transport.
func (c *Client) do(ctx context.Context, r request, ov *Overrides) (*Response, error) {
	if ov == nil {
		ov = &Overrides{}
	}
	d := Defaults{
		Version:        pick(ov.Version, c.cfg.Defaults.Version, DefaultVersion),
		LanguageID:     pick(ov.LanguageID, c.cfg.Defaults.LanguageID, DefaultLanguageID),
		ApplicationID:  pick(ov.ApplicationID, c.cfg.Defaults.ApplicationID, DefaultApplicationID),
		OrganizationID: pick(ov.OrganizationID, c.cfg.Defaults.OrganizationID, DefaultOrganizationID),
	}

	// On protected operations the operation's own credential is already the
	// access secret, which outranks any patron password.
	password := r.password
	if ov.PatronPassword != "" && r.protection == sign.Public {
		password = ov.PatronPassword
	}
	if ov.AccessSecret != "" {
		if password != "" && password != ov.AccessSecret {
			c.logger.Warn("access secret overrides a differing password for signing",
				zap.String("operation", r.operation))
		}
		password = ov.AccessSecret
	}

	// The scheme is fixed per operation, except that protected operations
	// always travel over https.
	scheme := r.scheme
	if r.protection == sign.Protected {
		scheme = "https"
	}

	body, err := marshalBody(r.body)
	if err != nil {
		return nil, errors.NewValidationError("request body serialization failed", r.operation).WithCause(err)
	}

	uri := sign.BuildURI(scheme, c.cfg.Host, r.protection,
		d.Version, d.LanguageID, d.ApplicationID, d.OrganizationID,
		r.suffix, r.params)
	date := sign.HTTPDate(c.now())
	signature := sign.Signature([]byte(c.cfg.AccessKey), r.method, uri, date, password)
	header := sign.Headers(c.cfg.AccessKeyID, signature, date, len(body), ov.AccessToken, r.protection)

	c.logger.Debug("papi request prepared",
		zap.String("operation", r.operation),
		zap.String("method", r.method),
		zap.String("url", uri))

	return c.transport.Do(ctx, &Request{
		Operation: r.operation,
		Method:    r.method,
		URL:       uri,
		Header:    header,
		Body:      body,
	})
}

// marshalBody serializes the JSON body, which is always present on the wire:
// operations without one send the empty object, never a zero-length body.
func marshalBody(body any) ([]byte, error) {
	if body == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(body)
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// requireFields checks name/value pairs and reports the first missing one as
// a validation error, before any transport activity.
func requireFields(operation string, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return errors.NewValidationError(pairs[i]+" is required", operation)
		}
	}
	return nil
}

// papiDate renders an epoch-seconds string as the legacy WCF date token the
// server requires in request bodies, e.g. "1491058" -> "/Date(1491058000-0000)/".
func papiDate(epochSeconds string) string {
	return "/Date(" + epochSeconds + "000-0000)/"
}

// String returns a pointer to s, for the optional registration and update
// fields whose absence is encoded as JSON null.
func String(s string) *string {
	return &s
}
