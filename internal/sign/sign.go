// Package sign builds the canonical URI, signature and header set for Polaris
// PAPI requests. Everything here is a pure function of its inputs; network
// transmission is the transport's job.
//
// The server reconstructs the exact same bytes to verify the signature, so
// the canonicalization rules in this package are a wire contract, not a
// style choice.
package sign

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Protection levels. Public operations authenticate with the patron password
// folded into the signature; protected operations carry a staff access token
// as a path segment and always travel over https.
const (
	Public    = "public"
	Protected = "protected"
)

const (
	// AuthScheme is the fixed token leading the Authorization header.
	AuthScheme = "PWS"

	// TokenHeader carries the access token on public operations. Protected
	// operations embed the token in the path instead and never set it.
	TokenHeader = "X-PAPI-AccessToken"

	basePath = "PAPIService/REST"
)

// EncodeParams renders query parameters the way the server reconstructs them
// for signature verification: every space becomes a literal '+' in both key
// and value, and no other character is escaped. A generic URL encoder
// percent-escapes more than that and breaks verification. Keys are emitted in
// sorted order so a given mapping always yields the same bytes. The result
// carries a leading '?' unless the mapping is empty.
func EncodeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(plusEscape(key))
		b.WriteByte('=')
		b.WriteString(plusEscape(params[key]))
	}
	return b.String()
}

func plusEscape(s string) string {
	return strings.ReplaceAll(s, " ", "+")
}

// BuildURI assembles the canonical request URL:
//
//	{scheme}://{host}/PAPIService/REST/{protection}/{version}/{languageID}/{applicationID}/{organizationID}/{suffix}{query}
//
// The same string is sent on the wire and fed to Signature; there is
// deliberately no second encoding path.
func BuildURI(scheme, host, protection, version, languageID, applicationID, organizationID, suffix string, params map[string]string) string {
	return fmt.Sprintf("%s://%s/%s/%s/%s/%s/%s/%s/%s%s",
		scheme, host, basePath, protection,
		version, languageID, applicationID, organizationID,
		suffix, EncodeParams(params))
}

// HTTPDate formats t as the RFC 1123 GMT date used both for the Date header
// and the signature input. The two must be the same value.
func HTTPDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// Signature computes the PAPI request signature: HMAC-SHA1 over the
// concatenation, with no separators, of method, URL, date and password,
// base64-encoded with the single trailing padding character stripped. A
// 20-byte digest always encodes to 28 characters ending in '='.
//
// SHA-1 is fixed by the server-side verification and cannot be upgraded
// unilaterally.
func Signature(key []byte, method, uri, date, password string) string {
	mac := hmac.New(sha1.New, key)
	mac.Write([]byte(method + uri + date + password))
	encoded := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return encoded[:len(encoded)-1]
}

// Headers builds the full header set for a signed request. contentLength is
// the byte length of the serialized JSON body, which is always present (an
// empty body serializes to "{}", length 2). The token header is attached only
// on public operations when a token was supplied.
func Headers(keyID, signature, date string, contentLength int, token, protection string) http.Header {
	h := http.Header{}
	h.Set("Authorization", fmt.Sprintf("%s %s:%s", AuthScheme, keyID, signature))
	h.Set("Date", date)
	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(contentLength))
	h.Set("Accept", "application/json")
	if token != "" && protection == Public {
		h.Set(TokenHeader, token)
	}
	return h
}
