package papi

import "context"

// AuthenticateStaffUser must be called before any protected operation. On
// success the response carries an access token and access secret, both valid
// for 24 hours; calling again with the same domain account issues fresh ones.
// The client does not parse the response or track expiry.
func (c *Client) AuthenticateStaffUser(ctx context.Context, domain, username, password string, ov *Overrides) (*Response, error) {
	const op = "AuthenticateStaffUser"
	if err := requireFields(op,
		"domain", domain,
		"username", username,
		"password", password,
	); err != nil {
		return nil, err
	}
	body := struct {
		Domain   string `json:"Domain"`
		Username string `json:"Username"`
		Password string `json:"Password"`
	}{
		Domain:   domain,
		Username: username,
		Password: password,
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "POST",
		scheme:     "https",
		protection: protectionProtected,
		suffix:     "authenticator/staff",
		body:       body,
	}, ov)
}
