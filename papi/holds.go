package papi

import (
	"context"
	"fmt"
	"strconv"
)

// HoldRequestCancel cancels a single hold request.
func (c *Client) HoldRequestCancel(ctx context.Context, patronBarcode, patronPassword, requestID, workstationID, userID string, ov *Overrides) (*Response, error) {
	const op = "HoldRequestCancel"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
		"requestID", requestID,
		"workstationID", workstationID,
		"userID", userID,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "PUT",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/holdrequests/%s/cancelled", patronBarcode, requestID),
		params: map[string]string{
			"wsid":   workstationID,
			"userid": userID,
		},
		password: patronPassword,
	}, ov)
}

// HoldRequestCancelAllForPatron cancels every local hold request for the
// patron whose status is inactive, active or pending. It is HoldRequestCancel
// with the AllRecords sentinel in place of a request ID.
func (c *Client) HoldRequestCancelAllForPatron(ctx context.Context, patronBarcode, patronPassword, workstationID, userID string, ov *Overrides) (*Response, error) {
	return c.HoldRequestCancel(ctx, patronBarcode, patronPassword, AllRecords, workstationID, userID, ov)
}

// HoldRequestCreateParams are the inputs to HoldRequestCreate. PatronID,
// BibID, PickupOrgID, UserID and RequestingOrgID are required. Optional
// fields default to the empty string; IsBorrowByMail defaults to "0" and
// ActivationDate to the current time.
type HoldRequestCreateParams struct {
	PatronID        string
	BibID           string
	PickupOrgID     string
	UserID          string
	RequestingOrgID string

	ItemBarcode    string
	VolumeNumber   string
	Designation    string
	IsBorrowByMail string
	PatronNotes    string
	Answer         *string
	ActivationDate string // epoch seconds as text
	TargetGUID     string
}

// HoldRequestCreate starts the local hold request process. The process is
// message-based: after the create call, one or more HoldRequestReply calls
// may be required until the returned StatusType is Error or Answer.
func (c *Client) HoldRequestCreate(ctx context.Context, p HoldRequestCreateParams, ov *Overrides) (*Response, error) {
	const op = "HoldRequestCreate"
	if err := requireFields(op,
		"patronID", p.PatronID,
		"bibID", p.BibID,
		"pickupOrgID", p.PickupOrgID,
		"userID", p.UserID,
		"requestingOrgID", p.RequestingOrgID,
	); err != nil {
		return nil, err
	}
	isBorrowByMail := p.IsBorrowByMail
	if isBorrowByMail == "" {
		isBorrowByMail = "0"
	}
	activationDate := p.ActivationDate
	if activationDate == "" {
		activationDate = strconv.FormatInt(c.now().Unix(), 10)
	}
	body := struct {
		PatronID        string  `json:"PatronID"`
		BibID           string  `json:"BibID"`
		ItemBarcode     string  `json:"ItemBarcode"`
		VolumeNumber    string  `json:"VolumeNumber"`
		Designation     string  `json:"Designation"`
		PickupOrgID     string  `json:"PickupOrgID"`
		IsBorrowByMail  string  `json:"IsBorrowByMail"`
		PatronNotes     string  `json:"PatronNotes"`
		Answer          *string `json:"Answer"`
		ActivationDate  string  `json:"ActivationDate"`
		UserID          string  `json:"UserID"`
		RequestingOrgID string  `json:"RequestingOrgID"`
		TargetGUID      string  `json:"TargetGUID"`
	}{
		PatronID:        p.PatronID,
		BibID:           p.BibID,
		ItemBarcode:     p.ItemBarcode,
		VolumeNumber:    p.VolumeNumber,
		Designation:     p.Designation,
		PickupOrgID:     p.PickupOrgID,
		IsBorrowByMail:  isBorrowByMail,
		PatronNotes:     p.PatronNotes,
		Answer:          p.Answer,
		ActivationDate:  papiDate(activationDate),
		UserID:          p.UserID,
		RequestingOrgID: p.RequestingOrgID,
		TargetGUID:      p.TargetGUID,
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "POST",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     "holdrequest",
		body:       body,
	}, ov)
}

// HoldRequestReply answers the results of a previous HoldRequestCreate or
// HoldRequestReply. The RequestGUID, TxnGroupQualifier and TxnQualifier
// returned by the create call connect the messages into one conversation.
func (c *Client) HoldRequestReply(ctx context.Context, requestGUID, txnGroupQualifier, txnQualifier, requestingOrgID, answer, state string, ov *Overrides) (*Response, error) {
	const op = "HoldRequestReply"
	if err := requireFields(op,
		"requestGUID", requestGUID,
		"txnGroupQualifier", txnGroupQualifier,
		"txnQualifier", txnQualifier,
		"requestingOrgID", requestingOrgID,
		"answer", answer,
		"state", state,
	); err != nil {
		return nil, err
	}
	body := struct {
		TxnGroupQualifier string `json:"TxnGroupQualifier"`
		TxnQualifier      string `json:"TxnQualifier"`
		RequestingOrgID   string `json:"RequestingOrgID"`
		Answer            string `json:"Answer"`
		State             string `json:"State"`
	}{
		TxnGroupQualifier: txnGroupQualifier,
		TxnQualifier:      txnQualifier,
		RequestingOrgID:   requestingOrgID,
		Answer:            answer,
		State:             state,
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "PUT",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("holdrequest/%s", requestGUID),
		body:       body,
	}, ov)
}

// HoldRequestSuspend suspends or reactivates a single hold request. activity
// is "active" or "inactive"; activationDate is epoch seconds as text.
func (c *Client) HoldRequestSuspend(ctx context.Context, patronBarcode, patronPassword, requestID, activity, userID, activationDate string, ov *Overrides) (*Response, error) {
	const op = "HoldRequestSuspend"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
		"requestID", requestID,
		"activity", activity,
		"userID", userID,
		"activationDate", activationDate,
	); err != nil {
		return nil, err
	}
	body := struct {
		UserID         string `json:"UserID"`
		ActivationDate string `json:"ActivationDate"`
	}{
		UserID:         userID,
		ActivationDate: papiDate(activationDate),
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "PUT",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/holdrequests/%s/%s", patronBarcode, requestID, activity),
		body:       body,
		password:   patronPassword,
	}, ov)
}

// HoldRequestSuspendAllForPatron suspends or reactivates every local hold
// request for the patron whose status is inactive, active or pending.
func (c *Client) HoldRequestSuspendAllForPatron(ctx context.Context, patronBarcode, patronPassword, activity, userID, activationDate string, ov *Overrides) (*Response, error) {
	return c.HoldRequestSuspend(ctx, patronBarcode, patronPassword, AllRecords, activity, userID, activationDate, ov)
}

// ItemRenewParams are the inputs to ItemRenew and ItemRenewAllForPatron. All
// fields except ItemID are required; ItemRenewAllForPatron ignores ItemID.
type ItemRenewParams struct {
	PatronBarcode        string
	PatronPassword       string
	ItemID               string
	LogonBranchID        string
	LogonUserID          string
	LogonWorkstationID   string
	IgnoreOverrideErrors string // "true" or "false"
}

// ItemRenew attempts to renew an item that is already checked out.
func (c *Client) ItemRenew(ctx context.Context, p ItemRenewParams, ov *Overrides) (*Response, error) {
	const op = "ItemRenew"
	if err := requireFields(op,
		"patronBarcode", p.PatronBarcode,
		"patronPassword", p.PatronPassword,
		"itemID", p.ItemID,
		"logonBranchID", p.LogonBranchID,
		"logonUserID", p.LogonUserID,
		"logonWorkstationID", p.LogonWorkstationID,
		"ignoreOverrideErrors", p.IgnoreOverrideErrors,
	); err != nil {
		return nil, err
	}
	body := struct {
		Action             string `json:"Action"`
		LogonBranchID      string `json:"LogonBranchID"`
		LogonUserID        string `json:"LogonUserID"`
		LogonWorkstationID string `json:"LogonWorkstationID"`
		RenewData          struct {
			IgnoreOverrideErrors string `json:"IgnoreOverrideErrors"`
		} `json:"RenewData"`
	}{
		Action:             "renew",
		LogonBranchID:      p.LogonBranchID,
		LogonUserID:        p.LogonUserID,
		LogonWorkstationID: p.LogonWorkstationID,
	}
	body.RenewData.IgnoreOverrideErrors = p.IgnoreOverrideErrors
	return c.do(ctx, request{
		operation:  op,
		method:     "PUT",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/itemsout/%s", p.PatronBarcode, p.ItemID),
		body:       body,
		password:   p.PatronPassword,
	}, ov)
}

// ItemRenewAllForPatron attempts to renew every item currently out to the
// patron, via the AllRecords sentinel.
func (c *Client) ItemRenewAllForPatron(ctx context.Context, p ItemRenewParams, ov *Overrides) (*Response, error) {
	p.ItemID = AllRecords
	return c.ItemRenew(ctx, p, ov)
}
