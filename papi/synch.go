package papi

import (
	"context"
	"fmt"
)

// SynchItemsByBibIDGet returns item records attached to a bibliographic
// record for vendor synchronization. Protected operation.
func (c *Client) SynchItemsByBibIDGet(ctx context.Context, accessToken, accessSecret, bibID string, ov *Overrides) (*Response, error) {
	const op = "SynchItemsByBibIDGet"
	if err := requireFields(op,
		"accessToken", accessToken,
		"accessSecret", accessSecret,
		"bibID", bibID,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "https",
		protection: protectionProtected,
		suffix:     fmt.Sprintf("%s/synch/items/bibid/%s", accessToken, bibID),
		password:   accessSecret,
	}, ov)
}

// SynchTasksCheckoutParams are the inputs to SynchTasksCheckout.
// ItemExpireDateTime and TransactionDateTime are epoch seconds as text and
// are wrapped into the legacy date token in the body.
type SynchTasksCheckoutParams struct {
	AccessToken         string
	AccessSecret        string
	WorkstationID       string
	UserID              string
	VendorID            string
	VendorContractID    string
	UniqueRecordID      string
	PatronBarcode       string
	ItemExpireDateTime  string
	TransactionDateTime string
}

// SynchTasksCheckout records a vendor checkout transaction. Protected
// operation.
func (c *Client) SynchTasksCheckout(ctx context.Context, p SynchTasksCheckoutParams, ov *Overrides) (*Response, error) {
	const op = "SynchTasksCheckout"
	if err := requireFields(op,
		"accessToken", p.AccessToken,
		"accessSecret", p.AccessSecret,
		"workstationID", p.WorkstationID,
		"userID", p.UserID,
		"vendorID", p.VendorID,
		"vendorContractID", p.VendorContractID,
		"uniqueRecordID", p.UniqueRecordID,
		"patronBarcode", p.PatronBarcode,
		"itemExpireDateTime", p.ItemExpireDateTime,
		"transactionDateTime", p.TransactionDateTime,
	); err != nil {
		return nil, err
	}
	body := struct {
		VendorID            string `json:"VendorID"`
		VendorContractID    string `json:"VendorContractID"`
		UniqueRecordID      string `json:"UniqueRecordID"`
		PatronBarcode       string `json:"PatronBarcode"`
		ItemExpireDateTime  string `json:"ItemExpireDateTime"`
		TransactionDateTime string `json:"TransactionDateTime"`
	}{
		VendorID:            p.VendorID,
		VendorContractID:    p.VendorContractID,
		UniqueRecordID:      p.UniqueRecordID,
		PatronBarcode:       p.PatronBarcode,
		ItemExpireDateTime:  papiDate(p.ItemExpireDateTime),
		TransactionDateTime: papiDate(p.TransactionDateTime),
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "PUT",
		scheme:     "https",
		protection: protectionProtected,
		suffix:     fmt.Sprintf("%s/synch/tasks/checkout", p.AccessToken),
		params: map[string]string{
			"wsid":   p.WorkstationID,
			"userid": p.UserID,
		},
		body:     body,
		password: p.AccessSecret,
	}, ov)
}
