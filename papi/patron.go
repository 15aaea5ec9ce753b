package papi

import (
	"context"
	"fmt"

	"github.com/DarienLibrary/PolarisAPI/pkg/errors"
)

// PatronValidate validates that a patron is part of the Polaris database.
func (c *Client) PatronValidate(ctx context.Context, patronBarcode, patronPassword string, ov *Overrides) (*Response, error) {
	const op = "PatronValidate"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s", patronBarcode),
		password:   patronPassword,
	}, ov)
}

// PatronBasicDataGet returns basic name, address, circulation counts and
// account balances for a patron.
func (c *Client) PatronBasicDataGet(ctx context.Context, patronBarcode, patronPassword string, ov *Overrides) (*Response, error) {
	const op = "PatronBasicDataGet"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/basicdata", patronBarcode),
		password:   patronPassword,
	}, ov)
}

// PatronCirculateBlocksGet returns blocks and status indicating whether the
// patron may perform a circulation activity such as checkout.
func (c *Client) PatronCirculateBlocksGet(ctx context.Context, patronBarcode, patronPassword string, ov *Overrides) (*Response, error) {
	const op = "PatronCirculateBlocksGet"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/circulationblocks", patronBarcode),
		password:   patronPassword,
	}, ov)
}

// PatronAccountGet returns fines and fees for a patron, filtered by status
// ("outstanding" or "reconciled").
func (c *Client) PatronAccountGet(ctx context.Context, patronBarcode, patronPassword, status string, ov *Overrides) (*Response, error) {
	const op = "PatronAccountGet"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
		"status", status,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/account/%s", patronBarcode, status),
		password:   patronPassword,
	}, ov)
}

// PatronAccountPayParams are the inputs to PatronAccountPay. FreeTextNote is
// optional and encodes as null when unset.
type PatronAccountPayParams struct {
	AccessToken     string
	AccessSecret    string
	PatronBarcode   string
	ChargeTxnID     string
	TxnAmount       string
	PaymentMethodID string
	WorkstationID   string
	UserID          string
	FreeTextNote    *string
}

// PatronAccountPay makes a payment on an existing charge on the patron
// account. This is a protected operation: the staff access token rides in the
// path and the access secret signs the request.
func (c *Client) PatronAccountPay(ctx context.Context, p PatronAccountPayParams, ov *Overrides) (*Response, error) {
	const op = "PatronAccountPay"
	if err := requireFields(op,
		"accessToken", p.AccessToken,
		"accessSecret", p.AccessSecret,
		"patronBarcode", p.PatronBarcode,
		"chargeTxnID", p.ChargeTxnID,
		"txnAmount", p.TxnAmount,
		"paymentMethodID", p.PaymentMethodID,
		"workstationID", p.WorkstationID,
		"userID", p.UserID,
	); err != nil {
		return nil, err
	}
	body := struct {
		TxnAmount       string  `json:"TxnAmount"`
		PaymentMethodID string  `json:"PaymentMethodID"`
		FreeTextNote    *string `json:"FreeTextNote"`
	}{
		TxnAmount:       p.TxnAmount,
		PaymentMethodID: p.PaymentMethodID,
		FreeTextNote:    p.FreeTextNote,
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "PUT",
		scheme:     "https",
		protection: protectionProtected,
		suffix:     fmt.Sprintf("%s/patron/%s/account/%s/pay", p.AccessToken, p.PatronBarcode, p.ChargeTxnID),
		params: map[string]string{
			"wsid":   p.WorkstationID,
			"userid": p.UserID,
		},
		body:     body,
		password: p.AccessSecret,
	}, ov)
}

// PatronHoldRequestsGet returns hold requests placed by the patron, filtered
// by status ("all", "active", "inactive", "pending", ...).
func (c *Client) PatronHoldRequestsGet(ctx context.Context, patronBarcode, patronPassword, status string, ov *Overrides) (*Response, error) {
	const op = "PatronHoldRequestsGet"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
		"status", status,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/holdrequests/%s", patronBarcode, status),
		password:   patronPassword,
	}, ov)
}

// PatronItemsOutGet returns items out to the patron, filtered by "all",
// "overdue" or "lost".
func (c *Client) PatronItemsOutGet(ctx context.Context, patronBarcode, patronPassword, status string, ov *Overrides) (*Response, error) {
	const op = "PatronItemsOutGet"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
		"status", status,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/itemsout/%s", patronBarcode, status),
		password:   patronPassword,
	}, ov)
}

// PatronMessagesGet retrieves new and read patron messages.
func (c *Client) PatronMessagesGet(ctx context.Context, patronBarcode, patronPassword string, ov *Overrides) (*Response, error) {
	const op = "PatronMessagesGet"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/messages", patronBarcode),
		password:   patronPassword,
	}, ov)
}

// PatronMessageUpdateStatus marks a message as read. messageType is
// "freetext" or "libraryassigned".
func (c *Client) PatronMessageUpdateStatus(ctx context.Context, patronBarcode, patronPassword, messageType, messageID string, ov *Overrides) (*Response, error) {
	const op = "PatronMessageUpdateStatus"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
		"messageType", messageType,
		"messageID", messageID,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "PUT",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/messages/%s/%s", patronBarcode, messageType, messageID),
		password:   patronPassword,
	}, ov)
}

// PatronMessageDelete deletes a specific patron message.
func (c *Client) PatronMessageDelete(ctx context.Context, patronBarcode, patronPassword, messageType, messageID string, ov *Overrides) (*Response, error) {
	const op = "PatronMessageDelete"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
		"messageType", messageType,
		"messageID", messageID,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "DELETE",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/messages/%s/%s", patronBarcode, messageType, messageID),
		password:   patronPassword,
	}, ov)
}

// PatronPreferencesGet returns patron preferences including reading list,
// email format and notification type.
func (c *Client) PatronPreferencesGet(ctx context.Context, patronBarcode, patronPassword string, ov *Overrides) (*Response, error) {
	const op = "PatronPreferencesGet"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/preferences", patronBarcode),
		password:   patronPassword,
	}, ov)
}

// PatronReadingHistoryGet returns the historical list of items the patron has
// checked out, one page at a time.
func (c *Client) PatronReadingHistoryGet(ctx context.Context, patronBarcode, patronPassword, page, rowsPerPage string, ov *Overrides) (*Response, error) {
	const op = "PatronReadingHistoryGet"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
		"page", page,
		"rowsPerPage", rowsPerPage,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/readinghistory", patronBarcode),
		params: map[string]string{
			"page":        page,
			"rowsperpage": rowsPerPage,
		},
		password: patronPassword,
	}, ov)
}

// PatronReadingHistoryClear clears the historical list of items the patron
// has checked out.
func (c *Client) PatronReadingHistoryClear(ctx context.Context, patronBarcode, patronPassword string, ov *Overrides) (*Response, error) {
	const op = "PatronReadingHistoryClear"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "DELETE",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/readinghistory", patronBarcode),
		password:   patronPassword,
	}, ov)
}

// PatronSavedSearchesGet returns the patron's saved searches.
func (c *Client) PatronSavedSearchesGet(ctx context.Context, patronBarcode, patronPassword string, ov *Overrides) (*Response, error) {
	const op = "PatronSavedSearchesGet"
	if err := requireFields(op,
		"patronBarcode", patronBarcode,
		"patronPassword", patronPassword,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s/savedsearches", patronBarcode),
		password:   patronPassword,
	}, ov)
}

// PatronRegistrationParams are the inputs to PatronRegistrationCreate. The
// logon fields, PatronBranchID, NameFirst and NameLast are required; every
// optional field is a pointer that encodes as JSON null when unset, which the
// server distinguishes from an empty string. Field names follow the PAPI
// reference guide, including its EReceiptOPtionID capitalization.
type PatronRegistrationParams struct {
	LogonBranchID      string
	LogonUserID        string
	LogonWorkstationID string
	PatronBranchID     string
	NameFirst          string
	NameLast           string

	PostalCode       *string
	ZipPlusFour      *string
	City             *string
	State            *string
	County           *string
	CountryID        *string
	StreetOne        *string
	StreetTwo        *string
	NameMiddle       *string
	User1            *string
	User2            *string
	User3            *string
	User4            *string
	User5            *string
	Gender           *string
	Birthdate        *string
	PhoneVoice1      *string
	PhoneVoice2      *string
	PhoneVoice3      *string
	EmailAddress     *string
	AltEmailAddress  *string
	LanguageID       *string
	DeliveryOptionID *string
	UserName         *string
	Password         *string
	Password2        *string
	Phone1CarrierID  *string
	Phone2CarrierID  *string
	Phone3CarrierID  *string
	Enable           *string
	TxtPhoneNumber   *string
	Barcode          *string
	EReceiptOptionID *string
}

// PatronRegistrationCreate creates a new patron registration record. The
// server performs basic duplicate detection on name, username and barcode.
func (c *Client) PatronRegistrationCreate(ctx context.Context, p PatronRegistrationParams, ov *Overrides) (*Response, error) {
	const op = "PatronRegistrationCreate"
	if err := requireFields(op,
		"logonBranchID", p.LogonBranchID,
		"logonUserID", p.LogonUserID,
		"logonWorkstationID", p.LogonWorkstationID,
		"patronBranchID", p.PatronBranchID,
		"nameFirst", p.NameFirst,
		"nameLast", p.NameLast,
	); err != nil {
		return nil, err
	}
	body := struct {
		LogonBranchID      string  `json:"LogonBranchID"`
		LogonUserID        string  `json:"LogonUserID"`
		LogonWorkstationID string  `json:"LogonWorkstationID"`
		PatronBranchID     string  `json:"PatronBranchID"`
		PostalCode         *string `json:"PostalCode"`
		ZipPlusFour        *string `json:"ZipPlusFour"`
		City               *string `json:"City"`
		State              *string `json:"State"`
		County             *string `json:"County"`
		CountryID          *string `json:"CountryID"`
		StreetOne          *string `json:"StreetOne"`
		StreetTwo          *string `json:"StreetTwo"`
		NameFirst          string  `json:"NameFirst"`
		NameLast           string  `json:"NameLast"`
		NameMiddle         *string `json:"NameMiddle"`
		User1              *string `json:"User1"`
		User2              *string `json:"User2"`
		User3              *string `json:"User3"`
		User4              *string `json:"User4"`
		User5              *string `json:"User5"`
		Gender             *string `json:"Gender"`
		Birthdate          *string `json:"Birthdate"`
		PhoneVoice1        *string `json:"PhoneVoice1"`
		PhoneVoice2        *string `json:"PhoneVoice2"`
		EmailAddress       *string `json:"EmailAddress"`
		LanguageID         *string `json:"LanguageID"`
		DeliveryOptionID   *string `json:"DeliveryOptionID"`
		UserName           *string `json:"UserName"`
		Password           *string `json:"Password"`
		Password2          *string `json:"Password2"`
		AltEmailAddress    *string `json:"AltEmailAddress"`
		PhoneVoice3        *string `json:"PhoneVoice3"`
		Phone1CarrierID    *string `json:"Phone1CarrierID"`
		Phone2CarrierID    *string `json:"Phone2CarrierID"`
		Phone3CarrierID    *string `json:"Phone3CarrierID"`
		Enable             *string `json:"Enable"`
		TxtPhoneNumber     *string `json:"TxtPhoneNumber"`
		Barcode            *string `json:"Barcode"`
		EReceiptOptionID   *string `json:"EReceiptOPtionID"`
	}{
		LogonBranchID:      p.LogonBranchID,
		LogonUserID:        p.LogonUserID,
		LogonWorkstationID: p.LogonWorkstationID,
		PatronBranchID:     p.PatronBranchID,
		PostalCode:         p.PostalCode,
		ZipPlusFour:        p.ZipPlusFour,
		City:               p.City,
		State:              p.State,
		County:             p.County,
		CountryID:          p.CountryID,
		StreetOne:          p.StreetOne,
		StreetTwo:          p.StreetTwo,
		NameFirst:          p.NameFirst,
		NameLast:           p.NameLast,
		NameMiddle:         p.NameMiddle,
		User1:              p.User1,
		User2:              p.User2,
		User3:              p.User3,
		User4:              p.User4,
		User5:              p.User5,
		Gender:             p.Gender,
		Birthdate:          p.Birthdate,
		PhoneVoice1:        p.PhoneVoice1,
		PhoneVoice2:        p.PhoneVoice2,
		EmailAddress:       p.EmailAddress,
		LanguageID:         p.LanguageID,
		DeliveryOptionID:   p.DeliveryOptionID,
		UserName:           p.UserName,
		Password:           p.Password,
		Password2:          p.Password2,
		AltEmailAddress:    p.AltEmailAddress,
		PhoneVoice3:        p.PhoneVoice3,
		Phone1CarrierID:    p.Phone1CarrierID,
		Phone2CarrierID:    p.Phone2CarrierID,
		Phone3CarrierID:    p.Phone3CarrierID,
		Enable:             p.Enable,
		TxtPhoneNumber:     p.TxtPhoneNumber,
		Barcode:            p.Barcode,
		EReceiptOptionID:   p.EReceiptOptionID,
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "POST",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     "patron",
		body:       body,
	}, ov)
}

// PatronUpdateParams are the inputs to PatronUpdate. Optional fields encode
// as JSON null when unset, leaving the server-side value untouched.
type PatronUpdateParams struct {
	PatronBarcode      string
	PatronPassword     string
	LogonBranchID      string
	LogonUserID        string
	LogonWorkstationID string

	ReadingListFlag *string
	EmailFormat     *string
	DeliveryOption  *string
	EmailAddress    *string
	PhoneVoice1     *string
	Password        *string
}

// PatronUpdate updates patron registration information. The server supports
// the reading list flag, email format, delivery option, primary phone
// number, email address and password.
func (c *Client) PatronUpdate(ctx context.Context, p PatronUpdateParams, ov *Overrides) (*Response, error) {
	const op = "PatronUpdate"
	if err := requireFields(op,
		"patronBarcode", p.PatronBarcode,
		"patronPassword", p.PatronPassword,
		"logonBranchID", p.LogonBranchID,
		"logonUserID", p.LogonUserID,
		"logonWorkstationID", p.LogonWorkstationID,
	); err != nil {
		return nil, err
	}
	body := struct {
		LogonBranchID      string  `json:"LogonBranchID"`
		LogonUserID        string  `json:"LogonUserID"`
		LogonWorkstationID string  `json:"LogonWorkstationID"`
		ReadingListFlag    *string `json:"ReadingListFlag"`
		EmailFormat        *string `json:"EmailFormat"`
		DeliveryOption     *string `json:"DeliveryOption"`
		EmailAddress       *string `json:"EmailAddress"`
		PhoneVoice1        *string `json:"PhoneVoice1"`
		Password           *string `json:"Password"`
	}{
		LogonBranchID:      p.LogonBranchID,
		LogonUserID:        p.LogonUserID,
		LogonWorkstationID: p.LogonWorkstationID,
		ReadingListFlag:    p.ReadingListFlag,
		EmailFormat:        p.EmailFormat,
		DeliveryOption:     p.DeliveryOption,
		EmailAddress:       p.EmailAddress,
		PhoneVoice1:        p.PhoneVoice1,
		Password:           p.Password,
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "PUT",
		scheme:     "http",
		protection: protectionPublic,
		suffix:     fmt.Sprintf("patron/%s", p.PatronBarcode),
		body:       body,
		password:   p.PatronPassword,
	}, ov)
}

// PatronSearch returns patrons matching the CCL criteria in params (for
// example {"q": "PATNL=Bar"}). Protected operation: staff must authenticate
// first.
func (c *Client) PatronSearch(ctx context.Context, accessToken, accessSecret string, params map[string]string, ov *Overrides) (*Response, error) {
	const op = "PatronSearch"
	if err := requireFields(op,
		"accessToken", accessToken,
		"accessSecret", accessSecret,
	); err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, errors.NewValidationError("params is required", op)
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "https",
		protection: protectionProtected,
		suffix:     fmt.Sprintf("%s/search/patrons/Boolean", accessToken),
		params:     params,
		password:   accessSecret,
	}, ov)
}

// PatronRenewBlocksGet returns renewal blocks for the patron ID and whether
// the patron is allowed to renew. Protected operation.
func (c *Client) PatronRenewBlocksGet(ctx context.Context, accessToken, accessSecret, patronID string, ov *Overrides) (*Response, error) {
	const op = "PatronRenewBlocksGet"
	if err := requireFields(op,
		"accessToken", accessToken,
		"accessSecret", accessSecret,
		"patronID", patronID,
	); err != nil {
		return nil, err
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "GET",
		scheme:     "https",
		protection: protectionProtected,
		suffix:     fmt.Sprintf("%s/circulation/patron/%s/renewblocks", accessToken, patronID),
		password:   accessSecret,
	}, ov)
}

// CreatePatronBlocks creates a block on a patron record. Protected operation.
func (c *Client) CreatePatronBlocks(ctx context.Context, accessToken, accessSecret, patronBarcode, blockTypeID, blockValue string, ov *Overrides) (*Response, error) {
	const op = "CreatePatronBlocks"
	if err := requireFields(op,
		"accessToken", accessToken,
		"accessSecret", accessSecret,
		"patronBarcode", patronBarcode,
		"blockTypeID", blockTypeID,
		"blockValue", blockValue,
	); err != nil {
		return nil, err
	}
	body := struct {
		BlockTypeID string `json:"BlockTypeID"`
		BlockValue  string `json:"BlockValue"`
	}{
		BlockTypeID: blockTypeID,
		BlockValue:  blockValue,
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "POST",
		scheme:     "https",
		protection: protectionProtected,
		suffix:     fmt.Sprintf("%s/patron/%s/blocks", accessToken, patronBarcode),
		body:       body,
		password:   accessSecret,
	}, ov)
}

// NotificationUpdateParams are the inputs to NotificationUpdate.
// NotificationDeliveryDate is passed through verbatim; it is already a
// formatted date token in phone notification exports. Optional fields encode
// as JSON null when unset.
type NotificationUpdateParams struct {
	AccessToken              string
	AccessSecret             string
	NotificationTypeID       string
	LogonBranchID            string
	LogonUserID              string
	LogonWorkstationID       string
	NotificationStatusID     string
	NotificationDeliveryDate string
	DeliveryOptionID         string
	DeliveryString           string
	PatronID                 string
	PatronLanguageID         string

	ReportingOrgID *string
	Details        *string
	ItemRecordID   *string
}

// NotificationUpdate updates the notification log and removes or updates the
// notification queue entry after a patron is contacted. Only telephone
// notification processing is supported.
func (c *Client) NotificationUpdate(ctx context.Context, p NotificationUpdateParams, ov *Overrides) (*Response, error) {
	const op = "NotificationUpdate"
	if err := requireFields(op,
		"accessToken", p.AccessToken,
		"accessSecret", p.AccessSecret,
		"notificationTypeID", p.NotificationTypeID,
		"logonBranchID", p.LogonBranchID,
		"logonUserID", p.LogonUserID,
		"logonWorkstationID", p.LogonWorkstationID,
		"notificationStatusID", p.NotificationStatusID,
		"notificationDeliveryDate", p.NotificationDeliveryDate,
		"deliveryOptionID", p.DeliveryOptionID,
		"deliveryString", p.DeliveryString,
		"patronID", p.PatronID,
		"patronLanguageID", p.PatronLanguageID,
	); err != nil {
		return nil, err
	}
	body := struct {
		LogonBranchID            string  `json:"LogonBranchID"`
		LogonUserID              string  `json:"LogonUserID"`
		LogonWorkstationID       string  `json:"LogonWorkstationID"`
		ReportingOrgID           *string `json:"ReportingOrgID"`
		NotificationStatusID     string  `json:"NotificationStatusID"`
		NotificationDeliveryDate string  `json:"NotificationDeliveryDate"`
		DeliveryOptionID         string  `json:"DeliveryOptionID"`
		DeliveryString           string  `json:"DeliveryString"`
		Details                  *string `json:"Details"`
		PatronID                 string  `json:"PatronID"`
		PatronLanguageID         string  `json:"PatronLanguageID"`
		ItemRecordID             *string `json:"ItemRecordID"`
	}{
		LogonBranchID:            p.LogonBranchID,
		LogonUserID:              p.LogonUserID,
		LogonWorkstationID:       p.LogonWorkstationID,
		ReportingOrgID:           p.ReportingOrgID,
		NotificationStatusID:     p.NotificationStatusID,
		NotificationDeliveryDate: p.NotificationDeliveryDate,
		DeliveryOptionID:         p.DeliveryOptionID,
		DeliveryString:           p.DeliveryString,
		Details:                  p.Details,
		PatronID:                 p.PatronID,
		PatronLanguageID:         p.PatronLanguageID,
		ItemRecordID:             p.ItemRecordID,
	}
	return c.do(ctx, request{
		operation:  op,
		method:     "PUT",
		scheme:     "https",
		protection: protectionProtected,
		suffix:     fmt.Sprintf("%s/notification/%s", p.AccessToken, p.NotificationTypeID),
		body:       body,
		password:   p.AccessSecret,
	}, ov)
}
