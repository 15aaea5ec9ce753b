package papi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DarienLibrary/PolarisAPI/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPatronAccountPay_Descriptor(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.PatronAccountPay(context.Background(), PatronAccountPayParams{
		AccessToken:     "token-123",
		AccessSecret:    "secret",
		PatronBarcode:   "B1",
		ChargeTxnID:     "1170113",
		TxnAmount:       "0",
		PaymentMethodID: "11",
		WorkstationID:   "1",
		UserID:          "2",
	}, nil)

	require.NoError(t, err)
	req := transport.requests[0]
	assert.Equal(t, "PUT", req.Method)
	assert.Equal(t,
		"https://catalog.example.org/PAPIService/REST/protected/v1/1033/100/1/token-123/patron/B1/account/1170113/pay?userid=2&wsid=1",
		req.URL)
	assert.JSONEq(t, `{"TxnAmount":"0","PaymentMethodID":"11","FreeTextNote":null}`, string(req.Body))
	// Protected operation: no token header even though a token is in play.
	assert.Empty(t, req.Header.Get("X-PAPI-AccessToken"))
}

func TestPatronRegistrationCreate_RequiredAndNulls(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.PatronRegistrationCreate(context.Background(), PatronRegistrationParams{
		LogonBranchID:      "3",
		LogonUserID:        "2",
		LogonWorkstationID: "1",
		PatronBranchID:     "3",
		NameFirst:          "Foo",
		NameLast:           "Bar",
		EmailAddress:       String("foo@example.org"),
	}, nil)

	require.NoError(t, err)
	req := transport.requests[0]
	assert.Equal(t, "POST", req.Method)
	assert.Contains(t, req.URL, "/public/v1/1033/100/1/patron")

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "Foo", body["NameFirst"])
	assert.Equal(t, "foo@example.org", body["EmailAddress"])

	// Unset optionals are present as null, not omitted.
	for _, field := range []string{"PostalCode", "Gender", "Barcode", "EReceiptOPtionID"} {
		value, present := body[field]
		assert.True(t, present, field)
		assert.Nil(t, value, field)
	}
}

func TestPatronRegistrationCreate_MissingName(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(t, mockTransport)

	_, err := client.PatronRegistrationCreate(context.Background(), PatronRegistrationParams{
		LogonBranchID:      "3",
		LogonUserID:        "2",
		LogonWorkstationID: "1",
		PatronBranchID:     "3",
		NameFirst:          "Foo",
	}, nil)

	assert.True(t, errors.IsValidation(err))
	mockTransport.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestPatronUpdate_Body(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.PatronUpdate(context.Background(), PatronUpdateParams{
		PatronBarcode:      "B1",
		PatronPassword:     "P1",
		LogonBranchID:      "3",
		LogonUserID:        "2",
		LogonWorkstationID: "1",
		EmailFormat:        String("2"),
	}, nil)

	require.NoError(t, err)
	req := transport.requests[0]
	assert.Equal(t, "PUT", req.Method)
	assert.Contains(t, req.URL, "/patron/B1")
	assert.JSONEq(t, `{
		"LogonBranchID": "3",
		"LogonUserID": "2",
		"LogonWorkstationID": "1",
		"ReadingListFlag": null,
		"EmailFormat": "2",
		"DeliveryOption": null,
		"EmailAddress": null,
		"PhoneVoice1": null,
		"Password": null
	}`, string(req.Body))
}

func TestPatronReadingHistoryGet_Params(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.PatronReadingHistoryGet(context.Background(), "B1", "P1", "10", "10", nil)

	require.NoError(t, err)
	assert.Equal(t,
		"http://catalog.example.org/PAPIService/REST/public/v1/1033/100/1/patron/B1/readinghistory?page=10&rowsperpage=10",
		transport.requests[0].URL)
}

func TestNotificationUpdate_DeliveryDatePassthrough(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.NotificationUpdate(context.Background(), NotificationUpdateParams{
		AccessToken:              "token-123",
		AccessSecret:             "secret",
		NotificationTypeID:       "3",
		LogonBranchID:            "3",
		LogonUserID:              "2",
		LogonWorkstationID:       "1",
		NotificationStatusID:     "1",
		NotificationDeliveryDate: "/Date(1391058000000-0500)/",
		DeliveryOptionID:         "3",
		DeliveryString:           "4237570576",
		PatronID:                 "121175",
		PatronLanguageID:         "1033",
	}, nil)

	require.NoError(t, err)
	req := transport.requests[0]
	assert.Contains(t, req.URL, "https://")
	assert.Contains(t, req.URL, "/protected/")
	assert.Contains(t, req.URL, "/token-123/notification/3")

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	// Preformatted delivery dates are not re-wrapped.
	assert.Equal(t, "/Date(1391058000000-0500)/", body["NotificationDeliveryDate"])
	assert.Nil(t, body["ReportingOrgID"])
}

func TestSynchTasksCheckout_Descriptor(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.SynchTasksCheckout(context.Background(), SynchTasksCheckoutParams{
		AccessToken:         "token-123",
		AccessSecret:        "secret",
		WorkstationID:       "1",
		UserID:              "2",
		VendorID:            "james",
		VendorContractID:    "12345",
		UniqueRecordID:      "rec-1",
		PatronBarcode:       "B1",
		ItemExpireDateTime:  "1491058",
		TransactionDateTime: "1491059",
	}, nil)

	require.NoError(t, err)
	req := transport.requests[0]
	assert.Equal(t,
		"https://catalog.example.org/PAPIService/REST/protected/v1/1033/100/1/token-123/synch/tasks/checkout?userid=2&wsid=1",
		req.URL)

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "/Date(1491058000-0000)/", body["ItemExpireDateTime"])
	assert.Equal(t, "/Date(1491059000-0000)/", body["TransactionDateTime"])
}
