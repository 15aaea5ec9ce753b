package papi

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldRequestCancel_Descriptor(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.HoldRequestCancel(context.Background(), "B1", "P1", "311260", "1", "2", nil)

	require.NoError(t, err)
	req := transport.requests[0]
	assert.Equal(t, "PUT", req.Method)
	assert.Equal(t,
		"http://catalog.example.org/PAPIService/REST/public/v1/1033/100/1/patron/B1/holdrequests/311260/cancelled?userid=2&wsid=1",
		req.URL)
}

func TestHoldRequestCancelAllForPatron_SentinelEquivalence(t *testing.T) {
	direct := &recordingTransport{}
	viaAll := &recordingTransport{}

	_, err := newTestClient(t, direct).HoldRequestCancel(context.Background(), "B1", "P1", AllRecords, "1", "2", nil)
	require.NoError(t, err)
	_, err = newTestClient(t, viaAll).HoldRequestCancelAllForPatron(context.Background(), "B1", "P1", "1", "2", nil)
	require.NoError(t, err)

	// The all-for-patron variant is the same operation with the sentinel ID.
	assert.Equal(t, direct.requests[0], viaAll.requests[0])
}

func TestHoldRequestSuspend_DateWrapping(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.HoldRequestSuspend(context.Background(), "B1", "P1", "311608", "active", "1", "1491058", nil)

	require.NoError(t, err)
	req := transport.requests[0]
	assert.Equal(t,
		"http://catalog.example.org/PAPIService/REST/public/v1/1033/100/1/patron/B1/holdrequests/311608/active",
		req.URL)
	assert.JSONEq(t, `{"UserID":"1","ActivationDate":"/Date(1491058000-0000)/"}`, string(req.Body))
}

func TestHoldRequestSuspendAllForPatron_Sentinel(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.HoldRequestSuspendAllForPatron(context.Background(), "B1", "P1", "active", "1", "1491058", nil)

	require.NoError(t, err)
	assert.Contains(t, transport.requests[0].URL, "/patron/B1/holdrequests/0/active")
}

func TestHoldRequestCreate_Body(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	answer := "0"
	_, err := client.HoldRequestCreate(context.Background(), HoldRequestCreateParams{
		PatronID:        "121175",
		BibID:           "353063",
		PickupOrgID:     "3",
		UserID:          "2",
		RequestingOrgID: "3",
		ActivationDate:  "1491058",
		Answer:          &answer,
	}, nil)

	require.NoError(t, err)
	req := transport.requests[0]
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t,
		"http://catalog.example.org/PAPIService/REST/public/v1/1033/100/1/holdrequest",
		req.URL)

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "121175", body["PatronID"])
	assert.Equal(t, "/Date(1491058000-0000)/", body["ActivationDate"])
	assert.Equal(t, "0", body["IsBorrowByMail"])
	assert.Equal(t, "0", body["Answer"])
	assert.Equal(t, "", body["ItemBarcode"])
}

func TestHoldRequestCreate_ActivationDateDefaultsToNow(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.HoldRequestCreate(context.Background(), HoldRequestCreateParams{
		PatronID:        "121175",
		BibID:           "353063",
		PickupOrgID:     "3",
		UserID:          "2",
		RequestingOrgID: "3",
	}, nil)

	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(transport.requests[0].Body, &body))
	wantToken := "/Date(" + strconv.FormatInt(fixedTime.Unix(), 10) + "000-0000)/"
	assert.Equal(t, wantToken, body["ActivationDate"])
}

func TestHoldRequestCreate_NullAnswerWhenUnset(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.HoldRequestCreate(context.Background(), HoldRequestCreateParams{
		PatronID:        "121175",
		BibID:           "353063",
		PickupOrgID:     "3",
		UserID:          "2",
		RequestingOrgID: "3",
	}, nil)

	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(transport.requests[0].Body, &body))
	value, present := body["Answer"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestItemRenew_Body(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.ItemRenew(context.Background(), ItemRenewParams{
		PatronBarcode:        "B1",
		PatronPassword:       "P1",
		ItemID:               "311608",
		LogonBranchID:        "3",
		LogonUserID:          "2",
		LogonWorkstationID:   "1",
		IgnoreOverrideErrors: "true",
	}, nil)

	require.NoError(t, err)
	req := transport.requests[0]
	assert.Equal(t, "PUT", req.Method)
	assert.Contains(t, req.URL, "/patron/B1/itemsout/311608")
	assert.JSONEq(t, `{
		"Action": "renew",
		"LogonBranchID": "3",
		"LogonUserID": "2",
		"LogonWorkstationID": "1",
		"RenewData": {"IgnoreOverrideErrors": "true"}
	}`, string(req.Body))
}

func TestItemRenewAllForPatron_Sentinel(t *testing.T) {
	direct := &recordingTransport{}
	viaAll := &recordingTransport{}

	params := ItemRenewParams{
		PatronBarcode:        "B1",
		PatronPassword:       "P1",
		LogonBranchID:        "3",
		LogonUserID:          "2",
		LogonWorkstationID:   "1",
		IgnoreOverrideErrors: "true",
	}
	withSentinel := params
	withSentinel.ItemID = AllRecords

	_, err := newTestClient(t, direct).ItemRenew(context.Background(), withSentinel, nil)
	require.NoError(t, err)
	_, err = newTestClient(t, viaAll).ItemRenewAllForPatron(context.Background(), params, nil)
	require.NoError(t, err)

	assert.Equal(t, direct.requests[0], viaAll.requests[0])
}

func TestHoldRequestReply_Descriptor(t *testing.T) {
	transport := &recordingTransport{}
	client := newTestClient(t, transport)

	_, err := client.HoldRequestReply(context.Background(),
		"6297419E-57C1-460B-9A84-BC4A04B3F715", "sIeGLBBJaKEtHvRFoXq3pa", "1al_YfH4ge6$nbiJ7pNaXW", "3", "0", "3", nil)

	require.NoError(t, err)
	req := transport.requests[0]
	assert.Equal(t, "PUT", req.Method)
	assert.Contains(t, req.URL, "/holdrequest/6297419E-57C1-460B-9A84-BC4A04B3F715")
	assert.JSONEq(t, `{
		"TxnGroupQualifier": "sIeGLBBJaKEtHvRFoXq3pa",
		"TxnQualifier": "1al_YfH4ge6$nbiJ7pNaXW",
		"RequestingOrgID": "3",
		"Answer": "0",
		"State": "3"
	}`, string(req.Body))
}
