package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"insure-backend/internal/models"
	"insure-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeadCreator struct {
	created *models.Lead
	err     error
}

func (s *stubLeadCreator) Create(ctx context.Context, l *models.Lead) error {
	if s.err != nil {
		return s.err
	}
	l.ID = "lead-1"
	s.created = l
	return nil
}

func postQuote(t *testing.T, h *QuoteHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h.SubmitQuote(rec, req)
	return rec
}

func TestSubmitQuoteAccepted(t *testing.T) {
	store := &stubLeadCreator{}
	h := NewQuoteHandler(services.NewQuoteService(store, nil, nil))

	rec := postQuote(t, h, models.QuoteRequest{
		Name:          "Asha Patel",
		Phone:         "9876543210",
		InsuranceType: "Car Insurance",
		VehicleNumber: "GJ05AB1234",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, store.created)
	assert.Equal(t, models.LeadStatusNew, store.created.Status)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "lead-1", resp["lead_id"])
}

func TestSubmitQuoteValidationFailure(t *testing.T) {
	store := &stubLeadCreator{}
	h := NewQuoteHandler(services.NewQuoteService(store, nil, nil))

	rec := postQuote(t, h, models.QuoteRequest{
		Name:          "Asha Patel",
		Phone:         "9876543210",
		InsuranceType: "Car Insurance",
		// vehicle number missing for a motor product
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, store.created)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "vehicle_number")
}

func TestSubmitQuoteBadJSON(t *testing.T) {
	h := NewQuoteHandler(services.NewQuoteService(&stubLeadCreator{}, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.SubmitQuote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
