package services

import (
	"context"
	"errors"
	"testing"

	"insure-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLeadCreator
type MockLeadCreator struct {
	mock.Mock
}

func (m *MockLeadCreator) Create(ctx context.Context, l *models.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

// MockQuoteMailer
type MockQuoteMailer struct {
	mock.Mock
}

func (m *MockQuoteMailer) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockQuoteMailer) SendQuoteNotification(q *models.QuoteRequest) error {
	return m.Called(q).Error(0)
}

// MockQuoteRelay
type MockQuoteRelay struct {
	mock.Mock
}

func (m *MockQuoteRelay) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockQuoteRelay) Forward(ctx context.Context, name, phone, email, insuranceType, vehicleNumber, message string) error {
	return m.Called(ctx, name, phone, email, insuranceType, vehicleNumber, message).Error(0)
}

func validCarQuote() *models.QuoteRequest {
	return &models.QuoteRequest{
		Name:          "Asha Patel",
		Phone:         "9876543210",
		Email:         "asha@example.com",
		InsuranceType: "Car Insurance",
		VehicleNumber: "gj05ab1234",
		Message:       "Looking for comprehensive cover",
	}
}

func TestValidateAcceptsCarQuote(t *testing.T) {
	assert.NoError(t, Validate(validCarQuote()))
}

func TestValidateRequiresNameAndPhone(t *testing.T) {
	err := Validate(&models.QuoteRequest{InsuranceType: "Health Insurance", DateOfBirth: "1990-01-15"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")
	assert.Contains(t, vErr.Fields, "phone")
}

func TestValidateRejectsBadPhone(t *testing.T) {
	q := validCarQuote()
	q.Phone = "12345"

	var vErr *ValidationError
	require.ErrorAs(t, Validate(q), &vErr)
	assert.Contains(t, vErr.Fields, "phone")
}

func TestValidateRejectsBadEmail(t *testing.T) {
	q := validCarQuote()
	q.Email = "not-an-email"

	var vErr *ValidationError
	require.ErrorAs(t, Validate(q), &vErr)
	assert.Contains(t, vErr.Fields, "email")
}

func TestValidateEmailOptional(t *testing.T) {
	q := validCarQuote()
	q.Email = ""
	assert.NoError(t, Validate(q))
}

func TestValidateUnknownInsuranceType(t *testing.T) {
	q := validCarQuote()
	q.InsuranceType = "Pet Insurance"

	var vErr *ValidationError
	require.ErrorAs(t, Validate(q), &vErr)
	assert.Contains(t, vErr.Fields, "insurance_type")
}

func TestValidateMotorProductsNeedVehicleNumber(t *testing.T) {
	for _, product := range []string{"Two-Wheeler Insurance", "Car Insurance", "Commercial Vehicle Insurance"} {
		q := validCarQuote()
		q.InsuranceType = product
		q.VehicleNumber = ""

		var vErr *ValidationError
		require.ErrorAs(t, Validate(q), &vErr, product)
		assert.Contains(t, vErr.Fields, "vehicle_number", product)
	}
}

func TestValidateAgeRatedProductsNeedDOB(t *testing.T) {
	for _, product := range []string{"Health Insurance", "Life Insurance"} {
		q := &models.QuoteRequest{
			Name:          "Asha Patel",
			Phone:         "9876543210",
			InsuranceType: product,
		}

		var vErr *ValidationError
		require.ErrorAs(t, Validate(q), &vErr, product)
		assert.Contains(t, vErr.Fields, "dob", product)

		q.DateOfBirth = "1988-03-20"
		assert.NoError(t, Validate(q), product)
	}
}

func TestValidateTravelQuote(t *testing.T) {
	q := &models.QuoteRequest{
		Name:          "Asha Patel",
		Phone:         "9876543210",
		InsuranceType: "Travel Insurance",
		DateOfBirth:   "1990-01-15",
	}

	var vErr *ValidationError
	require.ErrorAs(t, Validate(q), &vErr)
	assert.Contains(t, vErr.Fields, "destinations")
	assert.Contains(t, vErr.Fields, "travel_start_date")
	assert.Contains(t, vErr.Fields, "travel_end_date")

	q.Destinations = []string{"Singapore", "Malaysia"}
	q.TravelStart = "2025-07-01"
	q.TravelEnd = "2025-06-20"
	require.ErrorAs(t, Validate(q), &vErr)
	assert.Contains(t, vErr.Fields, "travel_end_date")

	q.TravelEnd = "2025-07-15"
	assert.NoError(t, Validate(q))
}

func TestSubmitPersistsLead(t *testing.T) {
	leads := new(MockLeadCreator)
	leads.On("Create", mock.Anything, mock.AnythingOfType("*models.Lead")).Return(nil)

	svc := NewQuoteService(leads, nil, nil)
	lead, err := svc.Submit(context.Background(), validCarQuote())

	require.NoError(t, err)
	assert.Equal(t, "Asha Patel", lead.Name)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, "website", lead.Source)
	assert.Equal(t, "GJ05AB1234", lead.VehicleNumber)
	leads.AssertExpectations(t)
}

func TestSubmitAcceptsEveryCatalogueType(t *testing.T) {
	// The catalogue must accept the product names the public form sends.
	for _, insuranceType := range InsuranceTypes {
		assert.True(t, validInsuranceType(insuranceType), insuranceType)
	}
}

func TestSubmitHealthQuoteNeedsDOB(t *testing.T) {
	leads := new(MockLeadCreator)
	leads.On("Create", mock.Anything, mock.AnythingOfType("*models.Lead")).Return(nil)
	svc := NewQuoteService(leads, nil, nil)

	q := &models.QuoteRequest{
		Name:          "Asha",
		Phone:         "9999999999",
		InsuranceType: "Health Insurance",
	}
	_, err := svc.Submit(context.Background(), q)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "dob")
	leads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	q.DateOfBirth = "1990-01-15"
	lead, err := svc.Submit(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "Health Insurance", lead.InsuranceType)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, "website", lead.Source)
	leads.AssertExpectations(t)
}

func TestSubmitStorageFailureSurfaces(t *testing.T) {
	leads := new(MockLeadCreator)
	leads.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	mailer := new(MockQuoteMailer)
	relay := new(MockQuoteRelay)

	svc := NewQuoteService(leads, mailer, relay)
	_, err := svc.Submit(context.Background(), validCarQuote())

	require.Error(t, err)
	// Side effects never fire when the lead was not stored
	mailer.AssertNotCalled(t, "SendQuoteNotification", mock.Anything)
	relay.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitEmailFailureStillSucceeds(t *testing.T) {
	leads := new(MockLeadCreator)
	leads.On("Create", mock.Anything, mock.Anything).Return(nil)

	mailer := new(MockQuoteMailer)
	mailer.On("Configured").Return(true)
	mailer.On("SendQuoteNotification", mock.Anything).Return(errors.New("smtp timeout"))

	relay := new(MockQuoteRelay)
	relay.On("Configured").Return(true)
	relay.On("Forward", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(errors.New("relay down"))

	svc := NewQuoteService(leads, mailer, relay)
	lead, err := svc.Submit(context.Background(), validCarQuote())

	require.NoError(t, err)
	assert.NotEmpty(t, lead.Name)
	mailer.AssertExpectations(t)
	relay.AssertExpectations(t)
}

func TestSubmitSkipsUnconfiguredIntegrations(t *testing.T) {
	leads := new(MockLeadCreator)
	leads.On("Create", mock.Anything, mock.Anything).Return(nil)

	mailer := new(MockQuoteMailer)
	mailer.On("Configured").Return(false)

	relay := new(MockQuoteRelay)
	relay.On("Configured").Return(false)

	svc := NewQuoteService(leads, mailer, relay)
	_, err := svc.Submit(context.Background(), validCarQuote())

	require.NoError(t, err)
	mailer.AssertNotCalled(t, "SendQuoteNotification", mock.Anything)
	relay.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComposeMessageFoldsTravelDetails(t *testing.T) {
	q := &models.QuoteRequest{
		InsuranceType: "Travel Insurance",
		Message:       "Family trip",
		Destinations:  []string{"Dubai"},
		TravelStart:   "2025-08-01",
		TravelEnd:     "2025-08-10",
	}

	msg := composeMessage(q)
	assert.Equal(t, "Family trip | Destinations: Dubai | Travel dates: 2025-08-01 to 2025-08-10", msg)
}
