package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Dan9191/underwriting-service/internal/config"
	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/Dan9191/underwriting-service/internal/repository"
	"github.com/Dan9191/underwriting-service/internal/underwriting"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) SaveProperty(ctx context.Context, p *models.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStore) SaveAnalysis(ctx context.Context, a *models.Analysis) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockStore) FindAnalysis(ctx context.Context, id string) (*models.Analysis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Analysis), args.Error(1)
}

func (m *MockStore) LatestAnalyses(ctx context.Context) ([]models.Analysis, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Analysis), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendAnalysisSummary(to string, a *models.Analysis) error {
	args := m.Called(to, a)
	return args.Error(0)
}

func newTestService(store *MockStore, notifier *MockNotifier) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "jwt-secret", HMACSecret: "hmac-secret", RentSeed: 42, BatchWorkers: 3}
	a := underwriting.DefaultAssumptions()
	a.ReferenceYear = 2026
	var n Notifier
	if notifier != nil {
		n = notifier
	}
	svc := NewService(store, n, logger, cfg, a, nil)
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }
	return svc
}

func oakRidge() models.Property {
	return models.Property{
		ID:            "oak-ridge",
		Address:       "2456 Oak Ridge Drive, Houston, TX 77056",
		PurchasePrice: 325000,
		SquareFootage: 2150,
		YearBuilt:     2015,
		EstimatedRent: 2200,
	}
}

func TestAnalyze_StoresSealedAnalysis(t *testing.T) {
	store := new(MockStore)
	store.On("SaveProperty", mock.Anything, mock.AnythingOfType("*models.Property")).Return(nil)
	store.On("SaveAnalysis", mock.Anything, mock.AnythingOfType("*models.Analysis")).Return(nil)
	svc := newTestService(store, nil)

	a, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Property:    oakRidge(),
		Requirement: models.ClientRequirement{MinCashOnCash: 0.08},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "oak-ridge", a.PropertyID)
	assert.Equal(t, 2026, a.Assumptions.ReferenceYear)
	assert.NotEmpty(t, a.Plan.Steps, "default catalog should be used")
	assert.Equal(t, "Rental rate optimization", a.Plan.Steps[0].Action.Title)
	assert.NotEmpty(t, a.Seal)
	store.AssertExpectations(t)
}

func TestAnalyze_ValidationErrorIsNotStored(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(store, nil)
	p := oakRidge()
	p.PurchasePrice = 0

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Property: p})

	assert.ErrorIs(t, err, underwriting.ErrValidation)
	store.AssertNotCalled(t, "SaveAnalysis", mock.Anything, mock.Anything)
}

func TestAnalyze_EstimatesRentAndAssignsID(t *testing.T) {
	store := new(MockStore)
	store.On("SaveProperty", mock.Anything, mock.Anything).Return(nil)
	store.On("SaveAnalysis", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(store, nil)
	p := oakRidge()
	p.ID = ""
	p.EstimatedRent = 0

	a, err := svc.Analyze(context.Background(), AnalyzeRequest{Property: p, EstimateRent: true})
	require.NoError(t, err)

	assert.NotEmpty(t, a.PropertyID)
	withID := p
	withID.ID = a.PropertyID
	assert.Equal(t, underwriting.EstimateRent(withID, 42), a.Property.EstimatedRent)
	assert.Greater(t, a.Property.EstimatedRent, 0.0)
}

func TestAnalyze_ExplicitCatalogAndAssumptions(t *testing.T) {
	store := new(MockStore)
	store.On("SaveProperty", mock.Anything, mock.Anything).Return(nil)
	store.On("SaveAnalysis", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(store, nil)

	a, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Property:    oakRidge(),
		Requirement: models.ClientRequirement{MinCashOnCash: 0.5},
		Catalog:     []models.OptimizationAction{},
		Assumptions: json.RawMessage(`{"interest_rate": 0}`),
	})
	require.NoError(t, err)

	assert.Empty(t, a.Plan.Steps)
	assert.False(t, a.Plan.TargetMet)
	assert.Equal(t, 260000.0/360, a.Loan.MonthlyPayment)
	assert.Equal(t, 2026, a.Assumptions.ReferenceYear)
}

func TestAnalyze_PartialAssumptionsKeepConfiguredTable(t *testing.T) {
	store := new(MockStore)
	store.On("SaveProperty", mock.Anything, mock.Anything).Return(nil)
	store.On("SaveAnalysis", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(store, nil)

	a, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Property:    oakRidge(),
		Assumptions: json.RawMessage(`{"interest_rate": 0.05, "down_payment_fraction": 0.25, "scenarios": {"low": {"rent_multiplier": 0.8}}}`),
	})
	require.NoError(t, err)

	defaults := underwriting.DefaultAssumptions()
	assert.Equal(t, 0.05, a.Assumptions.InterestRate)
	assert.Equal(t, 0.25, a.Assumptions.DownPaymentFraction)
	assert.Equal(t, defaults.PropertyTaxRate, a.Assumptions.PropertyTaxRate)
	assert.Equal(t, defaults.Utilities, a.Assumptions.Utilities)
	assert.Equal(t, 0.8, a.Assumptions.Scenarios.Low.RentMultiplier)
	assert.Equal(t, defaults.Scenarios.Low.ExpenseMultiplier, a.Assumptions.Scenarios.Low.ExpenseMultiplier)
	assert.Equal(t, defaults.Scenarios.High, a.Assumptions.Scenarios.High)
	assert.Equal(t, 2026, a.Assumptions.ReferenceYear)
	assert.InDelta(t, 325000*0.25, a.Loan.DownPayment, 1e-6)
}

func TestAnalyze_RequestCannotLowerDownPaymentFloor(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(store, nil)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Property:    oakRidge(),
		Assumptions: json.RawMessage(`{"down_payment_fraction": 0, "min_down_payment_fraction": 0, "closing_cost_fraction": 0}`),
	})

	require.ErrorIs(t, err, underwriting.ErrValidation)
	var verr *underwriting.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "down payment fraction", verr.Field)
	store.AssertNotCalled(t, "SaveAnalysis", mock.Anything, mock.Anything)
}

func TestAnalyze_MalformedAssumptions(t *testing.T) {
	svc := newTestService(new(MockStore), nil)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Property:    oakRidge(),
		Assumptions: json.RawMessage(`{"interest_rate": "high"}`),
	})
	assert.ErrorIs(t, err, underwriting.ErrValidation)
}

func TestAnalyze_Notifies(t *testing.T) {
	store := new(MockStore)
	store.On("SaveProperty", mock.Anything, mock.Anything).Return(nil)
	store.On("SaveAnalysis", mock.Anything, mock.Anything).Return(nil)
	notifier := new(MockNotifier)
	notifier.On("SendAnalysisSummary", "client@example.com", mock.AnythingOfType("*models.Analysis")).
		Return(errors.New("smtp down"))
	svc := newTestService(store, notifier)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Property:    oakRidge(),
		Requirement: models.ClientRequirement{Email: "client@example.com"},
		Notify:      true,
	})

	require.NoError(t, err, "notification failures are logged, not returned")
	notifier.AssertExpectations(t)
}

func TestAnalyzeBatch_IsolatesFailures(t *testing.T) {
	store := new(MockStore)
	store.On("SaveProperty", mock.Anything, mock.Anything).Return(nil)
	store.On("SaveAnalysis", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(store, nil)

	bad := oakRidge()
	bad.ID = "bad"
	bad.EstimatedRent = -5
	second := oakRidge()
	second.ID = "second"
	second.PurchasePrice = 280000

	floor := oakRidge()
	floor.ID = "floor"

	items, err := svc.AnalyzeBatch(context.Background(), []AnalyzeRequest{
		{Property: oakRidge()}, {Property: bad}, {Property: second},
		{Property: floor, Assumptions: json.RawMessage(`{"down_payment_fraction": 0.1}`)},
	})
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "floor", items[3].PropertyID)
	assert.Contains(t, items[3].Error, "down payment fraction")

	assert.Equal(t, "oak-ridge", items[0].PropertyID)
	assert.NotNil(t, items[0].Analysis)
	assert.Equal(t, "bad", items[1].PropertyID)
	assert.Contains(t, items[1].Error, "estimated rent")
	assert.Nil(t, items[1].Analysis)
	assert.Equal(t, "second", items[2].PropertyID)
	assert.Equal(t, 280000.0, items[2].Analysis.Loan.PurchasePrice)
	store.AssertNumberOfCalls(t, "SaveAnalysis", 2)
}

func TestGetAnalysis_VerifiesSeal(t *testing.T) {
	store := new(MockStore)
	store.On("SaveProperty", mock.Anything, mock.Anything).Return(nil)
	var saved *models.Analysis
	store.On("SaveAnalysis", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*models.Analysis)
	}).Return(nil)
	svc := newTestService(store, nil)

	a, err := svc.Analyze(context.Background(), AnalyzeRequest{Property: oakRidge()})
	require.NoError(t, err)
	require.NotNil(t, saved)

	store.On("FindAnalysis", mock.Anything, a.ID).Return(saved, nil).Once()
	got, err := svc.GetAnalysis(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	tampered := *saved
	tampered.Returns.CashOnCash = 0.25
	store.On("FindAnalysis", mock.Anything, "tampered").Return(&tampered, nil).Once()
	_, err = svc.GetAnalysis(context.Background(), "tampered")
	assert.ErrorIs(t, err, ErrTampered)

	store.On("FindAnalysis", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()
	_, err = svc.GetAnalysis(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPortfolio(t *testing.T) {
	store := new(MockStore)
	store.On("LatestAnalyses", mock.Anything).Return([]models.Analysis{
		{Returns: models.ReturnMetrics{CashOnCash: 0.1, Total: 0.3, CashInvested: 50000, AnnualCashFlow: 5000}},
		{Returns: models.ReturnMetrics{CashOnCash: 0.2, Total: 0.4, CashInvested: 50000, AnnualCashFlow: 10000}},
	}, nil)
	svc := newTestService(store, nil)

	summary, err := svc.Portfolio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Properties)
	assert.InDelta(t, 0.15, summary.PortfolioCashOnCash, 1e-9)
}

func TestReanalyzeAll(t *testing.T) {
	store := new(MockStore)
	broken := oakRidge()
	broken.ID = "broken"
	broken.PurchasePrice = -1
	store.On("LatestAnalyses", mock.Anything).Return([]models.Analysis{
		{Property: oakRidge(), Requirement: models.ClientRequirement{MinCashOnCash: 0.05}},
		{Property: broken},
	}, nil)
	store.On("SaveProperty", mock.Anything, mock.Anything).Return(nil)
	store.On("SaveAnalysis", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(store, nil)

	n, err := svc.ReanalyzeAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRegisterAndLogin(t *testing.T) {
	store := new(MockStore)
	var created *models.User
	store.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.User)
		created.ID = 7
	}).Return(nil)
	svc := newTestService(store, nil)

	user, err := svc.Register(context.Background(), "analyst", "analyst@example.com", "correct horse")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))

	store.On("FindUserByEmail", mock.Anything, "analyst@example.com").Return(created, nil)
	store.On("FindUserByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)

	token, err := svc.Login(context.Background(), "analyst@example.com", "correct horse")
	require.NoError(t, err)
	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("jwt-secret"), nil
	}, jwt.WithoutClaimsValidation())
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)

	_, err = svc.Login(context.Background(), "analyst@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(new(MockStore), nil)
	_, err := svc.Register(context.Background(), "analyst", "analyst@example.com", "short")
	assert.ErrorIs(t, err, underwriting.ErrValidation)
}
