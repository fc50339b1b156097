package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/underwriting-service/internal/config"
	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/Dan9191/underwriting-service/internal/underwriting"
	"github.com/Dan9191/underwriting-service/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown user or a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTampered is returned when a stored analysis no longer matches its seal
	ErrTampered = errors.New("analysis seal mismatch")
)

// Store is the persistence the service depends on
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	SaveProperty(ctx context.Context, p *models.Property) error
	SaveAnalysis(ctx context.Context, a *models.Analysis) error
	FindAnalysis(ctx context.Context, id string) (*models.Analysis, error)
	LatestAnalyses(ctx context.Context) ([]models.Analysis, error)
}

// Notifier delivers analysis summaries to clients
type Notifier interface {
	SendAnalysisSummary(to string, a *models.Analysis) error
}

// AnalyzeRequest is one property submitted for underwriting
type AnalyzeRequest struct {
	Property     models.Property             `json:"property"`
	Requirement  models.ClientRequirement    `json:"requirement"`
	Catalog      []models.OptimizationAction `json:"catalog,omitempty"`     // nil uses the configured or default catalog
	Assumptions  json.RawMessage             `json:"assumptions,omitempty"` // fields overriding the configured rate table
	EstimateRent bool                        `json:"estimate_rent"`         // estimate rent when none is given
	Notify       bool                        `json:"notify"`                // email the summary to requirement.email
}

// BatchItem is the outcome of one request in a batch
type BatchItem struct {
	PropertyID string           `json:"property_id"`
	Analysis   *models.Analysis `json:"analysis,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// Service handles business logic
type Service struct {
	repo        Store
	notifier    Notifier
	log         *logrus.Logger
	config      *config.Config
	assumptions models.FinancialAssumptions
	catalog     []models.OptimizationAction
	now         func() time.Time
}

// NewService initializes a new service
func NewService(repo Store, notifier Notifier, log *logrus.Logger, cfg *config.Config,
	assumptions models.FinancialAssumptions, catalog []models.OptimizationAction) *Service {
	return &Service{
		repo:        repo,
		notifier:    notifier,
		log:         log,
		config:      cfg,
		assumptions: assumptions,
		catalog:     catalog,
		now:         time.Now,
	}
}

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || len(password) < 8 {
		return nil, fmt.Errorf("%w: username, email and a password of at least 8 characters are required", underwriting.ErrValidation)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		s.log.Debugf("Login lookup failed for %s: %v", email, err)
		return "", ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	// Generate JWT
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(s.now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// Analyze underwrites one property, stores the sealed result and optionally notifies the client
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (*models.Analysis, error) {
	job, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	analysis, err := underwriting.Analyze(job.Property, job.Assumptions, job.Requirement, job.Catalog)
	if err != nil {
		s.log.WithField("property_id", job.Property.ID).Warnf("Analysis rejected: %v", err)
		return nil, err
	}

	if err := s.store(ctx, &analysis); err != nil {
		return nil, err
	}
	if req.Notify {
		s.notify(&analysis)
	}
	return &analysis, nil
}

// AnalyzeBatch underwrites many properties in parallel. A failing property is
// reported in its item and never aborts the others.
func (s *Service) AnalyzeBatch(ctx context.Context, reqs []AnalyzeRequest) ([]BatchItem, error) {
	items := make([]BatchItem, len(reqs))
	jobs := make([]underwriting.Job, 0, len(reqs))
	positions := make([]int, 0, len(reqs))
	for i, req := range reqs {
		job, prepErr := s.prepare(req)
		if prepErr != nil {
			items[i] = BatchItem{PropertyID: req.Property.ID, Error: prepErr.Error()}
			continue
		}
		jobs = append(jobs, job)
		positions = append(positions, i)
	}

	results, err := underwriting.AnalyzeBatch(ctx, jobs, s.config.BatchWorkers)
	for j, r := range results {
		i := positions[j]
		items[i].PropertyID = r.PropertyID
		if r.Err != nil {
			items[i].Error = r.Err.Error()
			continue
		}
		if storeErr := s.store(ctx, r.Analysis); storeErr != nil {
			items[i].Error = storeErr.Error()
			continue
		}
		items[i].Analysis = r.Analysis
		if reqs[i].Notify {
			s.notify(r.Analysis)
		}
	}

	s.log.WithFields(logrus.Fields{"properties": len(reqs)}).Info("Batch analysis finished")
	if err != nil {
		return items, fmt.Errorf("batch interrupted: %w", err)
	}
	return items, nil
}

// GetAnalysis returns a stored analysis after checking its seal
func (s *Service) GetAnalysis(ctx context.Context, id string) (*models.Analysis, error) {
	a, err := s.repo.FindAnalysis(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := utils.VerifySeal(*a, s.config.HMACSecret)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.WithField("analysis_id", id).Error("Stored analysis failed seal verification")
		return nil, ErrTampered
	}
	return a, nil
}

// Portfolio summarizes the latest analysis of every stored property
func (s *Service) Portfolio(ctx context.Context) (models.PortfolioSummary, error) {
	analyses, err := s.repo.LatestAnalyses(ctx)
	if err != nil {
		return models.PortfolioSummary{}, err
	}
	return underwriting.Summarize(analyses), nil
}

// ReanalyzeAll re-underwrites every stored property with the current rate table
// and returns how many analyses were refreshed
func (s *Service) ReanalyzeAll(ctx context.Context) (int, error) {
	latest, err := s.repo.LatestAnalyses(ctx)
	if err != nil {
		return 0, err
	}

	reqs := make([]AnalyzeRequest, len(latest))
	for i, a := range latest {
		reqs[i] = AnalyzeRequest{Property: a.Property, Requirement: a.Requirement}
	}

	items, err := s.AnalyzeBatch(ctx, reqs)
	refreshed := 0
	for _, item := range items {
		if item.Error != "" {
			s.log.WithField("property_id", item.PropertyID).Warnf("Re-analysis failed: %s", item.Error)
			continue
		}
		refreshed++
	}
	return refreshed, err
}

// prepare resolves defaults for a request into an underwriting job
func (s *Service) prepare(req AnalyzeRequest) (underwriting.Job, error) {
	p := req.Property
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	a, err := s.overrideAssumptions(req.Assumptions)
	if err != nil {
		return underwriting.Job{}, err
	}

	if req.EstimateRent && p.EstimatedRent == 0 {
		p.EstimatedRent = underwriting.EstimateRent(p, s.config.RentSeed)
		s.log.WithFields(logrus.Fields{"property_id": p.ID, "rent": p.EstimatedRent}).Debug("Estimated market rent")
	}

	catalog := req.Catalog
	if catalog == nil {
		catalog = s.catalog
	}
	if catalog == nil {
		catalog = underwriting.DefaultCatalog(p, underwriting.ComputeExpenses(p, p.PurchasePrice, a))
	}

	return underwriting.Job{Property: p, Assumptions: a, Requirement: req.Requirement, Catalog: catalog}, nil
}

// overrideAssumptions applies the fields present in raw to a copy of the
// configured rate table. The down-payment floor always comes from configuration.
func (s *Service) overrideAssumptions(raw json.RawMessage) (models.FinancialAssumptions, error) {
	a := s.assumptions
	if len(raw) == 0 || string(raw) == "null" {
		return a, nil
	}
	if err := json.Unmarshal(raw, &a); err != nil {
		return models.FinancialAssumptions{}, fmt.Errorf("%w: assumptions: %v", underwriting.ErrValidation, err)
	}
	if a.MinDownPaymentFraction != s.assumptions.MinDownPaymentFraction {
		s.log.Debugf("Ignoring requested down payment floor %g", a.MinDownPaymentFraction)
		a.MinDownPaymentFraction = s.assumptions.MinDownPaymentFraction
	}
	return a, nil
}

// store assigns identity, seals and persists an analysis
func (s *Service) store(ctx context.Context, a *models.Analysis) error {
	a.ID = uuid.NewString()
	a.CreatedAt = s.now().UTC()
	seal, err := utils.SealAnalysis(*a, s.config.HMACSecret)
	if err != nil {
		return err
	}
	a.Seal = seal

	if err := s.repo.SaveProperty(ctx, &a.Property); err != nil {
		return err
	}
	if err := s.repo.SaveAnalysis(ctx, a); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"analysis_id":  a.ID,
		"property_id":  a.PropertyID,
		"verdict":      a.Recommendation.Verdict,
		"cash_on_cash": a.Returns.CashOnCash,
		"undefined":    a.Returns.Undefined,
		"target_met":   a.Plan.TargetMet,
	}).Info("Analysis stored")
	return nil
}

func (s *Service) notify(a *models.Analysis) {
	if s.notifier == nil || a.Requirement.Email == "" {
		return
	}
	if err := s.notifier.SendAnalysisSummary(a.Requirement.Email, a); err != nil {
		s.log.WithField("analysis_id", a.ID).Warnf("Notification failed: %v", err)
	}
}
