package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
	"urjaportal/backend/services/auth-service/internal/models"
	"urjaportal/backend/services/auth-service/internal/password"
	"urjaportal/backend/services/auth-service/internal/repository"
)

const defaultRole = "consumer"

var consumerNumberPattern = regexp.MustCompile(`^[0-9]{12}$`)

var (
	// ErrEmailInUse is returned when attempting to register duplicate email.
	ErrEmailInUse = errors.New("auth: email already registered")
	// ErrConsumerNumberInUse is returned when the consumer number is already linked.
	ErrConsumerNumberInUse = errors.New("auth: consumer number already registered")
	// ErrInvalidCredentials represents login failure.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrInvalidInput wraps field validation failures.
	ErrInvalidInput = errors.New("auth: invalid input")
	// ErrNotFound is returned for unknown consumer ids.
	ErrNotFound = errors.New("auth: consumer not found")
)

// ConsumerRepository defines storage contract used by the service.
type ConsumerRepository interface {
	Create(ctx context.Context, c *models.Consumer) error
	GetByEmail(ctx context.Context, email string) (*models.Consumer, error)
	GetByConsumerNumber(ctx context.Context, number string) (*models.Consumer, error)
	GetByID(ctx context.Context, id int64) (*models.Consumer, error)
	UpdateProfile(ctx context.Context, c *models.Consumer) error
}

// AuthService contains registration, login and profile logic.
type AuthService struct {
	repo      ConsumerRepository
	hasher    password.Hasher
	tokenizer *TokenService
	logger    *zap.Logger
}

// SignupInput is the registration form.
type SignupInput struct {
	ConsumerNumber string
	Email          string
	Password       string
	Name           string
	Phone          string
	TariffCategory string
	Language       string
}

// ProfileUpdate carries editable fields; nil keeps the stored value.
type ProfileUpdate struct {
	Name           *string
	Phone          *string
	TariffCategory *string
	Language       *string
}

// NewAuthService builds AuthService.
func NewAuthService(repo ConsumerRepository, hasher password.Hasher, tokenizer *TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// Signup registers a new consumer.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.Consumer, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email required", ErrInvalidInput)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password required", ErrInvalidInput)
	}
	number := strings.TrimSpace(in.ConsumerNumber)
	if !consumerNumberPattern.MatchString(number) {
		return nil, fmt.Errorf("%w: consumer number must be 12 digits", ErrInvalidInput)
	}
	category, err := normalizeCategory(in.TariffCategory)
	if err != nil {
		return nil, err
	}
	lang, err := normalizeLanguage(in.Language)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, repository.ErrConsumerNotFound) {
		return nil, err
	}
	if _, err := s.repo.GetByConsumerNumber(ctx, number); err == nil {
		return nil, ErrConsumerNumberInUse
	} else if !errors.Is(err, repository.ErrConsumerNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooShort) || errors.Is(err, password.ErrTooLong) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	consumer := &models.Consumer{
		ConsumerNumber: number,
		Email:          email,
		PasswordHash:   hash,
		Name:           strings.TrimSpace(in.Name),
		Phone:          strings.TrimSpace(in.Phone),
		TariffCategory: category,
		Language:       lang,
		Role:           defaultRole,
	}

	if err := s.repo.Create(ctx, consumer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	s.logger.Info("consumer signed up",
		zap.Int64("user_id", consumer.ID),
		zap.String("consumer_number", consumer.ConsumerNumber),
	)
	return consumer, nil
}

// Login authenticates a consumer by email or 12 digit consumer number and
// produces a JWT.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *models.Consumer, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	var (
		consumer *models.Consumer
		err      error
	)
	if consumerNumberPattern.MatchString(identifier) {
		consumer, err = s.repo.GetByConsumerNumber(ctx, identifier)
	} else {
		consumer, err = s.repo.GetByEmail(ctx, strings.ToLower(identifier))
	}
	switch {
	case errors.Is(err, repository.ErrConsumerNotFound):
		return "", nil, ErrInvalidCredentials
	case err != nil:
		return "", nil, err
	}

	if err := s.hasher.Compare(consumer.PasswordHash, password); err != nil {
		s.logger.Debug("login rejected", zap.Int64("user_id", consumer.ID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokenizer.GenerateToken(consumer.ID, consumer.Role, consumer.ConsumerNumber)
	if err != nil {
		return "", nil, err
	}
	return token, consumer, nil
}

// TokenTTL is the lifetime of tokens issued by Login.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenizer.expiresIn
}

// Profile returns the consumer with id.
func (s *AuthService) Profile(ctx context.Context, id int64) (*models.Consumer, error) {
	consumer, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrConsumerNotFound) {
		return nil, ErrNotFound
	}
	return consumer, err
}

// UpdateProfile applies non-nil fields of upd.
func (s *AuthService) UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*models.Consumer, error) {
	consumer, err := s.Profile(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		consumer.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Phone != nil {
		consumer.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.TariffCategory != nil {
		if consumer.TariffCategory, err = normalizeCategory(*upd.TariffCategory); err != nil {
			return nil, err
		}
	}
	if upd.Language != nil {
		if consumer.Language, err = normalizeLanguage(*upd.Language); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateProfile(ctx, consumer); err != nil {
		if errors.Is(err, repository.ErrConsumerNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return consumer, nil
}

func normalizeCategory(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return string(calc.Residential), nil
	}
	c, err := calc.ParseCategory(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return string(c), nil
}

func normalizeLanguage(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return i18n.Code(i18n.English), nil
	}
	tag, ok := i18n.Parse(raw)
	if !ok {
		return "", fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, raw)
	}
	return i18n.Code(tag), nil
}
