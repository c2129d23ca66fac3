package partner

import (
	"context"
	"errors"
	"fmt"
	"time"

	partnerRepo "lablink/database/repository/partner"
	"lablink/models"
	"lablink/services/commission"
	"lablink/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

var validate = validator.New()

// ErrInvalidCredentials is returned for a wrong email/password pair or a
// deactivated account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering with an email that already has an
// account.
var ErrEmailTaken = errors.New("email is already registered")

// Register creates a partner account at the platform default commission rate and
// returns the partner with a signed session token.
func (s *DefaultPartnerService) Register(ctx context.Context, reg models.PartnerRegistration) (*models.Partner, string, error) {
	logger := utils.GetLogger()

	if err := validate.Struct(reg); err != nil {
		return nil, "", fmt.Errorf("invalid registration: %w", err)
	}
	if existing, err := s.Repo.GetByEmail(ctx, reg.Email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	p := &models.Partner{
		ID:                   uuid.New().String(),
		Email:                reg.Email,
		PasswordHash:         string(hash),
		FullName:             reg.FullName,
		Phone:                reg.Phone,
		PartnerType:          reg.PartnerType,
		City:                 reg.City,
		State:                reg.State,
		Pincode:              reg.Pincode,
		CommissionPercentage: commission.DefaultRatePercent,
		Active:               true,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, "", fmt.Errorf("failed to create partner: %w", err)
	}

	token, err := utils.GenerateToken(p.ID, p.Email, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("partner registered", zap.String("partnerID", p.ID), zap.String("type", p.PartnerType))
	return p, token, nil
}

// Authenticate verifies the credentials and returns a signed session token.
func (s *DefaultPartnerService) Authenticate(ctx context.Context, email, password string) (*models.Partner, string, error) {
	p, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, partnerRepo.ErrPartnerNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !p.Active {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(p.ID, p.Email, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return p, token, nil
}
