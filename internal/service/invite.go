package service

import (
	"errors"
	"fmt"

	"company-portal-backend/internal/database/models"
	"company-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// InviteService resolves opaque invitation tokens to companies
type InviteService struct {
	links     repository.InviteLinkRepositoryInterface
	companies repository.CompanyRepositoryInterface
}

// NewInviteService creates a new invite service
func NewInviteService(links repository.InviteLinkRepositoryInterface, companies repository.CompanyRepositoryInterface) *InviteService {
	return &InviteService{
		links:     links,
		companies: companies,
	}
}

// ResolveToken returns the company behind an invitation token. A blank or
// unknown token resolves to nil rather than an error: a stale or mistyped
// invite degrades to default-company creation instead of blocking signup.
func (s *InviteService) ResolveToken(token string) (*models.Company, error) {
	if token == "" {
		return nil, nil
	}

	link, err := s.links.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up invite link: %w", err)
	}

	company, err := s.companies.GetByID(link.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load invited company: %w", err)
	}

	return company, nil
}
