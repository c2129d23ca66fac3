package partner

import (
	"context"
	"fmt"

	"lablink/models"
)

// Profile fields a partner may change about themselves. Commission percentage and
// the active flag deliberately stay admin-only.
var profileFields = map[string]bool{
	"full_name": true,
	"phone":     true,
	"address":   true,
	"city":      true,
	"state":     true,
	"pincode":   true,
}

func (s *DefaultPartnerService) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateProfile applies a partial update restricted to self-editable fields.
func (s *DefaultPartnerService) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*models.Partner, error) {
	filtered := make(map[string]any, len(fields))
	for k, v := range fields {
		if profileFields[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	if err := s.Repo.UpdateWithDocument(ctx, id, filtered); err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}
