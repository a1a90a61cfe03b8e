package facility

import "context"

// Authority answers which facilities an administrator manages. The leave
// engine consumes this to scope monitoring and approvals.
type Authority struct {
	repo Repository
}

func NewAuthority(repo Repository) *Authority {
	return &Authority{repo: repo}
}

func (a *Authority) ManagedFacilities(ctx context.Context, userID string) ([]string, error) {
	mappings, err := a.repo.ListMappings(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(mappings))
	for i, m := range mappings {
		names[i] = m.FacilityName
	}
	return names, nil
}
