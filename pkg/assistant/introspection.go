package assistant

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Contacts       int    `json:"contacts"`
	Notes          int    `json:"notes"`
	CountryCode    string `json:"country_code"`
	RepositoryType string `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "repository"
	if comp, ok := s.repo.(introspection.Component); ok {
		repoType = comp.ComponentType()
	}

	return ServiceState{
		Contacts:       len(s.contacts),
		Notes:          len(s.notes),
		CountryCode:    s.countryCode,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "assistant"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
