package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"synapsetalk/internal/config"
	"synapsetalk/internal/models"
)

// ConfigReader is the read side of the configuration store.
type ConfigReader interface {
	Load() config.Values
}

type ModelCatalogService interface {
	ListModelGroups() []models.LLMModelGroup
	ListModels() []models.LLMModel
	DefaultModel(providerID string) (string, bool)
	Repositories() []string
}

type modelCatalogService struct {
	configs ConfigReader

	providerOrder []string
	providerNames map[string]string
	models        []models.LLMModel
}

type rawModelFile struct {
	Providers []rawProvider `json:"providers"`
}

type rawProvider struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Models      []rawModel `json:"models"`
}

type rawModel struct {
	DisplayName string `json:"displayName"`
	APIName     string `json:"apiName"`
}

// NewModelCatalogService parses the catalog JSON once. The configured
// repository list is read from configs on every call so saved settings show
// up without a restart.
func NewModelCatalogService(data []byte, configs ConfigReader) (ModelCatalogService, error) {
	var parsed rawModelFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse models asset: %w", err)
	}

	s := &modelCatalogService{
		configs:       configs,
		providerNames: make(map[string]string),
	}

	for _, provider := range parsed.Providers {
		providerID := strings.TrimSpace(provider.ID)
		if providerID == "" {
			continue
		}
		if _, seen := s.providerNames[providerID]; !seen {
			s.providerOrder = append(s.providerOrder, providerID)
		}
		providerName := strings.TrimSpace(provider.DisplayName)
		s.providerNames[providerID] = providerName
		for _, mdl := range provider.Models {
			apiName := strings.TrimSpace(mdl.APIName)
			if apiName == "" {
				continue
			}
			s.models = append(s.models, models.LLMModel{
				Key:          computeModelKey(providerID, apiName),
				DisplayName:  strings.TrimSpace(mdl.DisplayName),
				APIName:      apiName,
				ProviderID:   providerID,
				ProviderName: s.providerName(providerID),
			})
		}
	}

	return s, nil
}

func (s *modelCatalogService) ListModelGroups() []models.LLMModelGroup {
	groups := make([]models.LLMModelGroup, 0, len(s.providerOrder))
	for _, providerID := range s.providerOrder {
		group := models.LLMModelGroup{
			ProviderID:   providerID,
			ProviderName: s.providerName(providerID),
		}
		for _, mdl := range s.models {
			if mdl.ProviderID == providerID {
				group.Models = append(group.Models, mdl)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// ListModels returns the catalog in file order.
func (s *modelCatalogService) ListModels() []models.LLMModel {
	out := make([]models.LLMModel, len(s.models))
	copy(out, s.models)
	return out
}

// DefaultModel returns the API name of the first model listed for providerID.
func (s *modelCatalogService) DefaultModel(providerID string) (string, bool) {
	for _, mdl := range s.models {
		if mdl.ProviderID == providerID {
			return mdl.APIName, true
		}
	}
	return "", false
}

// Repositories returns the configured model repositories in stored order.
func (s *modelCatalogService) Repositories() []string {
	if s.configs == nil {
		return nil
	}
	return config.RepoList(s.configs.Load()[config.ModelRepos])
}

func (s *modelCatalogService) providerName(providerID string) string {
	if name, ok := s.providerNames[providerID]; ok && strings.TrimSpace(name) != "" {
		return name
	}
	return providerID
}

func computeModelKey(providerID, apiName string) string {
	return strings.TrimSpace(providerID) + "|" + apiName
}
