package services

import (
	"synapsetalk/internal/assets"
	"synapsetalk/internal/repositories"

	"gorm.io/gorm"
)

// DbServices aggregates the services bound to the frontend. Fields use plural
// names to align with the service-container convention.
type DbServices struct {
	Catalog ModelCatalogService
	Chats   ChatService
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB, configs ConfigReader, newModel ChatModelFactory) (*DbServices, error) {
	catalog, err := NewModelCatalogService(assets.ModelsData, configs)
	if err != nil {
		return nil, err
	}
	chatRepo := repositories.NewChatMessageRepository(db)

	return &DbServices{
		Catalog: catalog,
		Chats:   NewChatService(configs, chatRepo, catalog, newModel),
	}, nil
}
