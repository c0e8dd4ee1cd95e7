package config

// Storage backends
const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// Environments with stricter startup warnings
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
)

const (
	// Configuration file paths
	ConfigPathCatalog = "configs/catalog.yaml"
	ConfigPathEnv     = ".env"
)
