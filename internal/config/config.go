package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
)

type Config struct {
	Language string `json:"language"`
	// DefaultPolicies son las referencias de política aplicadas cuando el
	// comando check no recibe --policies.
	DefaultPolicies []string `json:"default_policies,omitempty"`
	// MinPassRate es el piso por defecto para el gate de salida; 0 lo
	// deshabilita.
	MinPassRate float64 `json:"min_pass_rate,omitempty"`
	// MinLevel es el nivel mínimo exigido por defecto; 0 lo deshabilita.
	MinLevel int `json:"min_level,omitempty"`

	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	GitHubToken string `json:"github_token,omitempty"`
	GitHubOwner string `json:"github_owner,omitempty"`
	GitHubRepo  string `json:"github_repo,omitempty"`

	PathFile string `json:"path_file"`
}

const (
	defaultLang = "en"
	configDir   = ".ready-mate"
	configFile  = "config.json"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		dir := filepath.Join(path, configDir)
		configPath = filepath.Join(dir, configFile)

		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language: defaultLang,
		PathFile: path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("Language no puede estar vacío")
	}
	if config.MinPassRate < 0 || config.MinPassRate > 1 {
		return errors.New("MinPassRate debe estar entre 0 y 1")
	}
	if config.MinLevel < 0 || config.MinLevel > models.MaxLevel {
		return fmt.Errorf("MinLevel debe estar entre 0 y %d", models.MaxLevel)
	}
	return nil
}
