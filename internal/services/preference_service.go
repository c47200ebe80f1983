package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
)

type preferenceService struct {
	mu      sync.Mutex
	store   repositories.KeyValueStoreInterface
	metrics MetricsRecorderInterface
}

func NewPreferenceService(store repositories.KeyValueStoreInterface, metrics MetricsRecorderInterface) PreferenceServiceInterface {
	return &preferenceService{
		store:   store,
		metrics: metrics,
	}
}

// Theme returns the stored theme, light when nothing valid is stored
func (s *preferenceService) Theme(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTheme(ctx)
}

func (s *preferenceService) ToggleTheme(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.currentTheme(ctx)
	if err != nil {
		return "", err
	}

	next := models.ToggleTheme(current)
	if err := s.store.Set(ctx, models.StateKeyTheme, next); err != nil {
		return "", fmt.Errorf("failed to save theme: %w", err)
	}

	slog.Info("theme toggled", "from", current, "to", next)
	if s.metrics != nil {
		s.metrics.IncrementCounter("preference.theme_toggled", map[string]string{"theme": next})
	}

	return next, nil
}

func (s *preferenceService) currentTheme(ctx context.Context) (string, error) {
	theme, err := s.store.Get(ctx, models.StateKeyTheme)
	if err != nil {
		if errors.Is(err, repositories.ErrKeyNotFound) {
			return models.ThemeLight, nil
		}
		return "", fmt.Errorf("failed to read theme: %w", err)
	}

	if !models.IsValidTheme(theme) {
		slog.Warn("ignoring unknown stored theme", "theme", theme)
		return models.ThemeLight, nil
	}

	return theme, nil
}
