package app

import (
	"context"
	"errors"
	"fmt"

	"arkive-client/internal/activity"
	"arkive-client/internal/model"
)

// New builds every domain for cfg.Owner (or the configured user) with dependency validation.
func New(cfg Config) (*App, error) {
	a := &App{
		l:       cfg.Logger,
		cfg:     cfg.Config,
		backend: cfg.Backend,
		events:  cfg.Events,
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	owner := cfg.Owner
	if owner == "" {
		owner = a.cfg.User.Name
	}
	name, err := model.NormalizeUsername(owner)
	if err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}
	a.owner = name

	if a.events == nil {
		a.events = activity.NewNop()
	}

	if err := a.setupDomains(context.Background()); err != nil {
		return nil, err
	}
	return a, nil
}

// validate validates that all required dependencies are provided
func (a *App) validate() error {
	if a.l == nil {
		return errors.New("logger is required")
	}
	if a.cfg == nil {
		return errors.New("config is required")
	}
	if a.backend == nil {
		return errors.New("backend client is required")
	}
	return nil
}
