package app

import (
	"context"
	"fmt"

	"arkive-client/internal/audit"
	auditUsecase "arkive-client/internal/audit/usecase"
	"arkive-client/internal/chat"
	"arkive-client/internal/chat/repository/memory"
	chatUsecase "arkive-client/internal/chat/usecase"
	"arkive-client/internal/compliance"
	complianceUsecase "arkive-client/internal/compliance/usecase"
	"arkive-client/internal/document"
	documentUsecase "arkive-client/internal/document/usecase"
	"arkive-client/internal/session"
	sessionUsecase "arkive-client/internal/session/usecase"
)

// setupDomains initializes all domain layers (repositories, usecases)
func (a *App) setupDomains(ctx context.Context) error {
	catalogue, err := a.loadCatalogue()
	if err != nil {
		return err
	}

	a.SessionUC = sessionUsecase.New(session.Config{
		Timeout: a.cfg.Timeouts.Sessions,
	}, a.backend, a.l)

	a.ChatUC, err = chatUsecase.New(chat.Config{
		OwnerID:        a.owner,
		WelcomeMessage: a.cfg.Chat.WelcomeMessage,
		ChatTimeout:    a.cfg.Timeouts.Chat,
		UploadTimeout:  a.cfg.Timeouts.Upload,
	}, memory.New(), a.SessionUC, a.backend, a.events, a.l)
	if err != nil {
		return fmt.Errorf("failed to create chat usecase: %w", err)
	}

	a.ComplianceUC, err = complianceUsecase.New(compliance.Config{
		OwnerID: a.owner,
		Timeout: a.cfg.Timeouts.Compliance,
	}, catalogue, a.backend, a.events, a.l)
	if err != nil {
		return fmt.Errorf("failed to create compliance usecase: %w", err)
	}

	a.DocumentUC = documentUsecase.New(document.Config{
		CacheTTL: a.cfg.Cache.TTL,
		Timeout:  a.cfg.Timeouts.Sessions,
	}, a.backend, a.l)
	a.AuditUC = auditUsecase.New(audit.Config{
		CacheTTL: a.cfg.Cache.TTL,
		Timeout:  a.cfg.Timeouts.Sessions,
	}, a.backend, a.l)

	a.l.Infof(ctx, "app.setupDomains: domains initialized for %s (catalogue v%d)", a.owner, catalogue.Version)
	return nil
}

func (a *App) loadCatalogue() (compliance.Catalogue, error) {
	if a.cfg.Compliance.CataloguePath == "" {
		return compliance.DefaultCatalogue(), nil
	}
	c, err := compliance.LoadCatalogue(a.cfg.Compliance.CataloguePath)
	if err != nil {
		return compliance.Catalogue{}, fmt.Errorf("failed to load pillar catalogue: %w", err)
	}
	return c, nil
}
