package app

import (
	"arkive-client/config"
	"arkive-client/internal/activity"
	"arkive-client/internal/audit"
	"arkive-client/internal/chat"
	"arkive-client/internal/compliance"
	"arkive-client/internal/document"
	"arkive-client/internal/session"
	"arkive-client/pkg/backend"
	"arkive-client/pkg/log"
)

// App is the composition root shared by the view-model server and the CLI.
// It owns one conversation for one owner.
type App struct {
	// Core Configuration
	l     log.Logger
	cfg   *config.Config
	owner string

	// Infrastructure clients
	backend backend.IBackend
	events  activity.Publisher

	// Domains
	SessionUC    session.UseCase
	ChatUC       chat.UseCase
	DocumentUC   document.UseCase
	ComplianceUC compliance.UseCase
	AuditUC      audit.UseCase
}

// Config holds all dependencies for the App.
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config
	// Owner overrides Config.User.Name, e.g. after the CLI username prompt.
	Owner string

	// Infrastructure clients
	Backend backend.IBackend
	// Events is optional; a nop publisher is used when nil.
	Events activity.Publisher
}

// Wait blocks until background work started by any domain has finished.
func (a *App) Wait() {
	a.ChatUC.Wait()
	a.SessionUC.Wait()
	a.ComplianceUC.Wait()
}

// Owner is the normalized username every request is made for.
func (a *App) Owner() string {
	return a.owner
}
