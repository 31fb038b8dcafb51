// Package cli is the interactive terminal front end of the client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"arkive-client/internal/app"
	"arkive-client/internal/audit"
	"arkive-client/internal/chat"
	"arkive-client/internal/compliance"
	"arkive-client/pkg/log"
	"arkive-client/pkg/upload"
)

const helpText = `Commands:
  <text>            ask a question about your documents
  /new              start a new conversation
  /sessions         list your previous sessions
  /load <id>        reopen a previous session
  /history          print the current conversation
  /upload <path>    add a document to the knowledge base
  /docs             list knowledge-base documents
  /check <pdf>      score a PDF against the compliance pillars
  /report           show the last compliance report
  /reset            clear the compliance report
  /audit [limit]    show recent audit records
  /help             show this help
  /quit             exit`

// REPL reads commands line by line and drives the App.
type REPL struct {
	l   log.Logger
	app *app.App
	in  *bufio.Scanner
	out io.Writer
}

// New - Factory function
func New(l log.Logger, a *app.App, in *bufio.Scanner, out io.Writer) *REPL {
	return &REPL{l: l, app: a, in: in, out: out}
}

// Run processes input until /quit, end of input or ctx cancellation.
func (r *REPL) Run(ctx context.Context) error {
	title.Fprintf(r.out, "Signed in as %s. Type /help for commands.\n", r.app.Owner())
	renderConversation(r.out, r.app.ChatUC.Conversation())

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			return r.in.Err()
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}
		if quit := r.dispatch(ctx, line); quit {
			return nil
		}
	}
}

func (r *REPL) dispatch(ctx context.Context, line string) bool {
	if !strings.HasPrefix(line, "/") {
		r.ask(ctx, line)
		return false
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		fmt.Fprintln(r.out, helpText)
	case "/new":
		r.newChat(ctx)
	case "/sessions":
		renderSessions(r.out, r.app.ChatUC.ListSessions(ctx), r.app.ChatUC.Conversation().ID)
	case "/load":
		r.load(ctx, arg)
	case "/history":
		renderConversation(r.out, r.app.ChatUC.Conversation())
	case "/upload":
		r.upload(ctx, arg)
	case "/docs":
		renderDocuments(r.out, r.app.DocumentUC.List(ctx))
	case "/check":
		r.check(ctx, arg)
	case "/report":
		renderSnapshot(r.out, r.app.ComplianceUC.Snapshot())
	case "/reset":
		r.reset()
	case "/audit":
		r.audit(ctx, arg)
	default:
		warn.Fprintf(r.out, "Unknown command %s. Type /help.\n", cmd)
	}
	return false
}

func (r *REPL) ask(ctx context.Context, text string) {
	msg, err := r.app.ChatUC.SendQuery(ctx, text)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrChatInFlight):
			warn.Fprintln(r.out, "Still waiting for the previous answer.")
		default:
			r.l.Warnf(ctx, "cli.ask: SendQuery failed: %v", err)
			danger.Fprintln(r.out, err)
		}
		return
	}
	renderMessage(r.out, msg)
}

func (r *REPL) newChat(ctx context.Context) {
	if err := r.app.ChatUC.NewChat(ctx); err != nil {
		danger.Fprintln(r.out, err)
		return
	}
	renderConversation(r.out, r.app.ChatUC.Conversation())
}

func (r *REPL) load(ctx context.Context, id string) {
	if id == "" {
		warn.Fprintln(r.out, "Usage: /load <session id>")
		return
	}
	if err := r.app.ChatUC.LoadSession(ctx, id); err != nil {
		r.l.Warnf(ctx, "cli.load: LoadSession %s failed: %v", id, err)
		danger.Fprintf(r.out, "Could not load session %s.\n", id)
		return
	}
	renderConversation(r.out, r.app.ChatUC.Conversation())
}

func (r *REPL) upload(ctx context.Context, path string) {
	if path == "" {
		warn.Fprintln(r.out, "Usage: /upload <path>")
		return
	}
	file, err := upload.FromPath(path)
	if err != nil {
		danger.Fprintf(r.out, "Cannot read %s: %v\n", path, err)
		return
	}
	msg, err := r.app.ChatUC.UploadDocument(ctx, file)
	if err != nil {
		danger.Fprintln(r.out, err)
		return
	}
	if !msg.Failed {
		r.app.DocumentUC.Invalidate()
	}
	renderMessage(r.out, msg)
}

func (r *REPL) check(ctx context.Context, path string) {
	if path != "" {
		file, err := upload.FromPath(path)
		if err != nil {
			danger.Fprintf(r.out, "Cannot read %s: %v\n", path, err)
			return
		}
		if err := r.app.ComplianceUC.SelectFile(file); err != nil {
			r.complianceError(err)
			return
		}
	}

	if name := r.app.ComplianceUC.Snapshot().FileName; name != "" {
		warn.Fprintf(r.out, "Checking %s...\n", name)
	}
	sc, err := r.app.ComplianceUC.Check(ctx)
	if err != nil {
		r.complianceError(err)
		return
	}
	renderScorecard(r.out, sc)
}

func (r *REPL) complianceError(err error) {
	switch {
	case errors.Is(err, compliance.ErrNotPDF):
		danger.Fprintln(r.out, compliance.MsgNotPDF)
	case errors.Is(err, compliance.ErrNoFileSelected):
		warn.Fprintln(r.out, "Usage: /check <file.pdf>")
	case errors.Is(err, compliance.ErrCheckInFlight):
		warn.Fprintln(r.out, "A compliance check is already running.")
	case errors.Is(err, compliance.ErrCheckFailed):
		danger.Fprintln(r.out, compliance.MsgCheckFailed)
	default:
		danger.Fprintln(r.out, err)
	}
}

func (r *REPL) reset() {
	if err := r.app.ComplianceUC.Reset(); err != nil {
		r.complianceError(err)
		return
	}
	muted.Fprintln(r.out, "Compliance report cleared.")
}

func (r *REPL) audit(ctx context.Context, arg string) {
	limit := audit.DefaultLimit
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			warn.Fprintln(r.out, "Usage: /audit [limit]")
			return
		}
		limit = n
	}
	logs := r.app.AuditUC.List(ctx, limit)
	renderAudit(r.out, logs, r.app.AuditUC.Summarize(logs))
}
