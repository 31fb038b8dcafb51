package cli

import (
	"fmt"
	"io"
	"strings"

	"arkive-client/internal/audit"
	"arkive-client/internal/compliance"
	"arkive-client/internal/model"

	"github.com/fatih/color"
)

var (
	title  = color.New(color.FgCyan, color.Bold)
	muted  = color.New(color.Faint)
	warn   = color.New(color.FgYellow)
	danger = color.New(color.FgRed)
	good   = color.New(color.FgGreen)
)

const timeLayout = "2006-01-02 15:04"

func renderMessage(w io.Writer, m model.Message) {
	switch {
	case m.Role == model.RoleUser:
		title.Fprint(w, "you> ")
	case m.Failed:
		danger.Fprint(w, "arkive> ")
	default:
		good.Fprint(w, "arkive> ")
	}
	fmt.Fprintln(w, m.Content)

	if m.Role != model.RoleAssistant || m.Failed {
		return
	}
	if m.Flagged {
		warn.Fprintln(w, "  ! flagged for review")
	}
	if m.Confidence > 0 {
		muted.Fprintf(w, "  confidence %d%%\n", m.Confidence)
	}
	for _, s := range m.Sources {
		muted.Fprintf(w, "  [%s p.%d #%d]\n", s.Name, s.Page, s.ChunkIndex)
	}
}

func renderConversation(w io.Writer, conv model.Conversation) {
	id := conv.ID
	if id == "" {
		id = "(new)"
	}
	title.Fprintf(w, "Session %s (%s) for %s\n", id, conv.State, conv.OwnerID)
	for _, m := range conv.Messages {
		renderMessage(w, m)
	}
}

func renderSessions(w io.Writer, entries []model.SessionEntry, current string) {
	if len(entries) == 0 {
		muted.Fprintln(w, "No previous sessions.")
		return
	}
	for _, e := range entries {
		marker := " "
		if e.ID == current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s  %s\n", marker, e.ID, e.LastActive.Format(timeLayout))
	}
}

func renderDocuments(w io.Writer, docs []model.Document) {
	if len(docs) == 0 {
		muted.Fprintln(w, "No documents in the knowledge base.")
		return
	}
	for _, d := range docs {
		fmt.Fprintf(w, "%s  %d pages, %d chunks  %s  by %s\n",
			d.FileName, d.TotalPages, d.TotalChunks, d.RetentionLabel(), d.UploadedBy)
	}
}

func renderAudit(w io.Writer, logs []model.AuditLog, sum audit.Summary) {
	if len(logs) == 0 {
		muted.Fprintln(w, "No audit records.")
		return
	}
	for _, l := range logs {
		c := muted
		if l.Category() == model.AuditCategoryAlert {
			c = danger
		}
		c.Fprintf(w, "%s  %-8s %s  %s\n", l.Timestamp.Format(timeLayout), l.Category(), l.EventType, l.UserID)
	}
	parts := make([]string, 0, len(sum.Counts))
	for _, cat := range []model.AuditCategory{
		model.AuditCategoryQuery,
		model.AuditCategoryUpload,
		model.AuditCategoryAlert,
		model.AuditCategoryOther,
	} {
		if n := sum.Counts[cat]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", cat, n))
		}
	}
	title.Fprintf(w, "%d records: %s\n", sum.Total, strings.Join(parts, ", "))
}

func renderScorecard(w io.Writer, sc compliance.Scorecard) {
	tc := good
	switch sc.Tier {
	case compliance.TierPartial:
		tc = warn
	case compliance.TierNonCompliant:
		tc = danger
	}
	title.Fprintf(w, "%s  ", sc.FileName)
	tc.Fprintf(w, "%s (%s)\n", sc.Tier, sc.Score())

	for _, r := range sc.Rows {
		if r.Status == model.PillarPass {
			good.Fprint(w, "  PASS ")
		} else {
			danger.Fprint(w, "  FAIL ")
		}
		fmt.Fprintf(w, "%s  %s\n", r.Pillar.Label, r.Pillar.Reference)
		if r.Note != "" {
			muted.Fprintf(w, "       %s\n", r.Note)
		}
	}
	if len(sc.Gaps) > 0 {
		title.Fprintln(w, "Gaps")
		for _, g := range sc.Gaps {
			fmt.Fprintf(w, "  %d. %s\n", g.Number, g.Text)
		}
	}
}

func renderSnapshot(w io.Writer, s compliance.Snapshot) {
	switch {
	case s.Checking:
		warn.Fprintf(w, "Checking %s...\n", s.FileName)
	case s.Error != "":
		danger.Fprintln(w, s.Error)
	}
	if s.Scorecard != nil {
		renderScorecard(w, *s.Scorecard)
		return
	}
	if s.FileName != "" && !s.Checking {
		fmt.Fprintf(w, "Selected %s. Run /check to score it.\n", s.FileName)
		return
	}
	if s.FileName == "" {
		muted.Fprintln(w, "No report yet. Run /check <file.pdf>.")
	}
}
