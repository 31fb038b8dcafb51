package http

import "arkive-client/internal/compliance"

type pillarRowResp struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Note      string `json:"note,omitempty"`
}

type gapResp struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type scorecardResp struct {
	FileName  string          `json:"filename"`
	Score     string          `json:"score"`
	PassCount int             `json:"pass_count"`
	Total     int             `json:"total"`
	Tier      string          `json:"tier"`
	Pillars   []pillarRowResp `json:"pillars"`
	Gaps      []gapResp       `json:"gaps"`
}

type snapshotResp struct {
	FileName         string         `json:"filename,omitempty"`
	Checking         bool           `json:"checking"`
	Error            string         `json:"error,omitempty"`
	Report           *scorecardResp `json:"report,omitempty"`
	CatalogueVersion int            `json:"catalogue_version"`
}

func newScorecardResp(sc compliance.Scorecard) scorecardResp {
	out := scorecardResp{
		FileName:  sc.FileName,
		Score:     sc.Score(),
		PassCount: sc.PassCount,
		Total:     sc.Total,
		Tier:      string(sc.Tier),
		Pillars:   make([]pillarRowResp, 0, len(sc.Rows)),
		Gaps:      make([]gapResp, 0, len(sc.Gaps)),
	}
	for _, r := range sc.Rows {
		out.Pillars = append(out.Pillars, pillarRowResp{
			Key:       r.Pillar.Key,
			Label:     r.Pillar.Label,
			Reference: r.Pillar.Reference,
			Status:    string(r.Status),
			Note:      r.Note,
		})
	}
	for _, g := range sc.Gaps {
		out.Gaps = append(out.Gaps, gapResp{Number: g.Number, Text: g.Text})
	}
	return out
}

func (h *handler) newSnapshotResp() snapshotResp {
	s := h.uc.Snapshot()
	out := snapshotResp{
		FileName:         s.FileName,
		Checking:         s.Checking,
		Error:            s.Error,
		CatalogueVersion: h.uc.Catalogue().Version,
	}
	if s.Scorecard != nil {
		r := newScorecardResp(*s.Scorecard)
		out.Report = &r
	}
	return out
}
