package compliance

import "arkive-client/internal/model"

// Evaluate scores report against the catalogue. Rows follow catalogue order and a
// pillar absent from the report counts as a fail. Gaps are kept verbatim.
func Evaluate(cat Catalogue, report model.ComplianceReport) Scorecard {
	sc := Scorecard{
		FileName: report.FileName,
		Rows:     make([]Row, 0, len(cat.Pillars)),
		Total:    len(cat.Pillars),
		Gaps:     make([]Gap, 0, len(report.Gaps)),
	}

	for _, p := range cat.Pillars {
		row := Row{Pillar: p, Status: model.PillarFail}
		if r, ok := report.Results[p.Key]; ok {
			row.Note = r.Note
			if r.Status == model.PillarPass {
				row.Status = model.PillarPass
				sc.PassCount++
			}
		}
		sc.Rows = append(sc.Rows, row)
	}
	sc.Tier = TierFor(sc.PassCount)

	for i, g := range report.Gaps {
		sc.Gaps = append(sc.Gaps, Gap{Number: i + 1, Text: g})
	}
	return sc
}

// TierFor maps a pass count to its tier.
func TierFor(passCount int) Tier {
	switch {
	case passCount >= CompliantMinPass:
		return TierCompliant
	case passCount >= PartialMinPass:
		return TierPartial
	default:
		return TierNonCompliant
	}
}
