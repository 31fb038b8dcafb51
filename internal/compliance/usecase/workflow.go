package usecase

import (
	"context"
	"fmt"
	"mime"
	"time"

	"arkive-client/internal/activity"
	"arkive-client/internal/compliance"
	"arkive-client/internal/model"
)

func (uc *implUseCase) SelectFile(file model.File) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.checking {
		return compliance.ErrCheckInFlight
	}
	if !isPDF(file.ContentType) {
		uc.errMsg = compliance.MsgNotPDF
		return compliance.ErrNotPDF
	}

	f := file
	uc.file = &f
	uc.report = nil
	uc.errMsg = ""
	return nil
}

// Check submits the selected file and replaces the report on success.
// The selection cannot change while the flag is set, so the outcome always
// belongs to the file that is still selected.
func (uc *implUseCase) Check(ctx context.Context) (compliance.Scorecard, error) {
	file, err := uc.beginCheck()
	if err != nil {
		return compliance.Scorecard{}, err
	}

	var (
		result *compliance.Scorecard
		errMsg string
	)
	defer func() { uc.endCheck(result, errMsg) }()

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	report, err := uc.backend.CheckCompliance(callCtx, uc.cfg.OwnerID, file)
	cancel()

	if err != nil {
		uc.l.Errorf(ctx, "compliance.usecase.Check: CheckCompliance failed: %v", err)
		errMsg = compliance.MsgCheckFailed
		uc.publish(ctx, activity.EventComplianceFailed, map[string]any{"file_name": file.Name})
		return compliance.Scorecard{}, fmt.Errorf("%w: %v", compliance.ErrCheckFailed, err)
	}

	sc := compliance.Evaluate(uc.catalogue, report)
	result = &sc

	uc.l.Infof(ctx, "compliance.usecase.Check: %s scored %s (%s)", sc.FileName, sc.Score(), sc.Tier)
	uc.publish(ctx, activity.EventComplianceChecked, map[string]any{
		"file_name": sc.FileName,
		"score":     sc.Score(),
		"tier":      string(sc.Tier),
		"gaps":      len(sc.Gaps),
	})
	return sc, nil
}

// beginCheck sets the checking flag and copies the selection in one critical section.
func (uc *implUseCase) beginCheck() (model.File, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.checking {
		return model.File{}, compliance.ErrCheckInFlight
	}
	if uc.file == nil {
		return model.File{}, compliance.ErrNoFileSelected
	}
	uc.checking = true
	uc.errMsg = ""
	return *uc.file, nil
}

// endCheck stores the outcome and clears the flag together.
func (uc *implUseCase) endCheck(result *compliance.Scorecard, errMsg string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if result != nil {
		uc.report = result
	}
	if errMsg != "" {
		uc.errMsg = errMsg
	}
	uc.checking = false
}

func (uc *implUseCase) Reset() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.checking {
		return compliance.ErrCheckInFlight
	}
	uc.file = nil
	uc.report = nil
	uc.errMsg = ""
	return nil
}

func (uc *implUseCase) Snapshot() compliance.Snapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	s := compliance.Snapshot{
		Error:    uc.errMsg,
		Checking: uc.checking,
	}
	if uc.file != nil {
		s.FileName = uc.file.Name
	}
	if uc.report != nil {
		sc := *uc.report
		s.Scorecard = &sc
	}
	return s
}

func (uc *implUseCase) Catalogue() compliance.Catalogue {
	return uc.catalogue
}

func (uc *implUseCase) Wait() {
	uc.wg.Wait()
}

func (uc *implUseCase) publish(ctx context.Context, typ activity.EventType, attrs map[string]any) {
	event := activity.Event{
		Type:       typ,
		OwnerID:    uc.cfg.OwnerID,
		Attributes: attrs,
		OccurredAt: time.Now(),
	}
	ctx = context.WithoutCancel(ctx)

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		if err := uc.events.Publish(ctx, event); err != nil {
			uc.l.Warnf(ctx, "compliance.usecase.publish: %s: %v", typ, err)
		}
	}()
}

func isPDF(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == compliance.MimePDF
}
