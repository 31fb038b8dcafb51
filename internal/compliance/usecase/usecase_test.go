package usecase

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"arkive-client/internal/compliance"
	"arkive-client/internal/model"
	"arkive-client/pkg/backend"
	"arkive-client/pkg/backend/backendtest"
	pkghttp "arkive-client/pkg/http"
	"arkive-client/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var policyPDF = model.File{Name: "policy.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.7")}

func newTestUseCase(t *testing.T) (compliance.UseCase, *backendtest.Server) {
	t.Helper()
	srv := backendtest.NewServer(t)
	be, err := backend.New(backend.Config{
		BaseURL:    srv.URL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{Timeout: 5 * time.Second}),
	})
	require.NoError(t, err)
	uc, err := New(compliance.Config{OwnerID: "alice"}, compliance.DefaultCatalogue(), be, nil, log.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(uc.Wait)
	return uc, srv
}

func partialReport() http.HandlerFunc {
	return backendtest.JSON(http.StatusOK, map[string]any{
		"filename": "policy.pdf",
		"score":    "5/8",
		"results": map[string]any{
			"transparency":    map[string]any{"status": "pass", "note": "ok"},
			"human_oversight": map[string]any{"status": "pass"},
			"privacy":         map[string]any{"status": "pass"},
			"fairness":        map[string]any{"status": "pass"},
			"accountability":  map[string]any{"status": "fail"},
			"safety":          map[string]any{"status": "pass"},
			"sustainability":  map[string]any{"status": "fail"},
			"inclusivity":     map[string]any{"status": "fail"},
		},
		"gaps": []string{"Define accountability.", "Address inclusivity."},
	})
}

func TestNewRejectsInvalidCatalogue(t *testing.T) {
	_, err := New(compliance.Config{}, compliance.Catalogue{Version: 1}, nil, nil, log.NewNopLogger())
	assert.ErrorIs(t, err, compliance.ErrInvalidCatalogue)
}

func TestSelectFileRejectsNonPDF(t *testing.T) {
	uc, srv := newTestUseCase(t)

	err := uc.SelectFile(model.File{Name: "notes.txt", ContentType: "text/plain"})
	assert.ErrorIs(t, err, compliance.ErrNotPDF)

	snap := uc.Snapshot()
	assert.Equal(t, compliance.MsgNotPDF, snap.Error)
	assert.Empty(t, snap.FileName)
	assert.Empty(t, srv.Calls())

	require.NoError(t, uc.SelectFile(model.File{Name: "p.pdf", ContentType: "application/pdf; name=p.pdf"}))
	snap = uc.Snapshot()
	assert.Empty(t, snap.Error)
	assert.Equal(t, "p.pdf", snap.FileName)
}

func TestCheckRequiresFile(t *testing.T) {
	uc, srv := newTestUseCase(t)

	_, err := uc.Check(context.Background())
	assert.ErrorIs(t, err, compliance.ErrNoFileSelected)
	assert.Empty(t, srv.Calls())
	assert.False(t, uc.Snapshot().Checking)
}

func TestCheckPartialScenario(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.Compliance, partialReport())
	require.NoError(t, uc.SelectFile(policyPDF))

	sc, err := uc.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, compliance.TierPartial, sc.Tier)
	assert.Equal(t, "5/8", sc.Score())
	assert.Equal(t, []compliance.Gap{
		{Number: 1, Text: "Define accountability."},
		{Number: 2, Text: "Address inclusivity."},
	}, sc.Gaps)

	snap := uc.Snapshot()
	require.NotNil(t, snap.Scorecard)
	assert.Equal(t, sc, *snap.Scorecard)
	assert.Equal(t, "policy.pdf", snap.FileName)
	assert.Empty(t, snap.Error)
	assert.False(t, snap.Checking)
}

func TestCheckFailureKeepsReportAndFile(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.Compliance, partialReport())
	require.NoError(t, uc.SelectFile(policyPDF))
	first, err := uc.Check(context.Background())
	require.NoError(t, err)

	srv.On(backendtest.Compliance, backendtest.Status(http.StatusInternalServerError))
	_, err = uc.Check(context.Background())
	assert.ErrorIs(t, err, compliance.ErrCheckFailed)

	snap := uc.Snapshot()
	assert.Equal(t, compliance.MsgCheckFailed, snap.Error)
	assert.Equal(t, "policy.pdf", snap.FileName)
	require.NotNil(t, snap.Scorecard)
	assert.Equal(t, first, *snap.Scorecard)

	srv.On(backendtest.Compliance, partialReport())
	_, err = uc.Check(context.Background())
	require.NoError(t, err, "retry without re-selecting")
	assert.Empty(t, uc.Snapshot().Error)
}

func TestCheckSingleFlight(t *testing.T) {
	uc, srv := newTestUseCase(t)
	release := make(chan struct{})
	srv.On(backendtest.Compliance, backendtest.Block(release, partialReport()))
	require.NoError(t, uc.SelectFile(policyPDF))

	done := make(chan error, 1)
	go func() {
		_, err := uc.Check(context.Background())
		done <- err
	}()
	require.Eventually(t, func() bool { return uc.Snapshot().Checking }, 2*time.Second, 5*time.Millisecond)

	_, err := uc.Check(context.Background())
	assert.ErrorIs(t, err, compliance.ErrCheckInFlight)
	assert.ErrorIs(t, uc.SelectFile(policyPDF), compliance.ErrCheckInFlight)
	assert.ErrorIs(t, uc.Reset(), compliance.ErrCheckInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, uc.Snapshot().Checking)
}

func TestSelectAndResetClear(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.Compliance, partialReport())
	require.NoError(t, uc.SelectFile(policyPDF))
	_, err := uc.Check(context.Background())
	require.NoError(t, err)

	require.NoError(t, uc.SelectFile(model.File{Name: "v2.pdf", ContentType: "application/pdf"}))
	snap := uc.Snapshot()
	assert.Nil(t, snap.Scorecard)
	assert.Equal(t, "v2.pdf", snap.FileName)

	require.NoError(t, uc.Reset())
	assert.Equal(t, compliance.Snapshot{}, uc.Snapshot())
}

// echoFileReport scores every submission as fully passing and names it after the uploaded file.
func echoFileReport(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, fh, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		results := map[string]any{}
		for _, p := range compliance.DefaultCatalogue().Pillars {
			results[p.Key] = map[string]any{"status": "pass"}
		}
		backendtest.JSON(http.StatusOK, map[string]any{
			"filename": fh.Filename,
			"results":  results,
		})(w, r)
	}
}

func TestReportAlwaysMatchesSelectedFile(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.Compliance, echoFileReport(t))
	require.NoError(t, uc.SelectFile(model.File{Name: "v0.pdf", ContentType: compliance.MimePDF}))

	assertConsistent := func() {
		snap := uc.Snapshot()
		if snap.Scorecard != nil {
			assert.Equal(t, snap.FileName, snap.Scorecard.FileName)
		}
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 40; i++ {
			_, _ = uc.Check(context.Background())
			assertConsistent()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 1; i <= 200; i++ {
			_ = uc.SelectFile(model.File{Name: fmt.Sprintf("v%d.pdf", i), ContentType: compliance.MimePDF})
			assertConsistent()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = uc.Reset()
			assertConsistent()
			_ = uc.SelectFile(model.File{Name: "after-reset.pdf", ContentType: compliance.MimePDF})
			assertConsistent()
		}
	}()
	wg.Wait()

	assert.False(t, uc.Snapshot().Checking)
	assertConsistent()
}
