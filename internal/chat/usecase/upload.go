package usecase

import (
	"context"
	"fmt"

	"arkive-client/internal/activity"
	"arkive-client/internal/chat"
	"arkive-client/internal/model"
)

// UploadDocument sends file to the knowledge base. Uploads do not take the chat
// lane and may overlap each other. When the transcript was replaced by NewChat or
// LoadSession while the upload was in flight, the notice is returned but not appended.
func (uc *implUseCase) UploadDocument(ctx context.Context, file model.File) (model.Message, error) {
	if file.Name == "" {
		return model.Message{}, chat.ErrFileRequired
	}

	uc.uploading.Add(1)
	defer uc.uploading.Add(-1)

	gen := uc.currentGeneration()

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.UploadTimeout)
	res, err := uc.backend.UploadDocument(callCtx, uc.cfg.OwnerID, file)
	cancel()

	var msg model.Message
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.UploadDocument: UploadDocument failed: %v", err)
		msg = model.NewFailureMessage(chat.MsgUploadFailed, uc.now())
	} else {
		msg = model.NewAssistantNotice(uploadNotice(res), uc.now())
	}

	appended, appendErr := uc.appendIfCurrent(gen, msg)
	if appendErr != nil {
		uc.l.Errorf(ctx, "chat.usecase.UploadDocument: Append failed: %v", appendErr)
		return model.Message{}, appendErr
	}
	if !appended {
		uc.l.Warnf(ctx, "chat.usecase.UploadDocument: conversation replaced during upload of %s, notice not appended", file.Name)
	}

	if err != nil {
		uc.publish(ctx, activity.EventDocumentUploadFailed, uc.sessionUC.ID(), map[string]any{"file_name": file.Name})
	} else {
		uc.publish(ctx, activity.EventDocumentUploaded, uc.sessionUC.ID(), map[string]any{
			"file_name":    res.FileName,
			"total_chunks": res.TotalChunks,
			"is_permanent": res.IsPermanent,
		})
	}
	return msg, nil
}

func uploadNotice(res model.UploadResult) string {
	retention := chat.MsgRetentionTemp
	if res.IsPermanent {
		retention = chat.MsgRetentionPerm
	}
	return fmt.Sprintf(chat.MsgUploadSucceeded, res.FileName, res.TotalChunks) + "\n\n" + retention
}
