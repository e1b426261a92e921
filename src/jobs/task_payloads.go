package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeCleanupArtifact = "attendance:cleanup-artifact"

type CleanupArtifactPayload struct {
	SessionID string `json:"session_id"`
}

// NewCleanupArtifactTask งานลบไฟล์ QR หลัง session หมดอายุ
func NewCleanupArtifactTask(sessionID string) (*asynq.Task, error) {
	payload, err := json.Marshal(CleanupArtifactPayload{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCleanupArtifact, payload), nil
}
