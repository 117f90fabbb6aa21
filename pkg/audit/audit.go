package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionUserSignedIn    Action = "user.signed_in"
	ActionUserSignedOut   Action = "user.signed_out"
	ActionGmailConnected  Action = "gmail.connected"
	ActionScanStarted     Action = "scan.started"
	ActionScanCompleted   Action = "scan.completed"
	ActionCleanupExecuted Action = "cleanup.executed"
)

type Target struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type Event struct {
	Action         Action
	ActorID        string
	ActorName      string
	OrganizationID string
	Targets        []Target
	Metadata       map[string]interface{}
}

// Emitter ships audit events to the upstream audit log API. Emission is
// fire-and-forget: failures are logged and never fail the request.
type Emitter struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewEmitter(apiKey, baseURL string) *Emitter {
	return &Emitter{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Emit records one audit event. Personal accounts have no organization and
// are skipped before any network call.
func (e *Emitter) Emit(ctx context.Context, event Event) {
	if event.OrganizationID == "" {
		return
	}

	targets := event.Targets
	if targets == nil {
		targets = []Target{}
	}

	payload := map[string]interface{}{
		"organization_id": event.OrganizationID,
		"event": map[string]interface{}{
			"action":      string(event.Action),
			"occurred_at": time.Now().UTC().Format(time.RFC3339),
			"actor": map[string]interface{}{
				"type": "user",
				"id":   event.ActorID,
				"name": event.ActorName,
			},
			"targets": targets,
			"context": map[string]interface{}{
				"location":   "0.0.0.0",
				"user_agent": "unfuck-my-inbox",
			},
			"metadata": event.Metadata,
		},
	}

	if err := e.post(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to emit audit event %s: %v", event.Action, err)
	}
}

func (e *Emitter) post(ctx context.Context, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/audit_logs/events", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.New().String())

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("audit API returned status %d", resp.StatusCode)
	}

	return nil
}
