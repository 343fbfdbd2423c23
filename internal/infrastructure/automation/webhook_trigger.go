package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"distrimed/internal/usecase/interfaces"
)

const workflowOrderCreated = "pedido_criado"

// WebhookWorkflowTrigger posts conversion events to the automation platform's
// inbound webhook. The converter treats every failure here as best-effort.

type WebhookWorkflowTrigger struct {
	webhookURL string
	httpc      *http.Client
}

var _ interfaces.IWorkflowTrigger = (*WebhookWorkflowTrigger)(nil)

func NewWebhookWorkflowTrigger(webhookURL string) *WebhookWorkflowTrigger {
	return &WebhookWorkflowTrigger{
		webhookURL: strings.TrimSpace(webhookURL),
		httpc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type workflowPayload struct {
	Workflow string `json:"workflow"`
	interfaces.OrderCreatedEvent
}

func (t *WebhookWorkflowTrigger) TriggerOrderCreated(ctx context.Context, evt interfaces.OrderCreatedEvent) error {
	if t.webhookURL == "" {
		return fmt.Errorf("workflow webhook url not configured")
	}

	body, err := json.Marshal(workflowPayload{Workflow: workflowOrderCreated, OrderCreatedEvent: evt})
	if err != nil {
		return fmt.Errorf("marshal workflow payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new workflow request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("do workflow request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("workflow webhook http %d", resp.StatusCode)
	}
	log.Printf("[automation][trigger] workflow dispatched workflow=%s order_id=%s", workflowOrderCreated, evt.OrderID)
	return nil
}
