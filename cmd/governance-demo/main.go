// Command governance-demo exercises the library end to end: it records a
// few representative governance events against an in-memory session and
// prints the rendered panel. The core itself owns no CLI contract; this
// binary exists so the panel can be eyeballed without a host application.
package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/intelliflow-os/intelliflow-core/config"
	"github.com/intelliflow-os/intelliflow-core/contracts"
	"github.com/intelliflow-os/intelliflow-core/governance"
	"github.com/intelliflow-os/intelliflow-core/helpers"
	"github.com/intelliflow-os/intelliflow-core/internal/observability"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	state := governance.NewMemoryState()
	logAdapter := governance.NewLog(state, governance.WithLogger(logger))
	logAdapter.Init()

	logAdapter.Append("System", "Startup", true, "")
	logAdapter.Append("PolicyEngine", "Policy check", true, "Prompt passed content policy")

	// Record a model call the way a host application would: audit event,
	// cost record, then the governance projection.
	eventID := helpers.GenerateEventID("AUDIT")
	event, err := contracts.NewAuditEvent(map[string]interface{}{
		"event_id":   eventID,
		"event_type": string(contracts.EventTypeAIResponse),
		"component":  "SupportFlow",
		"action":     "chat_completion",
	})
	if err != nil {
		log.Fatalf("audit event error: %v", err)
	}

	cost, err := contracts.NewCostTracking(map[string]interface{}{
		"event_id":      event.EventID,
		"model":         cfg.Pricing.DefaultModel,
		"input_tokens":  1000,
		"output_tokens": 500,
		"total_tokens":  1500,
		"cost_usd":      helpers.CalculateCost(1000, 500, cfg.Pricing.DefaultModel),
	})
	if err != nil {
		log.Fatalf("cost tracking error: %v", err)
	}

	logger.Info("recorded model call",
		zap.String("event_id", event.EventID),
		zap.String("model", cost.Model),
		zap.Float64("cost_usd", cost.CostUSD))

	logAdapter.Append("SupportFlow", "AI response", true,
		fmt.Sprintf("%s, %d tokens, $%.6f", cost.Model, cost.TotalTokens, cost.CostUSD))
	logAdapter.Append("Auth", "Login", false, "Invalid credentials for user demo")

	panel := governance.Panel{
		Title:            cfg.Governance.PanelTitle,
		MaxEntries:       cfg.Governance.MaxPanelEntries,
		DetailsMaxLength: cfg.Governance.DetailsMaxLength,
	}
	fmt.Println(panel.Render(logAdapter.Snapshot()))
}
