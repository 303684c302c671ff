package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/athletiq/athletiq_backend/internal/repo"
	entticket "github.com/athletiq/athletiq_backend/internal/repo/injuryticket"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc fx.Lifecycle
	NC *nats.Conn
	DB *repo.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startCaseEventWorker(p.NC, p.DB)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// case_event_worker
// ---------------------------------------------------------------------------

// startCaseEventWorker listens for case lifecycle events and logs them with
// the current ticket status. Downstream consumers (notifications, analytics)
// subscribe to the same subjects out of process.
func startCaseEventWorker(nc *nats.Conn, db *repo.Client) {
	_, err := nc.Subscribe("athletiq.injury.case.*.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 5 {
			return
		}
		event := parts[3]
		reportID, err := uuid.Parse(parts[4])
		if err != nil {
			return
		}

		ctx := context.Background()

		switch event {
		case "withdrawn":
			// The ticket is gone; nothing to look up.
			slog.Info("case_event_worker: case withdrawn", "report_id", reportID)
			return
		}

		tk, err := db.InjuryTicket.Query().
			Where(entticket.ReportID(reportID)).
			Only(ctx)
		if err != nil {
			slog.Warn("case_event_worker: ticket not found", "report_id", reportID, "err", err)
			return
		}

		slog.Info("case_event_worker: case event",
			"event", event,
			"report_id", reportID,
			"status", tk.Status,
		)
	})
	if err != nil {
		slog.Error("case_event_worker: subscribe failed", "err", err)
	}

	slog.Info("case_event_worker: started")
}
