package worker

// recibo_worker.go
// Processes receipt jobs from QueueRecibo: renders the PDF ticket for a
// completed venta and, when the checkout carried a customer email, chains an
// email job so the receipt lands in their inbox.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/francost15/La-Pape-sub000/internal/infra"
	"github.com/francost15/La-Pape-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReciboJobPayload is the job envelope sent to QueueRecibo.
type ReciboJobPayload struct {
	VentaID      string  `json:"venta_id"`
	ClienteEmail *string `json:"cliente_email,omitempty"`
}

type ReciboWorker struct {
	ventaRepo      repository.VentaRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewReciboWorker(ventaRepo repository.VentaRepository, dispatcher *Dispatcher, pdfStoragePath string) *ReciboWorker {
	return &ReciboWorker{
		ventaRepo:      ventaRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process renders the receipt PDF for one venta. Returns an error for
// transient failures so the pool can retry; malformed payloads are dropped.
func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return nil
	}

	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("recibo_worker: invalid venta_id")
		return nil
	}

	venta, err := w.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		return fmt.Errorf("recibo_worker: venta %s: %w", ventaID, err)
	}

	pdfPath, err := infra.GenerateReciboPDF(venta, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("recibo_worker: generate pdf: %w", err)
	}
	log.Info().Str("venta_id", ventaID.String()).Str("pdf", pdfPath).Msg("recibo_worker: recibo generado")

	if payload.ClienteEmail != nil && *payload.ClienteEmail != "" {
		emailPayload := EmailJobPayload{
			ToEmail: *payload.ClienteEmail,
			Subject: "Tu recibo de compra - La Pape",
			Body:    fmt.Sprintf("Gracias por tu compra. Adjuntamos el recibo de la venta %s.", ventaID),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailPayload); err != nil {
			// The PDF exists; losing the email job is not worth a full retry.
			log.Error().Err(err).Str("venta_id", ventaID.String()).Msg("recibo_worker: failed to enqueue email")
		}
	}
	return nil
}
