package worker

// reporte_worker.go
// Renders the close-report PDF and mails it to management. Runs entirely
// off the request path: a close succeeds even when SMTP is down.

import (
	"context"
	"encoding/json"
	"fmt"

	"viewspos/internal/dto"
	"viewspos/internal/infra"

	"github.com/rs/zerolog/log"
)

type ReporteWorker struct {
	mailer      *infra.Mailer
	destino     string
	storagePath string
}

func NewReporteWorker(mailer *infra.Mailer, destino, storagePath string) *ReporteWorker {
	return &ReporteWorker{mailer: mailer, destino: destino, storagePath: storagePath}
}

// Process renders the PDF and sends it. The PDF survives on disk even when
// the send fails, so the report can still be printed by hand.
func (w *ReporteWorker) Process(_ context.Context, raw json.RawMessage) {
	var rep dto.ReporteCierre
	if err := json.Unmarshal(raw, &rep); err != nil {
		log.Error().Err(err).Msg("reporte_worker: invalid payload")
		return
	}

	pdfPath, err := infra.GenerarReporteCierrePDF(rep, w.storagePath)
	if err != nil {
		log.Error().Err(err).Str("fecha", rep.Fecha).Msg("reporte_worker: PDF generation failed")
		return
	}

	if w.destino == "" {
		log.Warn().Str("fecha", rep.Fecha).Msg("reporte_worker: REPORTE_EMAIL vacio, PDF generado sin enviar")
		return
	}

	subject := fmt.Sprintf("Cierre de caja %s", rep.Fecha)
	body := fmt.Sprintf(
		"Cierre del dia %s por %s.\nVentas: $%s  Gastos: $%s  Teorico: $%s\nFondo siguiente: $%s\n",
		rep.Fecha, rep.CerradoPor,
		rep.Ventas.Total.StringFixed(2), rep.Gastos.StringFixed(2),
		rep.Teorico.StringFixed(2), rep.FondoFinal.StringFixed(2),
	)
	if err := w.mailer.SendReporte(w.destino, subject, body, pdfPath); err != nil {
		log.Error().Err(err).Str("fecha", rep.Fecha).Msg("reporte_worker: send failed")
		return
	}
	log.Info().Str("fecha", rep.Fecha).Str("to", w.destino).Msg("reporte_worker: reporte enviado")
}
