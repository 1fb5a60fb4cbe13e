package infra

// pdf.go — printable end-of-day close report using go-pdf/fpdf.
// One A5 page: fund, revenue split, expenses, and the theoretical balance
// the drawer was closed against.

import (
	"fmt"
	"os"
	"path/filepath"

	"viewspos/internal/dto"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerarReporteCierrePDF writes the close report for one date and returns
// the absolute path of the generated file.
func GenerarReporteCierrePDF(rep dto.ReporteCierre, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("cierre_%s.pdf", rep.Fecha))

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Reporte de Cierre de Caja", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Fecha: %s", rep.Fecha), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Cerrado por: %s", rep.CerradoPor), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(3)

	linea := func(etiqueta string, monto decimal.Decimal, bold bool) {
		estilo := ""
		if bold {
			estilo = "B"
		}
		pdf.SetFont("Helvetica", estilo, 10)
		pdf.CellFormat(contentW*0.6, 6, etiqueta, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 6, "$"+monto.StringFixed(2), "", 1, "R", false, 0, "")
	}

	linea("Fondo inicial", rep.FondoInicial, false)
	linea("Ventas totales", rep.Ventas.Total, false)
	linea("  Tarjetas (BAC + Promerica)", rep.Ventas.Tarjeta, false)
	linea("  Depositos", rep.Ventas.Deposito, false)
	linea("Gastos", rep.Gastos, false)
	pdf.Ln(2)
	linea("Efectivo teorico", rep.Teorico, true)
	linea("Fondo para el dia siguiente", rep.FondoFinal, true)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
