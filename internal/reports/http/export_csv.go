package http

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/warungkas/warungkas/internal/reports"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}
}

func (s *csvStreamer) writeComment(line string) error {
	if s == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if !strings.HasSuffix(line, "\r\n") {
		line = strings.TrimSuffix(line, "\n")
		line += "\r\n"
	}
	if _, err := s.buf.WriteString(line); err != nil {
		return err
	}
	return nil
}

func (s *csvStreamer) writeRow(row []string) error {
	if s == nil || s.csv == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.Flush()
	}
	return nil
}

func (s *csvStreamer) Flush() error {
	if s == nil || s.csv == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

func (s *csvStreamer) Close() error {
	return s.Flush()
}

func writeReportCSV(w io.Writer, rep reports.Report) error {
	streamer := newCSVStreamer(w)
	if err := streamer.writeComment(fmt.Sprintf("# Laporan %s", rep.Kind)); err != nil {
		return err
	}
	if err := streamer.writeComment(fmt.Sprintf("# Periode: %s", rep.Period)); err != nil {
		return err
	}
	if err := streamer.writeRow([]string{"Pos", "Jumlah"}); err != nil {
		return err
	}
	totalsRows := [][]string{
		{"Total Penjualan", formatRupiah(rep.Totals.TotalSales)},
		{"Total Modal", formatRupiah(rep.Totals.TotalCost)},
		{"Laba Kotor", formatRupiah(rep.Totals.GrossProfit)},
		{"Pengeluaran", formatRupiah(rep.Totals.Expenses)},
		{"Biaya Akomodasi", formatRupiah(rep.Totals.Accommodation)},
		{"Penyusutan", formatRupiah(rep.Totals.Depreciation)},
		{"Gaji", formatRupiah(rep.Totals.Salaries)},
		{"Pembayaran Hutang", formatRupiah(rep.Totals.DebtPayments)},
		{"Penerimaan Piutang", formatRupiah(rep.Totals.ReceivableCollections)},
		{"Laba Bersih", formatRupiah(rep.Totals.NetProfit)},
	}
	for _, row := range totalsRows {
		if err := streamer.writeRow(row); err != nil {
			return err
		}
	}
	if rep.Distribution != nil {
		if err := streamer.writeRow([]string{"", ""}); err != nil {
			return err
		}
		if err := streamer.writeRow([]string{"Pembagian", "Jumlah"}); err != nil {
			return err
		}
		distRows := [][]string{
			{"Bagian Usaha", formatRupiah(rep.Distribution.BusinessAmount)},
			{"Tabungan Usaha", formatRupiah(rep.Distribution.BusinessSavingsAmount)},
			{"Operasional Usaha", formatRupiah(rep.Distribution.BusinessOperationalAmount)},
			{"Bagian Pendiri", formatRupiah(rep.Distribution.FounderAmount)},
		}
		for _, row := range distRows {
			if err := streamer.writeRow(row); err != nil {
				return err
			}
		}
		for _, founder := range rep.Distribution.Founders {
			if err := streamer.writeRow([]string{"Pendiri: " + founder.Name, formatRupiah(founder.Amount)}); err != nil {
				return err
			}
		}
	}
	if len(rep.Breakdown) > 0 {
		if err := streamer.writeRow([]string{"", ""}); err != nil {
			return err
		}
		if err := streamer.writeRow([]string{"Periode", "Penjualan", "Modal", "Laba Kotor", "Laba Bersih"}); err != nil {
			return err
		}
		for _, entry := range rep.Breakdown {
			if err := streamer.writeRow([]string{
				entry.Period,
				formatRupiah(entry.TotalSales),
				formatRupiah(entry.TotalCost),
				formatRupiah(entry.GrossProfit),
				formatRupiah(entry.NetProfit),
			}); err != nil {
				return err
			}
		}
	}
	return streamer.Close()
}

func formatRupiah(v float64) string {
	return rupiahPrinter.Sprintf("Rp %.0f", v)
}
