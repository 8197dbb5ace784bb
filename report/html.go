package report

import (
	"bytes"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/warungkas/warungkas/internal/payroll"
	"github.com/warungkas/warungkas/internal/pos"
	"github.com/warungkas/warungkas/internal/reports"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

var templateFuncs = template.FuncMap{
	"rupiah": func(v float64) string {
		return rupiahPrinter.Sprintf("Rp %.0f", v)
	},
}

var periodTemplate = template.Must(template.New("period").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html lang="id">
<head><meta charset="utf-8"><title>Laporan {{.Kind}} {{.Period}}</title>
<style>
body { font-family: sans-serif; font-size: 12px; margin: 24px; }
h1 { font-size: 18px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 16px; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
td.amount { text-align: right; }
</style>
</head>
<body>
<h1>Laporan {{.Kind}} &mdash; {{.Period}}</h1>
<table>
<tr><th>Pos</th><th>Jumlah</th></tr>
<tr><td>Total Penjualan</td><td class="amount">{{rupiah .Totals.TotalSales}}</td></tr>
<tr><td>Total Modal</td><td class="amount">{{rupiah .Totals.TotalCost}}</td></tr>
<tr><td>Laba Kotor</td><td class="amount">{{rupiah .Totals.GrossProfit}}</td></tr>
<tr><td>Pengeluaran</td><td class="amount">{{rupiah .Totals.Expenses}}</td></tr>
<tr><td>Biaya Akomodasi</td><td class="amount">{{rupiah .Totals.Accommodation}}</td></tr>
<tr><td>Penyusutan</td><td class="amount">{{rupiah .Totals.Depreciation}}</td></tr>
<tr><td>Gaji</td><td class="amount">{{rupiah .Totals.Salaries}}</td></tr>
<tr><td>Pembayaran Hutang</td><td class="amount">{{rupiah .Totals.DebtPayments}}</td></tr>
<tr><td>Penerimaan Piutang</td><td class="amount">{{rupiah .Totals.ReceivableCollections}}</td></tr>
<tr><td><strong>Laba Bersih</strong></td><td class="amount"><strong>{{rupiah .Totals.NetProfit}}</strong></td></tr>
</table>
{{if .Distribution}}
<h1>Pembagian Laba</h1>
<table>
<tr><th>Bagian</th><th>Jumlah</th></tr>
<tr><td>Usaha</td><td class="amount">{{rupiah .Distribution.BusinessAmount}}</td></tr>
<tr><td>Tabungan Usaha</td><td class="amount">{{rupiah .Distribution.BusinessSavingsAmount}}</td></tr>
<tr><td>Operasional Usaha</td><td class="amount">{{rupiah .Distribution.BusinessOperationalAmount}}</td></tr>
<tr><td>Pendiri</td><td class="amount">{{rupiah .Distribution.FounderAmount}}</td></tr>
{{range .Distribution.Founders}}
<tr><td>Pendiri: {{.Name}} ({{.Percentage}}%)</td><td class="amount">{{rupiah .Amount}}</td></tr>
{{end}}
</table>
{{end}}
{{if .Breakdown}}
<h1>Rincian per Periode</h1>
<table>
<tr><th>Periode</th><th>Penjualan</th><th>Modal</th><th>Laba Kotor</th><th>Laba Bersih</th></tr>
{{range .Breakdown}}
<tr><td>{{.Period}}</td><td class="amount">{{rupiah .TotalSales}}</td><td class="amount">{{rupiah .TotalCost}}</td><td class="amount">{{rupiah .GrossProfit}}</td><td class="amount">{{rupiah .NetProfit}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>`))

var receiptTemplate = template.Must(template.New("receipt").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html lang="id">
<head><meta charset="utf-8"><title>Struk {{.ID}}</title>
<style>
body { font-family: monospace; font-size: 12px; width: 260px; margin: 8px; }
table { width: 100%; }
td.amount { text-align: right; }
hr { border: none; border-top: 1px dashed #000; }
</style>
</head>
<body>
<p>{{.Timestamp}}<br>No. {{.ID}}</p>
<hr>
<table>
{{range .Items}}
<tr><td>{{.Name}} x{{.Quantity}}</td><td class="amount">{{rupiah .UnitPrice}}</td></tr>
{{end}}
</table>
<hr>
<table>
{{if .DiscountPercent}}<tr><td>Diskon</td><td class="amount">{{.DiscountPercent}}%</td></tr>{{end}}
<tr><td>Total</td><td class="amount">{{rupiah .Total}}</td></tr>
<tr><td>Tunai</td><td class="amount">{{rupiah .AmountPaid}}</td></tr>
<tr><td>Kembalian</td><td class="amount">{{rupiah .Change}}</td></tr>
</table>
<hr>
<p>Terima kasih!</p>
</body>
</html>`))

var payslipTemplate = template.Must(template.New("payslip").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html lang="id">
<head><meta charset="utf-8"><title>Slip Gaji {{.Employee.Name}} {{.Period}}</title>
<style>
body { font-family: sans-serif; font-size: 12px; margin: 24px; }
h1 { font-size: 18px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 16px; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
td.amount { text-align: right; }
</style>
</head>
<body>
<h1>Slip Gaji &mdash; {{.Employee.Name}} ({{.Period}})</h1>
<table>
<tr><th>Komponen</th><th>Jumlah</th></tr>
<tr><td>Gaji Pokok</td><td class="amount">{{rupiah .BaseSalary}}</td></tr>
<tr><td>Tunjangan</td><td class="amount">{{rupiah .Allowances}}</td></tr>
<tr><td>Potongan</td><td class="amount">{{rupiah .Deductions}}</td></tr>
<tr><td>Upah Per Jam</td><td class="amount">{{rupiah .HourlyPay}}</td></tr>
<tr><td><strong>Total</strong></td><td class="amount"><strong>{{rupiah .Total}}</strong></td></tr>
</table>
{{if .Records}}
<table>
<tr><th>Tanggal</th><th>Jam</th><th>Tarif</th></tr>
{{range .Records}}
<tr><td>{{.Date}}</td><td class="amount">{{.Hours}}</td><td class="amount">{{rupiah .HourlyRate}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>`))

// RenderPeriodHTML renders a period report for PDF conversion.
func RenderPeriodHTML(rep reports.Report) (string, error) {
	return execute(periodTemplate, rep)
}

// RenderReceiptHTML renders a checkout receipt for PDF conversion.
func RenderReceiptHTML(trx pos.Transaction) (string, error) {
	return execute(receiptTemplate, trx)
}

// RenderPayslipHTML renders an employee payslip for PDF conversion.
func RenderPayslipHTML(slip payroll.Payslip) (string, error) {
	return execute(payslipTemplate, slip)
}

func execute(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
