// services/templates.go
package services

// Fixed HTML/CSS documents printed to PDF. Layout changes happen here, not in
// the render code.

const quotationTemplate = `{{define "quotation"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; color: #222; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #1a5276; padding-bottom: 12px; }
  .company-name { font-size: 20px; font-weight: bold; color: #1a5276; }
  .muted { color: #666; }
  .doc-title { text-align: center; font-size: 16px; font-weight: bold; margin: 18px 0; letter-spacing: 2px; }
  table.items { width: 100%; border-collapse: collapse; margin-top: 10px; }
  table.items th { background: #1a5276; color: #fff; padding: 6px 8px; text-align: left; font-size: 11px; }
  table.items td { border-bottom: 1px solid #ddd; padding: 6px 8px; }
  td.num, th.num { text-align: right; }
  .totals { width: 40%; margin-left: auto; margin-top: 12px; border-collapse: collapse; }
  .totals td { padding: 4px 8px; }
  .totals tr.grand td { font-weight: bold; border-top: 2px solid #1a5276; }
  .words { margin-top: 8px; font-style: italic; }
  .section { margin-top: 18px; }
  .sign { margin-top: 48px; text-align: right; }
  .sign img { max-height: 60px; }
</style>
</head>
<body>
  <div class="header">
    <div>
      {{if .Company.LogoURL}}<img src="{{.Company.LogoURL}}" style="max-height:64px"><br>{{end}}
      <span class="company-name">{{.Company.Name}}</span><br>
      <span class="muted">{{.Company.Address}}</span><br>
      <span class="muted">Phone: {{.Company.Phone}} | Email: {{.Company.Email}}</span><br>
      {{if .Company.GSTNumber}}<span class="muted">GSTIN: {{.Company.GSTNumber}}</span>{{end}}
    </div>
    <div style="text-align:right">
      <b>Quotation No:</b> {{.Number}}<br>
      <b>Date:</b> {{.Date}}<br>
      <b>Valid Until:</b> {{.ValidUntil}}
    </div>
  </div>

  <div class="doc-title">QUOTATION</div>

  <div>
    <b>To:</b> {{.Customer.Name}}{{if .Customer.CompanyName}}, {{.Customer.CompanyName}}{{end}}<br>
    {{if .Customer.Address}}{{.Customer.Address}}<br>{{end}}
    {{if .Customer.GSTNumber}}GSTIN: {{.Customer.GSTNumber}}<br>{{end}}
    Phone: {{.Customer.Phone}}
  </div>

  <table class="items">
    <tr>
      <th>#</th><th>Description</th><th class="num">Qty</th><th class="num">Unit Price</th>
      <th class="num">Amount</th><th class="num">GST %</th><th class="num">GST Amt</th><th class="num">Total</th>
    </tr>
    {{range $i, $item := .Items}}
    <tr>
      <td>{{add1 $i}}</td>
      <td>{{$item.Description}}</td>
      <td class="num">{{$item.Quantity}}</td>
      <td class="num">{{money $item.UnitPrice}}</td>
      <td class="num">{{money $item.Amount}}</td>
      <td class="num">{{money $item.GstPercentage}}</td>
      <td class="num">{{money $item.GstAmount}}</td>
      <td class="num">{{money $item.Total}}</td>
    </tr>
    {{end}}
  </table>

  <table class="totals">
    <tr><td>Subtotal</td><td class="num">{{money .Subtotal}}</td></tr>
    <tr><td>Total GST</td><td class="num">{{money .TotalGst}}</td></tr>
    <tr class="grand"><td>Grand Total</td><td class="num">{{money .GrandTotal}}</td></tr>
  </table>
  <div class="words">Amount in words: {{.AmountInWords}} Only</div>

  {{if .Notes}}<div class="section"><b>Notes</b><br>{{.Notes}}</div>{{end}}
  {{if .TermsConditions}}<div class="section"><b>Terms &amp; Conditions</b><br>{{.TermsConditions}}</div>{{end}}

  <div class="sign">
    {{if .Company.SignURL}}<img src="{{.Company.SignURL}}"><br>{{end}}
    For {{.Company.Name}}<br>
    Authorised Signatory
  </div>
</body>
</html>{{end}}`

const serviceReportTemplate = `{{define "service_report"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; color: #222; }
  .header { border-bottom: 2px solid #1a5276; padding-bottom: 12px; }
  .company-name { font-size: 20px; font-weight: bold; color: #1a5276; }
  .muted { color: #666; }
  .doc-title { text-align: center; font-size: 16px; font-weight: bold; margin: 18px 0; letter-spacing: 2px; }
  table.meta td { padding: 3px 10px 3px 0; }
  .category { margin-top: 14px; border: 1px solid #ddd; border-radius: 4px; padding: 8px 12px; }
  .category h4 { margin: 0 0 6px 0; color: #1a5276; }
  ul.subs { margin: 4px 0 4px 18px; padding: 0; }
  .notes { color: #444; font-style: italic; }
  .sign { margin-top: 48px; text-align: right; }
  .sign img { max-height: 60px; }
</style>
</head>
<body>
  <div class="header">
    {{if .Company.LogoURL}}<img src="{{.Company.LogoURL}}" style="max-height:64px"><br>{{end}}
    <span class="company-name">{{.Company.Name}}</span><br>
    <span class="muted">{{.Company.Address}}</span><br>
    <span class="muted">Phone: {{.Company.Phone}} | Email: {{.Company.Email}}</span>
  </div>

  <div class="doc-title">SERVICE REPORT #{{.RecordID}}</div>

  <table class="meta">
    <tr><td><b>Machine:</b></td><td>{{.Machine.Name}} ({{.Machine.MachineModel}}), S/N {{.Machine.SerialNumber}}</td></tr>
    <tr><td><b>Service Date:</b></td><td>{{.ServiceDate}}</td></tr>
    <tr><td><b>Engine Hours:</b></td><td>{{.EngineHours}}</td></tr>
    <tr><td><b>Site Location:</b></td><td>{{.SiteLocation}}</td></tr>
    <tr><td><b>Operator:</b></td><td>{{.Operator}}</td></tr>
  </table>

  {{range .Categories}}
  <div class="category">
    <h4>{{.Category.Name}}</h4>
    {{if .ServiceNotes}}<div class="notes">{{.ServiceNotes}}</div>{{end}}
    {{if .SubServices}}
    <ul class="subs">
      {{range .SubServices}}
      <li>{{.SubService.Name}}{{if .SubServiceNotes}}: <span class="notes">{{.SubServiceNotes}}</span>{{end}}</li>
      {{end}}
    </ul>
    {{end}}
  </div>
  {{end}}

  {{if .GeneralNotes}}<div class="category"><h4>General Notes</h4>{{.GeneralNotes}}</div>{{end}}

  <div class="sign">
    {{if .Company.SignURL}}<img src="{{.Company.SignURL}}"><br>{{end}}
    For {{.Company.Name}}<br>
    Authorised Signatory
  </div>
</body>
</html>{{end}}`
