package render

const itemRowTemplate = `<tr class="item-row">
  <td><input type="text" name="{{fieldName .Prefix .Index "description"}}" value="{{.Description}}" placeholder="Description"></td>
  <td><input type="text" inputmode="decimal" name="{{fieldName .Prefix .Index "quantity"}}" value="{{.Quantity}}" placeholder="1"></td>
  <td><input type="text" inputmode="decimal" name="{{fieldName .Prefix .Index .PriceField}}" value="{{.Price}}" placeholder="{{.PriceLabel}}"></td>
  <td><label><input type="checkbox" name="{{fieldName .Prefix .Index "DELETE"}}"> Supprimer</label></td>
</tr>`

const rowFragmentTemplate = `{{template "item_row" .RowData}}
<input type="hidden" id="id_{{.Prefix}}-TOTAL_FORMS" name="{{countField .Prefix}}" value="{{.Total}}" hx-swap-oob="true">`

const formStyles = `<style>
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
           margin: 0; padding: 40px; color: #1a1f36; background: #f7f9fc; }
    .card { background: #ffffff; max-width: 860px; margin: 0 auto; padding: 40px;
            box-shadow: 0 2px 5px rgba(0,0,0,0.04); border-radius: 4px; }
    h1 { font-size: 22px; margin-top: 0; }
    fieldset { border: 1px solid #e3e8ee; border-radius: 4px; margin-bottom: 24px; }
    legend { font-size: 12px; text-transform: uppercase; color: #8792a2; font-weight: 600; }
    label { display: block; font-size: 13px; margin: 10px 0 4px; }
    input[type=text], input[type=date], input[type=email], select, textarea {
      width: 100%; box-sizing: border-box; padding: 7px 9px; font-size: 14px;
      border: 1px solid #e3e8ee; border-radius: 4px; }
    .error { color: #cd3d64; font-size: 12px; display: block; margin-top: 3px; }
    table { width: 100%; border-collapse: collapse; }
    th { text-align: left; font-size: 11px; text-transform: uppercase; color: #8792a2; padding: 8px 4px; }
    td { padding: 6px 4px; }
    button { background: #006aff; color: #fff; border: 0; border-radius: 4px;
             padding: 10px 18px; font-size: 14px; cursor: pointer; }
    button.secondary { background: #f7f9fc; color: #1a1f36; border: 1px solid #e3e8ee; }
  </style>`

const invoiceFormTemplate = `<!doctype html>
<html lang="fr">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="https://unpkg.com/htmx.org@1.9.12"></script>
  ` + formStyles + `
</head>
<body>
<div class="card">
  <h1>{{.Title}}</h1>
  <form method="post" action="{{.Action}}">
    <fieldset>
      <legend>Émetteur</legend>
      <label>Nom / Raison sociale</label>
      <input type="text" name="from_name" value="{{.Values.Get "from_name"}}">
      {{with index .Errors "from_name"}}<span class="error">{{.}}</span>{{end}}
      <label>Adresse</label>
      <input type="text" name="from_address" value="{{.Values.Get "from_address"}}">
      {{with index .Errors "from_address"}}<span class="error">{{.}}</span>{{end}}
      <label>Code postal et ville</label>
      <input type="text" name="from_city" value="{{.Values.Get "from_city"}}">
      <label>Email</label>
      <input type="email" name="from_email" value="{{.Values.Get "from_email"}}">
      {{with index .Errors "from_email"}}<span class="error">{{.}}</span>{{end}}
      <label>SIRET</label>
      <input type="text" name="siret" value="{{.Values.Get "siret"}}">
      {{with index .Errors "siret"}}<span class="error">{{.}}</span>{{end}}
      <label>RCS</label>
      <input type="text" name="rcs" value="{{.Values.Get "rcs"}}">
      <label><input type="checkbox" name="is_ei" {{if .Values.Get "is_ei"}}checked{{end}}> Entrepreneur individuel (EI)</label>
    </fieldset>

    <fieldset>
      <legend>Destinataire</legend>
      <label>Nom / Raison sociale</label>
      <input type="text" name="to_name" value="{{.Values.Get "to_name"}}">
      {{with index .Errors "to_name"}}<span class="error">{{.}}</span>{{end}}
      <label>Adresse</label>
      <input type="text" name="to_address" value="{{.Values.Get "to_address"}}">
      {{with index .Errors "to_address"}}<span class="error">{{.}}</span>{{end}}
      <label>Code postal et ville</label>
      <input type="text" name="to_city" value="{{.Values.Get "to_city"}}">
      <label>Email</label>
      <input type="email" name="to_email" value="{{.Values.Get "to_email"}}">
      {{with index .Errors "to_email"}}<span class="error">{{.}}</span>{{end}}
    </fieldset>

    <fieldset>
      <legend>Facture</legend>
      <label>Numéro de facture</label>
      <input type="text" name="invoice_number" value="{{.Values.Get "invoice_number"}}">
      {{with index .Errors "invoice_number"}}<span class="error">{{.}}</span>{{end}}
      <label>Date d'émission</label>
      <input type="date" name="invoice_date" value="{{.Values.Get "invoice_date"}}">
      {{with index .Errors "invoice_date"}}<span class="error">{{.}}</span>{{end}}
      <label>Début de prestation</label>
      <input type="date" name="service_date_start" value="{{.Values.Get "service_date_start"}}">
      {{with index .Errors "service_date_start"}}<span class="error">{{.}}</span>{{end}}
      <label>Fin de prestation</label>
      <input type="date" name="service_date_end" value="{{.Values.Get "service_date_end"}}">
      {{with index .Errors "service_date_end"}}<span class="error">{{.}}</span>{{end}}
      <label>Date d'échéance</label>
      <input type="date" name="due_date" value="{{.Values.Get "due_date"}}">
      {{with index .Errors "due_date"}}<span class="error">{{.}}</span>{{end}}
    </fieldset>

    <fieldset>
      <legend>Lignes</legend>
      <input type="hidden" id="id_{{.Prefix}}-TOTAL_FORMS" name="{{countField .Prefix}}" value="{{.Total}}">
      <table>
        <thead>
          <tr><th>Description</th><th>Quantité</th><th>{{.PriceLabel}}</th><th></th></tr>
        </thead>
        <tbody id="items-body">
          {{range .Rows}}{{template "item_row" .}}{{end}}
        </tbody>
      </table>
      <button type="button" class="secondary"
              hx-get="{{.RowURL}}" hx-target="#items-body" hx-swap="beforeend"
              hx-include="#id_{{.Prefix}}-TOTAL_FORMS">Ajouter une ligne</button>
    </fieldset>

    <fieldset>
      <legend>TVA</legend>
      <label><input type="checkbox" name="is_vat_exempt" {{if .Values.Get "is_vat_exempt"}}checked{{end}}> TVA non applicable (franchise en base)</label>
      <label>Taux de TVA (%)</label>
      <input type="text" inputmode="decimal" name="vat_rate" value="{{.Values.Get "vat_rate"}}" placeholder="20">
      {{with index .Errors "vat_rate"}}<span class="error">{{.}}</span>{{end}}
      <label><input type="checkbox" name="autoliquidation" {{if .Values.Get "autoliquidation"}}checked{{end}}> Autoliquidation</label>
    </fieldset>

    <fieldset>
      <legend>Conditions</legend>
      <label>Conditions de règlement</label>
      <input type="text" name="payment_terms" value="{{.Values.Get "payment_terms"}}">
      <label>Taux de pénalités de retard (%)</label>
      <input type="text" inputmode="decimal" name="late_fee_rate" value="{{.Values.Get "late_fee_rate"}}">
      {{with index .Errors "late_fee_rate"}}<span class="error">{{.}}</span>{{end}}
      <label><input type="checkbox" name="recovery_fee" {{if .Values.Get "recovery_fee"}}checked{{end}}> Indemnité forfaitaire de recouvrement (40 €)</label>
      <label>Notes</label>
      <textarea name="notes" rows="3">{{.Values.Get "notes"}}</textarea>
    </fieldset>

    <button type="submit">Générer la facture</button>
  </form>
</div>
</body>
</html>`

const labelFormTemplate = `<!doctype html>
<html lang="fr">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="https://unpkg.com/htmx.org@1.9.12"></script>
  ` + formStyles + `
</head>
<body>
<div class="card">
  <h1>{{.Title}}</h1>
  <form method="post" action="{{.Action}}">
    <fieldset>
      <legend>Commande</legend>
      <label>Numéro de commande</label>
      <input type="text" name="order_number" value="{{.Values.Get "order_number"}}">
      {{with index .Errors "order_number"}}<span class="error">{{.}}</span>{{end}}
      <label>Date d'expédition</label>
      <input type="date" name="shipping_date" value="{{.Values.Get "shipping_date"}}">
      {{with index .Errors "shipping_date"}}<span class="error">{{.}}</span>{{end}}
    </fieldset>

    <fieldset>
      <legend>Expéditeur</legend>
      <label>Nom</label>
      <input type="text" name="sender_name" value="{{.Values.Get "sender_name"}}">
      {{with index .Errors "sender_name"}}<span class="error">{{.}}</span>{{end}}
      <label>Adresse</label>
      <input type="text" name="sender_address" value="{{.Values.Get "sender_address"}}">
      {{with index .Errors "sender_address"}}<span class="error">{{.}}</span>{{end}}
      <label>Code postal et ville</label>
      <input type="text" name="sender_city" value="{{.Values.Get "sender_city"}}">
      {{with index .Errors "sender_city"}}<span class="error">{{.}}</span>{{end}}
      <label>Email</label>
      <input type="email" name="sender_email" value="{{.Values.Get "sender_email"}}">
      {{with index .Errors "sender_email"}}<span class="error">{{.}}</span>{{end}}
      <label>Téléphone</label>
      <input type="text" name="sender_phone" value="{{.Values.Get "sender_phone"}}">
    </fieldset>

    <fieldset>
      <legend>Destinataire</legend>
      <label>Nom</label>
      <input type="text" name="recipient_name" value="{{.Values.Get "recipient_name"}}">
      {{with index .Errors "recipient_name"}}<span class="error">{{.}}</span>{{end}}
      <label>Adresse</label>
      <input type="text" name="recipient_address" value="{{.Values.Get "recipient_address"}}">
      {{with index .Errors "recipient_address"}}<span class="error">{{.}}</span>{{end}}
      <label>Code postal et ville</label>
      <input type="text" name="recipient_city" value="{{.Values.Get "recipient_city"}}">
      {{with index .Errors "recipient_city"}}<span class="error">{{.}}</span>{{end}}
      <label>Email</label>
      <input type="email" name="recipient_email" value="{{.Values.Get "recipient_email"}}">
      {{with index .Errors "recipient_email"}}<span class="error">{{.}}</span>{{end}}
      <label>Téléphone</label>
      <input type="text" name="recipient_phone" value="{{.Values.Get "recipient_phone"}}">
      <label>Instructions de livraison</label>
      <input type="text" name="recipient_instructions" value="{{.Values.Get "recipient_instructions"}}">
    </fieldset>

    <fieldset>
      <legend>Colis</legend>
      <label>Poids (kg)</label>
      <input type="text" inputmode="decimal" name="weight" value="{{.Values.Get "weight"}}">
      {{with index .Errors "weight"}}<span class="error">{{.}}</span>{{end}}
      <label>Longueur (cm)</label>
      <input type="text" inputmode="numeric" name="length" value="{{.Values.Get "length"}}">
      {{with index .Errors "length"}}<span class="error">{{.}}</span>{{end}}
      <label>Largeur (cm)</label>
      <input type="text" inputmode="numeric" name="width" value="{{.Values.Get "width"}}">
      {{with index .Errors "width"}}<span class="error">{{.}}</span>{{end}}
      <label>Hauteur (cm)</label>
      <input type="text" inputmode="numeric" name="height" value="{{.Values.Get "height"}}">
      {{with index .Errors "height"}}<span class="error">{{.}}</span>{{end}}
    </fieldset>

    <fieldset>
      <legend>Transporteur</legend>
      <label>Transporteur</label>
      <select name="carrier">
        <option value="colissimo" {{if eq (.Values.Get "carrier") "colissimo"}}selected{{end}}>Colissimo</option>
        <option value="chronopost" {{if eq (.Values.Get "carrier") "chronopost"}}selected{{end}}>Chronopost</option>
        <option value="mondial_relay" {{if eq (.Values.Get "carrier") "mondial_relay"}}selected{{end}}>Mondial Relay</option>
        <option value="ups" {{if eq (.Values.Get "carrier") "ups"}}selected{{end}}>UPS</option>
        <option value="dpd" {{if eq (.Values.Get "carrier") "dpd"}}selected{{end}}>DPD</option>
        <option value="other" {{if eq (.Values.Get "carrier") "other"}}selected{{end}}>Autre</option>
      </select>
      {{with index .Errors "carrier"}}<span class="error">{{.}}</span>{{end}}
      <label>Autre transporteur</label>
      <input type="text" name="carrier_other" value="{{.Values.Get "carrier_other"}}">
      {{with index .Errors "carrier_other"}}<span class="error">{{.}}</span>{{end}}
      <label>Numéro de suivi</label>
      <input type="text" name="tracking_number" value="{{.Values.Get "tracking_number"}}">
    </fieldset>

    <fieldset>
      <legend>Options</legend>
      <label><input type="checkbox" name="is_fragile" {{if .Values.Get "is_fragile"}}checked{{end}}> Fragile</label>
      <label><input type="checkbox" name="is_insured" {{if .Values.Get "is_insured"}}checked{{end}}> Assuré</label>
      <label>Montant assuré (€)</label>
      <input type="text" inputmode="decimal" name="insurance_amount" value="{{.Values.Get "insurance_amount"}}">
      {{with index .Errors "insurance_amount"}}<span class="error">{{.}}</span>{{end}}
      <label>Contre-remboursement (€)</label>
      <input type="text" inputmode="decimal" name="cash_on_delivery" value="{{.Values.Get "cash_on_delivery"}}">
      {{with index .Errors "cash_on_delivery"}}<span class="error">{{.}}</span>{{end}}
      <label><input type="checkbox" name="signature_required" {{if .Values.Get "signature_required"}}checked{{end}}> Remise contre signature</label>
      <label>Message au destinataire</label>
      <input type="text" name="recipient_message" value="{{.Values.Get "recipient_message"}}">
      {{with index .Errors "recipient_message"}}<span class="error">{{.}}</span>{{end}}
    </fieldset>

    <fieldset>
      <legend>Contenu déclaré</legend>
      <input type="hidden" id="id_{{.Prefix}}-TOTAL_FORMS" name="{{countField .Prefix}}" value="{{.Total}}">
      <table>
        <thead>
          <tr><th>Description</th><th>Quantité</th><th>{{.PriceLabel}}</th><th></th></tr>
        </thead>
        <tbody id="items-body">
          {{range .Rows}}{{template "item_row" .}}{{end}}
        </tbody>
      </table>
      <button type="button" class="secondary"
              hx-get="{{.RowURL}}" hx-target="#items-body" hx-swap="beforeend"
              hx-include="#id_{{.Prefix}}-TOTAL_FORMS">Ajouter une ligne</button>
    </fieldset>

    <button type="submit">Générer l'étiquette</button>
  </form>
</div>
</body>
</html>`

const invoiceViewTemplate = `<!doctype html>
<html lang="fr">
<head>
  <meta charset="utf-8">
  <title>Facture {{.Invoice.InvoiceNumber}}</title>
  ` + formStyles + `
</head>
<body>
<div class="card">
  <h1>Facture {{.Invoice.InvoiceNumber}}</h1>
  <p>Émise le {{formatDate .Invoice.InvoiceDate}}, échéance le {{formatDate .Invoice.DueDate}}.</p>
  <p><strong>{{.Invoice.FromName}}</strong>{{if .Invoice.IsEI}} EI{{end}}<br>{{.Invoice.FromAddress}}<br>{{.Invoice.FromCity}}</p>
  <p>Destinataire : <strong>{{.Invoice.ToName}}</strong><br>{{.Invoice.ToAddress}}<br>{{.Invoice.ToCity}}</p>
  <table>
    <thead>
      <tr><th>Description</th><th>Quantité</th><th>Prix unitaire</th><th>Montant</th></tr>
    </thead>
    <tbody>
      {{range .Invoice.Items}}
      <tr>
        <td>{{.Description}}</td>
        <td>{{formatQuantity .Quantity}}</td>
        <td>{{formatAmount .UnitPrice}}</td>
        <td>{{formatAmount .LineTotal}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <p>Sous-total HT : {{formatAmount .Invoice.Subtotal}}<br>
  {{if .Invoice.IsVATExempt}}{{.ExemptionNotice}}{{else}}TVA ({{formatQuantity .Invoice.VATRate}}%) : {{formatAmount .Invoice.VATAmount}}{{end}}<br>
  <strong>Total TTC : {{formatAmount .Invoice.Total}}</strong></p>
  <p>Statut : {{.Invoice.Status}}{{if .IsOverdue}} <strong class="error">En retard</strong>{{end}}</p>
</div>
</body>
</html>`

const labelViewTemplate = `<!doctype html>
<html lang="fr">
<head>
  <meta charset="utf-8">
  <title>Étiquette {{.OrderNumber}}</title>
  ` + formStyles + `
</head>
<body>
<div class="card">
  <h1>Étiquette {{.OrderNumber}} ({{.CarrierDisplay}})</h1>
  <p>Expédition le {{formatDate .ShippingDate}}{{if .TrackingNumber}}, suivi {{.TrackingNumber}}{{end}}.</p>
  <p>Expéditeur : <strong>{{.SenderName}}</strong><br>{{.SenderAddress}}<br>{{.SenderCity}}</p>
  <p>Destinataire : <strong>{{.RecipientName}}</strong><br>{{.RecipientAddress}}<br>{{.RecipientCity}}</p>
  <p>Poids : {{.Weight.StringFixed 2}} kg, dimensions {{.Length}} x {{.Width}} x {{.Height}} cm.</p>
  {{if .Items}}
  <table>
    <thead>
      <tr><th>Contenu</th><th>Quantité</th><th>Valeur</th></tr>
    </thead>
    <tbody>
      {{range .Items}}
      <tr>
        <td>{{.Description}}</td>
        <td>{{formatQuantity .Quantity}}</td>
        <td>{{formatAmount .LineValue}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <p>Valeur déclarée : {{formatAmount .DeclaredValue}}</p>
  {{end}}
  {{if .PDFGenerated}}<p>PDF généré.</p>{{end}}
</div>
</body>
</html>`
