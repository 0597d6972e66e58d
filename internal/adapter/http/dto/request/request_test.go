package request

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	var body struct {
		A Amount  `json:"a"`
		B Amount  `json:"b"`
		C Amount  `json:"c"`
		D *Amount `json:"d"`
		E *Amount `json:"e"`
	}
	if err := json.Unmarshal([]byte(`{"a":12.5,"b":"1,200.40","c":"abc","d":null,"e":"7"}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !body.A.Decimal().Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("expected 12.5, got %s", body.A.Decimal())
	}
	if !body.B.Decimal().Equal(decimal.RequireFromString("1200.40")) {
		t.Fatalf("expected 1200.40, got %s", body.B.Decimal())
	}
	if !body.C.Decimal().IsZero() {
		t.Fatalf("expected unparsable text to read as zero, got %s", body.C.Decimal())
	}
	if body.D.DecimalPtr() != nil {
		t.Fatalf("expected nil for null amount")
	}
	if got := body.E.DecimalPtr(); got == nil || !got.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("expected 7, got %v", got)
	}
}

func TestCreateOrderRequest_ToInput(t *testing.T) {
	var r CreateOrderRequest
	raw := `{"quotation_number":" QTN-7 ","customer_name":" Acme ","tax_rate":"10",
		"items":[{"description":" frame ","cost_type":"Labor","quantity":2,"unit_price":"50"}]}`
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if in.QuotationNumber != "QTN-7" || in.CustomerName != "Acme" {
		t.Fatalf("expected trimmed header, got %+v", in)
	}
	if in.TaxRate == nil || !in.TaxRate.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected tax rate 10, got %v", in.TaxRate)
	}
	if len(in.Items) != 1 || in.Items[0].Description != "frame" || !in.Items[0].UnitPrice.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected items %+v", in.Items)
	}
}

func TestPatchRequests_KeepOmittedFieldsNil(t *testing.T) {
	var li LineItemPatchRequest
	if err := json.Unmarshal([]byte(`{"quantity":"3"}`), &li); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := li.ToPatch()
	if p.UnitPrice != nil || p.Description != nil || p.Quantity == nil || !p.Quantity.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("unexpected patch %+v", p)
	}

	var bi BOQItemPatchRequest
	if err := json.Unmarshal([]byte(`{"rate":4}`), &bi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bp := bi.ToPatch()
	if bp.Quantity != nil || bp.Rate == nil || !bp.Rate.Equal(decimal.NewFromInt(4)) {
		t.Fatalf("unexpected patch %+v", bp)
	}
}

func TestPORequest_ToInput(t *testing.T) {
	in := PORequest{PONumber: " PO-1 ", POFileRef: " s3://po.pdf "}.ToInput()
	if in.Number != "PO-1" || in.FileRef != "s3://po.pdf" || in.Amount != nil {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestApprovalDecisionRequest_ToInput(t *testing.T) {
	yes := true
	if !(ApprovalDecisionRequest{Approved: &yes}).ToInput().Approved {
		t.Fatalf("expected approved")
	}
	if (ApprovalDecisionRequest{}).ToInput().Approved {
		t.Fatalf("expected missing decision to read as not approved")
	}
}
