package usecase

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// pipelineNamespace scopes the name-based ids derived from an order id.
var pipelineNamespace = uuid.MustParse("5b1f5d0e-8f0e-4b8e-9a55-2f7c8f0e3a41")

// SalesOrderIDFor is the id of the sales order a quotation converts into.
// Deriving it from the quotation id makes a second conversion collide on
// create instead of producing a duplicate.
func SalesOrderIDFor(orderID string) string {
	return uuid.NewSHA1(pipelineNamespace, []byte("sales-order:"+orderID)).String()
}

// BOQIDFor is the id of the single BOQ of an order.
func BOQIDFor(orderID string) string {
	return uuid.NewSHA1(pipelineNamespace, []byte("boq:"+orderID)).String()
}

// DrawingIDFor is the id of the drawing submitted against one version of an
// order. A retried submit lands on the same id instead of adding a drawing.
func DrawingIDFor(orderID string, orderVersion int64) string {
	return uuid.NewSHA1(pipelineNamespace, []byte("drawing:"+orderID+":"+strconv.FormatInt(orderVersion, 10))).String()
}

func shortRef(id string) string {
	s := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(s) > 8 {
		s = s[:8]
	}
	return s
}
