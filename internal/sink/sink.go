// Package sink holds the output adapters that consume extracted records.
package sink

import (
	"context"

	"cryptorates/internal/rates"
)

// Sink consumes one RecordSet.
// Each sink checks for an empty set itself and reports a warning instead
// of producing output.
type Sink interface {
	Name() string
	Write(ctx context.Context, records rates.RecordSet) error
}

func headerRow() []string {
	return append([]string(nil), rates.Header...)
}
