package engine

import "github.com/NextRouter/routingFlow/internal/model"

// Finalize computes the actual total and the exceeded flag for one draft
// report. Strict inequality: equal actual and estimated is not exceeded.
func Finalize(r *model.InterfaceReport) {
	r.ActualTotal = r.ActualRX + r.ActualTX
	r.Exceeded = r.ActualTotal > r.Estimated
}

// FinalizeAll runs Finalize over a slice of draft reports in place.
func FinalizeAll(reports []model.InterfaceReport) {
	for i := range reports {
		Finalize(&reports[i])
	}
}
