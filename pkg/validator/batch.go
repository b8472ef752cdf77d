package validator

import (
	"context"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/async"
)

// BatchItem is one value in a ValidateBatch call. Policy applies only
// when Type is TypePassword; nil means DefaultPasswordPolicy.
type BatchItem struct {
	Type   Type
	Value  string
	Policy *PasswordPolicy
}

// ValidateBatch validates every item concurrently, one goroutine per
// item, and returns exactly one Result per item in input order.
//
// Items are independent: a failing item never affects its neighbors
// and nothing terminates early. Unsupported type tags surface as
// invalid Results at their positions, the same as in Validate, so the
// output slice always has len(items) entries.
func ValidateBatch(items []BatchItem) []Result {
	futures := make([]*async.Future[Result], len(items))
	for i, item := range items {
		futures[i] = async.Async(context.Background(), item, func(_ context.Context, it BatchItem) (Result, error) {
			return Validate(it.Type, it.Value, it.Policy), nil
		})
	}

	// The per-item function never returns an error, every failure mode
	// is a Result value, so WaitAll's error is structurally nil.
	results, _ := async.WaitAll(futures...)
	return results
}
