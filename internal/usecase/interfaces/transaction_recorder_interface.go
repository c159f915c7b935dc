package interfaces

import (
	"context"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
)

// ITransactionRecorder abstracts durable persistence of orchestration steps.
//
// A session is scoped to one invocation: acquired at the start of a
// persistence-needing path and released unconditionally at the end,
// including early failure.
type ITransactionRecorder interface {
	Session(ctx context.Context) (ITransactionSession, error)
}

type ITransactionSession interface {
	RecordCalculation(ctx context.Context, rec entities.CalculationRecord) error
	RecordPayment(ctx context.Context, rec entities.PaymentRecord) error
	Release()
}
