package interfaces

import (
	"context"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
)

// IDocumentArchiver stores a fetched policy document in object storage and
// issues a time-limited retrieval link.
type IDocumentArchiver interface {
	Archive(ctx context.Context, policyNumber, base64PDF string) (entities.StoredDocument, error)
}
