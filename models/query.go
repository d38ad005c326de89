package models

// QueryService serves read-only document lookups over the loaded store.
// Lookups never mutate anything; a miss is a nil result, not an error.
type QueryService struct {
	Store DocumentReader
}

func NewQueryService(store DocumentReader) *QueryService {
	return &QueryService{Store: store}
}

func (qs *QueryService) GetByKind(kind DocumentKind) MonetaryDocument {
	if !kind.Valid() {
		return nil
	}
	return qs.Store.Document(kind)
}

// GetByKindAndNo returns the current document for the kind only when its
// number matches exactly (case-sensitive), mirroring the lookup contract
// of the original resolvers.
func (qs *QueryService) GetByKindAndNo(kind DocumentKind, no string) MonetaryDocument {
	doc := qs.GetByKind(kind)
	if doc == nil || doc.DocumentNo() != no {
		return nil
	}
	return doc
}
