package catalog

import "context"

//go:generate mockgen -source=ports.go -destination=mock_fetcher.go -package=catalog

// Fetcher is the contract for the upstream best-seller provider.
type Fetcher interface {
	Overview(ctx context.Context) (Overview, error)
	ListNames(ctx context.Context) ([]ListName, error)
	CurrentList(ctx context.Context, encodedKey string) (List, error)
}
