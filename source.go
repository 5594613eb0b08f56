package dove

import "context"

// Getter retrieves remote text resources such as configuration files.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}
