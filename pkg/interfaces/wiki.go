package interfaces

import "context"

// WikiClient is the remote wiki surface the hierarchy builder drives. The
// client is bound to a single space at construction; every lookup and write
// is scoped to that space.
type WikiClient interface {
	// SpaceHomeID resolves the ID of the space homepage, the root every
	// imported hierarchy hangs from.
	SpaceHomeID(ctx context.Context) (string, error)
	// FindPages returns the IDs of pages in the space matching the exact
	// title. The result order follows the remote API.
	FindPages(ctx context.Context, title string) ([]string, error)
	// Ancestors returns a page's ancestor IDs ordered root first. The last
	// element is the page's immediate parent.
	Ancestors(ctx context.Context, pageID string) ([]string, error)
	// CreatePage creates a page under the given parent and returns its
	// remote identity.
	CreatePage(ctx context.Context, draft PageDraft) (*PageInfo, error)
}

// PageDraft describes a page to be created. Body carries wiki storage
// format; an empty body is valid and produces a container page.
type PageDraft struct {
	Title    string
	Body     string
	ParentID string
}

// PageInfo is the remote identity of a created page.
type PageInfo struct {
	ID      string
	WebLink string
}
