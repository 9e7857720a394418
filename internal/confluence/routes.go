package confluence

import (
	urlkit "github.com/goliatone/go-urlkit"
)

const (
	routeGroup = "api"

	routeSpace   = "space"
	routeSearch  = "search"
	routeContent = "content"
	routeCreate  = "create"
)

// contentPathPrefix precedes the homepage ID in the space resource's
// expandable link.
const contentPathPrefix = "/rest/api/content/"

// newRoutes builds the route table for one Confluence instance. Every URL
// the client requests goes through this group.
func newRoutes(baseURL string) *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    routeGroup,
				BaseURL: baseURL,
				Paths: map[string]string{
					routeSpace:   "/rest/api/space/:key",
					routeSearch:  "/rest/api/content",
					routeContent: "/rest/api/content/:id",
					routeCreate:  "/rest/api/content/",
				},
			},
		},
	})
}
