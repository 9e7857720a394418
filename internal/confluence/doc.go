// Package confluence is the REST client for the target wiki. A Client is
// bound to one space at construction; the hierarchy builder drives it
// through the narrow surface in pkg/interfaces: resolve the space homepage,
// look up pages by title, read ancestors, create pages.
package confluence
