// Package markup rewrites rendered HTML into Confluence storage format.
// The conversion is an ordered set of textual passes; the order is
// load-bearing because later passes consume constructs earlier passes must
// still be able to see (doctoc markers are HTML comments, so the TOC pass
// runs before comments become placeholders).
package markup
