// Package markdown renders Markdown sources into HTML and loads workspace
// documents from disk, stripping any frontmatter block before the body
// reaches the storage-format pipeline.
package markdown
