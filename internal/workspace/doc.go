// Package workspace implements the plan phase: it resolves a workspace's
// root index file into a hierarchy of nested indexes and leaf documents, and
// materializes that hierarchy as a directory tree under the plan folder.
//
// Index files are recognized structurally: a file whose every line is an
// entry of the form `* [Title](path)` is a container, anything else is a
// leaf. The plan tree is the durable hand-off between the plan and execute
// phases, so a pre-existing plan folder fails the run instead of merging.
package workspace
