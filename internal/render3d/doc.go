// Package render3d provides the "render-3d" command group. Subcommands are
// registered as factories and only constructed when they are invoked, so the
// group can list and describe them without building their flag sets or
// resolving their dependencies.
package render3d
