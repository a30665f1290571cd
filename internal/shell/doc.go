// Package shell hands the user's interactive session over to a new shell
// rooted at the current working directory. It either replaces the process
// image in place (exec) or starts a child shell and kills the invoking parent
// (spawn, POSIX only).
package shell
