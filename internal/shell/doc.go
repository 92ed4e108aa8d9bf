// Package shell provides shell integration for environment activation.
// It generates the conda wrapper function (for Bash, Zsh and Fish) that
// captures engine output and applies it to the live session, and the rc
// file line that loads the wrapper at shell startup.
package shell
