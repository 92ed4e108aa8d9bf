// Package activate implements the environment activation state machine.
// Every function is a pure transformation from a session state to a
// replacement state; applying the result to the real shell session is the
// caller's job. Activation always runs the full validate, deactivate,
// prepend chain so at most one environment's directories are ever on PATH.
package activate
