package checkout

import "context"

type terminalKey struct{}

// WithTerminal tags ctx with the register terminal issuing the request.
func WithTerminal(ctx context.Context, terminal string) context.Context {
	return context.WithValue(ctx, terminalKey{}, terminal)
}

// TerminalFrom returns the terminal set by WithTerminal, or "" when unset.
func TerminalFrom(ctx context.Context) string {
	terminal, _ := ctx.Value(terminalKey{}).(string)
	return terminal
}
