// Package error provides structured errors for the Bologna front end.
//
// Package: error
// Title: Bologna Error Handling
// Description: Structured error type carrying a code, a severity and
//              key/value details. Parse failures, configuration problems and
//              service errors are all expressed through it so loggers and
//              the websocket service can classify them uniformly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Codes reduced to the lexer/parser/config domain
//
// Usage:
//
//	import blerror "github.com/msto63/bologna/foundation/core/error"
//
//	err := blerror.New("expected ')'").
//		WithCode(blerror.CodeSyntax).
//		WithDetail("line", 1)
//
//	if blerror.HasCode(err, blerror.CodeSyntax) {
//		// recoverable at the driver
//	}
package error
