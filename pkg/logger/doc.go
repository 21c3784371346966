/*
Package logger provides structured logging for rtr on top of uber-go/zap.

Entries are JSON objects written to standard error; standard output is reserved
for the rendered tree.

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + level 0
	2: Trace + level 1

Structured Logging:

	log.WithFields(logger.Fields{
	    "path":  "/srv/data",
	    "depth": 3,
	}).Debug("Skipping unreadable directory")

Output Example:

	{"level":"debug","ts":"2024-01-20T15:04:05.000Z","logger":"rtr","message":"Skipping unreadable directory","path":"/srv/data","depth":3}

Library callers that do not want any log output can use NewNop.
*/
package logger
