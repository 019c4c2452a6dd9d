/*
Package log implements the mutebase64 logging framework.

See https://github.com/cihub/seelog/wiki/Log-levels for an introduction to the
different logging levels.

Logging is disabled unless Init is called with a log directory or with
logging to stderr enabled. Standard output is reserved for the encoded data.

Errors are logged once, as early as possible: When calling external packages
that create an error, we wrap that error in a log.Error() call. If we create
our own errors, we use log.Error[f]() to do that. If we call panic() we create
the error for that with log.Critical[f]().
*/
package log
