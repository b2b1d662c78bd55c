// Package logging builds the process logger.
//
// The level comes from a profile default, then the configured level string,
// then the MLSBRIDGE_LOG_LEVEL environment variable. Output is text on
// stderr.
package logging
