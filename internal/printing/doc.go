// Package printing submits rendered labels to a CUPS/IPP spooler.
//
// A submission is a linear walk: connect, enumerate queues, stage the
// payload into a uniquely named temp file, submit it raw
// (application/octet-stream, so the bytes reach the printer unmodified),
// and always release the staged file afterwards. Queue failures surface the
// full enumerated queue list so the operator can correct the target. No
// retries happen here; retry policy belongs to the caller.
package printing
