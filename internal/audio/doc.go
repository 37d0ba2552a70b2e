// Package audio implements file intake: deciding whether a chosen or
// dropped file is audio and describing it for display and upload.
//
// A file is accepted only when its MIME type starts with "audio/". The type
// is resolved the way a desktop reports it (extension table, then the system
// MIME table, then sniffing the first 512 bytes); there is no deeper
// validation of the content. Every intake failure wraps ErrInvalidFileType.
//
// Probe reads WAV and FLAC headers for the file card. It is best effort and
// never causes a rejection.
package audio
