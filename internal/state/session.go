package state

import (
	"github.com/five82/wildwave/internal/audio"
	"github.com/five82/wildwave/internal/detector"
)

// Phase is the visible stage of an analysis session.
type Phase int

const (
	Idle Phase = iota
	FileSelected
	Uploading
	ResultsShown
	ErrorShown
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case FileSelected:
		return "file_selected"
	case Uploading:
		return "uploading"
	case ResultsShown:
		return "results_shown"
	case ErrorShown:
		return "error_shown"
	default:
		return "unknown"
	}
}

// ErrorKind distinguishes the two user-facing failures.
type ErrorKind int

const (
	NoError ErrorKind = iota
	InvalidFileType
	TransferFailure
)

// User-facing messages. Causes are logged, never shown.
const (
	MessageInvalidFileType = "Please upload a valid audio file."
	MessageTransferFailure = "Analysis failed. Please check your connection."
)

// Message returns the fixed text shown for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case InvalidFileType:
		return MessageInvalidFileType
	case TransferFailure:
		return MessageTransferFailure
	default:
		return ""
	}
}

// Event is an input to Session.Apply.
type Event interface {
	isEvent()
}

// Selected reports that the user picked or dropped an accepted audio file.
type Selected struct {
	File audio.SelectedFile
}

// Rejected reports a picked or dropped file that is not audio.
type Rejected struct {
	Err error
}

// Submitted reports a press of the analyse action.
type Submitted struct{}

// Succeeded carries the decoded response for the upload issued with Token.
type Succeeded struct {
	Token  uint64
	Result detector.Result
}

// Failed carries the failure of the upload issued with Token.
type Failed struct {
	Token uint64
	Err   error
}

func (Selected) isEvent()  {}
func (Rejected) isEvent()  {}
func (Submitted) isEvent() {}
func (Succeeded) isEvent() {}
func (Failed) isEvent()    {}

// EffectKind tells the caller what to do after a transition.
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectStartUpload asks for File to be uploaded, tagged with Token.
	EffectStartUpload
	// EffectCancelUpload asks for the upload tagged with Token to be aborted.
	EffectCancelUpload
	// EffectDiscarded reports a response for a superseded Token.
	EffectDiscarded
)

func (k EffectKind) String() string {
	switch k {
	case EffectStartUpload:
		return "start_upload"
	case EffectCancelUpload:
		return "cancel_upload"
	case EffectDiscarded:
		return "discarded"
	default:
		return "none"
	}
}

// Effect is the side effect requested by a transition.
type Effect struct {
	Kind  EffectKind
	Token uint64
	File  audio.SelectedFile
}

// Session is an immutable snapshot of one analysis session. The zero value
// is Idle.
type Session struct {
	phase   Phase
	file    audio.SelectedFile
	result  detector.Result
	errKind ErrorKind
	cause   error
	token   uint64
}

// Apply is the single transition function. It never mutates s.
func (s Session) Apply(ev Event) (Session, Effect) {
	switch ev := ev.(type) {
	case Selected:
		if ev.File.IsZero() {
			return s, Effect{}
		}
		next := Session{phase: FileSelected, file: ev.File, token: s.token + 1}
		return next, s.cancelEffect()

	case Rejected:
		if s.phase == Uploading {
			// The upload for the still-selected file keeps running; its
			// reply replaces this error.
			next := s
			next.errKind = InvalidFileType
			next.cause = ev.Err
			return next, Effect{}
		}
		next := Session{
			phase:   ErrorShown,
			file:    s.file,
			errKind: InvalidFileType,
			cause:   ev.Err,
			token:   s.token + 1,
		}
		return next, s.cancelEffect()

	case Submitted:
		if !s.CanSubmit() {
			return s, Effect{}
		}
		next := Session{phase: Uploading, file: s.file, token: s.token + 1}
		return next, Effect{Kind: EffectStartUpload, Token: next.token, File: next.file}

	case Succeeded:
		if !s.accepts(ev.Token) {
			return s, Effect{Kind: EffectDiscarded, Token: ev.Token}
		}
		next := Session{phase: ResultsShown, file: s.file, result: cloneResult(ev.Result), token: s.token}
		return next, Effect{}

	case Failed:
		if !s.accepts(ev.Token) {
			return s, Effect{Kind: EffectDiscarded, Token: ev.Token}
		}
		next := Session{
			phase:   ErrorShown,
			file:    s.file,
			errKind: TransferFailure,
			cause:   ev.Err,
			token:   s.token,
		}
		return next, Effect{}
	}
	return s, Effect{}
}

func (s Session) accepts(token uint64) bool {
	return s.phase == Uploading && token == s.token
}

func (s Session) cancelEffect() Effect {
	if s.phase != Uploading {
		return Effect{}
	}
	return Effect{Kind: EffectCancelUpload, Token: s.token}
}

// Phase returns the current phase.
func (s Session) Phase() Phase { return s.phase }

// Busy reports whether an upload is outstanding.
func (s Session) Busy() bool { return s.phase == Uploading }

// CanSubmit reports whether the analyse action is enabled.
func (s Session) CanSubmit() bool { return !s.file.IsZero() && !s.Busy() }

// Token returns the latest issued sequence number.
func (s Session) Token() uint64 { return s.token }

// File returns the selected file, zero when none.
func (s Session) File() audio.SelectedFile { return s.file }

// Result returns the ranked matches. It is empty outside ResultsShown.
func (s Session) Result() detector.Result { return cloneResult(s.result) }

// HasResult reports whether results are on display.
func (s Session) HasResult() bool { return s.phase == ResultsShown }

// ErrorKind returns the kind of the displayed error.
func (s Session) ErrorKind() ErrorKind { return s.errKind }

// ErrorMessage returns the user-facing error text, empty when none.
func (s Session) ErrorMessage() string { return s.errKind.Message() }

// Cause returns the underlying error for logging.
func (s Session) Cause() error { return s.cause }

func cloneResult(r detector.Result) detector.Result {
	if r.Birds == nil {
		return detector.Result{}
	}
	birds := make([]detector.Bird, len(r.Birds))
	copy(birds, r.Birds)
	return detector.Result{Birds: birds}
}
