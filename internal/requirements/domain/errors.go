package domain

import "errors"

var (
	// ErrExtractionFailed covers every failure mode of the structured
	// extraction call: transport errors, timeouts, non-2xx responses and
	// responses that cannot be parsed into the expected shape. No partial
	// model is ever exposed alongside it.
	ErrExtractionFailed = errors.New("requirements extraction failed")

	// ErrChatSendFailed is logged when the chat upstream errors; the
	// conversation itself continues with a fallback reply.
	ErrChatSendFailed = errors.New("chat send failed")

	// ErrFileProcessingFailed is logged when an uploaded file cannot be
	// processed by the chat upstream.
	ErrFileProcessingFailed = errors.New("file processing failed")

	// ErrConversationTooShort rejects finalize before the extraction
	// adapter is ever invoked.
	ErrConversationTooShort = errors.New("conversation too short to analyze")

	// ErrNotFound reports a missing project or user.
	ErrNotFound = errors.New("not found")

	// ErrNoRequirements reports that no requirements model has been
	// extracted in the current session yet.
	ErrNoRequirements = errors.New("no requirements extracted yet")
)
