package types

const (
	// MessageMaxLen bounds the text payload accepted by Send.
	MessageMaxLen = 10 * 1024
	// OptionsMaxLen caps raw delivery options; a single executor option is 36 bytes.
	OptionsMaxLen = 512
	// AckPayloadMaxLen clamps the fixed acknowledgement payload.
	AckPayloadMaxLen = 256
)
